// Package config 提供应用配置管理。
//
// 配置加载优先级 (从低到高)：
//  1. 默认值 - DefaultConfig() 函数中定义
//  2. 配置文件 - 按 DefaultPaths 顺序查找，命中首个即停止
//  3. 环境变量 - ENVRENDER_ 前缀
//  4. CLI flags / 位置参数 - 由各命令的 action 应用
package config

import (
	"time"
)

// Config 应用配置。
type Config struct {
	Render RenderConfig `json:"render" desc:"渲染配置"`
	Server ServerConfig `json:"server" desc:"服务端配置"`
}

// RenderConfig 渲染配置。
type RenderConfig struct {
	EnvFile string `json:"env-file" desc:"补充变量文件路径"`
}

// ServerConfig 服务端配置。
type ServerConfig struct {
	Addr     string        `json:"addr" desc:"服务器监听地址"`
	Timeout  time.Duration `json:"timeout" desc:"HTTP 读写超时"`
	Idletime time.Duration `json:"idletime" desc:"HTTP 空闲超时"`
}

// DefaultConfig 返回默认配置。
// 注意：internal/command/command.go 中的 Defaults 变量引用此函数以实现单一配置来源。
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			EnvFile: ".env",
		},
		Server: ServerConfig{
			Addr:     ":40118",
			Timeout:  15 * time.Second,
			Idletime: 60 * time.Second,
		},
	}
}
