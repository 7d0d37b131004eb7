package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	yamlv3 "go.yaml.in/yaml/v3"

	"github.com/lwmacct/260831-go-pkg-envrender/pkg/render"
)

// envPrefix 为环境变量绑定前缀，如 ENVRENDER_SERVER_ADDR。
const envPrefix = "ENVRENDER_"

// DefaultPaths 返回默认配置文件的搜索顺序。
//
// 返回顺序即查找顺序，先命中的文件生效。
//
// 优先级 (从高到低)：
//  1. ./.envrender.yaml - 当前目录应用配置
//  2. ~/.envrender.yaml - 用户主目录配置
//  3. /etc/envrender/config.yaml - 系统级配置
//  4. config.yaml - 当前目录通用配置
func DefaultPaths(appName string) []string {
	paths := []string{"." + appName + ".yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName+".yaml"))
	}
	paths = append(paths, "/etc/"+appName+"/config.yaml", "config.yaml")

	return paths
}

// Load 读取配置并按优先级合并。
//
// 配置 key 由 json tag 定义，YAML 与 JSON 共享同一套 key。
// 配置文件内容在解析前先经过占位符替换（${{NAME}} 语法），
// 未解析的占位符保持原样。
func Load(appName string) (*Config, error) {
	return LoadPaths(DefaultPaths(appName)...)
}

// LoadPaths 按给定路径顺序查找并加载配置文件。
func LoadPaths(paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range paths {
		content, err := os.ReadFile(path) //nolint:gosec // path is from trusted config
		if err != nil {
			continue // 文件不存在或无法读取，尝试下一个路径
		}

		// 解析前先做占位符替换，使配置文件可以引用环境变量
		expanded, missingVars := render.EnvironTable().Substitute(string(content))
		for _, name := range missingVars {
			slog.Debug("Config placeholder unresolved", "path", path, "name", name)
		}

		fileMap, err := parseConfigBytes(path, []byte(expanded))
		if err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if err := decodeConfigMap(fileMap, &cfg); err != nil {
			return nil, fmt.Errorf("decode config file %s: %w", path, err)
		}

		slog.Debug("Loaded config from file", "path", path)

		break
	}

	applyEnv(&cfg)

	return &cfg, nil
}

// applyEnv 应用 ENVRENDER_ 前缀的环境变量覆盖。
//
// 绑定规则与 json tag 对应："." 和 "-" 转为 "_" 后大写。
func applyEnv(cfg *Config) {
	if v := os.Getenv(envPrefix + "RENDER_ENV_FILE"); v != "" {
		cfg.Render.EnvFile = v
	}
	if v := os.Getenv(envPrefix + "SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv(envPrefix + "SERVER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.Timeout = d
		}
	}
	if v := os.Getenv(envPrefix + "SERVER_IDLETIME"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Server.Idletime = d
		}
	}
}

func parseConfigBytes(path string, content []byte) (map[string]any, error) {
	var raw map[string]any
	var err error
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(content, &raw)
	} else {
		err = yamlv3.Unmarshal(content, &raw)
	}
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return map[string]any{}, nil
	}

	return raw, nil
}

func decodeConfigMap(data map[string]any, out *Config) error {
	conf := &mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.TextUnmarshallerHookFunc(),
		),
		Metadata:         nil,
		Result:           out,
		WeaklyTypedInput: true,
		TagName:          "json",
	}
	decoder, err := mapstructure.NewDecoder(conf)
	if err != nil {
		return err
	}

	return decoder.Decode(data)
}
