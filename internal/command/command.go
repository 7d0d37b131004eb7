// Package command 提供渲染与服务端的命令行功能。
package command

import "github.com/lwmacct/260831-go-pkg-envrender/internal/config"

// Defaults 为默认配置的单一来源。
var Defaults = config.DefaultConfig()
