// Package server 提供运维 API 服务器命令。
package server

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-envrender/internal/command"
	versioncmd "github.com/lwmacct/260831-go-pkg-envrender/internal/command/version"
)

// New 构造服务器命令。
func New() *cli.Command {
	return &cli.Command{
		Name:     "server",
		Usage:    "启动健康检查 HTTP 服务器",
		Action:   action,
		Commands: []*cli.Command{versioncmd.New()},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server-addr",
				Aliases: []string{"a"},
				Value:   command.Defaults.Server.Addr,
				Usage:   "服务器监听地址",
			},
			&cli.DurationFlag{
				Name:  "server-timeout",
				Value: command.Defaults.Server.Timeout,
				Usage: "HTTP 读写超时",
			},
			&cli.DurationFlag{
				Name:  "server-idletime",
				Value: command.Defaults.Server.Idletime,
				Usage: "HTTP 空闲超时",
			},
		},
	}
}

// Command 服务器命令
var Command = New()
