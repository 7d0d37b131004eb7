// Package render 提供模板渲染命令。
package render

import (
	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-envrender/internal/command"
	versioncmd "github.com/lwmacct/260831-go-pkg-envrender/internal/command/version"
)

// New 构造渲染命令。
//
// cli.Command 持有一次运行的 flag 状态，测试中应为每次调用构造新实例。
func New() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "渲染模板文件：以环境变量替换 ${{NAME}} 占位符",
		ArgsUsage: "<template-file> [output-file] [env-file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出文件路径（默认按模板文件名推导）",
			},
			&cli.StringFlag{
				Name:    "env-file",
				Aliases: []string{"e"},
				Value:   command.Defaults.Render.EnvFile,
				Usage:   "补充变量文件路径",
			},
		},
		Action:   action,
		Commands: []*cli.Command{versioncmd.New()},
	}
}

// Command 渲染命令
var Command = New()
