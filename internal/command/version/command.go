// Package version 提供版本信息命令。
package version

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-envrender/internal/version"
)

// New 构造版本命令。
func New() *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "显示版本信息",
		Action: action,
	}
}

// Command 版本命令
var Command = New()

func action(_ context.Context, _ *cli.Command) error {
	info := version.Get()
	fmt.Printf("%s %s (commit %s, built %s, %s)\n",
		version.AppName, info.Version, info.Commit, info.BuildTime, info.GoVersion)

	return nil
}
