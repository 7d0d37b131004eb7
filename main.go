package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	rendercmd "github.com/lwmacct/260831-go-pkg-envrender/internal/command/render"
	servercmd "github.com/lwmacct/260831-go-pkg-envrender/internal/command/server"
	versioncmd "github.com/lwmacct/260831-go-pkg-envrender/internal/command/version"
	"github.com/lwmacct/260831-go-pkg-envrender/internal/version"
)

func main() {
	app := &cli.Command{
		Name:    version.AppName,
		Usage:   "配置模板渲染工具",
		Version: version.Version,
		Commands: []*cli.Command{
			versioncmd.Command,
			rendercmd.Command,
			servercmd.Command,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
