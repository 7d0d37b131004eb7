package render

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-envrender/internal/config"
	"github.com/lwmacct/260831-go-pkg-envrender/internal/version"
	"github.com/lwmacct/260831-go-pkg-envrender/pkg/render"
)

func action(_ context.Context, cmd *cli.Command) error {
	// 参数缺失先输出用法，再以错误终止
	if cmd.Args().Len() < 1 {
		_ = cli.ShowSubcommandHelp(cmd)

		return errors.New("missing required argument: <template-file>")
	}

	// 加载配置：默认值 → 配置文件 → 环境变量
	cfg, err := config.Load(version.AppName)
	if err != nil {
		return err
	}

	templatePath := cmd.Args().Get(0)

	// 位置参数优先于 flag，flag 优先于配置
	outputPath := cmd.String("output")
	if cmd.Args().Len() > 1 {
		outputPath = cmd.Args().Get(1)
	}

	envFile := cfg.Render.EnvFile
	if cmd.IsSet("env-file") {
		envFile = cmd.String("env-file")
	}
	if cmd.Args().Len() > 2 {
		envFile = cmd.Args().Get(2)
	}

	// 模板缺失在任何读取之前单独报告
	if _, err := os.Stat(templatePath); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("template file %q not found", templatePath)
		}

		return fmt.Errorf("stat template %s: %w", templatePath, err)
	}

	table := render.EnvironTable()
	if err := table.LoadDefaults(envFile); err != nil {
		return err
	}

	outPath, err := render.New(table).RenderFile(templatePath, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Template rendered: %s -> %s\n", templatePath, outPath)

	return nil
}
