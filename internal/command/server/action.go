package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/lwmacct/260831-go-pkg-envrender/internal/config"
	"github.com/lwmacct/260831-go-pkg-envrender/internal/version"
)

func action(ctx context.Context, cmd *cli.Command) error {
	// 加载配置：默认值 → 配置文件 → 环境变量 → CLI flags
	cfg, err := config.Load(version.AppName)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      newMux(),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  cfg.Server.Idletime,
	}

	// 启动服务器（非阻塞）
	go func() {
		slog.Info("Server starting", "addr", cfg.Server.Addr)
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
			os.Exit(1)
		}
	}()

	// 等待中断信号
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	slog.Info("Shutting down")

	// 优雅关闭
	// 使用 WithoutCancel 保持 context 链，同时防止父 context 取消影响 shutdown
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.Timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server shutdown failed", "error", err)

		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("Server stopped gracefully")

	return nil
}

// applyFlags 以用户显式设置的 CLI flags 覆盖配置（最高优先级）。
func applyFlags(cmd *cli.Command, cfg *config.Config) {
	if cmd.IsSet("server-addr") {
		cfg.Server.Addr = cmd.String("server-addr")
	}
	if cmd.IsSet("server-timeout") {
		cfg.Server.Timeout = cmd.Duration("server-timeout")
	}
	if cmd.IsSet("server-idletime") {
		cfg.Server.Idletime = cmd.Duration("server-idletime")
	}
}

// newMux 构造服务路由。
func newMux() *http.ServeMux {
	mux := http.NewServeMux()

	// 健康检查端点
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = fmt.Fprintf(w, `{"status":"healthy","version":%q}`, version.Version)
	})

	// 默认首页（{$} 精确匹配根路径）
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"service":%q,"status":"Running","timestamp":%d}`,
			version.AppName, time.Now().Unix())
	})

	return mux
}
