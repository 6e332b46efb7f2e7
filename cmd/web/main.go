package main

import (
	"log"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/sebasMaldonado10/API-viandas/internal/config"
	"github.com/sebasMaldonado10/API-viandas/internal/server"
	applog "github.com/sebasMaldonado10/API-viandas/pkg/log"
)

func main() {
	// 加载配置（./config/config.yaml，不存在则用默认值）
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 初始化日志
	applog.InitLogger()
	zap.L().Info("log init success")

	app := iris.New()
	server.RegisterRoutes(app, cfg)

	addr := cfg.Server.Addr()
	zap.L().Info("api server listening", zap.String("addr", addr))
	if err := app.Run(iris.Addr(addr), iris.WithoutServerError(iris.ErrServerClosed)); err != nil {
		zap.L().Fatal("app run failed", zap.Error(err))
	}
}
