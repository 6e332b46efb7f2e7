package log

import (
	"go.uber.org/zap"
)

// InitLogger 初始化全局 zap 日志器并替换 zap.L()
func InitLogger() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(logger)
}
