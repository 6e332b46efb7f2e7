package server

import (
	"errors"

	"github.com/kataras/iris/v12"
	"go.uber.org/zap"

	"github.com/sebasMaldonado10/API-viandas/internal/service"
)

// httpError 把服务层错误分类映射为 HTTP 状态码，统一响应结构
func httpError(ctx iris.Context, err error) {
	code := 500
	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrBadCredentials):
		code = 401
	case errors.Is(err, service.ErrForbidden):
		code = 403
	case errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrMenuDayNotFound),
		errors.Is(err, service.ErrMenuItemNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrOrderItemNotFound):
		code = 404
	case errors.Is(err, service.ErrUsernameTaken),
		errors.Is(err, service.ErrMenuDayExists),
		errors.Is(err, service.ErrMenuItemExists):
		code = 409
	case errors.Is(err, service.ErrInvalid),
		errors.Is(err, service.ErrInvalidStatus),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrProductInactive),
		errors.Is(err, service.ErrNotOnMenu),
		errors.Is(err, service.ErrMenuDayClosed):
		code = 400
	}

	if code == 500 {
		zap.L().Error("request failed",
			zap.String("path", ctx.Path()),
			zap.Error(err))
	}
	ctx.StopWithJSON(code, iris.Map{"code": code, "msg": err.Error()})
}

// ok 成功响应
func ok(ctx iris.Context, data interface{}) {
	ctx.JSON(iris.Map{"code": 0, "data": data})
}
