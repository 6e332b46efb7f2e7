package service

import "errors"

// 服务层错误分类，路由层统一映射为 HTTP 状态码
var (
	ErrUnauthenticated = errors.New("未登录或令牌无效")
	ErrForbidden       = errors.New("没有权限执行该操作")
	ErrInvalid         = errors.New("请求参数无效")

	ErrUsernameTaken  = errors.New("用户名已存在")
	ErrUserNotFound   = errors.New("用户不存在")
	ErrBadCredentials = errors.New("用户名或密码错误")

	ErrProductNotFound = errors.New("菜品不存在")
	ErrProductInactive = errors.New("菜品已下架")

	ErrMenuDayNotFound  = errors.New("菜单日不存在")
	ErrMenuDayExists    = errors.New("该日期已存在菜单")
	ErrMenuDayClosed    = errors.New("菜单日未开放，无法下单")
	ErrMenuItemNotFound = errors.New("菜单条目不存在")
	ErrMenuItemExists   = errors.New("该菜品已在当日菜单中")

	ErrOrderNotFound     = errors.New("订单不存在")
	ErrOrderItemNotFound = errors.New("订单项不存在")
	ErrNotOnMenu         = errors.New("该菜品不在订单当日菜单中")
	ErrInvalidStatus     = errors.New("订单状态无效")
	ErrInvalidQuantity   = errors.New("数量必须大于 0")
)
