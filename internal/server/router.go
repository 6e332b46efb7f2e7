package server

import (
	"strings"
	"time"

	"github.com/kataras/iris/v12"

	"github.com/sebasMaldonado10/API-viandas/internal/auth"
	"github.com/sebasMaldonado10/API-viandas/internal/config"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/user"
	"github.com/sebasMaldonado10/API-viandas/internal/infra/mq"
	"github.com/sebasMaldonado10/API-viandas/internal/infra/redis"
	"github.com/sebasMaldonado10/API-viandas/internal/middleware"
	"github.com/sebasMaldonado10/API-viandas/internal/repository/mysql"
	"github.com/sebasMaldonado10/API-viandas/internal/service"
)

// caller 从请求上下文取出鉴权中间件写入的调用者身份，
// 再以显式参数传给服务层。
func caller(ctx iris.Context) (int64, string) {
	return ctx.Values().GetInt64Default("user_id", 0),
		ctx.Values().GetStringDefault("role", "")
}

// authMiddleware Bearer 令牌校验：优先命中 Redis 缓存，未命中再做签名解析
func authMiddleware(cfg *config.Config, cache *auth.TokenCache) iris.Handler {
	return func(ctx iris.Context) {
		token := ctx.GetHeader("Authorization")
		token = strings.TrimPrefix(token, "Bearer ")
		if token == "" {
			ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": service.ErrUnauthenticated.Error()})
			return
		}

		claims, hit, err := cache.Get(ctx.Request().Context(), token)
		if err != nil || !hit {
			claims, err = auth.ParseToken(&cfg.JWT, token)
			if err != nil {
				ctx.StopWithJSON(401, iris.Map{"code": 401, "msg": service.ErrUnauthenticated.Error()})
				return
			}
			_ = cache.Set(ctx.Request().Context(), token, claims)
		}

		ctx.Values().Set("user_id", claims.UserID)
		ctx.Values().Set("username", claims.Username)
		ctx.Values().Set("role", claims.Role)
		ctx.Next()
	}
}

// requireAdmin 管理端角色门禁
func requireAdmin(ctx iris.Context) {
	if ctx.Values().GetStringDefault("role", "") != user.RoleAdmin {
		ctx.StopWithJSON(403, iris.Map{"code": 403, "msg": service.ErrForbidden.Error()})
		return
	}
	ctx.Next()
}

// RegisterRoutes 注册所有 HTTP 路由（唯一的路由表）
func RegisterRoutes(app *iris.Application, cfg *config.Config) {
	// 初始化基础设施
	db := mysql.Init(&cfg.MySQL)
	redisClient := redis.Init(&cfg.Redis)
	mqConn := mq.Init(&cfg.RabbitMQ)

	// 仓储与服务
	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	menuRepo := mysql.NewMenuRepository(db)
	orderRepo := mysql.NewOrderRepository(db)

	userSvc := service.NewUserService(userRepo, &cfg.JWT)
	productSvc := service.NewProductService(productRepo)
	menuSvc := service.NewMenuService(menuRepo, productRepo)
	events := service.NewOrderEventPublisher(mqConn)
	orderSvc := service.NewOrderService(orderRepo, productRepo, menuRepo, events)

	ring := auth.NewConsistentHashRing(cfg.Auth.Nodes, cfg.Auth.HashReplicas)
	tokenCache := auth.NewTokenCache(redisClient, ring,
		time.Duration(cfg.Auth.TokenCacheTTLSeconds)*time.Second)

	api := app.Party("/api")

	// 健康检查
	api.Get("/health", func(ctx iris.Context) {
		ctx.JSON(iris.Map{"code": 0, "msg": "ok"})
	})

	// 用户注册/登录
	api.Post("/register", middleware.AuthRateLimit(), func(ctx iris.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
			Role     string `json:"role"`
			Phone    string `json:"phone"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		u, err := userSvc.Register(ctx.Request().Context(), req.Username, req.Password, req.Role, req.Phone)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, u)
	})

	api.Post("/login", middleware.AuthRateLimit(), func(ctx iris.Context) {
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		token, err := userSvc.Login(ctx.Request().Context(), req.Username, req.Password)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, iris.Map{"token": token})
	})

	// 菜品与当日菜单为公开只读
	api.Get("/products", func(ctx iris.Context) {
		list, err := productSvc.List(ctx.Request().Context())
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, list)
	})

	api.Get("/products/{id:uint64}", func(ctx iris.Context) {
		pid, _ := ctx.Params().GetUint64("id")
		p, err := productSvc.GetByID(ctx.Request().Context(), int64(pid))
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, p)
	})

	api.Get("/menu-days", func(ctx iris.Context) {
		list, err := menuSvc.ListDays(ctx.Request().Context())
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, list)
	})

	api.Get("/menu-days/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		d, err := menuSvc.GetDay(ctx.Request().Context(), int64(id))
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, d)
	})

	api.Get("/menu-days/{id:uint64}/items", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		items, err := menuSvc.ListItems(ctx.Request().Context(), int64(id))
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, items)
	})

	// 需要登录的接口
	authAPI := api.Party("/", authMiddleware(cfg, tokenCache))

	authAPI.Get("/me", func(ctx iris.Context) {
		uid, _ := caller(ctx)
		u, err := userSvc.GetByID(ctx.Request().Context(), uid)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, u)
	})

	// 创建订单：针对一个开放的菜单日
	authAPI.Post("/orders", middleware.OrderRateLimit(), func(ctx iris.Context) {
		var req struct {
			MenuDayID int64 `json:"menu_day_id"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		uid, _ := caller(ctx)
		o, err := orderSvc.Create(ctx.Request().Context(), uid, req.MenuDayID)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, o)
	})

	// 订单列表：按角色裁剪可见范围
	authAPI.Get("/orders", func(ctx iris.Context) {
		uid, role := caller(ctx)
		list, err := orderSvc.List(ctx.Request().Context(), uid, role)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, list)
	})

	authAPI.Get("/orders/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		uid, role := caller(ctx)
		o, err := orderSvc.Get(ctx.Request().Context(), uid, role, int64(id))
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, o)
	})

	authAPI.Get("/orders/{id:uint64}/items", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		uid, role := caller(ctx)
		items, err := orderSvc.ListItems(ctx.Request().Context(), uid, role, int64(id))
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, items)
	})

	// 添加订单项：校验通过后与总价重算在同一事务中落库
	authAPI.Post("/orders/{id:uint64}/items", middleware.OrderRateLimit(), func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		var req struct {
			ProductID int64 `json:"product_id"`
			Quantity  int64 `json:"quantity"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		uid, role := caller(ctx)
		it, err := orderSvc.AddItem(ctx.Request().Context(), uid, role, int64(id), req.ProductID, req.Quantity)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, it)
	})

	// 修改订单项（菜品/数量均可选）
	authAPI.Put("/order-items/{id:uint64}", middleware.OrderRateLimit(), func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		var req struct {
			ProductID *int64 `json:"product_id"`
			Quantity  *int64 `json:"quantity"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		uid, role := caller(ctx)
		it, err := orderSvc.UpdateItem(ctx.Request().Context(), uid, role, int64(id), service.ItemUpdate{
			ProductID: req.ProductID,
			Quantity:  req.Quantity,
		})
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, it)
	})

	authAPI.Delete("/order-items/{id:uint64}", middleware.OrderRateLimit(), func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		uid, role := caller(ctx)
		if err := orderSvc.RemoveItem(ctx.Request().Context(), uid, role, int64(id)); err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, iris.Map{"deleted": id})
	})

	// 管理端
	admin := authAPI.Party("/admin", requireAdmin)
	RegisterAdminRoutes(admin, productSvc, menuSvc, orderSvc)
}
