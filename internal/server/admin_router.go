package server

import (
	"github.com/kataras/iris/v12"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/service"
)

// productRequest 菜品创建/更新请求
type productRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price"` // 分
	Active      *bool   `json:"active"`
	ImageURL    *string `json:"image_url"`
}

func (r *productRequest) toCreate() (*product.Product, error) {
	if r.Name == nil || *r.Name == "" || r.Price == nil || *r.Price <= 0 {
		return nil, service.ErrInvalid
	}
	p := &product.Product{
		Name:   *r.Name,
		Price:  *r.Price,
		Active: true,
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Active != nil {
		p.Active = *r.Active
	}
	if r.ImageURL != nil {
		p.ImageURL = *r.ImageURL
	}
	return p, nil
}

func (r *productRequest) toUpdate() service.ProductUpdate {
	return service.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Active:      r.Active,
		ImageURL:    r.ImageURL,
	}
}

// RegisterAdminRoutes 注册管理端路由，调用方已挂好登录与 admin 角色门禁
func RegisterAdminRoutes(
	admin iris.Party,
	productSvc *service.ProductService,
	menuSvc *service.MenuService,
	orderSvc *service.OrderService,
) {
	// ---------- 菜品管理 ----------

	admin.Post("/products", func(ctx iris.Context) {
		var req productRequest
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		p, err := req.toCreate()
		if err != nil {
			httpError(ctx, err)
			return
		}
		if err := productSvc.Create(ctx.Request().Context(), p); err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, p)
	})

	admin.Put("/products/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		var req productRequest
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		p, err := productSvc.Update(ctx.Request().Context(), int64(id), req.toUpdate())
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, p)
	})

	admin.Delete("/products/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		if err := productSvc.Delete(ctx.Request().Context(), int64(id)); err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, iris.Map{"deleted": id})
	})

	// ---------- 菜单日管理 ----------

	admin.Post("/menu-days", func(ctx iris.Context) {
		var req struct {
			Date   string `json:"date"`
			IsOpen *bool  `json:"is_open"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		isOpen := true
		if req.IsOpen != nil {
			isOpen = *req.IsOpen
		}
		d, err := menuSvc.CreateDay(ctx.Request().Context(), req.Date, isOpen)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, d)
	})

	admin.Put("/menu-days/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		var req struct {
			IsOpen bool `json:"is_open"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		d, err := menuSvc.UpdateDay(ctx.Request().Context(), int64(id), req.IsOpen)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, d)
	})

	admin.Delete("/menu-days/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		if err := menuSvc.DeleteDay(ctx.Request().Context(), int64(id)); err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, iris.Map{"deleted": id})
	})

	// 菜单条目：挂菜品/摘菜品
	admin.Post("/menu-days/{id:uint64}/items", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		var req struct {
			ProductID int64 `json:"product_id"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		it, err := menuSvc.AddItem(ctx.Request().Context(), int64(id), req.ProductID)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, it)
	})

	admin.Delete("/menu-items/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		if err := menuSvc.RemoveItem(ctx.Request().Context(), int64(id)); err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, iris.Map{"deleted": id})
	})

	// ---------- 订单管理 ----------

	admin.Get("/orders", func(ctx iris.Context) {
		uid, role := caller(ctx)
		list, err := orderSvc.List(ctx.Request().Context(), uid, role)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, list)
	})

	// 更新订单状态：只校验枚举成员资格，不做状态机限制
	admin.Put("/orders/{id:uint64}/status", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		var req struct {
			Status string `json:"status"`
		}
		if err := ctx.ReadJSON(&req); err != nil {
			ctx.StopWithJSON(400, iris.Map{"code": 400, "msg": err.Error()})
			return
		}
		uid, role := caller(ctx)
		o, err := orderSvc.UpdateStatus(ctx.Request().Context(), uid, role, int64(id), req.Status)
		if err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, o)
	})

	admin.Delete("/orders/{id:uint64}", func(ctx iris.Context) {
		id, _ := ctx.Params().GetUint64("id")
		uid, role := caller(ctx)
		if err := orderSvc.Delete(ctx.Request().Context(), uid, role, int64(id)); err != nil {
			httpError(ctx, err)
			return
		}
		ok(ctx, iris.Map{"deleted": id})
	})

	// ---------- 监控 ----------

	admin.Get("/monitor", func(ctx iris.Context) {
		ok(ctx, service.GetMonitor().Snapshot())
	})
}
