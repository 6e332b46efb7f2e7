package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sebasMaldonado10/API-viandas/internal/config"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/user"
	"github.com/sebasMaldonado10/API-viandas/internal/repository/mysql"
	"github.com/sebasMaldonado10/API-viandas/internal/service"
)

// 本地调试用：初始化管理员账号、示例菜品和今日菜单
func main() {
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := mysql.Init(&cfg.MySQL)
	ctx := context.Background()

	userRepo := mysql.NewUserRepository(db)
	productRepo := mysql.NewProductRepository(db)
	menuRepo := mysql.NewMenuRepository(db)

	userSvc := service.NewUserService(userRepo, &cfg.JWT)
	productSvc := service.NewProductService(productRepo)
	menuSvc := service.NewMenuService(menuRepo, productRepo)

	// 管理员账号
	if _, err := userSvc.Register(ctx, "admin", "admin123", user.RoleAdmin, ""); err != nil {
		log.Printf("admin account: %v", err)
	} else {
		log.Println("admin account created: admin/admin123")
	}

	// 示例菜品（价格单位：分）
	seeds := []*product.Product{
		{Name: "米兰风味炸猪排", Description: "配柠檬角", Price: 3500, Active: true},
		{Name: "烤牛肉配土豆泥", Description: "慢烤四小时", Price: 4200, Active: true},
		{Name: "蔬菜馅饼", Description: "素食", Price: 2800, Active: true},
		{Name: "招牌意面", Description: "自制番茄酱", Price: 3000, Active: true},
	}
	var created []*product.Product
	for _, p := range seeds {
		if err := productSvc.Create(ctx, p); err != nil {
			log.Printf("seed product %q: %v", p.Name, err)
			continue
		}
		created = append(created, p)
		log.Printf("product #%d %s", p.ID, p.Name)
	}

	// 今日菜单
	today := time.Now().Format("2006-01-02")
	day, err := menuSvc.CreateDay(ctx, today, true)
	if err != nil {
		log.Fatalf("create menu day: %v", err)
	}
	for _, p := range created {
		if _, err := menuSvc.AddItem(ctx, day.ID, p.ID); err != nil {
			log.Printf("add menu item %d: %v", p.ID, err)
		}
	}

	fmt.Printf("seeded menu day %s (#%d) with %d products\n", today, day.ID, len(created))
}
