package mysql

import (
	"log"
	"sync"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/config"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/menu"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/order"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/user"
)

var (
	db   *gorm.DB
	once sync.Once
)

// Init 初始化全局 GORM 实例并自动迁移表结构
func Init(cfg *config.MySQLConfig) *gorm.DB {
	once.Do(func() {
		var err error
		db, err = gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to connect mysql: %v", err)
		}

		if err = db.AutoMigrate(
			&user.User{},
			&product.Product{},
			&menu.MenuDay{},
			&menu.MenuItem{},
			&order.Order{},
			&order.OrderItem{},
		); err != nil {
			log.Fatalf("auto migrate failed: %v", err)
		}
	})
	return db
}

// DB 获取全局 DB
func DB() *gorm.DB {
	return db
}
