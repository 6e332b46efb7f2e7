package menu

import (
	"context"
	"time"
)

// MenuDay 每日菜单：某个日期可下单的菜品集合，带开放/关闭开关
type MenuDay struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Date      string    `gorm:"size:10;uniqueIndex;not null" json:"date"` // YYYY-MM-DD，每天最多一份菜单
	IsOpen    bool      `gorm:"not null;default:true" json:"is_open"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// MenuItem 菜单条目：某日菜单与菜品的关联，(menu_day_id, product_id) 唯一
type MenuItem struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	MenuDayID int64     `gorm:"uniqueIndex:uk_day_product;not null" json:"menu_day_id"`
	ProductID int64     `gorm:"uniqueIndex:uk_day_product;not null" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository 菜单仓储接口
type Repository interface {
	GetDay(ctx context.Context, id int64) (*MenuDay, error)
	GetDayByDate(ctx context.Context, date string) (*MenuDay, error)
	ListDays(ctx context.Context) ([]*MenuDay, error)
	CreateDay(ctx context.Context, d *MenuDay) error
	UpdateDay(ctx context.Context, d *MenuDay) error
	DeleteDay(ctx context.Context, id int64) error

	GetItem(ctx context.Context, id int64) (*MenuItem, error)
	GetItemByDayProduct(ctx context.Context, menuDayID, productID int64) (*MenuItem, error)
	ListItems(ctx context.Context, menuDayID int64) ([]*MenuItem, error)
	CreateItem(ctx context.Context, it *MenuItem) error
	DeleteItem(ctx context.Context, id int64) error
}
