package order

import (
	"context"
	"time"
)

// 订单状态枚举
const (
	StatusCreated       = "CREATED"
	StatusInPreparation = "IN_PREPARATION"
	StatusReady         = "READY"
	StatusDelivered     = "DELIVERED"
	StatusCancelled     = "CANCELLED"
)

// ValidStatus 校验状态是否在枚举内
func ValidStatus(status string) bool {
	switch status {
	case StatusCreated, StatusInPreparation, StatusReady, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// Order 订单模型
type Order struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	UserID     int64     `gorm:"index;not null" json:"user_id"`
	MenuDayID  int64     `gorm:"index;not null" json:"menu_day_id"`
	TotalPrice int64     `gorm:"not null" json:"total_price"` // 分，恒等于订单项小计之和
	Status     string    `gorm:"size:32;index;not null;default:CREATED" json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"-"`
}

// OrderItem 订单项：下单时按菜品单价快照计算小计，后续改价不影响历史订单
type OrderItem struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	OrderID   int64     `gorm:"index;not null" json:"order_id"`
	ProductID int64     `gorm:"index;not null" json:"product_id"`
	Quantity  int64     `gorm:"not null" json:"quantity"`
	Price     int64     `gorm:"not null" json:"price"` // 分，= 单价 × 数量（写入时快照）
	CreatedAt time.Time `json:"created_at"`
}

// Repository 订单仓储接口。
// Transaction 返回绑定到同一事务的仓储实例，订单项写入与总价重算必须在其中完成。
type Repository interface {
	Create(ctx context.Context, o *Order) error
	GetByID(ctx context.Context, id int64) (*Order, error)
	ListByUser(ctx context.Context, userID int64) ([]*Order, error)
	ListAll(ctx context.Context) ([]*Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error

	GetItem(ctx context.Context, id int64) (*OrderItem, error)
	ListItems(ctx context.Context, orderID int64) ([]*OrderItem, error)
	CreateItem(ctx context.Context, it *OrderItem) error
	UpdateItem(ctx context.Context, it *OrderItem) error
	DeleteItem(ctx context.Context, id int64) error
	SumItemPrices(ctx context.Context, orderID int64) (int64, error)
	UpdateTotal(ctx context.Context, orderID, total int64) error

	Transaction(ctx context.Context, fn func(Repository) error) error
}
