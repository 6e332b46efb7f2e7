package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/order"
)

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, o *order.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	var o order.Order
	if err := r.db.WithContext(ctx).First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	var list []*order.Order
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepo) ListAll(ctx context.Context) ([]*order.Order, error) {
	var list []*order.Order
	if err := r.db.WithContext(ctx).
		Order("id DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete 删除订单及其订单项
func (r *orderRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).
			Delete(&order.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order.Order{}, id).Error
	})
}

func (r *orderRepo) GetItem(ctx context.Context, id int64) (*order.OrderItem, error) {
	var it order.OrderItem
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *orderRepo) ListItems(ctx context.Context, orderID int64) ([]*order.OrderItem, error) {
	var list []*order.OrderItem
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *orderRepo) CreateItem(ctx context.Context, it *order.OrderItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *orderRepo) UpdateItem(ctx context.Context, it *order.OrderItem) error {
	return r.db.WithContext(ctx).Save(it).Error
}

func (r *orderRepo) DeleteItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&order.OrderItem{}, id).Error
}

func (r *orderRepo) SumItemPrices(ctx context.Context, orderID int64) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&order.OrderItem{}).
		Where("order_id = ?", orderID).
		Select("COALESCE(SUM(price), 0)").
		Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func (r *orderRepo) UpdateTotal(ctx context.Context, orderID, total int64) error {
	return r.db.WithContext(ctx).
		Model(&order.Order{}).
		Where("id = ?", orderID).
		Update("total_price", total).Error
}

// Transaction 在一个数据库事务内执行 fn，fn 拿到的是绑定事务的仓储实例
func (r *orderRepo) Transaction(ctx context.Context, fn func(order.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepo{db: tx})
	})
}
