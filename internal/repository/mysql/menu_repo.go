package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/menu"
)

type menuRepo struct {
	db *gorm.DB
}

// NewMenuRepository 创建菜单仓储
func NewMenuRepository(db *gorm.DB) menu.Repository {
	return &menuRepo{db: db}
}

func (r *menuRepo) GetDay(ctx context.Context, id int64) (*menu.MenuDay, error) {
	var d menu.MenuDay
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *menuRepo) GetDayByDate(ctx context.Context, date string) (*menu.MenuDay, error) {
	var d menu.MenuDay
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *menuRepo) ListDays(ctx context.Context) ([]*menu.MenuDay, error) {
	var list []*menu.MenuDay
	if err := r.db.WithContext(ctx).
		Order("date DESC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *menuRepo) CreateDay(ctx context.Context, d *menu.MenuDay) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *menuRepo) UpdateDay(ctx context.Context, d *menu.MenuDay) error {
	return r.db.WithContext(ctx).Save(d).Error
}

// DeleteDay 删除菜单日并级联清理其条目（历史订单不受影响）
func (r *menuRepo) DeleteDay(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_day_id = ?", id).
			Delete(&menu.MenuItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&menu.MenuDay{}, id).Error
	})
}

func (r *menuRepo) GetItem(ctx context.Context, id int64) (*menu.MenuItem, error) {
	var it menu.MenuItem
	if err := r.db.WithContext(ctx).First(&it, id).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *menuRepo) GetItemByDayProduct(ctx context.Context, menuDayID, productID int64) (*menu.MenuItem, error) {
	var it menu.MenuItem
	if err := r.db.WithContext(ctx).
		Where("menu_day_id = ? AND product_id = ?", menuDayID, productID).
		First(&it).Error; err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *menuRepo) ListItems(ctx context.Context, menuDayID int64) ([]*menu.MenuItem, error) {
	var list []*menu.MenuItem
	if err := r.db.WithContext(ctx).
		Where("menu_day_id = ?", menuDayID).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *menuRepo) CreateItem(ctx context.Context, it *menu.MenuItem) error {
	return r.db.WithContext(ctx).Create(it).Error
}

func (r *menuRepo) DeleteItem(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&menu.MenuItem{}, id).Error
}
