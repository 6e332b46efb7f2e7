package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/menu"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
)

// MenuService 每日菜单管理：菜单日 CRUD 与菜单条目维护
type MenuService struct {
	menuRepo    menu.Repository
	productRepo product.Repository
}

// NewMenuService 创建菜单服务
func NewMenuService(menuRepo menu.Repository, productRepo product.Repository) *MenuService {
	return &MenuService{menuRepo: menuRepo, productRepo: productRepo}
}

// ListDays 列出全部菜单日
func (s *MenuService) ListDays(ctx context.Context) ([]*menu.MenuDay, error) {
	return s.menuRepo.ListDays(ctx)
}

// GetDay 查询菜单日
func (s *MenuService) GetDay(ctx context.Context, id int64) (*menu.MenuDay, error) {
	d, err := s.menuRepo.GetDay(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuDayNotFound
		}
		return nil, err
	}
	return d, nil
}

// CreateDay 新建菜单日，日期格式 YYYY-MM-DD 且全局唯一
func (s *MenuService) CreateDay(ctx context.Context, date string, isOpen bool) (*menu.MenuDay, error) {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, ErrInvalid
	}

	if _, err := s.menuRepo.GetDayByDate(ctx, date); err == nil {
		return nil, ErrMenuDayExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	d := &menu.MenuDay{Date: date, IsOpen: isOpen}
	if err := s.menuRepo.CreateDay(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// UpdateDay 开放/关闭菜单日
func (s *MenuService) UpdateDay(ctx context.Context, id int64, isOpen bool) (*menu.MenuDay, error) {
	d, err := s.GetDay(ctx, id)
	if err != nil {
		return nil, err
	}
	d.IsOpen = isOpen
	if err := s.menuRepo.UpdateDay(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

// DeleteDay 删除菜单日及其条目，已有订单不受影响
func (s *MenuService) DeleteDay(ctx context.Context, id int64) error {
	if _, err := s.GetDay(ctx, id); err != nil {
		return err
	}
	return s.menuRepo.DeleteDay(ctx, id)
}

// ListItems 列出某菜单日的条目
func (s *MenuService) ListItems(ctx context.Context, menuDayID int64) ([]*menu.MenuItem, error) {
	if _, err := s.GetDay(ctx, menuDayID); err != nil {
		return nil, err
	}
	return s.menuRepo.ListItems(ctx, menuDayID)
}

// AddItem 把菜品挂到某菜单日，(day, product) 不可重复
func (s *MenuService) AddItem(ctx context.Context, menuDayID, productID int64) (*menu.MenuItem, error) {
	if _, err := s.GetDay(ctx, menuDayID); err != nil {
		return nil, err
	}
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if _, err := s.menuRepo.GetItemByDayProduct(ctx, menuDayID, productID); err == nil {
		return nil, ErrMenuItemExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	it := &menu.MenuItem{MenuDayID: menuDayID, ProductID: productID}
	if err := s.menuRepo.CreateItem(ctx, it); err != nil {
		return nil, err
	}
	return it, nil
}

// RemoveItem 把菜品从菜单日移除，不回溯影响已引用它的订单
func (s *MenuService) RemoveItem(ctx context.Context, itemID int64) error {
	if _, err := s.menuRepo.GetItem(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrMenuItemNotFound
		}
		return err
	}
	return s.menuRepo.DeleteItem(ctx, itemID)
}
