package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/menu"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/order"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/user"
)

// OrderService 订单与订单项管理。
// 所有操作显式接收调用者 (callerID, role)，不从请求上下文隐式取身份。
type OrderService struct {
	orderRepo   order.Repository
	productRepo product.Repository
	menuRepo    menu.Repository
	events      *OrderEventPublisher
}

// NewOrderService 创建订单服务，events 可为 nil（不发事件）
func NewOrderService(
	orderRepo order.Repository,
	productRepo product.Repository,
	menuRepo menu.Repository,
	events *OrderEventPublisher,
) *OrderService {
	return &OrderService{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		menuRepo:    menuRepo,
		events:      events,
	}
}

// canAccess 订单归属校验：本人或管理员
func canAccess(o *order.Order, callerID int64, role string) bool {
	return o.UserID == callerID || role == user.RoleAdmin
}

// Create 针对某个开放的菜单日创建空订单，初始状态 CREATED、总价 0
func (s *OrderService) Create(ctx context.Context, callerID, menuDayID int64) (*order.Order, error) {
	d, err := s.menuRepo.GetDay(ctx, menuDayID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuDayNotFound
		}
		return nil, err
	}
	if !d.IsOpen {
		return nil, ErrMenuDayClosed
	}

	o := &order.Order{
		UserID:     callerID,
		MenuDayID:  menuDayID,
		TotalPrice: 0,
		Status:     order.StatusCreated,
	}
	if err := s.orderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	GetMonitor().RecordOrderCreated()
	s.events.Publish(ctx, EventOrderCreated, o)
	return o, nil
}

// List 客户端只能看到自己的订单，管理员看到全部
func (s *OrderService) List(ctx context.Context, callerID int64, role string) ([]*order.Order, error) {
	if role == user.RoleAdmin {
		return s.orderRepo.ListAll(ctx)
	}
	return s.orderRepo.ListByUser(ctx, callerID)
}

// Get 查询订单。订单存在但不属于调用者时统一返回 Forbidden，而不是 NotFound。
func (s *OrderService) Get(ctx context.Context, callerID int64, role string, orderID int64) (*order.Order, error) {
	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	if !canAccess(o, callerID, role) {
		return nil, ErrForbidden
	}
	return o, nil
}

// UpdateStatus 管理员更新订单状态。仅校验枚举成员资格，不限制状态迁移顺序。
func (s *OrderService) UpdateStatus(ctx context.Context, callerID int64, role string, orderID int64, status string) (*order.Order, error) {
	if role != user.RoleAdmin {
		return nil, ErrForbidden
	}
	if !order.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	o, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if err := s.orderRepo.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	o.Status = status

	s.events.Publish(ctx, EventOrderStatusChanged, o)
	return o, nil
}

// Delete 管理员删除订单（连同订单项）
func (s *OrderService) Delete(ctx context.Context, callerID int64, role string, orderID int64) error {
	if role != user.RoleAdmin {
		return ErrForbidden
	}
	if _, err := s.orderRepo.GetByID(ctx, orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}
	return s.orderRepo.Delete(ctx, orderID)
}

// ListItems 列出订单项，归属校验同 Get
func (s *OrderService) ListItems(ctx context.Context, callerID int64, role string, orderID int64) ([]*order.OrderItem, error) {
	if _, err := s.Get(ctx, callerID, role, orderID); err != nil {
		return nil, err
	}
	return s.orderRepo.ListItems(ctx, orderID)
}

// validateItem 订单项准入校验：菜品存在 → 上架 → 在订单当日菜单内 → 数量为正。
// 通过后返回小计（单价 × 数量，写入时快照），本身不落库。
func (s *OrderService) validateItem(ctx context.Context, menuDayID, productID, quantity int64) (int64, error) {
	p, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			GetMonitor().RecordValidationReject()
			return 0, ErrProductNotFound
		}
		return 0, err
	}
	if !p.Active {
		GetMonitor().RecordValidationReject()
		return 0, ErrProductInactive
	}

	if _, err := s.menuRepo.GetItemByDayProduct(ctx, menuDayID, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			GetMonitor().RecordValidationReject()
			return 0, ErrNotOnMenu
		}
		return 0, err
	}

	if quantity <= 0 {
		GetMonitor().RecordValidationReject()
		return 0, ErrInvalidQuantity
	}
	return p.Price * quantity, nil
}

// recomputeTotal 汇总当前订单项小计并写回订单总价。
// 必须与订单项变更处于同一事务，任何订单项写入都不允许跳过这一步。
func recomputeTotal(ctx context.Context, repo order.Repository, orderID int64) error {
	total, err := repo.SumItemPrices(ctx, orderID)
	if err != nil {
		return err
	}
	return repo.UpdateTotal(ctx, orderID, total)
}

// AddItem 向订单添加一个订单项并重算总价
func (s *OrderService) AddItem(ctx context.Context, callerID int64, role string, orderID, productID, quantity int64) (*order.OrderItem, error) {
	o, err := s.Get(ctx, callerID, role, orderID)
	if err != nil {
		return nil, err
	}

	price, err := s.validateItem(ctx, o.MenuDayID, productID, quantity)
	if err != nil {
		return nil, err
	}

	it := &order.OrderItem{
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  quantity,
		Price:     price,
	}
	err = s.orderRepo.Transaction(ctx, func(tx order.Repository) error {
		if err := tx.CreateItem(ctx, it); err != nil {
			return err
		}
		return recomputeTotal(ctx, tx, orderID)
	})
	if err != nil {
		GetMonitor().RecordDBError()
		return nil, err
	}

	GetMonitor().RecordItemMutation()
	return it, nil
}

// ItemUpdate 订单项部分更新，nil 表示保持原值
type ItemUpdate struct {
	ProductID *int64
	Quantity  *int64
}

// UpdateItem 修改订单项（菜品或数量），重新快照小计并重算总价
func (s *OrderService) UpdateItem(ctx context.Context, callerID int64, role string, itemID int64, upd ItemUpdate) (*order.OrderItem, error) {
	it, err := s.orderRepo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderItemNotFound
		}
		return nil, err
	}

	o, err := s.Get(ctx, callerID, role, it.OrderID)
	if err != nil {
		return nil, err
	}

	productID := it.ProductID
	if upd.ProductID != nil {
		productID = *upd.ProductID
	}
	quantity := it.Quantity
	if upd.Quantity != nil {
		quantity = *upd.Quantity
	}

	price, err := s.validateItem(ctx, o.MenuDayID, productID, quantity)
	if err != nil {
		return nil, err
	}

	it.ProductID = productID
	it.Quantity = quantity
	it.Price = price
	err = s.orderRepo.Transaction(ctx, func(tx order.Repository) error {
		if err := tx.UpdateItem(ctx, it); err != nil {
			return err
		}
		return recomputeTotal(ctx, tx, it.OrderID)
	})
	if err != nil {
		GetMonitor().RecordDBError()
		return nil, err
	}

	GetMonitor().RecordItemMutation()
	return it, nil
}

// RemoveItem 删除订单项并重算总价，删除最后一项后总价归零
func (s *OrderService) RemoveItem(ctx context.Context, callerID int64, role string, itemID int64) error {
	it, err := s.orderRepo.GetItem(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderItemNotFound
		}
		return err
	}

	if _, err := s.Get(ctx, callerID, role, it.OrderID); err != nil {
		return err
	}

	err = s.orderRepo.Transaction(ctx, func(tx order.Repository) error {
		if err := tx.DeleteItem(ctx, itemID); err != nil {
			return err
		}
		return recomputeTotal(ctx, tx, it.OrderID)
	})
	if err != nil {
		GetMonitor().RecordDBError()
		return err
	}

	GetMonitor().RecordItemMutation()
	return nil
}
