package service_test

import (
	"context"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/menu"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/order"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/user"
)

// 内存版仓储，实现 datamodels 各接口，供服务层测试使用

type fakeUserRepo struct {
	mu    sync.Mutex
	seq   int64
	users map[int64]*user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[int64]*user.User)}
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	u.ID = r.seq
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) ListAll(ctx context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

type fakeProductRepo struct {
	mu       sync.Mutex
	seq      int64
	products map[int64]*product.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[int64]*product.Product)}
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *fakeProductRepo) ListAll(ctx context.Context) ([]*product.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*product.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = r.seq
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Update(ctx context.Context, p *product.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.products[p.ID] = p
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

type fakeMenuRepo struct {
	mu      sync.Mutex
	daySeq  int64
	itemSeq int64
	days    map[int64]*menu.MenuDay
	items   map[int64]*menu.MenuItem
}

func newFakeMenuRepo() *fakeMenuRepo {
	return &fakeMenuRepo{
		days:  make(map[int64]*menu.MenuDay),
		items: make(map[int64]*menu.MenuItem),
	}
}

func (r *fakeMenuRepo) GetDay(ctx context.Context, id int64) (*menu.MenuDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	d, ok := r.days[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return d, nil
}

func (r *fakeMenuRepo) GetDayByDate(ctx context.Context, date string) (*menu.MenuDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, d := range r.days {
		if d.Date == date {
			return d, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMenuRepo) ListDays(ctx context.Context) ([]*menu.MenuDay, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*menu.MenuDay, 0, len(r.days))
	for _, d := range r.days {
		out = append(out, d)
	}
	return out, nil
}

func (r *fakeMenuRepo) CreateDay(ctx context.Context, d *menu.MenuDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.daySeq++
	d.ID = r.daySeq
	r.days[d.ID] = d
	return nil
}

func (r *fakeMenuRepo) UpdateDay(ctx context.Context, d *menu.MenuDay) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.days[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.days[d.ID] = d
	return nil
}

func (r *fakeMenuRepo) DeleteDay(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.days, id)
	for itemID, it := range r.items {
		if it.MenuDayID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

func (r *fakeMenuRepo) GetItem(ctx context.Context, id int64) (*menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (r *fakeMenuRepo) GetItemByDayProduct(ctx context.Context, menuDayID, productID int64) (*menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, it := range r.items {
		if it.MenuDayID == menuDayID && it.ProductID == productID {
			return it, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeMenuRepo) ListItems(ctx context.Context, menuDayID int64) ([]*menu.MenuItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*menu.MenuItem
	for _, it := range r.items {
		if it.MenuDayID == menuDayID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeMenuRepo) CreateItem(ctx context.Context, it *menu.MenuItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemSeq++
	it.ID = r.itemSeq
	r.items[it.ID] = it
	return nil
}

func (r *fakeMenuRepo) DeleteItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

type fakeOrderRepo struct {
	mu       sync.Mutex
	orderSeq int64
	itemSeq  int64
	orders   map[int64]*order.Order
	items    map[int64]*order.OrderItem
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders: make(map[int64]*order.Order),
		items:  make(map[int64]*order.OrderItem),
	}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orderSeq++
	o.ID = r.orderSeq
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) GetByID(ctx context.Context, id int64) (*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) ListByUser(ctx context.Context, userID int64) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) ListAll(ctx context.Context) ([]*order.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o)
	}
	return out, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.orders, id)
	for itemID, it := range r.items {
		if it.OrderID == id {
			delete(r.items, itemID)
		}
	}
	return nil
}

func (r *fakeOrderRepo) GetItem(ctx context.Context, id int64) (*order.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	it, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return it, nil
}

func (r *fakeOrderRepo) ListItems(ctx context.Context, orderID int64) ([]*order.OrderItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*order.OrderItem
	for _, it := range r.items {
		if it.OrderID == orderID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *fakeOrderRepo) CreateItem(ctx context.Context, it *order.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.itemSeq++
	it.ID = r.itemSeq
	r.items[it.ID] = it
	return nil
}

func (r *fakeOrderRepo) UpdateItem(ctx context.Context, it *order.OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[it.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.items[it.ID] = it
	return nil
}

func (r *fakeOrderRepo) DeleteItem(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, id)
	return nil
}

func (r *fakeOrderRepo) SumItemPrices(ctx context.Context, orderID int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var total int64
	for _, it := range r.items {
		if it.OrderID == orderID {
			total += it.Price
		}
	}
	return total, nil
}

func (r *fakeOrderRepo) UpdateTotal(ctx context.Context, orderID, total int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.orders[orderID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	o.TotalPrice = total
	return nil
}

func (r *fakeOrderRepo) Transaction(ctx context.Context, fn func(order.Repository) error) error {
	return fn(r)
}
