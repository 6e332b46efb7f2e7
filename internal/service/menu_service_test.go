package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/service"
)

func newMenuFixture(t *testing.T) (*service.MenuService, *fakeMenuRepo, *fakeProductRepo) {
	t.Helper()
	menus := newFakeMenuRepo()
	products := newFakeProductRepo()
	return service.NewMenuService(menus, products), menus, products
}

func TestCreateDayValidation(t *testing.T) {
	svc, _, _ := newMenuFixture(t)
	ctx := context.Background()

	// 日期必须是 YYYY-MM-DD
	for _, bad := range []string{"", "hoy", "01-09-2026", "2026/09/01", "2026-13-40"} {
		_, err := svc.CreateDay(ctx, bad, true)
		assert.ErrorIs(t, err, service.ErrInvalid, "date %q", bad)
	}

	d, err := svc.CreateDay(ctx, "2026-09-01", true)
	require.NoError(t, err)
	assert.True(t, d.IsOpen)

	// 同一天只能有一份菜单
	_, err = svc.CreateDay(ctx, "2026-09-01", false)
	assert.ErrorIs(t, err, service.ErrMenuDayExists)
}

func TestUpdateDayToggle(t *testing.T) {
	svc, _, _ := newMenuFixture(t)
	ctx := context.Background()

	d, err := svc.CreateDay(ctx, "2026-09-02", true)
	require.NoError(t, err)

	d, err = svc.UpdateDay(ctx, d.ID, false)
	require.NoError(t, err)
	assert.False(t, d.IsOpen)

	_, err = svc.UpdateDay(ctx, 9999, true)
	assert.ErrorIs(t, err, service.ErrMenuDayNotFound)
}

func TestMenuItemUniquePerDay(t *testing.T) {
	svc, _, products := newMenuFixture(t)
	ctx := context.Background()

	p := &product.Product{Name: "招牌意面", Price: 3000, Active: true}
	require.NoError(t, products.Create(ctx, p))
	d, err := svc.CreateDay(ctx, "2026-09-03", true)
	require.NoError(t, err)

	it, err := svc.AddItem(ctx, d.ID, p.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, it.MenuDayID)

	// (day, product) 重复挂载被拒绝
	_, err = svc.AddItem(ctx, d.ID, p.ID)
	assert.ErrorIs(t, err, service.ErrMenuItemExists)

	// 菜品或菜单日不存在
	_, err = svc.AddItem(ctx, d.ID, 9999)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
	_, err = svc.AddItem(ctx, 9999, p.ID)
	assert.ErrorIs(t, err, service.ErrMenuDayNotFound)

	// 移除后可重新挂载
	require.NoError(t, svc.RemoveItem(ctx, it.ID))
	_, err = svc.AddItem(ctx, d.ID, p.ID)
	require.NoError(t, err)

	err = svc.RemoveItem(ctx, 9999)
	assert.ErrorIs(t, err, service.ErrMenuItemNotFound)
}

func TestDeleteDayRemovesItems(t *testing.T) {
	svc, menus, products := newMenuFixture(t)
	ctx := context.Background()

	p := &product.Product{Name: "南瓜汤", Price: 800, Active: true}
	require.NoError(t, products.Create(ctx, p))
	d, err := svc.CreateDay(ctx, "2026-09-04", true)
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, d.ID, p.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDay(ctx, d.ID))
	_, err = svc.GetDay(ctx, d.ID)
	assert.ErrorIs(t, err, service.ErrMenuDayNotFound)

	items, err := menus.ListItems(ctx, d.ID)
	require.NoError(t, err)
	assert.Empty(t, items)

	err = svc.DeleteDay(ctx, d.ID)
	assert.ErrorIs(t, err, service.ErrMenuDayNotFound)
}
