package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
	"github.com/sebasMaldonado10/API-viandas/internal/service"
)

func TestProductCreateValidation(t *testing.T) {
	svc := service.NewProductService(newFakeProductRepo())
	ctx := context.Background()

	err := svc.Create(ctx, &product.Product{Name: "", Price: 1000})
	assert.ErrorIs(t, err, service.ErrInvalid)
	err = svc.Create(ctx, &product.Product{Name: "烤牛肉", Price: 0})
	assert.ErrorIs(t, err, service.ErrInvalid)
	err = svc.Create(ctx, &product.Product{Name: "烤牛肉", Price: -100})
	assert.ErrorIs(t, err, service.ErrInvalid)

	p := &product.Product{Name: "烤牛肉", Price: 4200, Active: true}
	require.NoError(t, svc.Create(ctx, p))
	assert.NotZero(t, p.ID)
}

func TestProductPartialUpdate(t *testing.T) {
	svc := service.NewProductService(newFakeProductRepo())
	ctx := context.Background()

	p := &product.Product{Name: "蔬菜馅饼", Description: "素食", Price: 2800, Active: true}
	require.NoError(t, svc.Create(ctx, p))

	// 只改价格，其余字段保持
	newPrice := int64(3100)
	got, err := svc.Update(ctx, p.ID, service.ProductUpdate{Price: &newPrice})
	require.NoError(t, err)
	assert.EqualValues(t, 3100, got.Price)
	assert.Equal(t, "蔬菜馅饼", got.Name)
	assert.Equal(t, "素食", got.Description)

	// 下架
	inactive := false
	got, err = svc.Update(ctx, p.ID, service.ProductUpdate{Active: &inactive})
	require.NoError(t, err)
	assert.False(t, got.Active)

	// 非法部分更新
	empty := ""
	_, err = svc.Update(ctx, p.ID, service.ProductUpdate{Name: &empty})
	assert.ErrorIs(t, err, service.ErrInvalid)
	badPrice := int64(0)
	_, err = svc.Update(ctx, p.ID, service.ProductUpdate{Price: &badPrice})
	assert.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.Update(ctx, 9999, service.ProductUpdate{Price: &newPrice})
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	svc := service.NewProductService(newFakeProductRepo())
	ctx := context.Background()

	p := &product.Product{Name: "招牌意面", Price: 3000, Active: true}
	require.NoError(t, svc.Create(ctx, p))
	require.NoError(t, svc.Delete(ctx, p.ID))

	_, err := svc.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
	err = svc.Delete(ctx, p.ID)
	assert.ErrorIs(t, err, service.ErrProductNotFound)
}
