package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/sebasMaldonado10/API-viandas/internal/datamodels/product"
)

// ProductService 菜品管理
type ProductService struct {
	repo product.Repository
}

// NewProductService 创建菜品服务
func NewProductService(repo product.Repository) *ProductService {
	return &ProductService{repo: repo}
}

// List 列出全部菜品
func (s *ProductService) List(ctx context.Context) ([]*product.Product, error) {
	return s.repo.ListAll(ctx)
}

// GetByID 查询单个菜品
func (s *ProductService) GetByID(ctx context.Context, id int64) (*product.Product, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

// Create 新建菜品，名称必填、价格必须为正
func (s *ProductService) Create(ctx context.Context, p *product.Product) error {
	if p.Name == "" || p.Price <= 0 {
		return ErrInvalid
	}
	return s.repo.Create(ctx, p)
}

// ProductUpdate 部分更新字段，nil 表示保持原值
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *int64
	Active      *bool
	ImageURL    *string
}

// Update 部分更新菜品
func (s *ProductService) Update(ctx context.Context, id int64, upd ProductUpdate) (*product.Product, error) {
	p, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		if *upd.Name == "" {
			return nil, ErrInvalid
		}
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, ErrInvalid
		}
		p.Price = *upd.Price
	}
	if upd.Active != nil {
		p.Active = *upd.Active
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Delete 删除菜品
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
