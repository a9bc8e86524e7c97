// Package mocks dobles de prueba (testify/mock) de los puertos de repositorio.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
)

var (
	_ repository.ProductRepository      = (*ProductRepository)(nil)
	_ repository.CategoryRepository     = (*CategoryRepository)(nil)
	_ repository.ColorRepository        = (*ColorRepository)(nil)
	_ repository.RoomRepository         = (*RoomRepository)(nil)
	_ repository.ProductBatchRepository = (*ProductBatchRepository)(nil)
	_ repository.CouponRepository       = (*CouponRepository)(nil)
	_ repository.ReviewRepository       = (*ReviewRepository)(nil)
	_ repository.DashboardRepository    = (*DashboardRepository)(nil)
)

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductRepository) Create(ctx context.Context, in entity.ProductDraft) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ProductRepository) Update(ctx context.Context, id string, in entity.ProductDraft) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *ProductRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type CategoryRepository struct{ mock.Mock }

func (m *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Category), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CategoryRepository) ListSubCategories(ctx context.Context, categoryID string) ([]entity.SubCategory, error) {
	args := m.Called(ctx, categoryID)
	if v := args.Get(0); v != nil {
		return v.([]entity.SubCategory), args.Error(1)
	}
	return nil, args.Error(1)
}

type ColorRepository struct{ mock.Mock }

func (m *ColorRepository) ListByProduct(ctx context.Context, productID string) ([]entity.Color, error) {
	args := m.Called(ctx, productID)
	if v := args.Get(0); v != nil {
		return v.([]entity.Color), args.Error(1)
	}
	return nil, args.Error(1)
}

type RoomRepository struct{ mock.Mock }

func (m *RoomRepository) List(ctx context.Context) ([]entity.Room, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Room), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *RoomRepository) Create(ctx context.Context, in entity.RoomDraft) error {
	return m.Called(ctx, in).Error(0)
}

func (m *RoomRepository) Update(ctx context.Context, id string, in entity.RoomDraft) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *RoomRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ProductBatchRepository struct{ mock.Mock }

func (m *ProductBatchRepository) List(ctx context.Context) ([]entity.ProductBatch, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.ProductBatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductBatchRepository) GetByID(ctx context.Context, id string) (*entity.ProductBatch, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.ProductBatch), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProductBatchRepository) Create(ctx context.Context, in entity.BatchPayload) error {
	return m.Called(ctx, in).Error(0)
}

func (m *ProductBatchRepository) Update(ctx context.Context, id string, in entity.BatchPayload) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *ProductBatchRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type CouponRepository struct{ mock.Mock }

func (m *CouponRepository) List(ctx context.Context) ([]entity.Coupon, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Coupon), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *CouponRepository) Create(ctx context.Context, in entity.CouponDraft) error {
	return m.Called(ctx, in).Error(0)
}

func (m *CouponRepository) Update(ctx context.Context, id string, in entity.CouponDraft) error {
	return m.Called(ctx, id, in).Error(0)
}

func (m *CouponRepository) SetActive(ctx context.Context, id string, active bool) error {
	return m.Called(ctx, id, active).Error(0)
}

func (m *CouponRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type ReviewRepository struct{ mock.Mock }

func (m *ReviewRepository) List(ctx context.Context) ([]entity.Review, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]entity.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ReviewRepository) Deactivate(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

type DashboardRepository struct{ mock.Mock }

func (m *DashboardRepository) Overview(ctx context.Context, rangeTag string) (*entity.DashboardOverview, error) {
	args := m.Called(ctx, rangeTag)
	if v := args.Get(0); v != nil {
		return v.(*entity.DashboardOverview), args.Error(1)
	}
	return nil, args.Error(1)
}
