package usecase_test

import (
	"context"
	"testing"
	"time"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"
	"catalogo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks
// =====================

type CartStoreMock struct{ mock.Mock }

func (m *CartStoreMock) Load(ctx context.Context, catalogID int64, sessionID string) (model.Cart, error) {
	args := m.Called(ctx, catalogID, sessionID)
	cart, _ := args.Get(0).(model.Cart)
	return cart, args.Error(1)
}

func (m *CartStoreMock) Save(ctx context.Context, catalogID int64, sessionID string, cart model.Cart) error {
	args := m.Called(ctx, catalogID, sessionID, cart)
	return args.Error(0)
}

type ProductRepoMock struct{ mock.Mock }

func (m *ProductRepoMock) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) ListAdmin(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProductRepoMock) Search(ctx context.Context, catalogID int64, term string) ([]model.Product, error) {
	args := m.Called(ctx, catalogID, term)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Error(1)
}

func (m *ProductRepoMock) FindByID(ctx context.Context, catalogID int64, id int64) (model.Product, error) {
	args := m.Called(ctx, catalogID, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) FindBySlug(ctx context.Context, catalogID int64, slug string) (model.Product, error) {
	args := m.Called(ctx, catalogID, slug)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *ProductRepoMock) SetActive(ctx context.Context, catalogID int64, id int64, isActive bool) error {
	args := m.Called(ctx, catalogID, id, isActive)
	return args.Error(0)
}

func (m *ProductRepoMock) SoftDelete(ctx context.Context, catalogID int64, id int64) error {
	args := m.Called(ctx, catalogID, id)
	return args.Error(0)
}

type CatalogRepoMock struct{ mock.Mock }

func (m *CatalogRepoMock) FindByID(ctx context.Context, id int64) (model.Catalog, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(model.Catalog)
	return c, args.Error(1)
}

func (m *CatalogRepoMock) FindByCustomDomain(ctx context.Context, domain string) (model.Catalog, error) {
	args := m.Called(ctx, domain)
	c, _ := args.Get(0).(model.Catalog)
	return c, args.Error(1)
}

func (m *CatalogRepoMock) FindBySlug(ctx context.Context, slug string) (model.Catalog, error) {
	args := m.Called(ctx, slug)
	c, _ := args.Get(0).(model.Catalog)
	return c, args.Error(1)
}

func (m *CatalogRepoMock) Update(ctx context.Context, c model.Catalog) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

type InventoryRepoMock struct{ mock.Mock }

func (m *InventoryRepoMock) DecrementStock(ctx context.Context, productID int64, qty int64) (int64, error) {
	args := m.Called(ctx, productID, qty)
	return args.Get(0).(int64), args.Error(1)
}

func (m *InventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

// テスト用の素通しTx。fnをそのまま呼ぶだけ。
type fakeTxManager struct {
	inventory repo.InventoryRepository
	products  repo.ProductRepository
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(fakeTxRepos{inventory: f.inventory, products: f.products})
}

type fakeTxRepos struct {
	inventory repo.InventoryRepository
	products  repo.ProductRepository
}

func (r fakeTxRepos) Products() repo.ProductRepository    { return r.products }
func (r fakeTxRepos) Inventory() repo.InventoryRepository { return r.inventory }

// 固定時刻
type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

// =====================
// Helpers
// =====================

func assertHTTPError(t *testing.T, err error, status int, message string) {
	t.Helper()

	he, ok := usecase.AsHTTPError(err)
	if assert.True(t, ok, "expected HTTPError, got %v", err) {
		assert.Equal(t, status, he.Status)
		assert.Equal(t, message, he.Message)
	}
}
