package usecase_test

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"
	"catalogo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func newOrderUsecase(store *CartStoreMock, catalogs *CatalogRepoMock, inventory *InventoryRepoMock) *usecase.OrderUsecase {
	tx := &fakeTxManager{inventory: inventory}
	return usecase.NewOrderUsecase(store, catalogs, tx, fixedClock{t: testNow}, zap.NewNop())
}

func cartWithItems(now time.Time) model.Cart {
	cart := model.NewCart(now)
	cart.AddItem(model.CartItem{ProductID: 10, Name: "Cafe", UnitPrice: 1000, Quantity: 2}, now)
	cart.AddItem(model.CartItem{ProductID: 11, Name: "Yerba", UnitPrice: 2000, Quantity: 1, Presentation: "1kg"}, now)
	return cart
}

// 名前なしでは何も起きない：在庫もカートも触らない
func TestOrderUsecase_Checkout_NameRequired(t *testing.T) {
	store := new(CartStoreMock)
	inventory := new(InventoryRepoMock)
	uc := newOrderUsecase(store, new(CatalogRepoMock), inventory)

	_, err := uc.Checkout(context.Background(), 1, "s1", usecase.CheckoutInput{CustomerName: "   "})
	assertHTTPError(t, err, http.StatusBadRequest, "name required")

	store.AssertNotCalled(t, "Load", mock.Anything, mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_Checkout_EmptyCart(t *testing.T) {
	store := new(CartStoreMock)
	uc := newOrderUsecase(store, new(CatalogRepoMock), new(InventoryRepoMock))

	store.On("Load", mock.Anything, int64(1), "s1").Return(model.NewCart(testNow), nil)

	_, err := uc.Checkout(context.Background(), 1, "s1", usecase.CheckoutInput{CustomerName: "Ana"})
	assertHTTPError(t, err, http.StatusBadRequest, "cart empty")
}

// WhatsApp番号未設定は設定エラー。勝手な番号に送らない。
func TestOrderUsecase_Checkout_MissingWhatsappNumber(t *testing.T) {
	store := new(CartStoreMock)
	catalogs := new(CatalogRepoMock)
	inventory := new(InventoryRepoMock)
	uc := newOrderUsecase(store, catalogs, inventory)

	store.On("Load", mock.Anything, int64(1), "s1").Return(cartWithItems(testNow), nil)
	catalogs.On("FindByID", mock.Anything, int64(1)).Return(model.Catalog{ID: 1, Name: "Tienda"}, nil)

	_, err := uc.Checkout(context.Background(), 1, "s1", usecase.CheckoutInput{CustomerName: "Ana"})
	assertHTTPError(t, err, http.StatusInternalServerError, "whatsapp number not configured")

	inventory.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// 在庫引き落とし失敗：カートは一切触らず、URLも返さない
func TestOrderUsecase_Checkout_StockFailureLeavesCartUntouched(t *testing.T) {
	store := new(CartStoreMock)
	catalogs := new(CatalogRepoMock)
	inventory := new(InventoryRepoMock)
	uc := newOrderUsecase(store, catalogs, inventory)

	store.On("Load", mock.Anything, int64(1), "s1").Return(cartWithItems(testNow), nil)
	catalogs.On("FindByID", mock.Anything, int64(1)).
		Return(model.Catalog{ID: 1, WhatsappNumber: "5491122334455"}, nil)

	inventory.On("DecrementStock", mock.Anything, int64(10), int64(2)).
		Return(int64(0), repo.ErrInsufficientStock)

	out, err := uc.Checkout(context.Background(), 1, "s1", usecase.CheckoutInput{CustomerName: "Ana"})
	assertHTTPError(t, err, http.StatusBadGateway, "stock update error")
	assert.Empty(t, out.WhatsappURL)

	store.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "SetStock", mock.Anything, mock.Anything, mock.Anything)
}

// 成功：メッセージとURLを返し、カートは空＋名前が履歴に残る
func TestOrderUsecase_Checkout_Success(t *testing.T) {
	store := new(CartStoreMock)
	catalogs := new(CatalogRepoMock)
	inventory := new(InventoryRepoMock)
	uc := newOrderUsecase(store, catalogs, inventory)

	store.On("Load", mock.Anything, int64(1), "s1").Return(cartWithItems(testNow), nil)
	catalogs.On("FindByID", mock.Anything, int64(1)).
		Return(model.Catalog{ID: 1, WhatsappNumber: "5491122334455"}, nil)

	inventory.On("DecrementStock", mock.Anything, int64(10), int64(2)).Return(int64(8), nil)
	inventory.On("SetStock", mock.Anything, int64(10), int64(8)).Return(nil)
	inventory.On("DecrementStock", mock.Anything, int64(11), int64(1)).Return(int64(4), nil)
	inventory.On("SetStock", mock.Anything, int64(11), int64(4)).Return(nil)

	var saved model.Cart
	store.On("Save", mock.Anything, int64(1), "s1", mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(3).(model.Cart)
		}).
		Return(nil)

	out, err := uc.Checkout(context.Background(), 1, "s1", usecase.CheckoutInput{CustomerName: "Ana"})
	assert.NoError(t, err)

	assert.Equal(t, "*Nuevo Pedido*\n\n"+
		"*Nombre*: Ana\n\n"+
		"*Productos*:\n"+
		"- 2x Cafe: $2.000\n"+
		"- 1x Yerba (1kg): $2.000\n"+
		"\n*Total a Abonar*: $4.000", out.Message)

	assert.True(t, strings.HasPrefix(out.WhatsappURL, "https://api.whatsapp.com/send?"))
	assert.Contains(t, out.WhatsappURL, "phone=5491122334455")

	assert.Equal(t, 0, len(saved.Items))
	assert.Equal(t, []string{"Ana"}, saved.CustomerNames)
	assert.Equal(t, "Ana", saved.CurrentCustomerName)
	assert.False(t, saved.IsOpen)

	store.AssertExpectations(t)
	catalogs.AssertExpectations(t)
	inventory.AssertExpectations(t)
}

// 保存失敗でも注文自体は成功のまま
func TestOrderUsecase_Checkout_SaveFailureStillSucceeds(t *testing.T) {
	store := new(CartStoreMock)
	catalogs := new(CatalogRepoMock)
	inventory := new(InventoryRepoMock)
	uc := newOrderUsecase(store, catalogs, inventory)

	cart := model.NewCart(testNow)
	cart.AddItem(model.CartItem{ProductID: 10, Name: "Cafe", UnitPrice: 1000, Quantity: 1}, testNow)

	store.On("Load", mock.Anything, int64(1), "s1").Return(cart, nil)
	catalogs.On("FindByID", mock.Anything, int64(1)).
		Return(model.Catalog{ID: 1, WhatsappNumber: "5491122334455"}, nil)
	inventory.On("DecrementStock", mock.Anything, int64(10), int64(1)).Return(int64(0), nil)
	inventory.On("SetStock", mock.Anything, int64(10), int64(0)).Return(nil)
	store.On("Save", mock.Anything, int64(1), "s1", mock.Anything).Return(assert.AnError)

	out, err := uc.Checkout(context.Background(), 1, "s1", usecase.CheckoutInput{CustomerName: "Ana"})
	assert.NoError(t, err)
	assert.NotEmpty(t, out.WhatsappURL)
}
