package usecase

import (
	"context"
	"net/http"
	"time"

	"catalogo/internal/domain/model"
	repo "catalogo/internal/repository"

	"go.uber.org/zap"
)

// 現在時刻の注入口（テストで固定する）
type Clock interface {
	Now() time.Time
}

// CartUsecase はセッションカートの業務ロジックです。
// 読み込み→変更→保存の順で、保存失敗は握りつぶす（レスポンスは成功のまま、ログだけ残す）。
type CartUsecase struct {
	carts       repo.CartStore
	productRepo repo.ProductRepository
	clock       Clock
	logger      *zap.Logger
}

func NewCartUsecase(
	carts repo.CartStore,
	productRepo repo.ProductRepository,
	clock Clock,
	logger *zap.Logger,
) *CartUsecase {
	return &CartUsecase{
		carts:       carts,
		productRepo: productRepo,
		clock:       clock,
		logger:      logger,
	}
}

type CartItemResponse struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unit_price"`
	EffectivePrice int64  `json:"effective_price"`
	Discount       int64  `json:"discount"`
	Presentation   string `json:"presentation"`
	ImageURL       string `json:"image_url"`
	Quantity       int64  `json:"quantity"`
	Subtotal       int64  `json:"subtotal"`
}

type CartResponse struct {
	Items               []CartItemResponse `json:"items"`
	IsOpen              bool               `json:"is_open"`
	CustomerNames       []string           `json:"customer_names"`
	CurrentCustomerName string             `json:"current_customer_name"`
	Total               int64              `json:"total"`
	ItemCount           int64              `json:"item_count"`
}

type AddCartInput struct {
	ProductID int64
	Quantity  int64
}

type UpdateCartItemInput struct {
	Quantity int64
}

// カート取得
func (u *CartUsecase) GetCart(ctx context.Context, catalogID int64, sessionID string) (CartResponse, error) {
	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	return toCartResponse(cart), nil
}

// カートに追加（同一商品は数量加算）。スナップショットは追加時点の商品情報。
func (u *CartUsecase) AddItem(ctx context.Context, catalogID int64, sessionID string, in AddCartInput) (CartResponse, error) {
	if in.ProductID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}
	if in.Quantity < 1 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid quantity")
	}

	// 商品チェック（公開のみ）
	p, err := u.productRepo.FindByID(ctx, catalogID, in.ProductID)
	if err == repo.ErrNotFound {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !p.IsActive {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid")
	}

	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	cart.AddItem(model.CartItem{
		ProductID:    p.ID,
		Name:         p.Name,
		UnitPrice:    p.Price,
		ImageURL:     p.FeaturedImageURL,
		Quantity:     in.Quantity,
		Discount:     p.Discount,
		Presentation: p.Presentation,
	}, u.clock.Now())

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// 数量を指定値に変更（0以下は削除と同じ）
func (u *CartUsecase) UpdateItem(ctx context.Context, catalogID int64, sessionID string, productID int64, in UpdateCartItemInput) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	cart.SetQuantity(productID, in.Quantity, u.clock.Now())

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// 明細削除（無ければ何もしない）
func (u *CartUsecase) RemoveItem(ctx context.Context, catalogID int64, sessionID string, productID int64) (CartResponse, error) {
	if productID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid product_id")
	}

	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	cart.RemoveItem(productID, u.clock.Now())

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// カートを空にする（購入者名は残る）
func (u *CartUsecase) Empty(ctx context.Context, catalogID int64, sessionID string) (CartResponse, error) {
	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	cart.Clear(u.clock.Now())

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// ドロワーの開閉
func (u *CartUsecase) SetDrawer(ctx context.Context, catalogID int64, sessionID string, action string) (CartResponse, error) {
	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	switch action {
	case "open":
		cart.OpenDrawer()
	case "close":
		cart.CloseDrawer()
	case "toggle":
		cart.ToggleDrawer()
	default:
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid action")
	}

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// 購入者名を追加して選択中にする
func (u *CartUsecase) AddCustomerName(ctx context.Context, catalogID int64, sessionID string, name string) (CartResponse, error) {
	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	cart.AddCustomerName(name)

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// 購入者名を削除
func (u *CartUsecase) RemoveCustomerName(ctx context.Context, catalogID int64, sessionID string, name string) (CartResponse, error) {
	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CartResponse{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}

	cart.RemoveCustomerName(name)

	u.save(ctx, catalogID, sessionID, cart)
	return toCartResponse(cart), nil
}

// 保存失敗は致命ではない。メモリ上の状態を正としてログだけ残す。
func (u *CartUsecase) save(ctx context.Context, catalogID int64, sessionID string, cart model.Cart) {
	if err := u.carts.Save(ctx, catalogID, sessionID, cart); err != nil {
		u.logger.Warn("cart save failed",
			zap.Int64("catalog_id", catalogID),
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}
}

func toCartResponse(cart model.Cart) CartResponse {
	items := make([]CartItemResponse, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, CartItemResponse{
			ProductID:      it.ProductID,
			Name:           it.Name,
			UnitPrice:      it.UnitPrice,
			EffectivePrice: it.EffectivePrice(),
			Discount:       it.Discount,
			Presentation:   it.Presentation,
			ImageURL:       it.ImageURL,
			Quantity:       it.Quantity,
			Subtotal:       it.Subtotal(),
		})
	}

	names := cart.CustomerNames
	if names == nil {
		names = []string{}
	}

	return CartResponse{
		Items:               items,
		IsOpen:              cart.IsOpen,
		CustomerNames:       names,
		CurrentCustomerName: cart.CurrentCustomerName,
		Total:               cart.Total(),
		ItemCount:           cart.ItemCount(),
	}
}
