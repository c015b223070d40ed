package usecase

import (
	"context"
	"net/http"
	"strings"

	repo "catalogo/internal/repository"

	"go.uber.org/zap"
)

// OrderUsecase は注文確定（WhatsApp手渡し）の業務ロジックです。
// 失敗時はカートに手を付けない：メッセージも作らず、URLも返さない。
type OrderUsecase struct {
	carts       repo.CartStore
	catalogRepo repo.CatalogRepository
	tx          repo.TransactionManager
	clock       Clock
	logger      *zap.Logger
}

func NewOrderUsecase(
	carts repo.CartStore,
	catalogRepo repo.CatalogRepository,
	tx repo.TransactionManager,
	clock Clock,
	logger *zap.Logger,
) *OrderUsecase {
	return &OrderUsecase{
		carts:       carts,
		catalogRepo: catalogRepo,
		tx:          tx,
		clock:       clock,
		logger:      logger,
	}
}

type CheckoutInput struct {
	CustomerName string
}

type CheckoutOutput struct {
	WhatsappURL string `json:"whatsapp_url"`
	Message     string `json:"message"`
}

// Checkout は注文を確定する。
// 1. 購入者名チェック
// 2. カタログのWhatsApp番号チェック（未設定は設定エラー。勝手な番号には送らない）
// 3. 在庫の引き落とし（明細ごとに順番に。1件でも失敗したら全体を中止）
// 4. メッセージ組み立て＋URL生成
// 5. カートを空にして保存（名前は履歴に残す）
func (u *OrderUsecase) Checkout(ctx context.Context, catalogID int64, sessionID string, in CheckoutInput) (CheckoutOutput, error) {
	name := strings.TrimSpace(in.CustomerName)
	if name == "" {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "name required")
	}

	cart, err := u.carts.Load(ctx, catalogID, sessionID)
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "cart store error")
	}
	if len(cart.Items) == 0 {
		return CheckoutOutput{}, NewHTTPError(http.StatusBadRequest, "cart empty")
	}

	catalog, err := u.catalogRepo.FindByID(ctx, catalogID)
	if err == repo.ErrNotFound {
		return CheckoutOutput{}, NewHTTPError(http.StatusNotFound, "catalog not found")
	}
	if err != nil {
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	phone := strings.TrimSpace(catalog.WhatsappNumber)
	if phone == "" {
		// 番号未設定は利用者の入力ミスではなく設定エラー
		u.logger.Error("whatsapp number not configured", zap.Int64("catalog_id", catalogID))
		return CheckoutOutput{}, NewHTTPError(http.StatusInternalServerError, "whatsapp number not configured")
	}

	// 在庫の引き落とし。明細ごとに減算→確定書き込みの2段階。
	// トランザクション内なので途中失敗なら全件巻き戻る。
	err = u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		for _, it := range cart.Items {
			newStock, err := r.Inventory().DecrementStock(ctx, it.ProductID, it.Quantity)
			if err != nil {
				u.logger.Warn("stock decrement failed",
					zap.Int64("product_id", it.ProductID),
					zap.Int64("quantity", it.Quantity),
					zap.Error(err),
				)
				return NewHTTPError(http.StatusBadGateway, "stock update error")
			}

			if err := r.Inventory().SetStock(ctx, it.ProductID, newStock); err != nil {
				u.logger.Warn("stock confirmation write failed",
					zap.Int64("product_id", it.ProductID),
					zap.Error(err),
				)
				return NewHTTPError(http.StatusBadGateway, "stock update error")
			}
		}
		return nil
	})
	if err != nil {
		if _, ok := AsHTTPError(err); ok {
			return CheckoutOutput{}, err
		}
		return CheckoutOutput{}, NewHTTPError(http.StatusBadGateway, "stock update error")
	}

	message := buildOrderMessage(name, cart)
	waURL := whatsappURL(phone, message)

	// 成功時だけカートを片付ける
	now := u.clock.Now()
	cart.AddCustomerName(name)
	cart.Clear(now)
	cart.CloseDrawer()
	if err := u.carts.Save(ctx, catalogID, sessionID, cart); err != nil {
		u.logger.Warn("cart save failed after checkout",
			zap.Int64("catalog_id", catalogID),
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	}

	return CheckoutOutput{
		WhatsappURL: waURL,
		Message:     message,
	}, nil
}
