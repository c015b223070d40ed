package repository

import (
	"catalogo/internal/domain/model"
	"context"
)

// セッション単位のカートのスナップショット保存。
// Loadは期限切れ判定込み：TTL超過なら明細を捨てて購入者名だけ引き継いだ
// 新しいカートを返す（保存はしない。同じ古いスナップショットを読めば同じ結果になる）。
type CartStore interface {
	Load(ctx context.Context, catalogID int64, sessionID string) (model.Cart, error)
	Save(ctx context.Context, catalogID int64, sessionID string, cart model.Cart) error
}
