package repository

import (
	"context"
	"errors"
)

// 減算するとマイナスになる場合は失敗する
var ErrInsufficientStock = errors.New("insufficient stock")

type InventoryRepository interface {
	// 在庫を減算して減算後の値を返す（decrement_stock RPC相当）
	DecrementStock(ctx context.Context, productID int64, qty int64) (int64, error)

	// 減算後の値の確定書き込み
	SetStock(ctx context.Context, productID int64, newStock int64) error
}
