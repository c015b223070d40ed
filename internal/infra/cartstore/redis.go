package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalogo/internal/domain/model"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore はセッション単位のカートをJSONスナップショットで保存する。
// Redis側のTTLは使わない：期限切れでも購入者名は残すため、
// 判定はLoad側で行い、キー自体は消さない。
type RedisCartStore struct {
	client *redis.Client
	now    func() time.Time
}

func NewRedisCartStore(client *redis.Client) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		now:    time.Now,
	}
}

// 期限判定を固定時刻でテストするためのコンストラクタ
func NewRedisCartStoreWithClock(client *redis.Client, now func() time.Time) *RedisCartStore {
	return &RedisCartStore{
		client: client,
		now:    now,
	}
}

// カートを読み込む。
// キーが無い → 新しい空カート。
// TTL超過 → 明細は捨てて購入者名だけ引き継いだ空カート（保存はしない）。
func (s *RedisCartStore) Load(ctx context.Context, catalogID int64, sessionID string) (model.Cart, error) {
	now := s.now()

	data, err := s.client.Get(ctx, cartKey(catalogID, sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewCart(now), nil
	}
	if err != nil {
		return model.Cart{}, fmt.Errorf("redis get failed: %w", err)
	}

	var cart model.Cart
	if err := json.Unmarshal(data, &cart); err != nil {
		return model.Cart{}, fmt.Errorf("unmarshal cart failed: %w", err)
	}

	if cart.Expired(now) {
		fresh := model.NewCart(now)
		fresh.CustomerNames = cart.CustomerNames
		if fresh.CustomerNames == nil {
			fresh.CustomerNames = []string{}
		}
		return fresh, nil
	}

	if cart.Items == nil {
		cart.Items = []model.CartItem{}
	}
	if cart.CustomerNames == nil {
		cart.CustomerNames = []string{}
	}
	return cart, nil
}

// カートを丸ごと保存する
func (s *RedisCartStore) Save(ctx context.Context, catalogID int64, sessionID string, cart model.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(catalogID, sessionID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func cartKey(catalogID int64, sessionID string) string {
	return fmt.Sprintf("cart:%d:%s", catalogID, sessionID)
}
