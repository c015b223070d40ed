package model

import (
	"strings"
	"time"
)

// カートの有効期限。期限切れなら明細を捨てて購入者名だけ残す。
const CartTTL = 24 * time.Hour

// カートの明細。価格・名前は追加時点のスナップショット（再取得しない）。
type CartItem struct {
	ProductID    int64  `json:"product_id"`
	Name         string `json:"name"`
	UnitPrice    int64  `json:"unit_price"`
	ImageURL     string `json:"image_url"`
	Quantity     int64  `json:"quantity"`
	Discount     int64  `json:"discount"` // 0〜100（%）
	Presentation string `json:"presentation"`
}

// 割引適用後の単価
func (i CartItem) EffectivePrice() int64 {
	if i.Discount > 0 {
		return i.UnitPrice - i.UnitPrice*i.Discount/100
	}
	return i.UnitPrice
}

// 明細の小計
func (i CartItem) Subtotal() int64 {
	return i.EffectivePrice() * i.Quantity
}

// セッション単位のカート状態。Redisに丸ごとJSONで保存する。
type Cart struct {
	Items               []CartItem `json:"items"`
	IsOpen              bool       `json:"is_open"`
	CustomerNames       []string   `json:"customer_names"`
	CurrentCustomerName string     `json:"current_customer_name"`
	LastUpdated         time.Time  `json:"last_updated"`
}

func NewCart(now time.Time) Cart {
	return Cart{
		Items:         []CartItem{},
		CustomerNames: []string{},
		LastUpdated:   now,
	}
}

// 最終更新からTTLを超えたか
func (c Cart) Expired(now time.Time) bool {
	return now.Sub(c.LastUpdated) > CartTTL
}

// 明細追加。同一商品は数量加算（行を増やさない）。追加時はドロワーを自動で開く。
func (c *Cart) AddItem(item CartItem, now time.Time) {
	for idx := range c.Items {
		if c.Items[idx].ProductID == item.ProductID {
			c.Items[idx].Quantity += item.Quantity
			c.IsOpen = true
			c.LastUpdated = now
			return
		}
	}

	c.Items = append(c.Items, item)
	c.IsOpen = true
	c.LastUpdated = now
}

// 明細削除。無ければ何もしない。
func (c *Cart) RemoveItem(productID int64, now time.Time) {
	kept := c.Items[:0]
	for _, it := range c.Items {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	c.Items = kept
	c.LastUpdated = now
}

// 数量を指定値に変更。0以下は削除と同じ（数量0の行は存在させない）。
func (c *Cart) SetQuantity(productID int64, quantity int64, now time.Time) {
	if quantity <= 0 {
		c.RemoveItem(productID, now)
		return
	}

	for idx := range c.Items {
		if c.Items[idx].ProductID == productID {
			c.Items[idx].Quantity = quantity
			break
		}
	}
	c.LastUpdated = now
}

// 明細を空にする。購入者名は残す。
func (c *Cart) Clear(now time.Time) {
	c.Items = []CartItem{}
	c.LastUpdated = now
}

func (c *Cart) OpenDrawer()   { c.IsOpen = true }
func (c *Cart) CloseDrawer()  { c.IsOpen = false }
func (c *Cart) ToggleDrawer() { c.IsOpen = !c.IsOpen }

// 購入者名を追加して選択中にする。空白のみは無視。重複は追加しない。
func (c *Cart) AddCustomerName(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	for _, n := range c.CustomerNames {
		if n == name {
			c.CurrentCustomerName = name
			return
		}
	}

	c.CustomerNames = append(c.CustomerNames, name)
	c.CurrentCustomerName = name
}

func (c *Cart) SetCurrentCustomerName(name string) {
	c.CurrentCustomerName = name
}

// 購入者名を削除。選択中だった場合は先頭の名前（無ければ空）に戻す。
func (c *Cart) RemoveCustomerName(name string) {
	kept := c.CustomerNames[:0]
	for _, n := range c.CustomerNames {
		if n != name {
			kept = append(kept, n)
		}
	}
	c.CustomerNames = kept

	if c.CurrentCustomerName == name {
		if len(c.CustomerNames) > 0 {
			c.CurrentCustomerName = c.CustomerNames[0]
		} else {
			c.CurrentCustomerName = ""
		}
	}
}

// 合計金額。常にItemsから計算する（別持ちしない）。
func (c Cart) Total() int64 {
	var total int64 = 0
	for _, it := range c.Items {
		total += it.Subtotal()
	}
	return total
}

// 商品点数（行数ではなく数量の合計）
func (c Cart) ItemCount() int64 {
	var count int64 = 0
	for _, it := range c.Items {
		count += it.Quantity
	}
	return count
}
