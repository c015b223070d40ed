package usecase

import (
	"fmt"
	"net/url"
	"strings"

	"catalogo/internal/domain/model"
)

// buildOrderMessage はWhatsAppに渡す注文メッセージを組み立てる。
// 明細はカートの並び順のまま。金額は3桁区切り。
func buildOrderMessage(customerName string, cart model.Cart) string {
	var b strings.Builder

	b.WriteString("*Nuevo Pedido*\n\n")
	fmt.Fprintf(&b, "*Nombre*: %s\n\n", customerName)
	b.WriteString("*Productos*:\n")

	for _, it := range cart.Items {
		fmt.Fprintf(&b, "- %dx %s", it.Quantity, it.Name)
		if it.Presentation != "" {
			fmt.Fprintf(&b, " (%s)", it.Presentation)
		}
		fmt.Fprintf(&b, ": $%s\n", groupThousands(it.Subtotal()))
	}

	fmt.Fprintf(&b, "\n*Total a Abonar*: $%s", groupThousands(cart.Total()))
	return b.String()
}

// whatsappURL はメッセージをURLエンコードして送信リンクを作る
func whatsappURL(phone string, text string) string {
	q := url.Values{}
	q.Set("phone", phone)
	q.Set("text", text)
	return "https://api.whatsapp.com/send?" + q.Encode()
}

// groupThousands は3桁ごとにピリオドを入れる（1234567 → 1.234.567）
func groupThousands(n int64) string {
	s := fmt.Sprintf("%d", n)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := strings.Join(parts, ".")
	if neg {
		return "-" + out
	}
	return out
}
