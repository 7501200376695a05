package session

import "cartsession-api/internal/domain"

// Extension hooks. Each slice is an ordered list of transforms applied at a
// documented point of the projection; an empty slice is the identity.
type (
	ItemTextHook   func(value string, product *domain.Product, line domain.CartLine) string
	PriceHook      func(price string, line domain.CartLine) string
	QuantityHook   func(quantity float64, line domain.CartLine) float64
	ExtensionsHook func(ext map[string]interface{}, line domain.CartLine) map[string]interface{}
	FeeAmountHook  func(amount float64, key string) float64
	TotalsHook     func(totals map[string]interface{}) map[string]interface{}
	SessionHook    func(session map[string]interface{}) map[string]interface{}
)

type Hooks struct {
	ItemName       []ItemTextHook
	ItemTitle      []ItemTextHook
	ItemPrice      []PriceHook
	ItemQuantity   []QuantityHook
	ItemExtensions []ExtensionsHook
	FeeAmount      []FeeAmountHook
	Totals         []TotalsHook
	Session        []SessionHook
}

func applyItemText(hooks []ItemTextHook, value string, product *domain.Product, line domain.CartLine) string {
	for _, h := range hooks {
		value = h(value, product, line)
	}
	return value
}

func applyPrice(hooks []PriceHook, price string, line domain.CartLine) string {
	for _, h := range hooks {
		price = h(price, line)
	}
	return price
}

func applyQuantity(hooks []QuantityHook, quantity float64, line domain.CartLine) float64 {
	for _, h := range hooks {
		quantity = h(quantity, line)
	}
	return quantity
}

func applyExtensions(hooks []ExtensionsHook, ext map[string]interface{}, line domain.CartLine) map[string]interface{} {
	for _, h := range hooks {
		ext = h(ext, line)
	}
	return ext
}

func applyFeeAmount(hooks []FeeAmountHook, amount float64, key string) float64 {
	for _, h := range hooks {
		amount = h(amount, key)
	}
	return amount
}

func applyTotals(hooks []TotalsHook, totals map[string]interface{}) map[string]interface{} {
	for _, h := range hooks {
		totals = h(totals)
	}
	return totals
}

func applySession(hooks []SessionHook, session map[string]interface{}) map[string]interface{} {
	for _, h := range hooks {
		session = h(session)
	}
	return session
}
