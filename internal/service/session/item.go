package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"cartsession-api/internal/codec"
	"cartsession-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Item is one display-ready cart line.
type Item struct {
	ItemKey       string                 `json:"item_key"`
	ID            int64                  `json:"id"`
	Name          string                 `json:"name"`
	Title         string                 `json:"title"`
	Price         string                 `json:"price"`
	Quantity      ItemQuantity           `json:"quantity"`
	Totals        ItemTotals             `json:"totals"`
	Slug          string                 `json:"slug"`
	Meta          ItemMeta               `json:"meta"`
	Backorders    string                 `json:"backorders"`
	FeaturedImage string                 `json:"featured_image"`
	Extensions    map[string]interface{} `json:"extensions"`
}

type ItemQuantity struct {
	Value       float64 `json:"value"`
	MinPurchase int     `json:"min_purchase"`
	MaxPurchase int     `json:"max_purchase"`
}

// ItemTotals passes the stored line amounts through untouched; nothing is
// recomputed at display time.
type ItemTotals struct {
	Subtotal    float64 `json:"subtotal"`
	SubtotalTax float64 `json:"subtotal_tax"`
	Total       float64 `json:"total"`
	Tax         float64 `json:"tax"`
}

type ItemMeta struct {
	ProductType string            `json:"product_type"`
	SKU         string            `json:"sku"`
	Dimensions  *ItemDimensions   `json:"dimensions,omitempty"`
	Weight      float64           `json:"weight"`
	Variation   map[string]string `json:"variation"`
}

type ItemDimensions struct {
	Length string `json:"length"`
	Width  string `json:"width"`
	Height string `json:"height"`
	Unit   string `json:"unit"`
}

const backorderNotice = "Available on backorder"

// Items returns the formatted lines of the authoritative cart, never the
// display cache.
func (s *Service) Items(ctx context.Context, sessionKey string, showThumb bool) ([]Item, error) {
	rec, err := s.fetch(ctx, sessionKey)
	if err != nil {
		return nil, err
	}
	lines, err := codec.DecodeCartLines(rec.Cart)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errSessionNotValid()
	}
	return s.formatLines(ctx, lines, showThumb)
}

func (s *Service) formatLines(ctx context.Context, lines []domain.CartLine, showThumb bool) ([]Item, error) {
	items := make([]Item, 0, len(lines))
	for _, line := range lines {
		product, err := s.resolveProduct(ctx, line)
		if err != nil {
			return nil, err
		}
		items = append(items, s.formatItem(product, line, showThumb))
	}
	return items, nil
}

// resolveProduct reads the referenced catalog entry; the variation takes
// precedence over its parent when the line carries one.
func (s *Service) resolveProduct(ctx context.Context, line domain.CartLine) (*domain.Product, error) {
	id := line.ProductID
	if line.VariationID > 0 {
		id = line.VariationID
	}
	product, err := s.products.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewDataError(
				domain.CodeSessionDataCorrupt,
				fmt.Sprintf("product %d referenced by cart line %q no longer exists", id, line.Key),
				http.StatusInternalServerError,
			)
		}
		return nil, err
	}
	return product, nil
}

func (s *Service) formatItem(product *domain.Product, line domain.CartLine, showThumb bool) Item {
	quantity := applyQuantity(s.hooks.ItemQuantity, line.Quantity.Float64(), line)

	item := Item{
		ItemKey: line.Key,
		ID:      product.ID,
		Name:    applyItemText(s.hooks.ItemName, product.Name, product, line),
		Title:   applyItemText(s.hooks.ItemTitle, product.Name, product, line),
		Price:   applyPrice(s.hooks.ItemPrice, product.Price.StringFixed(s.settings.PriceDecimals), line),
		Quantity: ItemQuantity{
			Value:       quantity,
			MinPurchase: product.MinPurchaseQuantity(),
			MaxPurchase: product.MaxPurchaseQuantity(),
		},
		Totals: ItemTotals{
			Subtotal:    line.LineSubtotal.Float64(),
			SubtotalTax: line.LineSubtotalTax.Float64(),
			Total:       line.LineTotal.Float64(),
			Tax:         line.LineTax.Float64(),
		},
		Slug: product.Slug,
		Meta: ItemMeta{
			ProductType: product.Type,
			SKU:         product.SKU,
			Weight:      s.itemWeight(product, line),
			Variation:   formatVariationData(line.Variation),
		},
		Extensions: applyExtensions(s.hooks.ItemExtensions, map[string]interface{}{}, line),
	}

	if product.HasDimensions() {
		item.Meta.Dimensions = &ItemDimensions{
			Length: product.Length.String(),
			Width:  product.Width.String(),
			Height: product.Height.String(),
			Unit:   s.settings.DimensionUnit,
		}
	}

	if product.BackordersRequireNotification() && product.IsOnBackorder(int(line.Quantity.Float64())) {
		item.Backorders = backorderNotice
	}
	if showThumb {
		item.FeaturedImage = product.ThumbnailURL
	}

	return item
}

// itemWeight is the unit weight times the stored quantity, converted to the
// store's weight unit. Zero when the catalog has no weight on record.
func (s *Service) itemWeight(product *domain.Product, line domain.CartLine) float64 {
	if !product.HasWeight() {
		return 0
	}
	total := product.Weight.Mul(decimal.NewFromFloat(line.Quantity.Float64()))
	f, _ := convertWeight(total, s.settings.WeightUnit).Float64()
	return f
}

// convertWeight converts a weight stored in kilograms to the given unit.
func convertWeight(kg decimal.Decimal, unit string) decimal.Decimal {
	switch unit {
	case "g":
		return kg.Mul(decimal.NewFromInt(1000))
	case "lbs":
		return kg.Mul(decimal.RequireFromString("2.20462262185"))
	case "oz":
		return kg.Mul(decimal.RequireFromString("35.2739619496"))
	default:
		return kg
	}
}

// formatVariationData turns stored variation attribute slugs into display
// labels: attribute_pa_colour-blend → Colour Blend.
func formatVariationData(variation map[string]string) map[string]string {
	out := map[string]string{}
	for attr, value := range variation {
		label := strings.TrimPrefix(attr, "attribute_")
		label = strings.TrimPrefix(label, "pa_")
		label = strings.NewReplacer("-", " ", "_", " ").Replace(label)
		out[titleCase(label)] = value
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
