package domain

import "github.com/shopspring/decimal"

// Backorder policies a product can carry.
const (
	BackordersNo     = "no"
	BackordersNotify = "notify"
	BackordersYes    = "yes"
)

// Product is a catalog entry as the read-through collaborator returns it.
// Variations are separate rows pointing at their parent via ParentID.
// Weight is stored in kilograms, dimensions in centimeters; both are
// converted to the store's configured units at display time.
type Product struct {
	ID               int64
	ParentID         int64
	Name             string
	Slug             string
	SKU              string
	Type             string
	Price            decimal.Decimal
	Weight           *decimal.Decimal
	Length           decimal.Decimal
	Width            decimal.Decimal
	Height           decimal.Decimal
	ManagesStock     bool
	StockQuantity    int
	Backorders       string
	MinPurchaseQty   int
	MaxPurchaseQty   int
	SoldIndividually bool
	Virtual          bool
	ThumbnailURL     string
}

// HasWeight reports whether the catalog recorded a weight for the product.
func (p *Product) HasWeight() bool {
	return p.Weight != nil
}

// HasDimensions reports whether any dimension is set.
func (p *Product) HasDimensions() bool {
	return !p.Length.IsZero() || !p.Width.IsZero() || !p.Height.IsZero()
}

// BackordersRequireNotification reports whether shoppers must be told a
// quantity will be fulfilled on backorder.
func (p *Product) BackordersRequireNotification() bool {
	return p.ManagesStock && p.Backorders == BackordersNotify
}

// IsOnBackorder reports whether ordering the given quantity dips below the
// available stock while backorders are allowed.
func (p *Product) IsOnBackorder(quantity int) bool {
	if !p.ManagesStock || p.Backorders == BackordersNo {
		return false
	}
	return quantity > p.StockQuantity
}

// MaxPurchaseQuantity returns the purchase ceiling: 1 when the product is
// sold individually, -1 when unlimited.
func (p *Product) MaxPurchaseQuantity() int {
	if p.SoldIndividually {
		return 1
	}
	if p.MaxPurchaseQty <= 0 {
		return -1
	}
	return p.MaxPurchaseQty
}

// MinPurchaseQuantity returns the purchase floor, never below 1.
func (p *Product) MinPurchaseQuantity() int {
	if p.MinPurchaseQty < 1 {
		return 1
	}
	return p.MinPurchaseQty
}
