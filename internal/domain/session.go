package domain

import "time"

// Session sources as recorded by the storage layer.
const (
	SourceNative   = "native"
	SourceHeadless = "headless"
)

// SessionRecord is a persisted cart session as stored: an identity row plus
// opaque JSON blobs. Nil blob slices mean the column was never written.
type SessionRecord struct {
	ID              int64
	Key             string
	Created         time.Time
	Expiry          time.Time
	Source          string
	Cart            []byte
	CartCache       []byte
	Totals          []byte
	Coupons         []byte
	Fees            []byte
	RemovedContents []byte
	Customer        []byte
}

// CartLine is one decoded line of the cart blob. The blob is a JSON array so
// the shopper's original line order survives decoding.
type CartLine struct {
	Key             string            `json:"key"`
	ProductID       int64             `json:"product_id"`
	VariationID     int64             `json:"variation_id,omitempty"`
	Quantity        Number            `json:"quantity"`
	LineSubtotal    Number            `json:"line_subtotal"`
	LineSubtotalTax Number            `json:"line_subtotal_tax"`
	LineTotal       Number            `json:"line_total"`
	LineTax         Number            `json:"line_tax"`
	Variation       map[string]string `json:"variation,omitempty"`
}

// CartTotals is the decoded totals blob. Absent fields stay zero; the blob
// being absent entirely decodes to the all-zero value.
type CartTotals struct {
	Subtotal          Number            `json:"subtotal"`
	SubtotalTax       Number            `json:"subtotal_tax"`
	ShippingTotal     Number            `json:"shipping_total"`
	ShippingTax       Number            `json:"shipping_tax"`
	ShippingTaxes     map[string]Number `json:"shipping_taxes"`
	DiscountTotal     Number            `json:"discount_total"`
	DiscountTax       Number            `json:"discount_tax"`
	CartContentsTotal Number            `json:"cart_contents_total"`
	CartContentsTax   Number            `json:"cart_contents_tax"`
	CartContentsTaxes map[string]Number `json:"cart_contents_taxes"`
	FeeTotal          Number            `json:"fee_total"`
	FeeTax            Number            `json:"fee_tax"`
	FeeTaxes          map[string]Number `json:"fee_taxes"`
	Total             Number            `json:"total"`
	TotalTax          Number            `json:"total_tax"`
}

// StoredFee is one decoded entry of the fees blob, keyed by the fee key.
type StoredFee struct {
	Name   string `json:"name"`
	Amount Number `json:"amount"`
}

// SessionCustomerData is the decoded customer blob: whatever the shopper
// entered during the session, plus the account id when they were signed in.
type SessionCustomerData struct {
	ID          int64   `json:"id"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	IsVatExempt bool    `json:"is_vat_exempt"`
	Billing     Address `json:"billing"`
	Shipping    Address `json:"shipping"`
}
