package session

import "strings"

// Field names a caller may select for the session projection.
type Field string

const (
	FieldCartKey      Field = "cart_key"
	FieldCustomer     Field = "customer"
	FieldItems        Field = "items"
	FieldItemCount    Field = "item_count"
	FieldItemsWeight  Field = "items_weight"
	FieldCoupons      Field = "coupons"
	FieldNeedsPayment Field = "needs_payment"
	FieldFees         Field = "fees"
	FieldTotals       Field = "totals"
	FieldRemovedItems Field = "removed_items"

	// FieldShipping never produces a top-level field; selecting it keeps
	// the shipping figures inside the totals breakdown.
	FieldShipping Field = "shipping"
)

var recognizedFields = map[Field]struct{}{
	FieldCartKey:      {},
	FieldCustomer:     {},
	FieldItems:        {},
	FieldItemCount:    {},
	FieldItemsWeight:  {},
	FieldCoupons:      {},
	FieldNeedsPayment: {},
	FieldFees:         {},
	FieldTotals:       {},
	FieldRemovedItems: {},
	FieldShipping:     {},
}

// FieldSet is the validated selection of response fields.
type FieldSet map[Field]struct{}

func (s FieldSet) Has(f Field) bool {
	_, ok := s[f]
	return ok
}

// ParseFields turns a comma-separated fields parameter into a FieldSet,
// dropping unrecognized names. An empty parameter selects the defaults.
func ParseFields(raw string) FieldSet {
	if strings.TrimSpace(raw) == "" {
		return DefaultFields()
	}
	set := FieldSet{}
	for _, name := range strings.Split(raw, ",") {
		f := Field(strings.ToLower(strings.TrimSpace(name)))
		if _, ok := recognizedFields[f]; ok {
			set[f] = struct{}{}
		}
	}
	return set
}

// DefaultFields selects every projected field. Shipping is excluded: the
// totals breakdown only carries shipping figures on explicit request.
func DefaultFields() FieldSet {
	return FieldSet{
		FieldCartKey:      {},
		FieldCustomer:     {},
		FieldItems:        {},
		FieldItemCount:    {},
		FieldItemsWeight:  {},
		FieldCoupons:      {},
		FieldNeedsPayment: {},
		FieldFees:         {},
		FieldTotals:       {},
		FieldRemovedItems: {},
	}
}
