package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"cartsession-api/internal/codec"
	"cartsession-api/internal/domain"
	"github.com/shopspring/decimal"
)

// Fee keys are stored with the platform prefix; responses strip it.
const feeKeyPrefix = "cartsession-"

// AppliedCoupon is a coupon code with its derived label and saving.
type AppliedCoupon struct {
	Coupon        string  `json:"coupon"`
	Label         string  `json:"label"`
	Saving        float64 `json:"saving"`
	SavingDisplay string  `json:"saving_html"`
}

// Fee is a display fee, keyed in the response by its stripped fee key.
type Fee struct {
	Name string  `json:"name"`
	Fee  float64 `json:"fee"`
}

// ProjectOptions select what the projection includes.
type ProjectOptions struct {
	Fields         FieldSet
	ShowThumbnails bool
}

// Project reconstructs the stored session and returns the response-shaped
// cart. Every top-level key is present iff the caller selected it; a blob
// that fails to decode aborts the whole projection.
func (s *Service) Project(ctx context.Context, sessionKey string, opts ProjectOptions) (map[string]interface{}, error) {
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

	fields := opts.Fields
	if fields == nil {
		fields = DefaultFields()
	}

	var customerData domain.SessionCustomerData
	if err := codec.Decode(rec.Customer, &customerData); err != nil {
		return nil, err
	}
	customer := s.resolveCustomer(ctx, customerData)

	session := map[string]interface{}{}

	if fields.Has(FieldCartKey) {
		session["cart_key"] = rec.Key
	}

	if fields.Has(FieldCustomer) {
		session["customer"] = map[string]interface{}{
			"billing_address":  customer.Billing,
			"shipping_address": customer.Shipping,
		}
	}

	if fields.Has(FieldItems) {
		displayLines := lines
		if len(rec.CartCache) > 0 {
			cached, err := codec.DecodeCartLines(rec.CartCache)
			if err != nil {
				return nil, err
			}
			if len(cached) > 0 {
				displayLines = cached
			}
		}
		items, err := s.formatLines(ctx, displayLines, opts.ShowThumbnails)
		if err != nil {
			return nil, err
		}
		session["items"] = items
	}

	if fields.Has(FieldItemCount) {
		// Always counted over the authoritative cart, not the cache.
		var count float64
		for _, line := range lines {
			count += line.Quantity.Float64()
		}
		session["item_count"] = count
	}

	if fields.Has(FieldItemsWeight) {
		weight, err := s.cartWeight(ctx, lines)
		if err != nil {
			return nil, err
		}
		session["items_weight"] = weight
	}

	if fields.Has(FieldCoupons) {
		coupons, err := s.appliedCoupons(ctx, rec, customer)
		if err != nil {
			return nil, err
		}
		session["coupons"] = coupons
	}

	var totals domain.CartTotals
	if fields.Has(FieldNeedsPayment) || fields.Has(FieldTotals) {
		if err := codec.Decode(rec.Totals, &totals); err != nil {
			return nil, err
		}
	}

	if fields.Has(FieldNeedsPayment) {
		session["needs_payment"] = totals.Total > 0
	}

	if fields.Has(FieldFees) {
		fees, err := s.sessionFees(rec)
		if err != nil {
			return nil, err
		}
		session["fees"] = fees
	}

	if fields.Has(FieldTotals) {
		session["totals"] = applyTotals(s.hooks.Totals, totalsMap(totals, fields.Has(FieldFees), fields.Has(FieldShipping)))
	}

	if fields.Has(FieldRemovedItems) {
		removedLines, err := codec.DecodeCartLines(rec.RemovedContents)
		if err != nil {
			return nil, err
		}
		removed, err := s.formatLines(ctx, removedLines, opts.ShowThumbnails)
		if err != nil {
			return nil, err
		}
		session["removed_items"] = removed
	}

	return applySession(s.hooks.Session, session), nil
}

// fetch loads the session record, turning the storage-layer faults into the
// endpoint error taxonomy.
func (s *Service) fetch(ctx context.Context, sessionKey string) (*domain.SessionRecord, error) {
	if strings.TrimSpace(sessionKey) == "" {
		return nil, domain.NewDataError(domain.CodeSessionKeyMissing, "Session key is required!", http.StatusNotFound)
	}
	rec, err := s.sessions.Get(ctx, sessionKey)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errSessionNotValid()
		}
		return nil, err
	}
	return rec, nil
}

func errSessionNotValid() *domain.DataError {
	return domain.NewDataError(domain.CodeSessionNotValid, "Cart in session is not valid!", http.StatusNotFound)
}

// resolveCustomer builds the session's owner from the customer blob,
// overlaying directory data when the blob names a known account. A missing
// account or a directory failure degrades to a guest.
func (s *Service) resolveCustomer(ctx context.Context, data domain.SessionCustomerData) *domain.Customer {
	customer := &domain.Customer{
		ID:        data.ID,
		Email:     data.Email,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		VatExempt: data.IsVatExempt,
		Billing:   data.Billing,
		Shipping:  data.Shipping,
	}
	if data.ID <= 0 || s.customers == nil {
		customer.ID = 0
		return customer
	}
	account, err := s.customers.GetByID(ctx, data.ID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("session service: customer lookup id=%d error=%v", data.ID, err)
		}
		customer.ID = 0
		return customer
	}
	if customer.Email == "" {
		customer.Email = account.Email
	}
	if customer.FirstName == "" {
		customer.FirstName = account.FirstName
	}
	if customer.LastName == "" {
		customer.LastName = account.LastName
	}
	if account.VatExempt {
		customer.VatExempt = true
	}
	return customer
}

// taxDisplayMode is "excl" for VAT-exempt customers, otherwise the store
// default.
func (s *Service) taxDisplayMode(customer *domain.Customer) string {
	if customer != nil && customer.VatExempt {
		return "excl"
	}
	return s.settings.TaxDisplayMode
}

// cartWeight sums unit weight times quantity over lines whose product has a
// weight on record, converted to the store unit. Lines referencing vanished
// products contribute nothing.
func (s *Service) cartWeight(ctx context.Context, lines []domain.CartLine) (float64, error) {
	total := decimal.Zero
	for _, line := range lines {
		id := line.ProductID
		if line.VariationID > 0 {
			id = line.VariationID
		}
		product, err := s.products.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return 0, err
		}
		if !product.HasWeight() {
			continue
		}
		total = total.Add(product.Weight.Mul(decimal.NewFromFloat(line.Quantity.Float64())))
	}
	f, _ := convertWeight(total, s.settings.WeightUnit).Float64()
	return f, nil
}

// appliedCoupons derives label and saving for each stored coupon code. The
// list is empty when the store has coupons disabled or none were applied; a
// code whose coupon has since been deleted keeps a fallback label and no
// saving.
func (s *Service) appliedCoupons(ctx context.Context, rec *domain.SessionRecord, customer *domain.Customer) ([]AppliedCoupon, error) {
	coupons := []AppliedCoupon{}
	if !s.settings.CouponsEnabled {
		return coupons, nil
	}

	var codes []string
	if err := codec.Decode(rec.Coupons, &codes); err != nil {
		return nil, err
	}
	if len(codes) == 0 {
		return coupons, nil
	}

	var totals domain.CartTotals
	if err := codec.Decode(rec.Totals, &totals); err != nil {
		return nil, err
	}
	base := decimal.NewFromFloat(totals.Subtotal.Float64())
	if s.taxDisplayMode(customer) == "incl" {
		base = base.Add(decimal.NewFromFloat(totals.SubtotalTax.Float64()))
	}

	for _, code := range codes {
		code = strings.ToLower(strings.TrimSpace(code))
		applied := AppliedCoupon{
			Coupon: code,
			Label:  fmt.Sprintf("Coupon: %s", code),
		}
		coupon, err := s.coupons.GetByCode(ctx, code)
		if err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, err
			}
			applied.SavingDisplay = s.formatPrice(decimal.Zero)
			coupons = append(coupons, applied)
			continue
		}
		if coupon.Description != "" {
			applied.Label = coupon.Description
		}
		saving := coupon.Amount
		if coupon.DiscountType == domain.DiscountPercent {
			saving = base.Mul(coupon.Amount).Div(decimal.NewFromInt(100))
		}
		saving = saving.Round(s.settings.PriceDecimals)
		applied.Saving, _ = saving.Float64()
		applied.SavingDisplay = s.formatPrice(saving)
		coupons = append(coupons, applied)
	}
	return coupons, nil
}

// sessionFees decodes the fee blob, strips the storage key prefix and runs
// each amount through the fee hooks.
func (s *Service) sessionFees(rec *domain.SessionRecord) (map[string]Fee, error) {
	var stored map[string]domain.StoredFee
	if err := codec.Decode(rec.Fees, &stored); err != nil {
		return nil, err
	}
	fees := map[string]Fee{}
	for key, fee := range stored {
		key = strings.TrimPrefix(key, feeKeyPrefix)
		fees[key] = Fee{
			Name: fee.Name,
			Fee:  applyFeeAmount(s.hooks.FeeAmount, fee.Amount.Float64(), key),
		}
	}
	return fees, nil
}

func (s *Service) formatPrice(amount decimal.Decimal) string {
	return s.settings.CurrencySymbol + amount.StringFixed(s.settings.PriceDecimals)
}

func totalsMap(t domain.CartTotals, includeFees, includeShipping bool) map[string]interface{} {
	totals := map[string]interface{}{
		"subtotal":            t.Subtotal.Float64(),
		"subtotal_tax":        t.SubtotalTax.Float64(),
		"discount_total":      t.DiscountTotal.Float64(),
		"discount_tax":        t.DiscountTax.Float64(),
		"cart_contents_total": t.CartContentsTotal.Float64(),
		"cart_contents_tax":   t.CartContentsTax.Float64(),
		"cart_contents_taxes": taxesMap(t.CartContentsTaxes),
		"total":               t.Total.Float64(),
		"total_tax":           t.TotalTax.Float64(),
	}
	if includeFees {
		totals["fee_total"] = t.FeeTotal.Float64()
		totals["fee_tax"] = t.FeeTax.Float64()
		totals["fee_taxes"] = taxesMap(t.FeeTaxes)
	}
	if includeShipping {
		totals["shipping_total"] = t.ShippingTotal.Float64()
		totals["shipping_tax"] = t.ShippingTax.Float64()
		totals["shipping_taxes"] = taxesMap(t.ShippingTaxes)
	}
	return totals
}

func taxesMap(taxes map[string]domain.Number) map[string]float64 {
	out := map[string]float64{}
	for rate, amount := range taxes {
		out[rate] = amount.Float64()
	}
	return out
}
