package codec

import (
	"errors"
	"testing"

	"cartsession-api/internal/domain"
)

func TestDecodeAbsentBlob(t *testing.T) {
	for _, blob := range [][]byte{nil, {}, []byte("  "), []byte("null")} {
		var totals domain.CartTotals
		if err := Decode(blob, &totals); err != nil {
			t.Fatalf("absent blob %q should not fault: %v", blob, err)
		}
		if totals.Total != 0 {
			t.Fatalf("absent blob should decode to zero value, got %+v", totals)
		}
	}
}

func TestDecodeMalformedBlob(t *testing.T) {
	var totals domain.CartTotals
	err := Decode([]byte("{not json"), &totals)
	var dataErr *domain.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError, got %v", err)
	}
	if dataErr.Code != domain.CodeSessionDataCorrupt {
		t.Fatalf("unexpected code %q", dataErr.Code)
	}
	if dataErr.Status != 500 {
		t.Fatalf("unexpected status %d", dataErr.Status)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	var lines []domain.CartLine
	if err := Decode([]byte(`{"a":1}`), &lines); err == nil {
		t.Fatal("expected fault for object where array expected")
	}
}

func TestDecodeNumericStrings(t *testing.T) {
	var totals domain.CartTotals
	blob := []byte(`{"subtotal":"12.50","total":20,"shipping_taxes":{"rate-1":"1.25"}}`)
	if err := Decode(blob, &totals); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals.Subtotal != 12.5 || totals.Total != 20 {
		t.Fatalf("unexpected totals: %+v", totals)
	}
	if totals.ShippingTaxes["rate-1"] != 1.25 {
		t.Fatalf("unexpected shipping taxes: %+v", totals.ShippingTaxes)
	}
}

func TestDecodeCartLines(t *testing.T) {
	blob := []byte(`[{"key":"a","product_id":5,"quantity":2,"line_total":"20.00"},{"key":"b","product_id":7,"quantity":1}]`)
	lines, err := DecodeCartLines(blob)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].Key != "a" || lines[0].LineTotal != 20 {
		t.Fatalf("unexpected first line: %+v", lines[0])
	}
}

func TestDecodeCartLinesRejectsBadQuantity(t *testing.T) {
	for _, blob := range []string{
		`[{"key":"a","product_id":5,"quantity":0}]`,
		`[{"key":"a","product_id":5,"quantity":-2}]`,
	} {
		_, err := DecodeCartLines([]byte(blob))
		var dataErr *domain.DataError
		if !errors.As(err, &dataErr) || dataErr.Code != domain.CodeSessionDataCorrupt {
			t.Fatalf("blob %s: expected integrity fault, got %v", blob, err)
		}
	}
}

func TestDecodeCartLinesAbsentBlob(t *testing.T) {
	lines, err := DecodeCartLines(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}
