// Package codec decodes the opaque blobs embedded in a session record.
//
// The contract is deliberately lenient about absence and strict about
// corruption: a nil or empty blob decodes to the zero value of the target,
// while a blob that exists but cannot be decoded surfaces a structured
// data-integrity fault for the caller to escalate.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"cartsession-api/internal/domain"
)

// Decode unmarshals blob into v. Absent input (nil, empty, or JSON null)
// leaves v untouched and returns nil. Any other failure returns a
// *domain.DataError with the session_data_corrupt code.
func Decode(blob []byte, v interface{}) error {
	blob = bytes.TrimSpace(blob)
	if len(blob) == 0 || bytes.Equal(blob, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(blob, v); err != nil {
		return corrupt(fmt.Sprintf("session blob could not be decoded: %v", err))
	}
	return nil
}

// DecodeCartLines decodes a cart or removed-contents blob and verifies line
// integrity: every line needs a key and a positive quantity. A bad quantity
// is storage corruption, not a line to skip.
func DecodeCartLines(blob []byte) ([]domain.CartLine, error) {
	var lines []domain.CartLine
	if err := Decode(blob, &lines); err != nil {
		return nil, err
	}
	for _, line := range lines {
		if line.Key == "" {
			return nil, corrupt("cart line is missing its item key")
		}
		if line.Quantity <= 0 {
			return nil, corrupt(fmt.Sprintf("cart line %q has non-positive quantity %v", line.Key, line.Quantity.Float64()))
		}
	}
	return lines, nil
}

func corrupt(message string) *domain.DataError {
	return domain.NewDataError(domain.CodeSessionDataCorrupt, message, http.StatusInternalServerError)
}
