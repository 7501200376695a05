package session

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"cartsession-api/internal/codec"
	"cartsession-api/internal/domain"
	sessrepo "cartsession-api/internal/repository/session"
)

// Listing timestamps are formatted month-first in UTC.
const listTimeFormat = "01/02/2006 15:04:05"

// ListInput are the normalized listing parameters.
type ListInput struct {
	Page    int
	PerPage int
	OrderBy string
	Order   string
}

// SessionSummary is one listing row, derived at list time.
type SessionSummary struct {
	CartID         int64  `json:"cart_id"`
	CartKey        string `json:"cart_key"`
	CustomersName  string `json:"customers_name"`
	CustomersEmail string `json:"customers_email"`
	CartCreated    string `json:"cart_created"`
	CartExpiry     string `json:"cart_expiry"`
	CartSource     string `json:"cart_source"`
	Link           string `json:"link"`
}

// SessionsPage is one page of the sessions listing. PrevPage and NextPage
// are zero when there is no such page; the transport layer renders them as
// links carrying the caller's query parameters.
type SessionsPage struct {
	Sessions      []SessionSummary `json:"sessions"`
	Page          int              `json:"page"`
	TotalPages    int              `json:"total_pages"`
	TotalSessions int              `json:"total_sessions"`
	PrevPage      int              `json:"-"`
	NextPage      int              `json:"-"`
}

// List pages through the stored sessions. An empty page is a NotFound
// fault: the listing treats "no carts in session" as an error signal.
func (s *Service) List(ctx context.Context, in ListInput) (*SessionsPage, error) {
	if in.Page < 1 {
		in.Page = 1
	}
	if in.PerPage < 1 {
		in.PerPage = 10
	}

	total, err := s.sessions.Count(ctx)
	if err != nil {
		return nil, err
	}

	records, err := s.sessions.List(ctx, sessrepo.ListParams{
		Offset:  (in.Page - 1) * in.PerPage,
		Limit:   in.PerPage,
		OrderBy: strings.ToLower(in.OrderBy),
		Order:   strings.ToUpper(in.Order),
	})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.NewDataError(domain.CodeNoSessionsFound, "No carts in session!", http.StatusNotFound)
	}

	sessions := make([]SessionSummary, 0, len(records))
	for _, rec := range records {
		var customer domain.SessionCustomerData
		if err := codec.Decode(rec.Customer, &customer); err != nil {
			return nil, err
		}
		sessions = append(sessions, SessionSummary{
			CartID:         rec.ID,
			CartKey:        rec.Key,
			CustomersName:  displayName(customer),
			CustomersEmail: customer.Email,
			CartCreated:    rec.Created.UTC().Format(listTimeFormat),
			CartExpiry:     rec.Expiry.UTC().Format(listTimeFormat),
			CartSource:     rec.Source,
			Link:           fmt.Sprintf("%s/session/%s", s.settings.APIBase, rec.Key),
		})
	}

	totalPages := (total + in.PerPage - 1) / in.PerPage
	page := &SessionsPage{
		Sessions:      sessions,
		Page:          in.Page,
		TotalPages:    totalPages,
		TotalSessions: total,
	}
	if in.Page > 1 {
		prev := in.Page - 1
		if prev > totalPages {
			prev = totalPages
		}
		page.PrevPage = prev
	}
	if in.Page < totalPages {
		page.NextPage = in.Page + 1
	}
	return page, nil
}

// displayName joins the stored first and last name; either alone is fine,
// no customer data at all yields an empty string.
func displayName(customer domain.SessionCustomerData) string {
	return strings.TrimSpace(strings.TrimSpace(customer.FirstName) + " " + strings.TrimSpace(customer.LastName))
}
