package session

import (
	"context"
	"errors"
	"testing"

	"cartsession-api/internal/domain"
	sessrepo "cartsession-api/internal/repository/session"
)

type stubSessions struct {
	records map[string]*domain.SessionRecord
	getErr  error
	// getSequence overrides records per call; a nil entry means not found.
	getSequence []*domain.SessionRecord
	getCalls    int
	deleteErr   error
	deleteCalls int
	// survives makes Delete report success while the record stays readable.
	survives    bool
	listRecords []domain.SessionRecord
	listErr     error
	lastList    sessrepo.ListParams
	count       int
	countErr    error
}

func (s *stubSessions) Get(_ context.Context, key string) (*domain.SessionRecord, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	if len(s.getSequence) > 0 {
		idx := s.getCalls
		if idx >= len(s.getSequence) {
			idx = len(s.getSequence) - 1
		}
		s.getCalls++
		rec := s.getSequence[idx]
		if rec == nil {
			return nil, domain.ErrNotFound
		}
		return rec, nil
	}
	rec, ok := s.records[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

func (s *stubSessions) Delete(_ context.Context, key string) error {
	s.deleteCalls++
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.records[key]; !ok {
		return domain.ErrNotFound
	}
	if !s.survives {
		delete(s.records, key)
	}
	return nil
}

func (s *stubSessions) List(_ context.Context, params sessrepo.ListParams) ([]domain.SessionRecord, error) {
	s.lastList = params
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.listRecords, nil
}

func (s *stubSessions) Count(context.Context) (int, error) {
	return s.count, s.countErr
}

type stubProducts struct {
	products map[int64]*domain.Product
	err      error
}

func (s *stubProducts) GetByID(_ context.Context, id int64) (*domain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	p, ok := s.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

type stubCustomers struct {
	customers map[int64]*domain.Customer
	err       error
}

func (s *stubCustomers) GetByID(_ context.Context, id int64) (*domain.Customer, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

type stubCoupons struct {
	coupons map[string]*domain.Coupon
	err     error
}

func (s *stubCoupons) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	if s.err != nil {
		return nil, s.err
	}
	c, ok := s.coupons[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}

type stubMarkers struct {
	cleared []string
	err     error
}

func (s *stubMarkers) Clear(_ context.Context, key string) error {
	if s.err != nil {
		return s.err
	}
	s.cleared = append(s.cleared, key)
	return nil
}

func testSettings() Settings {
	return Settings{
		TaxDisplayMode:        "incl",
		WeightUnit:            "kg",
		DimensionUnit:         "cm",
		PriceDecimals:         2,
		CurrencySymbol:        "$",
		CouponsEnabled:        true,
		PersistentCartEnabled: true,
		APIBase:               "https://store.example.com/v2",
	}
}

type testDeps struct {
	sessions  *stubSessions
	products  *stubProducts
	customers *stubCustomers
	coupons   *stubCoupons
	markers   *stubMarkers
}

func newTestService(deps testDeps, settings Settings, hooks *Hooks) *Service {
	if deps.sessions == nil {
		deps.sessions = &stubSessions{}
	}
	if deps.products == nil {
		deps.products = &stubProducts{}
	}
	if deps.customers == nil {
		deps.customers = &stubCustomers{}
	}
	if deps.coupons == nil {
		deps.coupons = &stubCoupons{}
	}
	if deps.markers == nil {
		deps.markers = &stubMarkers{}
	}
	return New(deps.sessions, deps.products, deps.customers, deps.coupons, deps.markers, settings, hooks, nil)
}

func assertDataError(t *testing.T, err error, code string, status int) *domain.DataError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var dataErr *domain.DataError
	if !errors.As(err, &dataErr) {
		t.Fatalf("expected DataError, got %T: %v", err, err)
	}
	if dataErr.Code != code {
		t.Fatalf("expected code %s, got %s", code, dataErr.Code)
	}
	if dataErr.Status != status {
		t.Fatalf("expected status %d, got %d", status, dataErr.Status)
	}
	return dataErr
}
