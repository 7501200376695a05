package session

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"cartsession-api/internal/domain"
)

func TestDeleteRemovesSessionAndMarker(t *testing.T) {
	rec := testRecord()
	sessions := &stubSessions{records: map[string]*domain.SessionRecord{rec.Key: rec}}
	markers := &stubMarkers{}
	svc := newTestService(testDeps{sessions: sessions, markers: markers}, testSettings(), nil)

	if err := svc.Delete(context.Background(), rec.Key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sessions.deleteCalls != 1 {
		t.Fatalf("expected one delete call, got %d", sessions.deleteCalls)
	}
	if len(markers.cleared) != 1 || markers.cleared[0] != rec.Key {
		t.Fatalf("expected persistent cart marker cleared, got %v", markers.cleared)
	}
}

func TestDeleteUnknownSession(t *testing.T) {
	sessions := &stubSessions{}
	svc := newTestService(testDeps{sessions: sessions}, testSettings(), nil)

	err := svc.Delete(context.Background(), "no-such-key")
	assertDataError(t, err, domain.CodeSessionNotValid, http.StatusNotFound)
	if sessions.deleteCalls != 0 {
		t.Fatal("expected no delete attempt for an unknown session")
	}
}

func TestDeleteSurvivingRecordIsFatal(t *testing.T) {
	rec := testRecord()
	sessions := &stubSessions{
		records:  map[string]*domain.SessionRecord{rec.Key: rec},
		survives: true,
	}
	markers := &stubMarkers{}
	svc := newTestService(testDeps{sessions: sessions, markers: markers}, testSettings(), nil)

	err := svc.Delete(context.Background(), rec.Key)
	dataErr := assertDataError(t, err, domain.CodeSessionNotDeleted, http.StatusInternalServerError)
	if dataErr.Message != "Session could not be deleted!" {
		t.Fatalf("unexpected message: %q", dataErr.Message)
	}
	if len(markers.cleared) != 0 {
		t.Fatal("marker must not be cleared when the record survives")
	}
}

func TestDeleteToleratesConcurrentDelete(t *testing.T) {
	rec := testRecord()
	// The exist check sees the record, a concurrent delete wins the race,
	// and the verification read confirms the record is gone.
	sessions := &stubSessions{
		getSequence: []*domain.SessionRecord{rec, nil},
		deleteErr:   domain.ErrNotFound,
	}
	svc := newTestService(testDeps{sessions: sessions}, testSettings(), nil)

	if err := svc.Delete(context.Background(), rec.Key); err != nil {
		t.Fatalf("losing the delete race must not be an error: %v", err)
	}
}

func TestDeleteMarkerFailureIsNotFatal(t *testing.T) {
	rec := testRecord()
	sessions := &stubSessions{records: map[string]*domain.SessionRecord{rec.Key: rec}}
	markers := &stubMarkers{err: errors.New("redis down")}
	svc := newTestService(testDeps{sessions: sessions, markers: markers}, testSettings(), nil)

	if err := svc.Delete(context.Background(), rec.Key); err != nil {
		t.Fatalf("marker failure must not fail the delete: %v", err)
	}
}

func TestDeleteMarkerSkippedWhenFeatureOff(t *testing.T) {
	rec := testRecord()
	sessions := &stubSessions{records: map[string]*domain.SessionRecord{rec.Key: rec}}
	markers := &stubMarkers{}
	settings := testSettings()
	settings.PersistentCartEnabled = false
	svc := newTestService(testDeps{sessions: sessions, markers: markers}, settings, nil)

	if err := svc.Delete(context.Background(), rec.Key); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(markers.cleared) != 0 {
		t.Fatalf("expected marker untouched, got %v", markers.cleared)
	}
}
