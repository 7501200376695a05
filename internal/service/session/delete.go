package session

import (
	"context"
	"errors"
	"net/http"

	"cartsession-api/internal/domain"
)

// Delete removes a session after confirming it exists, then verifies the
// record is really gone; a record that survives its own deletion is a fatal
// storage fault, not a warning. The persistent-cart marker is cleared best
// effort when that feature is on.
func (s *Service) Delete(ctx context.Context, sessionKey string) error {
	if _, err := s.fetch(ctx, sessionKey); err != nil {
		return err
	}

	if err := s.sessions.Delete(ctx, sessionKey); err != nil && !errors.Is(err, domain.ErrNotFound) {
		// A concurrent delete winning the race is still a deletion.
		return err
	}

	if _, err := s.sessions.Get(ctx, sessionKey); err == nil {
		return domain.NewDataError(domain.CodeSessionNotDeleted, "Session could not be deleted!", http.StatusInternalServerError)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	if s.settings.PersistentCartEnabled && s.markers != nil {
		if err := s.markers.Clear(ctx, sessionKey); err != nil {
			s.logger.Printf("session service: clear persistent cart key=%s error=%v", sessionKey, err)
		}
	}
	return nil
}
