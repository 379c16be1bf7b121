package usecase

import (
	"context"
	"strconv"
	"time"

	"github.com/clinicdev/clinic-api/internal/delivery/http/middleware"
)

// actorID returns the authenticated user id from the request context, or nil
// for unauthenticated flows such as self registration.
func actorID(ctx context.Context) *uint {
	principal, ok := middleware.GetPrincipal(ctx)
	if !ok {
		return nil
	}
	return &principal.UserID
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseTimestamp accepts RFC3339 or a zone-less local form; zone-less values
// are taken as UTC.
func parseTimestamp(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, raw)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", raw)
}
