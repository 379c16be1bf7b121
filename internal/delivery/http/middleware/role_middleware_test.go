package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clinicdev/clinic-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
)

func requestWithRole(role string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/resource", nil)
	ctx := WithPrincipal(req.Context(), &Principal{
		UserID: 1,
		Email:  "user@clinic.test",
		Role:   role,
	})
	return req.WithContext(ctx)
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name       string
		allowed    []entity.Role
		request    *http.Request
		wantStatus int
	}{
		{
			name:       "no principal",
			allowed:    []entity.Role{entity.RoleAdmin},
			request:    httptest.NewRequest(http.MethodGet, "/resource", nil),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "role not allowed",
			allowed:    []entity.Role{entity.RoleMaster},
			request:    requestWithRole("ADMIN"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "user blocked from admin route",
			allowed:    []entity.Role{entity.RoleAdmin, entity.RoleMaster},
			request:    requestWithRole("USER"),
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin allowed",
			allowed:    []entity.Role{entity.RoleAdmin, entity.RoleMaster},
			request:    requestWithRole("ADMIN"),
			wantStatus: http.StatusOK,
		},
		{
			name:       "master allowed",
			allowed:    []entity.Role{entity.RoleMaster},
			request:    requestWithRole("MASTER"),
			wantStatus: http.StatusOK,
		},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireRole(tc.allowed...)(next).ServeHTTP(rec, tc.request)
			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}

func TestGetPrincipal(t *testing.T) {
	req := requestWithRole("USER")

	principal, ok := GetPrincipal(req.Context())
	assert.True(t, ok)
	assert.Equal(t, uint(1), principal.UserID)

	_, ok = GetPrincipal(context.Background())
	assert.False(t, ok)
}
