package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/interceptors"
)

var verifier = HeaderVerifier{SubjectHeader: "X-Auth-Subject", RolesHeader: "X-Auth-Roles"}

func TestHeaderVerifier(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := verifier.Verify(req)
	assert.ErrorIs(t, err, ErrNoIdentity)

	req.Header.Set("X-Auth-Subject", " admin1 ")
	req.Header.Set("X-Auth-Roles", "Admin, User")
	req.Header.Set("Authorization", "Bearer abc")

	id, err := verifier.Verify(req)
	require.NoError(t, err)
	assert.Equal(t, "admin1", id.SubjectID)
	assert.True(t, id.IsAdmin())
	assert.Equal(t, "Bearer abc", id.Credential)
}

func TestAuthenticate(t *testing.T) {
	var got identity.Identity
	h := Authenticate(verifier)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = identity.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Authentication required"}`, rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Auth-Subject", "user123")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "user123", got.SubjectID)
	assert.False(t, got.IsAdmin())
}

func TestAttachTracingMetadata(t *testing.T) {
	var requestID, idempotencyKey string
	h := middleware.RequestID(AttachTracingMetadata(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = interceptors.RequestID(r.Context())
		idempotencyKey = interceptors.IdempotencyKey(r.Context())
	})))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("X-Request-Id", "req-42")
	req.Header.Set("X-Idempotency-Key", "idem-7")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "req-42", requestID)
	assert.Equal(t, "idem-7", idempotencyKey)
	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
}
