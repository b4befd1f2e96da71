package middlewares

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
)

// ErrNoIdentity is returned by a Verifier when the request carries no
// verified subject.
var ErrNoIdentity = errors.New("no verified identity")

// Verifier turns an incoming request into a verified identity.
type Verifier interface {
	Verify(r *http.Request) (identity.Identity, error)
}

// HeaderVerifier trusts the subject and role headers written by the
// identity-aware proxy in front of the gateway. The Authorization header is
// kept as the credential and forwarded unmodified.
type HeaderVerifier struct {
	SubjectHeader string
	RolesHeader   string
}

func (v HeaderVerifier) Verify(r *http.Request) (identity.Identity, error) {
	subject := strings.TrimSpace(r.Header.Get(v.SubjectHeader))
	if subject == "" {
		return identity.Identity{}, ErrNoIdentity
	}
	return identity.Identity{
		SubjectID:  subject,
		Roles:      identity.ParseRoles(r.Header.Get(v.RolesHeader)),
		Credential: r.Header.Get("Authorization"),
	}, nil
}

// Authenticate rejects requests without a verified identity with 401 and
// stores the identity in the request context otherwise.
func Authenticate(v Verifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := v.Verify(r)
			if err != nil || !id.Authenticated() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"success": false,
					"message": "Authentication required",
				})
				return
			}
			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
		})
	}
}
