package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/astralfront/supremacy/internal/api/apierr"
	"github.com/astralfront/supremacy/internal/model"
	"github.com/astralfront/supremacy/internal/services/credential"
)

type contextKey string

const (
	identityContextKey contextKey = "identity"
	clientIDContextKey contextKey = "client_id"
)

// clientIDHeader must accompany every API call; token grants are scoped
// to it
const clientIDHeader = "X-Client-ID"

// Auth creates authentication middleware for one scope.
//
// Scope "none" admits anonymous callers and attaches an ephemeral
// anonymous identity. Any other scope requires a bearer token; the
// actor key embedded in the token routes verification directly to the
// owning credential actor.
func Auth(credentialSvc *credential.Service, scope model.Scope) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientID := model.ClientID(r.Header.Get(clientIDHeader))
			if clientID == "" {
				apierr.WriteError(w, apierr.NewClientIDRequiredError())
				return
			}

			ctx := r.Context()
			ctx = context.WithValue(ctx, clientIDContextKey, clientID)

			if scope == model.ScopeNone {
				ctx = context.WithValue(ctx, identityContextKey, &model.Identity{Anonymous: true})
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := extractToken(r)
			if token == "" {
				apierr.WriteError(w, apierr.NewUnauthorizedError())
				return
			}

			ident, err := credentialSvc.VerifyAccessToken(ctx, token, clientID, scope)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx = context.WithValue(ctx, identityContextKey, ident)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// extractToken extracts the bearer token from the request
func extractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetIdentity returns the resolved identity from the request context
func GetIdentity(ctx context.Context) *model.Identity {
	ident, _ := ctx.Value(identityContextKey).(*model.Identity)
	return ident
}

// GetClientID returns the client id from the request context
func GetClientID(ctx context.Context) model.ClientID {
	clientID, _ := ctx.Value(clientIDContextKey).(model.ClientID)
	return clientID
}

// MustGetIdentity returns the resolved identity or panics
func MustGetIdentity(ctx context.Context) *model.Identity {
	ident := GetIdentity(ctx)
	if ident == nil {
		panic("no identity in context - auth middleware not applied?")
	}
	return ident
}
