// File: cmd/api/context.go
package main

import (
	"context"
	"net/http"

	"github.com/autosales/api/internal/auth"
)

type contextKey string

const claimsContextKey = contextKey("claims")

// contextSetClaims adds the verified token claims to the request context.
func (app *app) contextSetClaims(r *http.Request, claims *auth.Claims) *http.Request {
	ctx := context.WithValue(r.Context(), claimsContextKey, claims)
	return r.WithContext(ctx)
}

// contextGetClaims retrieves the token claims from the request context.
func (app *app) contextGetClaims(r *http.Request) *auth.Claims {
	claims, ok := r.Context().Value(claimsContextKey).(*auth.Claims)
	if !ok {
		panic("missing claims value in context")
	}
	return claims
}
