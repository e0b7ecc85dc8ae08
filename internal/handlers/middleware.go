package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/calebfernandez/levelup/internal/responses"
	"github.com/calebfernandez/levelup/internal/utils"

	"golang.org/x/time/rate"
)

type contextKey string

const (
	userClaimsKey contextKey = "userClaims"
)

func JWTMiddleware(jwtUtil *utils.JWTUtil) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				responses.SendErrorResponse(w, http.StatusUnauthorized, "Authorization header is required")
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				responses.SendErrorResponse(w, http.StatusUnauthorized, "Bearer token not found")
				return
			}

			claims, err := jwtUtil.ValidateToken(tokenString)
			if err != nil {
				responses.SendErrorResponse(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, claims)
			r = r.WithContext(ctx)

			next.ServeHTTP(w, r)
		})
	}
}

func RateLimitMiddleware(limiter *rate.Limiter) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				responses.SendErrorResponse(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
				return
			}
			next(w, r)
		}
	}
}
