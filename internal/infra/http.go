package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/s21platform/buffer-service/internal/api"
	"github.com/s21platform/buffer-service/internal/config"
	"github.com/s21platform/buffer-service/internal/model"
)

type TokenValidator interface {
	ValidateServiceToken(tokenString string) (*model.ServiceClaims, error)
}

// AuthInterceptorHTTP rejects requests without a valid service token and puts
// the caller subject into the request context.
func AuthInterceptorHTTP(next http.Handler, validator TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeUnauthorized(w, "missing bearer token")
			return
		}

		claims, err := validator.ValidateServiceToken(tokenString)
		if err != nil {
			writeUnauthorized(w, "invalid service token")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// LoggerHTTP injects the service logger into the request context.
func LoggerHTTP(next http.Handler, logger logger_lib.LoggerInterface) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
