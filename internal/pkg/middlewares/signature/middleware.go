package signature

import (
	"bytes"
	"context"
	"encoding/base64"
	"io"
	"net/http"

	"shipledger/internal/entities"
	"shipledger/pkg/logger"
)

const (
	HeaderCallerAddress = "X-Caller-Address"
	HeaderSignature     = "X-Signature"
)

type contextKey struct{}

// Caller достаёт проверенный адрес вызывающего из контекста запроса.
func Caller(ctx context.Context) (entities.Address, bool) {
	caller, ok := ctx.Value(contextKey{}).(entities.Address)
	return caller, ok
}

// WithCaller кладёт адрес вызывающего в контекст в обход проверки подписи.
// Для тестов обработчиков.
func WithCaller(ctx context.Context, caller entities.Address) context.Context {
	return context.WithValue(ctx, contextKey{}, caller)
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Middleware проверяет ed25519-подпись тела запроса до любого чтения
// состояния. Адрес вызывающего и есть его публичный ключ.
// Read-only методы подписи не требуют.
func Middleware(log handlerLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			caller := entities.Address(r.Header.Get(HeaderCallerAddress))
			if !caller.IsValid() {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			signature, err := base64.StdEncoding.DecodeString(r.Header.Get(HeaderSignature))
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			if !caller.Verify(body, signature) {
				log.With(
					logger.NewField("caller", caller.String()),
					logger.NewField("path", r.URL.Path),
				).Warn("invalid request signature")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
