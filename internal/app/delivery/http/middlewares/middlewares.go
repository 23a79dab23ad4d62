package middlewares

import (
	"context"
	"net/http"

	"epic-connect-service/internal/pkg/constvars"
	"epic-connect-service/internal/pkg/exceptions"
	"epic-connect-service/internal/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Middlewares struct {
	Log *zap.Logger
}

func NewMiddlewares(logger *zap.Logger) *Middlewares {
	return &Middlewares{
		Log: logger,
	}
}

// RequestID attaches a fresh request ID to the context and echoes it back in
// the response header. An inbound X-Request-ID is honored if present.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(constvars.HeaderXRequestID, requestID)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Recoverer converts handler panics into the standard error envelope instead
// of a dropped connection.
func (m *Middlewares) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.Log.Error("panic recovered while handling request",
					zap.Any("panic", rec),
					zap.String("path", r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.BuildNewCustomError(
					nil,
					constvars.StatusInternalServerError,
					constvars.ErrClientSomethingWrongWithApplication,
					"Recovered from panic",
				))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
