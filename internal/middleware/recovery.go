package middleware

import (
	"net/http"
	"runtime/debug"

	"blogcore/internal/logger"
	"blogcore/internal/reqctx"
	"blogcore/internal/utils/helpers"

	"go.uber.org/zap"
)

func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				fields := []zap.Field{
					zap.Any("panic", rec),
					zap.ByteString("stack", debug.Stack()),
					zap.String("path", r.URL.Path),
					zap.String("method", r.Method),
				}
				if rid, ok := reqctx.GetRequestID(r.Context()); ok {
					fields = append(fields, zap.String("request_id", rid))
				}
				logger.Log.Error("panic recovered", fields...)

				helpers.JSON(w, http.StatusInternalServerError, helpers.ErrorResponse{
					Success:    false,
					StatusCode: http.StatusInternalServerError,
					Message:    "Something went wrong. Please try again later.",
				})
			}
		}()
		next.ServeHTTP(w, r)
	})
}
