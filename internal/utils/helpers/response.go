package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"blogcore/internal/apperr"
	"blogcore/internal/config"
	"blogcore/internal/logger"

	"go.uber.org/zap"
)

// ErrorResponse — единый конверт ошибки для клиента.
// Детали (stack) добавляются только вне prod.
type ErrorResponse struct {
	Success    bool                `json:"success"`
	StatusCode int                 `json:"statusCode"`
	Message    string              `json:"message"`
	Errors     []apperr.FieldError `json:"errors,omitempty"`
	Suggestion string              `json:"suggestion,omitempty"`
	Stack      string              `json:"stack,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return
	}
}

// Fail — единственная точка перевода ошибки в HTTP-ответ.
// Сервисы и политика только возвращают типизированные ошибки.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	cfg, _ := config.LoadConfig()
	dev := cfg.IsDev()

	e := apperr.Classify(err, dev)

	if e.Kind == apperr.KindInternal {
		logger.WithCtx(r.Context()).Error("Необработанная ошибка запроса",
			zap.String("path", r.URL.Path),
			zap.String("method", r.Method),
			zap.Error(err),
		)
	}

	resp := ErrorResponse{
		Success:    false,
		StatusCode: e.Status(),
		Message:    e.Message,
		Errors:     e.Fields,
	}
	if dev {
		if cause := e.Unwrap(); cause != nil {
			resp.Stack = cause.Error()
		}
	}

	JSON(w, e.Status(), resp)
}

// NotFoundHandler — ответ на незарегистрированный маршрут.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSON(w, http.StatusNotFound, ErrorResponse{
			Success:    false,
			StatusCode: http.StatusNotFound,
			Message:    fmt.Sprintf("Route %s %s not found", r.Method, r.URL.Path),
			Suggestion: "Please check the API documentation for available endpoints",
		})
	})
}
