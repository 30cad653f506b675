package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs infrastructure failures with request context and answers
// the client with a generic error, so handlers stay one-liners on failure.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogError records err with the request method and path.
func (e *ErrorLogger) LogError(r *http.Request, msg string, err error, fields ...zap.Field) {
	fields = append(fields,
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	e.Log.Error(msg, fields...)
}

// ServerError logs and replies 500.
func (e *ErrorLogger) ServerError(w http.ResponseWriter, r *http.Request, msg string, err error, fields ...zap.Field) {
	e.LogError(r, msg, err, fields...)
	http.Error(w, "internal error", http.StatusInternalServerError)
}
