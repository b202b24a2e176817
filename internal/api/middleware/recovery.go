package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
)

// Recovery перехватывает панику в обработчике и отвечает 500
func Recovery(logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					requestID, _ := GetRequestID(r.Context())
					logger.Error("%s %s - Panic recovered: request_id=%s, panic=%v\n%s",
						r.Method, r.URL.Path, requestID, rec, debug.Stack())
					handlers.RespondInternalError(w)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
