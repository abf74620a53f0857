package middlewares

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireScanKey guards the scanner endpoint with a static bearer key, the
// same scheme the hardware scanners already speak. An empty configured key
// disables the endpoint rather than leaving it open.
func RequireScanKey(key string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if key == "" {
				return echo.NewHTTPError(http.StatusServiceUnavailable, map[string]any{"error": "SCAN_KEY_NOT_CONFIGURED"})
			}
			tok, err := extractBearer(c)
			if err != nil {
				return err
			}
			if subtle.ConstantTimeCompare([]byte(tok), []byte(key)) != 1 {
				return echo.NewHTTPError(http.StatusUnauthorized, map[string]any{"error": "INVALID_SCAN_KEY"})
			}
			return next(c)
		}
	}
}
