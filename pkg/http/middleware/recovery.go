package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	applogger "github.com/Priyanndarshan/stock-website/pkg/logger"

	"github.com/labstack/echo/v4"
)

// Recover returns recovery middleware. A panic inside a handler becomes the
// generic processing error response instead of tearing down the connection.
func Recover(l *applogger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = fmt.Errorf("%v", r)
					}
					if l != nil {
						l.Error("panic recovered",
							applogger.Error(err),
							applogger.String("stack", string(debug.Stack())),
						)
					}
					_ = c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"error": "An error occurred while processing your request.",
					})
				}
			}()
			return next(c)
		}
	}
}
