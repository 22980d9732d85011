// Package response holds the wire shapes shared by the HTTP handlers.
package response

import (
	"github.com/labstack/echo/v4"
)

// Msg writes the plain `{"msg": ...}` body used by most endpoints.
func Msg(c echo.Context, statusCode int, msg string) error {
	return c.JSON(statusCode, map[string]string{"msg": msg})
}

// MsgWith writes `{"msg": ...}` plus additional top-level fields. The extra
// keys sit beside msg, not under a data envelope; clients read them by name.
func MsgWith(c echo.Context, statusCode int, msg string, fields map[string]any) error {
	body := make(map[string]any, len(fields)+1)
	body["msg"] = msg
	for k, v := range fields {
		body[k] = v
	}

	return c.JSON(statusCode, body)
}
