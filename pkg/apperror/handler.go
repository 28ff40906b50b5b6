package apperror

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

var statusCodes = map[int]string{
	http.StatusBadRequest:            "bad_request",
	http.StatusNotFound:              "not_found",
	http.StatusMethodNotAllowed:      "method_not_allowed",
	http.StatusRequestEntityTooLarge: "payload_too_large",
	http.StatusTooManyRequests:       "rate_limited",
	http.StatusServiceUnavailable:    "service_unavailable",
}

// HTTPErrorHandler renders every error as {"error":{"code","message"}}.
// HEAD requests get the status only. 5xx responses are logged.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		errorObj := map[string]any{
			"code":    "internal_error",
			"message": "An internal error occurred",
		}

		var appErr *Error
		var he *echo.HTTPError
		switch {
		case errors.As(err, &appErr):
			code = appErr.HTTPStatus
			for k, v := range appErr.body() {
				errorObj[k] = v
			}
		case errors.As(err, &he):
			code = he.Code
			switch msg := he.Message.(type) {
			case map[string]any:
				if inner, ok := msg["error"].(map[string]any); ok {
					for k, v := range inner {
						errorObj[k] = v
					}
				}
			case string:
				errorObj["message"] = msg
				if name, ok := statusCodes[code]; ok {
					errorObj["code"] = name
				}
			}
		}

		if code >= http.StatusInternalServerError {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("path", c.Request().URL.Path),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, map[string]any{"error": errorObj})
	}
}
