package echomw

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reoring/swagval"
	"github.com/reoring/swagval/middleware"
	"github.com/reoring/swagval/schema"
	"github.com/reoring/swagval/value"
)

// ValidateJSON decodes the request body, validates it against target and
// stores the value tree in the request context on success. Malformed JSON
// and validation failures are answered with 400. A zero opt selects
// middleware.DefaultDecodeOptions, so limits cannot be switched off entirely;
// set each limit explicitly (for example a very large MaxBytes) to relax them.
func ValidateJSON(cfg swagval.Config, target schema.Referenced, opt value.DecodeOptions) echo.MiddlewareFunc {
	if opt == (value.DecodeOptions{}) {
		opt = middleware.DefaultDecodeOptions()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			v, err := value.DecodeWith(c.Request().Body, opt)
			if err != nil {
				c.Logger().Debugf("swagval: undecodable body: %v", err)
				return c.JSON(http.StatusBadRequest, map[string]any{"error": err.Error()})
			}
			if res := swagval.ValidateRef(cfg, target, v); !res.Passed() {
				c.Logger().Debugf("swagval: %d violation(s): %v", len(res.Errors()), res.Errors())
				return c.JSON(http.StatusBadRequest, middleware.ErrorPayload(res.Errors()))
			}
			ctx := middleware.ContextWithValue(c.Request().Context(), v)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// GetValue fetches the validated body from echo.Context.
func GetValue(c echo.Context) (value.Value, bool) {
	return middleware.ValueFromContext(c.Request().Context())
}
