package auth

import (
	"crypto/subtle"
	"strings"

	"github.com/eleven-am/streetscene/internal/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Middleware gates routes behind a static set of bearer API keys.
type Middleware struct {
	keys [][]byte
}

// NewMiddleware accepts raw keys; blank entries are ignored, so an empty
// list rejects every request.
func NewMiddleware(keys []string) *Middleware {
	m := &Middleware{}
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			m.keys = append(m.keys, []byte(k))
		}
	}
	return m
}

func (m *Middleware) validate(key string, _ echo.Context) (bool, error) {
	for _, k := range m.keys {
		if subtle.ConstantTimeCompare([]byte(key), k) == 1 {
			return true, nil
		}
	}
	return false, nil
}

func (m *Middleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return middleware.KeyAuthWithConfig(middleware.KeyAuthConfig{
		KeyLookup:  "header:" + echo.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator:  m.validate,
		ErrorHandler: func(err error, c echo.Context) error {
			return shared.Unauthorized("invalid_token", "a valid bearer API key is required")
		},
	})(next)
}
