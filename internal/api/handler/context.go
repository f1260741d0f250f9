package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// adminProfile is the principal identity carried in the token claims.
type adminProfile struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// adminClaims extracts the claims injected by the Auth middleware and performs
// a fast-fail check before use: a non-empty email proves the middleware ran.
// JWT numeric claims decode as float64 and are converted back here.
func adminClaims(c echo.Context) (adminProfile, error) {
	email, _ := c.Get("email").(string)
	if email == "" {
		return adminProfile{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	name, _ := c.Get("name").(string)
	id, _ := c.Get("admin_id").(float64)

	return adminProfile{ID: int64(id), Name: name, Email: email}, nil
}
