package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// authClaims is the per-request identity injected by the Auth middleware.
type authClaims struct {
	Subject      string // user id
	Username     string
	Role         string
	DepartmentID string
}

// ctxClaims extracts the auth claims injected by the Auth middleware and
// fast-fails before any service call: a missing subject or role means the
// middleware did not run (or the token carried no usable identity).
func ctxClaims(c echo.Context) (authClaims, error) {
	claims := authClaims{}
	claims.Subject, _ = c.Get("sub").(string)
	claims.Username, _ = c.Get("username").(string)
	claims.Role, _ = c.Get("role").(string)
	claims.DepartmentID, _ = c.Get("department_id").(string)

	if claims.Subject == "" || claims.Role == "" {
		return authClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
