package handlers

import (
	"errors"
	"net/http"

	"github.com/NailaFatima/stylehub-go/auth"
	"github.com/NailaFatima/stylehub-go/metrics"
	"github.com/labstack/echo/v4"
)

// AdminLogin verifies the mock credentials and opens an admin session.
func (h *Handler) AdminLogin(c echo.Context) error {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}

	user, token, err := h.gate.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			metrics.AdminLogins.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Login failed"})
	}

	metrics.AdminLogins.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"user":  user,
		"token": token,
	})
}

// AdminLogout clears the admin session. Safe to call when already
// logged out.
func (h *Handler) AdminLogout(c echo.Context) error {
	h.gate.Logout()
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out"})
}

// AdminSession reports the gate state and current user.
func (h *Handler) AdminSession(c echo.Context) error {
	resp := map[string]interface{}{
		"state":           string(h.gate.State()),
		"isAuthenticated": h.gate.State() == auth.StateAuthenticated,
	}
	if user, ok := h.gate.CurrentUser(); ok {
		resp["user"] = user
	}
	return c.JSON(http.StatusOK, resp)
}
