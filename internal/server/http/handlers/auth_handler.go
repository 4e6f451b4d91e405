package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
	"github.com/polkiloo/foodbridge/internal/server/http/dto"
	"github.com/polkiloo/foodbridge/internal/server/http/middleware"
)

const invalidLogin = "Invalid email or password"

// AuthHandler processes registration, login and the session cookie.
type AuthHandler struct {
	facade AuthFacade
	cookie middleware.CookieOptions
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, cookie middleware.CookieOptions) *AuthHandler {
	return &AuthHandler{facade: facade, cookie: cookie}
}

// Register handles POST /registrationUser.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.AuthResponse{Message: "Invalid registration details"})
		return
	}

	_, token, err := h.facade.Register(c.Request.Context(), model.Registration{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.FullName,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.AuthResponse{Message: "User already exists"})
		case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, dto.AuthResponse{Message: "Invalid registration details"})
		default:
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, dto.AuthResponse{Message: "Registration failed"})
		}
		return
	}

	middleware.SetAuthCookie(c, token, h.cookie)
	c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Redirect: homePath})
}

// Login handles POST /login. Browser forms get a redirect, scripts get JSON.
func (h *AuthHandler) Login(c *gin.Context) {
	asJSON := wantsJSON(c)

	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		h.loginFailed(c, asJSON, http.StatusBadRequest, invalidLogin)
		return
	}

	_, token, err := h.facade.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domainErrors.ErrInvalidCredentials) {
			h.loginFailed(c, asJSON, http.StatusBadRequest, invalidLogin)
			return
		}
		_ = c.Error(err)
		h.loginFailed(c, asJSON, http.StatusInternalServerError, "Login failed")
		return
	}

	middleware.SetAuthCookie(c, token, h.cookie)
	if asJSON {
		c.JSON(http.StatusOK, dto.AuthResponse{Success: true, Redirect: homePath})
		return
	}
	redirectHome(c)
}

func (h *AuthHandler) loginFailed(c *gin.Context, asJSON bool, status int, message string) {
	if asJSON {
		c.JSON(status, dto.AuthResponse{Message: message})
		return
	}
	c.String(status, message)
}

// Logout handles GET /logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	middleware.ClearAuthCookie(c, h.cookie)
	redirectHome(c)
}

// Home handles GET / and returns the signed-in user, or null.
func (h *AuthHandler) Home(c *gin.Context) {
	identity := CurrentIdentity(c)
	if identity.UserID == "" {
		c.JSON(http.StatusOK, dto.HomeResponse{})
		return
	}

	user, err := h.facade.CurrentUser(c.Request.Context(), identity)
	if err != nil {
		if !errors.Is(err, domainErrors.ErrNotFound) {
			_ = c.Error(err)
		}
		c.JSON(http.StatusOK, dto.HomeResponse{})
		return
	}
	c.JSON(http.StatusOK, dto.HomeResponse{User: &dto.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
		Role:  string(user.Role),
	}})
}
