package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/auth"
	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterAuthRoutes registers the unauthenticated routes for
// registration, login and token refresh.
func (co Controller) RegisterAuthRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/register", httputil.OptionsPost)
	r.POST("/register", co.Register)
	r.OPTIONS("/login", httputil.OptionsPost)
	r.POST("/login", co.Login)
	r.OPTIONS("/refresh", httputil.OptionsPost)
	r.POST("/refresh", co.Refresh)
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required" example:"Jane Doe"`                // Display name
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"` // Email address, unique
	Password string `json:"password" binding:"required,min=6" example:"hunter22"`      // Password, at least 6 characters
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"jane@example.com"` // Email address
	Password string `json:"password" binding:"required" example:"hunter22"`            // Password
}

type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"` // A refresh token from a previous login
}

// AuthResponse is returned on successful registration and login.
type AuthResponse struct {
	User models.User `json:"user"` // The authenticated user
	auth.TokenPair
}

// @Summary		Register
// @Description	Creates a new user and returns a token pair
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		201		{object}	AuthResponse
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		RegisterRequest	true	"Registration data"
// @Router			/v1/auth/register [post]
func (co Controller) Register(c *gin.Context) {
	var request RegisterRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	hash, err := auth.HashPassword(request.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	user := models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hash,
	}

	err = co.db.Create(&user).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	tokens, err := auth.IssueTokens(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, AuthResponse{User: user, TokenPair: tokens})
}

// @Summary		Login
// @Description	Verifies the credentials and returns a token pair
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	AuthResponse
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		LoginRequest	true	"Credentials"
// @Router			/v1/auth/login [post]
func (co Controller) Login(c *gin.Context) {
	var request LoginRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	// An unknown email and a wrong password return the same error so
	// that the response does not leak which addresses are registered.
	var user models.User
	err := co.db.Where("email = ?", models.NormalizeEmail(request.Email)).First(&user).Error
	if err != nil {
		if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, httpError{Error: errInvalidCredentials.Error()})
			return
		}

		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if !auth.CheckPassword(user.Password, request.Password) {
		c.JSON(http.StatusUnauthorized, httpError{Error: errInvalidCredentials.Error()})
		return
	}

	tokens, err := auth.IssueTokens(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, AuthResponse{User: user, TokenPair: tokens})
}

// @Summary		Refresh tokens
// @Description	Exchanges a valid refresh token for a new token pair
// @Tags			Auth
// @Accept			json
// @Produce		json
// @Success		200		{object}	auth.TokenPair
// @Failure		400		{object}	httpError
// @Failure		401		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			request	body		RefreshRequest	true	"Refresh token"
// @Router			/v1/auth/refresh [post]
func (co Controller) Refresh(c *gin.Context) {
	var request RefreshRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	userID, err := auth.Verify(request.RefreshToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpError{Error: err.Error()})
		return
	}

	// The user might have been deleted since the token was issued.
	var user models.User
	err = co.db.First(&user, "id = ?", userID).Error
	if err != nil {
		c.JSON(http.StatusUnauthorized, httpError{Error: auth.ErrTokenInvalid.Error()})
		return
	}

	tokens, err := auth.IssueTokens(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, tokens)
}
