package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers the routes for the user profile with
// the RouterGroup that is passed.
func (co Controller) RegisterUserRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/me", httputil.OptionsGet)
	r.GET("/me", co.GetMe)
}

// @Summary		Current user
// @Description	Returns the profile of the authenticated user
// @Tags			Users
// @Produce		json
// @Success		200	{object}	models.User
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/users/me [get]
func (co Controller) GetMe(c *gin.Context) {
	var user models.User
	err := co.db.First(&user, "id = ?", currentUser(c)).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}
