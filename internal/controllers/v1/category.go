package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/fintrack/backend/internal/models"
	"github.com/gin-gonic/gin"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsCategoryList)
		r.GET("", co.GetCategories)
		r.POST("", co.CreateCategory)
	}

	// Category with ID
	{
		r.OPTIONS("/:id", OptionsCategoryDetail)
		r.GET("/:id", co.GetCategory)
		r.PUT("/:id", co.UpdateCategory)
		r.DELETE("/:id", co.DeleteCategory)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsGetPutDelete(c)
}

// @Summary		Get categories
// @Description	Returns the categories of the authenticated user
// @Tags			Categories
// @Produce		json
// @Success		200		{array}		models.Category
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Router			/v1/categories [get]
// @Param			type	query	string	false	"Filter by category type"
func (co Controller) GetCategories(c *gin.Context) {
	var filter CategoryQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	q := co.db.Where("categories.user_id = ?", currentUser(c))
	if filter.Type != "" {
		q = q.Where("categories.type = ?", filter.Type)
	}

	var categories []models.Category
	err := q.Order("categories.name ASC").Find(&categories).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, categories)
}

// @Summary		Get category
// @Description	Returns a specific category of the authenticated user
// @Tags			Categories
// @Produce		json
// @Success		200	{object}	models.Category
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [get]
func (co Controller) GetCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category, err := co.category(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Create category
// @Description	Creates a new category for the authenticated user
// @Tags			Categories
// @Produce		json
// @Success		201			{object}	models.Category
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category := editable.model(currentUser(c))
	err := co.db.Create(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, category)
}

// @Summary		Update category
// @Description	Replaces the configurable values of a category
// @Tags			Categories
// @Produce		json
// @Success		200			{object}	models.Category
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/categories/{id} [put]
func (co Controller) UpdateCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category, err := co.category(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err = co.db.Model(&category).Select("Name", "Type", "Color", "Icon").Updates(editable.model(currentUser(c))).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, category)
}

// @Summary		Delete category
// @Description	Deletes a category. Its transactions become uncategorized.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the category"
// @Router			/v1/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	category, err := co.category(c, uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = co.db.Delete(&category).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// category loads a category scoped to the authenticated user. A
// category of another user yields the same error as a missing one.
func (co Controller) category(c *gin.Context, uri URIID) (models.Category, error) {
	var category models.Category
	err := co.db.Where("id = ? AND user_id = ?", uri.ID.UUID, currentUser(c)).First(&category).Error
	return category, err
}
