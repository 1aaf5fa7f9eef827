package v1

import (
	"net/http"

	"github.com/fintrack/backend/internal/httputil"
	"github.com/gin-gonic/gin"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Statistics
	{
		r.OPTIONS("/statistics/summary", OptionsStatistics)
		r.GET("/statistics/summary", co.GetSummary)
		r.OPTIONS("/statistics/by-categories", OptionsStatistics)
		r.GET("/statistics/by-categories", co.GetByCategories)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/statistics/summary [options]
func OptionsStatistics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get transactions
// @Description	Returns a page of the transactions of the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Router			/v1/transactions [get]
// @Param			page		query	int		false	"Page to return. Defaults to 1."
// @Param			limit		query	int		false	"Maximum number of transactions per page. Defaults to 20."
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			categoryId	query	string	false	"Filter by category ID"
// @Param			startDate	query	string	false	"Transactions at and after this RFC3339 timestamp"
// @Param			endDate		query	string	false	"Transactions before and at this RFC3339 timestamp"
// @Param			search		query	string	false	"Search in description and category name"
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if filter.Type != "" && !filter.Type.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: errTypeRequired.Error()})
		return
	}

	page, err := co.ledger.Transactions(currentUser(c), filter.options())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: page.Transactions,
		Meta: Meta{
			Total:      page.Total,
			Page:       page.Page,
			Limit:      page.Limit,
			TotalPages: page.TotalPages,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction of the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	models.Transaction
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction, err := co.ledger.Transaction(currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Create transaction
// @Description	Creates a new transaction for the authenticated user
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction, err := co.ledger.CreateTransaction(currentUser(c), editable.create())
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusCreated, transaction)
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	models.Transaction
// @Failure		400			{object}	httpError
// @Failure		404			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			id			path		string				true	"ID of the transaction"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	// Get the fields that are set to be updated
	updateFields, err := httputil.GetBodyFields(c, TransactionEditable{})
	if err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	var editable TransactionEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	transaction, err := co.ledger.UpdateTransaction(currentUser(c), uri.ID.UUID, editable.update(), updateFields)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID of the transaction"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	err := co.ledger.DeleteTransaction(currentUser(c), uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Period summary
// @Description	Returns the income and expense totals and the balance for the period
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	ledger.Summary
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			startDate	query	string	false	"Inclusive lower bound, RFC3339"
// @Param			endDate		query	string	false	"Inclusive upper bound, RFC3339"
// @Router			/v1/transactions/statistics/summary [get]
func (co Controller) GetSummary(c *gin.Context) {
	var query DateRangeQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	startDate, endDate := query.bounds()
	summary, err := co.ledger.Summary(currentUser(c), startDate, endDate)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, summary)
}

// @Summary		Per-category breakdown
// @Description	Returns the transactions of one type grouped by category, largest total first
// @Tags			Transactions
// @Produce		json
// @Success		200			{array}		ledger.CategoryGroup
// @Failure		400			{object}	httpError
// @Failure		500			{object}	httpError
// @Param			type		query	string	true	"Transaction type to group"
// @Param			startDate	query	string	false	"Inclusive lower bound, RFC3339"
// @Param			endDate		query	string	false	"Inclusive upper bound, RFC3339"
// @Router			/v1/transactions/statistics/by-categories [get]
func (co Controller) GetByCategories(c *gin.Context) {
	var query ByCategoryQuery
	if err := c.Bind(&query); err != nil {
		c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
		return
	}

	if !query.Type.Valid() {
		c.JSON(http.StatusBadRequest, httpError{Error: errTypeRequired.Error()})
		return
	}

	startDate, endDate := query.bounds()
	groups, err := co.ledger.ByCategory(currentUser(c), query.Type, startDate, endDate)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}
