package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/fintrack/backend/internal/controllers/v1"
	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// TestTransactionsOptions verifies the HTTP OPTIONS responses for the
// transaction endpoints.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	user := suite.registerTestUser("options@example.com")

	tests := []struct {
		name  string
		path  string
		allow string
	}{
		{"Collection", "", "OPTIONS, GET, POST"},
		{"Single", fmt.Sprintf("/%s", uuid.New()), "OPTIONS, GET, PATCH, DELETE"},
		{"Summary", "/statistics/summary", "OPTIONS, GET"},
		{"By categories", "/statistics/by-categories", "OPTIONS, GET"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/transactions"+tt.path, "", test.BearerHeaders(user.AccessToken))
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)
			assert.Equal(t, tt.allow, r.Header().Get("allow"))
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	user := suite.registerTestUser("create@example.com")
	category := suite.createTestCategory(user.AccessToken, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	transaction := suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Amount:      decimal.NewFromFloat(14.03),
		Type:        models.TypeExpense,
		Description: "Lunch",
		CategoryID:  &category.ID,
	})

	assert.Equal(suite.T(), user.User.ID, transaction.UserID)
	assert.True(suite.T(), transaction.Amount.Equal(decimal.NewFromFloat(14.03)))
	suite.Require().NotNil(transaction.Category)
	assert.Equal(suite.T(), "Groceries", transaction.Category.Name)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	user := suite.registerTestUser("create-invalid@example.com")
	income := suite.createTestCategory(user.AccessToken, v1.CategoryEditable{Name: "Salary", Type: models.TypeIncome})

	tests := []struct {
		name string
		body any
	}{
		{"Empty body", ""},
		{"Invalid JSON", `{"amount": `},
		{"Amount out of bounds", v1.TransactionEditable{Amount: decimal.NewFromInt(-1), Type: models.TypeExpense}},
		{"Invalid type", map[string]any{"amount": 10, "type": "TRANSFER"}},
		{"Category type mismatch", v1.TransactionEditable{Amount: decimal.NewFromInt(10), Type: models.TypeExpense, CategoryID: &income.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body, test.BearerHeaders(user.AccessToken))
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	user := suite.registerTestUser("list@example.com")

	for i := 0; i < 3; i++ {
		suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
			Date:   time.Date(2024, 3, 10+i, 12, 0, 0, 0, time.UTC),
			Amount: decimal.NewFromInt(int64(10 + i)),
			Type:   models.TypeExpense,
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?limit=2", "", test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), int64(3), response.Meta.Total)
	assert.Equal(suite.T(), 1, response.Meta.Page)
	assert.Equal(suite.T(), 2, response.Meta.Limit)
	assert.Equal(suite.T(), 2, response.Meta.TotalPages)

	// Most recent first
	assert.True(suite.T(), response.Data[0].Amount.Equal(decimal.NewFromInt(12)))
}

func (suite *TestSuiteStandard) TestTransactionsListFilters() {
	user := suite.registerTestUser("list-filters@example.com")
	category := suite.createTestCategory(user.AccessToken, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Date:        time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Amount:      decimal.NewFromInt(50),
		Type:        models.TypeExpense,
		Description: "Supermarket",
		CategoryID:  &category.ID,
	})
	suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Date:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Amount: decimal.NewFromInt(1000),
		Type:   models.TypeIncome,
	})

	tests := []struct {
		name          string
		query         string
		expectedCount int
	}{
		{"By type", "?type=EXPENSE", 1},
		{"By category", fmt.Sprintf("?categoryId=%s", category.ID), 1},
		{"By date range", "?startDate=2024-02-01T00:00:00Z", 1},
		{"By search", "?search=super", 1},
		{"Invalid type", "?type=TRANSFER", -1},
		{"Invalid category ID", "?categoryId=not-a-uuid", -1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, "http://example.com/v1/transactions"+tt.query, "", test.BearerHeaders(user.AccessToken))

			if tt.expectedCount < 0 {
				test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
				return
			}

			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.expectedCount)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	user := suite.registerTestUser("get@example.com")
	other := suite.registerTestUser("get-other@example.com")

	transaction := suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Amount: decimal.NewFromFloat(17.23),
		Type:   models.TypeExpense,
	})

	tests := []struct {
		name   string
		token  string
		id     string
		status int
	}{
		{"Own transaction", user.AccessToken, transaction.ID.String(), http.StatusOK},
		{"Other user's transaction", other.AccessToken, transaction.ID.String(), http.StatusNotFound},
		{"Missing transaction", user.AccessToken, uuid.NewString(), http.StatusNotFound},
		{"Invalid UUID", user.AccessToken, "not-a-uuid", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "", test.BearerHeaders(tt.token))
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestTransactionsIndistinguishable404 verifies that the response for a
// foreign transaction is identical to the one for a missing ID.
func (suite *TestSuiteStandard) TestTransactionsIndistinguishable404() {
	user := suite.registerTestUser("indistinct@example.com")
	other := suite.registerTestUser("indistinct-other@example.com")

	transaction := suite.createTestTransaction(other.AccessToken, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	foreign := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "", test.BearerHeaders(user.AccessToken))
	missing := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "", test.BearerHeaders(user.AccessToken))

	test.AssertHTTPStatus(suite.T(), &foreign, http.StatusNotFound)
	test.AssertHTTPStatus(suite.T(), &missing, http.StatusNotFound)
	assert.Equal(suite.T(), missing.Body.String(), foreign.Body.String())
}

func (suite *TestSuiteStandard) TestTransactionsUpdate() {
	user := suite.registerTestUser("update@example.com")

	transaction := suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Amount:      decimal.NewFromInt(20),
		Type:        models.TypeExpense,
		Description: "Before",
	})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "After",
	}, test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &r, &updated)

	assert.Equal(suite.T(), "After", updated.Description)
	assert.True(suite.T(), updated.Amount.Equal(decimal.NewFromInt(20)), "the amount is not changed by a partial update")
}

// TestTransactionsUpdateClearCategory verifies that sending an explicit
// null clears the category while omitting the field keeps it.
func (suite *TestSuiteStandard) TestTransactionsUpdateClearCategory() {
	user := suite.registerTestUser("clear@example.com")
	category := suite.createTestCategory(user.AccessToken, v1.CategoryEditable{Name: "Groceries", Type: models.TypeExpense})

	transaction := suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Amount:     decimal.NewFromInt(20),
		Type:       models.TypeExpense,
		CategoryID: &category.ID,
	})

	// Omitting categoryId keeps it
	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "Still categorized",
	}, test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated models.Transaction
	test.DecodeResponse(suite.T(), &r, &updated)
	suite.Require().NotNil(updated.CategoryID)

	// An explicit null clears it
	r = test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), map[string]any{
		"categoryId": nil,
	}, test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Nil(suite.T(), updated.CategoryID)
}

func (suite *TestSuiteStandard) TestTransactionsUpdateOtherUser() {
	user := suite.registerTestUser("update-guard@example.com")
	other := suite.registerTestUser("update-guard-other@example.com")

	transaction := suite.createTestTransaction(other.AccessToken, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "Hijacked",
	}, test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	user := suite.registerTestUser("delete@example.com")
	other := suite.registerTestUser("delete-other@example.com")

	transaction := suite.createTestTransaction(user.AccessToken, v1.TransactionEditable{
		Amount: decimal.NewFromInt(10),
		Type:   models.TypeExpense,
	})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "", test.BearerHeaders(other.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "", test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.ID), "", test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}
