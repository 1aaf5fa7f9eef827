package v1_test

import (
	"net/http"
	"strings"

	"github.com/fintrack/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUsersMe() {
	user := suite.registerTestUser("me@example.com")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response map[string]any
	test.DecodeResponse(suite.T(), &r, &response)

	assert.Equal(suite.T(), "me@example.com", response["email"])
	assert.Equal(suite.T(), "Test User", response["name"])
}

// TestUsersMeNeverLeaksPassword verifies that the password hash is
// never part of any user payload.
func (suite *TestSuiteStandard) TestUsersMeNeverLeaksPassword() {
	user := suite.registerTestUser("no-leak@example.com")

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "", test.BearerHeaders(user.AccessToken))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	assert.False(suite.T(), strings.Contains(r.Body.String(), "password"))
}

func (suite *TestSuiteStandard) TestUsersMeUnauthorized() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/users/me", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)
}
