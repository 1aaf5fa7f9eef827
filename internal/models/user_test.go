package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestUserEmailNormalized() {
	user := models.User{
		Name:     "  Jane  ",
		Email:    "  Jane@Example.COM ",
		Password: "hash",
	}

	err := models.DB.Create(&user).Error
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "Jane", user.Name)
	assert.Equal(suite.T(), "jane@example.com", user.Email)
}

func (suite *TestSuiteStandard) TestUserEmailUnique() {
	user := models.User{Name: "Jane", Email: "jane@example.com", Password: "hash"}
	err := models.DB.Create(&user).Error
	suite.Require().NoError(err)

	// Normalization makes this a duplicate
	duplicate := models.User{Name: "Impostor", Email: "JANE@example.com", Password: "hash"}
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrEmailNotUnique)
}

func (suite *TestSuiteStandard) TestUserNotFoundError() {
	var user models.User
	err := models.DB.First(&user, "email = ?", "nobody@example.com").Error
	suite.Require().NotNil(err)

	assert.Equal(suite.T(), "there is no user matching your query", err.Error())
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)
}
