package models_test

import (
	"github.com/fintrack/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func (suite *TestSuiteStandard) createTestUser(email string) models.User {
	user := models.User{Name: "Test User", Email: email, Password: "hash"}

	err := models.DB.Create(&user).Error
	suite.Require().NoError(err)

	return user
}

func (suite *TestSuiteStandard) TestCategoryTypeValidated() {
	user := suite.createTestUser("category@example.com")

	category := models.Category{Name: "Invalid", Type: "TRANSFER", UserID: user.ID}
	err := models.DB.Create(&category).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)
}

// TestCategoryColumnUpdateRunsHooks verifies that a bare column update
// still runs the BeforeSave validation on the destination model. Writes
// that must bypass it need an explicit SkipHooks session.
func (suite *TestSuiteStandard) TestCategoryColumnUpdateRunsHooks() {
	user := suite.createTestUser("column-update@example.com")

	category := models.Category{Name: "Groceries", Type: models.TypeExpense, UserID: user.ID}
	err := models.DB.Create(&category).Error
	suite.Require().NoError(err)

	err = models.DB.Model(&models.Category{}).
		Where("id = ?", category.ID).
		Update("type", models.TypeIncome).Error
	assert.ErrorIs(suite.T(), err, models.ErrTransactionTypeInvalid)

	err = models.DB.Session(&gorm.Session{SkipHooks: true}).
		Model(&models.Category{}).
		Where("id = ?", category.ID).
		Update("type", models.TypeIncome).Error
	assert.NoError(suite.T(), err)
}

func (suite *TestSuiteStandard) TestCategoryNameTrimmed() {
	user := suite.createTestUser("trim@example.com")

	category := models.Category{Name: "  Groceries ", Type: models.TypeExpense, UserID: user.ID}
	err := models.DB.Create(&category).Error
	suite.Require().NoError(err)

	assert.Equal(suite.T(), "Groceries", category.Name)
}

// TestCategoryNameUnique verifies the per-user, per-type uniqueness of
// category names.
func (suite *TestSuiteStandard) TestCategoryNameUnique() {
	user := suite.createTestUser("unique@example.com")
	other := suite.createTestUser("unique-other@example.com")

	category := models.Category{Name: "Groceries", Type: models.TypeExpense, UserID: user.ID}
	err := models.DB.Create(&category).Error
	suite.Require().NoError(err)

	duplicate := models.Category{Name: "Groceries", Type: models.TypeExpense, UserID: user.ID}
	err = models.DB.Create(&duplicate).Error
	assert.ErrorIs(suite.T(), err, models.ErrCategoryNameNotUnique)

	// The same name is fine for another type
	incomeCategory := models.Category{Name: "Groceries", Type: models.TypeIncome, UserID: user.ID}
	err = models.DB.Create(&incomeCategory).Error
	assert.NoError(suite.T(), err)

	// And for another user
	otherCategory := models.Category{Name: "Groceries", Type: models.TypeExpense, UserID: other.ID}
	err = models.DB.Create(&otherCategory).Error
	assert.NoError(suite.T(), err)
}
