package models_test

import (
	"github.com/centavo-app/backend/internal/models"
)

func (suite *TestSuiteStandard) TestCreateUserHashesPassword() {
	user := suite.createTestUser("ana@example.com")

	suite.Assert().NotEqual("sikret", user.Password, "password must not be stored in cleartext")
	suite.Assert().True(user.CheckPassword("sikret"))
	suite.Assert().False(user.CheckPassword("not the password"))
}

func (suite *TestSuiteStandard) TestCreateUserDuplicateEmail() {
	_ = suite.createTestUser("ana@example.com")

	_, err := models.CreateUser(suite.db, "ana@example.com", "other")
	suite.Assert().ErrorIs(err, models.ErrEmailTaken)
}

func (suite *TestSuiteStandard) TestUserByLogin() {
	user := suite.createTestUser("ana@example.com")

	found, err := models.UserByLogin(suite.db, "ana@example.com", "sikret")
	suite.Require().NoError(err)
	suite.Assert().Equal(user.ID, found.ID)
}

func (suite *TestSuiteStandard) TestUserByLoginFailsUniformly() {
	_ = suite.createTestUser("ana@example.com")

	// Wrong password and unknown email fail with the same error
	_, err := models.UserByLogin(suite.db, "ana@example.com", "wrong")
	suite.Assert().ErrorIs(err, models.ErrLoginFailed)

	_, err = models.UserByLogin(suite.db, "nobody@example.com", "sikret")
	suite.Assert().ErrorIs(err, models.ErrLoginFailed)
}
