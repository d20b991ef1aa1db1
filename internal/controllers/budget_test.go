package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/centavo-app/backend/internal/controllers"
	"github.com/centavo-app/backend/internal/test"
)

func (suite *TestSuiteStandard) createTestBudget(token string, profileID uint, category string, percent int) controllers.BudgetResponse {
	url := fmt.Sprintf("/api/budgets/%d", profileID)
	body := fmt.Sprintf(`{"category": %q, "percent": %d}`, category, percent)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, url, body, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestBudgetCRUD() {
	token := suite.registerTestUser("ana@example.com")
	profile := suite.createTestProfile(token, "Casa")

	budget := suite.createTestBudget(token, profile.Data.ID, "Moradia", 30)
	suite.Assert().Equal("Moradia", budget.Data.Category)
	suite.Assert().Equal(30, budget.Data.Percent)

	// Update with the budget ID in the path
	url := fmt.Sprintf("/api/budgets/%d", budget.Data.ID)
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, url, `{"category": "Aluguel", "percent": 35}`, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated controllers.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("Aluguel", updated.Data.Category)
	suite.Assert().Equal(35, updated.Data.Percent)

	// List with the profile ID in the path
	url = fmt.Sprintf("/api/budgets/%d", profile.Data.ID)
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)

	// Delete with the budget ID in the path
	url = fmt.Sprintf("/api/budgets/%d", budget.Data.ID)
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetPercentNotValidated() {
	token := suite.registerTestUser("ana@example.com")
	profile := suite.createTestProfile(token, "Casa")

	// Out-of-range percentages are stored as sent, the API never
	// validated them and the web client relies on that
	budget := suite.createTestBudget(token, profile.Data.ID, "Moradia", 250)
	suite.Assert().Equal(250, budget.Data.Percent)
}

func (suite *TestSuiteStandard) TestBudgetDeleteIdempotent() {
	token := suite.registerTestUser("ana@example.com")
	profile := suite.createTestProfile(token, "Casa")
	budget := suite.createTestBudget(token, profile.Data.ID, "Moradia", 30)

	url := fmt.Sprintf("/api/budgets/%d", budget.Data.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestBudgetOwnershipIsolation() {
	ana := suite.registerTestUser("ana@example.com")
	bruno := suite.registerTestUser("bruno@example.com")
	profile := suite.createTestProfile(ana, "Casa")
	budget := suite.createTestBudget(ana, profile.Data.ID, "Moradia", 30)

	profileURL := fmt.Sprintf("/api/budgets/%d", profile.Data.ID)
	budgetURL := fmt.Sprintf("/api/budgets/%d", budget.Data.ID)

	tests := []struct {
		name   string
		method string
		url    string
		body   string
		status int
	}{
		{"list", http.MethodGet, profileURL, "", http.StatusForbidden},
		{"create", http.MethodPost, profileURL, `{"category": "Lazer", "percent": 10}`, http.StatusForbidden},
		{"update", http.MethodPut, budgetURL, `{"category": "Lazer", "percent": 10}`, http.StatusForbidden},
		// Deletes do not reveal whether the resource exists
		{"delete", http.MethodDelete, budgetURL, "", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.router, tt.method, tt.url, tt.body, test.BearerHeader(bruno))
			test.AssertHTTPStatus(suite.T(), tt.status, &recorder)
		})
	}

	// Nothing of Ana's was touched
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, profileURL, "", test.BearerHeader(ana))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.BudgetListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)
	suite.Assert().Equal("Moradia", list.Data[0].Category)
}
