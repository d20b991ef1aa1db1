package controllers_test

import (
	"fmt"
	"net/http"

	"github.com/centavo-app/backend/internal/controllers"
	"github.com/centavo-app/backend/internal/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestExpense(token string, profileID uint, date string, value string) controllers.ExpenseResponse {
	url := fmt.Sprintf("/api/expenses/%d", profileID)
	body := fmt.Sprintf(`{"value": %s, "date": %q, "category": "Alimentação"}`, value, date)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, url, body, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return response
}

func (suite *TestSuiteStandard) TestExpenseCRUD() {
	token := suite.registerTestUser("ana@example.com")
	profile := suite.createTestProfile(token, "Casa")

	expense := suite.createTestExpense(token, profile.Data.ID, "2024-01-15", "129.90")
	suite.Assert().True(expense.Data.Value.Equal(decimal.NewFromFloat(129.90)))

	// Update with the expense ID in the path
	url := fmt.Sprintf("/api/expenses/%d", expense.Data.ID)
	body := `{"value": 95.5, "date": "2024-01-16", "description": "Feira", "category": "Alimentação", "recurring": true}`
	recorder := test.Request(suite.T(), suite.router, http.MethodPut, url, body, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var updated controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &updated)
	suite.Assert().Equal("2024-01-16", updated.Data.Date)
	suite.Assert().Equal("Feira", updated.Data.Description)
	suite.Assert().True(updated.Data.Recurring)

	// List with the profile ID in the path
	url = fmt.Sprintf("/api/expenses/%d", profile.Data.ID)
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var list controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &list)
	suite.Require().Len(list.Data, 1)

	// Delete with the expense ID in the path, twice: the second delete
	// is a no-op that still succeeds
	url = fmt.Sprintf("/api/expenses/%d", expense.Data.ID)
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, url, "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &recorder)
}

func (suite *TestSuiteStandard) TestExpenseOwnershipIsolation() {
	ana := suite.registerTestUser("ana@example.com")
	bruno := suite.registerTestUser("bruno@example.com")
	profile := suite.createTestProfile(ana, "Casa")
	expense := suite.createTestExpense(ana, profile.Data.ID, "2024-01-15", "10")

	url := fmt.Sprintf("/api/expenses/%d", profile.Data.ID)
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, url, "", test.BearerHeader(bruno))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)

	url = fmt.Sprintf("/api/expenses/%d", expense.Data.ID)
	recorder = test.Request(suite.T(), suite.router, http.MethodPut, url, `{"value": 1, "date": "2024-01-01", "category": "x"}`, test.BearerHeader(bruno))
	test.AssertHTTPStatus(suite.T(), http.StatusForbidden, &recorder)
}

func (suite *TestSuiteStandard) TestTransactionsByNameWithMonthFilter() {
	token := suite.registerTestUser("ana@example.com")
	profile := suite.createTestProfile(token, "Casa")

	_ = suite.createTestExpense(token, profile.Data.ID, "2024-01-15", "10")
	_ = suite.createTestExpense(token, profile.Data.ID, "2024-02-01", "20")
	_ = suite.createTestExpense(token, profile.Data.ID, "2024-01-31", "30")

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/transactions/Casa?month=2024-01", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 2)
	for _, expense := range response.Data {
		suite.Assert().Contains([]string{"2024-01-15", "2024-01-31"}, expense.Date)
	}
}

func (suite *TestSuiteStandard) TestTransactionsByNameMissingProfile() {
	token := suite.registerTestUser("ana@example.com")

	// Listing is forgiving: an unknown profile name yields an empty list
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/transactions/NoSuchProfile", "", test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.ExpenseListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Empty(response.Data)

	// Creating is not: the profile must exist
	body := `{"value": 10, "date": "2024-01-15", "category": "Alimentação"}`
	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "/api/transactions/NoSuchProfile", body, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &recorder)
}

func (suite *TestSuiteStandard) TestCreateTransactionByName() {
	token := suite.registerTestUser("ana@example.com")
	profile := suite.createTestProfile(token, "Casa")

	body := `{"value": 42.42, "date": "2024-03-02", "description": "Padaria", "category": "Alimentação"}`
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/transactions/Casa", body, test.BearerHeader(token))
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &recorder)

	var response controllers.ExpenseResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(profile.Data.ID, response.Data.ProfileID)
	suite.Assert().True(response.Data.Value.Equal(decimal.NewFromFloat(42.42)))
}
