package controllers_test

import (
	"net/http"

	"github.com/centavo-app/backend/internal/controllers"
	"github.com/centavo-app/backend/internal/test"
)

func (suite *TestSuiteStandard) TestRegister() {
	token := suite.registerTestUser("ana@example.com")
	suite.Assert().NotEmpty(token)
}

func (suite *TestSuiteStandard) TestRegisterDuplicateEmail() {
	_ = suite.registerTestUser("ana@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/register", `{"email": "ana@example.com", "password": "other"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
}

func (suite *TestSuiteStandard) TestRegisterMissingFields() {
	tests := []struct {
		name string
		body string
	}{
		{"empty body", ""},
		{"no password", `{"email": "ana@example.com"}`},
		{"no email", `{"password": "sikret"}`},
		{"broken JSON", `{ broken`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/register", tt.body)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestLogin() {
	_ = suite.registerTestUser("ana@example.com")

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/login", `{"email": "ana@example.com", "password": "sikret"}`)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &recorder)

	var response controllers.TokenResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().NotEmpty(response.Token)
}

func (suite *TestSuiteStandard) TestLoginFailsUniformly() {
	_ = suite.registerTestUser("ana@example.com")

	tests := []struct {
		name string
		body string
	}{
		{"wrong password", `{"email": "ana@example.com", "password": "wrong"}`},
		{"unknown email", `{"email": "nobody@example.com", "password": "sikret"}`},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/api/login", tt.body)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &recorder)
		})
	}
}

func (suite *TestSuiteStandard) TestAuthRequired() {
	token := suite.registerTestUser("ana@example.com")

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{"no header", nil},
		{"no bearer prefix", map[string]string{"Authorization": token}},
		{"garbage token", test.BearerHeader("not-a-token")},
		{"wrong signature", test.BearerHeader(token + "tampered")},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/api/profiles", "", tt.headers)
			test.AssertHTTPStatus(suite.T(), http.StatusUnauthorized, &recorder)
		})
	}
}
