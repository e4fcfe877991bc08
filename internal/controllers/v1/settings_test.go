package v1_test

import (
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSettingsGetDefaults() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/settings", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Equal("USD", response.Data.Currency)
	suite.Assert().Equal("light", response.Data.Theme)
	suite.Assert().True(response.Data.Notifications)
	suite.Assert().True(response.Data.BudgetAlerts)
}

func (suite *TestSuiteStandard) TestSettingsUpdate() {
	r := test.Request(suite.T(), suite.router, "PATCH", "/v1/settings", map[string]any{
		"currency": "EUR",
		"budgetLimits": map[string]any{
			"monthly":       2000,
			"category_food": 400,
		},
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("EUR", response.Data.Currency)
	suite.Assert().Equal("light", response.Data.Theme, "unset fields must not change")
	suite.Assert().True(response.Data.BudgetLimits["monthly"].Equal(decimal.NewFromInt(2000)))

	// Later updates without budgetLimits leave the limits untouched
	r = test.Request(suite.T(), suite.router, "PATCH", "/v1/settings", map[string]any{
		"theme": "dark",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("dark", response.Data.Theme)
	suite.Assert().True(response.Data.BudgetLimits["category_food"].Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestSettingsUpdateEmptyBody() {
	r := test.Request(suite.T(), suite.router, "PATCH", "/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
