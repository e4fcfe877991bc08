package v1_test

import (
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestMonthsGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeIncome, Amount: decimal.NewFromInt(3000), Description: "Salary", CategoryID: "salary", Date: types.NewDate(2024, 3, 1),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(1200), Description: "Rent", CategoryID: "bills", Date: types.NewDate(2024, 3, 2),
	})

	r := test.Request(suite.T(), suite.router, "GET", "/v1/months?year=2024", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.MonthListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 12, "all twelve months must be present")
	suite.Assert().True(response.Data[3].Income.Equal(decimal.NewFromInt(3000)))
	suite.Assert().True(response.Data[3].Expense.Equal(decimal.NewFromInt(1200)))
	suite.Assert().True(response.Data[3].Savings.Equal(decimal.NewFromInt(1800)))
	suite.Assert().True(response.Data[4].Income.IsZero())
}

func (suite *TestSuiteStandard) TestMonthsGetInvalidYear() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/months?year=twenty-four", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestTotalsGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(50), Description: "Groceries", CategoryID: "food", Date: types.NewDate(2024, 3, 5),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(30), Description: "Fuel", CategoryID: "transport", Date: types.NewDate(2024, 4, 1),
	})

	r := test.Request(suite.T(), suite.router, "GET", "/v1/totals?type=expense", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TotalResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(80)))

	r = test.Request(suite.T(), suite.router, "GET", "/v1/totals?type=expense&from=2024-03-01&until=2024-03-31", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.Total.Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestTotalsGetMissingType() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/totals", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestBreakdownGet() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(50), Description: "Groceries", CategoryID: "food", Date: types.NewDate(2024, 3, 5),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(25), Description: "More groceries", CategoryID: "food", Date: types.NewDate(2024, 3, 7),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(30), Description: "Mystery", CategoryID: "gone", Date: types.NewDate(2024, 3, 9),
	})

	r := test.Request(suite.T(), suite.router, "GET", "/v1/breakdown?type=expense", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.BreakdownResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().Len(response.Data, 1, "categories without transactions and dangling categories are not part of the breakdown")
	suite.Assert().Equal("food", response.Data[0].ID)
	suite.Assert().True(response.Data[0].Amount.Equal(decimal.NewFromInt(75)))
	suite.Assert().Equal(2, response.Data[0].Count)
}

func (suite *TestSuiteStandard) TestBreakdownGetMissingType() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/breakdown", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}
