package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/pocketledger/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) defaultTransactionCreate() v1.TransactionEditable {
	return v1.TransactionEditable{
		Type:        ledger.TypeExpense,
		Amount:      decimal.NewFromFloat(17.23),
		Description: "Groceries",
		CategoryID:  "food",
		Date:        types.NewDate(2024, 3, 5),
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	transaction := suite.createTestTransaction(suite.defaultTransactionCreate())

	suite.Assert().NotEmpty(transaction.ID)
	suite.Assert().Equal("Groceries", transaction.Description)
	suite.Assert().True(transaction.Amount.Equal(decimal.NewFromFloat(17.23)))
	suite.Assert().False(transaction.CreatedAt.IsZero())
	suite.Assert().Equal(transaction.CreatedAt, transaction.UpdatedAt)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	tests := []struct {
		name   string
		modify func(*v1.TransactionEditable)
	}{
		{"invalid type", func(e *v1.TransactionEditable) { e.Type = "transfer" }},
		{"zero amount", func(e *v1.TransactionEditable) { e.Amount = decimal.Zero }},
		{"negative amount", func(e *v1.TransactionEditable) { e.Amount = decimal.NewFromInt(-5) }},
		{"empty description", func(e *v1.TransactionEditable) { e.Description = "" }},
		{"empty category", func(e *v1.TransactionEditable) { e.CategoryID = "" }},
		{"zero date", func(e *v1.TransactionEditable) { e.Date = types.Date{} }},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			editable := suite.defaultTransactionCreate()
			tt.modify(&editable)

			r := test.Request(suite.T(), suite.router, "POST", "/v1/transactions", editable)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreateEmptyBody() {
	r := test.Request(suite.T(), suite.router, "POST", "/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestTransactionsGetEmpty() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Empty(response.Data)
	suite.Assert().NotNil(response.Data, "data must be [], not null")
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(10), Description: "Lunch", CategoryID: "food", Date: types.NewDate(2024, 3, 5),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeExpense, Amount: decimal.NewFromInt(20), Description: "Bus", CategoryID: "transport", Date: types.NewDate(2024, 3, 10),
	})
	_ = suite.createTestTransaction(v1.TransactionEditable{
		Type: ledger.TypeIncome, Amount: decimal.NewFromInt(3000), Description: "Salary", CategoryID: "salary", Date: types.NewDate(2024, 4, 1),
	})

	tests := []struct {
		query string
		count int
	}{
		{"", 3},
		{"type=expense", 2},
		{"type=income", 1},
		{"category=food", 1},
		{"from=2024-03-06", 2},
		{"until=2024-03-10", 2},
		{"from=2024-03-05&until=2024-03-05", 1},
		{"type=expense&from=2024-03-06", 1},
		{"category=nonexistent", 0},
	}

	for _, tt := range tests {
		suite.Run(tt.query, func() {
			r := test.Request(suite.T(), suite.router, "GET", "/v1/transactions?"+tt.query, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

			var response v1.TransactionListResponse
			test.DecodeResponse(suite.T(), &r, &response)
			suite.Assert().Len(response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidFilter() {
	tests := []string{
		"type=transfer",
		"from=03/05/2024",
		"until=yesterday",
	}

	for _, query := range tests {
		suite.Run(query, func() {
			r := test.Request(suite.T(), suite.router, "GET", "/v1/transactions?"+query, nil)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionGet() {
	transaction := suite.createTestTransaction(suite.defaultTransactionCreate())

	r := test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionGetNotFound() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/transactions/does-not-exist", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	transaction := suite.createTestTransaction(suite.defaultTransactionCreate())

	r := test.Request(suite.T(), suite.router, "PATCH", fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"description": "Dinner",
		"amount":      23.42,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("Dinner", response.Data.Description)
	suite.Assert().True(response.Data.Amount.Equal(decimal.NewFromFloat(23.42)))
	suite.Assert().Equal(transaction.CategoryID, response.Data.CategoryID, "unset fields must not change")
}

func (suite *TestSuiteStandard) TestTransactionUpdateInvalid() {
	transaction := suite.createTestTransaction(suite.defaultTransactionCreate())

	r := test.Request(suite.T(), suite.router, "PATCH", fmt.Sprintf("/v1/transactions/%s", transaction.ID), map[string]any{
		"amount": -1,
	})
	test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
}

func (suite *TestSuiteStandard) TestTransactionUpdateNotFound() {
	r := test.Request(suite.T(), suite.router, "PATCH", "/v1/transactions/does-not-exist", map[string]any{
		"description": "Dinner",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	transaction := suite.createTestTransaction(suite.defaultTransactionCreate())

	r := test.Request(suite.T(), suite.router, "DELETE", fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNoContent, &r)

	r = test.Request(suite.T(), suite.router, "GET", fmt.Sprintf("/v1/transactions/%s", transaction.ID), nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionDeleteNotFound() {
	r := test.Request(suite.T(), suite.router, "DELETE", "/v1/transactions/does-not-exist", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusNotFound, &r)
}

func (suite *TestSuiteStandard) TestTransactionsStorageError() {
	suite.CloseKV()

	r := test.Request(suite.T(), suite.router, "GET", "/v1/transactions", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
