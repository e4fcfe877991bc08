package v1_test

import (
	"net/http"

	v1 "github.com/pocketledger/backend/internal/controllers/v1"
	"github.com/pocketledger/backend/test"
)

func (suite *TestSuiteStandard) TestCategoriesGetDefaults() {
	r := test.Request(suite.T(), suite.router, "GET", "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var response v1.CategoriesResponse
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Len(response.Data.Expense, 8)
	suite.Assert().Len(response.Data.Income, 5)
	suite.Assert().Equal("food", response.Data.Expense[0].ID)
	suite.Assert().Equal("salary", response.Data.Income[0].ID)
}

func (suite *TestSuiteStandard) TestCategoryCreate() {
	r := test.Request(suite.T(), suite.router, "POST", "/v1/categories", v1.CategoryCreateRequest{
		Type:  "expense",
		Name:  "Pets",
		Color: "#8b5cf6",
		Icon:  "paw",
	})
	test.AssertHTTPStatus(suite.T(), http.StatusCreated, &r)

	var response v1.CategoryResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().NotEmpty(response.Data.ID)
	suite.Assert().Equal("Pets", response.Data.Name)

	// The new category is part of the expense list
	r = test.Request(suite.T(), suite.router, "GET", "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusOK, &r)

	var categories v1.CategoriesResponse
	test.DecodeResponse(suite.T(), &r, &categories)
	suite.Assert().Len(categories.Data.Expense, 9)
}

func (suite *TestSuiteStandard) TestCategoryCreateInvalid() {
	tests := []struct {
		name    string
		request v1.CategoryCreateRequest
	}{
		{"invalid type", v1.CategoryCreateRequest{Type: "transfer", Name: "Pets"}},
		{"empty name", v1.CategoryCreateRequest{Type: "expense"}},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			r := test.Request(suite.T(), suite.router, "POST", "/v1/categories", tt.request)
			test.AssertHTTPStatus(suite.T(), http.StatusBadRequest, &r)
		})
	}
}

func (suite *TestSuiteStandard) TestCategoriesStorageError() {
	suite.CloseKV()

	r := test.Request(suite.T(), suite.router, "GET", "/v1/categories", nil)
	test.AssertHTTPStatus(suite.T(), http.StatusInternalServerError, &r)
}
