package ledger_test

import (
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestWorkedExample() {
	suite.createTestTransaction(ledger.Transaction{
		Type:        ledger.TypeExpense,
		Amount:      decimal.NewFromInt(50),
		CategoryID:  "food",
		Date:        types.NewDate(2024, 3, 5),
		Description: "Lunch",
	})

	total, err := suite.store.GetTotalsByType(ledger.TypeExpense, nil)
	suite.Require().Nil(err)
	suite.Assert().True(total.Equal(decimal.NewFromInt(50)))

	monthly, err := suite.store.GetMonthlyData(2024)
	suite.Require().Nil(err)
	suite.Assert().True(monthly[3].Expense.Equal(decimal.NewFromInt(50)))

	breakdown, err := suite.store.GetCategoryBreakdown(ledger.TypeExpense, nil)
	suite.Require().Nil(err)
	suite.Require().Len(breakdown, 1)
	suite.Assert().Equal("food", breakdown[0].ID)
	suite.Assert().True(breakdown[0].Amount.Equal(decimal.NewFromInt(50)))
	suite.Assert().Equal(1, breakdown[0].Count)
}

func (suite *TestSuiteStandard) TestGetTransactionsByDateRangeInclusiveBounds() {
	for _, day := range []int{1, 15, 31} {
		suite.createTestTransaction(ledger.Transaction{Date: types.NewDate(2024, 3, day)})
	}
	suite.createTestTransaction(ledger.Transaction{Date: types.NewDate(2024, 2, 29)})
	suite.createTestTransaction(ledger.Transaction{Date: types.NewDate(2024, 4, 1)})

	matching, err := suite.store.GetTransactionsByDateRange(types.NewDate(2024, 3, 1), types.NewDate(2024, 3, 31))

	suite.Require().Nil(err)
	suite.Assert().Len(matching, 3, "both boundary dates are included")
}

func (suite *TestSuiteStandard) TestGetTransactionsByCategory() {
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food"})
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food"})
	suite.createTestTransaction(ledger.Transaction{CategoryID: "transport"})

	matching, err := suite.store.GetTransactionsByCategory("food")

	suite.Require().Nil(err)
	suite.Assert().Len(matching, 2)
}

func (suite *TestSuiteStandard) TestGetTotalsByType() {
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeIncome, Amount: decimal.NewFromInt(3000), Date: types.NewDate(2024, 1, 15)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(100), Date: types.NewDate(2024, 1, 20)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromFloat(49.5), Date: types.NewDate(2024, 2, 1)})

	total, err := suite.store.GetTotalsByType(ledger.TypeExpense, nil)
	suite.Require().Nil(err)
	suite.Assert().True(total.Equal(decimal.NewFromFloat(149.5)))

	january := &ledger.DateRange{Start: types.NewDate(2024, 1, 1), End: types.NewDate(2024, 1, 31)}
	total, err = suite.store.GetTotalsByType(ledger.TypeExpense, january)
	suite.Require().Nil(err)
	suite.Assert().True(total.Equal(decimal.NewFromInt(100)))
}

func (suite *TestSuiteStandard) TestGetTotalsByTypeEmpty() {
	total, err := suite.store.GetTotalsByType(ledger.TypeIncome, nil)

	suite.Assert().Nil(err)
	suite.Assert().True(total.IsZero(), "an empty match set sums to zero, not an error")
}

func (suite *TestSuiteStandard) TestGetMonthlyDataAlwaysTwelveMonths() {
	monthly, err := suite.store.GetMonthlyData(2024)

	suite.Require().Nil(err)
	suite.Require().Len(monthly, 12)
	for month := 1; month <= 12; month++ {
		amounts, ok := monthly[month]
		suite.Require().True(ok, "month %d must be present", month)
		suite.Assert().True(amounts.Income.IsZero())
		suite.Assert().True(amounts.Expense.IsZero())
		suite.Assert().True(amounts.Savings.IsZero())
	}
}

func (suite *TestSuiteStandard) TestGetMonthlyData() {
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeIncome, Amount: decimal.NewFromInt(3000), Date: types.NewDate(2024, 3, 1)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(1200), Date: types.NewDate(2024, 3, 10)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(500), Date: types.NewDate(2024, 7, 4)})

	// A transaction in another year must not show up
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(999), Date: types.NewDate(2023, 3, 10)})

	monthly, err := suite.store.GetMonthlyData(2024)
	suite.Require().Nil(err)

	suite.Assert().True(monthly[3].Income.Equal(decimal.NewFromInt(3000)))
	suite.Assert().True(monthly[3].Expense.Equal(decimal.NewFromInt(1200)))
	suite.Assert().True(monthly[3].Savings.Equal(decimal.NewFromInt(1800)))
	suite.Assert().True(monthly[7].Savings.Equal(decimal.NewFromInt(-500)))
	suite.Assert().True(monthly[1].Income.IsZero())
}

// The sum of monthly savings over a year equals income minus expense when
// all transactions fall in that year.
func (suite *TestSuiteStandard) TestMonthlySavingsReconcileWithTotals() {
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeIncome, Amount: decimal.NewFromInt(2500), Date: types.NewDate(2024, 1, 31)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeIncome, Amount: decimal.NewFromFloat(100.25), Date: types.NewDate(2024, 6, 15)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromFloat(799.99), Date: types.NewDate(2024, 6, 20)})
	suite.createTestTransaction(ledger.Transaction{Type: ledger.TypeExpense, Amount: decimal.NewFromInt(42), Date: types.NewDate(2024, 12, 31)})

	income, err := suite.store.GetTotalsByType(ledger.TypeIncome, nil)
	suite.Require().Nil(err)
	expense, err := suite.store.GetTotalsByType(ledger.TypeExpense, nil)
	suite.Require().Nil(err)

	monthly, err := suite.store.GetMonthlyData(2024)
	suite.Require().Nil(err)

	savingsSum := decimal.Zero
	for _, amounts := range monthly {
		savingsSum = savingsSum.Add(amounts.Savings)
	}

	suite.Assert().True(savingsSum.Equal(income.Sub(expense)))
}

func (suite *TestSuiteStandard) TestGetCategoryBreakdown() {
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food", Amount: decimal.NewFromInt(30), Date: types.NewDate(2024, 3, 5)})
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food", Amount: decimal.NewFromInt(20), Date: types.NewDate(2024, 3, 6)})
	suite.createTestTransaction(ledger.Transaction{CategoryID: "bills", Amount: decimal.NewFromInt(80), Date: types.NewDate(2024, 3, 7)})

	breakdown, err := suite.store.GetCategoryBreakdown(ledger.TypeExpense, nil)
	suite.Require().Nil(err)
	suite.Require().Len(breakdown, 2)

	// Entries come in category-definition order: food before bills
	suite.Assert().Equal("food", breakdown[0].ID)
	suite.Assert().True(breakdown[0].Amount.Equal(decimal.NewFromInt(50)))
	suite.Assert().Equal(2, breakdown[0].Count)
	suite.Assert().Equal("bills", breakdown[1].ID)
	suite.Assert().Equal(1, breakdown[1].Count)

	for _, entry := range breakdown {
		suite.Assert().True(entry.Amount.IsPositive(), "zero-amount categories are never included")
	}
}

// Transactions referencing an unknown category count in totals but are
// excluded from the breakdown.
func (suite *TestSuiteStandard) TestCategoryBreakdownDanglingCategory() {
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food", Amount: decimal.NewFromInt(50)})
	suite.createTestTransaction(ledger.Transaction{CategoryID: "deleted-category", Amount: decimal.NewFromInt(25)})

	total, err := suite.store.GetTotalsByType(ledger.TypeExpense, nil)
	suite.Require().Nil(err)
	suite.Assert().True(total.Equal(decimal.NewFromInt(75)))

	breakdown, err := suite.store.GetCategoryBreakdown(ledger.TypeExpense, nil)
	suite.Require().Nil(err)
	suite.Require().Len(breakdown, 1)

	breakdownSum := decimal.Zero
	for _, entry := range breakdown {
		breakdownSum = breakdownSum.Add(entry.Amount)
	}
	suite.Assert().True(breakdownSum.Equal(decimal.NewFromInt(50)), "breakdown sum is the total minus dangling amounts")
}

func (suite *TestSuiteStandard) TestGetCategoryBreakdownDateRange() {
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food", Amount: decimal.NewFromInt(10), Date: types.NewDate(2024, 3, 5)})
	suite.createTestTransaction(ledger.Transaction{CategoryID: "food", Amount: decimal.NewFromInt(99), Date: types.NewDate(2024, 4, 5)})

	march := &ledger.DateRange{Start: types.NewDate(2024, 3, 1), End: types.NewDate(2024, 3, 31)}
	breakdown, err := suite.store.GetCategoryBreakdown(ledger.TypeExpense, march)

	suite.Require().Nil(err)
	suite.Require().Len(breakdown, 1)
	suite.Assert().True(breakdown[0].Amount.Equal(decimal.NewFromInt(10)))
	suite.Assert().Equal(1, breakdown[0].Count)
}
