package ledger

import (
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DateRange is an inclusive calendar date range.
type DateRange struct {
	Start types.Date `json:"start"`
	End   types.Date `json:"end"`
}

// Contains reports whether the date falls inside the range, boundaries
// included.
func (r DateRange) Contains(d types.Date) bool {
	return d.Between(r.Start, r.End)
}

// MonthlyAmounts is one month's aggregate. Savings is income minus expense
// and can be negative.
type MonthlyAmounts struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Savings decimal.Decimal `json:"savings"`
}

// BreakdownEntry is the per-category aggregate of amount and count over a
// transaction set. The category display fields are copied into the entry.
type BreakdownEntry struct {
	Category
	Amount decimal.Decimal `json:"amount"`
	Count  int             `json:"count"`
}

// GetTransactionsByDateRange returns all transactions whose date falls in
// the inclusive range [start, end].
func (s *Store) GetTransactionsByDateRange(start, end types.Date) ([]Transaction, error) {
	transactions, err := s.GetTransactions()
	if err != nil {
		return []Transaction{}, err
	}

	return filterByRange(transactions, DateRange{Start: start, End: end}), nil
}

// GetTransactionsByCategory returns all transactions referencing the given
// category id.
func (s *Store) GetTransactionsByCategory(categoryID string) ([]Transaction, error) {
	transactions, err := s.GetTransactions()
	if err != nil {
		return []Transaction{}, err
	}

	matching := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if transaction.CategoryID == categoryID {
			matching = append(matching, transaction)
		}
	}

	return matching, nil
}

// GetTotalsByType sums the amounts of all transactions of the given type,
// restricted to dateRange when it is non-nil. An empty match set sums to
// zero. Transactions with a dangling category reference are included; the
// category list plays no role here.
func (s *Store) GetTotalsByType(transactionType TransactionType, dateRange *DateRange) (decimal.Decimal, error) {
	transactions, err := s.GetTransactions()
	if err != nil {
		return decimal.Zero, err
	}

	if dateRange != nil {
		transactions = filterByRange(transactions, *dateRange)
	}

	total := decimal.Zero
	for _, transaction := range transactions {
		if transaction.Type == transactionType {
			total = total.Add(transaction.Amount)
		}
	}

	return total, nil
}

// GetMonthlyData returns the full-year time series for the given year. The
// result always has exactly 12 entries keyed 1 through 12; months without
// transactions are present with all-zero amounts. That total coverage is
// what month-over-month comparisons rely on.
func (s *Store) GetMonthlyData(year int) (map[int]MonthlyAmounts, error) {
	transactions, err := s.GetTransactions()

	monthly := make(map[int]MonthlyAmounts, 12)
	for month := 1; month <= 12; month++ {
		monthly[month] = MonthlyAmounts{
			Income:  decimal.Zero,
			Expense: decimal.Zero,
			Savings: decimal.Zero,
		}
	}
	if err != nil {
		return monthly, err
	}

	for _, transaction := range transactions {
		if transaction.Date.Year() != year {
			continue
		}

		month := int(transaction.Date.Month())
		amounts := monthly[month]
		if transaction.Type == TypeIncome {
			amounts.Income = amounts.Income.Add(transaction.Amount)
		} else {
			amounts.Expense = amounts.Expense.Add(transaction.Amount)
		}
		monthly[month] = amounts
	}

	for month, amounts := range monthly {
		amounts.Savings = amounts.Income.Sub(amounts.Expense)
		monthly[month] = amounts
	}

	return monthly, nil
}

// GetCategoryBreakdown aggregates amount and count per known category of
// the given type, restricted to dateRange when it is non-nil. Transactions
// whose categoryId matches no known category are silently dropped from the
// breakdown; they still count in GetTotalsByType. Only entries with a
// positive amount are returned, in category-definition order.
func (s *Store) GetCategoryBreakdown(transactionType TransactionType, dateRange *DateRange) ([]BreakdownEntry, error) {
	s.mu.Lock()

	transactions, err := s.transactions()
	if err != nil {
		s.mu.Unlock()
		return []BreakdownEntry{}, err
	}

	categories, err := s.categories()
	s.mu.Unlock()
	if err != nil {
		return []BreakdownEntry{}, err
	}

	if dateRange != nil {
		transactions = filterByRange(transactions, *dateRange)
	}

	known := categories.ForType(transactionType)
	entries := make([]BreakdownEntry, len(known))
	index := make(map[string]int, len(known))
	for i, category := range known {
		entries[i] = BreakdownEntry{
			Category: category,
			Amount:   decimal.Zero,
		}
		index[category.ID] = i
	}

	for _, transaction := range transactions {
		if transaction.Type != transactionType {
			continue
		}

		i, ok := index[transaction.CategoryID]
		if !ok {
			continue
		}

		entries[i].Amount = entries[i].Amount.Add(transaction.Amount)
		entries[i].Count++
	}

	breakdown := make([]BreakdownEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.Amount.IsPositive() {
			breakdown = append(breakdown, entry)
		}
	}

	return breakdown, nil
}

func filterByRange(transactions []Transaction, dateRange DateRange) []Transaction {
	matching := make([]Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if dateRange.Contains(transaction.Date) {
			matching = append(matching, transaction)
		}
	}

	return matching
}
