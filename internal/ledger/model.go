// Package ledger implements the record store and query engine for the
// pocketledger backend. It owns the four persisted collections
// (transactions, categories, goals, settings) and computes all derived
// aggregates on demand.
package ledger

import (
	"time"

	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

func init() {
	// Export documents and API responses keep amounts as JSON numbers so
	// they stay interchangeable with existing exports.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType classifies a transaction as money in or money out.
type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

// Valid reports whether the type is one of the two known values.
func (t TransactionType) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

// Transaction is a single recorded income or expense event.
type Transaction struct {
	ID          string          `json:"id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	CategoryID  string          `json:"categoryId"`
	Date        types.Date      `json:"date"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// TransactionUpdate is a partial update for a transaction. Nil fields are
// left unchanged.
type TransactionUpdate struct {
	Type        *TransactionType `json:"type,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Description *string          `json:"description,omitempty"`
	CategoryID  *string          `json:"categoryId,omitempty"`
	Date        *types.Date      `json:"date,omitempty"`
}

// Category is a classification bucket for transactions. Color and icon are
// display hints for the UI.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// Categories holds the two independent ordered category lists. They are
// persisted as one record.
type Categories struct {
	Income  []Category `json:"income"`
	Expense []Category `json:"expense"`
}

// ForType returns the category list for the given transaction type.
func (c Categories) ForType(t TransactionType) []Category {
	if t == TypeIncome {
		return c.Income
	}
	return c.Expense
}

// GoalStatus describes where a goal stands relative to current savings and
// its target date.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalOverdue   GoalStatus = "overdue"
	GoalUrgent    GoalStatus = "urgent"
)

// Goal is a savings target. Progress is not stored; it is derived from
// all-time income minus all-time expense.
type Goal struct {
	ID           string          `json:"id"`
	Title        string          `json:"title"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	TargetDate   types.Date      `json:"targetDate"`
	Description  string          `json:"description,omitempty"`
	Status       GoalStatus      `json:"status"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// GoalUpdate is a partial update for a goal. Nil fields are left unchanged.
type GoalUpdate struct {
	Title        *string          `json:"title,omitempty"`
	TargetAmount *decimal.Decimal `json:"targetAmount,omitempty"`
	TargetDate   *types.Date      `json:"targetDate,omitempty"`
	Description  *string          `json:"description,omitempty"`
	Status       *GoalStatus      `json:"status,omitempty"`
}

// Budget limit keys are "monthly" for the overall monthly limit and
// "category_<categoryID>" for per-category limits.
const BudgetLimitMonthly = "monthly"

// BudgetLimitCategory returns the budget limit key for a category.
func BudgetLimitCategory(categoryID string) string {
	return "category_" + categoryID
}

// Settings is the single user preferences record.
type Settings struct {
	Currency      string                     `json:"currency"`
	Theme         string                     `json:"theme"`
	Notifications bool                       `json:"notifications"`
	BudgetAlerts  bool                       `json:"budgetAlerts"`
	BudgetLimits  map[string]decimal.Decimal `json:"budgetLimits,omitempty"`
}

// SettingsUpdate is a partial update for the settings record. The update is
// a shallow merge: BudgetLimits, when set, replaces the whole map.
type SettingsUpdate struct {
	Currency      *string                    `json:"currency,omitempty"`
	Theme         *string                    `json:"theme,omitempty"`
	Notifications *bool                      `json:"notifications,omitempty"`
	BudgetAlerts  *bool                      `json:"budgetAlerts,omitempty"`
	BudgetLimits  map[string]decimal.Decimal `json:"budgetLimits,omitempty"`
}

// DefaultSettings returns the built-in settings. They are not persisted
// until the first update.
func DefaultSettings() Settings {
	return Settings{
		Currency:      "USD",
		Theme:         "light",
		Notifications: true,
		BudgetAlerts:  true,
	}
}

// defaultCategories returns the seed category set. Once persisted, the
// stored lists are canonical; changing these defaults does not affect
// existing data.
func defaultCategories() Categories {
	return Categories{
		Expense: []Category{
			{ID: "food", Name: "Food & Dining", Color: "#FF6B6B", Icon: "🍽️"},
			{ID: "transport", Name: "Transportation", Color: "#4ECDC4", Icon: "🚗"},
			{ID: "shopping", Name: "Shopping", Color: "#45B7D1", Icon: "🛍️"},
			{ID: "entertainment", Name: "Entertainment", Color: "#96CEB4", Icon: "🎬"},
			{ID: "bills", Name: "Bills & Utilities", Color: "#FFEAA7", Icon: "💡"},
			{ID: "healthcare", Name: "Healthcare", Color: "#DDA0DD", Icon: "🏥"},
			{ID: "education", Name: "Education", Color: "#98D8C8", Icon: "📚"},
			{ID: "other", Name: "Other", Color: "#F7DC6F", Icon: "📦"},
		},
		Income: []Category{
			{ID: "salary", Name: "Salary", Color: "#2ECC71", Icon: "💼"},
			{ID: "freelance", Name: "Freelance", Color: "#3498DB", Icon: "💻"},
			{ID: "investment", Name: "Investment", Color: "#9B59B6", Icon: "📈"},
			{ID: "gift", Name: "Gift", Color: "#E74C3C", Icon: "🎁"},
			{ID: "other_income", Name: "Other Income", Color: "#F39C12", Icon: "💰"},
		},
	}
}
