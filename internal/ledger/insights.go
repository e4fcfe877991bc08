package ledger

import (
	"fmt"
	"math"
	"time"

	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// Alert severities, ordered from most to least pressing.
type AlertSeverity string

const (
	SeverityDanger  AlertSeverity = "danger"
	SeverityWarning AlertSeverity = "warning"
	SeverityInfo    AlertSeverity = "info"
	SeveritySuccess AlertSeverity = "success"
)

// Alert is a derived, user-facing notification about budgets or spending.
type Alert struct {
	ID         string        `json:"id"`
	Severity   AlertSeverity `json:"severity"`
	Title      string        `json:"title"`
	Message    string        `json:"message"`
	Percentage float64       `json:"percentage,omitempty"`
	CategoryID string        `json:"categoryId,omitempty"`
}

// GoalProgress is a goal with its derived progress. Progress is current
// total savings (all-time income minus all-time expense) versus the target,
// capped at 100%.
type GoalProgress struct {
	Goal
	Progress      float64         `json:"progress"`
	AmountNeeded  decimal.Decimal `json:"amountNeeded"`
	DaysRemaining int             `json:"daysRemaining"`
	DerivedStatus GoalStatus      `json:"derivedStatus"`
}

var hundred = decimal.NewFromInt(100)

// BudgetAlerts evaluates the configured budget limits against the current
// calendar month's spending. Thresholds: the overall monthly limit alerts
// at 50% (info), 80% (warning) and 100% (danger); per-category limits at
// 80% and 100%. When nothing fired and money was spent this month, a single
// success entry is returned.
func (s *Store) BudgetAlerts(now time.Time) ([]Alert, error) {
	settings, err := s.GetSettings()
	if err != nil {
		return []Alert{}, err
	}
	limits := settings.BudgetLimits

	monthStart := types.NewDate(now.Year(), now.Month(), 1)
	monthEnd := monthStart.AddDate(0, 1, -1)
	monthRange := &DateRange{Start: monthStart, End: monthEnd}

	monthlyExpenses, err := s.GetTotalsByType(TypeExpense, monthRange)
	if err != nil {
		return []Alert{}, err
	}

	breakdown, err := s.GetCategoryBreakdown(TypeExpense, monthRange)
	if err != nil {
		return []Alert{}, err
	}

	alerts := []Alert{}

	if limit, ok := limits[BudgetLimitMonthly]; ok && limit.IsPositive() && monthlyExpenses.IsPositive() {
		percentage, _ := monthlyExpenses.Div(limit).Mul(hundred).Float64()

		switch {
		case percentage >= 100:
			alerts = append(alerts, Alert{
				ID:         "monthly-exceeded",
				Severity:   SeverityDanger,
				Title:      "Monthly Budget Exceeded!",
				Message:    fmt.Sprintf("You've spent %s this month, which is %.1f%% of your %s budget.", monthlyExpenses, percentage, limit),
				Percentage: math.Min(percentage, 100),
			})
		case percentage >= 80:
			alerts = append(alerts, Alert{
				ID:         "monthly-warning",
				Severity:   SeverityWarning,
				Title:      "Approaching Budget Limit",
				Message:    fmt.Sprintf("You've used %.1f%% of your monthly budget. %s remaining.", percentage, limit.Sub(monthlyExpenses)),
				Percentage: percentage,
			})
		case percentage >= 50:
			alerts = append(alerts, Alert{
				ID:         "monthly-info",
				Severity:   SeverityInfo,
				Title:      "Budget Update",
				Message:    fmt.Sprintf("You've used %.1f%% of your monthly budget. You're on track!", percentage),
				Percentage: percentage,
			})
		}
	}

	for _, entry := range breakdown {
		limit, ok := limits[BudgetLimitCategory(entry.ID)]
		if !ok || !limit.IsPositive() || !entry.Amount.IsPositive() {
			continue
		}

		percentage, _ := entry.Amount.Div(limit).Mul(hundred).Float64()

		switch {
		case percentage >= 100:
			alerts = append(alerts, Alert{
				ID:         "category-" + entry.ID + "-exceeded",
				Severity:   SeverityDanger,
				Title:      entry.Name + " Budget Exceeded",
				Message:    fmt.Sprintf("You've spent %s on %s, exceeding your %s limit.", entry.Amount, entry.Name, limit),
				Percentage: math.Min(percentage, 100),
				CategoryID: entry.ID,
			})
		case percentage >= 80:
			alerts = append(alerts, Alert{
				ID:         "category-" + entry.ID + "-warning",
				Severity:   SeverityWarning,
				Title:      entry.Name + " Budget Warning",
				Message:    fmt.Sprintf("You've used %.1f%% of your %s budget. %s remaining.", percentage, entry.Name, limit.Sub(entry.Amount)),
				Percentage: percentage,
				CategoryID: entry.ID,
			})
		}
	}

	if len(alerts) == 0 && monthlyExpenses.IsPositive() {
		alerts = append(alerts, Alert{
			ID:       "all-good",
			Severity: SeveritySuccess,
			Title:    "Budget on Track!",
			Message:  "Great job! You're staying within your budget limits this month.",
		})
	}

	return alerts, nil
}

// GoalProgressAll derives progress for every goal against current total
// savings.
func (s *Store) GoalProgressAll(now time.Time) ([]GoalProgress, error) {
	goals, err := s.GetGoals()
	if err != nil {
		return []GoalProgress{}, err
	}

	income, err := s.GetTotalsByType(TypeIncome, nil)
	if err != nil {
		return []GoalProgress{}, err
	}

	expenses, err := s.GetTotalsByType(TypeExpense, nil)
	if err != nil {
		return []GoalProgress{}, err
	}

	savings := income.Sub(expenses)

	progress := make([]GoalProgress, 0, len(goals))
	for _, goal := range goals {
		progress = append(progress, deriveGoalProgress(goal, savings, now))
	}

	return progress, nil
}

func deriveGoalProgress(goal Goal, savings decimal.Decimal, now time.Time) GoalProgress {
	var percentage float64
	if goal.TargetAmount.IsPositive() {
		percentage, _ = savings.Div(goal.TargetAmount).Mul(hundred).Float64()
		percentage = math.Min(math.Max(percentage, 0), 100)
	}

	daysRemaining := int(math.Ceil(time.Time(goal.TargetDate).Sub(now).Hours() / 24))

	status := GoalActive
	switch {
	case percentage >= 100:
		status = GoalCompleted
	case daysRemaining < 0:
		status = GoalOverdue
	case daysRemaining <= 30:
		status = GoalUrgent
	}

	amountNeeded := goal.TargetAmount.Sub(savings)
	if amountNeeded.IsNegative() {
		amountNeeded = decimal.Zero
	}

	return GoalProgress{
		Goal:          goal,
		Progress:      percentage,
		AmountNeeded:  amountNeeded,
		DaysRemaining: daysRemaining,
		DerivedStatus: status,
	}
}

// SpendingInsights derives high-level observations from all-time totals:
// the spending-to-income ratio (warning above 90%, success below 70%) and a
// single dominant expense category (above 40% of categorized spending).
func (s *Store) SpendingInsights() ([]Alert, error) {
	income, err := s.GetTotalsByType(TypeIncome, nil)
	if err != nil {
		return []Alert{}, err
	}

	expenses, err := s.GetTotalsByType(TypeExpense, nil)
	if err != nil {
		return []Alert{}, err
	}

	breakdown, err := s.GetCategoryBreakdown(TypeExpense, nil)
	if err != nil {
		return []Alert{}, err
	}

	insights := []Alert{}

	if income.IsPositive() {
		ratio, _ := expenses.Div(income).Mul(hundred).Float64()
		if ratio > 90 {
			insights = append(insights, Alert{
				ID:         "high-spending",
				Severity:   SeverityWarning,
				Title:      "High Spending Alert",
				Message:    fmt.Sprintf("You're spending %.1f%% of your income. Consider reducing expenses.", ratio),
				Percentage: ratio,
			})
		} else if ratio < 70 {
			insights = append(insights, Alert{
				ID:         "good-savings",
				Severity:   SeveritySuccess,
				Title:      "Great Savings Rate!",
				Message:    fmt.Sprintf("Excellent! You're only spending %.1f%% of your income.", ratio),
				Percentage: ratio,
			})
		}
	}

	if len(breakdown) > 0 {
		top := breakdown[0]
		categorized := decimal.Zero
		for _, entry := range breakdown {
			categorized = categorized.Add(entry.Amount)
			if entry.Amount.GreaterThan(top.Amount) {
				top = entry
			}
		}

		if categorized.IsPositive() {
			share, _ := top.Amount.Div(categorized).Mul(hundred).Float64()
			if share > 40 {
				insights = append(insights, Alert{
					ID:         "top-category",
					Severity:   SeverityInfo,
					Title:      "Top Spending Category",
					Message:    fmt.Sprintf("%s makes up %.1f%% of your categorized spending.", top.Name, share),
					Percentage: share,
					CategoryID: top.ID,
				})
			}
		}
	}

	return insights, nil
}
