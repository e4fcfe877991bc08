package v1

import (
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

type GoalEditable struct {
	Title        string          `json:"title" example:"Emergency fund"`                                            // Name of the goal
	TargetAmount decimal.Decimal `json:"targetAmount" example:"5000" minimum:"0.00000001" multipleOf:"0.00000001"`  // How much money should be saved
	TargetDate   types.Date      `json:"targetDate" example:"2024-12-31"`                                           // Day the goal should be reached
	Description  string          `json:"description" example:"Three months of expenses" default:""`                 // Note about the goal
}

func (editable GoalEditable) validate() error {
	if editable.Title == "" {
		return errTitleEmpty
	}

	if !editable.TargetAmount.IsPositive() {
		return errAmountNotPositive
	}

	if editable.TargetDate.IsZero() {
		return errDateEmpty
	}

	return nil
}

// model returns the ledger resource for the editable fields
func (editable GoalEditable) model() ledger.Goal {
	return ledger.Goal{
		Title:        editable.Title,
		TargetAmount: editable.TargetAmount,
		TargetDate:   editable.TargetDate,
		Description:  editable.Description,
		Status:       ledger.GoalActive,
	}
}

type GoalUpdateRequest struct {
	Title        *string          `json:"title"`        // Name of the goal
	TargetAmount *decimal.Decimal `json:"targetAmount"` // How much money should be saved
	TargetDate   *types.Date      `json:"targetDate"`   // Day the goal should be reached
	Description  *string            `json:"description"` // Note about the goal
	Status       *ledger.GoalStatus `json:"status"`      // Status of the goal
}

func (r GoalUpdateRequest) validate() error {
	if r.Title != nil && *r.Title == "" {
		return errTitleEmpty
	}

	if r.TargetAmount != nil && !r.TargetAmount.IsPositive() {
		return errAmountNotPositive
	}

	return nil
}

func (r GoalUpdateRequest) model() ledger.GoalUpdate {
	return ledger.GoalUpdate{
		Title:        r.Title,
		TargetAmount: r.TargetAmount,
		TargetDate:   r.TargetDate,
		Description:  r.Description,
		Status:       r.Status,
	}
}

type GoalResponse struct {
	Data  *ledger.Goal `json:"data"`                                                      // The resource
	Error *string      `json:"error" example:"there is no resource for the specified ID"` // The error, if any occurred
}

type GoalListResponse struct {
	Data  []ledger.Goal `json:"data"`                                                      // List of resources
	Error *string       `json:"error" example:"unexpected error on the storage layer"`     // The error, if any occurred
}
