package v1

import (
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type        ledger.TransactionType `json:"type" example:"expense"`                                                            // "income" or "expense"
	Amount      decimal.Decimal        `json:"amount" example:"14.50" minimum:"0.00000001" multipleOf:"0.00000001"`               // The amount of the transaction
	Description string                 `json:"description" example:"Groceries"`                                                   // What the transaction was for
	CategoryID  string                 `json:"categoryId" example:"food"`                                                         // ID of the category
	Date        types.Date             `json:"date" example:"2024-03-05"`                                                         // Day the transaction happened
}

// validate checks the fields a client must always provide.
func (editable TransactionEditable) validate() error {
	if !editable.Type.Valid() {
		return errTransactionTypeInvalid
	}

	if !editable.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if editable.Description == "" {
		return errDescriptionEmpty
	}

	if editable.CategoryID == "" {
		return errCategoryIDEmpty
	}

	if editable.Date.IsZero() {
		return errDateEmpty
	}

	return nil
}

// model returns the ledger resource for the editable fields
func (editable TransactionEditable) model() ledger.Transaction {
	return ledger.Transaction{
		Type:        editable.Type,
		Amount:      editable.Amount,
		Description: editable.Description,
		CategoryID:  editable.CategoryID,
		Date:        editable.Date,
	}
}

type TransactionUpdateRequest struct {
	Type        *ledger.TransactionType `json:"type"`        // "income" or "expense"
	Amount      *decimal.Decimal        `json:"amount"`      // The amount of the transaction
	Description *string                 `json:"description"` // What the transaction was for
	CategoryID  *string                 `json:"categoryId"`  // ID of the category
	Date        *types.Date             `json:"date"`        // Day the transaction happened
}

func (r TransactionUpdateRequest) model() ledger.TransactionUpdate {
	return ledger.TransactionUpdate{
		Type:        r.Type,
		Amount:      r.Amount,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Date:        r.Date,
	}
}

// validate checks the fields that are set on the update.
func (r TransactionUpdateRequest) validate() error {
	if r.Type != nil && !r.Type.Valid() {
		return errTransactionTypeInvalid
	}

	if r.Amount != nil && !r.Amount.IsPositive() {
		return errAmountNotPositive
	}

	if r.Description != nil && *r.Description == "" {
		return errDescriptionEmpty
	}

	if r.CategoryID != nil && *r.CategoryID == "" {
		return errCategoryIDEmpty
	}

	return nil
}

type TransactionResponse struct {
	Data  *ledger.Transaction `json:"data"`                                                       // The resource
	Error *string             `json:"error" example:"there is no resource for the specified ID"`  // The error, if any occurred
}

type TransactionListResponse struct {
	Data  []ledger.Transaction `json:"data"`                                                      // List of resources
	Error *string              `json:"error" example:"dates must be specified as YYYY-MM-DD"`     // The error, if any occurred
}

type TransactionQueryFilter struct {
	Type     string `form:"type"`     // Filter by transaction type
	Category string `form:"category"` // Filter by category ID
	From     string `form:"from"`     // Transactions on or after this date
	Until    string `form:"until"`    // Transactions on or before this date
}
