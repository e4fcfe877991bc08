package v1

import (
	"github.com/pocketledger/backend/internal/ledger"
)

type CategoryCreateRequest struct {
	Type  ledger.TransactionType `json:"type" example:"expense"`     // "income" or "expense"
	Name  string                 `json:"name" example:"Pets"`        // Name of the category
	Color string                 `json:"color" example:"#8b5cf6"`    // Display color
	Icon  string                 `json:"icon" example:"paw"`         // Display icon
}

func (r CategoryCreateRequest) validate() error {
	if !r.Type.Valid() {
		return errTransactionTypeInvalid
	}

	if r.Name == "" {
		return errNameEmpty
	}

	return nil
}

// model returns the ledger resource for the editable fields. The ID is
// assigned by the store.
func (r CategoryCreateRequest) model() ledger.Category {
	return ledger.Category{
		Name:  r.Name,
		Color: r.Color,
		Icon:  r.Icon,
	}
}

type CategoryResponse struct {
	Data  *ledger.Category `json:"data"`                                                   // The resource
	Error *string          `json:"error" example:"the name must not be empty"`             // The error, if any occurred
}

type CategoriesResponse struct {
	Data  *ledger.Categories `json:"data"`                                                 // Income and expense categories
	Error *string            `json:"error" example:"unexpected error on the storage layer"` // The error, if any occurred
}
