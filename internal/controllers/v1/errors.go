package v1

import (
	"errors"
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/storage"
)

var (
	errTransactionTypeInvalid = errors.New(`the transaction type must be "income" or "expense"`)
	errAmountNotPositive      = errors.New("the amount must be greater than zero")
	errDescriptionEmpty       = errors.New("the description must not be empty")
	errCategoryIDEmpty        = errors.New("the categoryId must be set")
	errDateEmpty              = errors.New("the date must be set")
	errTitleEmpty             = errors.New("the title must not be empty")
	errNameEmpty              = errors.New("the name must not be empty")
	errDateInvalid            = errors.New("dates must be specified as YYYY-MM-DD")
	errYearInvalid            = errors.New("the year must be a number")
	errTypeParamMissing       = errors.New(`the type parameter must be "income" or "expense"`)
	errCleanupConfirmation    = errors.New("the confirmation for the cleanup API call was incorrect")
	errNoResource             = errors.New("there is no resource for the specified ID")
)

// status translates an error into the HTTP status code the client gets.
func status(err error) int {
	switch {
	case errors.Is(err, errNoResource):
		return http.StatusNotFound

	case errors.Is(err, ledger.ErrCorrupt),
		errors.Is(err, storage.ErrStorage):
		return http.StatusInternalServerError

	case errors.Is(err, httputil.ErrInvalidBody),
		errors.Is(err, httputil.ErrRequestBodyEmpty),
		errors.Is(err, ledger.ErrImportParse),
		errors.Is(err, errTransactionTypeInvalid),
		errors.Is(err, errAmountNotPositive),
		errors.Is(err, errDescriptionEmpty),
		errors.Is(err, errCategoryIDEmpty),
		errors.Is(err, errDateEmpty),
		errors.Is(err, errTitleEmpty),
		errors.Is(err, errNameEmpty),
		errors.Is(err, errDateInvalid),
		errors.Is(err, errYearInvalid),
		errors.Is(err, errTypeParamMissing),
		errors.Is(err, errCleanupConfirmation):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

func errorString(err error) *string {
	s := err.Error()
	return &s
}
