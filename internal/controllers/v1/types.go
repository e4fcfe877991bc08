package v1

import (
	"github.com/pocketledger/backend/internal/ledger"
)

// Controller holds the injected store all handlers operate on.
type Controller struct {
	Store *ledger.Store
}

// URIID binds the id path parameter. Ledger ids are opaque strings.
type URIID struct {
	ID string `uri:"id" binding:"required"` // ID of the resource
}

type httpError struct {
	Error string `json:"error" example:"the request body must not be empty"`
}
