package v1

import (
	"net/http"

	"github.com/pocketledger/backend/internal/httputil"
	"github.com/pocketledger/backend/internal/ledger"
	"github.com/pocketledger/backend/internal/types"
	"github.com/gin-gonic/gin"
)

func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", co.OptionsTransactions)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}
	{
		r.OPTIONS("/:id", co.OptionsTransactionDetail)
		r.GET("/:id", co.GetTransaction)
		r.PATCH("/:id", co.UpdateTransaction)
		r.DELETE("/:id", co.DeleteTransaction)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func (co Controller) OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	_, err := co.findTransaction(uri.ID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable

	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	if err := editable.validate(); err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	transaction, err := co.Store.SaveTransaction(editable.model())
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusCreated, TransactionResponse{Data: &transaction})
}

// @Summary		Get transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			type		query	string	false	"Filter by transaction type"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			from		query	string	false	"Transactions on or after this date (YYYY-MM-DD)"
// @Param			until		query	string	false	"Transactions on or before this date (YYYY-MM-DD)"
// @Router			/v1/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: errorString(err)})
		return
	}

	if filter.Type != "" && !ledger.TransactionType(filter.Type).Valid() {
		c.JSON(status(errTransactionTypeInvalid), TransactionListResponse{Error: errorString(errTransactionTypeInvalid)})
		return
	}

	dateRange, err := parseRange(filter.From, filter.Until)
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: errorString(err)})
		return
	}

	var transactions []ledger.Transaction
	if dateRange != nil {
		transactions, err = co.Store.GetTransactionsByDateRange(dateRange.Start, dateRange.End)
	} else {
		transactions, err = co.Store.GetTransactions()
	}
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: errorString(err)})
		return
	}

	data := make([]ledger.Transaction, 0, len(transactions))
	for _, transaction := range transactions {
		if filter.Type != "" && transaction.Type != ledger.TransactionType(filter.Type) {
			continue
		}
		if filter.Category != "" && transaction.CategoryID != filter.Category {
			continue
		}
		data = append(data, transaction)
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: data})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	transaction, err := co.findTransaction(uri.ID)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// @Summary		Update transaction
// @Description	Updates an existing transaction. Only values to be updated need to be specified.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionUpdateRequest	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	var request TransactionUpdateRequest
	if err := httputil.BindData(c, &request); err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	if err := request.validate(); err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	transaction, err := co.Store.UpdateTransaction(uri.ID, request.model())
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: errorString(err)})
		return
	}

	if transaction == nil {
		c.JSON(status(errNoResource), TransactionResponse{Error: errorString(errNoResource)})
		return
	}

	c.JSON(http.StatusOK, TransactionResponse{Data: transaction})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction
// @Tags			Transactions
// @Success		204
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	var uri URIID
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if _, err := co.findTransaction(uri.ID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	if err := co.Store.DeleteTransaction(uri.ID); err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// findTransaction looks a transaction up by ID. It returns errNoResource
// when no transaction with that ID exists.
func (co Controller) findTransaction(id string) (*ledger.Transaction, error) {
	transactions, err := co.Store.GetTransactions()
	if err != nil {
		return nil, err
	}

	for i := range transactions {
		if transactions[i].ID == id {
			return &transactions[i], nil
		}
	}

	return nil, errNoResource
}

// parseRange builds a DateRange from optional from/until query values.
func parseRange(from, until string) (*ledger.DateRange, error) {
	if from == "" && until == "" {
		return nil, nil
	}

	start := types.NewDate(1, 1, 1)
	end := types.NewDate(9999, 12, 31)

	if from != "" {
		parsed, err := types.ParseDate(from)
		if err != nil {
			return nil, errDateInvalid
		}
		start = parsed
	}

	if until != "" {
		parsed, err := types.ParseDate(until)
		if err != nil {
			return nil, errDateInvalid
		}
		end = parsed
	}

	return &ledger.DateRange{Start: start, End: end}, nil
}
