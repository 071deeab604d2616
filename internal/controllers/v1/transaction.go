package v1

import (
	"context"
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/httputil"
	"github.com/pocket-ledger/backend/internal/models"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func (co Controller) RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", co.OptionsTransactionList)
		r.GET("", co.GetTransactions)
		r.POST("", co.CreateTransaction)
	}

	// Transaction with ID
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
func (co Controller) OptionsTransactionList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func (co Controller) OptionsTransactionDetail(c *gin.Context) {
	_, err := co.getTransaction(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Create transaction
// @Description	Creates a new transaction and updates the balance of its account.
// @Description	If no accountId is set, the transaction is booked to the default account.
// @Tags			Transactions
// @Produce		json
// @Success		201			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var editable TransactionEditable
	err := httputil.BindData(c, &editable)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	ctx := c.Request.Context()
	create := editable.model()

	if create.AccountID == uuid.Nil {
		create.AccountID, err = co.defaultAccountID(ctx)
		if err != nil {
			c.JSON(status(err), TransactionResponse{Error: message(c, err)})
			return
		}
	}

	err = co.checkTransaction(ctx, models.Transaction{TransactionCreate: create}, true, true)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	transaction, err := co.Storage.CreateTransaction(ctx, create)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusCreated, TransactionResponse{Data: &data})
}

// @Summary		List transactions
// @Description	Returns a list of transactions, latest first
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionListResponse
// @Failure		400			{object}	TransactionListResponse
// @Failure		500			{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			account		query	string	false	"Filter by account ID"
// @Param			category	query	string	false	"Filter by category ID"
// @Param			type		query	string	false	"Filter by type"	Enums(income, expense)
// @Param			description	query	string	false	"Filter by description. Supports * as wildcard, matches anywhere without wildcards"
// @Param			fromDate	query	string	false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			untilDate	query	string	false	"Transactions before and at this date, YYYY-MM-DD"
// @Param			offset		query	uint	false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit		query	int		false	"Maximum number of Transactions to return. Defaults to 50, -1 for all."
func (co Controller) GetTransactions(c *gin.Context) {
	var query TransactionQueryFilter
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: message(c, httputil.ErrInvalidQuery)})
		return
	}

	filter, err := query.parse()
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: message(c, err)})
		return
	}

	// Default to 50 transactions
	limit := 50
	if slices.Contains(httputil.GetURLFields(c.Request.URL, query), "Limit") {
		limit = query.Limit
	}

	transactions, err := co.Storage.ListTransactions(c.Request.Context())
	if err != nil {
		c.JSON(status(err), TransactionListResponse{Error: message(c, err)})
		return
	}

	matching := slices.DeleteFunc(transactions, func(t models.Transaction) bool {
		return !filter.matches(t)
	})

	page := paginate(matching, query.Offset, limit)
	data := make([]Transaction, 0, len(page))
	for _, transaction := range page {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  len(matching),
			Offset: query.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func (co Controller) GetTransaction(c *gin.Context) {
	transaction, err := co.getTransaction(c)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Update transaction
// @Description	Updates a transaction. Only values to be updated need to be specified.
// @Description	The effect of the transaction is moved between balances when amount, type or account change.
// @Tags			Transactions
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionPatch	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func (co Controller) UpdateTransaction(c *gin.Context) {
	existing, err := co.getTransaction(c)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	var patch TransactionPatch
	err = httputil.BindData(c, &patch)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	ctx := c.Request.Context()
	err = co.checkTransaction(ctx,
		existing.Apply(patch.model()),
		patch.CategoryID != nil || patch.Type != nil,
		patch.AccountID != nil,
	)
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	transaction, ok, err := co.Storage.UpdateTransaction(ctx, existing.ID, patch.model())
	if err == nil && !ok {
		err = models.NotFound("transaction")
	}
	if err != nil {
		c.JSON(status(err), TransactionResponse{Error: message(c, err)})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction and removes its effect from the balance of its account
// @Tags			Transactions
// @Produce		json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func (co Controller) DeleteTransaction(c *gin.Context) {
	id, err := bindID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	ok, err := co.Storage.DeleteTransaction(c.Request.Context(), id)
	if err == nil && !ok {
		err = models.NotFound("transaction")
	}
	if err != nil {
		c.JSON(status(err), httpError{Error: *message(c, err)})
		return
	}

	c.Status(http.StatusNoContent)
}

// getTransaction returns the transaction identified by the ID in the URI.
func (co Controller) getTransaction(c *gin.Context) (models.Transaction, error) {
	id, err := bindID(c)
	if err != nil {
		return models.Transaction{}, err
	}

	transaction, ok, err := co.Storage.GetTransaction(c.Request.Context(), id)
	if err != nil {
		return models.Transaction{}, err
	}

	if !ok {
		return models.Transaction{}, models.NotFound("transaction")
	}

	return transaction, nil
}

// defaultAccountID returns the ID of the default account.
func (co Controller) defaultAccountID(ctx context.Context) (uuid.UUID, error) {
	accounts, err := co.Storage.ListAccounts(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	i := slices.IndexFunc(accounts, func(a models.Account) bool { return a.IsDefault })
	if i < 0 {
		return uuid.Nil, errNoDefaultAccount
	}
	return accounts[i].ID, nil
}

// checkTransaction verifies the references of a transaction.
//
// The category is only checked when checkCategory is set, the account only
// when checkAccount is set. This keeps transactions editable after their
// category or account has been removed.
func (co Controller) checkTransaction(ctx context.Context, t models.Transaction, checkCategory, checkAccount bool) error {
	if t.Amount.IsNegative() {
		return errAmountNegative
	}

	if checkCategory {
		category, ok, err := co.Storage.GetCategory(ctx, t.CategoryID)
		if err != nil {
			return err
		}

		if !ok {
			return errCategoryUnknown
		}

		if category.Type != t.Type {
			return errCategoryTypeMismatch
		}
	}

	if checkAccount {
		_, ok, err := co.Storage.GetAccount(ctx, t.AccountID)
		if err != nil {
			return err
		}

		if !ok {
			return errAccountUnknown
		}
	}

	return nil
}
