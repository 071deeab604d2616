package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pocket-ledger/backend/internal/models"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var balanceAdjustments = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "balance_adjustments_total",
		Help: "How many account balance adjustments were made for transaction changes, partitioned by result.",
	},
	[]string{"result"},
)

// ledger is the view on account balances that a backend hands to the
// balance adjustment. Reads must observe earlier writes of the same ledger
// and all writes must become visible together with the transaction write.
type ledger interface {
	balance(ctx context.Context, accountID uuid.UUID) (balance decimal.Decimal, ok bool, err error)
	setBalance(ctx context.Context, accountID uuid.UUID, balance decimal.Decimal) error
}

// post adds delta to the balance of the transaction's account.
//
// A transaction referencing an account that does not exist is not an error,
// the adjustment is skipped.
func post(ctx context.Context, l ledger, t models.Transaction, delta decimal.Decimal) error {
	current, ok, err := l.balance(ctx, t.AccountID)
	if err != nil {
		return err
	}

	if !ok {
		log.Warn().
			Str("transaction", t.ID.String()).
			Str("account", t.AccountID.String()).
			Str("delta", models.FormatMoney(delta)).
			Msg("account does not exist, skipping balance adjustment")
		balanceAdjustments.WithLabelValues("skipped").Inc()
		return nil
	}

	balance := models.RoundMoney(current.Add(delta))
	err = models.CheckMoney(balance)
	if err != nil {
		return fmt.Errorf("balance of account %s: %w", t.AccountID, err)
	}

	err = l.setBalance(ctx, t.AccountID, balance)
	if err != nil {
		return err
	}

	balanceAdjustments.WithLabelValues("applied").Inc()
	return nil
}

// apply posts the effect of t to its account.
func apply(ctx context.Context, l ledger, t models.Transaction) error {
	return post(ctx, l, t, t.Delta())
}

// revert undoes the effect of t on its account.
func revert(ctx context.Context, l ledger, t models.Transaction) error {
	return post(ctx, l, t, t.Delta().Neg())
}
