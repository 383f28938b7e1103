package movement

import (
	"context"
	"time"
)

// Repository is the read-only movement access the obligation aggregator
// consumes. All queries are scoped to a single loan and return unpaid
// movements ordered ascending by due date.
type Repository interface {
	// FindNextUnpaidInstallment returns the earliest-due unpaid installment,
	// regardless of the reference date, or nil when every installment is paid.
	FindNextUnpaidInstallment(ctx context.Context, loanID uint64) (*Movement, error)

	// FindDueUnpaidInstallments returns unpaid installments due on or before
	// dueBefore (chronological comparison; see the historical componentwise
	// filter note in DESIGN.md).
	FindDueUnpaidInstallments(ctx context.Context, loanID uint64, dueBefore time.Time) ([]Movement, error)

	// FindDueUnpaidOverdueInterest returns unpaid overdue-interest movements
	// due on or before dueBefore.
	FindDueUnpaidOverdueInterest(ctx context.Context, loanID uint64, dueBefore time.Time) ([]Movement, error)

	// FindAllUnpaidInstallments returns every unpaid installment with no date
	// filter; the payoff expansion layers these on top of the minimum set.
	FindAllUnpaidInstallments(ctx context.Context, loanID uint64) ([]Movement, error)
}
