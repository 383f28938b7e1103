package movementmock

import (
	"context"
	"time"

	domain "wepresto-backend/internal/domain/movement"
)

// Repo is a function-backed mock that satisfies domain.Repository. Methods
// without a configured func return empty results, which models a loan with
// no unpaid movements.
type Repo struct {
	FindNextUnpaidInstallmentFn    func(ctx context.Context, loanID uint64) (*domain.Movement, error)
	FindDueUnpaidInstallmentsFn    func(ctx context.Context, loanID uint64, dueBefore time.Time) ([]domain.Movement, error)
	FindDueUnpaidOverdueInterestFn func(ctx context.Context, loanID uint64, dueBefore time.Time) ([]domain.Movement, error)
	FindAllUnpaidInstallmentsFn    func(ctx context.Context, loanID uint64) ([]domain.Movement, error)
}

func (m *Repo) FindNextUnpaidInstallment(ctx context.Context, loanID uint64) (*domain.Movement, error) {
	if m.FindNextUnpaidInstallmentFn != nil {
		return m.FindNextUnpaidInstallmentFn(ctx, loanID)
	}
	return nil, nil
}

func (m *Repo) FindDueUnpaidInstallments(ctx context.Context, loanID uint64, dueBefore time.Time) ([]domain.Movement, error) {
	if m.FindDueUnpaidInstallmentsFn != nil {
		return m.FindDueUnpaidInstallmentsFn(ctx, loanID, dueBefore)
	}
	return nil, nil
}

func (m *Repo) FindDueUnpaidOverdueInterest(ctx context.Context, loanID uint64, dueBefore time.Time) ([]domain.Movement, error) {
	if m.FindDueUnpaidOverdueInterestFn != nil {
		return m.FindDueUnpaidOverdueInterestFn(ctx, loanID, dueBefore)
	}
	return nil, nil
}

func (m *Repo) FindAllUnpaidInstallments(ctx context.Context, loanID uint64) ([]domain.Movement, error) {
	if m.FindAllUnpaidInstallmentsFn != nil {
		return m.FindAllUnpaidInstallmentsFn(ctx, loanID)
	}
	return nil, nil
}
