package loanmock

import (
	"context"

	domain "wepresto-backend/internal/domain/loan"
)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	GetByUIDFn          func(ctx context.Context, uid string) (*domain.Loan, error)
	ListByStatusFn      func(ctx context.Context, status domain.Status, take, skip int) ([]domain.Loan, int64, error)
	SumParticipationsFn func(ctx context.Context, loanID uint64) (float64, error)
}

func (m *Repo) GetByUID(ctx context.Context, uid string) (*domain.Loan, error) {
	if m.GetByUIDFn != nil {
		return m.GetByUIDFn(ctx, uid)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListByStatus(ctx context.Context, status domain.Status, take, skip int) ([]domain.Loan, int64, error) {
	if m.ListByStatusFn != nil {
		return m.ListByStatusFn(ctx, status, take, skip)
	}
	return nil, 0, nil
}

func (m *Repo) SumParticipations(ctx context.Context, loanID uint64) (float64, error) {
	if m.SumParticipationsFn != nil {
		return m.SumParticipationsFn(ctx, loanID)
	}
	return 0, nil
}
