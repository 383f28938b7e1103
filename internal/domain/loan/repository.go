package loan

import "context"

type Repository interface {
	GetByUID(ctx context.Context, uid string) (*Loan, error)
	// ListByStatus returns a page of loans plus the total count for the status.
	ListByStatus(ctx context.Context, status Status, take, skip int) ([]Loan, int64, error)
	// SumParticipations returns the total committed amount for a loan (0 when none).
	SumParticipations(ctx context.Context, loanID uint64) (float64, error)
}
