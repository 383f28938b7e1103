package loan

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domain "wepresto-backend/internal/domain/loan"
)

type Usecase struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewUsecase(r domain.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{repo: r, log: log}
}

func (u *Usecase) Get(ctx context.Context, uid string) (*domain.Loan, error) {
	return u.repo.GetByUID(ctx, uid)
}

// Terms returns the selectable tenor catalog.
func (u *Usecase) Terms() []TermDTO {
	terms := domain.Terms()
	out := make([]TermDTO, 0, len(terms))
	for _, t := range terms {
		out = append(out, TermDTO{
			Name:  fmt.Sprintf("%d Months", int(t)),
			Value: int(t),
		})
	}
	return out
}

// NeedingFunding lists a page of loans in funding status, each decorated
// with its participation sum, the amount still missing, and the funded
// fraction. A stored loan amount of zero is a data fault and fails loudly
// instead of producing Inf.
func (u *Usecase) NeedingFunding(ctx context.Context, take, skip int) (*FundingListDTO, error) {
	if take <= 0 {
		take = 10
	}
	if skip < 0 {
		skip = 0
	}

	loans, count, err := u.repo.ListByStatus(ctx, domain.StatusFunding, take, skip)
	if err != nil {
		return nil, err
	}

	out := make([]FundingLoanDTO, 0, len(loans))
	for i := range loans {
		l := &loans[i]
		if l.Amount <= 0 {
			u.log.Error("loan in funding status with non-positive amount",
				zap.String("loan_uid", l.UID),
				zap.Float64("amount", l.Amount))
			return nil, fmt.Errorf("loan %s: %w", l.UID, domain.ErrInvalidAmount)
		}
		funded, err := u.repo.SumParticipations(ctx, l.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, FundingLoanDTO{
			Loan:             *l,
			FundedAmount:     funded,
			RemainingAmount:  l.Amount - funded,
			FundedPercentage: funded / l.Amount,
		})
	}
	return &FundingListDTO{Count: count, Loans: out}, nil
}
