package obligation

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"wepresto-backend/internal/domain/loan"
	"wepresto-backend/internal/domain/movement"
	"wepresto-backend/internal/metrics"
	"wepresto-backend/pkg/dateutil"
)

// Usecase computes the minimum-payment and total-payoff quotes for a loan as
// of a reference date. It only reads; all writes belong to external
// workflows.
type Usecase struct {
	loans     loan.Repository
	movements movement.Repository
	log       *zap.Logger
}

func NewUsecase(loans loan.Repository, movements movement.Repository, log *zap.Logger) *Usecase {
	if log == nil {
		log = zap.NewNop()
	}
	return &Usecase{loans: loans, movements: movements, log: log}
}

// MinimumPayment returns the smallest amount the borrower must pay to stay
// current as of referenceDate. A loan with no unpaid obligations yields an
// all-zero summary with no payment date, which is a valid outcome.
func (u *Usecase) MinimumPayment(ctx context.Context, uid string, referenceDate time.Time) (*Summary, error) {
	l, err := u.loans.GetByUID(ctx, uid)
	if err != nil {
		metrics.QuoteRequests.WithLabelValues("minimum", "error").Inc()
		return nil, err
	}
	s, err := u.minimumForLoan(ctx, l, referenceDate)
	if err != nil {
		metrics.QuoteRequests.WithLabelValues("minimum", "error").Inc()
		return nil, err
	}
	metrics.QuoteRequests.WithLabelValues("minimum", "ok").Inc()
	return s, nil
}

// minimumForLoan runs the three category queries concurrently, then merges
// and reduces. If any query fails the whole computation fails; nothing is
// reduced from partial results.
func (u *Usecase) minimumForLoan(ctx context.Context, l *loan.Loan, referenceDate time.Time) (*Summary, error) {
	dueBefore := dateutil.EndOfDay(referenceDate)

	var (
		next    *movement.Movement
		due     []movement.Movement
		overdue []movement.Movement
		errs    [3]error
		wg      sync.WaitGroup
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		next, errs[0] = u.movements.FindNextUnpaidInstallment(ctx, l.ID)
	}()
	go func() {
		defer wg.Done()
		due, errs[1] = u.movements.FindDueUnpaidInstallments(ctx, l.ID, dueBefore)
	}()
	go func() {
		defer wg.Done()
		overdue, errs[2] = u.movements.FindDueUnpaidOverdueInterest(ctx, l.ID, dueBefore)
	}()
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	// Merge order matters: the next installment wins over a duplicate in the
	// due set.
	var nextSet []movement.Movement
	if next != nil {
		nextSet = []movement.Movement{*next}
	}
	merged := mergeMovements(nextSet, due, overdue)
	s := reduceObligations(merged)

	u.log.Debug("minimum payment computed",
		zap.String("loan_uid", l.UID),
		zap.Int("movements", len(merged)),
		zap.Float64("total_amount", s.TotalAmount))
	return s, nil
}

// TotalPayment returns the amount required to fully settle the loan: the
// minimum payment plus the principal of every remaining unpaid installment.
// The minimum computation and the full installment fetch run concurrently.
func (u *Usecase) TotalPayment(ctx context.Context, uid string, referenceDate time.Time) (*Summary, error) {
	l, err := u.loans.GetByUID(ctx, uid)
	if err != nil {
		metrics.QuoteRequests.WithLabelValues("total", "error").Inc()
		return nil, err
	}

	var (
		minimum *Summary
		unpaid  []movement.Movement
		errs    [2]error
		wg      sync.WaitGroup
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		minimum, errs[0] = u.minimumForLoan(ctx, l, referenceDate)
	}()
	go func() {
		defer wg.Done()
		unpaid, errs[1] = u.movements.FindAllUnpaidInstallments(ctx, l.ID)
	}()
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			metrics.QuoteRequests.WithLabelValues("total", "error").Inc()
			return nil, err
		}
	}

	extras := difference(unpaid, minimum.Movements)
	s := expandPayoff(minimum, extras)

	u.log.Debug("total payment computed",
		zap.String("loan_uid", l.UID),
		zap.Int("movements", len(s.Movements)),
		zap.Float64("total_amount", s.TotalAmount))
	metrics.QuoteRequests.WithLabelValues("total", "ok").Inc()
	return s, nil
}
