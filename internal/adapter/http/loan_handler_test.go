package http

import (
	"context"
	"encoding/json"
	"errors"
	stdhttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	loanDomain "wepresto-backend/internal/domain/loan"
	movementDomain "wepresto-backend/internal/domain/movement"
	"wepresto-backend/internal/testutil/loanmock"
	"wepresto-backend/internal/testutil/movementmock"
	loanUC "wepresto-backend/internal/usecase/loan"
	"wepresto-backend/internal/usecase/obligation"
)

const testUID = "5f9f1c1b-0e1c-4c0c-8c0c-0c0c0c0c0c0c"

// -------- helpers --------

func newEchoWithValidator() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newHandler(loans *loanmock.Repo, movements *movementmock.Repo) *LoanHandler {
	return NewLoanHandler(
		obligation.NewUsecase(loans, movements, nil),
		loanUC.NewUsecase(loans, nil),
	)
}

func knownLoanRepo() *loanmock.Repo {
	return &loanmock.Repo{
		GetByUIDFn: func(ctx context.Context, uid string) (*loanDomain.Loan, error) {
			if uid != testUID {
				return nil, loanDomain.ErrNotFound
			}
			return &loanDomain.Loan{ID: 1, UID: testUID, Amount: 1200, Term: loanDomain.TermTwelveMonths, Status: loanDomain.StatusActive}, nil
		},
	}
}

func doQuote(t *testing.T, h func(echo.Context) error, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if err := h(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	return rec
}

// -------- tests --------

func TestMinimumPayment_Success(t *testing.T) {
	movements := &movementmock.Repo{
		FindNextUnpaidInstallmentFn: func(ctx context.Context, loanID uint64) (*movementDomain.Movement, error) {
			return &movementDomain.Movement{
				ID: 1, Type: movementDomain.TypeLoanInstallment,
				Amount: 100, Interest: 20, Principal: 80,
				DueDate: date(2024, time.March, 1),
			}, nil
		},
	}
	h := newHandler(knownLoanRepo(), movements)

	rec := doQuote(t, h.MinimumPayment, "/loans/minimum-payment?uid="+testUID+"&reference-date=2024-02-15")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got obligation.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalAmount != 100 || got.Interest != 20 || got.Principal != 80 {
		t.Fatalf("summary: %+v", got)
	}
	if got.PaymentDate == nil || !got.PaymentDate.Equal(date(2024, time.March, 1)) {
		t.Fatalf("payment date = %v", got.PaymentDate)
	}
}

func TestMinimumPayment_ValidationFailure(t *testing.T) {
	h := newHandler(knownLoanRepo(), &movementmock.Repo{})

	rec := doQuote(t, h.MinimumPayment, "/loans/minimum-payment?uid=not-a-uuid&reference-date=15/02/2024")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !containsFieldMsg(resp.Details, "UID", "UUID") {
		t.Fatalf("details: %+v", resp.Details)
	}
	if !containsFieldMsg(resp.Details, "ReferenceDate", "YYYY-MM-DD") {
		t.Fatalf("details: %+v", resp.Details)
	}
}

func TestMinimumPayment_MissingParams(t *testing.T) {
	h := newHandler(knownLoanRepo(), &movementmock.Repo{})

	rec := doQuote(t, h.MinimumPayment, "/loans/minimum-payment")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMinimumPayment_UnknownLoan(t *testing.T) {
	h := newHandler(knownLoanRepo(), &movementmock.Repo{})

	rec := doQuote(t, h.MinimumPayment, "/loans/minimum-payment?uid=00000000-0000-4000-8000-000000000000&reference-date=2024-02-15")
	if rec.Code != stdhttp.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMinimumPayment_StorageFailure(t *testing.T) {
	movements := &movementmock.Repo{
		FindDueUnpaidInstallmentsFn: func(ctx context.Context, loanID uint64, dueBefore time.Time) ([]movementDomain.Movement, error) {
			return nil, errors.New("storage down")
		},
	}
	h := newHandler(knownLoanRepo(), movements)

	rec := doQuote(t, h.MinimumPayment, "/loans/minimum-payment?uid="+testUID+"&reference-date=2024-02-15")
	if rec.Code != stdhttp.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestTotalPayment_Success(t *testing.T) {
	movements := &movementmock.Repo{
		FindNextUnpaidInstallmentFn: func(ctx context.Context, loanID uint64) (*movementDomain.Movement, error) {
			return &movementDomain.Movement{
				ID: 1, Type: movementDomain.TypeLoanInstallment,
				Amount: 100, Interest: 20, Principal: 80,
				DueDate: date(2024, time.March, 1),
			}, nil
		},
		FindDueUnpaidOverdueInterestFn: func(ctx context.Context, loanID uint64, dueBefore time.Time) ([]movementDomain.Movement, error) {
			return []movementDomain.Movement{{
				ID: 2, Type: movementDomain.TypeOverdueInterest,
				Amount: 5, Interest: 5,
				DueDate: date(2024, time.February, 1),
			}}, nil
		},
		FindAllUnpaidInstallmentsFn: func(ctx context.Context, loanID uint64) ([]movementDomain.Movement, error) {
			return []movementDomain.Movement{
				{ID: 1, Type: movementDomain.TypeLoanInstallment, Amount: 100, Interest: 20, Principal: 80, DueDate: date(2024, time.March, 1)},
				{ID: 3, Type: movementDomain.TypeLoanInstallment, Amount: 100, Interest: 20, Principal: 80, DueDate: date(2024, time.April, 1)},
			}, nil
		},
	}
	h := newHandler(knownLoanRepo(), movements)

	rec := doQuote(t, h.TotalPayment, "/loans/total-payment?uid="+testUID+"&reference-date=2024-02-15")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var got obligation.Summary
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.TotalAmount != 185 {
		t.Fatalf("total = %v, want 185", got.TotalAmount)
	}
	if got.PaymentDate == nil || !got.PaymentDate.Equal(date(2024, time.April, 1)) {
		t.Fatalf("payment date = %v, want 2024-04-01", got.PaymentDate)
	}
	if len(got.Movements) != 3 {
		t.Fatalf("movements = %d, want 3", len(got.Movements))
	}
}

func TestGetLoan(t *testing.T) {
	h := newHandler(knownLoanRepo(), &movementmock.Repo{})

	e := newEchoWithValidator()
	req := httptest.NewRequest(stdhttp.MethodGet, "/loans/"+testUID, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/loans/:uid")
	c.SetParamNames("uid")
	c.SetParamValues(testUID)
	if err := h.GetLoan(c); err != nil {
		t.Fatalf("handler err: %v", err)
	}
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var got loanDomain.Loan
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.UID != testUID {
		t.Fatalf("uid = %s", got.UID)
	}
}

func TestGetLoanTerms(t *testing.T) {
	h := newHandler(knownLoanRepo(), &movementmock.Repo{})

	rec := doQuote(t, h.GetLoanTerms, "/loans/terms")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var terms []loanUC.TermDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &terms); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(terms) != 5 {
		t.Fatalf("terms = %d, want 5", len(terms))
	}
}

func TestNeedingFunding(t *testing.T) {
	loans := knownLoanRepo()
	loans.ListByStatusFn = func(ctx context.Context, status loanDomain.Status, take, skip int) ([]loanDomain.Loan, int64, error) {
		return []loanDomain.Loan{{ID: 1, UID: testUID, Amount: 1000, Status: loanDomain.StatusFunding}}, 1, nil
	}
	loans.SumParticipationsFn = func(ctx context.Context, loanID uint64) (float64, error) {
		return 400, nil
	}
	h := newHandler(loans, &movementmock.Repo{})

	rec := doQuote(t, h.NeedingFunding, "/loans/needing-funding?take=5")
	if rec.Code != stdhttp.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var got loanUC.FundingListDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Count != 1 || got.Loans[0].FundedPercentage != 0.4 {
		t.Fatalf("got: %+v", got)
	}
}

func TestNeedingFunding_BadPaging(t *testing.T) {
	h := newHandler(knownLoanRepo(), &movementmock.Repo{})

	rec := doQuote(t, h.NeedingFunding, "/loans/needing-funding?take=-3")
	if rec.Code != stdhttp.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}
