package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	loanDomain "wepresto-backend/internal/domain/loan"
	loanUC "wepresto-backend/internal/usecase/loan"
	"wepresto-backend/internal/usecase/obligation"
	"wepresto-backend/pkg/dateutil"
)

type LoanHandler struct {
	obligations *obligation.Usecase
	loans       *loanUC.Usecase
}

func NewLoanHandler(obligations *obligation.Usecase, loans *loanUC.Usecase) *LoanHandler {
	return &LoanHandler{obligations: obligations, loans: loans}
}

type quoteReq struct {
	UID           string `query:"uid" validate:"required,uid"`
	ReferenceDate string `query:"reference-date" validate:"required,refdate"`
}

func (h *LoanHandler) MinimumPayment(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	ref, _ := dateutil.ParseReferenceDate(req.ReferenceDate)

	s, err := h.obligations.MinimumPayment(c.Request().Context(), req.UID, ref)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *LoanHandler) TotalPayment(c echo.Context) error {
	var req quoteReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	ref, _ := dateutil.ParseReferenceDate(req.ReferenceDate)

	s, err := h.obligations.TotalPayment(c.Request().Context(), req.UID, ref)
	if err != nil {
		return quoteError(c, err)
	}
	return c.JSON(http.StatusOK, s)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	uid := c.Param("uid")
	l, err := h.loans.Get(c.Request().Context(), uid)
	if err != nil {
		if errors.Is(err, loanDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, l)
}

func (h *LoanHandler) GetLoanTerms(c echo.Context) error {
	return c.JSON(http.StatusOK, h.loans.Terms())
}

type needingFundingReq struct {
	Take int `query:"take" validate:"omitempty,gte=1,lte=100"`
	Skip int `query:"skip" validate:"omitempty,gte=0"`
}

func (h *LoanHandler) NeedingFunding(c echo.Context) error {
	req := needingFundingReq{Take: 10, Skip: 0}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid query"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	out, err := h.loans.NeedingFunding(c.Request().Context(), req.Take, req.Skip)
	if err != nil {
		if errors.Is(err, loanDomain.ErrInvalidAmount) {
			return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
	return c.JSON(http.StatusOK, out)
}

// quoteError maps domain errors from the obligation usecase to HTTP codes.
func quoteError(c echo.Context, err error) error {
	if errors.Is(err, loanDomain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "loan not found"})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
}
