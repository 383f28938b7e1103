package loan

import domain "wepresto-backend/internal/domain/loan"

type TermDTO struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type FundingLoanDTO struct {
	domain.Loan
	FundedAmount     float64 `json:"funded_amount"`
	RemainingAmount  float64 `json:"remaining_amount"`
	FundedPercentage float64 `json:"funded_percentage"`
}

type FundingListDTO struct {
	Count int64            `json:"count"`
	Loans []FundingLoanDTO `json:"loans"`
}
