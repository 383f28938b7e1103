package loan

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound      = errors.New("loan not found")
	ErrInvalidAmount = errors.New("loan amount must be positive")
)

type Status string

const (
	StatusApplied   Status = "applied"
	StatusReviewing Status = "reviewing"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusFunding   Status = "funding"
	StatusActive    Status = "active"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Term is the loan tenor in months.
type Term int

const (
	TermSixMonths        Term = 6
	TermTwelveMonths     Term = 12
	TermEighteenMonths   Term = 18
	TermTwentyFourMonths Term = 24
	TermThirtySixMonths  Term = 36
)

// Terms lists the selectable tenors in ascending order.
func Terms() []Term {
	return []Term{TermSixMonths, TermTwelveMonths, TermEighteenMonths, TermTwentyFourMonths, TermThirtySixMonths}
}

type Loan struct {
	ID          uint64         `gorm:"primaryKey;column:id" json:"-"`
	UID         string         `gorm:"size:36;uniqueIndex:ux_loans_uid_active" json:"uid"`
	BorrowerUID string         `gorm:"size:36;index:idx_loans_borrower_active" json:"borrower_uid"`
	Amount      float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Term        Term           `gorm:"column:term" json:"term"`
	Status      Status         `gorm:"type:enum('applied','reviewing','approved','rejected','funding','active','paid','cancelled');default:'applied'" json:"status"`
	StartDate   *time.Time     `gorm:"column:start_date;type:date" json:"start_date,omitempty"`
	CreatedAt   time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Loan) TableName() string { return "loans" }

// LoanParticipation is a lender's committed amount toward a funding loan.
// This core only ever reads its SUM per loan.
type LoanParticipation struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	UID       string         `gorm:"size:36;uniqueIndex:ux_participations_uid_active" json:"uid"`
	LoanID    uint64         `gorm:"column:loan_id;index" json:"-"`
	Amount    float64        `gorm:"type:decimal(18,2)" json:"amount"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (LoanParticipation) TableName() string { return "loan_participations" }
