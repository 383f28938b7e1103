package movement

import (
	"time"

	"gorm.io/gorm"
)

type Type string

const (
	TypeLoanInstallment Type = "LOAN_INSTALLMENT"
	TypeOverdueInterest Type = "OVERDUE_INTEREST"
	TypePayment         Type = "PAYMENT"
	// Payment variants recorded by the payment workflows; the obligation
	// aggregator never selects them but they share the table.
	TypePaymentTermReduction        Type = "PAYMENT_TERM_REDUCTION"
	TypePaymentInstallmentReduction Type = "PAYMENT_INSTALLMENT_AMOUNT_REDUCTION"
)

// Movement is a single scheduled or incurred ledger entry on a loan.
// Amount == Interest + Principal for installments; overdue-interest
// movements carry zero principal.
type Movement struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"id"`
	UID       string         `gorm:"size:36;uniqueIndex:ux_movements_uid_active" json:"uid"`
	LoanID    uint64         `gorm:"column:loan_id;index:idx_movements_loan" json:"-"`
	Type      Type           `gorm:"type:enum('LOAN_INSTALLMENT','OVERDUE_INTEREST','PAYMENT','PAYMENT_TERM_REDUCTION','PAYMENT_INSTALLMENT_AMOUNT_REDUCTION')" json:"type"`
	Amount    float64        `gorm:"type:decimal(18,2)" json:"amount"`
	Interest  float64        `gorm:"type:decimal(18,2)" json:"interest"`
	Principal float64        `gorm:"type:decimal(18,2)" json:"principal"`
	DueDate   time.Time      `gorm:"column:due_date;type:date;index" json:"due_date"`
	Paid      bool           `gorm:"column:paid" json:"paid"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Movement) TableName() string { return "movements" }
