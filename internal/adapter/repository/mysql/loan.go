package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	loanDomain "wepresto-backend/internal/domain/loan"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) GetByUID(ctx context.Context, uid string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("uid = ?", uid).First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, loanDomain.ErrNotFound
		}
		return nil, res.Error
	}
	return &out, nil
}

func (r *LoanRepository) ListByStatus(ctx context.Context, status loanDomain.Status, take, skip int) ([]loanDomain.Loan, int64, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{}).Where("status = ?", status)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	var out []loanDomain.Loan
	res := q.Order("created_at ASC, id ASC").Limit(take).Offset(skip).Find(&out)
	if res.Error != nil {
		return nil, 0, res.Error
	}
	return out, count, nil
}

func (r *LoanRepository) SumParticipations(ctx context.Context, loanID uint64) (float64, error) {
	var total float64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.LoanParticipation{}).
		Where("loan_id = ?", loanID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	return total, res.Error
}
