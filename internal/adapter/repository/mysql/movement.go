package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	movementDomain "wepresto-backend/internal/domain/movement"
)

type MovementRepository struct{ db *gorm.DB }

func NewMovementRepository(db *gorm.DB) *MovementRepository { return &MovementRepository{db: db} }

func (r *MovementRepository) FindNextUnpaidInstallment(ctx context.Context, loanID uint64) (*movementDomain.Movement, error) {
	var out movementDomain.Movement
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND type = ? AND paid = ?", loanID, movementDomain.TypeLoanInstallment, false).
		Order("due_date ASC, id ASC").
		First(&out)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, res.Error
	}
	return &out, nil
}

// FindDueUnpaidInstallments filters by true chronological comparison. The
// historical system compared year, month, and day independently, which
// silently drops overdue installments from earlier months; see DESIGN.md.
func (r *MovementRepository) FindDueUnpaidInstallments(ctx context.Context, loanID uint64, dueBefore time.Time) ([]movementDomain.Movement, error) {
	var out []movementDomain.Movement
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND type = ? AND paid = ? AND due_date <= ?",
			loanID, movementDomain.TypeLoanInstallment, false, dueBefore).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *MovementRepository) FindDueUnpaidOverdueInterest(ctx context.Context, loanID uint64, dueBefore time.Time) ([]movementDomain.Movement, error) {
	var out []movementDomain.Movement
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND type = ? AND paid = ? AND due_date <= ?",
			loanID, movementDomain.TypeOverdueInterest, false, dueBefore).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}

func (r *MovementRepository) FindAllUnpaidInstallments(ctx context.Context, loanID uint64) ([]movementDomain.Movement, error) {
	var out []movementDomain.Movement
	res := r.db.WithContext(ctx).
		Where("loan_id = ? AND type = ? AND paid = ?", loanID, movementDomain.TypeLoanInstallment, false).
		Order("due_date ASC, id ASC").
		Find(&out)
	return out, res.Error
}
