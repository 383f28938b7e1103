package obligation

import (
	"time"

	"wepresto-backend/internal/domain/movement"
)

// Summary is the monetary reduction of an ordered movement sequence: what a
// borrower owes as of a reference date, plus the movements behind the number.
type Summary struct {
	TotalAmount     float64             `json:"total_amount"`
	Interest        float64             `json:"interest"`
	Principal       float64             `json:"principal"`
	OverdueInterest float64             `json:"overdue_interest"`
	PaymentDate     *time.Time          `json:"payment_date"`
	Movements       []movement.Movement `json:"movements"`
}
