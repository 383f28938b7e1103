package obligation

import "wepresto-backend/internal/domain/movement"

// reduceObligations folds an already-merged sequence into a Summary.
// PaymentDate is taken from the first movement and never overwritten; the
// chronological ordering established by mergeMovements makes that the
// earliest obligation date.
func reduceObligations(movs []movement.Movement) *Summary {
	s := &Summary{Movements: movs}
	for i := range movs {
		m := &movs[i]
		s.TotalAmount += m.Amount
		s.Interest += m.Interest
		s.Principal += m.Principal
		if m.Type == movement.TypeOverdueInterest {
			s.OverdueInterest += m.Amount
		}
		if s.PaymentDate == nil {
			d := m.DueDate
			s.PaymentDate = &d
		}
	}
	return s
}

// expandPayoff layers the extra (not-yet-due) installments on top of a
// minimum-payment summary. Extras contribute only their principal — their
// interest portion is not owed on early settlement. Unlike the minimum
// reduce, PaymentDate here is last-wins: each extra overwrites it, so the
// result carries the due date of the final remaining installment, falling
// back to the minimum's own date when there are no extras.
func expandPayoff(minimum *Summary, extras []movement.Movement) *Summary {
	out := &Summary{
		TotalAmount:     minimum.TotalAmount,
		Interest:        minimum.Interest,
		Principal:       minimum.Principal,
		OverdueInterest: minimum.OverdueInterest,
		PaymentDate:     minimum.PaymentDate,
	}
	for i := range extras {
		m := &extras[i]
		out.TotalAmount += m.Principal
		out.Principal += m.Principal
		d := m.DueDate
		out.PaymentDate = &d
	}
	out.Movements = mergeMovements(minimum.Movements, extras)
	return out
}
