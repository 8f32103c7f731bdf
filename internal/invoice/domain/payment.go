package domain

// PaymentTransition names the change an update applies to an invoice's paid date.
type PaymentTransition string

const (
	TransitionMarkPaid   PaymentTransition = "mark_paid"
	TransitionMarkUnpaid PaymentTransition = "mark_unpaid"
	TransitionKeepPaid   PaymentTransition = "keep_paid"
	TransitionKeepUnpaid PaymentTransition = "keep_unpaid"
)

// ResolvePaidDate computes the paid date an invoice should carry after an update.
//
// An invoice without a paid date that is marked paid gets today's date. Marking an invoice
// unpaid always clears the date. An invoice that is already paid and stays paid keeps its
// original date. The checks run in that order.
func ResolvePaidDate(current NullDate, paid bool, today Date) (NullDate, PaymentTransition) {
	switch {
	case !current.Valid && paid:
		return NewNullDate(today), TransitionMarkPaid
	case !paid:
		if current.Valid {
			return NullDate{}, TransitionMarkUnpaid
		}
		return NullDate{}, TransitionKeepUnpaid
	default:
		return current, TransitionKeepPaid
	}
}
