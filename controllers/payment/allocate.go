package paymentController

import "helpti/models"

// allocatePayment spreads an incoming amount across closed tickets,
// oldest close first. Each ticket absorbs at most its pending balance.
// Whatever exceeds the combined outstanding comes back as excess.
// Tickets must already be ordered by closed_at ascending.
func allocatePayment(tickets []models.Ticket, amount float64) (allocations []models.PaymentAllocation, applied float64, excess float64) {
	remaining := amount

	for i := range tickets {
		if remaining <= 0 {
			break
		}

		pending := tickets[i].AmountPending
		if pending <= 0 {
			continue
		}

		portion := pending
		if remaining < pending {
			portion = remaining
		}

		allocations = append(allocations, models.PaymentAllocation{
			TicketID:      tickets[i].ID,
			Amount:        portion,
			BalanceBefore: pending,
			BalanceAfter:  pending - portion,
		})

		tickets[i].AmountPending = pending - portion
		tickets[i].AmountPaid += portion

		applied += portion
		remaining -= portion
	}

	return allocations, applied, remaining
}
