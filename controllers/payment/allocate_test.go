package paymentController

import (
	"testing"

	"helpti/models"

	"github.com/stretchr/testify/assert"
)

func closedTickets(pendings ...float64) []models.Ticket {
	tickets := make([]models.Ticket, len(pendings))
	for i, p := range pendings {
		tickets[i].ID = uint(i + 1)
		tickets[i].Status = models.TicketClosed
		tickets[i].FeeAmount = p
		tickets[i].AmountPending = p
	}
	return tickets
}

func TestAllocatePaymentOldestFirst(t *testing.T) {
	tickets := closedTickets(30, 50, 20)

	allocations, applied, excess := allocatePayment(tickets, 60)

	assert.Equal(t, 60.0, applied)
	assert.Equal(t, 0.0, excess)
	assert.Len(t, allocations, 2)

	assert.Equal(t, uint(1), allocations[0].TicketID)
	assert.Equal(t, 30.0, allocations[0].Amount)
	assert.Equal(t, 0.0, allocations[0].BalanceAfter)

	assert.Equal(t, uint(2), allocations[1].TicketID)
	assert.Equal(t, 30.0, allocations[1].Amount)
	assert.Equal(t, 20.0, allocations[1].BalanceAfter)

	// First ticket fully settled, second partial, third untouched.
	assert.Equal(t, 0.0, tickets[0].AmountPending)
	assert.Equal(t, 20.0, tickets[1].AmountPending)
	assert.Equal(t, 20.0, tickets[2].AmountPending)
}

func TestAllocatePaymentExcess(t *testing.T) {
	tickets := closedTickets(30, 50)

	allocations, applied, excess := allocatePayment(tickets, 100)

	assert.Equal(t, 80.0, applied)
	assert.Equal(t, 20.0, excess)
	assert.Len(t, allocations, 2)

	for _, a := range allocations {
		assert.Equal(t, 0.0, a.BalanceAfter)
	}
	assert.Equal(t, 0.0, tickets[0].AmountPending)
	assert.Equal(t, 0.0, tickets[1].AmountPending)
}

func TestAllocatePaymentExactSettle(t *testing.T) {
	tickets := closedTickets(25, 25)

	allocations, applied, excess := allocatePayment(tickets, 50)

	assert.Equal(t, 50.0, applied)
	assert.Equal(t, 0.0, excess)
	assert.Len(t, allocations, 2)
}

func TestAllocatePaymentSkipsSettledTickets(t *testing.T) {
	tickets := closedTickets(0, 40)

	allocations, applied, excess := allocatePayment(tickets, 10)

	assert.Len(t, allocations, 1)
	assert.Equal(t, uint(2), allocations[0].TicketID)
	assert.Equal(t, 10.0, applied)
	assert.Equal(t, 0.0, excess)
	assert.Equal(t, 30.0, tickets[1].AmountPending)
}

func TestAllocatePaymentNoTickets(t *testing.T) {
	allocations, applied, excess := allocatePayment(nil, 75)

	assert.Empty(t, allocations)
	assert.Equal(t, 0.0, applied)
	assert.Equal(t, 75.0, excess)
}

func TestAllocatePaymentConservation(t *testing.T) {
	tickets := closedTickets(12.5, 40, 7.5, 100)

	allocations, applied, excess := allocatePayment(tickets, 55)

	var allocated float64
	for _, a := range allocations {
		allocated += a.Amount
		assert.GreaterOrEqual(t, a.BalanceAfter, 0.0)
		assert.Equal(t, a.BalanceBefore-a.Amount, a.BalanceAfter)
	}

	assert.Equal(t, applied, allocated)
	assert.Equal(t, 55.0, applied+excess)
	for _, ticket := range tickets {
		assert.GreaterOrEqual(t, ticket.AmountPending, 0.0)
	}
}
