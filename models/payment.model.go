package models

import (
	"time"

	"gorm.io/gorm"
)

// Settlement scope of a payment.
const (
	PaymentScopeTechnician = "TECHNICIAN"
	PaymentScopeCompany    = "COMPANY"
)

// Per-ticket settlement status, derived from the pending balance against
// the fee snapshot taken when the ticket was closed.
const (
	SettlementPaid    = "Paid"
	SettlementPartial = "Partial"
	SettlementPending = "Pending"
)

// Payment is one ledger entry for a lump settlement. Amount is what was
// requested, AppliedAmount what the outstanding balances absorbed, and
// ExcessAmount the ignored remainder. Append-only.
type Payment struct {
	gorm.Model
	ScopeType     string    `gorm:"type:varchar(20);not null" json:"scopeType"`
	TechnicianID  uint      `gorm:"index;default:0" json:"technicianId,omitempty"`
	CompanyID     uint      `gorm:"index;default:0" json:"companyId,omitempty"`
	Amount        float64   `gorm:"not null" json:"amount"`
	AppliedAmount float64   `gorm:"not null" json:"appliedAmount"`
	ExcessAmount  float64   `gorm:"not null;default:0" json:"excessAmount"`
	RegisteredBy  uint      `gorm:"not null" json:"registeredBy"`
	PaymentDate   time.Time `gorm:"not null" json:"paymentDate"`
	IsDeleted     bool      `gorm:"default:false" json:"-"`

	Allocations []PaymentAllocation `gorm:"foreignKey:PaymentID" json:"allocations"`
}

// PaymentAllocation records how much of a payment landed on one ticket,
// making the oldest-first allocation auditable after the fact.
type PaymentAllocation struct {
	gorm.Model
	PaymentID     uint    `gorm:"index;not null" json:"paymentId"`
	TicketID      uint    `gorm:"index;not null" json:"ticketId"`
	Amount        float64 `gorm:"not null" json:"amount"`
	BalanceBefore float64 `gorm:"not null" json:"balanceBefore"`
	BalanceAfter  float64 `gorm:"not null" json:"balanceAfter"`
}

// SettlementStatus derives the display status of a closed ticket's balance.
func SettlementStatus(pending, fee float64) string {
	if pending <= 0 {
		return SettlementPaid
	}
	if pending < fee {
		return SettlementPartial
	}
	return SettlementPending
}
