package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSettlementStatus(t *testing.T) {
	assert.Equal(t, SettlementPaid, SettlementStatus(0, 50))
	assert.Equal(t, SettlementPartial, SettlementStatus(20, 50))
	assert.Equal(t, SettlementPending, SettlementStatus(50, 50))

	// Zero-fee tickets never owe anything.
	assert.Equal(t, SettlementPaid, SettlementStatus(0, 0))
}

func TestNextPriority(t *testing.T) {
	assert.Equal(t, PriorityMedium, NextPriority(PriorityLow))
	assert.Equal(t, PriorityHigh, NextPriority(PriorityMedium))
	assert.Equal(t, PriorityCritical, NextPriority(PriorityHigh))
	assert.Equal(t, PriorityCritical, NextPriority(PriorityCritical))
}
