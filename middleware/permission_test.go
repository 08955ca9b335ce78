package middleware

import (
	"testing"

	"helpti/models"

	"github.com/stretchr/testify/assert"
)

func TestHasCapabilityAdmin(t *testing.T) {
	for _, cap := range []Capability{
		CapManageCompanies, CapManageTechnicians, CapSettlePayments,
		CapCloseTicket, CapViewLocation, CapViewDashboard,
	} {
		assert.True(t, HasCapability(models.RoleAdmin, cap), string(cap))
	}
}

func TestHasCapabilityClienteLimits(t *testing.T) {
	assert.True(t, HasCapability(models.RoleCliente, CapCreateTicket))
	assert.True(t, HasCapability(models.RoleCliente, CapViewOwnTickets))
	assert.True(t, HasCapability(models.RoleCliente, CapAddNote))

	assert.False(t, HasCapability(models.RoleCliente, CapCloseTicket))
	assert.False(t, HasCapability(models.RoleCliente, CapSettlePayments))
	assert.False(t, HasCapability(models.RoleCliente, CapViewLocation))
	assert.False(t, HasCapability(models.RoleCliente, CapManageCompanies))
}

func TestHasCapabilityTecnico(t *testing.T) {
	assert.True(t, HasCapability(models.RoleTecnico, CapAssignTicket))
	assert.True(t, HasCapability(models.RoleTecnico, CapTransferTicket))
	assert.True(t, HasCapability(models.RoleTecnico, CapCloseTicket))
	assert.True(t, HasCapability(models.RoleTecnico, CapViewLocation))

	assert.False(t, HasCapability(models.RoleTecnico, CapSettlePayments))
	assert.False(t, HasCapability(models.RoleTecnico, CapManageTechnicians))
}

// Unknown roles fall back to the least privileged set.
func TestHasCapabilityUnknownRole(t *testing.T) {
	assert.True(t, HasCapability("SUPERVISOR", CapCreateTicket))
	assert.False(t, HasCapability("SUPERVISOR", CapCloseTicket))
	assert.False(t, HasCapability("", CapManageCompanies))
}

func TestMenuForIsTotal(t *testing.T) {
	for _, role := range []string{
		models.RoleAdmin, models.RoleGestor, models.RoleTecnico,
		models.RoleCliente, models.RolePrestadora,
	} {
		assert.NotEmpty(t, MenuFor(role), role)
	}

	assert.Equal(t, MenuFor(models.RoleCliente), MenuFor("SOMETHING_NEW"))
	assert.Equal(t, MenuFor(models.RoleCliente), MenuFor(""))
}
