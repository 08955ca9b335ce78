package middleware

import (
	"helpti/models"

	"github.com/gofiber/fiber/v2"
)

// Capability names every role-gated action in the system. All gating goes
// through HasCapability so the navigation menu and the route guards can
// never disagree about what a role may do.
type Capability string

const (
	CapCreateTicket       Capability = "ticket:create"
	CapViewOwnTickets     Capability = "ticket:view-own"
	CapViewCompanyTickets Capability = "ticket:view-company"
	CapAddNote            Capability = "ticket:add-note"
	CapAssignTicket       Capability = "ticket:assign"
	CapTransferTicket     Capability = "ticket:transfer"
	CapCloseTicket        Capability = "ticket:close"
	CapViewLocation       Capability = "ticket:view-location"
	CapSettlePayments     Capability = "payment:settle"
	CapViewPayments       Capability = "payment:view"
	CapManageTechnicians  Capability = "technician:manage"
	CapManageClients      Capability = "client:manage"
	CapManageCompanies    Capability = "company:manage"
	CapManageCategories   Capability = "category:manage"
	CapViewDashboard      Capability = "dashboard:view"
)

// roleCapabilities is the single source of truth for role gating.
var roleCapabilities = map[string][]Capability{
	models.RoleAdmin: {
		CapCreateTicket, CapViewOwnTickets, CapViewCompanyTickets, CapAddNote,
		CapAssignTicket, CapTransferTicket, CapCloseTicket, CapViewLocation,
		CapSettlePayments, CapViewPayments, CapManageTechnicians,
		CapManageClients, CapManageCompanies, CapManageCategories,
		CapViewDashboard,
	},
	models.RolePrestadora: {
		CapViewOwnTickets, CapViewCompanyTickets, CapAddNote,
		CapAssignTicket, CapTransferTicket, CapCloseTicket, CapViewLocation,
		CapSettlePayments, CapViewPayments, CapManageTechnicians,
		CapManageClients, CapViewDashboard,
	},
	models.RoleTecnico: {
		CapViewOwnTickets, CapAddNote, CapAssignTicket, CapTransferTicket,
		CapCloseTicket, CapViewLocation, CapViewDashboard,
	},
	models.RoleGestor: {
		CapCreateTicket, CapViewOwnTickets, CapViewCompanyTickets, CapAddNote,
		CapViewDashboard,
	},
	models.RoleCliente: {
		CapCreateTicket, CapViewOwnTickets, CapAddNote,
	},
}

// HasCapability reports whether role may perform cap. Unknown roles carry
// the CLIENTE capability set.
func HasCapability(role string, cap Capability) bool {
	caps, ok := roleCapabilities[role]
	if !ok {
		caps = roleCapabilities[models.RoleCliente]
	}
	for _, c := range caps {
		if c == cap {
			return true
		}
	}
	return false
}

// RequireCapability guards a route behind one capability. Must run after
// JWTMiddleware so the normalized role is in Locals.
func RequireCapability(cap Capability) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  false,
				"message": "Unauthorized: role not resolved",
				"data":    nil,
			})
		}

		if !HasCapability(role, cap) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"status":  false,
				"message": "You do not have permission to access this resource!",
				"data":    nil,
			})
		}

		return c.Next()
	}
}

// MenuItem is one navigation entry shown to a role.
type MenuItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
	Icon  string `json:"icon"`
}

var menuConfig = map[string][]MenuItem{
	models.RoleAdmin: {
		{Label: "Companies", Path: "/admin/companies", Icon: "building"},
		{Label: "Technicians", Path: "/admin/technicians", Icon: "user-cog"},
		{Label: "Clients", Path: "/admin/clients", Icon: "users"},
		{Label: "Tickets", Path: "/tickets", Icon: "ticket"},
	},
	models.RolePrestadora: {
		{Label: "Tickets", Path: "/tickets", Icon: "ticket"},
		{Label: "Technicians", Path: "/admin/technicians", Icon: "user-cog"},
		{Label: "Clients", Path: "/admin/clients", Icon: "users"},
		{Label: "Companies", Path: "/admin/companies", Icon: "building"},
	},
	models.RoleTecnico: {
		{Label: "My Queue", Path: "/tickets", Icon: "ticket"},
	},
	models.RoleGestor: {
		{Label: "Team Tickets", Path: "/tickets", Icon: "ticket"},
		{Label: "My Staff", Path: "/client/technicians", Icon: "users"},
		{Label: "New Ticket", Path: "/tickets/new", Icon: "plus-circle"},
	},
	models.RoleCliente: {
		{Label: "My Tickets", Path: "/tickets", Icon: "ticket"},
		{Label: "Open New", Path: "/tickets/new", Icon: "file-text"},
	},
}

// MenuFor returns the ordered navigation entries for role. The mapping is
// total: unknown roles resolve to the CLIENTE menu.
func MenuFor(role string) []MenuItem {
	if items, ok := menuConfig[role]; ok {
		return items
	}
	return menuConfig[models.RoleCliente]
}
