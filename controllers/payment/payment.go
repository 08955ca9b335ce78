package paymentController

import (
	"errors"
	"time"

	"helpti/database"
	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errNoOutstanding aborts a settlement transaction that found nothing to
// settle; it maps to a 400, not a 500.
var errNoOutstanding = errors.New("no outstanding balance")

// pendingTicketView is a closed ticket's balance as the settlement
// screens consume it.
type pendingTicketView struct {
	models.Ticket
	SettlementStatus string `json:"settlementStatus"`
}

func pendingView(tickets []models.Ticket) []pendingTicketView {
	views := make([]pendingTicketView, 0, len(tickets))
	for _, t := range tickets {
		t.Client.Password = ""
		views = append(views, pendingTicketView{
			Ticket:           t,
			SettlementStatus: models.SettlementStatus(t.AmountPending, t.FeeAmount),
		})
	}
	return views
}

func outstandingTickets(db *gorm.DB, scopeColumn string, scopeId int) ([]models.Ticket, error) {
	var tickets []models.Ticket
	err := db.
		Where(scopeColumn+" = ? AND status = ? AND amount_pending > 0 AND is_deleted = false",
			scopeId, models.TicketClosed).
		Order("closed_at ASC").
		Find(&tickets).Error
	return tickets, err
}

// PendingByTechnician lists one technician's unsettled closed tickets,
// oldest close first, with the running total owed.
func PendingByTechnician(c *fiber.Ctx) error {
	technicianId, err := c.ParamsInt("id")
	if err != nil || technicianId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid technician id!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", technicianId).First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Technician not found!", nil)
	}

	tickets, err := outstandingTickets(database.Database.Db.Preload("Client"), "technician_id", technicianId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending tickets!", nil)
	}

	var totalOwed float64
	for _, t := range tickets {
		totalOwed += t.AmountPending
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending tickets fetched successfully!", fiber.Map{
		"technician": technician,
		"tickets":    pendingView(tickets),
		"totalOwed":  totalOwed,
	})
}

// PendingByCompany lists a company's unsettled closed tickets across all
// of its technicians.
func PendingByCompany(c *fiber.Ctx) error {
	companyId, err := c.ParamsInt("id")
	if err != nil || companyId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", companyId).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	tickets, err := outstandingTickets(database.Database.Db.Preload("Client").Preload("Technician"), "company_id", companyId)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch pending tickets!", nil)
	}

	var totalOwed float64
	for _, t := range tickets {
		totalOwed += t.AmountPending
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Pending tickets fetched successfully!", fiber.Map{
		"company":   company,
		"tickets":   pendingView(tickets),
		"totalOwed": totalOwed,
	})
}

func settle(c *fiber.Ctx, scopeType, scopeColumn string, scopeId int) error {
	adminId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedSettle").(*struct {
		Amount float64 `json:"amount"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var payment models.Payment
	var allocations []models.PaymentAllocation
	var applied, excess float64

	err := db.Transaction(func(tx *gorm.DB) error {
		// Balances are read and rewritten under row locks so concurrent
		// settlements cannot double-apply the same pending amount.
		var tickets []models.Ticket
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(scopeColumn+" = ? AND status = ? AND amount_pending > 0 AND is_deleted = false",
				scopeId, models.TicketClosed).
			Order("closed_at ASC").
			Find(&tickets).Error; err != nil {
			return err
		}

		if len(tickets) == 0 {
			return errNoOutstanding
		}

		allocations, applied, excess = allocatePayment(tickets, reqData.Amount)

		payment = models.Payment{
			ScopeType:     scopeType,
			Amount:        reqData.Amount,
			AppliedAmount: applied,
			ExcessAmount:  excess,
			RegisteredBy:  adminId,
			PaymentDate:   time.Now(),
		}
		if scopeType == models.PaymentScopeTechnician {
			payment.TechnicianID = uint(scopeId)
		} else {
			payment.CompanyID = uint(scopeId)
		}

		if err := tx.Create(&payment).Error; err != nil {
			return err
		}
		for i := range allocations {
			allocations[i].PaymentID = payment.ID
			if err := tx.Create(&allocations[i]).Error; err != nil {
				return err
			}
			if err := tx.Model(&models.Ticket{}).Where("id = ?", allocations[i].TicketID).
				Updates(map[string]interface{}{
					"amount_pending": allocations[i].BalanceAfter,
					"amount_paid":    gorm.Expr("amount_paid + ?", allocations[i].Amount),
				}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if errors.Is(err, errNoOutstanding) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No outstanding balance to settle!", nil)
	}
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register payment!", nil)
	}

	payment.Allocations = allocations

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment registered successfully!", fiber.Map{
		"payment": payment,
		"applied": applied,
		"excess":  excess,
	})
}

// SettleTechnician applies a lump payment to one technician's oldest
// outstanding tickets.
func SettleTechnician(c *fiber.Ctx) error {
	technicianId, err := c.ParamsInt("id")
	if err != nil || technicianId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid technician id!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", technicianId).First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Technician not found!", nil)
	}

	return settle(c, models.PaymentScopeTechnician, "technician_id", technicianId)
}

// SettleCompany applies a lump payment across one company's outstanding
// tickets.
func SettleCompany(c *fiber.Ctx) error {
	companyId, err := c.ParamsInt("id")
	if err != nil || companyId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", companyId).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	return settle(c, models.PaymentScopeCompany, "company_id", companyId)
}

// PaymentHistory lists a technician's settlement ledger, newest first.
func PaymentHistory(c *fiber.Ctx) error {
	technicianId, err := c.ParamsInt("id")
	if err != nil || technicianId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid technician id!", nil)
	}

	var payments []models.Payment
	if err := database.Database.Db.
		Preload("Allocations").
		Where("technician_id = ? AND scope_type = ? AND is_deleted = false",
			technicianId, models.PaymentScopeTechnician).
		Order("payment_date DESC").
		Find(&payments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch payment history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment history fetched successfully!", payments)
}
