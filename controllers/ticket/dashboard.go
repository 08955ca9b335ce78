package ticketController

import (
	"helpti/database"
	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// statusCounts groups tickets of one scope by lifecycle state.
func statusCounts(scopeColumn string, scopeId int) (map[string]int64, int64) {
	type row struct {
		Status string
		Count  int64
	}

	var rows []row
	database.Database.Db.Model(&models.Ticket{}).
		Select("status, COUNT(*) as count").
		Where(scopeColumn+" = ? AND is_deleted = false", scopeId).
		Group("status").
		Scan(&rows)

	counts := make(map[string]int64)
	var total int64
	for _, r := range rows {
		counts[r.Status] = r.Count
		total += r.Count
	}
	return counts, total
}

// CompanyDashboard summarizes one company's ticket state and the total
// still owed for its closed tickets.
func CompanyDashboard(c *fiber.Ctx) error {
	companyId, err := c.ParamsInt("id")
	if err != nil || companyId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", companyId).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	counts, total := statusCounts("company_id", companyId)

	var openedToday int64
	database.Database.Db.Model(&models.Ticket{}).
		Where("company_id = ? AND is_deleted = false AND created_at >= ?", companyId, now.BeginningOfDay()).
		Count(&openedToday)

	var totalOwed float64
	database.Database.Db.Model(&models.Ticket{}).
		Where("company_id = ? AND status = ? AND is_deleted = false", companyId, models.TicketClosed).
		Select("COALESCE(SUM(amount_pending), 0)").
		Scan(&totalOwed)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"company":      company,
		"total":        total,
		"byStatus":     counts,
		"openedToday":  openedToday,
		"totalOwed":    totalOwed,
		"feePerTicket": company.FeePerTicket,
	})
}

// TechnicianDashboard summarizes one technician's queue and outstanding
// earnings.
func TechnicianDashboard(c *fiber.Ctx) error {
	technicianId, err := c.ParamsInt("id")
	if err != nil || technicianId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid technician id!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Preload("Company").
		Where("id = ? AND is_deleted = false", technicianId).First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Technician not found!", nil)
	}

	counts, total := statusCounts("technician_id", technicianId)

	var closedToday int64
	database.Database.Db.Model(&models.Ticket{}).
		Where("technician_id = ? AND status = ? AND is_deleted = false AND closed_at >= ?",
			technicianId, models.TicketClosed, now.BeginningOfDay()).
		Count(&closedToday)

	var outstanding float64
	database.Database.Db.Model(&models.Ticket{}).
		Where("technician_id = ? AND status = ? AND is_deleted = false", technicianId, models.TicketClosed).
		Select("COALESCE(SUM(amount_pending), 0)").
		Scan(&outstanding)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"technician":  technician,
		"total":       total,
		"byStatus":    counts,
		"closedToday": closedToday,
		"outstanding": outstanding,
	})
}
