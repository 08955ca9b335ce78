package ticketController

import (
	"log"
	"strings"
	"time"

	"helpti/config"
	"helpti/database"
	"helpti/middleware"
	"helpti/models"
	"helpti/utils"
	ticketValidators "helpti/validators/ticket"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// noteAuthorType maps the session role onto the timeline author types.
func noteAuthorType(role string) string {
	switch role {
	case models.RoleTecnico, models.RoleAdmin, models.RolePrestadora:
		return models.AuthorTecnico
	}
	return models.AuthorCliente
}

// canAccessTicket scopes single-ticket reads and notes. Technicians and
// administrators see the whole queue, managers their own company's
// tickets, clients only tickets they opened.
func canAccessTicket(role string, userId, companyId uint, ticket *models.Ticket) bool {
	if middleware.HasCapability(role, middleware.CapAssignTicket) {
		return true
	}
	if middleware.HasCapability(role, middleware.CapViewCompanyTickets) {
		return ticket.CompanyID == companyId
	}
	return ticket.ClientID == userId
}

// CreateTicket handles the multipart intake: ticket fields, optional
// coordinates and optional photo attachments in one request.
func CreateTicket(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedCreateTicket").(*ticketValidators.CreateTicketData)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	ticket := models.Ticket{
		Title:       reqData.Title,
		Description: reqData.Description,
		Status:      models.TicketOpen,
		Priority:    reqData.Priority,
		Category:    reqData.Category,
		ClientID:    user.ID,
		CompanyID:   user.CompanyID,
		Latitude:    reqData.Latitude,
		Longitude:   reqData.Longitude,
	}

	db := database.Database.Db
	tx := db.Begin()

	if err := tx.Create(&ticket).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create ticket!", nil)
	}

	// Photos are optional; intake succeeds without them.
	if form, err := c.MultipartForm(); err == nil && form != nil {
		for _, file := range form.File["photos"] {
			storedName, err := utils.SaveUploadedFile(file, config.AppConfig.UploadDir)
			if err != nil {
				tx.Rollback()
				log.Printf("Error saving attachment %s: %v", file.Filename, err)
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to store attachment!", nil)
			}

			attachment := models.Attachment{
				TicketID:     ticket.ID,
				StoredName:   storedName,
				OriginalName: file.Filename,
				MimeType:     file.Header.Get("Content-Type"),
				Size:         file.Size,
			}
			if err := tx.Create(&attachment).Error; err != nil {
				tx.Rollback()
				return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record attachment!", nil)
			}
		}
	}

	tx.Commit()

	// Resolve a display address for the coordinates off the request path.
	if ticket.Latitude != nil && ticket.Longitude != nil {
		go utils.ResolveTicketLocation(ticket.ID, *ticket.Latitude, *ticket.Longitude)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Ticket created successfully!", ticket)
}

// GetTicket returns the full aggregate in one call: ticket, client,
// technician, notes oldest-first and attachments.
func GetTicket(c *fiber.Ctx) error {
	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	var ticket models.Ticket
	if err := database.Database.Db.
		Preload("Client").
		Preload("Technician").
		Preload("Technician.Company").
		Preload("Notes", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Attachments").
		Where("id = ? AND is_deleted = false", ticketId).
		First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	role, _ := c.Locals("role").(string)
	userId, _ := c.Locals("userId").(uint)
	companyId, _ := c.Locals("companyId").(uint)

	// Non-owners get the same answer as a missing ticket.
	if !canAccessTicket(role, userId, companyId, &ticket) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	// Location is a management-only affordance.
	if !middleware.HasCapability(role, middleware.CapViewLocation) {
		ticket.Latitude = nil
		ticket.Longitude = nil
		ticket.LocationLabel = ""
	}

	ticket.Client.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket fetched successfully!", ticket)
}

// TicketList lists the caller's own tickets (client view).
func TicketList(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page     *int    `query:"page"`
		Limit    *int    `query:"limit"`
		Status   *string `query:"status"`
		Priority *string `query:"priority"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Ticket{}).Where("client_id = ? AND is_deleted = false", userId)

	if reqData.Status != nil {
		db = db.Where("status = ?", strings.ToUpper(*reqData.Status))
	}
	if reqData.Priority != nil {
		db = db.Where("priority = ?", strings.ToUpper(*reqData.Priority))
	}

	var total int64
	db.Count(&total)

	var tickets []models.Ticket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).
		Preload("Technician").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// CompanyTicketList lists all tickets of one company (management view).
func CompanyTicketList(c *fiber.Ctx) error {
	companyId, err := c.ParamsInt("id")
	if err != nil || companyId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid company id!", nil)
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page     *int    `query:"page"`
		Limit    *int    `query:"limit"`
		Status   *string `query:"status"`
		Priority *string `query:"priority"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := 1
	limit := 10
	if reqData.Page != nil {
		page = *reqData.Page
	}
	if reqData.Limit != nil {
		limit = *reqData.Limit
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Ticket{}).Where("company_id = ? AND is_deleted = false", companyId)

	if reqData.Status != nil {
		db = db.Where("status = ?", strings.ToUpper(*reqData.Status))
	}
	if reqData.Priority != nil {
		db = db.Where("priority = ?", strings.ToUpper(*reqData.Priority))
	}

	var total int64
	db.Count(&total)

	var tickets []models.Ticket
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).
		Preload("Client").Preload("Technician").Find(&tickets).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch tickets!", nil)
	}

	for i := range tickets {
		tickets[i].Client.Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tickets fetched successfully!", fiber.Map{
		"tickets": tickets,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// AddNote appends a timeline entry. Author identity comes from the
// session. Closed tickets take no further notes.
func AddNote(c *fiber.Ctx) error {
	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedAddNote").(*struct {
		Text string `json:"text"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.Ticket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", ticketId).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	role, _ := c.Locals("role").(string)
	userId, _ := c.Locals("userId").(uint)
	companyId, _ := c.Locals("companyId").(uint)

	if !canAccessTicket(role, userId, companyId, &ticket) {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == models.TicketClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is closed and no longer accepts notes!", nil)
	}

	authorName, _ := c.Locals("name").(string)
	if authorName == "" {
		authorName, _ = c.Locals("email").(string)
	}

	note := models.Note{
		TicketID:   ticket.ID,
		Text:       reqData.Text,
		AuthorName: authorName,
		AuthorType: noteAuthorType(role),
	}

	if err := database.Database.Db.Create(&note).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to add note!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Note added successfully!", note)
}

// TransferTicket reassigns the ticket to another technician.
func TransferTicket(c *fiber.Ctx) error {
	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedTransfer").(*struct {
		TechnicianID uint `json:"technicianId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.Ticket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", ticketId).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == models.TicketClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Closed tickets cannot be transferred!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.TechnicianID).First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Technician not found!", nil)
	}

	ticket.TechnicianID = &technician.ID
	if ticket.Status == models.TicketOpen {
		ticket.Status = models.TicketInProgress
	}

	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to transfer ticket!", nil)
	}

	note := models.Note{
		TicketID:   ticket.ID,
		Text:       "Ticket transferred to " + technician.Name + ".",
		AuthorName: "system",
		AuthorType: models.AuthorSystem,
	}
	if err := database.Database.Db.Create(&note).Error; err != nil {
		log.Printf("Error recording transfer note for ticket %d: %v", ticket.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket transferred successfully!", ticket)
}

// AssignTicket lets a technician take an unassigned ticket into progress.
func AssignTicket(c *fiber.Ctx) error {
	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedTransfer").(*struct {
		TechnicianID uint `json:"technicianId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var ticket models.Ticket
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", ticketId).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == models.TicketClosed || ticket.Status == models.TicketCanceled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is no longer open for attendance!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Where("id = ? AND status = ? AND is_deleted = false",
		reqData.TechnicianID, models.TechnicianActive).First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Active technician not found!", nil)
	}

	ticket.TechnicianID = &technician.ID
	ticket.Status = models.TicketInProgress

	if err := database.Database.Db.Save(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to assign ticket!", nil)
	}

	note := models.Note{
		TicketID:   ticket.ID,
		Text:       technician.Name + " started attending this ticket.",
		AuthorName: "system",
		AuthorType: models.AuthorSystem,
	}
	if err := database.Database.Db.Create(&note).Error; err != nil {
		log.Printf("Error recording assignment note for ticket %d: %v", ticket.ID, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket assigned successfully!", ticket)
}

// CloseTicket finalizes a ticket: resolution text plus a category/
// subcategory pair, fee snapshot and payable opening in one transaction.
func CloseTicket(c *fiber.Ctx) error {
	ticketId, err := c.ParamsInt("id")
	if err != nil || ticketId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid ticket id!", nil)
	}

	reqData, ok := c.Locals("validatedCloseTicket").(*struct {
		Resolution    string `json:"resolution"`
		CategoryID    uint   `json:"categoryId"`
		SubCategoryID uint   `json:"subCategoryId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var ticket models.Ticket
	if err := db.Where("id = ? AND is_deleted = false", ticketId).First(&ticket).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Ticket not found!", nil)
	}

	if ticket.Status == models.TicketClosed {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Ticket is already closed!", nil)
	}

	var subCategory models.SubCategory
	if err := db.Where("id = ? AND is_deleted = false", reqData.SubCategoryID).First(&subCategory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Subcategory not found!", nil)
	}

	// The pairing the finalize selector enforces client-side is authoritative here.
	if subCategory.CategoryID != reqData.CategoryID {
		return middleware.ValidationErrorResponse(c, map[string]string{
			"subCategoryId": "Subcategory does not belong to the selected category!",
		})
	}

	now := time.Now()

	ticket.Status = models.TicketClosed
	ticket.ClosedAt = &now
	ticket.Resolution = reqData.Resolution
	ticket.ResolutionCategoryID = &reqData.CategoryID
	ticket.ResolutionSubCategoryID = &reqData.SubCategoryID

	// Closing against a technician opens the payable at the company fee.
	// A ticket without a resolvable company closes with no payable.
	if ticket.TechnicianID != nil {
		var company models.Company
		if err := db.Where("id = ? AND is_deleted = false", ticket.CompanyID).First(&company).Error; err == nil {
			ticket.FeeAmount = company.FeePerTicket
			ticket.AmountPending = company.FeePerTicket
			ticket.AmountPaid = 0
		}
	}

	tx := db.Begin()

	if err := tx.Save(&ticket).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	note := models.Note{
		TicketID:   ticket.ID,
		Text:       "Ticket closed. Resolution: " + reqData.Resolution,
		AuthorName: "system",
		AuthorType: models.AuthorSystem,
	}
	if err := tx.Create(&note).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to close ticket!", nil)
	}

	tx.Commit()

	go func(ticket models.Ticket) {
		var client models.User
		if err := database.Database.Db.Where("id = ?", ticket.ClientID).First(&client).Error; err != nil {
			return
		}
		if err := utils.SendTicketClosedEmail(client.Email, client.Name, ticket.Title, ticket.Resolution, ticket.ID); err != nil {
			log.Printf("Error sending closure email for ticket %d: %v", ticket.ID, err)
		}
	}(ticket)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ticket closed successfully!", ticket)
}
