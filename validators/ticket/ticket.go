package ticketValidators

import (
	"strconv"
	"strings"

	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
)

// CreateTicketData is the multipart intake payload after validation.
type CreateTicketData struct {
	Title       string
	Description string
	Priority    string
	Category    string
	Latitude    *float64
	Longitude   *float64
}

// CreateTicket validates the multipart intake form. The request must be
// rejected here, before any file or row is written.
func CreateTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := &CreateTicketData{
			Title:       strings.TrimSpace(c.FormValue("title")),
			Description: strings.TrimSpace(c.FormValue("description")),
			Priority:    strings.ToUpper(strings.TrimSpace(c.FormValue("priority"))),
			Category:    strings.ToUpper(strings.TrimSpace(c.FormValue("category"))),
		}

		errors := make(map[string]string)

		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 150 {
			errors["title"] = "Title must not exceed 150 characters!"
		}

		if reqData.Description == "" {
			errors["description"] = "Description is required!"
		}

		if reqData.Priority == "" {
			reqData.Priority = models.PriorityMedium
		} else if !models.ValidPriority(reqData.Priority) {
			errors["priority"] = "Invalid priority! Allowed: LOW, MEDIUM, HIGH, CRITICAL"
		}

		if reqData.Category == "" {
			reqData.Category = models.CategoryOther
		} else if !models.ValidCategory(reqData.Category) {
			errors["category"] = "Invalid category!"
		}

		// Coordinates are optional but must come as a pair.
		latStr := strings.TrimSpace(c.FormValue("latitude"))
		lngStr := strings.TrimSpace(c.FormValue("longitude"))
		if (latStr == "") != (lngStr == "") {
			errors["location"] = "Latitude and longitude must be sent together!"
		} else if latStr != "" {
			lat, latErr := strconv.ParseFloat(latStr, 64)
			lng, lngErr := strconv.ParseFloat(lngStr, 64)
			if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
				errors["location"] = "Invalid coordinates!"
			} else {
				reqData.Latitude = &lat
				reqData.Longitude = &lng
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateTicket", reqData)
		return c.Next()
	}
}

func TicketList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page     *int    `query:"page"`
			Limit    *int    `query:"limit"`
			Status   *string `query:"status"`
			Priority *string `query:"priority"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		errors := make(map[string]string)

		if reqData.Page != nil && *reqData.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if reqData.Limit != nil && *reqData.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if reqData.Status != nil && !models.ValidStatus(strings.ToUpper(*reqData.Status)) {
			errors["status"] = "Invalid status!"
		}
		if reqData.Priority != nil && !models.ValidPriority(strings.ToUpper(*reqData.Priority)) {
			errors["priority"] = "Invalid priority! Must be one of: LOW, MEDIUM, HIGH, CRITICAL."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedList", reqData)
		return c.Next()
	}
}

func AddNote() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Text string `json:"text"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Text = strings.TrimSpace(reqData.Text)
		if reqData.Text == "" {
			errors["text"] = "Note text is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedAddNote", reqData)
		return c.Next()
	}
}

func TransferTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			TechnicianID uint `json:"technicianId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.TechnicianID == 0 {
			errors["technicianId"] = "Technician ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTransfer", reqData)
		return c.Next()
	}
}

func CloseTicket() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Resolution    string `json:"resolution"`
			CategoryID    uint   `json:"categoryId"`
			SubCategoryID uint   `json:"subCategoryId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Resolution = strings.TrimSpace(reqData.Resolution)
		if reqData.Resolution == "" {
			errors["resolution"] = "Resolution text is required!"
		}
		if reqData.CategoryID == 0 {
			errors["categoryId"] = "Category is required!"
		}
		if reqData.SubCategoryID == 0 {
			errors["subCategoryId"] = "Subcategory is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCloseTicket", reqData)
		return c.Next()
	}
}
