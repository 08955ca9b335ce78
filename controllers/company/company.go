package companyController

import (
	"helpti/database"
	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
)

func CompanyList(c *fiber.Ctx) error {
	var companies []models.Company
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("name ASC").
		Find(&companies).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch companies!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Companies fetched successfully!", companies)
}

func CreateCompany(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCompany").(*struct {
		Name         string  `json:"name"`
		TradeName    string  `json:"tradeName"`
		FeePerTicket float64 `json:"feePerTicket"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Company
	if err := database.Database.Db.Where("name = ? AND is_deleted = false", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A company with this name already exists!", nil)
	}

	company := models.Company{
		Name:         reqData.Name,
		TradeName:    reqData.TradeName,
		FeePerTicket: reqData.FeePerTicket,
	}

	if err := database.Database.Db.Create(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create company!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Company created successfully!", company)
}
