package technicianController

import (
	"strings"

	"helpti/database"
	"helpti/middleware"
	"helpti/models"
	"helpti/utils"

	"github.com/gofiber/fiber/v2"
)

// TechnicianList returns every registered technician with its company.
func TechnicianList(c *fiber.Ctx) error {
	var technicians []models.Technician
	if err := database.Database.Db.Preload("Company").
		Where("is_deleted = false").
		Order("name ASC").
		Find(&technicians).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch technicians!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Technicians fetched successfully!", technicians)
}

// ActiveTechnicianList returns only technicians eligible for assignment.
func ActiveTechnicianList(c *fiber.Ctx) error {
	var technicians []models.Technician
	if err := database.Database.Db.Preload("Company").
		Where("status = ? AND is_deleted = false", models.TechnicianActive).
		Order("name ASC").
		Find(&technicians).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch technicians!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Technicians fetched successfully!", technicians)
}

func GetTechnician(c *fiber.Ctx) error {
	technicianId, err := c.ParamsInt("id")
	if err != nil || technicianId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid technician id!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Preload("Company").
		Where("id = ? AND is_deleted = false", technicianId).
		First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Technician not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Technician fetched successfully!", technician)
}

func CreateTechnician(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateTechnician").(*struct {
		Name        string   `json:"name"`
		Email       string   `json:"email"`
		Phone       string   `json:"phone"`
		Specialties []string `json:"specialties"`
		Status      *string  `json:"status"`
		CompanyID   uint     `json:"companyId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Technician
	if err := database.Database.Db.Where("email = ? AND is_deleted = false", reqData.Email).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "A technician with this email already exists!", nil)
	}

	var company models.Company
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.CompanyID).First(&company).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Company not found!", nil)
	}

	technician := models.Technician{
		Name:        reqData.Name,
		Email:       reqData.Email,
		Phone:       reqData.Phone,
		Specialties: utils.JoinSpecialties(reqData.Specialties),
		Status:      models.TechnicianActive,
		CompanyID:   reqData.CompanyID,
	}
	if reqData.Status != nil {
		technician.Status = strings.ToUpper(*reqData.Status)
	}

	if err := database.Database.Db.Create(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create technician!", nil)
	}

	technician.Company = company

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Technician created successfully!", technician)
}

// DeleteTechnician soft deletes. Ticket history keeps pointing at the row.
func DeleteTechnician(c *fiber.Ctx) error {
	technicianId, err := c.ParamsInt("id")
	if err != nil || technicianId < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid technician id!", nil)
	}

	var technician models.Technician
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", technicianId).First(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Technician not found!", nil)
	}

	technician.IsDeleted = true
	technician.Status = models.TechnicianInactive

	if err := database.Database.Db.Save(&technician).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete technician!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Technician deleted successfully!", nil)
}
