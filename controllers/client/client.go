package clientController

import (
	"helpti/config"
	"helpti/database"
	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// ClientList returns every client account without password hashes.
func ClientList(c *fiber.Ctx) error {
	var clients []models.User
	if err := database.Database.Db.
		Where("role = ? AND is_deleted = false", models.RoleCliente).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch clients!", nil)
	}

	for i := range clients {
		clients[i].Password = ""
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Clients fetched successfully!", clients)
}

// CreateClient registers a client account on behalf of an administrator.
func CreateClient(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateClient").(*struct {
		Name       string `json:"name"`
		Email      string `json:"email"`
		Phone      string `json:"phone"`
		Password   string `json:"password"`
		CompanyID  uint   `json:"companyId"`
		Department string `json:"department"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.User
	if err := database.Database.Db.Where("email = ? AND is_deleted = false", reqData.Email).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Email already registered!", nil)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to hash password!", nil)
	}

	client := models.User{
		Name:       reqData.Name,
		Email:      reqData.Email,
		Phone:      reqData.Phone,
		Password:   string(hashedPassword),
		Role:       models.RoleCliente,
		CompanyID:  reqData.CompanyID,
		Department: reqData.Department,
	}

	if err := database.Database.Db.Create(&client).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create client!", nil)
	}

	client.Password = ""

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Client created successfully!", client)
}
