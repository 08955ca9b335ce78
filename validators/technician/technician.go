package technicianValidators

import (
	"regexp"
	"strings"

	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func CreateTechnician() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string   `json:"name"`
			Email       string   `json:"email"`
			Phone       string   `json:"phone"`
			Specialties []string `json:"specialties"`
			Status      *string  `json:"status"`
			CompanyID   uint     `json:"companyId"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}

		reqData.Email = strings.TrimSpace(reqData.Email)
		if reqData.Email == "" {
			errors["email"] = "Email is required!"
		} else if !emailRegex.MatchString(reqData.Email) {
			errors["email"] = "Invalid email address!"
		}

		if reqData.CompanyID == 0 {
			errors["companyId"] = "Company is required!"
		}

		if reqData.Status != nil {
			valid := map[string]bool{
				models.TechnicianActive:   true,
				models.TechnicianInactive: true,
				models.TechnicianOnLeave:  true,
			}
			if !valid[strings.ToUpper(*reqData.Status)] {
				errors["status"] = "Invalid status! Must be one of: ACTIVE, INACTIVE, ON_LEAVE."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateTechnician", reqData)
		return c.Next()
	}
}
