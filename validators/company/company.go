package companyValidators

import (
	"strings"

	"helpti/middleware"

	"github.com/gofiber/fiber/v2"
)

func CreateCompany() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name         string  `json:"name"`
			TradeName    string  `json:"tradeName"`
			FeePerTicket float64 `json:"feePerTicket"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.Name = strings.TrimSpace(reqData.Name)
		if reqData.Name == "" {
			errors["name"] = "Name is required!"
		}
		if reqData.FeePerTicket < 0 {
			errors["feePerTicket"] = "Fee per ticket cannot be negative!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCreateCompany", reqData)
		return c.Next()
	}
}
