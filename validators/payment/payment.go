package paymentValidators

import (
	"helpti/middleware"

	"github.com/gofiber/fiber/v2"
)

// SettlePayment rejects non-positive amounts before anything reaches the
// database layer.
func SettlePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Amount float64 `json:"amount"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Amount <= 0 {
			errors["amount"] = "Payment amount must be greater than zero!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSettle", reqData)
		return c.Next()
	}
}
