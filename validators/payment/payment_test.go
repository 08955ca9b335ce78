package paymentValidators

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestSettlePaymentValidator(t *testing.T) {
	app := fiber.New()
	app.Post("/pay", SettlePayment(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	post := func(body string) int {
		req := httptest.NewRequest("POST", "/pay", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		assert.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, post(`{"amount":60}`))
	assert.Equal(t, fiber.StatusOK, post(`{"amount":0.01}`))

	assert.Equal(t, fiber.StatusUnprocessableEntity, post(`{"amount":0}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, post(`{"amount":-10}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, post(`{}`))
}
