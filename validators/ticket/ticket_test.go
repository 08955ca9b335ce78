package ticketValidators

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func formApp(handler fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Post("/t", handler, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func postForm(t *testing.T, app *fiber.App, values url.Values) int {
	req := httptest.NewRequest("POST", "/t", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func postJSON(t *testing.T, app *fiber.App, body string) int {
	req := httptest.NewRequest("POST", "/t", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp.StatusCode
}

func TestCreateTicketValidator(t *testing.T) {
	app := formApp(CreateTicket())

	assert.Equal(t, fiber.StatusOK, postForm(t, app, url.Values{
		"title":       {"Printer down"},
		"description": {"Second floor printer is jammed"},
	}))

	// Missing title
	assert.Equal(t, fiber.StatusUnprocessableEntity, postForm(t, app, url.Values{
		"description": {"No title here"},
	}))

	// Missing description
	assert.Equal(t, fiber.StatusUnprocessableEntity, postForm(t, app, url.Values{
		"title": {"Printer down"},
	}))

	// Bad priority
	assert.Equal(t, fiber.StatusUnprocessableEntity, postForm(t, app, url.Values{
		"title":       {"Printer down"},
		"description": {"jammed"},
		"priority":    {"URGENTISSIMO"},
	}))
}

func TestCreateTicketValidatorCoordinates(t *testing.T) {
	app := formApp(CreateTicket())

	// A full coordinate pair passes.
	assert.Equal(t, fiber.StatusOK, postForm(t, app, url.Values{
		"title":       {"No signal"},
		"description": {"Wi-Fi down in warehouse"},
		"latitude":    {"-23.5505"},
		"longitude":   {"-46.6333"},
	}))

	// Latitude without longitude is rejected.
	assert.Equal(t, fiber.StatusUnprocessableEntity, postForm(t, app, url.Values{
		"title":       {"No signal"},
		"description": {"Wi-Fi down"},
		"latitude":    {"-23.5505"},
	}))

	// Out-of-range coordinates are rejected.
	assert.Equal(t, fiber.StatusUnprocessableEntity, postForm(t, app, url.Values{
		"title":       {"No signal"},
		"description": {"Wi-Fi down"},
		"latitude":    {"123.0"},
		"longitude":   {"-46.6"},
	}))
}

func TestCloseTicketValidator(t *testing.T) {
	app := formApp(CloseTicket())

	assert.Equal(t, fiber.StatusOK, postJSON(t, app,
		`{"resolution":"Replaced toner","categoryId":1,"subCategoryId":3}`))

	// Resolution text is mandatory.
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app,
		`{"resolution":"  ","categoryId":1,"subCategoryId":3}`))

	// Category and subcategory must both be chosen.
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app,
		`{"resolution":"Replaced toner","categoryId":1}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app,
		`{"resolution":"Replaced toner","subCategoryId":3}`))
}

func TestAddNoteValidator(t *testing.T) {
	app := formApp(AddNote())

	assert.Equal(t, fiber.StatusOK, postJSON(t, app, `{"text":"Client called back"}`))
	assert.Equal(t, fiber.StatusUnprocessableEntity, postJSON(t, app, `{"text":"   "}`))
}

func TestTicketListValidator(t *testing.T) {
	app := fiber.New()
	app.Get("/t", TicketList(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	get := func(query string) int {
		resp, err := app.Test(httptest.NewRequest("GET", "/t"+query, nil))
		assert.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, get(""))
	assert.Equal(t, fiber.StatusOK, get("?page=2&limit=5&status=OPEN"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, get("?page=0"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, get("?status=BOGUS"))
	assert.Equal(t, fiber.StatusUnprocessableEntity, get("?priority=WHENEVER"))
}
