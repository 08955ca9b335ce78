package ticketController

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"helpti/config"
	"helpti/database"
	"helpti/models"
	ticketValidators "helpti/validators/ticket"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testSession is the identity the stub auth middleware injects. Tests
// mutate it between requests to act as different callers.
type testSession struct {
	userId    uint
	companyId uint
	role      string
	name      string
}

func setupTicketApp(t *testing.T) (*fiber.App, *testSession, *gorm.DB) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.Technician{},
		&models.Ticket{},
		&models.Note{},
		&models.Attachment{},
		&models.Category{},
		&models.SubCategory{},
	))

	database.Database = database.DbInstance{Db: db}
	config.AppConfig = &config.Config{UploadDir: t.TempDir()}

	sess := &testSession{userId: 1, role: models.RoleCliente, name: "Test User"}

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userId", sess.userId)
		c.Locals("companyId", sess.companyId)
		c.Locals("role", sess.role)
		c.Locals("name", sess.name)
		return c.Next()
	})
	app.Get("/tickets/:id", GetTicket)
	app.Post("/tickets/:id/notes", ticketValidators.AddNote(), AddNote)
	app.Put("/tickets/:id/transfer", ticketValidators.TransferTicket(), TransferTicket)
	app.Put("/tickets/:id/close", ticketValidators.CloseTicket(), CloseTicket)

	return app, sess, db
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) int {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func seedTicket(t *testing.T, db *gorm.DB, ticket *models.Ticket) {
	require.NoError(t, db.Create(ticket).Error)
}

func TestGetTicketScopedToOwner(t *testing.T) {
	app, sess, db := setupTicketApp(t)

	require.NoError(t, db.Create(&models.User{Email: "owner@example.com", Password: "x", Role: models.RoleCliente}).Error)
	seedTicket(t, db, &models.Ticket{
		Title: "Printer down", Description: "jammed",
		Status: models.TicketOpen, ClientID: 1, CompanyID: 3,
	})

	// The owner sees their ticket.
	sess.userId = 1
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "GET", "/tickets/1", ""))

	// Another client gets the same answer as a missing ticket.
	sess.userId = 2
	assert.Equal(t, fiber.StatusNotFound, doJSON(t, app, "GET", "/tickets/1", ""))

	// A manager of the owning company sees it, one of another company not.
	sess.role = models.RoleGestor
	sess.companyId = 3
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "GET", "/tickets/1", ""))
	sess.companyId = 4
	assert.Equal(t, fiber.StatusNotFound, doJSON(t, app, "GET", "/tickets/1", ""))

	// Technicians and administrators see the whole queue.
	sess.role = models.RoleTecnico
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "GET", "/tickets/1", ""))
	sess.role = models.RoleAdmin
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "GET", "/tickets/1", ""))
}

func TestAddNoteScopedToOwner(t *testing.T) {
	app, sess, db := setupTicketApp(t)

	seedTicket(t, db, &models.Ticket{
		Title: "No network", Description: "warehouse offline",
		Status: models.TicketOpen, ClientID: 1, CompanyID: 3,
	})

	sess.userId = 2
	assert.Equal(t, fiber.StatusNotFound,
		doJSON(t, app, "POST", "/tickets/1/notes", `{"text":"not my ticket"}`))

	var count int64
	db.Model(&models.Note{}).Count(&count)
	assert.Equal(t, int64(0), count)

	sess.userId = 1
	assert.Equal(t, fiber.StatusCreated,
		doJSON(t, app, "POST", "/tickets/1/notes", `{"text":"still offline"}`))

	db.Model(&models.Note{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestCloseTicketWithoutCompany(t *testing.T) {
	app, sess, db := setupTicketApp(t)

	require.NoError(t, db.Create(&models.User{Email: "owner@example.com", Password: "x", Role: models.RoleCliente}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Hardware"}).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Printer", CategoryID: 1}).Error)
	require.NoError(t, db.Create(&models.Technician{Name: "Ana", Email: "ana@example.com", CompanyID: 0}).Error)

	technicianID := uint(1)
	seedTicket(t, db, &models.Ticket{
		Title: "Printer down", Description: "jammed",
		Status: models.TicketInProgress, ClientID: 1, CompanyID: 0,
		TechnicianID: &technicianID,
	})

	// Closing a ticket whose company cannot be resolved succeeds and
	// simply opens no payable.
	sess.role = models.RoleTecnico
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "PUT", "/tickets/1/close",
		`{"resolution":"Replaced fuser","categoryId":1,"subCategoryId":1}`))

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, 1).Error)
	assert.Equal(t, models.TicketClosed, ticket.Status)
	assert.NotNil(t, ticket.ClosedAt)
	assert.Equal(t, 0.0, ticket.FeeAmount)
	assert.Equal(t, 0.0, ticket.AmountPending)
}

func TestCloseTicketSnapshotsFee(t *testing.T) {
	app, sess, db := setupTicketApp(t)

	require.NoError(t, db.Create(&models.User{Email: "owner@example.com", Password: "x", Role: models.RoleCliente}).Error)
	require.NoError(t, db.Create(&models.Company{Name: "Acme", FeePerTicket: 50}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Hardware"}).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Printer", CategoryID: 1}).Error)
	require.NoError(t, db.Create(&models.Technician{Name: "Ana", Email: "ana@example.com", CompanyID: 1}).Error)

	technicianID := uint(1)
	seedTicket(t, db, &models.Ticket{
		Title: "Printer down", Description: "jammed",
		Status: models.TicketInProgress, ClientID: 1, CompanyID: 1,
		TechnicianID: &technicianID,
	})

	sess.role = models.RoleTecnico
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "PUT", "/tickets/1/close",
		`{"resolution":"Replaced fuser","categoryId":1,"subCategoryId":1}`))

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, 1).Error)
	assert.Equal(t, 50.0, ticket.FeeAmount)
	assert.Equal(t, 50.0, ticket.AmountPending)
	assert.Equal(t, 0.0, ticket.AmountPaid)

	// Closing twice conflicts.
	assert.Equal(t, fiber.StatusConflict, doJSON(t, app, "PUT", "/tickets/1/close",
		`{"resolution":"again","categoryId":1,"subCategoryId":1}`))
}

func TestCloseTicketRejectsMismatchedSubCategory(t *testing.T) {
	app, sess, db := setupTicketApp(t)

	require.NoError(t, db.Create(&models.Category{Name: "Hardware"}).Error)
	require.NoError(t, db.Create(&models.Category{Name: "Network"}).Error)
	require.NoError(t, db.Create(&models.SubCategory{Name: "Wi-Fi", CategoryID: 2}).Error)

	seedTicket(t, db, &models.Ticket{
		Title: "Printer down", Description: "jammed",
		Status: models.TicketOpen, ClientID: 1, CompanyID: 1,
	})

	sess.role = models.RoleTecnico
	assert.Equal(t, fiber.StatusUnprocessableEntity, doJSON(t, app, "PUT", "/tickets/1/close",
		fmt.Sprintf(`{"resolution":"done","categoryId":%d,"subCategoryId":%d}`, 1, 1)))
}

func TestTransferWritesSystemNote(t *testing.T) {
	app, sess, db := setupTicketApp(t)

	require.NoError(t, db.Create(&models.Technician{Name: "Ana", Email: "ana@example.com", Status: models.TechnicianActive, CompanyID: 1}).Error)
	seedTicket(t, db, &models.Ticket{
		Title: "Printer down", Description: "jammed",
		Status: models.TicketOpen, ClientID: 1, CompanyID: 1,
	})

	sess.role = models.RoleAdmin
	assert.Equal(t, fiber.StatusOK, doJSON(t, app, "PUT", "/tickets/1/transfer", `{"technicianId":1}`))

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket, 1).Error)
	require.NotNil(t, ticket.TechnicianID)
	assert.Equal(t, uint(1), *ticket.TechnicianID)
	assert.Equal(t, models.TicketInProgress, ticket.Status)

	var note models.Note
	require.NoError(t, db.Where("ticket_id = ? AND author_type = ?", 1, models.AuthorSystem).First(&note).Error)
	assert.Contains(t, note.Text, "Ana")
}
