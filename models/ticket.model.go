package models

import (
	"time"

	"gorm.io/gorm"
)

// Ticket lifecycle states.
const (
	TicketOpen             = "OPEN"
	TicketInProgress       = "IN_PROGRESS"
	TicketAwaitingClient   = "AWAITING_CLIENT"
	TicketAwaitingThird    = "AWAITING_THIRD_PARTY"
	TicketResolved         = "RESOLVED"
	TicketClosed           = "CLOSED"
	TicketCanceled         = "CANCELED"
)

// Ticket priorities.
const (
	PriorityLow      = "LOW"
	PriorityMedium   = "MEDIUM"
	PriorityHigh     = "HIGH"
	PriorityCritical = "CRITICAL"
)

// Intake categories picked by the client when opening a ticket.
const (
	CategoryHardware     = "HARDWARE"
	CategorySoftware     = "SOFTWARE"
	CategoryNetwork      = "NETWORK"
	CategoryEmail        = "EMAIL"
	CategoryPrinter      = "PRINTER"
	CategorySecurity     = "SECURITY"
	CategoryInstallation = "INSTALLATION"
	CategoryOther        = "OTHER"
)

// Note author types.
const (
	AuthorCliente = "CLIENTE"
	AuthorTecnico = "TECNICO"
	AuthorSystem  = "SYSTEM"
)

// Ticket is the aggregate root: the request itself, its note timeline,
// its attachments and, once closed against a technician, the payable
// balance settled by the payment controller.
// Invariant: Status == CLOSED implies Resolution != "" and ClosedAt >= CreatedAt.
type Ticket struct {
	gorm.Model
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text;not null" json:"description"`
	Status      string `gorm:"default:'OPEN';index" json:"status"`
	Priority    string `gorm:"default:'MEDIUM'" json:"priority"`
	Category    string `gorm:"default:'OTHER'" json:"category"`

	ClientID     uint  `gorm:"index;not null" json:"clientId"`
	CompanyID    uint  `gorm:"index;not null" json:"companyId"`
	TechnicianID *uint `gorm:"index" json:"technicianId"`

	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
	LocationLabel string   `gorm:"default:''" json:"locationLabel,omitempty"`

	// Set on close.
	Resolution              string     `gorm:"type:text;default:''" json:"resolution,omitempty"`
	ResolutionCategoryID    *uint      `json:"resolutionCategoryId,omitempty"`
	ResolutionSubCategoryID *uint      `json:"resolutionSubCategoryId,omitempty"`
	ClosedAt                *time.Time `gorm:"index" json:"closedAt,omitempty"`

	// Payable balance, opened at close time when a technician is assigned.
	FeeAmount     float64 `gorm:"default:0" json:"feeAmount"`
	AmountPending float64 `gorm:"default:0;index" json:"amountPending"`
	AmountPaid    float64 `gorm:"default:0" json:"amountPaid"`

	IsDeleted bool `gorm:"default:false" json:"-"`

	Client      User         `gorm:"foreignKey:ClientID" json:"client"`
	Technician  *Technician  `gorm:"foreignKey:TechnicianID" json:"technician,omitempty"`
	Notes       []Note       `gorm:"foreignKey:TicketID" json:"notes"`
	Attachments []Attachment `gorm:"foreignKey:TicketID" json:"attachments"`
}

// Note is an append-only timeline entry. Author fields come from the
// resolved session, never from the request body.
type Note struct {
	gorm.Model
	TicketID   uint   `gorm:"index;not null" json:"ticketId"`
	Text       string `gorm:"type:text;not null" json:"text"`
	AuthorName string `gorm:"not null" json:"authorName"`
	AuthorType string `gorm:"not null" json:"authorType"`
}

// Attachment records an uploaded file. Never mutated after creation.
type Attachment struct {
	gorm.Model
	TicketID     uint   `gorm:"index;not null" json:"ticketId"`
	NoteID       *uint  `gorm:"index" json:"noteId,omitempty"`
	StoredName   string `gorm:"not null" json:"storedName"`
	OriginalName string `gorm:"not null" json:"originalName"`
	MimeType     string `gorm:"default:''" json:"mimeType"`
	Size         int64  `gorm:"default:0" json:"size"`
}

// ValidStatus reports whether s is a known lifecycle state.
func ValidStatus(s string) bool {
	switch s {
	case TicketOpen, TicketInProgress, TicketAwaitingClient, TicketAwaitingThird,
		TicketResolved, TicketClosed, TicketCanceled:
		return true
	}
	return false
}

// ValidPriority reports whether p is a known priority.
func ValidPriority(p string) bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// ValidCategory reports whether c is a known intake category.
func ValidCategory(c string) bool {
	switch c {
	case CategoryHardware, CategorySoftware, CategoryNetwork, CategoryEmail,
		CategoryPrinter, CategorySecurity, CategoryInstallation, CategoryOther:
		return true
	}
	return false
}

// NextPriority returns the priority one step above p, capped at CRITICAL.
func NextPriority(p string) string {
	switch p {
	case PriorityLow:
		return PriorityMedium
	case PriorityMedium:
		return PriorityHigh
	case PriorityHigh:
		return PriorityCritical
	}
	return PriorityCritical
}
