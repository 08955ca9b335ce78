package models

import (
	"time"

	"gorm.io/gorm"
)

// Roles understood by the capability layer. Anything else is
// normalized down to RoleCliente.
const (
	RoleAdmin      = "ADMIN"
	RoleGestor     = "GESTOR"
	RoleTecnico    = "TECNICO"
	RoleCliente    = "CLIENTE"
	RolePrestadora = "PRESTADORA"
)

type User struct {
	gorm.Model
	Name       string `gorm:"default:''" json:"name"`
	Email      string `gorm:"unique;not null" json:"email"`
	Phone      string `gorm:"default:''" json:"phone"`
	Role       string `gorm:"default:'CLIENTE'" json:"role"`
	Password   string `gorm:"not null" json:"-"`
	CompanyID  uint   `gorm:"index;default:0" json:"companyId"`
	Department string `gorm:"default:''" json:"department"`

	LastLogin           time.Time  `gorm:"default:NULL" json:"lastLogin"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LastFailedLogin     *time.Time `json:"-"`
	IsBlocked           bool       `gorm:"default:false" json:"-"`
	BlockedUntil        *time.Time `json:"-"`
	IsDeleted           bool       `gorm:"default:false" json:"-"`
}
