package models

import "gorm.io/gorm"

const (
	TechnicianActive   = "ACTIVE"
	TechnicianInactive = "INACTIVE"
	TechnicianOnLeave  = "ON_LEAVE"
)

type Technician struct {
	gorm.Model
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"unique;not null" json:"email"`
	Phone       string `gorm:"default:''" json:"phone"`
	Specialties string `gorm:"default:''" json:"specialties"` // comma separated
	Status      string `gorm:"default:'ACTIVE'" json:"status"`
	CompanyID   uint   `gorm:"index;not null" json:"companyId"`
	IsDeleted   bool   `gorm:"default:false" json:"-"`

	Company Company `gorm:"foreignKey:CompanyID" json:"company"`
}
