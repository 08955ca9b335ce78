package models

import "gorm.io/gorm"

// Company owns technicians and tickets. FeePerTicket is the flat amount
// owed to a technician for every ticket closed under this company.
type Company struct {
	gorm.Model
	Name         string  `gorm:"unique;not null" json:"name"`
	TradeName    string  `gorm:"default:''" json:"tradeName"`
	FeePerTicket float64 `gorm:"not null;default:0" json:"feePerTicket"`
	IsDeleted    bool    `gorm:"default:false" json:"-"`
}
