package main

import (
	"log"

	"helpti/config"
	"helpti/database"
	"helpti/models"
)

// Default resolution taxonomy. Safe to run repeatedly.
var seed = map[string][]string{
	"Hardware":       {"Desktop", "Notebook", "Printer", "Peripherals", "Server"},
	"Software":       {"Operating system", "Office suite", "Business application", "Licensing"},
	"Network":        {"Wired connection", "Wi-Fi", "VPN", "Firewall"},
	"Email":          {"Account access", "Delivery failure", "Mailbox size"},
	"Security":       {"Malware", "Access control", "Data incident"},
	"Infrastructure": {"Power", "Cabling", "Air conditioning"},
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	db := database.Database.Db

	created := 0
	skipped := 0

	for categoryName, subNames := range seed {
		var category models.Category
		err := db.Where("name = ? AND is_deleted = false", categoryName).First(&category).Error
		if err != nil {
			category = models.Category{Name: categoryName}
			if err := db.Create(&category).Error; err != nil {
				log.Fatalf("Failed to create category %s: %v", categoryName, err)
			}
			created++
		} else {
			skipped++
		}

		for _, subName := range subNames {
			var sub models.SubCategory
			err := db.Where("name = ? AND category_id = ? AND is_deleted = false", subName, category.ID).First(&sub).Error
			if err == nil {
				skipped++
				continue
			}
			sub = models.SubCategory{Name: subName, CategoryID: category.ID}
			if err := db.Create(&sub).Error; err != nil {
				log.Fatalf("Failed to create subcategory %s: %v", subName, err)
			}
			created++
		}
	}

	log.Printf("Seed finished. Created: %d, already present: %d", created, skipped)
}
