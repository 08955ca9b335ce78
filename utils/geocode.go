package utils

import (
	"encoding/json"
	"fmt"
	"log"

	"helpti/config"
	"helpti/database"
	"helpti/models"

	"github.com/go-resty/resty/v2"
)

// ReverseGeocode resolves coordinates into a human readable address using
// the configured Nominatim-compatible endpoint.
func ReverseGeocode(lat, lng float64) (string, error) {
	client := resty.New()
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"lat":    fmt.Sprintf("%f", lat),
			"lon":    fmt.Sprintf("%f", lng),
			"format": "json",
		}).
		SetHeader("User-Agent", "helpti/1.0").
		Get(config.AppConfig.GeocodeApiUrl)
	if err != nil {
		return "", err
	}
	if resp.StatusCode() != 200 {
		return "", fmt.Errorf("geocode API error: %s", resp.String())
	}

	var geoResp struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.Unmarshal(resp.Body(), &geoResp); err != nil {
		return "", fmt.Errorf("invalid geocode response: %v", err)
	}

	return geoResp.DisplayName, nil
}

// ResolveTicketLocation reverse-geocodes a ticket's coordinates and stores
// the label. Called from a goroutine after intake; a failure only leaves
// the label empty.
func ResolveTicketLocation(ticketID uint, lat, lng float64) {
	label, err := ReverseGeocode(lat, lng)
	if err != nil {
		log.Printf("Failed to resolve location for ticket %d: %v", ticketID, err)
		return
	}
	if label == "" {
		return
	}

	if err := database.Database.Db.Model(&models.Ticket{}).
		Where("id = ?", ticketID).
		Update("location_label", label).Error; err != nil {
		log.Printf("Failed to save location label for ticket %d: %v", ticketID, err)
	}
}
