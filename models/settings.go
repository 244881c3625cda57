package models

import "time"

// Settings is the explicit site configuration object. It is loaded and saved
// through the settings service rather than accessed as ambient global state.
type Settings struct {
	BusinessName string    `bson:"businessName" json:"businessName"`
	Email        string    `bson:"email" json:"email"`
	Phone        string    `bson:"phone" json:"phone"`
	Address      string    `bson:"address" json:"address"`
	OpenHour     int       `bson:"openHour" json:"openHour"`
	CloseHour    int       `bson:"closeHour" json:"closeHour"`
	Currency     string    `bson:"currency" json:"currency"`
	Theme        string    `bson:"theme" json:"theme"`       // "light" or "dark"
	Language     string    `bson:"language" json:"language"` // "en" or "am"
	UpdatedAt    time.Time `bson:"updatedAt" json:"updatedAt"`
}

// DefaultSettings returns the settings used before an admin has saved any.
func DefaultSettings() Settings {
	return Settings{
		BusinessName: "Nafis Reflexology",
		Email:        "info@nafisreflexology.com",
		Phone:        "",
		Address:      "",
		OpenHour:     9,
		CloseHour:    18,
		Currency:     "USD",
		Theme:        "light",
		Language:     "en",
	}
}
