package models

import "time"

// Device is a wearable or ingestion client identified by a shared token.
// The token is distinct from user authentication.
type Device struct {
	ID       string `gorm:"primaryKey;size:36"`
	Name     string `gorm:"size:120;not null"`
	OwnerID  *uint  `gorm:"index"`
	Token    string `gorm:"size:128;uniqueIndex;not null"`
	LastSeen *time.Time
}
