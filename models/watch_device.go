package models

import "time"

// WatchDevice is a registered companion-device push endpoint.
type WatchDevice struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"index"`
	TokenHash   string `gorm:"size:64"`
	EndpointARN string `gorm:"size:256"`
	Enabled     bool   `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
