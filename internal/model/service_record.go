package model

import "gorm.io/gorm"

// ServiceRecord is one historical maintenance entry, linked to a device by
// its human-facing code (DeviceID), not by a database key.
type ServiceRecord struct {
	gorm.Model
	DeviceID    string `json:"deviceId" gorm:"column:device_id;index"` // e.g. VENT-004
	Reason      string `json:"reason"`
	Description string `json:"description"`
}
