// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Device represents a smart-metering device registered in the monitoring catalog.
type Device struct {
	ID                   uuid.UUID `json:"id"`                     // The Global Unique Identifier (GUID) for the device.
	OwnerID              uuid.UUID `json:"owner_id"`               // The ID of the user who owns this device.
	MaxHourlyConsumption float64   `json:"max_hourly_consumption"` // Consumption threshold per hour, never negative.
	CreatedAt            time.Time `json:"created_at"`             // Timestamp of when this device was first stored.
	UpdatedAt            time.Time `json:"updated_at"`             // Timestamp of the last modification.
}
