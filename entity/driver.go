package entity

import (
	"time"

	"github.com/google/uuid"
)

// Driver is identified by a unique name (the business key used by rentals,
// reviews and capability grants). The residential address is mutable.
type Driver struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name" gorm:"type:text;uniqueIndex;not null"`
	Road        string    `json:"road" gorm:"type:text;not null"`
	HouseNumber string    `json:"house_number" gorm:"type:text;not null"`
	City        string    `json:"city" gorm:"type:text;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CapabilityGrant declares that a driver may operate a given vehicle model.
// The composite unique index makes repeated grants no-ops.
type CapabilityGrant struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DriverName string    `json:"driver_name" gorm:"type:text;index;not null;uniqueIndex:idx_grants_tuple"`
	VehicleID  uuid.UUID `json:"vehicle_id" gorm:"type:uuid;not null;uniqueIndex:idx_grants_tuple"`
	ModelID    uuid.UUID `json:"model_id" gorm:"type:uuid;index;not null;uniqueIndex:idx_grants_tuple"`
	CreatedAt  time.Time `json:"created_at"`
}
