package entity

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle is a brand-level entity (e.g. "Toyota") owning one or more models.
type Vehicle struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Brand     string    `json:"brand" gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleModel is a concrete configuration of a vehicle, independently bookable.
// Models are created and removed by managers, never mutated in place.
type VehicleModel struct {
	ID               uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VehicleID        uuid.UUID `json:"vehicle_id" gorm:"type:uuid;index;not null"`
	Color            string    `json:"color" gorm:"type:text;not null"`
	ConstructionYear int       `json:"construction_year" gorm:"not null"`
	Transmission     string    `json:"transmission" gorm:"type:text;not null"` // manual / automatic
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
