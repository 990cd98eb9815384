package entity

import (
	"time"

	"github.com/google/uuid"
)

// Rental is a committed booking binding one calendar date to exactly one
// vehicle model and exactly one driver. The two composite unique indexes are
// the ground truth for the no-double-booking invariants: at most one rental
// per (date, vehicle, model) and at most one per (date, driver). Rentals are
// never updated; they are deleted only by the driver-removal cascade.
type Rental struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	RentDate    time.Time `json:"rent_date" gorm:"type:date;not null;uniqueIndex:idx_rentals_model_day;uniqueIndex:idx_rentals_driver_day"`
	ClientEmail string    `json:"client_email" gorm:"type:text;index;not null"`
	DriverName  string    `json:"driver_name" gorm:"type:text;not null;uniqueIndex:idx_rentals_driver_day"`
	VehicleID   uuid.UUID `json:"vehicle_id" gorm:"type:uuid;not null;uniqueIndex:idx_rentals_model_day"`
	ModelID     uuid.UUID `json:"model_id" gorm:"type:uuid;index;not null;uniqueIndex:idx_rentals_model_day"`
	CreatedAt   time.Time `json:"created_at"`
}
