package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a client's rating of a driver. A review may only exist when some
// rental links the client and the driver; multiple reviews per pairing are
// allowed. Append-only.
type Review struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	DriverName  string    `json:"driver_name" gorm:"type:text;index;not null"`
	ClientEmail string    `json:"client_email" gorm:"type:text;index;not null"`
	Message     string    `json:"message" gorm:"type:text"`
	Rating      int       `json:"rating" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
