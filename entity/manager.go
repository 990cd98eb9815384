package entity

import "time"

// Manager is a fleet manager, identified by SSN.
type Manager struct {
	SSN       string    `json:"ssn" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" gorm:"type:text;uniqueIndex;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
