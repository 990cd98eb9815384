package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is identified by email address.
type Client struct {
	Email     string    `json:"email" gorm:"type:text;primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClientAddress is one of the addresses a client registered with.
type ClientAddress struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	ClientEmail string    `json:"client_email" gorm:"type:text;index;not null"`
	Road        string    `json:"road" gorm:"type:text;not null"`
	HouseNumber string    `json:"house_number" gorm:"type:text;not null"`
	City        string    `json:"city" gorm:"type:text;index;not null"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreditCard stores a card number and its billing address for a client.
type CreditCard struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Number      string    `json:"number" gorm:"type:text;uniqueIndex;not null"`
	ClientEmail string    `json:"client_email" gorm:"type:text;index;not null"`
	Road        string    `json:"road" gorm:"type:text;not null"`
	HouseNumber string    `json:"house_number" gorm:"type:text;not null"`
	City        string    `json:"city" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at"`
}
