package entities

import (
	"github.com/google/uuid"
)

type NGO struct {
	ID                 uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name               string    `json:"name"`
	Email              string    `gorm:"uniqueIndex" json:"email"`
	Phone              string    `json:"phone"`
	City               string    `json:"city"`
	RegistrationNumber string    `json:"registration_number"`
	Password           string    `json:"-"`
	IsVerified         bool      `gorm:"default:false" json:"is_verified"`

	Timestamp
}
