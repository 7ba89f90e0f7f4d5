package entities

import (
	"github.com/google/uuid"
)

// A Donation record is retained once quantity reaches zero; exhausted
// donations are filtered out by callers, never deleted.
type Donation struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name         string    `json:"name"`
	Contact      string    `json:"contact"`
	Location     string    `json:"location"`
	FoodType     string    `json:"food_type"`
	Quantity     float64   `gorm:"check:quantity >= 0" json:"quantity"`
	QuantityUnit string    `json:"quantity_unit"`
	Description  string    `json:"description"`

	Timestamp
}
