package entities

import (
	"github.com/google/uuid"
)

const (
	RequestStatusPending   = "pending"
	RequestStatusCompleted = "completed"
)

type AidRequest struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string     `json:"name"`
	Contact     string     `json:"contact"`
	Location    string     `json:"location"`
	CNIC        string     `json:"cnic"`
	FamilySize  int        `json:"family_size"`
	NeedType    string     `json:"need_type"`
	Description string     `json:"description"`
	Status      string     `gorm:"default:pending" json:"status"` // pending or completed
	CompletedBy *uuid.UUID `gorm:"type:uuid" json:"completed_by,omitempty"`

	CompletedByNGO *NGO `gorm:"foreignKey:CompletedBy" json:"completed_by_ngo,omitempty"`
	Timestamp
}
