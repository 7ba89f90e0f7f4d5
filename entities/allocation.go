package entities

import (
	"github.com/google/uuid"
)

// Allocation is the durable record of one fulfillment: which NGO drew
// how much from which donation to complete which request. Written in
// the same transaction as the request/donation updates.
type Allocation struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RequestID  uuid.UUID `gorm:"type:uuid" json:"request_id"`
	DonationID uuid.UUID `gorm:"type:uuid" json:"donation_id"`
	NGOID      uuid.UUID `gorm:"type:uuid" json:"ngo_id"`
	Quantity   float64   `json:"quantity"`

	Request  *AidRequest `gorm:"foreignKey:RequestID" json:"request,omitempty"`
	Donation *Donation   `gorm:"foreignKey:DonationID" json:"donation,omitempty"`
	NGO      *NGO        `gorm:"foreignKey:NGOID" json:"ngo,omitempty"`
	Timestamp
}
