package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Logistics struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Description string    `json:"description"`
	Reserved    bool      `gorm:"not null;default:false" json:"reserved"`
	UnitPrice   float64   `gorm:"not null;default:0" json:"unit_price"`
	Quantity    int       `gorm:"not null;default:0" json:"quantity"`

	// EventID is the storage foreign key to the owning event.
	EventID *int `gorm:"index" json:"-"`
}

func (l *Logistics) LineTotal() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

func (l *Logistics) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
