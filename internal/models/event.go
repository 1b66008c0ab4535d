package models

import "time"

type Event struct {
	ID          int        `gorm:"primaryKey" json:"id"`
	Description string     `gorm:"index" json:"description"`
	StartDate   *time.Time `gorm:"type:date" json:"start_date,omitempty"`
	EndDate     *time.Time `gorm:"type:date" json:"end_date,omitempty"`
	Cost        float64    `gorm:"not null;default:0" json:"cost"`

	// Participants holds the ids of the event's participants.
	Participants IDSet `gorm:"type:jsonb" json:"participants"`

	Logistics []*Logistics `gorm:"foreignKey:EventID" json:"logistics,omitempty"`
}

// AddLogistics adds l to the event's logistics set. Items are unique by id;
// it reports whether l was added.
func (e *Event) AddLogistics(l *Logistics) bool {
	for _, existing := range e.Logistics {
		if existing.ID == l.ID {
			return false
		}
	}
	e.Logistics = append(e.Logistics, l)
	return true
}

// ReservedCost sums unit price times quantity over reserved logistics.
func (e *Event) ReservedCost() float64 {
	var sum float64
	for _, l := range e.Logistics {
		if l.Reserved {
			sum += l.LineTotal()
		}
	}
	return sum
}
