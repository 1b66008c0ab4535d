package models

type Role string

const (
	RoleOrganizer Role = "ORGANIZER"
	RoleInvitee   Role = "INVITEE"
	RoleSpeaker   Role = "SPEAKER"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOrganizer, RoleInvitee, RoleSpeaker:
		return true
	}
	return false
}

type Participant struct {
	ID      int    `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name    string `gorm:"not null;index:idx_participant_identity" json:"name"`
	Surname string `gorm:"not null;index:idx_participant_identity" json:"surname"`
	Role    Role   `gorm:"type:varchar(20);not null;index:idx_participant_identity" json:"role"`

	// Events holds the ids of the events this participant takes part in.
	Events IDSet `gorm:"type:jsonb" json:"events"`
}

// AddEvent records membership in the given event, initializing the set on
// first use.
func (p *Participant) AddEvent(eventID int) {
	if p.Events == nil {
		p.Events = NewIDSet(eventID)
		return
	}
	p.Events[eventID] = struct{}{}
}
