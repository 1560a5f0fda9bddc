package models

// Participant is one row of the event roster. Email, PhoneNumber and
// TshirtSize are pointers so a value missing from the source spreadsheet
// stays NULL instead of collapsing to "".
type Participant struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"not null"`
	Stake       string  `json:"stake" gorm:"not null;index"`
	WardBranch  string  `json:"ward_branch" gorm:"not null;index"`
	Email       *string `json:"email,omitempty"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	TshirtSize  *string `json:"tshirt_size,omitempty"`

	// Relationships
	Checkins []Checkin `json:"checkins,omitempty" gorm:"foreignKey:ParticipantID;constraint:OnDelete:CASCADE"`
}

// StakeCount is a per-stake roster total for the dashboard (not stored in DB).
type StakeCount struct {
	Stake string `json:"stake"`
	Total int64  `json:"total"`
}
