package model

import "time"

const AnonymousName = "Anonymous"

// Review is a community review of the app, shown to all users.
type Review struct {
	ID          string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID      uint      `gorm:"index;not null" json:"userId"`
	UserName    string    `gorm:"type:varchar(100);not null" json:"userName"`
	IsAnonymous bool      `gorm:"not null;default:false" json:"isAnonymous"`
	Rating      int       `gorm:"not null" json:"rating"`
	Feedback    string    `gorm:"type:text" json:"feedback"`
	CreatedAt   time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
}

func (Review) TableName() string {
	return "reviews"
}

// DisplayName is the author name other users may see.
func (r Review) DisplayName() string {
	if r.IsAnonymous {
		return AnonymousName
	}
	return r.UserName
}

// Feedback is private app feedback sent from the settings screen.
type Feedback struct {
	ID        string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	UserID    uint      `gorm:"index;not null" json:"userId"`
	Rating    int       `gorm:"not null" json:"rating"`
	Comment   string    `gorm:"type:text" json:"comment"`
	Language  string    `gorm:"type:varchar(8)" json:"language"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Feedback) TableName() string {
	return "feedback"
}
