package db

import (
	"time"

	"gorm.io/datatypes"
)

type Question struct {
	ID           uint      `gorm:"primaryKey"`
	QuestionText string    `gorm:"size:200;not null"`
	PubDate      time.Time `gorm:"not null;index"`
	Choices      []Choice  `gorm:"constraint:OnDelete:CASCADE"`
}

type Choice struct {
	ID         uint   `gorm:"primaryKey"`
	QuestionID uint   `gorm:"index;not null"`
	ChoiceText string `gorm:"size:200;not null"`
	Votes      int    `gorm:"not null;default:0"`
}

// AdminEvent is one entry of the admin change log. QuestionID is kept
// without a foreign key so deletions stay visible after the question is gone.
type AdminEvent struct {
	ID         uint           `gorm:"primaryKey"`
	QuestionID uint           `gorm:"index;not null"`
	Action     string         `gorm:"size:16;not null"`
	Label      string         `gorm:"size:200;not null"`
	Message    string         `gorm:"size:512;not null"`
	Payload    datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time      `gorm:"not null"`
}
