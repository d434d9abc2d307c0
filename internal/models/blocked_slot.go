package models

import "time"

// Bloqueio de agenda: dia inteiro (FullDay) ou um horário específico
type BlockedSlot struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BlockedDate string `gorm:"size:10;not null;index" json:"blocked_date"`
	BlockedTime string `gorm:"size:5" json:"blocked_time"`
	FullDay     bool   `gorm:"default:false" json:"full_day"`

	Reason string `gorm:"size:100" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
