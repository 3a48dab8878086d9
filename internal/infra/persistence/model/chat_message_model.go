package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessageModel is the GORM-specific struct for the 'chat_messages' table.
type ChatMessageModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key"`
	Sender   string    `gorm:"type:varchar(255);not null"`
	Receiver string    `gorm:"type:varchar(255);not null"`
	Content  string    `gorm:"type:text;not null"`
	SentAt   time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
