package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ParticipantModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"not null;index;column:last_name" json:"last_name"`
	Email     *string   `gorm:"column:email" json:"email,omitempty"`
	Phone     *string   `gorm:"column:phone" json:"phone,omitempty"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time     `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (ParticipantModel) TableName() string { return "participants" }

func (m *ParticipantModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// DisplayName is what scan results and review lists show.
func (m ParticipantModel) DisplayName() string {
	return strings.TrimSpace(m.FirstName + " " + m.LastName)
}
