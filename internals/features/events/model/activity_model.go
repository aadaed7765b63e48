package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/helpers/clock"
)

// ActivityModel is one shift/station inside an event, with its own local
// clock schedule ("HH:MM" strings at the API edge).
type ActivityModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;index;column:event_id" json:"event_id"`
	Name      string     `gorm:"not null;column:name" json:"name"`
	StartTime clock.HHMM `gorm:"type:time;not null;column:start_time" json:"start_time"`
	EndTime   clock.HHMM `gorm:"type:time;not null;column:end_time" json:"end_time"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (ActivityModel) TableName() string { return "activities" }

func (m *ActivityModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
