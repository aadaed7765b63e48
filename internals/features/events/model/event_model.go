package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"relawanku_backend/internals/helpers/clock"
)

// EventModel is a multi-day volunteer event. DefaultStartTime/DefaultEndTime
// are the fallback shift clock used when an activity has no schedule of its
// own (flag thresholds, bulk forced checkout).
type EventModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name             string     `gorm:"not null;column:name" json:"name"`
	Location         *string    `gorm:"column:location" json:"location,omitempty"`
	StartDate        time.Time  `gorm:"type:date;not null;column:start_date" json:"start_date"`
	EndDate          time.Time  `gorm:"type:date;not null;column:end_date" json:"end_date"`
	DefaultStartTime clock.HHMM `gorm:"type:time;not null;column:default_start_time" json:"default_start_time"`
	DefaultEndTime   clock.HHMM `gorm:"type:time;not null;column:default_end_time" json:"default_end_time"`

	Activities []ActivityModel `gorm:"foreignKey:EventID" json:"activities,omitempty"`

	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at,omitempty"`
}

func (EventModel) TableName() string { return "events" }

func (m *EventModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
