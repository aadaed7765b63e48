package dto

type CreateEventRequest struct {
	Name             string  `json:"name" validate:"required"`
	Location         *string `json:"location"`
	StartDate        string  `json:"start_date" validate:"required"`         // "YYYY-MM-DD"
	EndDate          string  `json:"end_date" validate:"required"`           // "YYYY-MM-DD"
	DefaultStartTime string  `json:"default_start_time" validate:"required"` // "HH:MM"
	DefaultEndTime   string  `json:"default_end_time" validate:"required"`   // "HH:MM"
}

type CreateActivityRequest struct {
	Name      string `json:"name" validate:"required"`
	StartTime string `json:"start_time" validate:"required"` // "HH:MM"
	EndTime   string `json:"end_time" validate:"required"`   // "HH:MM"
}
