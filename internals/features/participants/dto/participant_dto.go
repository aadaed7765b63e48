package dto

type CreateParticipantRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name" validate:"required"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Phone     *string `json:"phone"`
}

// BadgeResponse carries the scannable token to print on a badge.
type BadgeResponse struct {
	ParticipantID   string `json:"participant_id"`
	EventID         string `json:"event_id"`
	ParticipantName string `json:"participant_name"`
	Token           string `json:"token"`
}
