package dto

import (
	recordModel "relawanku_backend/internals/features/attendance/records/model"
)

// Category filters for the review record list.
const (
	CategoryAll        = "all"
	CategoryFlagged    = "flagged"
	CategoryNoCheckout = "no-checkout"
	CategoryModified   = "modified"
)

type DailySummary struct {
	Total      int `json:"total"`
	Flagged    int `json:"flagged"`
	NoCheckout int `json:"no_checkout"`
	Modified   int `json:"modified"`
	Voided     int `json:"voided"`
}

// ReviewRecord is one row of the daily review list: the record plus the
// participant's display name for searching and surname sorting.
type ReviewRecord struct {
	recordModel.AttendanceRecordModel
	ParticipantName string `json:"participant_name"`
}
