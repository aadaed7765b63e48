package service

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	recordModel "relawanku_backend/internals/features/attendance/records/model"
	"relawanku_backend/internals/features/attendance/review/dto"
	participantModel "relawanku_backend/internals/features/participants/model"
	"relawanku_backend/internals/helpers/clock"
)

// ReviewService is the read side of the attendance core: it derives summary
// counts and a filterable record list for one event/date and never writes.
type ReviewService struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *ReviewService {
	return &ReviewService{DB: db}
}

// DailySummary computes the per-day review counters. Voided records count
// only toward voided; everything else is derived from live records.
func (s *ReviewService) DailySummary(eventID uuid.UUID, date time.Time) (*dto.DailySummary, error) {
	records, err := s.loadDay(eventID, date)
	if err != nil {
		return nil, err
	}

	sum := dto.DailySummary{}
	for i := range records {
		rec := &records[i]
		if rec.IsVoided {
			sum.Voided++
			continue
		}
		sum.Total++
		if len(rec.Flags) > 0 {
			sum.Flagged++
		}
		if rec.CheckOutTime == nil {
			sum.NoCheckout++
		}
		if rec.ModificationReason != nil && strings.TrimSpace(*rec.ModificationReason) != "" {
			sum.Modified++
		}
	}
	return &sum, nil
}

// Records returns the review rows for an event/date, filtered by category
// and free-text name search, sorted by participant surname.
func (s *ReviewService) Records(eventID uuid.UUID, date time.Time, search, category string) ([]dto.ReviewRecord, error) {
	switch category {
	case "", dto.CategoryAll, dto.CategoryFlagged, dto.CategoryNoCheckout, dto.CategoryModified:
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown review category: "+category)
	}

	records, err := s.loadDay(eventID, date)
	if err != nil {
		return nil, err
	}

	names, surnames, err := s.participantNames(records)
	if err != nil {
		return nil, err
	}

	search = strings.ToLower(strings.TrimSpace(search))
	rows := make([]dto.ReviewRecord, 0, len(records))
	for i := range records {
		rec := records[i]
		if !matchesCategory(&rec, category) {
			continue
		}
		name := names[rec.ParticipantID]
		if search != "" && !strings.Contains(strings.ToLower(name), search) {
			continue
		}
		rows = append(rows, dto.ReviewRecord{AttendanceRecordModel: rec, ParticipantName: name})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a := surnames[rows[i].ParticipantID]
		b := surnames[rows[j].ParticipantID]
		if a != b {
			return a < b
		}
		return rows[i].ParticipantName < rows[j].ParticipantName
	})
	return rows, nil
}

func (s *ReviewService) loadDay(eventID uuid.UUID, date time.Time) ([]recordModel.AttendanceRecordModel, error) {
	var records []recordModel.AttendanceRecordModel
	err := s.DB.
		Where("event_id = ? AND date = ?", eventID, clock.DateOnly(date)).
		Find(&records).Error
	if err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return records, nil
}

func (s *ReviewService) participantNames(records []recordModel.AttendanceRecordModel) (map[uuid.UUID]string, map[uuid.UUID]string, error) {
	ids := make([]uuid.UUID, 0, len(records))
	seen := make(map[uuid.UUID]bool, len(records))
	for i := range records {
		if !seen[records[i].ParticipantID] {
			seen[records[i].ParticipantID] = true
			ids = append(ids, records[i].ParticipantID)
		}
	}

	names := make(map[uuid.UUID]string, len(ids))
	surnames := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return names, surnames, nil
	}

	var participants []participantModel.ParticipantModel
	if err := s.DB.Find(&participants, "id IN ?", ids).Error; err != nil {
		return nil, nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	for _, p := range participants {
		names[p.ID] = p.DisplayName()
		surnames[p.ID] = strings.ToLower(p.LastName)
	}
	return names, surnames, nil
}

func matchesCategory(rec *recordModel.AttendanceRecordModel, category string) bool {
	if rec.IsVoided {
		// voided rows only surface in the summary's voided counter
		return false
	}
	switch category {
	case dto.CategoryFlagged:
		return len(rec.Flags) > 0
	case dto.CategoryNoCheckout:
		return rec.CheckOutTime == nil
	case dto.CategoryModified:
		return rec.ModificationReason != nil && strings.TrimSpace(*rec.ModificationReason) != ""
	default:
		return true
	}
}
