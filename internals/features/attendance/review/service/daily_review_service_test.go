package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	recordModel "relawanku_backend/internals/features/attendance/records/model"
	"relawanku_backend/internals/features/attendance/review/dto"
	eventModel "relawanku_backend/internals/features/events/model"
	participantModel "relawanku_backend/internals/features/participants/model"
)

var reviewDate = time.Date(2025, 6, 11, 0, 0, 0, 0, time.UTC)

type reviewFixture struct {
	db    *gorm.DB
	svc   *ReviewService
	event eventModel.EventModel
}

// newReviewFixture seeds one day of mixed records:
//
//	Wijaya   closed, clean
//	Abdullah open, early_arrival flag (also counts as no-checkout)
//	Chen     closed, corrected (modification reason set)
//	Budiarto voided
func newReviewFixture(t *testing.T) *reviewFixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "review.db")), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&participantModel.ParticipantModel{},
		&eventModel.EventModel{},
		&eventModel.ActivityModel{},
		&recordModel.AttendanceRecordModel{},
	))

	f := &reviewFixture{db: db, svc: New(db)}
	f.event = eventModel.EventModel{Name: "Spring Festival", StartDate: reviewDate, EndDate: reviewDate}
	require.NoError(t, db.Create(&f.event).Error)

	activity := eventModel.ActivityModel{EventID: f.event.ID, Name: "Registration Desk"}
	require.NoError(t, db.Create(&activity).Error)

	wijaya := f.participant(t, "Ayu", "Wijaya")
	abdullah := f.participant(t, "Rani", "Abdullah")
	chen := f.participant(t, "Mei", "Chen")
	budiarto := f.participant(t, "Joko", "Budiarto")

	out := time.Date(2025, 6, 11, 17, 0, 0, 0, time.UTC)
	method := recordModel.MethodStaffScan
	hours := 8.0

	f.record(t, recordModel.AttendanceRecordModel{
		ParticipantID: wijaya.ID, EventID: f.event.ID, ActivityID: activity.ID,
		Date:        reviewDate,
		CheckInTime: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), CheckInMethod: method,
		CheckOutTime: &out, CheckOutMethod: &method, HoursWorked: &hours,
		ReviewStatus: recordModel.ReviewPending,
	})

	f.record(t, recordModel.AttendanceRecordModel{
		ParticipantID: abdullah.ID, EventID: f.event.ID, ActivityID: activity.ID,
		Date:        reviewDate,
		CheckInTime: time.Date(2025, 6, 11, 8, 0, 0, 0, time.UTC), CheckInMethod: method,
		Flags:        []string{string(recordModel.FlagEarlyArrival)},
		ReviewStatus: recordModel.ReviewFlagged,
	})

	modReason := "Check-Out changed from 2025-06-11 16:00 to 2025-06-11 17:00. Reason: typo"
	f.record(t, recordModel.AttendanceRecordModel{
		ParticipantID: chen.ID, EventID: f.event.ID, ActivityID: activity.ID,
		Date:        reviewDate,
		CheckInTime: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), CheckInMethod: method,
		CheckOutTime: &out, CheckOutMethod: &method, HoursWorked: &hours,
		ModificationReason: &modReason,
		ReviewStatus:       recordModel.ReviewPending,
	})

	voidReason := "duplicate scan"
	f.record(t, recordModel.AttendanceRecordModel{
		ParticipantID: budiarto.ID, EventID: f.event.ID, ActivityID: activity.ID,
		Date:        reviewDate,
		CheckInTime: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC), CheckInMethod: method,
		CheckOutTime: &out, CheckOutMethod: &method, HoursWorked: &hours,
		IsVoided: true, VoidReason: &voidReason,
		ReviewStatus: recordModel.ReviewPending,
	})

	return f
}

func (f *reviewFixture) participant(t *testing.T, first, last string) participantModel.ParticipantModel {
	t.Helper()
	p := participantModel.ParticipantModel{FirstName: first, LastName: last}
	require.NoError(t, f.db.Create(&p).Error)
	return p
}

func (f *reviewFixture) record(t *testing.T, rec recordModel.AttendanceRecordModel) {
	t.Helper()
	require.NoError(t, f.db.Create(&rec).Error)
}

func TestDailySummaryCounts(t *testing.T) {
	f := newReviewFixture(t)

	sum, err := f.svc.DailySummary(f.event.ID, reviewDate)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.Total)
	assert.Equal(t, 1, sum.Flagged)
	assert.Equal(t, 1, sum.NoCheckout)
	assert.Equal(t, 1, sum.Modified)
	assert.Equal(t, 1, sum.Voided)
}

func TestDailySummaryEmptyDay(t *testing.T) {
	f := newReviewFixture(t)

	sum, err := f.svc.DailySummary(f.event.ID, reviewDate.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Equal(t, dto.DailySummary{}, *sum)
}

func TestRecordsSortedBySurname(t *testing.T) {
	f := newReviewFixture(t)

	rows, err := f.svc.Records(f.event.ID, reviewDate, "", dto.CategoryAll)
	require.NoError(t, err)

	names := make([]string, 0, len(rows))
	for _, r := range rows {
		names = append(names, r.ParticipantName)
	}
	// voided Budiarto never appears in the list
	assert.Equal(t, []string{"Rani Abdullah", "Mei Chen", "Ayu Wijaya"}, names)
}

func TestRecordsCategoryFilters(t *testing.T) {
	f := newReviewFixture(t)

	tests := []struct {
		category string
		want     []string
	}{
		{dto.CategoryFlagged, []string{"Rani Abdullah"}},
		{dto.CategoryNoCheckout, []string{"Rani Abdullah"}},
		{dto.CategoryModified, []string{"Mei Chen"}},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			rows, err := f.svc.Records(f.event.ID, reviewDate, "", tt.category)
			require.NoError(t, err)
			names := make([]string, 0, len(rows))
			for _, r := range rows {
				names = append(names, r.ParticipantName)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestRecordsSearchIsCaseInsensitive(t *testing.T) {
	f := newReviewFixture(t)

	rows, err := f.svc.Records(f.event.ID, reviewDate, "CHE", dto.CategoryAll)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Mei Chen", rows[0].ParticipantName)

	rows, err = f.svc.Records(f.event.ID, reviewDate, "nobody", dto.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestRecordsUnknownCategory(t *testing.T) {
	f := newReviewFixture(t)

	_, err := f.svc.Records(f.event.ID, reviewDate, "", "bogus")
	var fe *fiber.Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestRecordsOtherEventExcluded(t *testing.T) {
	f := newReviewFixture(t)

	rows, err := f.svc.Records(uuid.New(), reviewDate, "", dto.CategoryAll)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
