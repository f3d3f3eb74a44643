package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	tt, err := time.Parse(time.RFC3339, s)
	assert.NoError(t, err)
	return tt.UTC()
}

func validInput(t *testing.T) EventInput {
	t.Helper()
	return EventInput{
		Title:       "Jazz Night",
		Description: "Live jazz downtown",
		Category:    "Music",
		Address:     "12 MG Road",
		City:        "Bangalore",
		Longitude:   77.5946,
		Latitude:    12.9716,
		StartDate:   mustTime(t, "2026-09-10T19:00:00Z"),
		EndDate:     mustTime(t, "2026-09-10T23:00:00Z"),
		Price:       250,
	}
}

func TestNewEvent(t *testing.T) {
	now := mustTime(t, "2026-09-01T10:00:00Z")

	t.Run("applies_defaults", func(t *testing.T) {
		e, err := NewEvent(validInput(t), StatusPending, now)
		assert.NoError(t, err)
		assert.NotEmpty(t, e.ID)
		assert.Equal(t, StatusPending, e.Status)
		assert.Equal(t, []string{DefaultImage}, e.Images)
		assert.Equal(t, DefaultOrganizer, e.OrganizerName)
		assert.Equal(t, now, e.CreatedAt)
		assert.Equal(t, now, e.UpdatedAt)
	})

	t.Run("keeps_supplied_images_and_organizer", func(t *testing.T) {
		in := validInput(t)
		in.Images = []string{"https://img.example/a.jpg", "  "}
		in.OrganizerName = "  Blue Note Club  "
		e, err := NewEvent(in, StatusApproved, now)
		assert.NoError(t, err)
		assert.Equal(t, []string{"https://img.example/a.jpg"}, e.Images)
		assert.Equal(t, "Blue Note Club", e.OrganizerName)
	})

	t.Run("normalizes_category_case", func(t *testing.T) {
		in := validInput(t)
		in.Category = "music"
		e, err := NewEvent(in, StatusPending, now)
		assert.NoError(t, err)
		assert.Equal(t, "Music", e.Category)
	})

	t.Run("collects_per_field_errors", func(t *testing.T) {
		in := validInput(t)
		in.Title = ""
		in.Category = "Underwater Basket Weaving"
		in.Price = -5
		_, err := NewEvent(in, StatusPending, now)
		assert.Error(t, err)
		appErr, ok := err.(*AppError)
		assert.True(t, ok)
		assert.Equal(t, CodeValidation, appErr.Code)
		assert.Contains(t, appErr.Meta, "title")
		assert.Contains(t, appErr.Meta, "category")
		assert.Contains(t, appErr.Meta, "price")
	})

	t.Run("rejects_overlong_title", func(t *testing.T) {
		in := validInput(t)
		in.Title = strings.Repeat("x", 201)
		_, err := NewEvent(in, StatusPending, now)
		assert.Error(t, err)
		assert.Contains(t, err.(*AppError).Meta, "title")
	})

	t.Run("rejects_end_before_start", func(t *testing.T) {
		in := validInput(t)
		in.EndDate = in.StartDate.Add(-time.Hour)
		_, err := NewEvent(in, StatusPending, now)
		assert.Error(t, err)
		assert.Contains(t, err.(*AppError).Meta, "endDate")
	})

	t.Run("rejects_end_equal_to_start", func(t *testing.T) {
		in := validInput(t)
		in.EndDate = in.StartDate
		_, err := NewEvent(in, StatusPending, now)
		assert.Error(t, err)
	})

	t.Run("rejects_out_of_range_coordinates", func(t *testing.T) {
		in := validInput(t)
		in.Latitude = 91
		_, err := NewEvent(in, StatusPending, now)
		assert.Error(t, err)
		assert.Equal(t, CodeInvalidCoords, err.(*AppError).Code)
	})
}

func TestValidatePoint(t *testing.T) {
	assert.NoError(t, ValidatePoint(0, 0))
	assert.NoError(t, ValidatePoint(180, 90))
	assert.NoError(t, ValidatePoint(-180, -90))
	assert.Error(t, ValidatePoint(180.1, 0))
	assert.Error(t, ValidatePoint(0, -90.1))
}

func TestApplyPatch(t *testing.T) {
	now := mustTime(t, "2026-09-01T10:00:00Z")
	later := mustTime(t, "2026-09-02T10:00:00Z")

	newEvent := func(t *testing.T) *Event {
		e, err := NewEvent(validInput(t), StatusApproved, now)
		assert.NoError(t, err)
		return e
	}

	strPtr := func(s string) *string { return &s }
	timePtr := func(tt time.Time) *time.Time { return &tt }

	t.Run("merges_only_present_fields", func(t *testing.T) {
		e := newEvent(t)
		err := e.ApplyPatch(EventPatch{Title: strPtr("Jazz Night Vol. 2")}, later)
		assert.NoError(t, err)
		assert.Equal(t, "Jazz Night Vol. 2", e.Title)
		assert.Equal(t, "Live jazz downtown", e.Description)
		assert.Equal(t, later, e.UpdatedAt)
	})

	t.Run("validates_dates_against_merged_record", func(t *testing.T) {
		e := newEvent(t)
		// Move start past the existing end without touching the end.
		badStart := e.EndDate.Add(time.Hour)
		err := e.ApplyPatch(EventPatch{StartDate: timePtr(badStart)}, later)
		assert.Error(t, err)
		assert.Contains(t, err.(*AppError).Meta, "endDate")
	})

	t.Run("never_touches_status", func(t *testing.T) {
		e := newEvent(t)
		err := e.ApplyPatch(EventPatch{Title: strPtr("Renamed")}, later)
		assert.NoError(t, err)
		assert.Equal(t, StatusApproved, e.Status)
	})

	t.Run("partial_coordinate_update_validated_as_pair", func(t *testing.T) {
		e := newEvent(t)
		lat := 200.0
		err := e.ApplyPatch(EventPatch{Latitude: &lat}, later)
		assert.Error(t, err)
		assert.Equal(t, CodeInvalidCoords, err.(*AppError).Code)
		assert.Equal(t, 12.9716, e.Latitude)
	})

	t.Run("empty_images_fall_back_to_default", func(t *testing.T) {
		e := newEvent(t)
		imgs := []string{"  "}
		err := e.ApplyPatch(EventPatch{Images: &imgs}, later)
		assert.NoError(t, err)
		assert.Equal(t, []string{DefaultImage}, e.Images)
	})

	t.Run("rejects_blank_title", func(t *testing.T) {
		e := newEvent(t)
		err := e.ApplyPatch(EventPatch{Title: strPtr("   ")}, later)
		assert.Error(t, err)
	})
}

func TestModerationTransitions(t *testing.T) {
	now := mustTime(t, "2026-09-01T10:00:00Z")

	pending := func(t *testing.T) *Event {
		e, err := NewEvent(validInput(t), StatusPending, now)
		assert.NoError(t, err)
		return e
	}

	t.Run("approve_from_pending", func(t *testing.T) {
		e := pending(t)
		assert.NoError(t, e.Approve(now))
		assert.Equal(t, StatusApproved, e.Status)
	})

	t.Run("reject_from_pending", func(t *testing.T) {
		e := pending(t)
		assert.NoError(t, e.Reject(now))
		assert.Equal(t, StatusRejected, e.Status)
	})

	t.Run("approved_is_terminal", func(t *testing.T) {
		e := pending(t)
		assert.NoError(t, e.Approve(now))
		err := e.Approve(now)
		assert.Error(t, err)
		assert.Equal(t, CodeInvalidState, err.(*AppError).Code)
		assert.Error(t, e.Reject(now))
	})

	t.Run("rejected_is_terminal", func(t *testing.T) {
		e := pending(t)
		assert.NoError(t, e.Reject(now))
		assert.Error(t, e.Approve(now))
		assert.Error(t, e.Reject(now))
	})
}

func TestNormalizeCategory(t *testing.T) {
	assert.Equal(t, "Music", NormalizeCategory("MUSIC"))
	assert.Equal(t, "Nightlife", NormalizeCategory(" nightlife "))
	assert.Equal(t, "", NormalizeCategory("karaoke"))
	assert.Equal(t, "", NormalizeCategory(""))
}

func TestEventStatus_Valid(t *testing.T) {
	assert.True(t, StatusPending.Valid())
	assert.True(t, StatusApproved.Valid())
	assert.True(t, StatusRejected.Valid())
	assert.False(t, EventStatus("published").Valid())
	assert.False(t, EventStatus("").Valid())
}
