package model

import "studio/shared/model"

const (
	TableName  = "classes"
	EntityName = "class"

	FieldID              = "id"
	FieldInstructorName  = "instructor_name"
	FieldInstrument      = "instrument"
	FieldDescription     = "description"
	FieldHourlyRate      = "hourly_rate"
	FieldDurationMinutes = "duration_minutes"
	FieldImage           = "image"
	FieldActive          = "active"
)

// Class is a private lesson offering. Every session has the same fixed
// length, so a booking only picks a start and the end is derived.
type Class struct {
	ID              string  `db:"id"`
	InstructorName  string  `db:"instructor_name"`
	Instrument      string  `db:"instrument"`
	Description     string  `db:"description"`
	HourlyRate      float64 `db:"hourly_rate"`
	DurationMinutes int     `db:"duration_minutes"`
	Image           string  `db:"image"`
	Active          bool    `db:"active"`
	model.Metadata
}
