package model

import (
	"github.com/lib/pq"

	"studio/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID          = "id"
	FieldName        = "name"
	FieldType        = "type"
	FieldDescription = "description"
	FieldCapacity    = "capacity"
	FieldHourlyRate  = "hourly_rate"
	FieldAmenities   = "amenities"
	FieldImage       = "image"
	FieldActive      = "active"
)

const (
	TypePractice  = "practice"
	TypeRecording = "recording"
	TypeRehearsal = "rehearsal"
)

type Room struct {
	ID          string         `db:"id"`
	Name        string         `db:"name"`
	Type        string         `db:"type"`
	Description string         `db:"description"`
	Capacity    int            `db:"capacity"`
	HourlyRate  float64        `db:"hourly_rate"`
	Amenities   pq.StringArray `db:"amenities"`
	Image       string         `db:"image"`
	Active      bool           `db:"active"`
	model.Metadata
}
