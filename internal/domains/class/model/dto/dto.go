package dto

import (
	"mime/multipart"

	"github.com/google/uuid"

	"studio/internal/domains/class/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type CreateClassRequest struct {
	InstructorName  string                `json:"instructor_name"  validate:"required,max=100"`
	Instrument      string                `json:"instrument"       validate:"required,max=100"`
	Description     string                `json:"description"      validate:"omitempty,max=1000"`
	HourlyRate      float64               `json:"hourly_rate"      validate:"required,gt=0"`
	DurationMinutes int                   `json:"duration_minutes" validate:"required,min=15,max=480"`
	Image           *multipart.FileHeader `json:"image"            validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile       multipart.File        `json:"-"`
	Active          *bool                 `json:"active"           validate:"omitempty"`
}

func (c *CreateClassRequest) ToModel(user string, imageURL string) model.Class {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Class{
		ID:              uuid.NewString(),
		InstructorName:  c.InstructorName,
		Instrument:      c.Instrument,
		Description:     c.Description,
		HourlyRate:      c.HourlyRate,
		DurationMinutes: c.DurationMinutes,
		Image:           imageURL,
		Active:          active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateClassRequest struct {
	InstructorName  string                `db:"instructor_name"  json:"instructor_name"  validate:"omitempty,max=100"`
	Instrument      string                `db:"instrument"       json:"instrument"       validate:"omitempty,max=100"`
	Description     string                `db:"description"      json:"description"      validate:"omitempty,max=1000"`
	HourlyRate      *float64              `db:"hourly_rate"      json:"hourly_rate"      validate:"omitempty,gt=0"`
	DurationMinutes *int                  `db:"duration_minutes" json:"duration_minutes" validate:"omitempty,min=15,max=480"`
	Image           *multipart.FileHeader `json:"image"          validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile       multipart.File        `json:"-"`
	Active          *bool                 `db:"active"           json:"active"           validate:"omitempty"`
}

type ClassResponse struct {
	ID              string  `json:"id"`
	InstructorName  string  `json:"instructor_name"`
	Instrument      string  `json:"instrument"`
	Description     string  `json:"description"`
	HourlyRate      float64 `json:"hourly_rate"`
	DurationMinutes int     `json:"duration_minutes"`
	Image           string  `json:"image"`
	Active          bool    `json:"active"`
	gDto.Metadata
}

func (r *ClassResponse) FromModel(model model.Class) {
	r.ID = model.ID
	r.InstructorName = model.InstructorName
	r.Instrument = model.Instrument
	r.Description = model.Description
	r.HourlyRate = model.HourlyRate
	r.DurationMinutes = model.DurationMinutes
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetClassesResponse struct {
	Classes   []ClassResponse `json:"classes"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetClassesResponse) FromModels(models []model.Class, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Classes = make([]ClassResponse, len(models))
	for i, mod := range models {
		r.Classes[i].FromModel(mod)
	}
}
