package dto

import (
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"studio/internal/domains/room/model"
	"studio/shared"
	gDto "studio/shared/dto"
	gModel "studio/shared/model"
	"studio/shared/timezone"
)

type CreateRoomRequest struct {
	Name        string                `json:"name"        validate:"required,max=100"`
	Type        string                `json:"type"        validate:"required,oneof=practice recording rehearsal"`
	Description string                `json:"description" validate:"omitempty,max=1000"`
	Capacity    int                   `json:"capacity"    validate:"omitempty,min=0"`
	HourlyRate  float64               `json:"hourly_rate" validate:"required,gt=0"`
	Amenities   []string              `json:"amenities"   validate:"omitempty,dive,max=100"`
	Image       *multipart.FileHeader `json:"image"       validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `json:"active"      validate:"omitempty"`
}

func (c *CreateRoomRequest) ToModel(user string, imageURL string) model.Room {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Room{
		ID:          uuid.NewString(),
		Name:        c.Name,
		Type:        c.Type,
		Description: c.Description,
		Capacity:    c.Capacity,
		HourlyRate:  c.HourlyRate,
		Amenities:   pq.StringArray(c.Amenities),
		Image:       imageURL,
		Active:      active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Name        string                `db:"name"        json:"name"        validate:"omitempty,max=100"`
	Type        string                `db:"type"        json:"type"        validate:"omitempty,oneof=practice recording rehearsal"`
	Description string                `db:"description" json:"description" validate:"omitempty,max=1000"`
	Capacity    *int                  `db:"capacity"    json:"capacity"    validate:"omitempty,min=0"`
	HourlyRate  *float64              `db:"hourly_rate" json:"hourly_rate" validate:"omitempty,gt=0"`
	Amenities   pq.StringArray        `db:"amenities"   json:"amenities"   validate:"omitempty,dive,max=100"`
	Image       *multipart.FileHeader `json:"image"     validate:"omitempty,mimetypes=image/png image/jpg image/jpeg,maxfilesize=1"`
	ImageFile   multipart.File        `json:"-"`
	Active      *bool                 `db:"active"      json:"active"      validate:"omitempty"`
}

type RoomResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity"`
	HourlyRate  float64  `json:"hourly_rate"`
	Amenities   []string `json:"amenities"`
	Image       string   `json:"image"`
	Active      bool     `json:"active"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Name = model.Name
	r.Type = model.Type
	r.Description = model.Description
	r.Capacity = model.Capacity
	r.HourlyRate = model.HourlyRate
	r.Amenities = model.Amenities
	r.Image = model.Image
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
