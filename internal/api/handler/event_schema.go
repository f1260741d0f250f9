package handler

import "time"

type createEventRequest struct {
	Title       string    `json:"title"       validate:"required,min=3,max=255"`
	ImageURL    *string   `json:"image_url"   validate:"omitempty,url"`
	Description *string   `json:"description"`
	StartTime   time.Time `json:"start_time"  validate:"required"`
	EndTime     time.Time `json:"end_time"    validate:"required"`
}

// updateEventRequest is a patch: nil fields are left unchanged.
type updateEventRequest struct {
	Title       *string    `json:"title"       validate:"omitempty,min=3,max=255"`
	ImageURL    *string    `json:"image_url"   validate:"omitempty,url"`
	Description *string    `json:"description"`
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
}

type createdIDResponse struct {
	ID int64 `json:"id"`
}
