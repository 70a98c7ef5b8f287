package request

import (
	"restaurant-api/internal/usecase/commands"
)

type CreateTableRequest struct {
	Number      int    `json:"number" binding:"required,min=1"`
	Capacity    int    `json:"capacity" binding:"required,min=1"`
	IsAvailable *bool  `json:"is_available,omitempty"`
	Location    string `json:"location,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r CreateTableRequest) ToInput() commands.CreateTableInput {
	return commands.CreateTableInput{
		Number:      r.Number,
		Capacity:    r.Capacity,
		IsAvailable: r.IsAvailable,
		Location:    r.Location,
		Description: r.Description,
	}
}

type UpdateTableRequest struct {
	Number      *int    `json:"number,omitempty" binding:"omitempty,min=1"`
	Capacity    *int    `json:"capacity,omitempty" binding:"omitempty,min=1"`
	IsAvailable *bool   `json:"is_available,omitempty"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

func (r UpdateTableRequest) ToInput() commands.UpdateTableInput {
	return commands.UpdateTableInput{
		Number:      r.Number,
		Capacity:    r.Capacity,
		IsAvailable: r.IsAvailable,
		Location:    r.Location,
		Description: r.Description,
	}
}
