package request

import (
	"time"

	"restaurant-api/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	TableID   uuid.UUID `json:"table_id" binding:"required"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
	Guests    int       `json:"guests" binding:"required,min=1"`
	Notes     string    `json:"notes,omitempty"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		TableID:   r.TableID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Guests:    r.Guests,
		Notes:     r.Notes,
	}
}

type UpdateReservationRequest struct {
	TableID   *uuid.UUID `json:"table_id,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	EndTime   *time.Time `json:"end_time,omitempty"`
	Guests    *int       `json:"guests,omitempty" binding:"omitempty,min=1"`
	Status    *string    `json:"status,omitempty"`
	Notes     *string    `json:"notes,omitempty"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		TableID:   r.TableID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Guests:    r.Guests,
		Status:    r.Status,
		Notes:     r.Notes,
	}
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
