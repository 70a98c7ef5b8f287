//go:build unit || e2e

package builder

import (
	"time"

	"restaurant-api/internal/domain/reservation"
	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TableID   uuid.UUID
	StartTime time.Time
	EndTime   time.Time
	Guests    int
	Status    string
	Notes     string
}

func NewReservationBuilder() *ReservationBuilder {
	start := time.Date(2030, 6, 1, 18, 0, 0, 0, time.UTC)
	return &ReservationBuilder{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TableID:   uuid.New(),
		StartTime: start,
		EndTime:   start.Add(2 * time.Hour),
		Guests:    2,
		Status:    "Pending",
		Notes:     "",
	}
}

func (b *ReservationBuilder) BuildDomain() (*reservation.Reservation, error) {
	slot, err := reservation.NewTimeSlot(b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}

	status, err := reservation.NewStatus(b.Status)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return reservation.ReconstructReservation(
		b.ID, b.UserID, b.TableID, slot, b.Guests, status, b.Notes, now, now,
	), nil
}

func (b *ReservationBuilder) BuildCreateDTO() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		TableID:   b.TableID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Guests:    b.Guests,
		Notes:     b.Notes,
	}
}

func (b *ReservationBuilder) BuildReadModel() *queries.ReservationView {
	now := time.Now()
	view := &queries.ReservationView{
		ID:          b.ID,
		UserID:      b.UserID,
		UserName:    "Test User",
		TableID:     b.TableID,
		TableNumber: 1,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Guests:      b.Guests,
		Status:      b.Status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.Notes != "" {
		notes := b.Notes
		view.Notes = &notes
	}
	return view
}

func (b *ReservationBuilder) WithUserID(id uuid.UUID) *ReservationBuilder {
	b.UserID = id
	return b
}

func (b *ReservationBuilder) WithTableID(id uuid.UUID) *ReservationBuilder {
	b.TableID = id
	return b
}

func (b *ReservationBuilder) WithSlot(start, end time.Time) *ReservationBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *ReservationBuilder) WithGuests(guests int) *ReservationBuilder {
	b.Guests = guests
	return b
}

func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.Status = status
	return b
}

func (b *ReservationBuilder) WithNotes(notes string) *ReservationBuilder {
	b.Notes = notes
	return b
}
