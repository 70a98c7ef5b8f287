//go:build unit || e2e

package builder

import (
	"time"

	reqdto "restaurant-api/internal/handler/dto/request"
	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
)

type TableBuilder struct {
	ID          uuid.UUID
	Number      int
	Capacity    int
	IsAvailable bool
	Location    string
}

func NewTableBuilder() *TableBuilder {
	return &TableBuilder{
		ID:          uuid.New(),
		Number:      1,
		Capacity:    4,
		IsAvailable: true,
		Location:    "Main Hall",
	}
}

func (b *TableBuilder) BuildCreateDTO() reqdto.CreateTableRequest {
	return reqdto.CreateTableRequest{
		Number:      b.Number,
		Capacity:    b.Capacity,
		IsAvailable: &b.IsAvailable,
		Location:    b.Location,
	}
}

func (b *TableBuilder) BuildReadModel() *queries.TableView {
	now := time.Now()
	view := &queries.TableView{
		ID:          b.ID,
		Number:      b.Number,
		Capacity:    b.Capacity,
		IsAvailable: b.IsAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if b.Location != "" {
		loc := b.Location
		view.Location = &loc
	}
	return view
}

func (b *TableBuilder) WithNumber(number int) *TableBuilder {
	b.Number = number
	return b
}

func (b *TableBuilder) WithCapacity(capacity int) *TableBuilder {
	b.Capacity = capacity
	return b
}
