package response

import (
	"time"

	"restaurant-api/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TableResponse struct {
	ID          uuid.UUID `json:"id"`
	Number      int       `json:"number"`
	Capacity    int       `json:"capacity"`
	IsAvailable bool      `json:"isAvailable"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromTableView(view *queries.TableView) *TableResponse {
	var resp TableResponse
	_ = copier.Copy(&resp, view)
	return &resp
}

func FromTableViews(views []*queries.TableView) []*TableResponse {
	result := make([]*TableResponse, len(views))
	for i, v := range views {
		result[i] = FromTableView(v)
	}
	return result
}
