//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/handler/api"
	resdto "restaurant-api/internal/handler/dto/response"
	"restaurant-api/internal/usecase/commands"
	"restaurant-api/internal/usecase/queries"
	"restaurant-api/tests/common/builder"
	"restaurant-api/tests/common/httptest"
	commandsmock "restaurant-api/tests/mock/commands"
	queriesmock "restaurant-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
	actorRole    user.Role
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actorID = uuid.New()
	s.actorRole = user.RoleCustomer

	// Mimics what the auth middleware stores after token verification.
	injectActor := func(c *gin.Context) {
		c.Set("user_id", s.actorID)
		c.Set("user_role", s.actorRole)
	}

	s.router.POST("/reservations", injectActor, s.handler.Create)
	s.router.GET("/reservations", injectActor, s.handler.List)
	s.router.GET("/reservations/:id", injectActor, s.handler.Get)
	s.router.PUT("/reservations/:id", injectActor, s.handler.Update)
	s.router.PUT("/reservations/:id/status", injectActor, s.handler.UpdateStatus)
	s.router.DELETE("/reservations/:id", injectActor, s.handler.Delete)
	s.router.GET("/reservations/myreservations", injectActor, s.handler.ListMine)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	s.Run("success: returns 201 Created", func() {
		b := builder.NewReservationBuilder().WithUserID(s.actorID)
		reqBody := b.BuildCreateDTO()
		returnView := b.BuildReadModel()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), commands.Actor{ID: s.actorID, Role: s.actorRole}, reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Status, response.Status)
	})

	s.Run("error: 409 Conflict when the slot is taken", func() {
		reqBody := builder.NewReservationBuilder().BuildCreateDTO()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrSlotConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already reserved")
	})

	s.Run("error: 404 Not Found for unknown table", func() {
		reqBody := builder.NewReservationBuilder().BuildCreateDTO()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrTableNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})

	s.Run("error: 400 Bad Request for invalid body", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"guests": 0}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: 400 Bad Request for domain validation failures", func() {
		reqBody := builder.NewReservationBuilder().BuildCreateDTO()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Validation failed")
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	s.Run("success: returns the reservation", func() {
		view := builder.NewReservationBuilder().WithUserID(s.actorID).BuildReadModel()

		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), s.actorID, false, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+view.ID.String(), nil, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 400 Bad Request for malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid ID format")
	})
}

func (s *ReservationHandlerTestSuite) TestUpdateStatus() {
	s.Run("success: returns the updated reservation", func() {
		b := builder.NewReservationBuilder().WithStatus("Cancelled")
		view := b.BuildReadModel()

		s.mockCommands.EXPECT().
			UpdateStatus(gomock.Any(), view.ID, "Cancelled").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/reservations/"+view.ID.String()+"/status", map[string]any{"status": "Cancelled"}, "")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Cancelled", response.Status)
	})

	s.Run("error: 400 Bad Request when status is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/reservations/"+uuid.NewString()+"/status", map[string]any{}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *ReservationHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()

		s.mockCommands.EXPECT().
			Delete(gomock.Any(), commands.Actor{ID: s.actorID, Role: s.actorRole}, id).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 Forbidden for another user's reservation", func() {
		id := uuid.New()

		s.mockCommands.EXPECT().
			Delete(gomock.Any(), gomock.Any(), id).
			Return(commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/reservations/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: lists only the actor's reservations", func() {
		view := builder.NewReservationBuilder().WithUserID(s.actorID).BuildReadModel()

		s.mockQueries.EXPECT().
			ListByUser(gomock.Any(), s.actorID).
			Return([]*queries.ReservationView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/myreservations", nil, "")

		var response []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(s.actorID, response[0].UserID)
	})
}
