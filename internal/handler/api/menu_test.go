//go:build unit

package api_test

import (
	"net/http"
	"testing"

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

type MenuHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockMenuCommands
	mockQueries  *queriesmock.MockMenuQueries
	handler      *api.MenuHandler
}

func (s *MenuHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockMenuCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockMenuQueries(s.mockCtrl)
	s.handler = api.NewMenuHandler(s.mockCommands, s.mockQueries)

	s.router.POST("/menuitems", s.handler.Create)
	s.router.GET("/menuitems", s.handler.List)
	s.router.GET("/menuitems/:id", s.handler.Get)
	s.router.PUT("/menuitems/:id", s.handler.Update)
	s.router.DELETE("/menuitems/:id", s.handler.Delete)
}

func (s *MenuHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestMenuHandlerSuite(t *testing.T) {
	suite.Run(t, new(MenuHandlerTestSuite))
}

func (s *MenuHandlerTestSuite) TestList() {
	s.Run("success: lists every item without a filter", func() {
		view := builder.NewMenuItemBuilder().BuildReadModel()

		s.mockQueries.EXPECT().
			ListAll(gomock.Any(), nil).
			Return([]*queries.MenuItemView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menuitems", nil, "")

		var response []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(view.Name, response[0].Name)
	})

	s.Run("success: category query narrows the listing", func() {
		category := "Dessert"
		view := builder.NewMenuItemBuilder().WithName("Tiramisu").WithCategory(category).BuildReadModel()

		s.mockQueries.EXPECT().
			ListAll(gomock.Any(), &category).
			Return([]*queries.MenuItemView{view}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menuitems?category=Dessert", nil, "")

		var response []resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal("Dessert", response[0].Category)
	})
}

func (s *MenuHandlerTestSuite) TestCreate() {
	s.Run("success: returns 201 Created", func() {
		b := builder.NewMenuItemBuilder()
		reqBody := b.BuildCreateDTO()
		returnView := b.BuildReadModel()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menuitems", reqBody, "")

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
	})

	s.Run("success: a free item binds with a zero price", func() {
		b := builder.NewMenuItemBuilder().WithName("Tap Water").WithPriceCents(0)
		reqBody := b.BuildCreateDTO()
		returnView := b.BuildReadModel()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), reqBody.ToInput()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menuitems", reqBody, "")

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(0), response.PriceCents)
	})

	s.Run("error: 409 Conflict for a duplicate name", func() {
		reqBody := builder.NewMenuItemBuilder().BuildCreateDTO()

		s.mockCommands.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrDuplicateMenuName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menuitems", reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 Bad Request when the name is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/menuitems",
			map[string]any{"description": "no name", "price_cents": 500, "category": "Dessert"}, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *MenuHandlerTestSuite) TestGet() {
	s.Run("error: 404 Not Found for an unknown item", func() {
		id := uuid.New()

		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), id).
			Return(nil, queries.ErrMenuItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/menuitems/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}

func (s *MenuHandlerTestSuite) TestUpdate() {
	s.Run("success: price change is returned", func() {
		view := builder.NewMenuItemBuilder().WithPriceCents(1450).BuildReadModel()

		s.mockCommands.EXPECT().
			Update(gomock.Any(), view.ID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut,
			"/menuitems/"+view.ID.String(), map[string]any{"price_cents": 1450}, "")

		var response resdto.MenuItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1450), response.PriceCents)
	})
}

func (s *MenuHandlerTestSuite) TestDelete() {
	s.Run("success: returns 204 No Content", func() {
		id := uuid.New()

		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/menuitems/"+id.String(), nil, "")

		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for an unknown item", func() {
		id := uuid.New()

		s.mockCommands.EXPECT().
			Delete(gomock.Any(), id).
			Return(commands.ErrMenuItemNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/menuitems/"+id.String(), nil, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "not found")
	})
}
