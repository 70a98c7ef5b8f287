package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"restaurant-api/internal/domain/user"
	"restaurant-api/internal/handler/api"
	"restaurant-api/internal/handler/middleware"
	"restaurant-api/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth        *api.AuthHandler
	Reservation *api.ReservationHandler
	Table       *api.TableHandler
	Menu        *api.MenuHandler
	Order       *api.OrderHandler
	Inventory   *api.InventoryHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	staffOnly := authMiddleware.RequireRoleAtLeast(user.RoleStaff)
	adminOnly := authMiddleware.RequireRoleAtLeast(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: h.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		// Menu reads are public; writes are staff operations.
		menu := apiGroup.Group("/menuitems")
		{
			addRoutes(menu, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Menu.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Menu.Get},
			})

			menuWrite := menu.Group("")
			menuWrite.Use(authMiddleware.RequireAuth(), staffOnly)
			addRoutes(menuWrite, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Menu.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Menu.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Menu.Delete},
			})
		}

		tables := apiGroup.Group("/tables")
		tables.Use(authMiddleware.RequireAuth())
		{
			addRoutes(tables, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Table.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Table.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Table.Create, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Table.Update, Mw: []gin.HandlerFunc{adminOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Table.Delete, Mw: []gin.HandlerFunc{adminOnly}},
			})
		}

		reservations := apiGroup.Group("/reservations")
		reservations.Use(authMiddleware.RequireAuth())
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Reservation.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/myreservations", Handler: h.Reservation.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Reservation.Update, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodPut, Path: "/:id/status", Handler: h.Reservation.UpdateStatus, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Reservation.Delete, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		orders := apiGroup.Group("/orders")
		orders.Use(authMiddleware.RequireAuth())
		{
			addRoutes(orders, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Order.Create},
				{Method: http.MethodGet, Path: "", Handler: h.Order.List, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodGet, Path: "/myorders", Handler: h.Order.ListMine},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Order.Get},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Order.Update, Mw: []gin.HandlerFunc{staffOnly}},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Order.Delete, Mw: []gin.HandlerFunc{staffOnly}},
			})
		}

		inventory := apiGroup.Group("/inventory")
		inventory.Use(authMiddleware.RequireAuth(), staffOnly)
		{
			addRoutes(inventory, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Inventory.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Inventory.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Inventory.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Inventory.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Inventory.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
