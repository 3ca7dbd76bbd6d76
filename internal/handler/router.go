package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"boxoffice/internal/domain/user"
	"boxoffice/internal/handler/api"
	"boxoffice/internal/handler/middleware"
	"boxoffice/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth      *api.AuthHandler
	Spot      *api.SpotHandler
	Catalog   *api.CatalogHandler
	Promotion *api.PromotionHandler
	Booking   *api.BookingHandler
	Customer  *api.CustomerHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, handlers Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handlers, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/refresh", Handler: h.Auth.Refresh},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		spot := apiGroup.Group("/spot/:terminal")
		spot.Use(authMiddleware.RequireAuth())
		{
			addRoutes(spot, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Spot.GetOrder},
				{Method: http.MethodPost, Path: "/lines", Handler: h.Spot.AddLine},
				{Method: http.MethodPut, Path: "/lines/:itemId", Handler: h.Spot.SetQuantity},
				{Method: http.MethodDelete, Path: "/lines/:index", Handler: h.Spot.RemoveLine},
				{Method: http.MethodPost, Path: "/discount", Handler: h.Spot.ApplyDiscount},
				{Method: http.MethodPost, Path: "/customer", Handler: h.Spot.SelectCustomer},
				{Method: http.MethodPost, Path: "/reset", Handler: h.Spot.Reset},
				{Method: http.MethodPost, Path: "/checkout", Handler: h.Spot.Checkout},
			})
		}

		adminOnly := []gin.HandlerFunc{authMiddleware.RequireRoleAtLeast(user.RoleAdmin)}

		ticketTypes := apiGroup.Group("/ticket-types")
		ticketTypes.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ticketTypes, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListTicketTypes},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetTicketType},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateTicketType, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateTicketType, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateTicketType, Mw: adminOnly},
			})
		}

		addons := apiGroup.Group("/addons")
		addons.Use(authMiddleware.RequireAuth())
		{
			addRoutes(addons, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListAddOns},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetAddOn},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateAddOn, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateAddOn, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateAddOn, Mw: adminOnly},
			})
		}

		timeSlots := apiGroup.Group("/time-slots")
		timeSlots.Use(authMiddleware.RequireAuth())
		{
			addRoutes(timeSlots, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListTimeSlots},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Catalog.GetTimeSlot},
				{Method: http.MethodPost, Path: "", Handler: h.Catalog.CreateTimeSlot, Mw: adminOnly},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Catalog.UpdateTimeSlot, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Catalog.DeactivateTimeSlot, Mw: adminOnly},
			})
		}

		promotions := apiGroup.Group("/promotions")
		promotions.Use(authMiddleware.RequireAuth())
		{
			addRoutes(promotions, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Promotion.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Promotion.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Promotion.Create, Mw: adminOnly},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Promotion.Update, Mw: adminOnly},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Promotion.Deactivate, Mw: adminOnly},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Booking.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id", Handler: h.Booking.UpdateStatus},
				{Method: http.MethodPost, Path: "/group", Handler: h.Booking.CreateGroup},
			})
		}

		customers := apiGroup.Group("/customers")
		customers.Use(authMiddleware.RequireAuth())
		{
			addRoutes(customers, []route{
				{Method: http.MethodGet, Path: "", Handler: h.Customer.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Create},
				{Method: http.MethodPut, Path: "/:id", Handler: h.Customer.Update},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete, Mw: adminOnly},
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
