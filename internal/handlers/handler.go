package handlers

import (
	"wiser_schedule/internal/logger"
	"wiser_schedule/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services    *service.Service
	log         *logger.Logger
	corsOrigins []string
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, corsOrigins ...string) *Handler {
	return &Handler{services: services, log: log, corsOrigins: corsOrigins}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	if len(h.corsOrigins) > 0 {
		cfg := cors.DefaultConfig()
		cfg.AllowOrigins = h.corsOrigins
		cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
		router.Use(cors.New(cfg))
	}

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Update stream (HTTP upgrade) on the same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		api.GET("/types", h.listTypes)
		api.GET("/hubs", h.listHubs)
		h.registerHubRoutes(api)
		h.registerEditorRoutes(api)
	}
}

func (h *Handler) registerHubRoutes(api *gin.RouterGroup) {
	hub := api.Group("/hubs/:hub")
	{
		hub.GET("/suntimes", h.getSunTimes)
		hub.PUT("/suntimes", h.setSunTimes)
		hub.GET("/rooms", h.listRooms)
		hub.GET("/devices", h.listDevices)

		schedules := hub.Group("/schedules")
		{
			schedules.GET("", h.listSchedules)
			schedules.POST("", h.createSchedule)

			one := schedules.Group("/:type/:id")
			{
				one.GET("", h.getSchedule)
				one.PUT("", h.saveSchedule)
				one.DELETE("", h.deleteSchedule)
				one.PUT("/name", h.renameSchedule)
				one.POST("/copy", h.copySchedule)
				one.PUT("/assignments", h.assignSchedule)
			}
		}
	}
}

func (h *Handler) registerEditorRoutes(api *gin.RouterGroup) {
	editor := api.Group("/editor")
	{
		editor.POST("", h.openEditor)

		session := editor.Group("/:session")
		{
			session.GET("", h.editorSnapshot)
			session.DELETE("", h.editorCancel)
			session.POST("/select", h.editorSelect)
			session.POST("/slots", h.editorAddSlot)
			session.DELETE("/slots", h.editorRemoveSlot)
			session.POST("/setpoint", h.editorSetSetpoint)
			session.POST("/special-time", h.editorSetSpecialTime)
			session.POST("/copy-day", h.editorCopyDay)
			session.POST("/drag/start", h.editorDragStart)
			session.POST("/drag/move", h.editorDragMove)
			session.POST("/drag/end", h.editorDragEnd)
			session.POST("/save", h.editorSave)
		}
	}
}
