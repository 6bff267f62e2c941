package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shiptrack/internal/service"

	_ "shiptrack/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Services bundles the business interfaces the handlers depend on.
type Services struct {
	Shipments     service.Shipments
	Catalog       service.Catalog
	Prefs         service.Prefs
	Contacts      service.Contacts
	Notifications service.Notifications
}

type Handler struct {
	svc  Services
	auth Authenticator
}

func NewHandler(svc Services, auth Authenticator) *Handler {
	return &Handler{svc: svc, auth: auth}
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})

	api := router.Group("/api")
	{
		// Public surface
		api.GET("/tracking/:number", h.GetTracking)
		api.GET("/services", h.ListServices)
		api.POST("/contact", h.SubmitContact)

		authed := api.Group("/", h.requireAuth(false))
		{
			authed.POST("/shipments", h.CreateShipment)
			authed.GET("/shipments", h.ListShipments)
			authed.GET("/shipments/world", h.WorldStats)
			authed.POST("/shipments/export", h.ExportShipments)
			authed.GET("/shipments/:id", h.GetShipment)
			authed.PATCH("/shipments/:id", h.PatchShipment)

			authed.GET("/email-preferences", h.GetPreferences)
			authed.POST("/email-preferences", h.SavePreferences)
			authed.DELETE("/email-preferences", h.ResetPreferences)
		}

		admin := api.Group("/", h.requireAuth(true))
		{
			admin.DELETE("/shipments/:id", h.DeleteShipment)
			admin.PATCH("/tracking/:number", h.UpdateTracking)

			admin.POST("/services", h.CreateService)
			admin.PATCH("/services/:id", h.UpdateService)
			admin.DELETE("/services/:id", h.DeleteService)

			admin.POST("/email/test", h.SendTestEmail)
			admin.GET("/admin/stats", h.GetStats)
			admin.GET("/admin/vehicles/stats", h.GetVehicleStats)
			admin.GET("/contact", h.ListContacts)
		}
	}

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
