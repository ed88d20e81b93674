package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckAvailability(c *ginext.Context)
	FindAlternatives(c *ginext.Context)
	SearchHotels(c *ginext.Context)
	EnsureInventory(c *ginext.Context)
	UpdateCapacity(c *ginext.Context)
	UpdateClosedUnits(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Availability
		api.POST("/hotels/:id/availability", h.CheckAvailability)
		api.POST("/hotels/:id/alternatives", h.FindAlternatives)

		// Search
		api.POST("/search", h.SearchHotels)

		// Inventory administration
		api.POST("/room-types/:id/inventory", h.EnsureInventory)
		api.PUT("/room-types/:id/capacity", h.UpdateCapacity)
		api.PUT("/room-types/:id/closed-units", h.UpdateClosedUnits)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
