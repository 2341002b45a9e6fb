package router

import "github.com/gin-gonic/gin"

// Register mounts the dialogue and registration admin routes on the
// given API group.
func Register(api *gin.RouterGroup, h *Handler) {
	api.POST("/chat", h.Chat)
	api.GET("/registrations", h.ListRegistrations)
	api.GET("/registrations/:session_id", h.GetRegistration)
	api.DELETE("/registrations", h.DeleteRegistrations)
	api.GET("/university-info", h.UniversityInfo)
}
