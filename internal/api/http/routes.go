package http

import (
	"github.com/gin-gonic/gin"
)

// calculationRoutes pairs each calculation tool with its English and legacy paths
var calculationRoutes = []struct {
	tool  string
	paths []string
}{
	{"values.resolve", []string{"/api/values", "/api/valores"}},
	{"rates.resolve", []string{"/api/rates", "/api/tasas"}},
	{"factors.resolve", []string{"/api/factors", "/api/factores"}},
	{"gradients.resolve", []string{"/api/gradients", "/api/gradientes"}},
}

// RegisterRoutes mounts every API route on router
func RegisterRoutes(router gin.IRouter, h *Handlers) {
	router.GET("/", h.Root)
	router.GET("/health", h.Health)

	router.GET("/services", h.ListServices)
	router.GET("/services/discover", h.DiscoverServices)
	router.POST("/services/execute", h.ExecuteService)

	for _, route := range calculationRoutes {
		handler := h.Calculate(route.tool)
		for _, path := range route.paths {
			router.GET(path, handler)
		}
	}
}
