package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the health and document endpoints on router.
func RegisterRoutes(router gin.IRouter, health *HealthHandler, docs *DocumentHandler) {
	router.GET("/health", health.Health)
	router.GET("/health/ready", health.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/info", health.Info)

		documents := v1.Group("/documents")
		{
			documents.POST("/faas", docs.ComposeFaas)
			documents.POST("/tax-declaration", docs.ComposeTaxDeclaration)
			documents.POST("/batch", docs.ComposeBatch)
		}

		v1.GET("/records/:faasId/document", docs.ComposeRecord)
	}
}
