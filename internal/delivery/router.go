package delivery

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// NewRouter builds the gin engine with recovery, request IDs, request
// logging and the product routes.
func NewRouter(productHandler *ProductHandler, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.RedirectTrailingSlash = false
	router.Use(gin.Recovery())
	router.Use(RequestID())
	router.Use(RequestLogger(logger))

	productHandler.RegisterRoutes(router)
	return router
}
