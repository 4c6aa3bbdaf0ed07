package delivery

import (
	"net/http"
	"strconv"

	"products_api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type ProductHandler struct {
	useCase domain.ProductUseCase
	log     *logrus.Logger
}

func NewProductHandler(uc domain.ProductUseCase, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *ProductHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/ListProducts", h.ListProducts)
	router.GET("/SearchByTitle/:title", h.SearchByTitle)
	router.GET("/SearchByBrand/:brand", h.SearchByBrand)

	router.GET("/SortProducts", h.SortProducts)
	router.GET("/SortProducts/:column", h.SortProducts)
	router.GET("/SortProducts/:column/:order", h.SortProducts)

	router.GET("/PagedProducts", h.PagedProducts)
	router.GET("/PagedProducts/:pageNumber", h.PagedProducts)
	router.GET("/PagedProducts/:pageNumber/:pageSize", h.PagedProducts)

	router.GET("/health", h.Health)
}

func (h *ProductHandler) respond(c *gin.Context, handlerLogger logrus.FieldLogger, products []domain.Product, err error) {
	if err != nil {
		statusCode := mapErrorToStatus(err)
		if statusCode >= http.StatusInternalServerError {
			handlerLogger.Errorf("Request failed: %v", err)
		} else {
			handlerLogger.Warnf("Request rejected: %v", err)
		}
		ErrorResponse(c, statusCode, err.Error())
		return
	}
	if products == nil {
		products = []domain.Product{}
	}
	c.Set(resultCountKey, len(products))
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "ListProducts")
	products, err := h.useCase.ListProducts(c.Request.Context())
	h.respond(c, handlerLogger, products, err)
}

func (h *ProductHandler) SearchByTitle(c *gin.Context) {
	title := c.Param("title")
	handlerLogger := h.log.WithFields(logrus.Fields{"handler": "SearchByTitle", "title": title})
	products, err := h.useCase.SearchByTitle(c.Request.Context(), title)
	h.respond(c, handlerLogger, products, err)
}

func (h *ProductHandler) SearchByBrand(c *gin.Context) {
	brand := c.Param("brand")
	handlerLogger := h.log.WithFields(logrus.Fields{"handler": "SearchByBrand", "brand": brand})
	products, err := h.useCase.SearchByBrand(c.Request.Context(), brand)
	h.respond(c, handlerLogger, products, err)
}

func (h *ProductHandler) SortProducts(c *gin.Context) {
	column := c.Param("column")
	handlerLogger := h.log.WithFields(logrus.Fields{"handler": "SortProducts", "column": column})

	order, err := domain.ParseSortOrder(c.Param("order"))
	if err != nil {
		h.respond(c, handlerLogger, nil, err)
		return
	}

	products, err := h.useCase.SortProducts(c.Request.Context(), column, order)
	h.respond(c, handlerLogger, products, err)
}

func (h *ProductHandler) PagedProducts(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "PagedProducts")

	pageNumber, ok := intParam(c, "pageNumber", 1)
	if !ok {
		handlerLogger.Warnf("Invalid page number parameter: %s", c.Param("pageNumber"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid page number format")
		return
	}
	pageSize, ok := intParam(c, "pageSize", domain.DefaultPageSize)
	if !ok {
		handlerLogger.Warnf("Invalid page size parameter: %s", c.Param("pageSize"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid page size format")
		return
	}

	products, err := h.useCase.PagedProducts(c.Request.Context(), pageNumber, pageSize)
	h.respond(c, handlerLogger.WithFields(logrus.Fields{"page": pageNumber, "size": pageSize}), products, err)
}

func (h *ProductHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func intParam(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Param(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}
