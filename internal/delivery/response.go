package delivery

import (
	"errors"
	"net/http"

	"products_api/internal/domain"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status  string `json:"Status"`
	Message string `json:"Message"`
}

func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "Fail",
		Message: message,
	})
}

func mapErrorToStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrUpstreamUnavailable), errors.Is(err, domain.ErrUpstreamMalformed):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrInvalidSortField),
		errors.Is(err, domain.ErrInvalidSortOrder),
		errors.Is(err, domain.ErrInvalidPagination):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
