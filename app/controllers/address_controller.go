package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/address-parser-ar/app/requests"
	"github.com/address-parser-ar/app/responses"
	"github.com/address-parser-ar/app/services"
	"github.com/address-parser-ar/helpers/utils"
	"github.com/address-parser-ar/pkg/addr"
	"go.uber.org/zap"
)

// AddressController exposes the address parser over HTTP.
type AddressController struct {
	parser       *addr.Parser
	reviews      *services.ReviewService
	cacheBackend string
	logger       *zap.Logger
}

func NewAddressController(parser *addr.Parser, reviews *services.ReviewService, cacheBackend string, logger *zap.Logger) *AddressController {
	return &AddressController{parser: parser, reviews: reviews, cacheBackend: cacheBackend, logger: logger}
}

// ParseAddress parses a single free-form address line. Inputs that resolve
// to unknown are queued for human review.
func (ac *AddressController) ParseAddress(c *gin.Context) {
	var req requests.ParseAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	requestID := utils.GenerateUUID()
	result := ac.parser.Parse(c.Request.Context(), req.Address)
	if result.Kind == "" {
		ac.reviews.Enqueue(req.Address)
	}

	c.JSON(http.StatusOK, responses.ParseAddressResponse{
		RequestID: requestID,
		Result:    result,
	})
}

// BatchParse parses a batch of address lines synchronously, one result per input.
func (ac *AddressController) BatchParse(c *gin.Context) {
	var req requests.BatchParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()
	results := make([]addr.AddressResult, len(req.Addresses))
	for i, line := range req.Addresses {
		results[i] = ac.parser.Parse(ctx, line)
	}

	c.JSON(http.StatusOK, responses.BatchParseResponse{Results: results})
}

// HealthCheck reports liveness and which cache backend is wired in.
func (ac *AddressController) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:       "ok",
		CacheBackend: ac.cacheBackend,
	})
}
