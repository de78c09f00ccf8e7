package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/address-parser-ar/app/requests"
	"github.com/address-parser-ar/app/responses"
	"github.com/address-parser-ar/app/services"
	"github.com/address-parser-ar/pkg/addr"
	"go.uber.org/zap"
)

// ReviewController exposes the human-review queue for addresses that parsed
// to unknown. It never feeds back into the parser itself.
type ReviewController struct {
	reviews *services.ReviewService
	logger  *zap.Logger
}

func NewReviewController(reviews *services.ReviewService, logger *zap.Logger) *ReviewController {
	return &ReviewController{reviews: reviews, logger: logger}
}

// ListReviews returns every queued entry.
func (rc *ReviewController) ListReviews(c *gin.Context) {
	entries := rc.reviews.List()
	c.JSON(http.StatusOK, responses.ReviewListResponse{Reviews: entries, Total: len(entries)})
}

// ResolveReview approves, rejects, or supplies a manual result for a queued entry.
func (rc *ReviewController) ResolveReview(c *gin.Context) {
	id := c.Param("id")
	var req requests.ReviewResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{Error: "invalid request: " + err.Error()})
		return
	}

	var manual *addr.AddressResult
	if req.ManualResult != nil {
		manual = &addr.AddressResult{
			Kind:        req.ManualResult.Kind,
			StreetNames: req.ManualResult.StreetNames,
			Floor:       req.ManualResult.Floor,
		}
		if req.ManualResult.DoorNumber != nil {
			manual.DoorNumber = &addr.DoorNumber{
				Unit:  req.ManualResult.DoorNumber.Unit,
				Value: req.ManualResult.DoorNumber.Value,
			}
		}
	}

	entry, err := rc.reviews.Resolve(id, req.Action, manual)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, responses.ReviewActionResponse{ReviewID: entry.ID, Status: entry.Status})
}
