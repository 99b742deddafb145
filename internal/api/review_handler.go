package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/review-analyzer-api/internal/config"
	"github.com/review-analyzer-api/internal/service"
	"github.com/rs/zerolog"
)

// ReviewHandler handles the review endpoints
type ReviewHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "review").Logger(),
	}
}

// ListReviews handles GET /?location=...&start_date=...&end_date=...
// Responds with the matching reviews ranked by descending sentiment
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	filter, err := service.ParseFilter(c.Query("location"), c.Query("start_date"), c.Query("end_date"))
	if err != nil {
		var dateErr *service.DateParseError
		if errors.As(err, &dateErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": dateErr.Error(), "received": dateErr.Value})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reviews, err := h.services.Review.Query(c.Request.Context(), filter)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to query reviews")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query reviews"})
		return
	}

	c.IndentedJSON(http.StatusOK, reviews)
}

// CreateReview handles POST /
// Accepts a JSON object or a form-encoded body with ReviewBody and Location
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.cfg.Server.MaxBodyBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Request body too large"})
			return
		}
		h.log.Warn().Err(err).Msg("Failed to read request body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Empty request body"})
		return
	}

	fields, err := decodePayload(c.ContentType(), body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "received": string(body)})
		return
	}

	review, err := h.services.Review.Submit(c.Request.Context(), fields)
	if err != nil {
		var invalid *service.InvalidInputError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "received": fields})
			return
		}
		h.log.Error().Err(err).Msg("Failed to create review")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create review"})
		return
	}

	c.JSON(http.StatusCreated, review)
}
