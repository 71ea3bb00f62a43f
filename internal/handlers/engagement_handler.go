package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach-api/internal/services"
	"outreach-api/pkg/lambda"
)

// EngagementHandler records engagement events
type EngagementHandler struct {
	engagementService services.EngagementService
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementService services.EngagementService) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
	}
}

// @Summary Track an engagement event
// @Description Record one user action (e.g. contacting a legislator) in the engagement table
// @Tags engagement
// @Accept json
// @Produce json
// @Param event body models.EngagementEvent true "Engagement event"
// @Success 200 {object} StatusResponse
// @Failure 405 {string} string "Method not allowed"
// @Failure 500 {object} ErrorResponse
// @Router /track-engagement [post]
func (h *EngagementHandler) TrackEngagement(c *gin.Context) {
	var body []byte
	if c.Request.Method == http.MethodPost && c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			writeResponse(c, jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: err.Error()}, false))
			return
		}
	}

	writeResponse(c, h.track(c.Request.Context(), c.Request.Method, body))
}

// HandleTrack is the Lambda entry for the engagement recorder
func (h *EngagementHandler) HandleTrack(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return h.track(ctx, req.Method, req.Body), nil
}

// RejectMethod returns the 405 response for anything but POST, or nil when
// the method is accepted. It needs no dependencies so entry points can run
// it before building services.
func RejectMethod(method string) *lambda.Response {
	if method != http.MethodPost {
		return textResponse(http.StatusMethodNotAllowed, msgMethodNotAllowed)
	}
	return nil
}

func (h *EngagementHandler) track(ctx context.Context, method string, body []byte) *lambda.Response {
	if resp := RejectMethod(method); resp != nil {
		return resp
	}

	status, err := h.engagementService.Track(ctx, body)
	if err != nil {
		return jsonResponse(http.StatusInternalServerError, ErrorResponse{Error: err.Error()}, false)
	}

	return jsonResponse(http.StatusOK, StatusResponse{Status: string(status)}, status == services.TrackStatusTracked)
}
