package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach-api/internal/services"
	"outreach-api/pkg/lambda"
)

// GeocodeHandler proxies address lookups to the Census geocoder
type GeocodeHandler struct {
	geocodeService services.GeocodeService
}

// NewGeocodeHandler creates a new geocode handler
func NewGeocodeHandler(geocodeService services.GeocodeService) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeService: geocodeService,
	}
}

// @Summary Geocode an address
// @Description Resolve an address to its state legislative districts via the Census geocoder
// @Tags geocode
// @Produce json
// @Param address query string true "One-line address"
// @Success 200 {object} object "Upstream geocoder response"
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /geocode [get]
func (h *GeocodeHandler) Geocode(c *gin.Context) {
	writeResponse(c, h.geocode(c.Request.Context(), c.Query("address")))
}

// HandleGeocode is the Lambda entry for the geocode proxy
func (h *GeocodeHandler) HandleGeocode(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	return h.geocode(ctx, req.Query("address")), nil
}

func (h *GeocodeHandler) geocode(ctx context.Context, address string) *lambda.Response {
	data, err := h.geocodeService.Lookup(ctx, address)
	if err != nil {
		if errors.Is(err, services.ErrMissingAddress) {
			return jsonResponse(http.StatusBadRequest, ErrorResponse{Error: msgMissingAddress}, false)
		}
		return jsonResponse(http.StatusInternalServerError, ErrorResponse{
			Error:   msgCensusFailed,
			Details: err.Error(),
		}, false)
	}

	return rawJSONResponse(http.StatusOK, data, true)
}
