package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nkshtr/CropIn/internal/service"
)

// AdvisoryHandler serves the advisory content and mock data endpoints.
type AdvisoryHandler struct {
	svc service.AdvisoryService
}

// NewAdvisoryHandler creates a new advisory handler.
func NewAdvisoryHandler(svc service.AdvisoryService) *AdvisoryHandler {
	return &AdvisoryHandler{svc: svc}
}

// Crops godoc
// @Summary Crop growing guides
// @Tags advisory
// @Produce json
// @Success 200 {array} model.CropAdvisory
// @Router /advisory/crops [get]
func (h *AdvisoryHandler) Crops(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Crops())
}

// SoilGuides godoc
// @Summary Soil test interpretation guides
// @Tags advisory
// @Produce json
// @Success 200 {array} model.SoilGuide
// @Router /advisory/soil [get]
func (h *AdvisoryHandler) SoilGuides(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.SoilGuides())
}

// PestAlerts godoc
// @Summary Known pest alerts with treatments
// @Tags advisory
// @Produce json
// @Success 200 {array} model.PestAlert
// @Router /advisory/pests [get]
func (h *AdvisoryHandler) PestAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.PestAlerts())
}

// Schemes godoc
// @Summary Government support schemes for farmers
// @Tags advisory
// @Produce json
// @Success 200 {array} model.Scheme
// @Router /advisory/schemes [get]
func (h *AdvisoryHandler) Schemes(c echo.Context) error {
	return c.JSON(http.StatusOK, h.svc.Schemes())
}

// MarketPrices godoc
// @Summary Current commodity prices
// @Tags advisory
// @Produce json
// @Success 200 {array} model.MarketPrice
// @Router /market/prices [get]
func (h *AdvisoryHandler) MarketPrices(c echo.Context) error {
	prices, err := h.svc.MarketPrices(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load prices")
	}
	return c.JSON(http.StatusOK, prices)
}

// Weather godoc
// @Summary Weather snapshot for a coordinate pair
// @Tags advisory
// @Produce json
// @Param lat query number true "Latitude"
// @Param lon query number true "Longitude"
// @Success 200 {object} model.WeatherReport
// @Failure 400 {object} errors.ErrorResponse
// @Router /weather [get]
func (h *AdvisoryHandler) Weather(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lat")
	}
	lon, err := strconv.ParseFloat(c.QueryParam("lon"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lon")
	}

	report, err := h.svc.Weather(c.Request().Context(), lat, lon)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load weather")
	}
	return c.JSON(http.StatusOK, report)
}
