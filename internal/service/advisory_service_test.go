package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdvisoryService_StaticDatasets(t *testing.T) {
	svc := NewAdvisoryService(nil)

	assert.NotEmpty(t, svc.Crops())
	assert.NotEmpty(t, svc.SoilGuides())
	assert.NotEmpty(t, svc.PestAlerts())
	assert.NotEmpty(t, svc.Schemes())

	for _, crop := range svc.Crops() {
		assert.NotEmpty(t, crop.Crop)
		assert.NotEmpty(t, crop.Season)
	}

	for _, scheme := range svc.Schemes() {
		assert.NotEmpty(t, scheme.Title)
		assert.NotEmpty(t, scheme.Link)
	}
}

func TestAdvisoryService_MarketPrices(t *testing.T) {
	svc := NewAdvisoryService(nil)

	prices, err := svc.MarketPrices(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, prices)

	for _, p := range prices {
		assert.True(t, p.Price.IsPositive(), "%s price must be positive", p.Commodity)
		assert.Equal(t, "INR", p.Currency)
	}
}

func TestAdvisoryService_WeatherIsDeterministic(t *testing.T) {
	svc := NewAdvisoryService(nil)

	first, err := svc.Weather(context.Background(), 28.7041, 77.1025)
	assert.NoError(t, err)
	second, err := svc.Weather(context.Background(), 28.7041, 77.1025)
	assert.NoError(t, err)

	assert.Equal(t, first.Temperature, second.Temperature)
	assert.Equal(t, first.Humidity, second.Humidity)
	assert.Equal(t, first.Condition, second.Condition)

	assert.GreaterOrEqual(t, first.Temperature, 18.0)
	assert.LessOrEqual(t, first.Temperature, 34.0)
	assert.NotEmpty(t, first.Advisory)
}
