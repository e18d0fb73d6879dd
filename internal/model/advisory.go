package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CropAdvisory is a static growing guide for one crop.
type CropAdvisory struct {
	Crop         string   `json:"crop"`
	Season       string   `json:"season"`
	SoilType     string   `json:"soil_type"`
	WaterNeeds   string   `json:"water_needs"`
	Fertilizers  []string `json:"fertilizers"`
	CommonPests  []string `json:"common_pests"`
	HarvestNotes string   `json:"harvest_notes"`
}

// SoilGuide is a static interpretation guide for a soil test band.
type SoilGuide struct {
	Parameter      string `json:"parameter"`
	OptimalRange   string `json:"optimal_range"`
	Deficiency     string `json:"deficiency"`
	Recommendation string `json:"recommendation"`
}

// PestAlert describes a known pest with its symptoms and treatment.
type PestAlert struct {
	Pest          string   `json:"pest"`
	AffectedCrops []string `json:"affected_crops"`
	Symptoms      string   `json:"symptoms"`
	Treatment     string   `json:"treatment"`
	Severity      string   `json:"severity"`
}

// Scheme is a government support program farmers can apply to.
type Scheme struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`
	Link        string `json:"link"`
}

// MarketPrice is the quoted mandi price for a commodity.
type MarketPrice struct {
	Commodity string          `json:"commodity"`
	Market    string          `json:"market"`
	Unit      string          `json:"unit"`
	Price     decimal.Decimal `json:"price"`
	Currency  string          `json:"currency"`
}

// WeatherReport is a point-in-time weather snapshot for a coordinate pair.
type WeatherReport struct {
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Temperature float64   `json:"temperature_c"`
	Humidity    int       `json:"humidity_pct"`
	WindSpeed   float64   `json:"wind_speed_kmh"`
	Condition   string    `json:"condition"`
	Advisory    string    `json:"advisory"`
	ObservedAt  time.Time `json:"observed_at"`
}
