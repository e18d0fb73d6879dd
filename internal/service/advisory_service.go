package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/nkshtr/CropIn/internal/cache"
	"github.com/nkshtr/CropIn/internal/model"
)

const (
	advisoryCacheTTL = 5 * time.Minute
	marketPricesKey  = "market:prices"
)

// AdvisoryService serves the static advisory datasets plus the mock
// weather and market-price lookups. All content is in-process lookup
// data; there is no provider integration.
type AdvisoryService interface {
	Crops() []model.CropAdvisory
	SoilGuides() []model.SoilGuide
	PestAlerts() []model.PestAlert
	Schemes() []model.Scheme
	MarketPrices(ctx context.Context) ([]model.MarketPrice, error)
	Weather(ctx context.Context, lat, lon float64) (*model.WeatherReport, error)
}

type advisoryService struct {
	cache *cache.Client
}

// NewAdvisoryService creates an advisory service backed by the cache.
func NewAdvisoryService(cache *cache.Client) AdvisoryService {
	return &advisoryService{cache: cache}
}

func (s *advisoryService) Crops() []model.CropAdvisory {
	return cropAdvisories
}

func (s *advisoryService) SoilGuides() []model.SoilGuide {
	return soilGuides
}

func (s *advisoryService) PestAlerts() []model.PestAlert {
	return pestAlerts
}

func (s *advisoryService) Schemes() []model.Scheme {
	return schemes
}

// MarketPrices returns the current commodity quotes, cached for a few
// minutes to mirror how a real price feed would be read.
func (s *advisoryService) MarketPrices(ctx context.Context) ([]model.MarketPrice, error) {
	var cached []model.MarketPrice
	if s.cache.GetJSON(ctx, marketPricesKey, &cached) {
		return cached, nil
	}

	prices := marketPrices
	s.cache.SetJSON(ctx, marketPricesKey, prices, advisoryCacheTTL)
	return prices, nil
}

// Weather returns a deterministic mock report derived from the
// coordinates, cached per rounded coordinate pair.
func (s *advisoryService) Weather(ctx context.Context, lat, lon float64) (*model.WeatherReport, error) {
	key := fmt.Sprintf("weather:%.2f:%.2f", lat, lon)

	var cached model.WeatherReport
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	report := mockWeather(lat, lon)
	s.cache.SetJSON(ctx, key, report, advisoryCacheTTL)
	return report, nil
}

// mockWeather derives stable pseudo-readings from the coordinates so
// repeated calls for the same location agree.
func mockWeather(lat, lon float64) *model.WeatherReport {
	// seed stays in [0,1] so the ranges below hold.
	seed := math.Abs(math.Sin(lat*0.7) * math.Cos(lon*0.3))

	temp := 18 + seed*16          // 18..34 C
	humidity := 40 + int(seed*45) // 40..85 %
	wind := 4 + seed*14           // 4..18 km/h

	condition := "Clear"
	advisory := "Conditions are favorable for field work."
	if humidity > 70 {
		condition = "Humid"
		advisory = "High humidity; watch for fungal disease on standing crops."
	}
	if temp > 32 {
		condition = "Hot"
		advisory = "Heat stress likely; irrigate in the early morning or evening."
	}

	return &model.WeatherReport{
		Latitude:    lat,
		Longitude:   lon,
		Temperature: math.Round(temp*10) / 10,
		Humidity:    humidity,
		WindSpeed:   math.Round(wind*10) / 10,
		Condition:   condition,
		Advisory:    advisory,
		ObservedAt:  time.Now().UTC(),
	}
}

var cropAdvisories = []model.CropAdvisory{
	{
		Crop:         "Wheat",
		Season:       "Rabi (Nov-Apr)",
		SoilType:     "Well-drained loam",
		WaterNeeds:   "4-6 irrigations; critical at crown root initiation",
		Fertilizers:  []string{"Urea", "DAP", "Potash"},
		CommonPests:  []string{"Aphids", "Termites"},
		HarvestNotes: "Harvest when grain moisture falls below 14%.",
	},
	{
		Crop:         "Rice",
		Season:       "Kharif (Jun-Nov)",
		SoilType:     "Clay or clay loam, puddled",
		WaterNeeds:   "Standing water 5cm through tillering",
		Fertilizers:  []string{"Urea", "Zinc sulphate"},
		CommonPests:  []string{"Stem borer", "Brown planthopper"},
		HarvestNotes: "Drain fields 10 days before harvest.",
	},
	{
		Crop:         "Maize",
		Season:       "Kharif or spring",
		SoilType:     "Deep fertile loam, pH 5.5-7.5",
		WaterNeeds:   "Sensitive at tasseling; avoid waterlogging",
		Fertilizers:  []string{"NPK 120:60:40"},
		CommonPests:  []string{"Fall armyworm", "Shoot fly"},
		HarvestNotes: "Cobs ready when husks dry and kernels glaze.",
	},
	{
		Crop:         "Cotton",
		Season:       "Kharif (Apr-Dec)",
		SoilType:     "Black cotton soil",
		WaterNeeds:   "6-8 irrigations; drip preferred",
		Fertilizers:  []string{"Urea", "SSP", "MOP"},
		CommonPests:  []string{"Bollworm", "Whitefly"},
		HarvestNotes: "Pick in 3-4 rounds as bolls open.",
	},
}

var soilGuides = []model.SoilGuide{
	{
		Parameter:      "pH",
		OptimalRange:   "6.0 - 7.5",
		Deficiency:     "Below 5.5 most nutrients lock out; above 8.5 zinc and iron deficiency",
		Recommendation: "Lime acidic soils; gypsum for alkaline soils.",
	},
	{
		Parameter:      "Nitrogen (N)",
		OptimalRange:   "280 - 560 kg/ha",
		Deficiency:     "Pale yellow leaves, stunted growth",
		Recommendation: "Split urea application; add farmyard manure.",
	},
	{
		Parameter:      "Phosphorus (P)",
		OptimalRange:   "22 - 56 kg/ha",
		Deficiency:     "Purple leaf tint, poor root development",
		Recommendation: "Apply DAP or SSP at sowing.",
	},
	{
		Parameter:      "Potassium (K)",
		OptimalRange:   "140 - 280 kg/ha",
		Deficiency:     "Scorched leaf margins, weak stalks",
		Recommendation: "Apply MOP; avoid over-irrigation on sandy soils.",
	},
	{
		Parameter:      "Organic carbon",
		OptimalRange:   "0.5% - 0.75%",
		Deficiency:     "Poor structure and water retention",
		Recommendation: "Green manure, compost, crop-residue incorporation.",
	},
}

var pestAlerts = []model.PestAlert{
	{
		Pest:          "Fall armyworm",
		AffectedCrops: []string{"Maize", "Sorghum"},
		Symptoms:      "Ragged leaf feeding, sawdust-like frass in whorls",
		Treatment:     "Release Trichogramma; spray emamectin benzoate at economic threshold.",
		Severity:      "high",
	},
	{
		Pest:          "Brown planthopper",
		AffectedCrops: []string{"Rice"},
		Symptoms:      "Hopper burn: circular patches of dried plants",
		Treatment:     "Drain standing water; avoid excess nitrogen; apply buprofezin.",
		Severity:      "high",
	},
	{
		Pest:          "Aphids",
		AffectedCrops: []string{"Wheat", "Mustard", "Vegetables"},
		Symptoms:      "Curled leaves, honeydew, sooty mould",
		Treatment:     "Encourage ladybird beetles; neem oil 2% or imidacloprid if severe.",
		Severity:      "medium",
	},
	{
		Pest:          "Bollworm",
		AffectedCrops: []string{"Cotton", "Chickpea", "Tomato"},
		Symptoms:      "Bored bolls and fruit, shed squares",
		Treatment:     "Pheromone traps; Bt spray; rotate insecticide groups.",
		Severity:      "high",
	},
}

var schemes = []model.Scheme{
	{
		Title:       "Pradhan Mantri Kisan Samman Nidhi (PM-KISAN)",
		Description: "Financial support of ₹6,000 per year to farmer families across the country in three equal installments.",
		Eligibility: "All landholding farmer families.",
		Benefits:    "₹6,000 per year direct bank transfer.",
		Link:        "https://pmkisan.gov.in/",
	},
	{
		Title:       "Pradhan Mantri Fasal Bima Yojana (PMFBY)",
		Description: "Crop insurance scheme that provides financial support to farmers suffering crop loss/damage arising out of unforeseen events.",
		Eligibility: "Farmers growing notified crops in notified areas.",
		Benefits:    "Insurance coverage against crop loss.",
		Link:        "https://pmfby.gov.in/",
	},
	{
		Title:       "Soil Health Card Scheme",
		Description: "Provides information to farmers on nutrient status of their soil along with recommendation on appropriate dosage of nutrients.",
		Eligibility: "All farmers.",
		Benefits:    "Soil health report and fertilizer recommendations.",
		Link:        "https://soilhealth.dac.gov.in/",
	},
	{
		Title:       "Pradhan Mantri Krishi Sinchai Yojana (PMKSY)",
		Description: "Focuses on extending the coverage of irrigation and improving water use efficiency.",
		Eligibility: "Farmers with cultivable land.",
		Benefits:    "Subsidy on micro-irrigation systems (drip/sprinkler).",
		Link:        "https://pmksy.gov.in/",
	},
}

var marketPrices = []model.MarketPrice{
	{Commodity: "Wheat", Market: "Delhi", Unit: "quintal", Price: decimal.RequireFromString("2275.00"), Currency: "INR"},
	{Commodity: "Rice (Basmati)", Market: "Karnal", Unit: "quintal", Price: decimal.RequireFromString("3850.50"), Currency: "INR"},
	{Commodity: "Maize", Market: "Nizamabad", Unit: "quintal", Price: decimal.RequireFromString("2090.00"), Currency: "INR"},
	{Commodity: "Cotton", Market: "Rajkot", Unit: "quintal", Price: decimal.RequireFromString("6620.25"), Currency: "INR"},
	{Commodity: "Soybean", Market: "Indore", Unit: "quintal", Price: decimal.RequireFromString("4445.00"), Currency: "INR"},
	{Commodity: "Onion", Market: "Lasalgaon", Unit: "quintal", Price: decimal.RequireFromString("1310.00"), Currency: "INR"},
}
