package models

import (
	"seffaflik/internal/analysis"
	"seffaflik/internal/model"
)

// SeriesInfo describes one catalog entry.
type SeriesInfo struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Category string   `json:"category"`
	Params   string   `json:"params"`
	Columns  []string `json:"columns"`
}

// FanOutInfo describes one all-entities aggregation.
type FanOutInfo struct {
	Name     string   `json:"name"`
	Title    string   `json:"title"`
	Entities string   `json:"entities"`
	Keys     []string `json:"keys"`
	Columns  []string `json:"columns,omitempty"`
	Volume   bool     `json:"volume_type"`
}

type CatalogResponse struct {
	Series  []SeriesInfo `json:"series"`
	FanOuts []FanOutInfo `json:"fan_outs"`
}

type EntitiesResponse struct {
	Kind      string         `json:"kind"`
	Source    string         `json:"source"`
	UpdatedAt string         `json:"updated_at,omitempty"`
	Entities  []model.Entity `json:"entities"`
	Count     int            `json:"count"`
}

// RankResponse represents the response from ranking entities
type RankResponse struct {
	Rankings []Ranking `json:"rankings"`
}

// Ranking is one entity column of a fan-out table.
type Ranking struct {
	Rank int `json:"rank"`
	analysis.ColumnSummary
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}
