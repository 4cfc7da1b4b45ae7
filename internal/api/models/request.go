package models

// SeriesRequest is the query string of GET /api/v1/series/:name.
type SeriesRequest struct {
	APIKey    string `form:"api_key"`    // falls back to X-API-Key, then the server's key
	StartDate string `form:"start_date"` // YYYY-MM-DD, default today
	EndDate   string `form:"end_date"`   // YYYY-MM-DD, default today
	Entity    string `form:"entity"`     // EIC code or numeric id, endpoint dependent
	Period    string `form:"period"`     // hourly, daily, monthly, yearly
}

// AllRequest is the query string of GET /api/v1/all/:name.
type AllRequest struct {
	APIKey     string `form:"api_key"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	VolumeType string `form:"volume_type"` // NET, ARZ, TALEP
}

// RankRequest is the query string of GET /api/v1/rank/:name.
type RankRequest struct {
	AllRequest
	Limit int `form:"limit"` // default: 10
}

// EntitiesRequest is the query string of GET /api/v1/entities/:kind.
type EntitiesRequest struct {
	APIKey    string `form:"api_key"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
	Source    string `form:"source"` // "live" (default) or "file"
}
