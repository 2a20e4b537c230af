package models

// SwatchSyncResponse reports a swatch cache sync
type SwatchSyncResponse struct {
	Total      int      `json:"total"`
	Downloaded int      `json:"downloaded"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors"`
}
