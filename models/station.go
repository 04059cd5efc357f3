package models

// Station represents a railway station
type Station struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Code  string `json:"code"`
	City  string `json:"city"`
	State string `json:"state"`
}
