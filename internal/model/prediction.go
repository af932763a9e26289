package model

// DeviceDescriptor is what the caller sends for each device to be scored.
// It is never persisted; the caller owns it for the duration of the request.
type DeviceDescriptor struct {
	ID                 string `json:"id"`       // Opaque storage id
	DeviceID           string `json:"deviceId"` // Human-facing code, e.g. VENT-004
	Type               string `json:"type"`
	CountryEvent       string `json:"countryEvent"`
	CountryDevice      string `json:"countryDevice"`
	ManufacturerID     string `json:"manufacturerId"`
	Name               string `json:"name"`
	Year               int    `json:"year"`
	QuantityInCommerce int    `json:"quantityInCommerce"`
}

// ModelInput is the exact field set the prediction model expects for one
// device. DeviceID here is the numeric key derived from the descriptor's
// code (digits only). Reason/Description come from the matched service
// record, or "N/A" when there is none. Lives only for one prediction call.
type ModelInput struct {
	DeviceID           int    `json:"deviceId"`
	Type               string `json:"type"`
	CountryEvent       string `json:"countryEvent"`
	CountryDevice      string `json:"countryDevice"`
	ManufacturerID     string `json:"manufacturerId"`
	Name               string `json:"name"`
	Year               int    `json:"year"`
	QuantityInCommerce int    `json:"quantityInCommerce"`
	Reason             string `json:"reason"`
	Description        string `json:"description"`
}
