package models

// TimeSlot is a derived candidate appointment start. It is computed fresh per
// availability request and never persisted.
type TimeSlot struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
}

// SlotQuery carries the inputs of an availability request.
type SlotQuery struct {
	ProviderID string `json:"provider_id" form:"providerId"`
	ServiceID  string `json:"service_id" form:"serviceId"`
	Date       string `json:"date" form:"date"`
}
