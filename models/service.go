package models

import "time"

// Service is a bookable catalogue entry owned by a provider. Only active
// services may be booked.
type Service struct {
	ID          string  `bson:"id" json:"id"`
	ProviderID  string  `bson:"providerId" json:"provider_id"`
	Name        string  `bson:"name" json:"name"`
	Description string  `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64 `bson:"price" json:"price"`
	Duration    int     `bson:"duration" json:"duration"` // minutes
	Category    string  `bson:"category,omitempty" json:"category,omitempty"`
	ImageURL    string  `bson:"imageUrl,omitempty" json:"image_url,omitempty"`
	Active      bool    `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
