package models

import "time"

// Provider is a salon/barbershop profile listed on the marketplace.
type Provider struct {
	ID           string `bson:"id" json:"id"`
	UserID       string `bson:"userId" json:"user_id"`
	SalonName    string `bson:"salonName" json:"salon_name"`
	CompanyName  string `bson:"companyName,omitempty" json:"company_name,omitempty"`
	FiscalCode   string `bson:"fiscalCode,omitempty" json:"fiscal_code,omitempty"`
	Description  string `bson:"description" json:"description"`
	Address      string `bson:"address" json:"address"`
	City         string `bson:"city" json:"city"`
	Country      string `bson:"country" json:"country"`
	Phone        string `bson:"phone" json:"phone"`
	Email        string `bson:"email" json:"email"`
	Website      string `bson:"website,omitempty" json:"website,omitempty"`
	Verified     bool   `bson:"verified" json:"verified"`
	Rating       float64 `bson:"rating" json:"rating"`
	ReviewCount  int     `bson:"reviewCount" json:"review_count"`
	Images       []string `bson:"images" json:"images"`
	LogoURL      string   `bson:"logoUrl,omitempty" json:"logo_url,omitempty"`
	SalonType    string   `bson:"salonType" json:"salon_type"` // women | men | unisex
	PriceRange   string   `bson:"priceRange,omitempty" json:"price_range,omitempty"`
	Facilities   []string `bson:"facilities,omitempty" json:"facilities,omitempty"`
	Languages    []string `bson:"languages,omitempty" json:"languages,omitempty"`
	PlusCode     string   `bson:"locationPlusCode,omitempty" json:"location_plus_code,omitempty"`
	LocationGeo  *GeoPoint `bson:"locationGeo,omitempty" json:"coordinates,omitempty"`
	WorkingHours WeeklySchedule `bson:"workingHours" json:"working_hours"`
	PaymentMethods ProviderPaymentMethods `bson:"paymentMethods" json:"payment_methods"`

	// Distance from the caller's location, populated by nearby queries only.
	Distance float64 `bson:"distance,omitempty" json:"distance,omitempty"`

	PasswordHash string `bson:"passwordHash,omitempty" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

// GeoPoint is stored as GeoJSON so Mongo 2dsphere indexes apply.
type GeoPoint struct {
	Type        string    `bson:"type" json:"-"`
	Coordinates []float64 `bson:"coordinates" json:"-"` // [lng, lat]
}

func NewGeoPoint(lat, lng float64) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{lng, lat}}
}

func (g *GeoPoint) Lat() float64 {
	if g == nil || len(g.Coordinates) != 2 {
		return 0
	}
	return g.Coordinates[1]
}

func (g *GeoPoint) Lng() float64 {
	if g == nil || len(g.Coordinates) != 2 {
		return 0
	}
	return g.Coordinates[0]
}

type ProviderPaymentMethods struct {
	Fiat          bool          `bson:"fiat" json:"fiat"`
	Crypto        bool          `bson:"crypto" json:"crypto"`
	BankAccounts  []BankAccount `bson:"bankAccounts,omitempty" json:"bank_accounts,omitempty"`
	CryptoWallets []string      `bson:"cryptoWallets,omitempty" json:"crypto_wallets,omitempty"`
}

type BankAccount struct {
	BankName string `bson:"bankName" json:"bank_name"`
	IBAN     string `bson:"iban" json:"iban"`
	SWIFT    string `bson:"swift,omitempty" json:"swift,omitempty"`
}
