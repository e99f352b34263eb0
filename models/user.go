package models

import "time"

const (
	UserTypeCustomer = "customer"
	UserTypeProvider = "provider"
	UserTypeAdmin    = "admin"
)

// User is a marketplace account. Providers additionally own a Provider
// profile linked through Provider.UserID.
type User struct {
	ID        string `bson:"id" json:"id"`
	Email     string `bson:"email" json:"email"`
	Name      string `bson:"name,omitempty" json:"name,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL string `bson:"avatarUrl,omitempty" json:"avatar_url,omitempty"`
	UserType  string `bson:"userType" json:"user_type"`

	PasswordHash string `bson:"passwordHash" json:"-"`
	TokenHash    string `bson:"tokenHash,omitempty" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"-"`

	Preferences UserPreferences `bson:"preferences" json:"preferences"`

	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}

type UserPreferences struct {
	Notifications     bool   `bson:"notifications" json:"notifications"`
	LocationSharing   bool   `bson:"locationSharing" json:"location_sharing"`
	PreferredLanguage string `bson:"preferredLanguage,omitempty" json:"preferred_language,omitempty"`
}
