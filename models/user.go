package models

import "time"

// Roles a user account can hold.
const (
	RoleCustomer = "customer"
	RoleProvider = "provider"
	RoleAdmin    = "admin"
)

// User represents a platform user. Providers additionally carry an
// occupation and a per-service charge.
type User struct {
	ID           string    `bson:"id" json:"id"`
	Name         string    `bson:"name" json:"name"`
	Email        string    `bson:"email" json:"email"`
	PhoneNumber  string    `bson:"phone_number" json:"phone_number"`
	Role         string    `bson:"role" json:"role"`
	PasswordHash string    `bson:"password_hash" json:"-"`
	Occupation   string    `bson:"occupation,omitempty" json:"occupation,omitempty"`
	Charge       float64   `bson:"charge,omitempty" json:"charge,omitempty"`
	Longitude    *float64  `bson:"longitude,omitempty" json:"longitude,omitempty"`
	Latitude     *float64  `bson:"latitude,omitempty" json:"latitude,omitempty"`
	ProfileImage string    `bson:"profile_image,omitempty" json:"profile_image,omitempty"`
	FCMToken     string    `bson:"fcm_token,omitempty" json:"-"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time `bson:"updated_at" json:"updated_at"`
}

// IsProvider reports whether the user offers paid services.
func (u *User) IsProvider() bool {
	return u.Role == RoleProvider
}

// UserUpdateRequest carries the mutable profile fields. Nil pointers mean
// "leave unchanged".
type UserUpdateRequest struct {
	ID          string   `json:"id"`
	Name        *string  `json:"name,omitempty"`
	Email       *string  `json:"email,omitempty"`
	PhoneNumber *string  `json:"phone_number,omitempty"`
	Password    *string  `json:"password,omitempty"`
	Occupation  *string  `json:"occupation,omitempty"`
	Charge      *float64 `json:"charge,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	FCMToken    *string  `json:"fcm_token,omitempty"`
}
