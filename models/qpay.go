package models

import "time"

// QPayAccount is the PIN-gated internal payment account. One per user,
// created on explicit opt-in.
type QPayAccount struct {
	ID              string    `bson:"id" json:"id"`
	OwnerID         string    `bson:"owner_id" json:"owner_id"`
	PinHash         string    `bson:"pin_hash" json:"-"`
	Balance         float64   `bson:"balance" json:"balance"`
	DiscountPercent float64   `bson:"discount_percent" json:"discount_percent"`
	Cashback        float64   `bson:"cashback" json:"cashback"`
	LastLoginAt     time.Time `bson:"last_login_at" json:"last_login_at"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}
