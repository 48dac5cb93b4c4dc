package models

import "time"

// WalletAccount is the general-purpose balance record provisioned at
// registration. One account per user.
type WalletAccount struct {
	ID        string    `bson:"id" json:"id"`
	OwnerID   string    `bson:"owner_id" json:"owner_id"`
	Balance   float64   `bson:"balance" json:"balance"`
	Currency  string    `bson:"currency" json:"currency"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// DefaultWalletCurrency is the implicit currency of the general wallet.
const DefaultWalletCurrency = "USD"
