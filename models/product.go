package models

import "time"

// Product is an item listed by a user. Only its owner may modify or delete it.
type Product struct {
	// ID is the opaque unique identifier (UUID) of the product.
	ID string `json:"id"`

	// Name is the product title, 2..200 characters.
	Name string `json:"name"`

	// Description is optional free text; nil when not provided.
	Description *string `json:"description"`

	// Price is a non-negative amount stored as NUMERIC(10,2).
	Price float64 `json:"price"`

	// Stock is the non-negative quantity on hand. Defaults to zero.
	Stock int64 `json:"stock"`

	// UserID references the owning [User].
	UserID string `json:"userId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// User is the owner summary, populated on read paths.
	User *ProductOwner `json:"user,omitempty"`
}

// TableName returns the name of the database table
// associated with the Product model.
func (p Product) TableName() string {
	return "products"
}

// OwnedBy reports whether userID is the owner of p.
func (p Product) OwnedBy(userID string) bool {
	return p.UserID != "" && p.UserID == userID
}

// ProductOwner is the owner summary embedded in product read responses.
type ProductOwner struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
