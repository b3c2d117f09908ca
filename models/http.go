package models

// RegisterRequest is the body of POST /api/users/register.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/users/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned on a successful login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// CreateProductRequest is the body of POST /api/products.
type CreateProductRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Price       float64 `json:"price"`

	// Stock defaults to zero when omitted.
	Stock *int64 `json:"stock,omitempty"`
}

// UpdateProductRequest represents a partial update of a product.
// Only non-nil fields will be updated.
type UpdateProductRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int64   `json:"stock,omitempty"`

	// ClearDescription is set when the body carries an explicit
	// "description": null, which resets the column to NULL.
	ClearDescription bool `json:"-"`
}

// Empty reports whether the update carries no fields at all.
func (u UpdateProductRequest) Empty() bool {
	return u.Name == nil && u.Description == nil && u.Price == nil && u.Stock == nil && !u.ClearDescription
}

// ProductFilter holds the optional listing filters for GET /api/products.
// Absent (nil or empty) filters impose no constraint; present ones are
// combined with AND.
type ProductFilter struct {
	UserID   string   `json:"userId,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"`
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}
