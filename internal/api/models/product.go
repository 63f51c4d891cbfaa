package models

// Product is an item users can mark as a favorite.
type Product struct {
	ID   int64  `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}

// CreateProductRequest defines the body of an admin product creation request.
type CreateProductRequest struct {
	Name string `json:"name" binding:"required"`
}
