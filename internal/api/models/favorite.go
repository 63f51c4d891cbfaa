package models

// Favorite links one user to one product. A (UserID, ProductID) pair exists at most once.
type Favorite struct {
	ID        int64 `db:"id" json:"id"`
	UserID    int64 `db:"user_id" json:"user_id"`
	ProductID int64 `db:"product_id" json:"product_id"`
}

// CreateFavoriteRequest defines the body of a favorite creation request.
type CreateFavoriteRequest struct {
	ProductID NumericID `json:"product_id" binding:"required"`
}
