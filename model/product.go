package model

import "time"

type Product struct {
	ID        uint64    `db:"id" json:"id"`
	SKU       string    `db:"sku" json:"sku"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	Unit      string    `db:"unit" json:"unit"`
	ImageURL  string    `db:"image_url" json:"image_url"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

type ProductFilter struct {
	Query    string
	Category string
	OrderBy  string
	Page     int
	PageSize int
}

type CreateProductRequest struct {
	SKU      string `json:"sku" validate:"required,max=32"`
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=50"`
	Unit     string `json:"unit" validate:"max=20"`
	ImageURL string `json:"image_url" validate:"max=255"`
}

// UpdateProductRequest only touches the fields that are set.
type UpdateProductRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1,max=100"`
	Category *string `json:"category" validate:"omitempty,max=50"`
	Unit     *string `json:"unit" validate:"omitempty,max=20"`
	ImageURL *string `json:"image_url" validate:"omitempty,max=255"`
}

type ProductListResponse struct {
	Items      []Product `json:"items"`
	Total      int64     `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int64     `json:"total_pages"`
}
