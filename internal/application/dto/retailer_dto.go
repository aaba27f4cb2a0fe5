package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateRetailerRequest body para POST /api/retailers.
type CreateRetailerRequest struct {
	ShopName    string `json:"shop_name"`
	OwnerName   string `json:"owner_name"`
	PhoneNumber string `json:"phone_number"`
	Address     string `json:"address"`
}

// UpdateRetailerRequest body para PUT /api/retailers/:id. Solo se tocan las claves presentes.
type UpdateRetailerRequest struct {
	ShopName    Optional[string] `json:"shop_name" swaggertype:"string"`
	OwnerName   Optional[string] `json:"owner_name" swaggertype:"string"`
	PhoneNumber Optional[string] `json:"phone_number" swaggertype:"string"`
	Address     Optional[string] `json:"address" swaggertype:"string"`
}

// RetailerResponse retailer en respuestas.
type RetailerResponse struct {
	ID          string          `json:"id"`
	ShopName    string          `json:"shop_name"`
	OwnerName   string          `json:"owner_name"`
	PhoneNumber string          `json:"phone_number"`
	Address     string          `json:"address"`
	TotalDue    decimal.Decimal `json:"total_due" swaggertype:"number"`
	CreatedAt   time.Time       `json:"created_at"`
}
