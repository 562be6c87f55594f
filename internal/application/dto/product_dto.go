package dto

import "github.com/shopspring/decimal"

// SaveProductRequest entrada para crear o editar un producto. Se escribe el
// registro completo: un campo omitido en la edición queda en su valor cero, no se
// conserva el anterior (semántica de reemplazo total del almacén).
// Price es puntero para distinguir "ausente" (error de validación) de 0.
type SaveProductRequest struct {
	Name        string           `json:"name" form:"name" validate:"required,min=1,max=200"`
	Price       *decimal.Decimal `json:"price"`
	Description string           `json:"description" form:"description"`
	Available   bool             `json:"available" form:"available"`
	Rating      float64          `json:"rating" form:"rating"`
	Reviews     int              `json:"reviews" form:"reviews"`
	Stock       int              `json:"stock" form:"stock"`
	Tags        []string         `json:"tags"`
	ImageURL    string           `json:"imageUrl" form:"imageUrl"`
}

// PriceResponse precio con moneda fija.
type PriceResponse struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// ProductResponse salida de un producto con la imagen ya resuelta.
type ProductResponse struct {
	Key         string        `json:"key"`
	Name        string        `json:"name"`
	Price       PriceResponse `json:"price"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	Rating      float64       `json:"rating"`
	Reviews     int           `json:"reviews"`
	Stock       int           `json:"stock"`
	Tags        []string      `json:"tags"`
	ImageURL    string        `json:"imageUrl"`
}

// ProductListResponse productos de una categoría indexados por clave.
type ProductListResponse struct {
	Category string                     `json:"category"`
	Items    map[string]ProductResponse `json:"items"`
}

// ProductTreeResponse subárbol completo: categoría -> clave -> producto.
type ProductTreeResponse struct {
	Items map[string]map[string]ProductResponse `json:"items"`
}
