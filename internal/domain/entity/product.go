package entity

import "github.com/shopspring/decimal"

// CurrencyCAD moneda fija de todos los precios del catálogo.
const CurrencyCAD = "CAD"

// Price precio de venta. Currency siempre es "CAD".
type Price struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Product representa un producto del catálogo, anidado bajo su categoría.
// Key se deriva del nombre y es único solo dentro de la categoría, no globalmente.
// ImageURL puede ser una URL http(s) directa o una referencia interna gs://
// que debe resolverse antes de mostrar.
type Product struct {
	Key         string   `json:"-"`
	Name        string   `json:"name"`
	Price       Price    `json:"price"`
	Description string   `json:"description"`
	Available   bool     `json:"available"`
	Rating      float64  `json:"rating"`
	Reviews     int      `json:"reviews"`
	Stock       int      `json:"stock"`
	Tags        []string `json:"tags"`
	ImageURL    string   `json:"imageUrl"`
}
