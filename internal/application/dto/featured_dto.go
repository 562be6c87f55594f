package dto

// SaveFeaturedRequest entrada para crear o editar un destacado. Category es una
// referencia por nombre; no se valida contra las categorías existentes y una
// referencia sin resolver se muestra tal cual.
type SaveFeaturedRequest struct {
	SaveProductRequest
	Category string `json:"category" form:"category"`
}

// FeaturedResponse salida de un destacado; Position es su índice en la secuencia,
// que es también su dirección para editar y borrar.
type FeaturedResponse struct {
	Position    int           `json:"position"`
	Name        string        `json:"name"`
	Category    string        `json:"category"`
	Price       PriceResponse `json:"price"`
	Description string        `json:"description"`
	Available   bool          `json:"available"`
	Rating      float64       `json:"rating"`
	Reviews     int           `json:"reviews"`
	Stock       int           `json:"stock"`
	Tags        []string      `json:"tags"`
	ImageURL    string        `json:"imageUrl"`
}

// FeaturedListResponse secuencia ordenada de destacados.
type FeaturedListResponse struct {
	Items []FeaturedResponse `json:"items"`
}
