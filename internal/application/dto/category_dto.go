package dto

// SaveCategoryRequest entrada para crear o editar una categoría. ImageURL puede
// ser una URL directa o una referencia interna gs://; si la petición trae un
// archivo de imagen, este tiene prioridad y su URL resultante sustituye al campo.
type SaveCategoryRequest struct {
	Name     string `json:"name" form:"name" validate:"required,min=1,max=200"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
}

// CategoryResponse salida de una categoría con la imagen ya resuelta.
type CategoryResponse struct {
	Key      string `json:"key"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl"`
}

// CategoryListResponse colección de categorías indexada por clave.
type CategoryListResponse struct {
	Items map[string]CategoryResponse `json:"items"`
}
