package entity

// FeaturedProduct entrada del arreglo de destacados. Category es una referencia por
// nombre, no una clave foránea: una referencia que no existe se muestra tal cual.
// Los destacados se guardan como una secuencia ordenada (arreglo) y se direccionan
// por posición, no por clave.
type FeaturedProduct struct {
	Product
	Category string `json:"category"`
}
