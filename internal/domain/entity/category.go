package entity

// Category representa una categoría del catálogo.
// Key es el nombre del nodo en el árbol remoto: se deriva del nombre (URL-encoded)
// al crear la categoría y es inmutable; editarla no cambia la clave.
type Category struct {
	Key      string `json:"-"`
	Name     string `json:"name" form:"name"`
	ImageURL string `json:"imageUrl" form:"imageUrl"`
}
