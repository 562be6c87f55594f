package entity

// Roles válidos para AdminUser.
const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleViewer = "viewer"
)

// AdminUser usuario del panel. El ID lo asigna la aplicación al crearlo.
// El password se almacena y compara en texto plano (igualdad exacta en el login).
// Invariante: a lo sumo un usuario con role=admin, verificado con lectura previa
// al escribir, sin transacción.
type AdminUser struct {
	ID       string `json:"-"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"` // admin, editor, viewer
}

// ValidRole indica si r es uno de los roles conocidos.
func ValidRole(r string) bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}
