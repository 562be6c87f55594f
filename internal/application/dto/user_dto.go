package dto

// CreateUserRequest entrada para crear un usuario del panel. Todos los campos son
// requeridos; el rol debe ser admin, editor o viewer.
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin editor viewer"`
}

// UpdateUserRequest entrada para editar un usuario. A diferencia del catálogo,
// la edición de usuarios hace merge: solo cambia los campos enviados y el
// password se conserva.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Role  *string `json:"role"`
}

// UserResponse salida de un usuario. Nunca incluye el password.
type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// UserListResponse usuarios indexados por id.
type UserListResponse struct {
	Items map[string]UserResponse `json:"items"`
}
