package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// Ninguno es fatal: los handlers los traducen a mensajes inline y el proceso sigue vivo.
var (
	ErrValidation         = errors.New("faltan campos requeridos")
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrAdminLimit         = errors.New("ya existe un administrador; solo se permite uno")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidPosition    = errors.New("posición fuera de rango")
)
