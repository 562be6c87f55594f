// seed crea el usuario administrador inicial y unas categorías de arranque si el
// almacén está vacío. Es idempotente: con datos existentes no escribe nada.
//
// Uso: go run ./cmd/seed
// El email y password del admin se leen de SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/chicvault/admin-api/internal/domain/entity"
	"github.com/chicvault/admin-api/internal/infrastructure/postgres"
	"github.com/chicvault/admin-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Conectar a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.EnsureSchema(ctx, pool); err != nil {
		fmt.Fprintf(os.Stderr, "Preparar esquema: %v\n", err)
		os.Exit(1)
	}
	tree := postgres.NewTreeStore(pool)

	userRepo := postgres.NewAdminUserRepository(tree)
	users, err := userRepo.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar usuarios: %v\n", err)
		os.Exit(1)
	}
	if len(users) > 0 {
		fmt.Println("Ya existen usuarios, no se siembra nada.")
		return
	}

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "SEED_ADMIN_EMAIL y SEED_ADMIN_PASSWORD son requeridos")
		os.Exit(1)
	}

	admin := &entity.AdminUser{
		ID:       uuid.New().String(),
		Name:     "Administrador",
		Email:    email,
		Password: password,
		Role:     entity.RoleAdmin,
	}
	if err := userRepo.Save(ctx, admin); err != nil {
		fmt.Fprintf(os.Stderr, "Crear admin: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Admin creado: %s (%s)\n", admin.Email, admin.ID)

	categoryRepo := postgres.NewCategoryRepository(tree)
	existing, err := categoryRepo.List(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Listar categorías: %v\n", err)
		os.Exit(1)
	}
	if len(existing) > 0 {
		return
	}
	for _, name := range []string{"Ropa", "Accesorios", "Calzado"} {
		c := &entity.Category{Key: name, Name: name}
		if err := categoryRepo.Save(ctx, c); err != nil {
			fmt.Fprintf(os.Stderr, "Crear categoría %s: %v\n", name, err)
			os.Exit(1)
		}
		fmt.Printf("Categoría creada: %s\n", name)
	}
}
