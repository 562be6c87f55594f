package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea la tabla de nodos del árbol si no existe, para poder arrancar
// sobre una base de datos vacía. Cada fila es un registro hoja: la ruta jerárquica
// completa como clave y el valor JSON del nodo.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS tree_nodes (
		path       TEXT PRIMARY KEY,
		value      JSONB NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`); err != nil {
		return fmt.Errorf("crear tree_nodes: %w", err)
	}

	// Índice para los barridos por prefijo (LIKE 'colección/%').
	if _, err := pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_tree_nodes_prefix
		ON tree_nodes (path text_pattern_ops)`); err != nil {
		return fmt.Errorf("crear índice de prefijo: %w", err)
	}

	return nil
}
