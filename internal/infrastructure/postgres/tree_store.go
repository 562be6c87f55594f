package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chicvault/admin-api/internal/domain/store"
)

// Canal de NOTIFY compartido por todas las escrituras del árbol; el payload es la
// ruta modificada y cada suscripción filtra por su prefijo.
const treeChannel = "tree_changed"

var _ store.Tree = (*TreeStore)(nil)

// TreeStore implementa el puerto store.Tree sobre PostgreSQL: cada registro hoja es
// una fila path -> value (JSONB) y Get reconstruye el subárbol anidando las rutas
// relativas. Toda escritura reemplaza el nodo completo y publica la ruta con
// pg_notify; las suscripciones escuchan con LISTEN en una conexión dedicada.
type TreeStore struct {
	pool *pgxpool.Pool
}

// NewTreeStore construye el adaptador sobre el pool.
func NewTreeStore(pool *pgxpool.Pool) *TreeStore {
	return &TreeStore{pool: pool}
}

// Get devuelve el valor del subárbol en path: el de la fila exacta si existe, o el
// objeto anidado reconstruido desde las filas bajo el prefijo. Devuelve nil si no
// hay nada en esa ruta.
func (s *TreeStore) Get(ctx context.Context, path string) (json.RawMessage, error) {
	var raw []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM tree_nodes WHERE path = $1`, path).Scan(&raw)
	if err == nil {
		return raw, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("leer nodo %s: %w", path, err)
	}

	rows, err := s.pool.Query(ctx,
		`SELECT path, value FROM tree_nodes WHERE path LIKE $1 ESCAPE '\' ORDER BY path`,
		likePrefix(path))
	if err != nil {
		return nil, fmt.Errorf("leer subárbol %s: %w", path, err)
	}
	defer rows.Close()

	tree := map[string]any{}
	found := false
	for rows.Next() {
		var p string
		var v []byte
		if err := rows.Scan(&p, &v); err != nil {
			return nil, fmt.Errorf("scan nodo: %w", err)
		}
		found = true
		nest(tree, strings.Split(strings.TrimPrefix(p, path+"/"), "/"), json.RawMessage(v))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leer subárbol %s: %w", path, err)
	}
	if !found {
		return nil, nil
	}
	return json.Marshal(tree)
}

// Set escribe el valor completo del nodo en path. Cualquier contenido previo en la
// ruta (incluidas filas descendientes) se elimina primero: reemplazo total, sin merge.
func (s *TreeStore) Set(ctx context.Context, path string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("serializar nodo %s: %w", path, err)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin set: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM tree_nodes WHERE path = $1 OR path LIKE $2 ESCAPE '\'`,
		path, likePrefix(path)); err != nil {
		return fmt.Errorf("limpiar nodo %s: %w", path, err)
	}
	if _, err := tx.Exec(ctx,
		`INSERT INTO tree_nodes (path, value, updated_at) VALUES ($1, $2, now())`,
		path, payload); err != nil {
		return fmt.Errorf("escribir nodo %s: %w", path, err)
	}
	if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, treeChannel, path); err != nil {
		return fmt.Errorf("notificar cambio %s: %w", path, err)
	}
	return tx.Commit(ctx)
}

// Delete elimina el nodo y sus descendientes. Borrar una ruta ausente no es error.
func (s *TreeStore) Delete(ctx context.Context, path string) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin delete: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx,
		`DELETE FROM tree_nodes WHERE path = $1 OR path LIKE $2 ESCAPE '\'`,
		path, likePrefix(path)); err != nil {
		return fmt.Errorf("borrar nodo %s: %w", path, err)
	}
	if _, err := tx.Exec(ctx, `SELECT pg_notify($1, $2)`, treeChannel, path); err != nil {
		return fmt.Errorf("notificar borrado %s: %w", path, err)
	}
	return tx.Commit(ctx)
}

// Subscribe abre una suscripción continua a los cambios bajo path. Dedica una
// conexión del pool a LISTEN; el handle debe cerrarse para devolverla.
func (s *TreeStore) Subscribe(ctx context.Context, path string) (store.Subscription, error) {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return nil, fmt.Errorf("adquirir conexión LISTEN: %w", err)
	}
	if _, err := conn.Exec(ctx, "LISTEN "+treeChannel); err != nil {
		conn.Release()
		return nil, fmt.Errorf("LISTEN %s: %w", treeChannel, err)
	}

	subCtx, cancel := context.WithCancel(ctx)
	sub := &treeSubscription{
		conn:   conn,
		cancel: cancel,
		events: make(chan store.Event, 1),
	}
	go sub.loop(subCtx, path)
	return sub, nil
}

// treeSubscription entrega una señal por cambio bajo su prefijo. El canal tiene
// capacidad 1 y conflaciona: si ya hay una señal pendiente no se encola otra,
// porque el consumidor relee el subárbol completo de todas formas.
type treeSubscription struct {
	conn   *pgxpool.Conn
	cancel context.CancelFunc
	events chan store.Event
	once   sync.Once
}

func (t *treeSubscription) loop(ctx context.Context, prefix string) {
	defer close(t.events)
	defer t.conn.Release()
	for {
		n, err := t.conn.Conn().WaitForNotification(ctx)
		if err != nil {
			// Contexto cancelado (Close) o conexión caída: termina la entrega.
			return
		}
		if n.Payload != prefix && !strings.HasPrefix(n.Payload, prefix+"/") {
			continue
		}
		select {
		case t.events <- store.Event{Path: n.Payload}:
		default:
		}
	}
}

// Events canal de señales de cambio; se cierra al cerrar la suscripción.
func (t *treeSubscription) Events() <-chan store.Event { return t.events }

// Close cancela la entrega. Es seguro llamarlo más de una vez; solo el primer
// Close tiene efecto.
func (t *treeSubscription) Close() error {
	t.once.Do(t.cancel)
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePrefix construye el patrón LIKE que cubre los descendientes de path. Las
// claves derivadas de nombres contienen '%' literales (cada espacio es %20) y
// '_' es habitual en nombres, así que el prefijo se escapa para que LIKE lo
// trate como texto y no como patrón.
func likePrefix(path string) string {
	return likeEscaper.Replace(path) + "/%"
}

// nest inserta un valor hoja en el árbol anidado siguiendo los segmentos de ruta.
func nest(tree map[string]any, segments []string, value json.RawMessage) {
	if len(segments) == 1 {
		tree[segments[0]] = value
		return
	}
	child, ok := tree[segments[0]].(map[string]any)
	if !ok {
		child = map[string]any{}
		tree[segments[0]] = child
	}
	nest(child, segments[1:], value)
}
