package listsync

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/chicvault/admin-api/internal/domain/store"
	"github.com/chicvault/admin-api/pkg/logger"
)

// Transform produce la proyección lista para UI desde el snapshot crudo del
// subárbol (raw es nil si la ruta está ausente). Debe devolver siempre una
// proyección utilizable (un mapa vacío, nunca "nula") para que el consumidor
// pueda renderizar "sin elementos" sin comprobaciones extra.
type Transform[T any] func(ctx context.Context, raw json.RawMessage) (T, error)

// Controller mantiene viva una proyección en memoria de un subárbol remoto.
// En cada señal de cambio relee el valor completo del subárbol (el almacén entrega
// snapshots, no deltas), lo reconstruye desde cero y publica el reemplazo de forma
// atómica: el consumidor nunca observa un estado parcialmente resuelto.
//
// Cada Controller pertenece a un único consumidor (un montaje de vista): Start y
// Stop delimitan el ciclo de vida y la suscripción se cierra exactamente una vez.
type Controller[T any] struct {
	tree      store.Tree
	path      string
	transform Transform[T]
	log       *logger.Logger

	current atomic.Pointer[T]
	updates chan T
	sub     store.Subscription
	cancel  context.CancelFunc
	done    chan struct{}
	stop    sync.Once
}

// New construye el controlador para un subárbol. No inicia nada hasta Start.
func New[T any](tree store.Tree, path string, transform Transform[T], log *logger.Logger) *Controller[T] {
	return &Controller[T]{
		tree:      tree,
		path:      path,
		transform: transform,
		log:       log,
		updates:   make(chan T, 1),
	}
}

// Start abre la suscripción, publica la proyección inicial y arranca el bucle de
// refresco. Si falla, no queda ninguna suscripción viva.
func (c *Controller[T]) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(ctx)

	sub, err := c.tree.Subscribe(runCtx, c.path)
	if err != nil {
		cancel()
		return fmt.Errorf("suscribir %s: %w", c.path, err)
	}

	if err := c.refresh(runCtx); err != nil {
		_ = sub.Close()
		cancel()
		return err
	}

	c.sub = sub
	c.cancel = cancel
	c.done = make(chan struct{})
	go c.loop(runCtx)
	return nil
}

func (c *Controller[T]) loop(ctx context.Context) {
	defer close(c.done)
	for {
		select {
		case <-ctx.Done():
			return
		case _, ok := <-c.sub.Events():
			if !ok {
				return
			}
			if err := c.refresh(ctx); err != nil {
				// La proyección anterior sigue publicada; no se muestra nada parcial.
				c.log.Warn().Err(err).Str("path", c.path).Msg("refrescar proyección")
			}
		}
	}
}

// refresh relee el subárbol completo, lo transforma y publica el reemplazo.
func (c *Controller[T]) refresh(ctx context.Context) error {
	raw, err := c.tree.Get(ctx, c.path)
	if err != nil {
		return fmt.Errorf("leer %s: %w", c.path, err)
	}
	projection, err := c.transform(ctx, raw)
	if err != nil {
		return fmt.Errorf("transformar %s: %w", c.path, err)
	}
	c.current.Store(&projection)

	// Canal conflacionado: si el consumidor va atrasado se descarta la proyección
	// pendiente, porque la nueva ya la reemplaza por completo.
	select {
	case c.updates <- projection:
	default:
		select {
		case <-c.updates:
		default:
		}
		select {
		case c.updates <- projection:
		default:
		}
	}
	return nil
}

// Current devuelve la última proyección publicada. Solo es significativa después
// de un Start exitoso, que siempre publica la proyección inicial.
func (c *Controller[T]) Current() T {
	if p := c.current.Load(); p != nil {
		return *p
	}
	var zero T
	return zero
}

// Updates entrega cada proyección publicada al consumidor dueño del controlador.
func (c *Controller[T]) Updates() <-chan T { return c.updates }

// Stop cierra la suscripción y espera a que el bucle termine. Es alcanzable desde
// cualquier ruta de salida del consumidor y solo el primer Stop tiene efecto;
// después de Stop no se procesa ninguna notificación más.
func (c *Controller[T]) Stop() {
	c.stop.Do(func() {
		if c.cancel != nil {
			c.cancel()
		}
		if c.sub != nil {
			_ = c.sub.Close()
		}
		if c.done != nil {
			<-c.done
		}
	})
}
