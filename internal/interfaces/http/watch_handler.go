package http

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"github.com/chicvault/admin-api/internal/application/listsync"
	"github.com/chicvault/admin-api/internal/application/usecase"
	"github.com/chicvault/admin-api/internal/domain/store"
	"github.com/chicvault/admin-api/pkg/logger"
)

// Intervalo del comentario keep-alive; también acota cuánto tarda en detectarse
// un cliente desconectado sin tráfico.
const watchHeartbeat = 15 * time.Second

// WatchHandler expone cada colección como un stream SSE: un evento con el
// snapshot completo al conectar y otro por cada cambio en el subárbol. Cada
// conexión es dueña de su propio controlador de sincronización, que se detiene
// al desconectar.
type WatchHandler struct {
	tree store.Tree
	log  *logger.Logger

	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	featured   *usecase.FeaturedUseCase
	orders     *usecase.OrderUseCase
}

// NewWatchHandler construye el handler de streams.
func NewWatchHandler(tree store.Tree, log *logger.Logger, categories *usecase.CategoryUseCase, products *usecase.ProductUseCase, featured *usecase.FeaturedUseCase, orders *usecase.OrderUseCase) *WatchHandler {
	return &WatchHandler{tree: tree, log: log, categories: categories, products: products, featured: featured, orders: orders}
}

// Categories godoc
// @Summary      Stream de categorías (SSE)
// @Tags         watch
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200  {object}  dto.CategoryListResponse
// @Router       /api/watch/categories [get]
func (h *WatchHandler) Categories(c *fiber.Ctx) error {
	return streamProjection(c, h.tree, "categories", h.log, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return h.categories.List(ctx)
	})
}

// Products godoc
// @Summary      Stream del árbol de productos (SSE)
// @Tags         watch
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200  {object}  dto.ProductTreeResponse
// @Router       /api/watch/products [get]
func (h *WatchHandler) Products(c *fiber.Ctx) error {
	return streamProjection(c, h.tree, "products", h.log, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return h.products.ListAll(ctx)
	})
}

// Featured godoc
// @Summary      Stream de destacados (SSE)
// @Tags         watch
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200  {object}  dto.FeaturedListResponse
// @Router       /api/watch/featured [get]
func (h *WatchHandler) Featured(c *fiber.Ctx) error {
	return streamProjection(c, h.tree, "featuredProducts", h.log, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return h.featured.List(ctx)
	})
}

// Orders godoc
// @Summary      Stream de pedidos (SSE)
// @Tags         watch
// @Security     Bearer
// @Produce      text/event-stream
// @Success      200  {object}  dto.OrderListResponse
// @Router       /api/watch/orders [get]
func (h *WatchHandler) Orders(c *fiber.Ctx) error {
	return streamProjection(c, h.tree, "orders", h.log, func(ctx context.Context, _ json.RawMessage) (any, error) {
		return h.orders.List(ctx)
	})
}

// streamProjection mantiene un controlador de sincronización durante la vida de
// la conexión y escribe cada proyección publicada como evento SSE. La proyección
// se reconstruye con el caso de uso de listado, así el stream entrega exactamente
// lo mismo que el endpoint REST equivalente.
func streamProjection(c *fiber.Ctx, tree store.Tree, path string, log *logger.Logger, transform listsync.Transform[any]) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		ctrl := listsync.New(tree, path, transform, log)
		if err := ctrl.Start(context.Background()); err != nil {
			log.Error().Err(err).Str("path", path).Msg("iniciar stream")
			return
		}
		defer ctrl.Stop()

		// El Start ya publicó la proyección inicial en el canal, así que el primer
		// evento llega de inmediato.
		heartbeat := time.NewTicker(watchHeartbeat)
		defer heartbeat.Stop()
		for {
			select {
			case projection := <-ctrl.Updates():
				if err := writeSSE(w, projection); err != nil {
					return
				}
			case <-heartbeat.C:
				if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
					return
				}
				if err := w.Flush(); err != nil {
					return
				}
			}
		}
	}))
	return nil
}

func writeSSE(w *bufio.Writer, projection any) error {
	b, err := json.Marshal(projection)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "data: %s\n\n", b); err != nil {
		return err
	}
	return w.Flush()
}
