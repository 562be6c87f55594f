package store

import (
	"context"
	"encoding/json"
	"io"
)

// Tree es el puerto del almacén jerárquico: lectura/escritura/borrado por ruta y
// suscripción a cambios de un subárbol. Las lecturas entregan el valor completo del
// subárbol (snapshot), nunca deltas; Set reemplaza el nodo completo, sin merge parcial.
type Tree interface {
	// Get devuelve el valor del subárbol en path, o nil si no existe.
	Get(ctx context.Context, path string) (json.RawMessage, error)
	// Set escribe el valor completo del nodo en path (reemplazo total).
	Set(ctx context.Context, path string, value any) error
	// Delete elimina el nodo y sus descendientes. Borrar una ruta ausente no es error.
	Delete(ctx context.Context, path string) error
	// Subscribe entrega una señal por cada cambio bajo path hasta que se cierre el handle.
	Subscribe(ctx context.Context, path string) (Subscription, error)
}

// Subscription handle explícito de una suscripción continua.
// Close cancela la entrega y debe invocarse exactamente una vez por ciclo de vida
// del consumidor; después de Close no llega ningún evento más.
type Subscription interface {
	Events() <-chan Event
	Close() error
}

// Event señal de cambio bajo el subárbol suscrito. No transporta el valor:
// el consumidor relee el subárbol completo.
type Event struct {
	Path string
}

// Blob es el puerto del almacén de objetos: subir por nombre y resolver la URL de
// descarga. Dos subidas con el mismo nombre se sobreescriben (limitación aceptada).
type Blob interface {
	Upload(ctx context.Context, name string, r io.Reader) (string, error)
	DownloadURL(ctx context.Context, name string) (string, error)
}
