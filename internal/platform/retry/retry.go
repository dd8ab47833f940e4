package retry

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const DefaultAttempts = 3

// Error indica que se agotaron todos los intentos.
// Envuelve el último error subyacente (compatible con errors.Is/As).
type Error struct {
	Attempts int
	Last     error
}

func (e *Error) Error() string {
	return fmt.Sprintf("all %d attempts failed: %v", e.Attempts, e.Last)
}

func (e *Error) Unwrap() error { return e.Last }

// Do ejecuta op hasta `attempts` veces y retorna el primer resultado exitoso.
// Cada intento re-ejecuta el closure COMPLETO desde cero: no hay resume
// parcial de etapas. Los intentos son estrictamente secuenciales y sin
// backoff; los fallos intermedios se loguean y se tragan hasta agotar el
// presupuesto, donde se retorna un *Error con el último fallo.
func Do[T any](ctx context.Context, attempts int, log *zap.Logger, op func(context.Context) (T, error)) (T, error) {
	var zero T

	if attempts <= 0 {
		attempts = DefaultAttempts
	}
	if log == nil {
		log = zap.NewNop()
	}

	var last error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return zero, err
		}

		out, err := op(ctx)
		if err == nil {
			return out, nil
		}

		last = err
		log.Warn("attempt failed",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", attempts),
			zap.Error(err),
		)
	}

	return zero, &Error{Attempts: attempts, Last: last}
}
