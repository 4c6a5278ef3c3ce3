package client

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// QueryFunc is the call signature middleware wraps.
type QueryFunc func(ctx context.Context, query string, params ...interface{}) ([]RowData, []string, error)

// Middleware wraps query execution with cross-cutting behavior such as
// logging or timing. Middleware added first runs outermost.
type Middleware func(next QueryFunc) QueryFunc

// Use registers middleware on the client. Not safe to call concurrently
// with Query; register everything before serving traffic.
func (c *Client) Use(m ...Middleware) {
	c.middlewares = append(c.middlewares, m...)
}

// chain composes the registered middleware around the raw query path.
func (c *Client) chain(base QueryFunc) QueryFunc {
	fn := base
	for i := len(c.middlewares) - 1; i >= 0; i-- {
		fn = c.middlewares[i](fn)
	}
	return fn
}

// LoggingMiddleware logs every statement with its parameters and duration
// at debug level. Failures are logged at error level.
func LoggingMiddleware() Middleware {
	return func(next QueryFunc) QueryFunc {
		return func(ctx context.Context, query string, params ...interface{}) ([]RowData, []string, error) {
			start := time.Now()
			rows, columns, err := next(ctx, query, params...)
			fields := log.Fields{
				"sql":      query,
				"params":   params,
				"duration": time.Since(start).Round(time.Microsecond).String(),
			}
			if err != nil {
				log.WithFields(fields).Errorf("Query failed: %v", err)
				return rows, columns, err
			}
			fields["rows"] = len(rows)
			log.WithFields(fields).Debug("Query executed")
			return rows, columns, err
		}
	}
}

// SlowQueryMiddleware warns when a statement takes longer than threshold.
func SlowQueryMiddleware(threshold time.Duration) Middleware {
	return func(next QueryFunc) QueryFunc {
		return func(ctx context.Context, query string, params ...interface{}) ([]RowData, []string, error) {
			start := time.Now()
			rows, columns, err := next(ctx, query, params...)
			if elapsed := time.Since(start); elapsed > threshold {
				log.WithFields(log.Fields{
					"sql":      query,
					"duration": elapsed.Round(time.Millisecond).String(),
				}).Warn("Slow query")
			}
			return rows, columns, err
		}
	}
}
