package middleware

import (
	"bytes"
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"wepresto-backend/internal/metrics"
)

// How long we wait on redis before letting the request through uncached.
const cacheOpTimeout = 2 * time.Second

// ---- Data types ----
type quoteEntry struct {
	Code      int       `json:"code"`
	Body      []byte    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

type respRecorder struct {
	w    http.ResponseWriter
	buf  *bytes.Buffer
	code int
}

func (r *respRecorder) Header() http.Header { return r.w.Header() }
func (r *respRecorder) Write(b []byte) (int, error) {
	if r.buf != nil {
		r.buf.Write(b)
	}
	return r.w.Write(b)
}
func (r *respRecorder) WriteHeader(statusCode int) { r.code = statusCode; r.w.WriteHeader(statusCode) }

// QuoteCache memoizes successful quote responses in redis, keyed by route
// path + query string. A summary is pure given (loan, reference date), so a
// short TTL only bounds staleness against movement writes from the payment
// workflows. Cache failures degrade to pass-through; they never fail the
// request.
func QuoteCache(rdb *redis.Client, ttl time.Duration, log *zap.Logger) echo.MiddlewareFunc {
	if log == nil {
		log = zap.NewNop()
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := buildKey(c.Path(), c.QueryString())
			ctx, cancel := context.WithTimeout(c.Request().Context(), cacheOpTimeout)
			defer cancel()

			if cur, err := loadEntry(ctx, rdb, key); err == nil && cur.Code != 0 {
				metrics.QuoteCacheHits.Inc()
				return c.Blob(cur.Code, echo.MIMEApplicationJSON, cur.Body)
			} else if err != nil && err != redis.Nil {
				log.Warn("quote cache read failed", zap.String("key", key), zap.Error(err))
			}

			rec := &respRecorder{w: c.Response().Writer, buf: &bytes.Buffer{}, code: http.StatusOK}
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}

			// Only memoize complete successful summaries.
			if rec.code == http.StatusOK {
				entry := quoteEntry{Code: rec.code, Body: rec.buf.Bytes(), CreatedAt: time.Now().UTC()}
				if err := saveEntry(context.Background(), rdb, key, entry, ttl); err != nil {
					log.Warn("quote cache write failed", zap.String("key", key), zap.Error(err))
				}
			}
			return nil
		}
	}
}
