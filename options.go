package probemap

import "log/slog"

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithLogger sets the logger used to report growth at debug level.
func WithLogger[K comparable, V any](logger *slog.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}
