package services

import "context"

// SensorCache caches the last moisture reading for a short, explicit TTL.
// Get returns an empty string on a cache miss.
type SensorCache interface {
	Get(ctx context.Context) (string, error)

	Set(ctx context.Context, value string) error
}
