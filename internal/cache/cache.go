package cache

// Cache stores rendered reports keyed by report ID.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
