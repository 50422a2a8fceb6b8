package domain

// ConfigLoader reads the store configuration from a directory.
type ConfigLoader interface {
	Load(dir string) (StoreConfig, error)
}
