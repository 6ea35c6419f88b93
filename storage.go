package tracker

type Storage interface {
	Store(records []HistoryRecord) error
	Migrate() error
	Close() error
	GetStorageProviderName() string
	// Destination names where the records end up, e.g. a file path or table.
	Destination() string
}
