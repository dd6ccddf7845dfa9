package models

// Setting represents a configuration value persisted by the daemon itself,
// e.g. the generated token signing secret.
type Setting struct {
	ID    uint64 `gorm:"primaryKey"`
	Name  string `gorm:"uniqueIndex;size:100;not null"`
	Value []byte
}
