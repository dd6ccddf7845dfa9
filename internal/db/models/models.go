// Package models contains database model definitions.
package models

// All returns every model managed by the catalog store, in migration order.
func All() []interface{} {
	return []interface{}{
		&User{},
		&Setting{},
		&Group{},
		&Subgroup{},
		&Link{},
	}
}
