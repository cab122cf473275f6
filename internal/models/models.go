package models

// All returns every model the schema is migrated for
func All() []any {
	return []any{
		&Counter{},
	}
}
