package config

const (
	// EngineSQLite selects the pure go sqlite driver.
	EngineSQLite = "sqlite"
	// EngineMySQL selects the mysql driver.
	EngineMySQL = "mysql"
	// EnginePostgres selects the postgres (pgx) driver.
	EnginePostgres = "postgres"
)

// DB holds the database configuration settings.
type DB struct {
	Extras     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	GormEngine string // sqlite, mysql or postgres
	File       string // sqlite database file
	SlowQuery  int    // milliseconds, queries slower than this are logged as warning
}
