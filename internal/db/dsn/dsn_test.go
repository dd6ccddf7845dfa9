package dsn

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/navportal/navportal/internal/config"
)

func TestCreate(t *testing.T) {
	db := config.DB{
		Host:     "db.local",
		Port:     3306,
		User:     "portal",
		Password: "secret",
		Name:     "navportal",
	}

	tests := []struct {
		name   string
		engine string
		file   string
		extras string
		want   string
	}{
		{
			name:   "mysql",
			engine: config.EngineMySQL,
			extras: "parseTime=True",
			want:   "portal:secret@tcp(db.local:3306)/navportal?parseTime=True",
		},
		{
			name:   "postgres",
			engine: config.EnginePostgres,
			extras: "sslmode=disable",
			want:   "host=db.local port=3306 user=portal password=secret dbname=navportal sslmode=disable",
		},
		{
			name:   "sqlite file",
			engine: config.EngineSQLite,
			file:   "portal.db",
			want:   "file:portal.db?_pragma=foreign_keys%281%29&_pragma=busy_timeout%285000%29",
		},
		{
			name:   "sqlite memory",
			engine: config.EngineSQLite,
			file:   ":memory:",
			want:   ":memory:",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{DB: db}
			cfg.DB.GormEngine = tt.engine
			cfg.DB.File = tt.file
			cfg.DB.Extras = tt.extras

			assert.Equal(t, tt.want, Create(cfg))
		})
	}
}

func TestPostgresQuoting(t *testing.T) {
	got := Postgres(config.DB{Host: "h", Port: 5432, User: "u", Password: "it's secret", Name: ""})
	assert.Equal(t, `host=h port=5432 user=u password='it\'s secret' dbname=''`, got)
}
