package daemon

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/config"
	"github.com/navportal/navportal/internal/db/controller/group"
	"github.com/navportal/navportal/internal/db/controller/link"
	"github.com/navportal/navportal/internal/db/controller/setting"
	"github.com/navportal/navportal/internal/db/controller/user"
	"github.com/navportal/navportal/internal/db/dbtest"
)

func testConfig() *config.Config {
	return &config.Config{
		DevMode: true,
		Title:   "test",
		Auth: config.Auth{
			AdminUsername: "admin",
			AdminEmail:    "admin@company.com",
			AdminPassword: "Admin123",
			EmailDomain:   "@company.com",
			TokenTTL:      time.Hour,
		},
		Mail: config.Mail{Transport: config.MailTransportLog},
		Seed: config.Seed{DemoData: true},
	}
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)
	cfg := testConfig()

	require.NoError(t, seed(ctx, cfg, db))
	require.NoError(t, seed(ctx, cfg, db), "seeding twice keeps existing records")

	admin, err := user.GetByUsername(db, "admin")
	require.NoError(t, err)
	assert.True(t, admin.Active)
	assert.True(t, admin.VerifyPassword("Admin123"))

	groups, err := group.List(db)
	require.NoError(t, err)
	assert.Len(t, groups, len(demoGroups))

	links, err := link.List(db)
	require.NoError(t, err)
	assert.Len(t, links, len(demoLinks))
}

func TestSeedWithoutDemoData(t *testing.T) {
	db := dbtest.New(t)
	cfg := testConfig()
	cfg.Seed.DemoData = false
	cfg.Auth.AdminPassword = ""

	require.NoError(t, seed(context.Background(), cfg, db))

	exists, err := user.UsernameExists(db, "admin")
	require.NoError(t, err)
	assert.False(t, exists, "no admin without password")

	groups, err := group.List(db)
	require.NoError(t, err)
	assert.Empty(t, groups)
}

func TestBuild(t *testing.T) {
	db := dbtest.New(t)
	reg := prometheus.NewRegistry()

	d, err := build(context.Background(), testConfig(), db, reg, reg)
	require.NoError(t, err)

	_, err = setting.Get(db, auth.SettingTokenSecret)
	require.NoError(t, err, "generated secret is stored")

	resp, err := d.webService.App.Test(httptest.NewRequest(fiber.MethodGet, "/api/health", nil), -1)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	cfg := testConfig()
	cfg.Mail.Transport = "pigeon"

	_, err = build(context.Background(), cfg, db, prometheus.NewRegistry(), reg)
	require.Error(t, err)
}
