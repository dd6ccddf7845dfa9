package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/navportal/navportal/internal/auth"
	"github.com/navportal/navportal/internal/db/dbtest"
)

func TestLoadSecret(t *testing.T) {
	ctx := context.Background()
	db := dbtest.New(t)

	configured, err := auth.LoadSecret(ctx, db, "from-config")
	require.NoError(t, err)
	assert.Equal(t, []byte("from-config"), configured)

	first, err := auth.LoadSecret(ctx, db, "")
	require.NoError(t, err)
	assert.Len(t, first, 64)

	second, err := auth.LoadSecret(ctx, db, "")
	require.NoError(t, err)
	assert.Equal(t, first, second, "generated secret is kept")

	require.NoError(t, auth.RotateSecret(ctx, db))

	rotated, err := auth.LoadSecret(ctx, db, "")
	require.NoError(t, err)
	assert.NotEqual(t, first, rotated)
}
