package link

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/dbtest"
	"github.com/navportal/navportal/internal/db/models"
)

func strPtr(s string) *string { return &s }

func seedLinks(t *testing.T, db *gorm.DB) {
	t.Helper()

	now := time.Now()
	links := []models.Link{
		{ID: "l1", Title: "Wiki", Subtitle: "Team wiki", URL: "https://wiki.company.com", Icon: "w",
			GroupID: "ops", SubgroupID: strPtr("docs"), CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "l2", Title: "Grafana", Subtitle: "Dashboards 100%", URL: "https://grafana.company.com", Icon: "g",
			GroupID: "ops", CreatedAt: now.Add(-time.Hour)},
		{ID: "l3", Title: "CI", Subtitle: "Build_pipeline", URL: "https://ci.company.com", Icon: "c",
			GroupID: "dev", CreatedAt: now},
	}

	for i := range links {
		require.NoError(t, Create(db, &links[i]))
	}
}

func TestList(t *testing.T) {
	db := dbtest.New(t)
	seedLinks(t, db)

	links, err := List(db)
	require.NoError(t, err)
	require.Len(t, links, 3)
	assert.Equal(t, "l3", links[0].ID, "newest first")
	assert.Equal(t, "l1", links[2].ID)
}

func TestListByGroup(t *testing.T) {
	db := dbtest.New(t)
	seedLinks(t, db)

	testCases := []struct {
		name       string
		groupID    string
		subgroupID *string
		expected   []string
	}{
		{name: "whole group", groupID: "ops", expected: []string{"l2", "l1"}},
		{name: "subgroup", groupID: "ops", subgroupID: strPtr("docs"), expected: []string{"l1"}},
		{name: "unknown subgroup", groupID: "ops", subgroupID: strPtr("none"), expected: []string{}},
		{name: "unknown group", groupID: "qa", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			links, err := ListByGroup(db, tc.groupID, tc.subgroupID)
			require.NoError(t, err)

			ids := []string{}
			for _, l := range links {
				ids = append(ids, l.ID)
			}

			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestSearch(t *testing.T) {
	db := dbtest.New(t)
	seedLinks(t, db)

	testCases := []struct {
		term     string
		expected []string
	}{
		{term: "wiki", expected: []string{"l1"}},
		{term: "GRAFANA", expected: []string{"l2"}},
		{term: "company.com", expected: []string{"l3", "l2", "l1"}},
		{term: "100%", expected: []string{"l2"}},
		{term: "_", expected: []string{"l3"}},
		{term: "nothing", expected: []string{}},
	}

	for _, tc := range testCases {
		t.Run(tc.term, func(t *testing.T) {
			links, err := Search(db, tc.term)
			require.NoError(t, err)

			ids := []string{}
			for _, l := range links {
				ids = append(ids, l.ID)
			}

			assert.Equal(t, tc.expected, ids)
		})
	}
}

func TestUpdateCountClearDelete(t *testing.T) {
	db := dbtest.New(t)
	seedLinks(t, db)

	count, err := CountByGroup(db, "ops")
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	updated, err := Update(db, &models.Link{ID: "l2", Title: "Grafana", Subtitle: "Metrics",
		URL: "https://grafana.company.com", Icon: "g", GroupID: "ops", SubgroupID: strPtr("docs")})
	require.NoError(t, err)
	assert.Equal(t, "Metrics", updated.Subtitle)
	require.NotNil(t, updated.SubgroupID)
	assert.Equal(t, "docs", *updated.SubgroupID)

	_, err = Update(db, &models.Link{ID: "missing", Title: "x", GroupID: "ops"})
	require.ErrorIs(t, err, ErrLinkNotFound)

	require.NoError(t, ClearSubgroup(db, "docs"))

	for _, id := range []string{"l1", "l2"} {
		l, err := Get(db, id)
		require.NoError(t, err)
		assert.Nil(t, l.SubgroupID)
	}

	require.NoError(t, Delete(db, "l1"))
	require.ErrorIs(t, Delete(db, "l1"), ErrLinkNotFound)

	require.ErrorIs(t, Create(db, &models.Link{ID: "l2", Title: "dup", GroupID: "ops"}), ErrDuplicate)
	require.ErrorIs(t, Create(db, &models.Link{Title: "no id", GroupID: "ops"}), ErrLinkIDEmpty)
}
