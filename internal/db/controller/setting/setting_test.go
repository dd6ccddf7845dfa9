package setting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/navportal/navportal/internal/db/dbtest"
	"github.com/navportal/navportal/internal/db/models"
)

// seedSettings inserts test data into the database.
func seedSettings(t *testing.T, db *gorm.DB, settings []models.Setting) {
	t.Helper()

	for _, s := range settings {
		require.NoError(t, db.Create(&s).Error, "failed to seed test data")
	}
}

func TestGet(t *testing.T) {
	db := dbtest.New(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingName   string
		seedData      []models.Setting
		expectedError error
		expectedValue []byte
	}{
		{
			name:          "nil database",
			dbParam:       nil,
			settingName:   "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			settingName:   "",
			expectedError: ErrSettingNameEmpty,
		},
		{
			name:          "setting not found",
			dbParam:       db,
			settingName:   "nonexistent",
			expectedError: ErrSettingNotFound,
		},
		{
			name:        "successful get",
			dbParam:     db,
			settingName: "token_secret",
			seedData: []models.Setting{
				{Name: "token_secret", Value: []byte("s3cr3t")},
			},
			expectedValue: []byte("s3cr3t"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// Clean database for each test
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			s, err := Get(tc.dbParam, tc.settingName)

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, s)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.settingName, s.Name)
			assert.Equal(t, tc.expectedValue, s.Value)
		})
	}
}

func TestCreate(t *testing.T) {
	db := dbtest.New(t)

	testCases := []struct {
		name          string
		dbParam       *gorm.DB
		settingName   string
		seedData      []models.Setting
		expectedError error
	}{
		{
			name:          "nil database",
			settingName:   "test",
			expectedError: ErrDBNil,
		},
		{
			name:          "empty name",
			dbParam:       db,
			expectedError: ErrSettingNameEmpty,
		},
		{
			name:        "successful create",
			dbParam:     db,
			settingName: "new_setting",
		},
		{
			name:        "duplicate setting",
			dbParam:     db,
			settingName: "token_secret",
			seedData: []models.Setting{
				{Name: "token_secret", Value: []byte("first")},
			},
			expectedError: ErrSettingAlreadyExists,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if tc.dbParam != nil {
				tc.dbParam.Exec("DELETE FROM settings")
			}

			if tc.seedData != nil {
				seedSettings(t, tc.dbParam, tc.seedData)
			}

			s, err := Create(tc.dbParam, tc.settingName, []byte("value"))

			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				assert.Nil(t, s)

				return
			}

			require.NoError(t, err)
			assert.NotZero(t, s.ID)
			assert.Equal(t, []byte("value"), s.Value)
		})
	}
}

func TestGetOrCreate(t *testing.T) {
	db := dbtest.New(t)

	created, err := GetOrCreate(db, "token_secret", []byte("first"))
	require.NoError(t, err)
	assert.Equal(t, []byte("first"), created.Value)

	// the stored value wins over the proposed one
	again, err := GetOrCreate(db, "token_secret", []byte("second"))
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, []byte("first"), again.Value)

	_, err = GetOrCreate(nil, "token_secret", nil)
	require.ErrorIs(t, err, ErrDBNil)
}

func TestSet(t *testing.T) {
	db := dbtest.New(t)

	s, err := Set(db, "token_secret", []byte("one"))
	require.NoError(t, err)
	assert.Equal(t, []byte("one"), s.Value)

	s, err = Set(db, "token_secret", []byte("two"))
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), s.Value)

	stored, err := Get(db, "token_secret")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), stored.Value)

	var count int64
	db.Model(&models.Setting{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err = Set(db, "", []byte("x"))
	require.ErrorIs(t, err, ErrSettingNameEmpty)
}
