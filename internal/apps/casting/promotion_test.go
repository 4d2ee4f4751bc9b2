package casting

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/config"
	"github.com/pmmagency/agency-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildModelProfile(t *testing.T) {
	app := &CastingApplication{
		ID:          uuid.New(),
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "+33600000000",
		Gender:      "female",
		HeightCm:    178,
		WeightKg:    58,
		ChestCm:     86,
		ShoeSize:    "39",
		EyeColor:    "vert",
		HairColor:   "brun",
		Experience:  ExperienceProfessional,
		PortraitURL: "https://cdn.example.com/portrait.jpg",
		FullBodyURL: "https://cdn.example.com/full.jpg",
	}

	profile := BuildModelProfile(app, "Man-PMMJ01", "https://cdn.example.com/placeholder.jpg")

	assert.Equal(t, "Jane Doe", profile.Name)
	assert.Equal(t, "Man-PMMJ01", profile.Username)

	// Declared experience changes the blurb, never the starting level.
	assert.Equal(t, models.LevelBeginner, profile.Level)
	assert.Equal(t, experienceTexts[ExperienceProfessional], profile.Experience)

	assert.Equal(t, "178", profile.Height)
	assert.Equal(t, "58", profile.Weight)
	assert.Equal(t, "86", profile.Chest)
	assert.Equal(t, "0", profile.Waist)
	assert.Equal(t, "0", profile.Hips)
	assert.Equal(t, "39", profile.ShoeSize)

	assert.Equal(t, app.PortraitURL, profile.ImageURL)
	assert.Equal(t, []string{app.PortraitURL, app.FullBodyURL}, []string(profile.PortfolioImages))
	assert.Equal(t, defaultCategories, []string(profile.Categories))

	assert.False(t, profile.IsPublic)
	require.NotNil(t, profile.SourceApplicationID)
	assert.Equal(t, app.ID, *profile.SourceApplicationID)
}

func TestBuildModelProfile_Defaults(t *testing.T) {
	app := &CastingApplication{
		ID:        uuid.New(),
		FirstName: "Sam",
		LastName:  "Smith",
	}

	profile := BuildModelProfile(app, "Man-PMMS01", "https://cdn.example.com/placeholder.jpg")

	assert.Equal(t, "https://cdn.example.com/placeholder.jpg", profile.ImageURL)
	assert.Empty(t, []string(profile.PortfolioImages))
	assert.Equal(t, experienceTexts[ExperienceNone], profile.Experience)
	assert.Equal(t, "0", profile.Height)
	assert.Equal(t, "0", profile.ShoeSize)
	assert.Equal(t, "{}", string(profile.QuizScores))
}

func promotionTestConfig() *config.Config {
	return &config.Config{
		MatriculePrefix:     "Man-PMM",
		PlaceholderImageURL: "https://cdn.example.com/placeholder.jpg",
	}
}

func lockedApplicationQuery(mock sqlmock.Sqlmock) *sqlmock.ExpectedQuery {
	return mock.ExpectQuery(`SELECT \* FROM "casting_applications" WHERE id = \$1 .+FOR UPDATE`)
}

func TestPromotionService_Promote_Guards(t *testing.T) {
	appID := uuid.New()

	t.Run("unknown application", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPromotionService(db, promotionTestConfig())

		mock.ExpectBegin()
		lockedApplicationQuery(mock).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		_, err := svc.Promote(appID)

		assert.ErrorIs(t, err, ErrApplicationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already promoted", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPromotionService(db, promotionTestConfig())

		modelID := uuid.New()
		mock.ExpectBegin()
		lockedApplicationQuery(mock).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "first_name", "last_name", "status", "version", "promoted_model_id"}).
				AddRow(appID.String(), "Jane", "Doe", StatusAccepted, 4, modelID.String()))
		mock.ExpectRollback()

		_, err := svc.Promote(appID)

		assert.ErrorIs(t, err, ErrAlreadyPromoted)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("matricule scan spans deactivated accounts", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPromotionService(db, promotionTestConfig())

		mock.ExpectBegin()
		lockedApplicationQuery(mock).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "first_name", "last_name", "status", "version"}).
				AddRow(appID.String(), "Jane", "Doe", StatusPreselected, 2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "models" WHERE LOWER\(name\) = LOWER\(\$1\)`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT "username" FROM "models"`).
			WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("Man-PMMJ01"))
		// The account scan must not filter on deleted_at: a removed
		// account's row still holds the unique index on username.
		mock.ExpectQuery(`^SELECT "username" FROM "users"$`).
			WillReturnRows(sqlmock.NewRows([]string{"username"}).AddRow("Man-PMMJ02"))
		mock.ExpectRollback()

		// No insert is expected, so promotion fails after the scans; the
		// queries above are what this case is checking.
		_, err := svc.Promote(appID)

		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("duplicate model name rolls back before any write", func(t *testing.T) {
		db, mock := newMockDB(t)
		svc := NewPromotionService(db, promotionTestConfig())

		mock.ExpectBegin()
		lockedApplicationQuery(mock).
			WillReturnRows(sqlmock.
				NewRows([]string{"id", "first_name", "last_name", "status", "version"}).
				AddRow(appID.String(), "Jane", "Doe", StatusPreselected, 2))
		mock.ExpectQuery(`SELECT count\(\*\) FROM "models" WHERE LOWER\(name\) = LOWER\(\$1\)`).
			WithArgs("Jane Doe").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		_, err := svc.Promote(appID)

		assert.ErrorIs(t, err, ErrDuplicateModelName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
