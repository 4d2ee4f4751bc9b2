package casting

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestNextPassageNumber(t *testing.T) {
	tests := []struct {
		name     string
		assigned []int
		want     int
	}{
		{name: "empty starts at one", assigned: nil, want: 1},
		{name: "increments past max", assigned: []int{1, 2, 3}, want: 4},
		{name: "gaps are never refilled", assigned: []int{1, 5}, want: 6},
		{name: "unordered input", assigned: []int{7, 2, 4}, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextPassageNumber(tt.assigned))
		})
	}
}

func TestApplicationStore_Create_DuplicateID(t *testing.T) {
	db, mock := newMockDB(t)
	store := NewApplicationStore(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT "id" FROM "casting_applications" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

	err := store.Create(&CastingApplication{ID: id, FirstName: "Jane", LastName: "Doe"})

	assert.ErrorIs(t, err, ErrDuplicateApplication)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplicationStore_Patch(t *testing.T) {
	id := uuid.New()

	t.Run("empty patch is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		err := store.Patch(id, 3, map[string]interface{}{})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("protected columns are stripped before the write", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		mock.ExpectExec(`UPDATE "casting_applications" SET .+ WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		fields := map[string]interface{}{
			"first_name":        "Jane",
			"id":                uuid.New(),
			"passage_number":    99,
			"promoted_model_id": uuid.New(),
			"submission_date":   "2020-01-01",
		}
		err := store.Patch(id, 3, fields)

		assert.NoError(t, err)
		assert.NotContains(t, fields, "id")
		assert.NotContains(t, fields, "passage_number")
		assert.NotContains(t, fields, "promoted_model_id")
		assert.NotContains(t, fields, "submission_date")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("stale version reports a conflict", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		mock.ExpectExec(`UPDATE "casting_applications" SET .+ WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "id" FROM "casting_applications" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(id.String()))

		err := store.Patch(id, 2, map[string]interface{}{"notes": "x"})

		assert.ErrorIs(t, err, ErrVersionConflict)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("absent id is silently ignored", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		mock.ExpectExec(`UPDATE "casting_applications" SET .+ WHERE id = \$\d+ AND version = \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT "id" FROM "casting_applications" WHERE id = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		err := store.Patch(id, 1, map[string]interface{}{"city": "Lyon"})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestApplicationStore_SetStatus(t *testing.T) {
	id := uuid.New()

	t.Run("unknown status is rejected without a write", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		err := store.SetStatus(id, "Archivé")

		assert.ErrorIs(t, err, ErrUnknownStatus)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("writes only the status column", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		mock.ExpectExec(`UPDATE "casting_applications" SET "status"=\$\d+,"version"=version \+ 1,"updated_at"=\$\d+ WHERE id = \$\d+`).
			WithArgs(StatusPreselected, sqlmock.AnyArg(), id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := store.SetStatus(id, StatusPreselected)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing application", func(t *testing.T) {
		db, mock := newMockDB(t)
		store := NewApplicationStore(db)

		mock.ExpectExec(`UPDATE "casting_applications" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := store.SetStatus(id, StatusRejected)

		assert.ErrorIs(t, err, ErrApplicationNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
