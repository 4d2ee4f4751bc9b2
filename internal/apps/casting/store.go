package casting

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateApplication = errors.New("application id already exists")
	ErrApplicationNotFound  = errors.New("application not found")
	ErrVersionConflict      = errors.New("application was modified concurrently")
	ErrUnknownStatus        = errors.New("unknown application status")
	ErrNotOnRoster          = errors.New("jury member is not on the roster")
)

// List orderings.
const (
	OrderBySubmission = "submission" // submission date, newest first
	OrderByPassage    = "passage"    // passage number ascending, registered walk-ins only
)

// ApplicationStore persists casting applications one row at a time.
// Every update targets a single record and bumps its version with a
// compare-and-swap, so two admins editing different applications can
// never overwrite each other.
type ApplicationStore struct {
	db *gorm.DB
}

func NewApplicationStore(db *gorm.DB) *ApplicationStore {
	return &ApplicationStore{db: db}
}

func (s *ApplicationStore) List(order string) ([]CastingApplication, error) {
	q := s.db.Model(&CastingApplication{})
	switch order {
	case OrderByPassage:
		q = q.Where("passage_number IS NOT NULL").Order("passage_number ASC")
	default:
		q = q.Order("submission_date DESC")
	}

	var apps []CastingApplication
	if err := q.Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationStore) ListByStatus(status string) ([]CastingApplication, error) {
	var apps []CastingApplication
	if err := s.db.Where("status = ?", status).Order("submission_date DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, nil
}

func (s *ApplicationStore) Get(id uuid.UUID) (*CastingApplication, error) {
	var app CastingApplication
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to load application: %w", err)
	}
	return &app, nil
}

// Create inserts a new application. The submission date is stamped here
// and never touched again. A colliding id fails before any write.
func (s *ApplicationStore) Create(app *CastingApplication) error {
	if app.ID == uuid.Nil {
		app.ID = uuid.New()
	} else {
		var existing CastingApplication
		if err := s.db.Select("id").First(&existing, "id = ?", app.ID).Error; err == nil {
			return ErrDuplicateApplication
		}
	}

	if app.SubmissionDate.IsZero() {
		app.SubmissionDate = time.Now()
	}
	if app.Status == "" {
		app.Status = StatusNew
	}
	if !KnownStatus(app.Status) {
		return ErrUnknownStatus
	}
	if app.Scores.Data() == nil {
		app.Scores = datatypes.NewJSONType(ScoreSheet{})
	}
	app.Version = 1

	if err := s.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// Delete removes an application permanently. Deleting an id that is
// already gone is a no-op; callers confirm with the user beforehand.
func (s *ApplicationStore) Delete(id uuid.UUID) error {
	return s.db.Delete(&CastingApplication{}, "id = ?", id).Error
}

// Patch merges the given columns into an existing record if its version
// still matches. An absent id is a silent no-op; a stale version returns
// ErrVersionConflict so the caller can reload and retry. Identity and
// lifecycle columns cannot be patched through this path.
func (s *ApplicationStore) Patch(id uuid.UUID, version int, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	for _, column := range []string{"id", "submission_date", "passage_number", "version", "promoted_model_id"} {
		delete(fields, column)
	}
	fields["version"] = gorm.Expr("version + 1")

	res := s.db.Model(&CastingApplication{}).
		Where("id = ? AND version = ?", id, version).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to patch application: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var existing CastingApplication
		if err := s.db.Select("id").First(&existing, "id = ?", id).Error; err != nil {
			return nil // gone: not-found updates never raise
		}
		return ErrVersionConflict
	}
	return nil
}

// SetStatus forces an application into the given lifecycle status. Only
// the status column is written, so scores and every other field survive
// any sequence of transitions. The transition graph is deliberately not
// enforced; admin actions may move between any two known statuses.
func (s *ApplicationStore) SetStatus(id uuid.UUID, status string) error {
	if !KnownStatus(status) {
		return ErrUnknownStatus
	}
	res := s.db.Model(&CastingApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":  status,
			"version": gorm.Expr("version + 1"),
		})
	if res.Error != nil {
		return fmt.Errorf("failed to set status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// SetScore records one jury member's score on an application, replacing
// that member's previous entry if present. The row is locked for the
// read-modify-write so concurrent jurors cannot drop each other's votes.
func (s *ApplicationStore) SetScore(appID uuid.UUID, juryMemberID uuid.UUID, rec ScoreRecord) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var app CastingApplication
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "id = ?", appID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return fmt.Errorf("failed to load application: %w", err)
		}

		sheet := app.ScoreSheetValue()
		sheet[juryMemberID.String()] = rec

		return tx.Model(&app).Updates(map[string]interface{}{
			"scores":  datatypes.NewJSONType(sheet),
			"version": gorm.Expr("version + 1"),
		}).Error
	})
}

// RegisterOnSite creates a walk-in application: pre-screened straight to
// Présélectionné, with the next passage number. The number is recomputed
// from the live rows on every call, so it stays monotonic and is never
// reused after deletions; the unique index rejects the loser of a race.
func (s *ApplicationStore) RegisterOnSite(app *CastingApplication) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var assigned []int
		if err := tx.Model(&CastingApplication{}).
			Where("passage_number IS NOT NULL").
			Pluck("passage_number", &assigned).Error; err != nil {
			return fmt.Errorf("failed to read passage numbers: %w", err)
		}

		next := NextPassageNumber(assigned)
		app.PassageNumber = &next
		app.Status = StatusPreselected
		if app.SubmissionDate.IsZero() {
			app.SubmissionDate = time.Now()
		}
		if app.ID == uuid.Nil {
			app.ID = uuid.New()
		}
		if app.Scores.Data() == nil {
			app.Scores = datatypes.NewJSONType(ScoreSheet{})
		}
		app.Version = 1

		if err := tx.Create(app).Error; err != nil {
			return fmt.Errorf("failed to register application: %w", err)
		}
		return nil
	})
}

// NextPassageNumber returns max(assigned)+1, or 1 when nothing has been
// assigned yet. Gaps from deleted applications are tolerated, never refilled.
func NextPassageNumber(assigned []int) int {
	max := 0
	for _, n := range assigned {
		if n > max {
			max = n
		}
	}
	return max + 1
}
