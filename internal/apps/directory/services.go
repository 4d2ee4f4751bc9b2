package directory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrModelNotFound = errors.New("model not found")
	ErrNameTaken     = errors.New("a model with this name already exists")
)

// ModelService backs both the public directory and the admin/model
// dashboards over the shared model profiles.
type ModelService struct {
	db *gorm.DB
}

func NewModelService(db *gorm.DB) *ModelService {
	return &ModelService{db: db}
}

// ListPublic returns profiles visible on the marketing site.
func (s *ModelService) ListPublic(category string) ([]models.Model, error) {
	q := s.db.Where("is_public = true").Order("name ASC")
	if category != "" {
		q = q.Where("categories @> ?", fmt.Sprintf(`["%s"]`, category))
	}

	var profiles []models.Model
	if err := q.Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return profiles, nil
}

func (s *ModelService) GetPublic(id uuid.UUID) (*models.Model, error) {
	var profile models.Model
	if err := s.db.First(&profile, "id = ? AND is_public = true", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return &profile, nil
}

func (s *ModelService) ListAll() ([]models.Model, error) {
	var profiles []models.Model
	if err := s.db.Order("created_at DESC").Find(&profiles).Error; err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	return profiles, nil
}

func (s *ModelService) Get(id uuid.UUID) (*models.Model, error) {
	var profile models.Model
	if err := s.db.First(&profile, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return &profile, nil
}

// GetByUser resolves the profile behind a model login account, for the
// self-service dashboard.
func (s *ModelService) GetByUser(userID uuid.UUID) (*models.Model, error) {
	var profile models.Model
	if err := s.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to load model: %w", err)
	}
	return &profile, nil
}

// Create adds a hand-made profile (admin CRUD path, no source application).
func (s *ModelService) Create(profile *models.Model) error {
	var count int64
	if err := s.db.Model(&models.Model{}).
		Where("LOWER(name) = LOWER(?)", profile.Name).
		Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if count > 0 {
		return ErrNameTaken
	}

	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if err := s.db.Create(profile).Error; err != nil {
		return fmt.Errorf("failed to create model: %w", err)
	}
	return nil
}

func (s *ModelService) Update(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := s.db.Model(&models.Model{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update model: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrModelNotFound
	}
	return nil
}

func (s *ModelService) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.Model{}, "id = ?", id).Error
}
