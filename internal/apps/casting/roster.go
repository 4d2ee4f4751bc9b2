package casting

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/dto"
	"github.com/pmmagency/agency-backend/internal/models"
	"github.com/pmmagency/agency-backend/internal/services"
	"gorm.io/gorm"
)

var ErrJuryMemberNotFound = errors.New("jury member not found")

// RosterService manages the jury roster. The roster is what decides when
// an application is fully scored, so removals take effect immediately on
// every aggregate.
type RosterService struct {
	db *gorm.DB
}

func NewRosterService(db *gorm.DB) *RosterService {
	return &RosterService{db: db}
}

func (s *RosterService) List() ([]models.JuryMember, error) {
	var roster []models.JuryMember
	if err := s.db.Order("created_at ASC").Find(&roster).Error; err != nil {
		return nil, fmt.Errorf("failed to list jury members: %w", err)
	}
	return roster, nil
}

// Create adds a roster member and, when credentials are supplied, a linked
// jury login account in the same transaction.
func (s *RosterService) Create(name, username, password string) (*models.JuryMember, error) {
	var member models.JuryMember

	err := s.db.Transaction(func(tx *gorm.DB) error {
		member = models.JuryMember{ID: uuid.New(), Name: name}

		if username != "" {
			account, err := services.CreateUser(tx, &dto.CreateUserRequest{
				Username:    username,
				Password:    password,
				Role:        models.RoleJury,
				DisplayName: name,
			})
			if err != nil {
				return err
			}
			member.UserID = &account.ID
		}

		return tx.Create(&member).Error
	})
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// Delete removes a roster member. Scores they already cast stay on the
// applications; aggregation simply stops requiring their vote.
func (s *RosterService) Delete(id uuid.UUID) error {
	return s.db.Delete(&models.JuryMember{}, "id = ?", id).Error
}

// MemberForUser resolves the roster entry behind a jury login account.
func (s *RosterService) MemberForUser(userID uuid.UUID) (*models.JuryMember, error) {
	var member models.JuryMember
	if err := s.db.First(&member, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJuryMemberNotFound
		}
		return nil, fmt.Errorf("failed to load jury member: %w", err)
	}
	return &member, nil
}
