package casting

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/config"
	"github.com/pmmagency/agency-backend/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrDuplicateModelName = errors.New("a model with this name already exists")
	ErrAlreadyPromoted    = errors.New("application has already been promoted")
)

// experienceTexts translates the coarse form enum into the profile blurb.
var experienceTexts = map[string]string{
	ExperienceNone:         "Aucune expérience préalable dans le mannequinat.",
	ExperienceBeginner:     "Premières expériences en shooting photo et défilé.",
	ExperienceIntermediate: "Expérience régulière en défilés et campagnes locales.",
	ExperienceProfessional: "Parcours professionnel confirmé en agence.",
}

// defaultCategories every promoted model starts with.
var defaultCategories = []string{"Défilé", "Commercial"}

// PromotionResult carries the created profile and the one-time initial
// credentials shown to the admin. The plaintext password is not stored.
type PromotionResult struct {
	Model           models.Model `json:"model"`
	Username        string       `json:"username"`
	InitialPassword string       `json:"initial_password"`
}

// PromotionService materializes a model profile from a casting
// application. The profile, its login account and the application update
// are committed in one transaction: on any failure nothing is observable,
// and in particular a duplicate name never force-marks the application
// Accepté.
type PromotionService struct {
	db  *gorm.DB
	cfg *config.Config
}

func NewPromotionService(db *gorm.DB, cfg *config.Config) *PromotionService {
	return &PromotionService{db: db, cfg: cfg}
}

func (s *PromotionService) Promote(appID uuid.UUID) (*PromotionResult, error) {
	var result *PromotionResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var app CastingApplication
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&app, "id = ?", appID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrApplicationNotFound
			}
			return fmt.Errorf("failed to load application: %w", err)
		}

		if app.PromotedModelID != nil {
			return ErrAlreadyPromoted
		}

		fullName := app.FullName()
		var count int64
		if err := tx.Model(&models.Model{}).
			Where("LOWER(name) = LOWER(?)", fullName).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to check name uniqueness: %w", err)
		}
		if count > 0 {
			return ErrDuplicateModelName
		}

		// Matricules live in both tables; scan the union so the
		// sequence is unique at generation time.
		var existing []string
		if err := tx.Model(&models.Model{}).Pluck("username", &existing).Error; err != nil {
			return fmt.Errorf("failed to read model usernames: %w", err)
		}
		// Unscoped so usernames held by deactivated accounts still count:
		// their rows keep the unique index on username, and a reissued
		// matricule would fail the insert.
		var userNames []string
		if err := tx.Unscoped().Model(&models.User{}).Pluck("username", &userNames).Error; err != nil {
			return fmt.Errorf("failed to read account usernames: %w", err)
		}
		existing = append(existing, userNames...)

		username, err := NextMatricule(s.cfg.MatriculePrefix, app.FirstName, existing)
		if err != nil {
			return err
		}

		password := InitialPassword(app.LastName, time.Now())
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash password: %w", err)
		}

		account := models.User{
			ID:          uuid.New(),
			Username:    username,
			Password:    string(hash),
			Role:        models.RoleModel,
			DisplayName: fullName,
		}
		if err := tx.Create(&account).Error; err != nil {
			return fmt.Errorf("failed to create model account: %w", err)
		}

		profile := BuildModelProfile(&app, username, s.cfg.PlaceholderImageURL)
		profile.ID = uuid.New()
		profile.UserID = &account.ID
		if err := tx.Create(&profile).Error; err != nil {
			return fmt.Errorf("failed to create model profile: %w", err)
		}

		if err := tx.Model(&app).Updates(map[string]interface{}{
			"status":            StatusAccepted,
			"promoted_model_id": profile.ID,
			"version":           gorm.Expr("version + 1"),
		}).Error; err != nil {
			return fmt.Errorf("failed to update application: %w", err)
		}

		result = &PromotionResult{
			Model:           profile,
			Username:        username,
			InitialPassword: password,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// BuildModelProfile maps application fields onto a fresh model profile.
// Every promoted model starts at Débutant and hidden from the public
// directory, regardless of declared experience.
func BuildModelProfile(app *CastingApplication, username string, placeholderURL string) models.Model {
	imageURL := app.PortraitURL
	if imageURL == "" {
		imageURL = placeholderURL
	}

	experience, ok := experienceTexts[app.Experience]
	if !ok {
		experience = experienceTexts[ExperienceNone]
	}

	return models.Model{
		Name:                app.FullName(),
		Username:            username,
		Level:               models.LevelBeginner,
		Email:               app.Email,
		Phone:               app.Phone,
		Gender:              app.Gender,
		Height:              measurement(app.HeightCm),
		Weight:              measurement(app.WeightKg),
		Chest:               measurement(app.ChestCm),
		Waist:               measurement(app.WaistCm),
		Hips:                measurement(app.HipsCm),
		ShoeSize:            defaultString(app.ShoeSize, "0"),
		EyeColor:            app.EyeColor,
		HairColor:           app.HairColor,
		ImageURL:            imageURL,
		PortfolioImages:     collectPortfolio(app),
		Categories:          datatypes.NewJSONSlice(defaultCategories),
		Experience:          experience,
		QuizScores:          datatypes.JSON([]byte("{}")),
		Distinctions:        datatypes.NewJSONSlice([]string{}),
		IsPublic:            false,
		SourceApplicationID: &app.ID,
	}
}

func collectPortfolio(app *CastingApplication) datatypes.JSONSlice[string] {
	urls := []string{}
	for _, u := range []string{app.PortraitURL, app.FullBodyURL, app.ProfileURL} {
		if u != "" {
			urls = append(urls, u)
		}
	}
	return datatypes.NewJSONSlice(urls)
}

func measurement(v int) string {
	if v <= 0 {
		return "0"
	}
	return strconv.Itoa(v)
}

func defaultString(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
