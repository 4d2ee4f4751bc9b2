package directory

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/dto"
	"github.com/pmmagency/agency-backend/internal/models"
	"github.com/pmmagency/agency-backend/internal/session"
	"gorm.io/datatypes"
)

type Handler struct {
	service *ModelService
}

func NewHandler(service *ModelService) *Handler {
	return &Handler{service: service}
}

// publicView hides contact details and credentials from the directory.
type publicView struct {
	ID              uuid.UUID                   `json:"id"`
	Name            string                      `json:"name"`
	Level           string                      `json:"level"`
	Gender          string                      `json:"gender"`
	Height          string                      `json:"height"`
	Chest           string                      `json:"chest"`
	Waist           string                      `json:"waist"`
	Hips            string                      `json:"hips"`
	ShoeSize        string                      `json:"shoe_size"`
	EyeColor        string                      `json:"eye_color"`
	HairColor       string                      `json:"hair_color"`
	ImageURL        string                      `json:"image_url"`
	PortfolioImages datatypes.JSONSlice[string] `json:"portfolio_images"`
	Categories      datatypes.JSONSlice[string] `json:"categories"`
	Experience      string                      `json:"experience"`
	Journey         string                      `json:"journey"`
	Distinctions    datatypes.JSONSlice[string] `json:"distinctions"`
}

func toPublicView(m *models.Model) publicView {
	return publicView{
		ID:              m.ID,
		Name:            m.Name,
		Level:           m.Level,
		Gender:          m.Gender,
		Height:          m.Height,
		Chest:           m.Chest,
		Waist:           m.Waist,
		Hips:            m.Hips,
		ShoeSize:        m.ShoeSize,
		EyeColor:        m.EyeColor,
		HairColor:       m.HairColor,
		ImageURL:        m.ImageURL,
		PortfolioImages: m.PortfolioImages,
		Categories:      m.Categories,
		Experience:      m.Experience,
		Journey:         m.Journey,
		Distinctions:    m.Distinctions,
	}
}

func (h *Handler) ListPublic(c *fiber.Ctx) error {
	profiles, err := h.service.ListPublic(c.Query("category", ""))
	if err != nil {
		return internalError(c, "Failed to fetch models")
	}

	views := make([]publicView, 0, len(profiles))
	for i := range profiles {
		views = append(views, toPublicView(&profiles[i]))
	}
	return c.JSON(fiber.Map{"models": views, "total": len(views)})
}

func (h *Handler) GetPublic(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid model ID")
	}

	profile, err := h.service.GetPublic(id)
	if err != nil {
		if errors.Is(err, ErrModelNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch model")
	}
	return c.JSON(toPublicView(profile))
}

// MyProfile returns the calling model's own profile.
func (h *Handler) MyProfile(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	profile, err := h.service.GetByUser(userID)
	if err != nil {
		if errors.Is(err, ErrModelNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch profile")
	}
	return c.JSON(profile)
}

type UpdateProfileRequest struct {
	Journey         *string   `json:"journey"`
	Height          *string   `json:"height"`
	Weight          *string   `json:"weight"`
	Chest           *string   `json:"chest"`
	Waist           *string   `json:"waist"`
	Hips            *string   `json:"hips"`
	ShoeSize        *string   `json:"shoe_size"`
	EyeColor        *string   `json:"eye_color"`
	HairColor       *string   `json:"hair_color"`
	ImageURL        *string   `json:"image_url"`
	PortfolioImages *[]string `json:"portfolio_images"`
}

func (r *UpdateProfileRequest) columns() map[string]interface{} {
	fields := map[string]interface{}{}
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("journey", r.Journey)
	set("height", r.Height)
	set("weight", r.Weight)
	set("chest", r.Chest)
	set("waist", r.Waist)
	set("hips", r.Hips)
	set("shoe_size", r.ShoeSize)
	set("eye_color", r.EyeColor)
	set("hair_color", r.HairColor)
	set("image_url", r.ImageURL)
	if r.PortfolioImages != nil {
		fields["portfolio_images"] = datatypes.NewJSONSlice(*r.PortfolioImages)
	}
	return fields
}

// UpdateMyProfile lets a model edit the self-service subset of their
// profile. Level, distinctions and visibility stay admin-only.
func (h *Handler) UpdateMyProfile(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	profile, err := h.service.GetByUser(userID)
	if err != nil {
		if errors.Is(err, ErrModelNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch profile")
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.Update(profile.ID, req.columns()); err != nil {
		return internalError(c, "Failed to update profile")
	}
	return c.JSON(fiber.Map{"message": "Profile updated"})
}

func (h *Handler) ListAll(c *fiber.Ctx) error {
	profiles, err := h.service.ListAll()
	if err != nil {
		return internalError(c, "Failed to fetch models")
	}
	return c.JSON(fiber.Map{"models": profiles, "total": len(profiles)})
}

type AdminUpdateRequest struct {
	UpdateProfileRequest
	Name         *string   `json:"name"`
	Level        *string   `json:"level"`
	Email        *string   `json:"email"`
	Phone        *string   `json:"phone"`
	Categories   *[]string `json:"categories"`
	Distinctions *[]string `json:"distinctions"`
	IsPublic     *bool     `json:"is_public"`
}

func (r *AdminUpdateRequest) adminColumns() map[string]interface{} {
	fields := r.columns()
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("name", r.Name)
	set("level", r.Level)
	set("email", r.Email)
	set("phone", r.Phone)
	if r.Categories != nil {
		fields["categories"] = datatypes.NewJSONSlice(*r.Categories)
	}
	if r.Distinctions != nil {
		fields["distinctions"] = datatypes.NewJSONSlice(*r.Distinctions)
	}
	if r.IsPublic != nil {
		fields["is_public"] = *r.IsPublic
	}
	return fields
}

func (h *Handler) AdminGet(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid model ID")
	}

	profile, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, ErrModelNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch model")
	}
	return c.JSON(profile)
}

func (h *Handler) AdminCreate(c *fiber.Ctx) error {
	var profile models.Model
	if err := c.BodyParser(&profile); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if profile.Name == "" {
		return badRequest(c, "name is required")
	}
	if profile.Level == "" {
		profile.Level = models.LevelBeginner
	}

	if err := h.service.Create(&profile); err != nil {
		if errors.Is(err, ErrNameTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "Failed to create model")
	}
	return c.Status(fiber.StatusCreated).JSON(profile)
}

func (h *Handler) AdminUpdate(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid model ID")
	}

	var req AdminUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.service.Update(id, req.adminColumns()); err != nil {
		if errors.Is(err, ErrModelNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to update model")
	}
	return c.JSON(fiber.Map{"message": "Model updated"})
}

func (h *Handler) AdminDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid model ID")
	}

	if err := h.service.Delete(id); err != nil {
		return internalError(c, "Failed to delete model")
	}
	return c.JSON(fiber.Map{"message": "Model deleted"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Error: true, Message: "Unauthorized"})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: message})
}
