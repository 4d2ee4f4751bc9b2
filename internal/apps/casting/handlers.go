package casting

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/dto"
	"github.com/pmmagency/agency-backend/internal/session"
	"gorm.io/datatypes"
)

type Handler struct {
	store  *ApplicationStore
	roster *RosterService
	promo  *PromotionService
}

func NewHandler(store *ApplicationStore, roster *RosterService, promo *PromotionService) *Handler {
	return &Handler{store: store, roster: roster, promo: promo}
}

type SubmitApplicationRequest struct {
	FirstName   string         `json:"first_name"`
	LastName    string         `json:"last_name"`
	BirthDate   *time.Time     `json:"birth_date"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Nationality string         `json:"nationality"`
	City        string         `json:"city"`
	Gender      string         `json:"gender"`
	HeightCm    int            `json:"height_cm"`
	WeightKg    int            `json:"weight_kg"`
	ChestCm     int            `json:"chest_cm"`
	WaistCm     int            `json:"waist_cm"`
	HipsCm      int            `json:"hips_cm"`
	ShoeSize    string         `json:"shoe_size"`
	EyeColor    string         `json:"eye_color"`
	HairColor   string         `json:"hair_color"`
	Experience  string         `json:"experience"`
	SocialLinks datatypes.JSON `json:"social_links"`
	PortraitURL string         `json:"portrait_url"`
	FullBodyURL string         `json:"full_body_url"`
	ProfileURL  string         `json:"profile_url"`
}

func (r *SubmitApplicationRequest) toApplication() (*CastingApplication, error) {
	if r.FirstName == "" || r.LastName == "" {
		return nil, errors.New("first and last name are required")
	}
	experience := r.Experience
	if experience == "" {
		experience = ExperienceNone
	}
	if !ValidExperience(experience) {
		return nil, errors.New("invalid experience level")
	}

	socials := r.SocialLinks
	if len(socials) == 0 {
		socials = datatypes.JSON([]byte("{}"))
	}

	return &CastingApplication{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		BirthDate:   r.BirthDate,
		Email:       r.Email,
		Phone:       r.Phone,
		Nationality: r.Nationality,
		City:        r.City,
		Gender:      r.Gender,
		HeightCm:    r.HeightCm,
		WeightKg:    r.WeightKg,
		ChestCm:     r.ChestCm,
		WaistCm:     r.WaistCm,
		HipsCm:      r.HipsCm,
		ShoeSize:    r.ShoeSize,
		EyeColor:    r.EyeColor,
		HairColor:   r.HairColor,
		Experience:  experience,
		SocialLinks: socials,
		PortraitURL: r.PortraitURL,
		FullBodyURL: r.FullBodyURL,
		ProfileURL:  r.ProfileURL,
	}, nil
}

// SubmitApplication handles the public casting form.
func (h *Handler) SubmitApplication(c *fiber.Ctx) error {
	var req SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	app, err := req.toApplication()
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.store.Create(app); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateApplication):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, ErrUnknownStatus):
			return badRequest(c, err.Error())
		}
		return internalError(c, "Failed to submit application")
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// RegisterWalkIn handles on-site registration at the casting kiosk.
// The registrant is pre-screened and gets the next passage number.
func (h *Handler) RegisterWalkIn(c *fiber.Ctx) error {
	var req SubmitApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	app, err := req.toApplication()
	if err != nil {
		return badRequest(c, err.Error())
	}

	if err := h.store.RegisterOnSite(app); err != nil {
		return internalError(c, "Failed to register applicant")
	}

	return c.Status(fiber.StatusCreated).JSON(app)
}

// ListApplications returns all applications; ?order=passage switches to
// the registration view (passage number ascending).
func (h *Handler) ListApplications(c *fiber.Ctx) error {
	order := c.Query("order", OrderBySubmission)
	status := c.Query("status", "")

	var (
		apps []CastingApplication
		err  error
	)
	if status != "" {
		apps, err = h.store.ListByStatus(status)
	} else {
		apps, err = h.store.List(order)
	}
	if err != nil {
		return internalError(c, "Failed to fetch applications")
	}

	return c.JSON(fiber.Map{"applications": apps, "total": len(apps)})
}

// GetApplication returns one application together with its score summary.
func (h *Handler) GetApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	app, err := h.store.Get(id)
	if err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch application")
	}

	roster, err := h.roster.List()
	if err != nil {
		return internalError(c, "Failed to fetch jury roster")
	}

	return c.JSON(fiber.Map{
		"application": app,
		"summary":     Summarize(app.ScoreSheetValue(), roster),
	})
}

type PatchApplicationRequest struct {
	Version     int             `json:"version"`
	FirstName   *string         `json:"first_name"`
	LastName    *string         `json:"last_name"`
	BirthDate   *time.Time      `json:"birth_date"`
	Email       *string         `json:"email"`
	Phone       *string         `json:"phone"`
	Nationality *string         `json:"nationality"`
	City        *string         `json:"city"`
	Gender      *string         `json:"gender"`
	HeightCm    *int            `json:"height_cm"`
	WeightKg    *int            `json:"weight_kg"`
	ChestCm     *int            `json:"chest_cm"`
	WaistCm     *int            `json:"waist_cm"`
	HipsCm      *int            `json:"hips_cm"`
	ShoeSize    *string         `json:"shoe_size"`
	EyeColor    *string         `json:"eye_color"`
	HairColor   *string         `json:"hair_color"`
	Experience  *string         `json:"experience"`
	SocialLinks *datatypes.JSON `json:"social_links"`
	PortraitURL *string         `json:"portrait_url"`
	FullBodyURL *string         `json:"full_body_url"`
	ProfileURL  *string         `json:"profile_url"`
}

func (r *PatchApplicationRequest) columns() map[string]interface{} {
	fields := map[string]interface{}{}
	setString := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	setInt := func(column string, v *int) {
		if v != nil {
			fields[column] = *v
		}
	}
	setString("first_name", r.FirstName)
	setString("last_name", r.LastName)
	setString("email", r.Email)
	setString("phone", r.Phone)
	setString("nationality", r.Nationality)
	setString("city", r.City)
	setString("gender", r.Gender)
	setString("shoe_size", r.ShoeSize)
	setString("eye_color", r.EyeColor)
	setString("hair_color", r.HairColor)
	setString("experience", r.Experience)
	setString("portrait_url", r.PortraitURL)
	setString("full_body_url", r.FullBodyURL)
	setString("profile_url", r.ProfileURL)
	setInt("height_cm", r.HeightCm)
	setInt("weight_kg", r.WeightKg)
	setInt("chest_cm", r.ChestCm)
	setInt("waist_cm", r.WaistCm)
	setInt("hips_cm", r.HipsCm)
	if r.BirthDate != nil {
		fields["birth_date"] = *r.BirthDate
	}
	if r.SocialLinks != nil {
		fields["social_links"] = *r.SocialLinks
	}
	return fields
}

func (h *Handler) PatchApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	var req PatchApplicationRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Experience != nil && !ValidExperience(*req.Experience) {
		return badRequest(c, "invalid experience level")
	}

	if err := h.store.Patch(id, req.Version, req.columns()); err != nil {
		if errors.Is(err, ErrVersionConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "Failed to update application")
	}

	return c.JSON(fiber.Map{"message": "Application updated"})
}

func (h *Handler) DeleteApplication(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	if err := h.store.Delete(id); err != nil {
		return internalError(c, "Failed to delete application")
	}

	return c.JSON(fiber.Map{"message": "Application deleted"})
}

type SetStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) SetStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	var req SetStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.store.SetStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, ErrUnknownStatus):
			return badRequest(c, err.Error())
		case errors.Is(err, ErrApplicationNotFound):
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to set status")
	}

	return c.JSON(fiber.Map{"message": "Status updated", "status": req.Status})
}

// Promote converts an application into a model profile. The generated
// credentials are returned once and never persisted in plaintext.
func (h *Handler) Promote(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	result, err := h.promo.Promote(id)
	if err != nil {
		switch {
		case errors.Is(err, ErrApplicationNotFound):
			return notFound(c, err.Error())
		case errors.Is(err, ErrDuplicateModelName), errors.Is(err, ErrAlreadyPromoted):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.Is(err, ErrMatriculeExhausted):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "Failed to promote application")
	}

	return c.Status(fiber.StatusCreated).JSON(result)
}

// Ranking returns scored applications ordered by average score.
// ?full=true keeps only fully scored ones.
func (h *Handler) Ranking(c *fiber.Ctx) error {
	apps, err := h.store.List(OrderBySubmission)
	if err != nil {
		return internalError(c, "Failed to fetch applications")
	}

	roster, err := h.roster.List()
	if err != nil {
		return internalError(c, "Failed to fetch jury roster")
	}

	ranked := Rank(apps, roster)
	if c.QueryBool("full", false) {
		ranked = FullyScoredOnly(ranked)
	}

	return c.JSON(fiber.Map{"ranking": ranked, "jury_count": len(roster)})
}

// ListForScoring is the jury view: shortlisted applications, ordered by
// passage number so it matches the live run sheet.
func (h *Handler) ListForScoring(c *fiber.Ctx) error {
	apps, err := h.store.ListByStatus(StatusPreselected)
	if err != nil {
		return internalError(c, "Failed to fetch applications")
	}

	return c.JSON(fiber.Map{"applications": apps, "total": len(apps)})
}

type SubmitScoreRequest struct {
	Overall float64 `json:"overall"`
	Comment string  `json:"comment"`
}

// SubmitScore records the calling jury member's score for an application,
// replacing their previous vote if any.
func (h *Handler) SubmitScore(c *fiber.Ctx) error {
	userID, err := session.UserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	member, err := h.roster.MemberForUser(userID)
	if err != nil {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: "Not a jury member",
		})
	}

	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid application ID")
	}

	var req SubmitScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Overall < 0 || req.Overall > 10 {
		return badRequest(c, "overall score must be between 0 and 10")
	}

	rec := ScoreRecord{Overall: req.Overall, Comment: req.Comment}
	if err := h.store.SetScore(appID, member.ID, rec); err != nil {
		if errors.Is(err, ErrApplicationNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to record score")
	}

	return c.JSON(fiber.Map{"message": "Score recorded"})
}

type CreateJuryRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) ListJury(c *fiber.Ctx) error {
	roster, err := h.roster.List()
	if err != nil {
		return internalError(c, "Failed to fetch jury roster")
	}
	return c.JSON(fiber.Map{"jury": roster, "total": len(roster)})
}

func (h *Handler) CreateJury(c *fiber.Ctx) error {
	var req CreateJuryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" {
		return badRequest(c, "name is required")
	}

	member, err := h.roster.Create(req.Name, req.Username, req.Password)
	if err != nil {
		return badRequest(c, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(member)
}

func (h *Handler) DeleteJury(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid jury member ID")
	}

	if err := h.roster.Delete(id); err != nil {
		return internalError(c, "Failed to delete jury member")
	}

	return c.JSON(fiber.Map{"message": "Jury member removed"})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func notFound(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: true, Message: message})
}

func internalError(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: true, Message: message})
}
