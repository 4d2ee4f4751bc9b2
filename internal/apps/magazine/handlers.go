package magazine

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/pmmagency/agency-backend/internal/dto"
	"gorm.io/datatypes"
)

type Handler struct {
	service *ArticleService
}

func NewHandler(service *ArticleService) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListPublished(c *fiber.Ctx) error {
	articles, err := h.service.ListPublished()
	if err != nil {
		return internalError(c, "Failed to fetch articles")
	}
	return c.JSON(fiber.Map{"articles": articles, "total": len(articles)})
}

func (h *Handler) GetBySlug(c *fiber.Ctx) error {
	article, err := h.service.GetBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to fetch article")
	}
	return c.JSON(article)
}

func (h *Handler) ListAll(c *fiber.Ctx) error {
	articles, err := h.service.ListAll()
	if err != nil {
		return internalError(c, "Failed to fetch articles")
	}
	return c.JSON(fiber.Map{"articles": articles, "total": len(articles)})
}

func (h *Handler) Create(c *fiber.Ctx) error {
	var article Article
	if err := c.BodyParser(&article); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if article.Title == "" {
		return badRequest(c, "title is required")
	}

	if err := h.service.Create(&article); err != nil {
		if errors.Is(err, ErrSlugTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return internalError(c, "Failed to create article")
	}
	return c.Status(fiber.StatusCreated).JSON(article)
}

type UpdateArticleRequest struct {
	Title     *string   `json:"title"`
	Excerpt   *string   `json:"excerpt"`
	Body      *string   `json:"body"`
	CoverURL  *string   `json:"cover_url"`
	Tags      *[]string `json:"tags"`
	Published *bool     `json:"published"`
}

func (h *Handler) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid article ID")
	}

	var req UpdateArticleRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Excerpt != nil {
		fields["excerpt"] = *req.Excerpt
	}
	if req.Body != nil {
		fields["body"] = *req.Body
	}
	if req.CoverURL != nil {
		fields["cover_url"] = *req.CoverURL
	}
	if req.Tags != nil {
		fields["tags"] = datatypes.NewJSONSlice(*req.Tags)
	}
	if req.Published != nil {
		fields["published"] = *req.Published
		if *req.Published {
			fields["published_at"] = time.Now()
		}
	}

	if err := h.service.Update(id, fields); err != nil {
		if errors.Is(err, ErrArticleNotFound) {
			return notFound(c, err.Error())
		}
		return internalError(c, "Failed to update article")
	}
	return c.JSON(fiber.Map{"message": "Article updated"})
}

func (h *Handler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid article ID")
	}

	if err := h.service.Delete(id); err != nil {
		return internalError(c, "Failed to delete article")
	}
	return c.JSON(fiber.Map{"message": "Article deleted"})
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
