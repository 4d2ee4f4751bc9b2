package magazine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("an article with this slug already exists")
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

type ArticleService struct {
	db *gorm.DB
}

func NewArticleService(db *gorm.DB) *ArticleService {
	return &ArticleService{db: db}
}

func (s *ArticleService) ListPublished() ([]Article, error) {
	var articles []Article
	if err := s.db.Where("published = true").
		Order("published_at DESC").
		Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) GetBySlug(slug string) (*Article, error) {
	var article Article
	if err := s.db.First(&article, "slug = ? AND published = true", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, fmt.Errorf("failed to load article: %w", err)
	}
	return &article, nil
}

func (s *ArticleService) ListAll() ([]Article, error) {
	var articles []Article
	if err := s.db.Order("created_at DESC").Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("failed to list articles: %w", err)
	}
	return articles, nil
}

func (s *ArticleService) Create(article *Article) error {
	if article.Slug == "" {
		article.Slug = Slugify(article.Title)
	}

	var existing Article
	if err := s.db.Select("id").First(&existing, "slug = ?", article.Slug).Error; err == nil {
		return ErrSlugTaken
	}

	if article.ID == uuid.Nil {
		article.ID = uuid.New()
	}
	if article.Published && article.PublishedAt == nil {
		now := time.Now()
		article.PublishedAt = &now
	}

	if err := s.db.Create(article).Error; err != nil {
		return fmt.Errorf("failed to create article: %w", err)
	}
	return nil
}

func (s *ArticleService) Update(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := s.db.Model(&Article{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update article: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrArticleNotFound
	}
	return nil
}

func (s *ArticleService) Delete(id uuid.UUID) error {
	return s.db.Delete(&Article{}, "id = ?", id).Error
}

// Slugify turns a title into a URL slug.
func Slugify(title string) string {
	slug := strings.ToLower(strings.TrimSpace(title))
	slug = slugStrip.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
