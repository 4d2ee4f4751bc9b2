package fashionday

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrEventNotFound = errors.New("event not found")

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

// ListPublished returns published events, upcoming first.
func (s *EventService) ListPublished() ([]Event, error) {
	var events []Event
	if err := s.db.Where("published = true").
		Order("starts_at DESC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// Upcoming returns published events that have not started yet.
func (s *EventService) Upcoming(now time.Time) ([]Event, error) {
	var events []Event
	if err := s.db.Where("published = true AND starts_at > ?", now).
		Order("starts_at ASC").
		Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Get(id uuid.UUID) (*Event, error) {
	var event Event
	if err := s.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to load event: %w", err)
	}
	return &event, nil
}

func (s *EventService) ListAll() ([]Event, error) {
	var events []Event
	if err := s.db.Order("starts_at DESC").Find(&events).Error; err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func (s *EventService) Create(event *Event) error {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if err := s.db.Create(event).Error; err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

func (s *EventService) Update(id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res := s.db.Model(&Event{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("failed to update event: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (s *EventService) Delete(id uuid.UUID) error {
	return s.db.Delete(&Event{}, "id = ?", id).Error
}
