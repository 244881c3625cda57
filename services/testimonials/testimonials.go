// File: services/testimonials/testimonials.go
package testimonials

import (
	"context"
	"fmt"
	"time"

	testimonialRepo "nafis/database/repository/testimonial"
	"nafis/models"
	"nafis/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNotFound mirrors the repository sentinel for callers of this package.
var ErrNotFound = testimonialRepo.ErrNotFound

// SubmitInput is a review submitted through the public site.
type SubmitInput struct {
	Name    string `json:"name"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// TestimonialService manages client reviews. Public listings only show
// verified entries; new submissions wait for admin verification.
type TestimonialService interface {
	List(ctx context.Context, includeUnverified bool) ([]models.Testimonial, error)
	Submit(ctx context.Context, input SubmitInput) (*models.Testimonial, error)
	Verify(ctx context.Context, id string) (*models.Testimonial, error)
	Delete(ctx context.Context, id string) error
	SeedIfEmpty(ctx context.Context) error
}

// DefaultTestimonialService implements TestimonialService over the repository.
type DefaultTestimonialService struct {
	repo testimonialRepo.TestimonialRepository
}

// NewDefaultTestimonialService wires the testimonial service.
func NewDefaultTestimonialService(repo testimonialRepo.TestimonialRepository) *DefaultTestimonialService {
	return &DefaultTestimonialService{repo: repo}
}

func (s *DefaultTestimonialService) List(ctx context.Context, includeUnverified bool) ([]models.Testimonial, error) {
	return s.repo.List(ctx, !includeUnverified)
}

func (s *DefaultTestimonialService) Submit(ctx context.Context, input SubmitInput) (*models.Testimonial, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("testimonials: name is required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("testimonials: rating must be between 1 and 5")
	}
	if input.Comment == "" {
		return nil, fmt.Errorf("testimonials: comment is required")
	}

	now := time.Now()
	t := models.Testimonial{
		ID:        uuid.NewString(),
		Name:      input.Name,
		Rating:    input.Rating,
		Comment:   input.Comment,
		Date:      now.Format("2006-01-02"),
		Verified:  false,
		CreatedAt: now,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *DefaultTestimonialService) Verify(ctx context.Context, id string) (*models.Testimonial, error) {
	return s.repo.SetVerified(ctx, id, true)
}

func (s *DefaultTestimonialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// SeedIfEmpty loads the sample reviews into an empty collection.
func (s *DefaultTestimonialService) SeedIfEmpty(ctx context.Context) error {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, t := range SampleTestimonials() {
		if err := s.repo.Create(ctx, t); err != nil {
			return fmt.Errorf("testimonials: seeding %q: %w", t.Name, err)
		}
	}
	utils.GetLogger().Info("Seeded testimonials", zap.Int("testimonials", len(SampleTestimonials())))
	return nil
}
