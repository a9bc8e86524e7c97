package usecase

import (
	"context"
	"fmt"

	"github.com/jhoicas/backoffice-admin/internal/application/resource"
	"github.com/jhoicas/backoffice-admin/internal/domain"
	"github.com/jhoicas/backoffice-admin/internal/domain/entity"
	"github.com/jhoicas/backoffice-admin/internal/domain/repository"
	"github.com/jhoicas/backoffice-admin/pkg/locale"
)

// NoForm las pantallas sin modal de alta/edición.
type NoForm struct{}

// ReviewUseCase pantalla de reseñas: solo lista, búsqueda por producto y baja lógica.
type ReviewUseCase struct {
	*resource.Manager[entity.Review, NoForm]
}

// NewReviewUseCase construye el caso de uso.
func NewReviewUseCase(repo repository.ReviewRepository, env Env) *ReviewUseCase {
	env = env.withDefaults()
	return &ReviewUseCase{Manager: resource.New(resource.Options[entity.Review, NoForm]{
		Resource: "reviews",
		Noun:     locale.NounReview,
		Store:    reviewStore{repo: repo},
		ID:       func(r entity.Review) string { return r.ID },
		SearchFields: func(r entity.Review) []string {
			return []string{r.Product.Name}
		},
		CanRemove: func(r entity.Review) error {
			if r.IsDeleted {
				return fmt.Errorf("reseña %s: %w", r.ID, domain.ErrConflict)
			}
			return nil
		},
		Audit:   env.Audit,
		Printer: env.Printer,
		Logger:  env.component("reviews"),
		Now:     env.Now,
	})}
}

type reviewStore struct {
	repo repository.ReviewRepository
}

func (s reviewStore) List(ctx context.Context) ([]entity.Review, error) {
	return s.repo.List(ctx)
}

func (s reviewStore) Save(context.Context, string, NoForm) error {
	return fmt.Errorf("las reseñas no se editan: %w", domain.ErrInvalidInput)
}

func (s reviewStore) Deactivate(ctx context.Context, id string) error {
	return s.repo.Deactivate(ctx, id)
}
