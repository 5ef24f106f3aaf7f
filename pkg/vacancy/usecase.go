package vacancy

import (
	"context"
	"strings"
)

// UseCase инкапсулирует приложение для работы с вакансиями.
type UseCase interface {
	Create(ctx context.Context, j Job) (Job, error)
	// Update and Delete only touch jobs owned by userID; anything else is ErrNotFound.
	Update(ctx context.Context, userID, id int64, p Patch) (Job, error)
	Delete(ctx context.Context, userID, id int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) UseCase { return &service{repo: repo} }

func (s *service) Create(ctx context.Context, j Job) (Job, error) {
	j.Title = strings.TrimSpace(j.Title)
	if j.Title == "" || strings.TrimSpace(j.Description) == "" {
		return Job{}, ErrValidation("title and description are required")
	}
	if len(j.Owners) == 0 {
		return Job{}, ErrValidation("at least one owner is required")
	}
	return s.repo.Create(ctx, j)
}

func (s *service) Update(ctx context.Context, userID, id int64, p Patch) (Job, error) {
	if id <= 0 || p.Empty() {
		return Job{}, ErrValidation("job id and fields to update are required")
	}
	if p.Title != nil {
		t := strings.TrimSpace(*p.Title)
		if t == "" {
			return Job{}, ErrValidation("title must not be empty")
		}
		p.Title = &t
	}
	if p.Owners != nil && len(p.Owners) == 0 {
		return Job{}, ErrValidation("at least one owner is required")
	}
	if err := s.checkOwner(ctx, userID, id); err != nil {
		return Job{}, err
	}
	return s.repo.Update(ctx, id, p)
}

func (s *service) Delete(ctx context.Context, userID, id int64) error {
	if id <= 0 {
		return ErrValidation("job id is required")
	}
	if err := s.checkOwner(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

// checkOwner hides jobs of other recruiters behind ErrNotFound.
func (s *service) checkOwner(ctx context.Context, userID, id int64) error {
	j, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if !j.OwnedBy(userID) {
		return ErrNotFound
	}
	return nil
}

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }
