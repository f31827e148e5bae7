package profile

import (
	"context"
	"strings"
	"time"

	"talenthub/internal/user"
	"talenthub/internal/validate"

	"github.com/lib/pq"
)

type Service struct {
	Store user.Store
}

// Patch carries the updatable profile fields. A nil field is left untouched,
// not cleared.
type Patch struct {
	Name       *string   `json:"name"`
	Skills     *[]string `json:"skills"`
	Experience *float64  `json:"experience"`
	Education  *string   `json:"education"`
}

func (p *Patch) validate() validate.FieldErrors {
	var errs validate.FieldErrors

	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if name == "" {
			errs = append(errs, validate.Field("name is required", "name"))
		} else if len(name) > 50 {
			errs = append(errs, validate.Field("name cannot be more than 50 characters", "name"))
		} else {
			p.Name = &name
		}
	}
	if p.Experience != nil && *p.Experience < 0 {
		errs = append(errs, validate.Field("experience must be a non-negative number", "experience"))
	}
	return errs
}

func (s *Service) Get(ctx context.Context, userID uint64) (*user.User, error) {
	return s.Store.FindByID(ctx, userID)
}

// Update applies the patch all-or-nothing: validation happens before any
// write, and a failed write leaves the record as it was.
func (s *Service) Update(ctx context.Context, userID uint64, p Patch) (*user.User, error) {
	if errs := p.validate(); len(errs) > 0 {
		return nil, errs
	}

	u, err := s.Store.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Skills != nil {
		u.Skills = pq.StringArray(user.NormalizeSkills(*p.Skills))
	}
	if p.Experience != nil {
		u.Experience = *p.Experience
	}
	if p.Education != nil {
		u.Education = *p.Education
	}
	u.UpdatedAt = time.Now()

	if err := s.Store.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}
