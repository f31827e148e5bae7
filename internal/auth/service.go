package auth

import (
	"context"
	"errors"
	"log"
	"strings"

	"talenthub/internal/user"
	"talenthub/internal/validate"

	"github.com/lib/pq"
)

// ErrInvalidCredentials is returned for both an unknown email and a wrong
// password, with one message, so login failures don't reveal which was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// WelcomeEnqueuer schedules the post-registration welcome delivery.
type WelcomeEnqueuer interface {
	EnqueueWelcome(ctx context.Context, userID uint64) error
}

type Service struct {
	Store   user.Store
	JWT     *JWT
	Welcome WelcomeEnqueuer // optional
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

func (in *RegisterInput) validate() validate.FieldErrors {
	var errs validate.FieldErrors

	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)

	if in.Name == "" {
		errs = append(errs, validate.Field("name is required", "name"))
	} else if len(in.Name) > 50 {
		errs = append(errs, validate.Field("name cannot be more than 50 characters", "name"))
	}
	if !validate.Email(in.Email) {
		errs = append(errs, validate.Field("please provide a valid email", "email"))
	}
	if len(in.Password) < 6 {
		errs = append(errs, validate.Field("password must be at least 6 characters", "password"))
	}
	return errs
}

// Register creates the user record and returns a signed session token for it.
// Duplicate emails surface as user.ErrDuplicateEmail via the store's unique
// index; concurrent registrations race there, not here.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, *user.User, error) {
	if errs := in.validate(); len(errs) > 0 {
		return "", nil, errs
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return "", nil, err
	}

	u := &user.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         user.RoleUser,
		Skills:       pq.StringArray{},
	}
	if err := s.Store.Create(ctx, u); err != nil {
		return "", nil, err
	}

	if s.Welcome != nil {
		// best effort: a lost welcome email never fails a registration
		if err := s.Welcome.EnqueueWelcome(ctx, u.ID); err != nil {
			log.Printf("enqueue welcome for user=%d: %v\n", u.ID, err)
		}
	}

	token, err := s.JWT.Sign(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}

func (s *Service) Login(ctx context.Context, email, password string) (string, *user.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, ErrInvalidCredentials
	}

	u, err := s.Store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !ComparePassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.JWT.Sign(u.ID)
	if err != nil {
		return "", nil, err
	}
	return token, u, nil
}
