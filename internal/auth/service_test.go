package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"talenthub/internal/user"
	"talenthub/internal/validate"
)

// fakeStore is an in-memory user.Store for tests.
type fakeStore struct {
	mu     sync.Mutex
	nextID uint64
	users  map[uint64]*user.User

	createErr error
	findErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{users: map[uint64]*user.User{}}
}

func (s *fakeStore) Create(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return user.ErrDuplicateEmail
		}
	}
	s.nextID++
	u.ID = s.nextID
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeStore) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrNotFound
}

func (s *fakeStore) FindByID(ctx context.Context, id uint64) (*user.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s *fakeStore) Update(ctx context.Context, u *user.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.users[u.ID]
	if !ok {
		return user.ErrNotFound
	}
	cp := *u
	cp.CreatedAt = existing.CreatedAt
	s.users[u.ID] = &cp
	return nil
}

func (s *fakeStore) delete(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
}

type fakeWelcome struct {
	mu      sync.Mutex
	userIDs []uint64
	err     error
}

func (f *fakeWelcome) EnqueueWelcome(ctx context.Context, userID uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.userIDs = append(f.userIDs, userID)
	return nil
}

func newTestService(store user.Store) *Service {
	return &Service{
		Store: store,
		JWT:   NewJWT(testSecret, time.Hour),
	}
}

func TestRegister(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	token, u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Fatal("Register() returned empty token")
	}

	// token resolves back to the created record
	uid, err := svc.JWT.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	got, err := store.FindByID(context.Background(), uid)
	if err != nil {
		t.Fatalf("FindByID() error = %v", err)
	}

	if got.Name != "Ann" || got.Email != "ann@x.com" {
		t.Errorf("record = %q/%q, want Ann/ann@x.com", got.Name, got.Email)
	}
	if got.Role != user.RoleUser {
		t.Errorf("Role = %q, want %q", got.Role, user.RoleUser)
	}
	if len(got.Skills) != 0 {
		t.Errorf("Skills = %v, want empty", got.Skills)
	}
	if got.Experience != 0 {
		t.Errorf("Experience = %v, want 0", got.Experience)
	}
	if got.Education != "" {
		t.Errorf("Education = %q, want empty", got.Education)
	}
	if got.PasswordHash == "secret1" {
		t.Error("password stored in plaintext")
	}
	if !ComparePassword(got.PasswordHash, "secret1") {
		t.Error("stored hash does not match submitted password")
	}
	if u.ID != got.ID {
		t.Errorf("returned user ID = %d, want %d", u.ID, got.ID)
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name  string
		in    RegisterInput
		param string
	}{
		{
			name:  "empty name",
			in:    RegisterInput{Name: "", Email: "a@x.com", Password: "secret1"},
			param: "name",
		},
		{
			name:  "name over 50 chars",
			in:    RegisterInput{Name: strings.Repeat("a", 51), Email: "a@x.com", Password: "secret1"},
			param: "name",
		},
		{
			name:  "malformed email",
			in:    RegisterInput{Name: "Ann", Email: "not-an-email", Password: "secret1"},
			param: "email",
		},
		{
			name:  "email missing domain dot",
			in:    RegisterInput{Name: "Ann", Email: "a@x", Password: "secret1"},
			param: "email",
		},
		{
			name:  "short password",
			in:    RegisterInput{Name: "Ann", Email: "a@x.com", Password: "five5"},
			param: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			svc := newTestService(store)

			_, _, err := svc.Register(context.Background(), tt.in)

			var fieldErrs validate.FieldErrors
			if !errors.As(err, &fieldErrs) {
				t.Fatalf("Register() error = %v, want FieldErrors", err)
			}
			found := false
			for _, fe := range fieldErrs {
				if fe.Param == tt.param {
					found = true
				}
			}
			if !found {
				t.Errorf("FieldErrors = %v, want error for param %q", fieldErrs, tt.param)
			}

			// validation rejects before touching the store
			if len(store.users) != 0 {
				t.Error("validation failure must not persist a record")
			}
		})
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	in := RegisterInput{Name: "Ann", Email: "ann@x.com", Password: "secret1"}
	if _, _, err := svc.Register(context.Background(), in); err != nil {
		t.Fatalf("first Register() error = %v", err)
	}

	_, _, err := svc.Register(context.Background(), in)
	if !errors.Is(err, user.ErrDuplicateEmail) {
		t.Errorf("second Register() error = %v, want ErrDuplicateEmail", err)
	}
	if len(store.users) != 1 {
		t.Errorf("store has %d users, want 1", len(store.users))
	}
}

func TestRegister_EnqueuesWelcome(t *testing.T) {
	store := newFakeStore()
	welcome := &fakeWelcome{}
	svc := newTestService(store)
	svc.Welcome = welcome

	_, u, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	if len(welcome.userIDs) != 1 || welcome.userIDs[0] != u.ID {
		t.Errorf("welcome enqueued for %v, want [%d]", welcome.userIDs, u.ID)
	}
}

func TestRegister_WelcomeFailureDoesNotFailRegistration(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)
	svc.Welcome = &fakeWelcome{err: errors.New("queue down")}

	token, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if token == "" {
		t.Error("Register() returned empty token")
	}
}

func TestLogin(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	token, u, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" {
		t.Fatal("Login() returned empty token")
	}

	uid, err := svc.JWT.Verify(token)
	if err != nil {
		t.Fatalf("Verify() error = %v", err)
	}
	if uid != u.ID {
		t.Errorf("token resolves to %d, want %d", uid, u.ID)
	}
}

func TestLogin_InvalidCredentialsAreUniform(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(store)

	if _, _, err := svc.Register(context.Background(), RegisterInput{
		Name: "Ann", Email: "ann@x.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	_, _, errWrongPass := svc.Login(context.Background(), "ann@x.com", "wrong-password")
	_, _, errNoUser := svc.Login(context.Background(), "nobody@x.com", "secret1")

	if !errors.Is(errWrongPass, ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v, want ErrInvalidCredentials", errWrongPass)
	}
	if !errors.Is(errNoUser, ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v, want ErrInvalidCredentials", errNoUser)
	}
	// the client-visible message must not reveal which field was wrong
	if errWrongPass.Error() != errNoUser.Error() {
		t.Errorf("messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestLogin_StoreErrorIsNotInvalidCredentials(t *testing.T) {
	store := newFakeStore()
	store.findErr = errors.New("connection refused")
	svc := newTestService(store)

	_, _, err := svc.Login(context.Background(), "ann@x.com", "secret1")
	if err == nil || errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("Login() error = %v, want opaque store error", err)
	}
}
