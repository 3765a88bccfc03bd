package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"customer-hub.backend/internal/domain/entities"
	domainerrors "customer-hub.backend/internal/domain/errors"
	"customer-hub.backend/pkg/jwt"
)

type stubCustomerRepo struct {
	byEmail map[string]*entities.Customer
	created []*entities.Customer
}

func (s *stubCustomerRepo) Create(ctx context.Context, c *entities.Customer) error {
	s.created = append(s.created, c)
	return nil
}
func (s *stubCustomerRepo) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	return nil, domainerrors.ErrNotFound
}
func (s *stubCustomerRepo) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	if c, ok := s.byEmail[email]; ok {
		return c, nil
	}
	return nil, domainerrors.ErrNotFound
}
func (s *stubCustomerRepo) Update(ctx context.Context, c *entities.Customer) error { return nil }
func (s *stubCustomerRepo) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}
func (s *stubCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (s *stubCustomerRepo) List(ctx context.Context) ([]*entities.Customer, error) {
	return nil, nil
}

type failingMailer struct {
	registrationCalls int
}

func (m *failingMailer) SendRegistrationEmail(ctx context.Context, email, firstName, password string) error {
	m.registrationCalls++
	return errors.New("smtp down")
}
func (m *failingMailer) SendAccountDeletionEmail(ctx context.Context, email, firstName string) error {
	return errors.New("smtp down")
}

// Registration email is fire-and-forget: a delivery failure must not
// fail the registration response.
func TestRegister_RegistrationEmailFailureIsSwallowed(t *testing.T) {
	origLaunch := launchAsync
	defer func() { launchAsync = origLaunch }()
	launchAsync = func(f func()) { f() } // run inline for determinism

	repo := &stubCustomerRepo{byEmail: map[string]*entities.Customer{}}
	mailer := &failingMailer{}
	uc := NewCustomerUsecase(repo, mailer, jwt.NewJWTService("test-secret", 24*time.Hour))

	token, err := uc.Register(context.Background(), &entities.RegisterCustomerInput{
		FirstName:  "Amara",
		LastName:   "Perera",
		Email:      "amara@mail.com",
		Password:   "Password123!",
		ProfilePic: "p.png",
		Address:    "12 Lake Rd",
		NIC:        "9912312345",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, 1, mailer.registrationCalls)
	assert.Len(t, repo.created, 1)
}
