package usecases

import (
	"context"
	"errors"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"customer-hub.backend/internal/domain/entities"
	domainerrors "customer-hub.backend/internal/domain/errors"
	"customer-hub.backend/internal/domain/repositories"
	"customer-hub.backend/internal/domain/services"
	"customer-hub.backend/pkg/crypto"
	"customer-hub.backend/pkg/jwt"
	"customer-hub.backend/pkg/logger"
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// launchAsync runs fire-and-forget work. Tests override it to run inline.
var launchAsync = func(f func()) { go f() }

// CustomerUsecase handles customer account business logic
type CustomerUsecase struct {
	customerRepo repositories.CustomerRepository
	mailer       services.Mailer
	jwtService   *jwt.JWTService
}

// NewCustomerUsecase creates a new customer usecase
func NewCustomerUsecase(
	customerRepo repositories.CustomerRepository,
	mailer services.Mailer,
	jwtService *jwt.JWTService,
) *CustomerUsecase {
	return &CustomerUsecase{
		customerRepo: customerRepo,
		mailer:       mailer,
		jwtService:   jwtService,
	}
}

// Register creates a new customer account and returns an auth token.
// The registration email is best-effort: a delivery failure is logged
// and never fails the registration itself.
func (u *CustomerUsecase) Register(ctx context.Context, input *entities.RegisterCustomerInput) (string, error) {
	// Fast-path duplicate check; the store's unique index is the
	// authoritative guard against concurrent registrations.
	_, err := u.customerRepo.GetByEmail(ctx, input.Email)
	if err == nil {
		return "", domainerrors.NewAppError(http.StatusBadRequest, "Customer already exists", domainerrors.ErrDuplicateEmail)
	}
	if !errors.Is(err, domainerrors.ErrNotFound) {
		return "", err
	}

	dob, err := DeriveDOB(input.NIC)
	if err != nil {
		return "", domainerrors.NewAppError(http.StatusBadRequest, "Invalid NIC", domainerrors.ErrInvalidNIC)
	}

	passwordHash, err := crypto.HashPassword(input.Password)
	if err != nil {
		return "", err
	}

	customer := &entities.Customer{
		ID:           uuid.New(),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: passwordHash,
		ProfilePic:   input.ProfilePic,
		DOB:          dob,
		Address:      input.Address,
		NIC:          input.NIC,
		Gender:       input.Gender,
		PhoneNo:      input.PhoneNo,
		City:         input.City,
		Role:         input.Role,
		Description:  input.Description,
	}

	if err := u.customerRepo.Create(ctx, customer); err != nil {
		if errors.Is(err, domainerrors.ErrDuplicateEmail) {
			return "", domainerrors.NewAppError(http.StatusBadRequest, "Customer already exists", domainerrors.ErrDuplicateEmail)
		}
		return "", domainerrors.NewAppError(http.StatusUnauthorized, "Invalid user Data", domainerrors.ErrInvalidCustomerData)
	}

	token, err := u.jwtService.GenerateToken(customer.ID, customer.Email)
	if err != nil {
		return "", err
	}

	email, firstName, password := customer.Email, customer.FirstName, input.Password
	launchAsync(func() {
		if err := u.mailer.SendRegistrationEmail(context.Background(), email, firstName, password); err != nil {
			logger.Warn(context.Background(), "registration email failed",
				zap.String("email", email), zap.Error(err))
		}
	})

	return token, nil
}

// Login authenticates a customer by email and password and returns an
// auth token. A lookup miss and a password mismatch collapse into the
// same error so callers cannot probe which accounts exist.
func (u *CustomerUsecase) Login(ctx context.Context, input *entities.LoginInput) (string, error) {
	if input.Username == "" || input.Password == "" {
		if input.Username != "" {
			return "", domainerrors.NewAppError(http.StatusBadRequest, "password required", domainerrors.ErrMissingCredential)
		}
		return "", domainerrors.NewAppError(http.StatusBadRequest, "username required", domainerrors.ErrMissingCredential)
	}

	if !emailPattern.MatchString(input.Username) {
		return "", domainerrors.NewAppError(http.StatusBadRequest, "Enter valid email", domainerrors.ErrInvalidEmailFormat)
	}

	customer, err := u.customerRepo.GetByEmail(ctx, input.Username)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return "", domainerrors.NewAppError(http.StatusUnauthorized, "Email or password is incorrect", domainerrors.ErrAuthenticationFailed)
		}
		return "", err
	}

	if !crypto.CheckPassword(input.Password, customer.PasswordHash) {
		return "", domainerrors.NewAppError(http.StatusUnauthorized, "Email or password is incorrect", domainerrors.ErrAuthenticationFailed)
	}

	return u.jwtService.GenerateToken(customer.ID, customer.Email)
}

// UpdateProfile applies the allow-listed profile mutations to a customer.
// It reports whether anything actually changed; when nothing differs from
// the stored state no write is issued.
func (u *CustomerUsecase) UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileInput) (bool, error) {
	customer, err := u.customerRepo.GetByID(ctx, id)
	if err != nil {
		return false, err
	}

	snapshot := *customer

	applyIfSet(&customer.FirstName, input.FirstName)
	applyIfSet(&customer.LastName, input.LastName)
	applyIfSet(&customer.Email, input.Email)
	applyIfSet(&customer.ProfilePic, input.ProfilePic)
	applyIfSet(&customer.Address, input.Address)
	applyIfSet(&customer.NIC, input.NIC)
	applyIfSet(&customer.PhoneNo, input.PhoneNo)
	applyIfSet(&customer.City, input.City)
	applyIfSet(&customer.Description, input.Description)

	if customer.NIC != snapshot.NIC {
		dob, err := DeriveDOB(customer.NIC)
		if err != nil {
			return false, domainerrors.NewAppError(http.StatusBadRequest, "Invalid NIC", domainerrors.ErrInvalidNIC)
		}
		customer.DOB = dob
	}

	passwordChanged := input.Password != "" && input.Password != snapshot.PasswordHash

	changed := passwordChanged ||
		customer.FirstName != snapshot.FirstName ||
		customer.LastName != snapshot.LastName ||
		customer.Email != snapshot.Email ||
		customer.ProfilePic != snapshot.ProfilePic ||
		customer.Address != snapshot.Address ||
		customer.NIC != snapshot.NIC ||
		customer.PhoneNo != snapshot.PhoneNo ||
		customer.City != snapshot.City ||
		customer.Description != snapshot.Description

	if !changed {
		return false, nil
	}

	if passwordChanged {
		passwordHash, err := crypto.HashPassword(input.Password)
		if err != nil {
			return false, err
		}
		customer.PasswordHash = passwordHash
	}

	if err := u.customerRepo.Update(ctx, customer); err != nil {
		return false, err
	}
	return true, nil
}

// ChangePassword changes the authenticated caller's password
func (u *CustomerUsecase) ChangePassword(ctx context.Context, callerID uuid.UUID, input *entities.ChangePasswordInput) error {
	customer, err := u.customerRepo.GetByID(ctx, callerID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NewAppError(http.StatusUnauthorized, "Invalid Old Password", domainerrors.ErrAuthenticationFailed)
		}
		return err
	}

	// An empty current password is still run through verification.
	if !crypto.CheckPassword(input.CurrentPassword, customer.PasswordHash) {
		return domainerrors.NewAppError(http.StatusUnauthorized, "Invalid Old Password", domainerrors.ErrAuthenticationFailed)
	}

	if input.NewPassword == "" {
		return domainerrors.NewAppError(http.StatusBadRequest, "Invalid Inputs", domainerrors.ErrInvalidInput)
	}

	if input.NewPassword != input.ConfirmPassword {
		return domainerrors.NewAppError(http.StatusBadRequest, "new password and confirm password do not match", domainerrors.ErrPasswordMismatch)
	}

	passwordHash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return u.customerRepo.UpdatePassword(ctx, callerID, passwordHash)
}

// Delete removes a customer and notifies them by email. The deletion
// email is awaited: its failure fails the whole operation.
func (u *CustomerUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	customer, err := u.customerRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := u.customerRepo.Delete(ctx, id); err != nil {
		return err
	}

	if err := u.mailer.SendAccountDeletionEmail(ctx, customer.Email, customer.FirstName); err != nil {
		logger.Error(ctx, "account deletion email failed",
			zap.String("email", customer.Email), zap.Error(err))
		return err
	}

	return nil
}

// GetByID gets a customer by ID
func (u *CustomerUsecase) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	return u.customerRepo.GetByID(ctx, id)
}

// List returns all customers
func (u *CustomerUsecase) List(ctx context.Context) ([]*entities.Customer, error) {
	return u.customerRepo.List(ctx)
}

func applyIfSet(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
