package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"customer-hub.backend/internal/domain/entities"
	domainerrors "customer-hub.backend/internal/domain/errors"
	"customer-hub.backend/internal/infrastructure/models"
)

// CustomerRepository implements customer data operations
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

// Create creates a new customer. The unique index on email is the
// authoritative duplicate guard; callers only pre-check as a fast path.
func (r *CustomerRepository) Create(ctx context.Context, customer *entities.Customer) error {
	m := toModel(customer)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrDuplicateEmail
		}
		return err
	}
	customer.ID = m.ID
	customer.CreatedAt = m.CreatedAt
	customer.UpdatedAt = m.UpdatedAt
	return nil
}

// GetByID gets a customer by ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error) {
	var m models.Customer
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// GetByEmail gets a customer by email
func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*entities.Customer, error) {
	var m models.Customer
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// Update persists the mutable profile fields of a customer
func (r *CustomerRepository) Update(ctx context.Context, customer *entities.Customer) error {
	updates := map[string]interface{}{
		"fname":         customer.FirstName,
		"lname":         customer.LastName,
		"email":         customer.Email,
		"password_hash": customer.PasswordHash,
		"profile_pic":   customer.ProfilePic,
		"dob":           customer.DOB,
		"address":       customer.Address,
		"nic":           customer.NIC,
		"phone_no":      null.NewString(customer.PhoneNo, customer.PhoneNo != ""),
		"city":          null.NewString(customer.City, customer.City != ""),
		"description":   null.NewString(customer.Description, customer.Description != ""),
		"updated_at":    time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", customer.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return domainerrors.ErrDuplicateEmail
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword updates only the stored password hash
func (r *CustomerRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Customer{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete removes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Customer{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List returns all customers, newest first
func (r *CustomerRepository) List(ctx context.Context) ([]*entities.Customer, error) {
	var customerModels []models.Customer
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&customerModels).Error; err != nil {
		return nil, err
	}

	customers := make([]*entities.Customer, 0, len(customerModels))
	for i := range customerModels {
		customers = append(customers, toEntity(&customerModels[i]))
	}
	return customers, nil
}

func toModel(c *entities.Customer) *models.Customer {
	return &models.Customer{
		ID:           c.ID,
		FirstName:    c.FirstName,
		LastName:     c.LastName,
		Email:        c.Email,
		PasswordHash: c.PasswordHash,
		ProfilePic:   c.ProfilePic,
		DOB:          c.DOB,
		Address:      c.Address,
		NIC:          c.NIC,
		Gender:       null.NewString(c.Gender, c.Gender != ""),
		PhoneNo:      null.NewString(c.PhoneNo, c.PhoneNo != ""),
		City:         null.NewString(c.City, c.City != ""),
		Role:         null.NewString(c.Role, c.Role != ""),
		Description:  null.NewString(c.Description, c.Description != ""),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

func toEntity(m *models.Customer) *entities.Customer {
	return &entities.Customer{
		ID:           m.ID,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		ProfilePic:   m.ProfilePic,
		DOB:          m.DOB,
		Address:      m.Address,
		NIC:          m.NIC,
		Gender:       m.Gender.String,
		PhoneNo:      m.PhoneNo.String,
		City:         m.City.String,
		Role:         m.Role.String,
		Description:  m.Description.String,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}
