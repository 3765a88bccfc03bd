package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"customer-hub.backend/internal/domain/entities"
	domainerrors "customer-hub.backend/internal/domain/errors"
	"customer-hub.backend/internal/interfaces/http/middleware"
	"customer-hub.backend/internal/interfaces/http/response"
	"customer-hub.backend/pkg/logger"
)

const authCookieName = "jwt"

// CustomerService is the business-logic surface the handler drives
type CustomerService interface {
	Register(ctx context.Context, input *entities.RegisterCustomerInput) (string, error)
	Login(ctx context.Context, input *entities.LoginInput) (string, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, input *entities.UpdateProfileInput) (bool, error)
	ChangePassword(ctx context.Context, callerID uuid.UUID, input *entities.ChangePasswordInput) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Customer, error)
	List(ctx context.Context) ([]*entities.Customer, error)
}

// SessionWriter marks customers as logged out
type SessionWriter interface {
	MarkLoggedOut(ctx context.Context, customerID string) error
	ClearLogout(ctx context.Context, customerID string) error
}

// CustomerHandler handles customer account endpoints
type CustomerHandler struct {
	service  CustomerService
	sessions SessionWriter
	tokenTTL int // cookie lifetime, seconds
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(service CustomerService, sessions SessionWriter, tokenTTLSeconds int) *CustomerHandler {
	return &CustomerHandler{
		service:  service,
		sessions: sessions,
		tokenTTL: tokenTTLSeconds,
	}
}

// Register handles customer registration
// POST /api/v1/customers/register
func (h *CustomerHandler) Register(c *gin.Context) {
	var input entities.RegisterCustomerInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.NewAppError(http.StatusUnauthorized, "Invalid user Data", domainerrors.ErrInvalidCustomerData))
		return
	}

	token, err := h.service.Register(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(authCookieName, token, h.tokenTTL, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{
		"data":    gin.H{"token": token},
		"message": "Registered Succesfully",
	})
}

// Login handles customer authentication
// POST /api/v1/customers/login
func (h *CustomerHandler) Login(c *gin.Context) {
	// A bearer token means the caller is already authenticated; validity
	// is checked by the auth middleware on protected routes.
	if c.GetHeader(middleware.AuthorizationHeader) != "" {
		response.Message(c, http.StatusOK, "logged in successfully")
		return
	}

	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.NewAppError(http.StatusBadRequest, "username required", domainerrors.ErrMissingCredential))
		return
	}

	token, err := h.service.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.SetCookie(authCookieName, token, h.tokenTTL, "/", "", false, true)
	response.Success(c, http.StatusOK, gin.H{
		"data":    gin.H{"token": token},
		"message": "logged in successfully",
	})
}

// Logout handles customer logout
// POST /api/v1/customers/logout
func (h *CustomerHandler) Logout(c *gin.Context) {
	if customerID, ok := middleware.GetCustomerID(c); ok && h.sessions != nil {
		if err := h.sessions.MarkLoggedOut(c.Request.Context(), customerID.String()); err != nil {
			logger.Warn(c.Request.Context(), "failed to write logout marker", zap.Error(err))
		}
	}

	// expiring placeholder in lieu of the token
	c.SetCookie(authCookieName, "none", 10, "/", "", false, true)
	response.Message(c, http.StatusOK, "Customer logged out successfully")
}

// ListCustomers returns all customers
// GET /api/v1/customers
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	if len(customers) == 0 {
		response.Message(c, http.StatusNotFound, "Customer is Empty !")
		return
	}

	response.Success(c, http.StatusOK, customers)
}

// GetCustomerByID returns a single customer
// GET /api/v1/customers/:id
func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Message(c, http.StatusNotFound, "Customer Not Found !")
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Customer Not Found !")
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, customer)
}

// GetProfile returns the authenticated caller's own record
// GET /api/v1/customers/profile
func (h *CustomerHandler) GetProfile(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		response.Error(c, domainerrors.InternalError(errors.New("no authenticated customer in context")))
		return
	}

	customer, err := h.service.GetByID(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, customer)
}

// UpdateProfile applies profile mutations
// PUT /api/v1/customers/:id
func (h *CustomerHandler) UpdateProfile(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Message(c, http.StatusNotFound, "Customer not found")
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("invalid request body"))
		return
	}

	changed, err := h.service.UpdateProfile(c.Request.Context(), id, &input)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Customer not found")
			return
		}
		response.Error(c, err)
		return
	}

	// "no changes" is a success with its own status, an explicit UX contract
	if !changed {
		response.Message(c, http.StatusCreated, "No changes made")
		return
	}

	response.Message(c, http.StatusOK, "Profile Updated Succesfully")
}

// ChangePassword changes the authenticated caller's password
// PUT /api/v1/customers/password
func (h *CustomerHandler) ChangePassword(c *gin.Context) {
	customerID, ok := middleware.GetCustomerID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Invalid Old Password"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest("Invalid Inputs"))
		return
	}

	if err := h.service.ChangePassword(c.Request.Context(), customerID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Password changed successfully")
}

// DeleteCustomer removes a customer account
// DELETE /api/v1/customers/:id
func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Message(c, http.StatusNotFound, "Customer not Found !")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			response.Message(c, http.StatusNotFound, "Customer not Found !")
			return
		}
		response.Error(c, err)
		return
	}

	response.Message(c, http.StatusOK, "Customer Deleted Successfully !")
}
