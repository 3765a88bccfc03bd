package entities

import (
	"time"

	"github.com/google/uuid"
)

// Customer represents a customer account
type Customer struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"fname"`
	LastName     string    `json:"lname"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	ProfilePic   string    `json:"profilePic"`
	DOB          string    `json:"dob"` // YYYY-MM-DD, always derived from NIC
	Address      string    `json:"address"`
	NIC          string    `json:"nic"`
	Gender       string    `json:"gender,omitempty"`
	PhoneNo      string    `json:"phoneNo,omitempty"`
	City         string    `json:"city,omitempty"`
	Role         string    `json:"role,omitempty"`
	Description  string    `json:"description,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// RegisterCustomerInput represents input for registering a customer
type RegisterCustomerInput struct {
	FirstName   string `json:"fname" binding:"required"`
	LastName    string `json:"lname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required"`
	ProfilePic  string `json:"profilePic" binding:"required"`
	Address     string `json:"address" binding:"required"`
	NIC         string `json:"nic" binding:"required"`
	Gender      string `json:"gender"`
	PhoneNo     string `json:"phoneNo"`
	City        string `json:"city"`
	Role        string `json:"role"`
	Description string `json:"description"`
}

// LoginInput represents input for customer login
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateProfileInput carries the allow-listed mutable profile fields.
// Empty values mean "keep the current value".
type UpdateProfileInput struct {
	FirstName   string `json:"fname"`
	LastName    string `json:"lname"`
	Email       string `json:"email"`
	ProfilePic  string `json:"profilePic"`
	Address     string `json:"address"`
	NIC         string `json:"nic"`
	PhoneNo     string `json:"phoneNo"`
	City        string `json:"city"`
	Description string `json:"description"`
	Password    string `json:"password"`
}

// ChangePasswordInput represents input for changing the caller's password
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}
