package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

type Customer struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	FirstName    string      `gorm:"column:fname;type:varchar(100);not null"`
	LastName     string      `gorm:"column:lname;type:varchar(100);not null"`
	Email        string      `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string      `gorm:"type:varchar(255);not null"`
	ProfilePic   string      `gorm:"type:text"`
	DOB          string      `gorm:"column:dob;type:varchar(10)"`
	Address      string      `gorm:"type:text"`
	NIC          string      `gorm:"column:nic;type:varchar(12)"`
	Gender       null.String `gorm:"type:varchar(20)"`
	PhoneNo      null.String `gorm:"type:varchar(20)"`
	City         null.String `gorm:"type:varchar(100)"`
	Role         null.String `gorm:"type:varchar(50)"`
	Description  null.String `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
