package identity

import (
	"strings"
	"time"

	"github.com/fleetledger/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserRole is the business role of a staff account. It doubles as the
// viewer role handed to the reporting layer.
type UserRole string

const (
	UserRoleOwner    UserRole = "owner"
	UserRoleStaff    UserRole = "staff"
	UserRoleSupplier UserRole = "supplier"
	UserRoleCompany  UserRole = "company"
	UserRoleVehicle  UserRole = "vehicle"
)

// IsValid checks if the role is a known UserRole
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleOwner, UserRoleStaff, UserRoleSupplier, UserRoleCompany, UserRoleVehicle:
		return true
	}
	return false
}

// String returns the string representation of UserRole
func (r UserRole) String() string {
	return string(r)
}

// UserStatus represents the status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusLocked   UserStatus = "locked"
)

// User is a tenant staff account
type User struct {
	shared.TenantAggregateRoot
	Username     string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_user_tenant_username,priority:2"`
	PasswordHash string     `gorm:"type:varchar(100);not null"`
	DisplayName  string     `gorm:"type:varchar(100)"`
	Role         UserRole   `gorm:"type:varchar(20);not null;default:'staff'"`
	Status       UserStatus `gorm:"type:varchar(20);not null;default:'active'"`
	LastLoginAt  *time.Time
}

// TableName returns the table name for GORM
func (User) TableName() string {
	return "users"
}

// NewUser creates a new staff account. The password hash must already be
// computed by the caller; the domain never sees plaintext credentials.
func NewUser(tenantID uuid.UUID, username, passwordHash, displayName string, role UserRole) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Username cannot be empty")
	}
	if len(username) > 50 {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Username cannot exceed 50 characters")
	}
	if passwordHash == "" {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Password hash cannot be empty")
	}
	if !role.IsValid() {
		return nil, shared.NewDomainError("INVALID_ARGUMENT", "Invalid user role")
	}

	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Username:            username,
		PasswordHash:        passwordHash,
		DisplayName:         displayName,
		Role:                role,
		Status:              UserStatusActive,
	}, nil
}

// ChangePassword replaces the stored password hash
func (u *User) ChangePassword(passwordHash string) error {
	if passwordHash == "" {
		return shared.NewDomainError("INVALID_ARGUMENT", "Password hash cannot be empty")
	}
	u.PasswordHash = passwordHash
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
	return nil
}

// RecordLogin stamps a successful login
func (u *User) RecordLogin() {
	now := time.Now()
	u.LastLoginAt = &now
	u.UpdatedAt = now
}

// Activate marks the account active
func (u *User) Activate() {
	u.Status = UserStatusActive
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Deactivate marks the account inactive
func (u *User) Deactivate() {
	u.Status = UserStatusInactive
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// Lock locks the account
func (u *User) Lock() {
	u.Status = UserStatusLocked
	u.UpdatedAt = time.Now()
	u.IncrementVersion()
}

// CanLogin returns true if the account may authenticate
func (u *User) CanLogin() bool {
	return u.Status == UserStatusActive
}
