package domain

import (
	"time"

	"github.com/m04kA/SMC-ParkingService/pkg/types"
)

// PassType represents the plan of a long-term pass
type PassType string

const (
	PassTypeMonthly PassType = "monthly"
	PassTypeYearly  PassType = "yearly"
)

// UserRole represents who the pass holder is
type UserRole string

const (
	UserRoleEmployee UserRole = "employee"
	UserRoleVisitor  UserRole = "visitor"
	UserRoleGuest    UserRole = "guest"
)

// PassStatus represents the lifecycle state of a pass
type PassStatus string

const (
	PassStatusActive           PassStatus = "active"
	PassStatusPendingExtension PassStatus = "pending_extension"
	PassStatusExtended         PassStatus = "extended"
	PassStatusCancelled        PassStatus = "cancelled"
	PassStatusNoShow           PassStatus = "no_show"
	PassStatusExpired          PassStatus = "expired"
)

// Pass represents a monthly or yearly parking pass
type Pass struct {
	ID            int64
	PassType      PassType
	UserRole      UserRole
	UserName      string
	Email         string
	Mobile        string
	Age           int
	VehicleNumber string

	StartDate time.Time
	EndDate   time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Status             PassStatus
	Arrived            bool
	ExtensionRequested bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the pass is active
func (p *Pass) IsActive() bool {
	return p.Status == PassStatusActive
}

// CanBeCancelled returns true if the pass can be cancelled
func (p *Pass) CanBeCancelled() bool {
	return p.Status == PassStatusActive
}

// CanRequestExtension returns true if an extension request is allowed
func (p *Pass) CanRequestExtension() bool {
	return p.Status == PassStatusActive
}

// HasPendingExtension returns true if an extension waits for a decision
func (p *Pass) HasPendingExtension() bool {
	return p.Status == PassStatusPendingExtension
}

// IsValidPassType returns true for monthly and yearly
func IsValidPassType(t PassType) bool {
	return t == PassTypeMonthly || t == PassTypeYearly
}

// IsValidUserRole returns true for known roles
func IsValidUserRole(r UserRole) bool {
	return r == UserRoleEmployee || r == UserRoleVisitor || r == UserRoleGuest
}

// ExpirableStatuses statuses that ExpireFinished moves to expired
var ExpirableStatuses = []PassStatus{
	PassStatusActive,
	PassStatusExtended,
}
