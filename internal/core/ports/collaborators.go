package ports

import (
	"context"

	"forwarding/internal/core/domain/model/kernel"
	"forwarding/internal/core/domain/services"
)

// Role is a user's access level.
type Role string

const (
	RoleClient     Role = "CLIENT"
	RoleAgent      Role = "AGENT"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// User is the directory record of a platform user.
type User struct {
	ID        kernel.UUID
	Email     string
	FirstName string
	LastName  string
	Role      Role
	IsActive  bool
}

// FullName returns the user's display name.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// UserDirectory resolves platform users. The forwarding core never manages
// accounts itself; it only checks existence and reads display data.
type UserDirectory interface {
	// FindUser retrieves a user by id, or nil when unknown.
	FindUser(ctx context.Context, id kernel.UUID) (*User, error)

	// FindUserByEmail retrieves a user by email, or nil when unknown.
	FindUserByEmail(ctx context.Context, email string) (*User, error)
}

// Category is a parcel category with its shipping tariff.
type Category struct {
	ID       kernel.UUID
	Name     string
	Rate     services.Rate
	IsActive bool
}

// CategoryTable resolves parcel categories and their rates.
type CategoryTable interface {
	// FindCategory retrieves a category by id, or nil when unknown.
	FindCategory(ctx context.Context, id kernel.UUID) (*Category, error)
}

// Notifier pushes status updates to clients. Calls are fire-and-forget:
// implementations log failures and never propagate them into the calling
// workflow.
type Notifier interface {
	// NotifyParcelReceived tells the owner their parcel arrived at the US
	// warehouse.
	NotifyParcelReceived(ctx context.Context, userID kernel.UUID, trackingNumber string)

	// NotifyStatusChange tells the owner their parcel moved to a new
	// status.
	NotifyStatusChange(ctx context.Context, userID kernel.UUID, trackingNumber, oldStatus, newStatus string)
}

// AuditRecorder writes an audit trail of sensitive operations. Best-effort;
// implementations must never block or fail the audited operation.
type AuditRecorder interface {
	Log(ctx context.Context, actorID kernel.UUID, action, resource, resourceID, description string)
}

// ChargeIntent is the reference handed back by the payment gateway when a
// card charge is initiated.
type ChargeIntent struct {
	Reference string
	Amount    string
	Currency  string
}

// PaymentGateway initiates card charges with the external processor. The
// processor's own settlement callbacks are out of scope; RecordPayment is
// called once the charge is known to have succeeded.
type PaymentGateway interface {
	CreateChargeIntent(ctx context.Context, amount, currency string, metadata map[string]string) (ChargeIntent, error)
}
