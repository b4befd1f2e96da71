package domain

import (
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/apperr"
	"github.com/jcmexdev/ecommerce-orders/internal/pkg/identity"
)

// Operation names an order operation subject to authorization.
type Operation string

const (
	OpListOrders   Operation = "ListOrders"
	OpGetOrder     Operation = "GetOrder"
	OpListMyOrders Operation = "ListMyOrders"
	OpListByStatus Operation = "ListByStatus"
	OpCreateOrder  Operation = "CreateOrder"
	OpUpdateStatus Operation = "UpdateStatus"
	OpCancelOrder  Operation = "CancelOrder"
	OpRevenue      Operation = "Revenue"
	OpCount        Operation = "Count"
	OpHistory      Operation = "History"
)

var adminOnly = map[Operation]bool{
	OpListByStatus: true,
	OpUpdateStatus: true,
	OpRevenue:      true,
	OpCount:        true,
	OpHistory:      true,
}

// Decision is the outcome of Authorize. A denied decision carries a typed
// error suitable for returning to the caller as is.
type Decision struct {
	Allowed bool
	Err     error
}

var (
	errUnauthenticated = apperr.ErrUnauthenticated
	errAdminOnly       = &apperr.ForbiddenError{Reason: "Admin role required"}
)

func allow() Decision         { return Decision{Allowed: true} }
func deny(err error) Decision { return Decision{Err: err} }

// Authorize decides whether who may perform op. target is the order being
// acted on when it is already known; ownership for reads and cancel is
// enforced by the owner-filtered lookup, so target may be nil.
func Authorize(who identity.Identity, op Operation, target *Order) Decision {
	if !who.Authenticated() {
		return deny(errUnauthenticated)
	}
	if adminOnly[op] {
		if who.IsAdmin() {
			return allow()
		}
		return deny(errAdminOnly)
	}
	switch op {
	case OpGetOrder:
		if target != nil && !visibleTo(who, target) {
			return deny(apperr.ErrOrderNotFound)
		}
		return allow()
	case OpCancelOrder:
		if target != nil && target.OwnerID != CancelScope(who) {
			return deny(apperr.ErrOrderNotFound)
		}
		return allow()
	case OpListOrders, OpListMyOrders, OpCreateOrder:
		return allow()
	default:
		return deny(errAdminOnly)
	}
}

// Visibility returns the owner filter for list and get operations. An empty
// owner means every order is visible.
func Visibility(who identity.Identity) string {
	if who.IsAdmin() {
		return ""
	}
	return who.SubjectID
}

func visibleTo(who identity.Identity, o *Order) bool {
	owner := Visibility(who)
	return owner == "" || o.OwnerID == owner
}

// CancelScope is the owner filter for cancel. Admins get no bypass: only the
// creator may cancel.
func CancelScope(who identity.Identity) string {
	return who.SubjectID
}
