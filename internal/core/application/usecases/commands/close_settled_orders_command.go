package commands

import (
	"errors"
	"time"

	"parcel/internal/pkg/errs"
	"parcel/internal/pkg/guard"
)

var (
	ErrCloseSettledOrdersCommandIsNotConstructed = errors.New(
		"CloseSettledOrdersCommand must be created via NewCloseSettledOrdersCommand constructor",
	)
)

// CloseSettledOrdersCommand requests closing of settled orders (Delivered,
// Exception, Canceled) whose last modification is older than the retention
// window. Issued by the background closing job; neither actor role can reach
// Closed through the transition tables.
type CloseSettledOrdersCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewCloseSettledOrdersCommand creates a closing command.
// The retention window must not be negative; zero closes all settled orders.
func NewCloseSettledOrdersCommand(retention time.Duration) (CloseSettledOrdersCommand, error) {
	if retention < 0 {
		return CloseSettledOrdersCommand{}, errs.NewValueIsInvalidError("retention")
	}

	return CloseSettledOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CloseSettledOrdersCommand) Validate() error {
	return c.guard.Validate(ErrCloseSettledOrdersCommandIsNotConstructed)
}

// Retention returns how long settled orders are kept before closing.
func (c CloseSettledOrdersCommand) Retention() time.Duration {
	return c.retention
}
