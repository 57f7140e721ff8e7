package ports

import (
	"context"

	"parcel/internal/core/domain/model/account"
)

// AccountDirectory resolves registered user accounts by id.
// It is a read-only lookup into the externally owned user directory;
// the order core never mutates accounts.
type AccountDirectory interface {
	// Get returns the account with the given id, or an error unwrapping to
	// errs.ErrObjectNotFound when the id does not resolve.
	Get(ctx context.Context, id int64) (*account.Account, error)
}

// AgentDirectory resolves delivery agents by id.
// Like AccountDirectory, it is a read-only external lookup.
type AgentDirectory interface {
	// Get returns the agent with the given id, or an error unwrapping to
	// errs.ErrObjectNotFound when the id does not resolve.
	Get(ctx context.Context, id int64) (*account.DeliveryAgent, error)
}
