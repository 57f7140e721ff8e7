// Package accountrepo provides read access to the registered participants of
// the delivery process: sender/receiver accounts and delivery agents. Orders
// reference both by id, so the lifecycle paths only ever need lookups here.
package accountrepo

import (
	"parcel/internal/core/domain/model/account"
)

// AccountDTO represents the database structure for registered user accounts.
type AccountDTO struct {
	ID    int64 `gorm:"primaryKey;autoIncrement"`
	Name  string
	Phone string
}

// TableName overrides GORM's default naming convention to use "accounts".
func (AccountDTO) TableName() string {
	return "accounts"
}

// AgentDTO represents the database structure for delivery agents.
type AgentDTO struct {
	ID   int64 `gorm:"primaryKey;autoIncrement"`
	Name string
}

// TableName overrides GORM's default naming convention to use "delivery_agents".
func (AgentDTO) TableName() string {
	return "delivery_agents"
}

func accountToDomain(dto AccountDTO) (*account.Account, error) {
	return account.NewAccount(dto.ID, dto.Name, dto.Phone)
}

func agentToDomain(dto AgentDTO) (*account.DeliveryAgent, error) {
	return account.NewDeliveryAgent(dto.ID, dto.Name)
}
