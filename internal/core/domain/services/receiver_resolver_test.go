package services_test

import (
	"testing"

	"parcel/internal/core/domain/model/account"
	"parcel/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceiverResolver_Resolve(t *testing.T) {
	resolver := services.NewReceiverResolver()

	t.Run("registered account wins over caller-supplied contact", func(t *testing.T) {
		acct, err := account.NewAccount(5, "Registered Name", "+60 11 222 3344")
		require.NoError(t, err)

		resolved := resolver.Resolve(acct, "Fallback Name", "0123456495")

		assert.Equal(t, "Registered Name", resolved.Info.Name())
		assert.Equal(t, "+60112223344", resolved.Info.Phone().Normalized())
		require.NotNil(t, resolved.AccountID)
		assert.Equal(t, int64(5), *resolved.AccountID)
	})

	t.Run("guest receiver uses fallback contact verbatim", func(t *testing.T) {
		resolved := resolver.Resolve(nil, "Abun", "0123456495")

		assert.Equal(t, "Abun", resolved.Info.Name())
		assert.Equal(t, "0123456495", resolved.Info.Phone().Raw())
		assert.Nil(t, resolved.AccountID)
	})

	t.Run("guest phone is normalized", func(t *testing.T) {
		resolved := resolver.Resolve(nil, "Abun", "012-345 6495")

		assert.Equal(t, "0123456495", resolved.Info.Phone().Normalized())
	})

	t.Run("guest with empty contact is still not an error", func(t *testing.T) {
		resolved := resolver.Resolve(nil, "", "")

		assert.Empty(t, resolved.Info.Name())
		assert.True(t, resolved.Info.Phone().IsZero())
		assert.Nil(t, resolved.AccountID)
	})
}
