package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-ledger/internal/domain/entity"
)

func TestParseRole(t *testing.T) {
	for _, s := range []string{"admin", "manager", "user"} {
		role, err := entity.ParseRole(s)
		require.NoError(t, err)
		assert.Equal(t, s, role.String())
	}

	for _, s := range []string{"", "root", "Admin", "bodeguero"} {
		_, err := entity.ParseRole(s)
		assert.Error(t, err, "rol %q debe rechazarse", s)
	}
}

func TestValidTxnType(t *testing.T) {
	valid := []string{
		entity.TxnTypePurchase, entity.TxnTypeReturn, entity.TxnTypeCorrection,
		entity.TxnTypeTransfer, entity.TxnTypeWaste, entity.TxnTypeDamage, entity.TxnTypeLoss,
	}
	for _, typ := range valid {
		assert.True(t, entity.ValidTxnType(typ), typ)
	}
	assert.False(t, entity.ValidTxnType(""))
	assert.False(t, entity.ValidTxnType("sale"))
	assert.False(t, entity.ValidTxnType("PURCHASE"))
}
