package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoneyIsSerializedAsNumber(t *testing.T) {
	b, err := json.Marshal(Plan{Name: "Pro", Value: decimal.RequireFromString("149.90")})
	require.NoError(t, err)
	assert.Contains(t, string(b), `"valor":149.9`)

	var p Plan
	require.NoError(t, json.Unmarshal([]byte(`{"valor":"99.90"}`), &p))
	assert.True(t, p.Value.Equal(decimal.RequireFromString("99.9")))
}

func TestSanitizeDropsPassword(t *testing.T) {
	u := User{UID: "u1", Password: "hash"}
	u.Sanitize()

	b, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "senha")
}

func TestAllListsParentsFirst(t *testing.T) {
	all := All()
	require.Len(t, all, 14)
	assert.IsType(t, &User{}, all[0])
	assert.IsType(t, &PlanPayment{}, all[len(all)-1])
}
