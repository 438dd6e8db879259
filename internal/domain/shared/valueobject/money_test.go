package valueobject

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(decimal.NewFromFloat(10.50), USD)
	require.NoError(t, err)
	assert.Equal(t, USD, m.Currency())
	assert.True(t, m.Amount().Equal(decimal.NewFromFloat(10.50)))

	_, err = NewMoney(decimal.Zero, "")
	assert.Error(t, err)
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyUSDFromFloat(10.50)
	b := NewMoneyUSDFromFloat(2.25)

	sum, err := a.Add(b)
	require.NoError(t, err)
	assert.True(t, sum.Equals(NewMoneyUSDFromFloat(12.75)))

	diff, err := a.Sub(b)
	require.NoError(t, err)
	assert.True(t, diff.Equals(NewMoneyUSDFromFloat(8.25)))

	assert.True(t, b.MulInt(4).Equals(NewMoneyUSDFromFloat(9.00)))
	assert.True(t, b.Mul(decimal.NewFromInt(2)).Equals(NewMoneyUSDFromFloat(4.50)))
}

func TestMoney_CurrencyMismatch(t *testing.T) {
	usd := NewMoneyUSDFromFloat(10)
	kes, err := NewMoney(decimal.NewFromInt(10), KES)
	require.NoError(t, err)

	_, err = usd.Add(kes)
	assert.Error(t, err)
	_, err = usd.Sub(kes)
	assert.Error(t, err)
}

func TestMoney_Predicates(t *testing.T) {
	assert.True(t, ZeroUSD().IsZero())
	assert.True(t, NewMoneyUSDFromFloat(1).IsPositive())
	assert.True(t, NewMoneyUSDFromFloat(-1).IsNegative())
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "10.50 USD", NewMoneyUSDFromFloat(10.5).String())
	assert.Equal(t, "0.00 USD", ZeroUSD().String())
}

func TestMoney_JSON(t *testing.T) {
	m := NewMoneyUSDFromFloat(12.50)

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":"12.5","currency":"USD"}`, string(data))

	var back Money
	require.NoError(t, json.Unmarshal(data, &back))
	assert.True(t, m.Equals(back))

	var bad Money
	assert.Error(t, json.Unmarshal([]byte(`{"amount":"abc","currency":"USD"}`), &bad))
}

func TestNewMoneyUSDFromString(t *testing.T) {
	m, err := NewMoneyUSDFromString("3.75")
	require.NoError(t, err)
	assert.True(t, m.Equals(NewMoneyUSDFromFloat(3.75)))

	_, err = NewMoneyUSDFromString("not-a-number")
	assert.Error(t, err)
}
