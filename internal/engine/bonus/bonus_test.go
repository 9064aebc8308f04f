package bonus

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/lionshare/internal/model"
)

func ledger(entries ...model.Entry) *model.Ledger {
	l := model.NewLedger()
	for _, e := range entries {
		l.Add(e.Name, e.Value)
	}
	return l
}

func TestPolicyTable(t *testing.T) {
	assert.Equal(t, Truncate, Policy(true, 2))
	assert.Equal(t, Truncate, Policy(true, 5))
	assert.Equal(t, Ceiling, Policy(true, 1))
	assert.Equal(t, HalfAwayFromZero, Policy(false, 1))
	assert.Equal(t, HalfAwayFromZero, Policy(false, 3))
	assert.Equal(t, HalfAwayFromZero, Policy(true, 0))
}

func TestMultiplierIsExact(t *testing.T) {
	assert.True(t, Multiplier(true).Equal(decimal.RequireFromString("0.467")))
	assert.True(t, Multiplier(false).Equal(decimal.RequireFromString("0.2")))
	// 0.467 has no exact binary representation; the product must still be exact.
	assert.Equal(t, "700.5", decimal.NewFromInt(1500).Mul(Multiplier(true)).String())
}

func TestRound(t *testing.T) {
	d := decimal.RequireFromString("70.05")
	assert.Equal(t, int64(70), Round(d, HalfAwayFromZero))
	assert.Equal(t, int64(70), Round(d, Truncate))
	assert.Equal(t, int64(71), Round(d, Ceiling))

	half := decimal.RequireFromString("700.5")
	assert.Equal(t, int64(701), Round(half, HalfAwayFromZero), "ties go away from zero, not to even")
	assert.Equal(t, int64(700), Round(half, Truncate))

	whole := decimal.NewFromInt(90)
	assert.Equal(t, int64(90), Round(whole, Ceiling))
}

func TestApply_NoBooster(t *testing.T) {
	l := ledger(model.Entry{Name: "Tiger II", Value: 150})
	res := Apply(l, true, false)

	assert.Equal(t, int64(70), res.Total)
	assert.Equal(t, HalfAwayFromZero, res.Rounding)
	v, _ := l.Get("Tiger II")
	assert.Equal(t, int64(220), v)
}

func TestApply_BoosterSingleVehicleCeils(t *testing.T) {
	l := ledger(model.Entry{Name: "Tiger II", Value: 150})
	res := Apply(l, true, true)

	assert.Equal(t, Ceiling, res.Rounding)
	assert.Equal(t, int64(71), res.Total)
}

func TestApply_BoosterManyVehiclesTruncates(t *testing.T) {
	l := ledger(
		model.Entry{Name: "Tiger II (H)", Value: 1636},
		model.Entry{Name: "Ka-50", Value: 444},
	)
	res := Apply(l, false, true)

	require.Len(t, res.Shares, 2)
	assert.Equal(t, Share{Name: "Tiger II (H)", Base: 1636, Bonus: 327}, res.Shares[0])
	assert.Equal(t, Share{Name: "Ka-50", Base: 444, Bonus: 88}, res.Shares[1])
	assert.Equal(t, int64(415), res.Total)
	assert.Equal(t, int64(2495), l.Total())
}

func TestApply_ZeroEntries(t *testing.T) {
	l := ledger(model.Entry{Name: "Gepard", Value: 0})
	res := Apply(l, false, false)
	assert.Equal(t, int64(0), res.Total)
	v, ok := l.Get("Gepard")
	assert.True(t, ok)
	assert.Equal(t, int64(0), v)
}

func TestApply_EmptyLedger(t *testing.T) {
	res := Apply(model.NewLedger(), true, true)
	assert.Equal(t, int64(0), res.Total)
	assert.Empty(t, res.Shares)
}

func TestSignificant(t *testing.T) {
	d := decimal.RequireFromString("1234567.89012345678")
	assert.Equal(t, "1234567.89012346", significant(d, 15).String())

	short := decimal.RequireFromString("70.05")
	assert.True(t, significant(short, 15).Equal(short))
}
