package distribute

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/crimson-sun/lionshare/internal/model"
)

func ledger(entries ...model.Entry) *model.Ledger {
	l := model.NewLedger()
	for _, e := range entries {
		l.Add(e.Name, e.Value)
	}
	return l
}

func TestPool_TwoVehicles(t *testing.T) {
	l := ledger(
		model.Entry{Name: "Tiger II (H)", Value: 2063},
		model.Entry{Name: "Ka-50", Value: 732},
	)
	res := Pool(l, 950)

	want := []Allocation{
		{Name: "Tiger II (H)", Base: 2063, Share: 701},
		{Name: "Ka-50", Base: 732, Share: 249},
	}
	if diff := cmp.Diff(want, res.Allocations); diff != "" {
		t.Fatalf("allocations mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, int64(0), res.Remaining)
	assert.Equal(t, int64(3745), l.Total())
}

func TestPool_ExhaustsPool(t *testing.T) {
	pools := []int64{0, 1, 7, 999, 1000, 123457}
	for _, p := range pools {
		l := ledger(
			model.Entry{Name: "A", Value: 333},
			model.Entry{Name: "B", Value: 333},
			model.Entry{Name: "C", Value: 334},
		)
		before := l.Total()
		res := Pool(l, p)
		assert.Equal(t, int64(0), res.Remaining, "pool %d", p)
		assert.Equal(t, before+p, l.Total(), "pool %d", p)
	}
}

func TestPool_LastVehicleAbsorbsRemainder(t *testing.T) {
	l := ledger(
		model.Entry{Name: "A", Value: 1},
		model.Entry{Name: "B", Value: 1},
		model.Entry{Name: "C", Value: 1},
	)
	res := Pool(l, 2)
	// A: round(2*1/3)=1, B: round(1*1/2)=0 (tie to even), C takes the rest.
	got := []int64{res.Allocations[0].Share, res.Allocations[1].Share, res.Allocations[2].Share}
	assert.Equal(t, []int64{1, 0, 1}, got)
}

func TestPool_AllZeroFirstTakesEverything(t *testing.T) {
	l := ledger(
		model.Entry{Name: "A", Value: 0},
		model.Entry{Name: "B", Value: 0},
	)
	res := Pool(l, 40)
	assert.Equal(t, int64(40), res.Allocations[0].Share)
	assert.Equal(t, int64(0), res.Allocations[1].Share)
	assert.Equal(t, int64(0), res.Remaining)
}

func TestPool_ZeroPoolIsNoop(t *testing.T) {
	l := ledger(model.Entry{Name: "Leopard 2A4", Value: 840}, model.Entry{Name: "Gepard", Value: 0})
	res := Pool(l, 0)
	assert.Equal(t, []model.Entry{{Name: "Leopard 2A4", Value: 840}, {Name: "Gepard", Value: 0}}, l.Entries())
	assert.Equal(t, int64(0), res.Remaining)
}

func TestPool_EmptyLedgerKeepsPool(t *testing.T) {
	res := Pool(model.NewLedger(), 25)
	assert.Equal(t, int64(25), res.Remaining)
	assert.Empty(t, res.Allocations)
}

func TestProportion(t *testing.T) {
	tests := []struct {
		p, v, r int64
		want    int64
	}{
		{950, 2063, 2795, 701},
		{500, 880, 1614, 273},
		{1, 1, 2, 0}, // 0.5 -> 0
		{3, 1, 2, 2}, // 1.5 -> 2
		{5, 1, 2, 2}, // 2.5 -> 2
		{10, 1, 3, 3},
		{10, 2, 3, 7},
	}
	for _, tt := range tests {
		if got := proportion(tt.p, tt.v, tt.r); got != tt.want {
			t.Errorf("proportion(%d, %d, %d) = %d, want %d", tt.p, tt.v, tt.r, got, tt.want)
		}
	}
}
