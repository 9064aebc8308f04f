// Package distribute spreads the general award pool across vehicles in
// proportion to what each has already earned.
package distribute

import (
	"github.com/shopspring/decimal"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Allocation is the share one vehicle received.
type Allocation struct {
	Name  string
	Base  int64
	Share int64
}

// Result is the outcome of Pool.
type Result struct {
	Pool        int64
	Allocations []Allocation
	Remaining   int64 // pool left after the last vehicle; 0 unless the ledger is empty
}

// Pool distributes pool across l in ledger order using a running remainder:
// each vehicle gets round(P*v/R) of the remaining pool P, where R is the sum
// of values not yet visited, and the vehicle holding all of R takes what is
// left of P. Ties round half to even.
func Pool(l *model.Ledger, pool int64) Result {
	res := Result{Pool: pool}
	p := pool
	r := l.Total()
	for _, e := range l.Entries() {
		v := e.Value
		var share int64
		if r > v {
			share = proportion(p, v, r)
		} else {
			share = p
		}
		p -= share
		r -= v
		l.Add(e.Name, share)
		res.Allocations = append(res.Allocations, Allocation{Name: e.Name, Base: v, Share: share})
	}
	res.Remaining = p
	return res
}

// proportion returns round(p*v/r) with exact arithmetic, ties to even.
func proportion(p, v, r int64) int64 {
	num := decimal.NewFromInt(p).Mul(decimal.NewFromInt(v))
	q, rem := num.QuoRem(decimal.NewFromInt(r), 0)
	den := decimal.NewFromInt(r)
	switch rem.Abs().Mul(decimal.NewFromInt(2)).Cmp(den.Abs()) {
	case 1:
		q = q.Add(decimal.NewFromInt(int64(num.Sign() * den.Sign())))
	case 0:
		if q.IntPart()%2 != 0 {
			q = q.Add(decimal.NewFromInt(int64(num.Sign() * den.Sign())))
		}
	}
	return q.IntPart()
}
