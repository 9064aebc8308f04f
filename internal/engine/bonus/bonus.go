// Package bonus computes the outcome-dependent flat-rate bonus per vehicle.
package bonus

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/crimson-sun/lionshare/internal/model"
)

// Precision is the number of significant digits a product is held to before
// rounding to a whole SL amount.
const Precision = 15

var (
	victoryRate = decimal.RequireFromString("0.467")
	defeatRate  = decimal.RequireFromString("0.2")
)

// Rounding selects how a fractional bonus becomes whole SL.
type Rounding int

const (
	HalfAwayFromZero Rounding = iota // no booster
	Truncate                         // booster, several vehicles
	Ceiling                          // booster, one vehicle
)

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case Ceiling:
		return "ceiling"
	default:
		return "half-away-from-zero"
	}
}

// Multiplier returns the bonus rate for the match outcome.
func Multiplier(victory bool) decimal.Decimal {
	if victory {
		return victoryRate
	}
	return defeatRate
}

// Policy returns the rounding mode for the booster state and vehicle count.
func Policy(booster bool, vehicles int) Rounding {
	switch {
	case booster && vehicles > 1:
		return Truncate
	case booster && vehicles == 1:
		return Ceiling
	default:
		return HalfAwayFromZero
	}
}

// Round converts d to an integer under mode.
func Round(d decimal.Decimal, mode Rounding) int64 {
	switch mode {
	case Truncate:
		return d.Truncate(0).IntPart()
	case Ceiling:
		return d.Ceil().IntPart()
	default:
		return d.Round(0).IntPart()
	}
}

// Share is one vehicle's computed bonus.
type Share struct {
	Name  string
	Base  int64
	Bonus int64
}

// Result is the outcome of Apply.
type Result struct {
	Multiplier decimal.Decimal
	Rounding   Rounding
	Shares     []Share
	Total      int64
}

func (r Result) String() string {
	return fmt.Sprintf("bonus x%s (%s) over %d vehicles = %d", r.Multiplier, r.Rounding, len(r.Shares), r.Total)
}

// Apply adds each vehicle's bonus to l, in ledger order, and returns the
// per-vehicle shares and their sum.
func Apply(l *model.Ledger, victory, booster bool) Result {
	res := Result{
		Multiplier: Multiplier(victory),
		Rounding:   Policy(booster, l.Len()),
	}
	for _, e := range l.Entries() {
		product := significant(decimal.NewFromInt(e.Value).Mul(res.Multiplier), Precision)
		b := Round(product, res.Rounding)
		l.Add(e.Name, b)
		res.Shares = append(res.Shares, Share{Name: e.Name, Base: e.Value, Bonus: b})
		res.Total += b
	}
	return res
}

// significant rounds d half-to-even to at most digits significant digits.
func significant(d decimal.Decimal, digits int) decimal.Decimal {
	n := len(new(big.Int).Abs(d.Coefficient()).String())
	if n <= digits {
		return d
	}
	places := -(int(d.Exponent()) + n - digits)
	return d.RoundBank(int32(places))
}
