package aggregate

import (
	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// Progress describes how far a value is towards a target.
type Progress struct {
	Current  decimal.Decimal
	Target   decimal.Decimal
	Percent  decimal.Decimal // clamped to [0, 100]
	Complete bool
}

// RoundedPercent returns the percent rounded to a whole number.
func (p Progress) RoundedPercent() int64 {
	return p.Percent.Round(0).IntPart()
}

// ProgressPercent returns current/target*100 clamped to [0, 100], or 0 when
// target is not positive.
func ProgressPercent(current, target decimal.Decimal) decimal.Decimal {
	if !target.IsPositive() {
		return decimal.Zero
	}

	pct := current.Mul(hundred).Div(target)
	if pct.GreaterThan(hundred) {
		return hundred
	}
	if pct.IsNegative() {
		return decimal.Zero
	}
	return pct
}

// IsComplete reports whether a percent has reached 100.
func IsComplete(percent decimal.Decimal) bool {
	return percent.GreaterThanOrEqual(hundred)
}

// NewProgress computes the progress of current towards target.
func NewProgress(current, target decimal.Decimal) Progress {
	pct := ProgressPercent(current, target)
	return Progress{
		Current:  current,
		Target:   target,
		Percent:  pct,
		Complete: IsComplete(pct),
	}
}

// ChallengeTotal sums the day values of every checked day, where index i is
// day i+1 and is worth i+1 currency units.
func ChallengeTotal(flags []bool) decimal.Decimal {
	var total int64
	for i, checked := range flags {
		if checked {
			total += int64(i + 1)
		}
	}
	return decimal.NewFromInt(total)
}

// ChecklistCompletion returns the progress of a checklist as checked items out of all items.
func ChecklistCompletion(list *entity.Checklist) Progress {
	return NewProgress(
		decimal.NewFromInt(int64(list.CheckedCount())),
		decimal.NewFromInt(int64(len(list.Items))),
	)
}

// NoiseLifeCounts returns how many entries are classified as noise and as life.
func NoiseLifeCounts(entries []entity.NoiseLifeEntry) (noise, life int) {
	for _, e := range entries {
		switch e.Type {
		case entity.NoiseLifeTypeNoise:
			noise++
		case entity.NoiseLifeTypeLife:
			life++
		}
	}
	return noise, life
}
