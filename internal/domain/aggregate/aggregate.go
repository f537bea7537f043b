// Package aggregate computes derived figures from a session's collections.
// Every function is pure; results are recomputed on each read and never stored.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is the summed amount of all expenses sharing a category.
type CategoryTotal struct {
	Category   string
	Total      decimal.Decimal
	Count      int
	Percentage float64 // share of the grouped total, rounded to 2 places
}

// TotalIncome sums income amounts in insertion order.
func TotalIncome(entries []entity.IncomeEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalExpenses sums expense amounts in insertion order.
func TotalExpenses(entries []entity.ExpenseEntry) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	return total
}

// NetSavings returns total income minus total expenses. It may be negative.
func NetSavings(income []entity.IncomeEntry, expenses []entity.ExpenseEntry) decimal.Decimal {
	return TotalIncome(income).Sub(TotalExpenses(expenses))
}

// CategoryTotals groups expenses by category and orders the groups by
// descending total. Groups with equal totals keep the order in which their
// category first appeared.
func CategoryTotals(entries []entity.ExpenseEntry) []CategoryTotal {
	index := make(map[string]int)
	totals := make([]CategoryTotal, 0)
	grand := decimal.Zero

	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(totals)
			index[e.Category] = i
			totals = append(totals, CategoryTotal{Category: e.Category, Total: decimal.Zero})
		}
		totals[i].Total = totals[i].Total.Add(e.Amount)
		totals[i].Count++
		grand = grand.Add(e.Amount)
	}

	sort.SliceStable(totals, func(a, b int) bool {
		return totals[a].Total.GreaterThan(totals[b].Total)
	})

	if !grand.IsZero() {
		for i := range totals {
			pct := totals[i].Total.Mul(hundred).Div(grand)
			totals[i].Percentage, _ = pct.Round(2).Float64()
		}
	}

	return totals
}

// MoneyLeakTotals is CategoryTotals restricted to expenses strictly below threshold.
func MoneyLeakTotals(entries []entity.ExpenseEntry, threshold decimal.Decimal) []CategoryTotal {
	small := make([]entity.ExpenseEntry, 0, len(entries))
	for _, e := range entries {
		if e.Amount.LessThan(threshold) {
			small = append(small, e)
		}
	}
	return CategoryTotals(small)
}

// MaxTotal returns the largest group total, or zero for no groups.
func MaxTotal(totals []CategoryTotal) decimal.Decimal {
	highest := decimal.Zero
	for _, t := range totals {
		if t.Total.GreaterThan(highest) {
			highest = t.Total
		}
	}
	return highest
}
