package aggregate

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func expense(category, amount string) entity.ExpenseEntry {
	return *entity.NewExpenseEntry(category, "", d(amount))
}

func TestTotals(t *testing.T) {
	income := []entity.IncomeEntry{
		*entity.NewIncomeEntry("Salary", d("3000")),
		*entity.NewIncomeEntry("Side gig", d("450.25")),
	}
	expenses := []entity.ExpenseEntry{
		expense("Rent", "1500"),
		expense("Food", "320.10"),
	}

	if got := TotalIncome(income); !got.Equal(d("3450.25")) {
		t.Errorf("TotalIncome() = %s, want 3450.25", got)
	}
	if got := TotalExpenses(expenses); !got.Equal(d("1820.10")) {
		t.Errorf("TotalExpenses() = %s, want 1820.10", got)
	}
	if got := NetSavings(income, expenses); !got.Equal(d("1630.15")) {
		t.Errorf("NetSavings() = %s, want 1630.15", got)
	}
	if got := NetSavings(nil, expenses); !got.Equal(d("-1820.10")) {
		t.Errorf("NetSavings() with no income = %s, want -1820.10", got)
	}
	if got := TotalIncome(nil); !got.IsZero() {
		t.Errorf("TotalIncome(nil) = %s, want 0", got)
	}
}

func TestCategoryTotals(t *testing.T) {
	tests := []struct {
		name     string
		expenses []entity.ExpenseEntry
		want     []string
		totals   []string
	}{
		{
			name:     "empty",
			expenses: nil,
			want:     []string{},
			totals:   []string{},
		},
		{
			name:     "descending by total",
			expenses: []entity.ExpenseEntry{expense("Gas", "20"), expense("Rent", "900"), expense("Food", "100")},
			want:     []string{"Rent", "Food", "Gas"},
			totals:   []string{"900", "100", "20"},
		},
		{
			name:     "ties keep first occurrence order",
			expenses: []entity.ExpenseEntry{expense("Food", "50"), expense("Food", "30"), expense("Gas", "80")},
			want:     []string{"Food", "Gas"},
			totals:   []string{"80", "80"},
		},
		{
			name:     "tie with later category listed first by insertion",
			expenses: []entity.ExpenseEntry{expense("Gas", "80"), expense("Food", "50"), expense("Food", "30")},
			want:     []string{"Gas", "Food"},
			totals:   []string{"80", "80"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CategoryTotals(tt.expenses)
			if len(got) != len(tt.want) {
				t.Fatalf("len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i].Category != tt.want[i] {
					t.Errorf("[%d].Category = %q, want %q", i, got[i].Category, tt.want[i])
				}
				if !got[i].Total.Equal(d(tt.totals[i])) {
					t.Errorf("[%d].Total = %s, want %s", i, got[i].Total, tt.totals[i])
				}
			}
		})
	}
}

func TestCategoryTotals_Percentage(t *testing.T) {
	got := CategoryTotals([]entity.ExpenseEntry{expense("A", "1"), expense("B", "2")})

	if got[0].Percentage != 66.67 {
		t.Errorf("B percentage = %v, want 66.67", got[0].Percentage)
	}
	if got[1].Percentage != 33.33 {
		t.Errorf("A percentage = %v, want 33.33", got[1].Percentage)
	}
	if got[0].Count != 1 {
		t.Errorf("B count = %d, want 1", got[0].Count)
	}
}

func TestMoneyLeakTotals(t *testing.T) {
	expenses := []entity.ExpenseEntry{
		expense("A", "199"),
		expense("B", "200"),
		expense("A", "0.50"),
	}

	got := MoneyLeakTotals(expenses, d("200"))
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1: %+v", len(got), got)
	}
	if got[0].Category != "A" || !got[0].Total.Equal(d("199.50")) {
		t.Errorf("got %s=%s, want A=199.50", got[0].Category, got[0].Total)
	}
}

func TestMaxTotal(t *testing.T) {
	if got := MaxTotal(nil); !got.IsZero() {
		t.Errorf("MaxTotal(nil) = %s, want 0", got)
	}

	totals := CategoryTotals([]entity.ExpenseEntry{expense("A", "10"), expense("B", "75"), expense("C", "5")})
	if got := MaxTotal(totals); !got.Equal(d("75")) {
		t.Errorf("MaxTotal() = %s, want 75", got)
	}
}
