package dto

import (
	"time"

	"github.com/eternal-wealth/toolkit/internal/application/usecase/expense"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
	"github.com/eternal-wealth/toolkit/internal/domain/entity"
)

// AddExpenseRequest represents the request body for adding an expense.
type AddExpenseRequest struct {
	Category    string `json:"category"`
	Description string `json:"description,omitempty"`
	Amount      string `json:"amount"`
}

// ExpenseResponse represents a single expense in API responses.
type ExpenseResponse struct {
	ID          string        `json:"id"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Amount      MoneyResponse `json:"amount"`
	CreatedAt   time.Time     `json:"created_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    MoneyResponse     `json:"total"`
}

// CategoryTotalResponse represents one category row of the breakdown.
type CategoryTotalResponse struct {
	Category   string        `json:"category"`
	Total      MoneyResponse `json:"total"`
	Count      int           `json:"count"`
	Percentage float64       `json:"percentage"`
}

// BreakdownResponse represents the expense breakdown by category.
type BreakdownResponse struct {
	TotalExpenses      MoneyResponse           `json:"total_expenses"`
	Categories         []CategoryTotalResponse `json:"categories"`
	MaxCategoryTotal   MoneyResponse           `json:"max_category_total"`
	MoneyLeaks         []CategoryTotalResponse `json:"money_leaks"`
	MaxMoneyLeakTotal  MoneyResponse           `json:"max_money_leak_total"`
	MoneyLeakThreshold MoneyResponse           `json:"money_leak_threshold"`
}

// ToExpenseResponse converts a domain ExpenseEntry to an ExpenseResponse DTO.
func ToExpenseResponse(e entity.ExpenseEntry, f *MoneyFormatter) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ID.String(),
		Category:    e.Category,
		Description: e.Description,
		Amount:      f.Money(e.Amount),
		CreatedAt:   e.CreatedAt,
	}
}

// ToExpenseListResponse converts a ListExpensesOutput to an ExpenseListResponse DTO.
func ToExpenseListResponse(output *expense.ListExpensesOutput, f *MoneyFormatter) ExpenseListResponse {
	entries := make([]ExpenseResponse, len(output.Entries))
	for i, e := range output.Entries {
		entries[i] = ToExpenseResponse(e, f)
	}
	return ExpenseListResponse{
		Expenses: entries,
		Total:    f.Money(output.Total),
	}
}

// ToBreakdownResponse converts a GetBreakdownOutput to a BreakdownResponse DTO.
func ToBreakdownResponse(output *expense.GetBreakdownOutput, f *MoneyFormatter) BreakdownResponse {
	return BreakdownResponse{
		TotalExpenses:      f.Money(output.TotalExpenses),
		Categories:         toCategoryTotalResponses(output.Categories, f),
		MaxCategoryTotal:   f.Money(output.MaxCategoryTotal),
		MoneyLeaks:         toCategoryTotalResponses(output.MoneyLeaks, f),
		MaxMoneyLeakTotal:  f.Money(output.MaxMoneyLeakTotal),
		MoneyLeakThreshold: f.Money(output.MoneyLeakThreshold),
	}
}

func toCategoryTotalResponses(totals []aggregate.CategoryTotal, f *MoneyFormatter) []CategoryTotalResponse {
	rows := make([]CategoryTotalResponse, len(totals))
	for i, t := range totals {
		rows[i] = CategoryTotalResponse{
			Category:   t.Category,
			Total:      f.Money(t.Total),
			Count:      t.Count,
			Percentage: t.Percentage,
		}
	}
	return rows
}
