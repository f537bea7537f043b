package dto

import (
	"github.com/eternal-wealth/toolkit/internal/application/usecase/savings"
	"github.com/eternal-wealth/toolkit/internal/domain/aggregate"
)

// SetAmountRequest represents the request body for setting the fund or the goal.
type SetAmountRequest struct {
	Amount *string `json:"amount"`
}

// ProgressResponse represents progress towards a target.
type ProgressResponse struct {
	Current        MoneyResponse `json:"current"`
	Target         MoneyResponse `json:"target"`
	Percent        string        `json:"percent"`
	RoundedPercent int64         `json:"rounded_percent"`
	Complete       bool          `json:"complete"`
}

// SavingsResponse represents the emergency fund state.
type SavingsResponse struct {
	EmergencyFund     MoneyResponse    `json:"emergency_fund"`
	EmergencyFundGoal MoneyResponse    `json:"emergency_fund_goal"`
	Progress          ProgressResponse `json:"progress"`
}

// ToProgressResponse converts an aggregate Progress to a ProgressResponse DTO.
func ToProgressResponse(p aggregate.Progress, f *MoneyFormatter) ProgressResponse {
	return ProgressResponse{
		Current:        f.Money(p.Current),
		Target:         f.Money(p.Target),
		Percent:        p.Percent.StringFixed(2),
		RoundedPercent: p.RoundedPercent(),
		Complete:       p.Complete,
	}
}

// ToSavingsResponse converts a SavingsOutput to a SavingsResponse DTO.
func ToSavingsResponse(output *savings.SavingsOutput, f *MoneyFormatter) SavingsResponse {
	return SavingsResponse{
		EmergencyFund:     f.Money(output.State.EmergencyFund),
		EmergencyFundGoal: f.Money(output.State.EmergencyFundGoal),
		Progress:          ToProgressResponse(output.Progress, f),
	}
}
