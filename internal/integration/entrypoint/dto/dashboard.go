// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/eternal-wealth/toolkit/internal/application/usecase/dashboard"
)

// DashboardResponse represents the headline figures of a session.
type DashboardResponse struct {
	TotalIncome       MoneyResponse    `json:"total_income"`
	TotalExpenses     MoneyResponse    `json:"total_expenses"`
	NetSavings        MoneyResponse    `json:"net_savings"`
	EmergencyFund     ProgressResponse `json:"emergency_fund"`
	Milestone         ProgressResponse `json:"milestone"`
	ActiveAutomations int              `json:"active_automations"`
	CompletedSteps    int              `json:"completed_steps"`
	TotalSteps        int              `json:"total_steps"`
	ChallengeTotal    MoneyResponse    `json:"challenge_total"`
}

// ToDashboardResponse converts a dashboard Summary to a DashboardResponse DTO.
func ToDashboardResponse(s *dashboard.Summary, f *MoneyFormatter) DashboardResponse {
	return DashboardResponse{
		TotalIncome:       f.Money(s.TotalIncome),
		TotalExpenses:     f.Money(s.TotalExpenses),
		NetSavings:        f.Money(s.NetSavings),
		EmergencyFund:     ToProgressResponse(s.EmergencyFund, f),
		Milestone:         ToProgressResponse(s.Milestone, f),
		ActiveAutomations: s.ActiveAutomations,
		CompletedSteps:    s.CompletedSteps,
		TotalSteps:        s.TotalSteps,
		ChallengeTotal:    f.Money(s.ChallengeTotal),
	}
}
