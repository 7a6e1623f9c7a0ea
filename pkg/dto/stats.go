package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DonationStats summarises completed donations.
type DonationStats struct {
	TotalDonations  int64           `json:"total_donations"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	UniqueDonors    int64           `json:"unique_donors"`
	CausesSupported int64           `json:"causes_supported"`
}

// WithdrawalStats summarises withdrawal requests.
type WithdrawalStats struct {
	TotalRequests int64           `json:"total_requests"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Completed     int64           `json:"completed"`
	Failed        int64           `json:"failed"`
	Processing    int64           `json:"processing"`
	AverageAmount decimal.Decimal `json:"average_amount"`
	SuccessRate   float64         `json:"success_rate"`
}

// PlatformMetrics are the public headline numbers.
type PlatformMetrics struct {
	TotalDonations int64           `json:"total_donations"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	LiveCauses     int64           `json:"live_causes"`
	Categories     int64           `json:"categories"`
	TotalUsers     int64           `json:"total_users"`
}

// Dashboard is the admin overview.
type Dashboard struct {
	TotalUsers         int64           `json:"total_users"`
	TotalCauses        int64           `json:"total_causes"`
	TotalDonations     int64           `json:"total_donations"`
	TotalAmount        decimal.Decimal `json:"total_amount"`
	PendingCauses      int64           `json:"pending_causes"`
	PendingWithdrawals int64           `json:"pending_withdrawals"`
}

// MonthlyTotal is one bar of the donation chart.
type MonthlyTotal struct {
	Month  time.Time       `json:"month"`
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// CauseProgress is one row of the top causes table.
type CauseProgress struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	ProgressPercentage decimal.Decimal `json:"progress_percentage"`
}

// DailyCount is one point of the user activity series.
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int64     `json:"count"`
}
