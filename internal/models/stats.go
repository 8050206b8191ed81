package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Period is a statistics window ending at the current time.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
	PeriodYear  Period = "year"
)

// Labels used when a transaction carries no category or investment type.
const (
	LabelUncategorized = "Uncategorized"
	LabelOther         = "Other"
)

// Valid reports whether p is a known period.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	}
	return false
}

// Start returns the calendar-aware start of the period ending at now.
func (p Period) Start(now time.Time) time.Time {
	switch p {
	case PeriodDay:
		return now.AddDate(0, 0, -1)
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodYear:
		return now.AddDate(-1, 0, 0)
	default:
		return now.AddDate(0, -1, 0)
	}
}

// StatsOverview holds the period totals.
type StatsOverview struct {
	TotalIncome     decimal.Decimal `json:"total_income"`
	TotalExpenses   decimal.Decimal `json:"total_expenses"`
	TotalInvestment decimal.Decimal `json:"total_investment"`
	Balance         decimal.Decimal `json:"balance"`
	Period          Period          `json:"period"`
}

// CategoryBreakdown is one labeled share of a total.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// DailyPoint is one day of the chart series. Date is formatted YYYY-MM-DD.
type DailyPoint struct {
	Date       string          `json:"date"`
	Income     decimal.Decimal `json:"income"`
	Expense    decimal.Decimal `json:"expense"`
	Investment decimal.Decimal `json:"investment"`
}

// TransactionStats is the aggregated view over one period.
type TransactionStats struct {
	Overview           StatsOverview       `json:"overview"`
	ExpensesByCategory []CategoryBreakdown `json:"expenses_by_category"`
	IncomeByCategory   []CategoryBreakdown `json:"income_by_category"`
	InvestmentsByType  []CategoryBreakdown `json:"investments_by_type"`
	ChartData          []DailyPoint        `json:"chart_data"`
}
