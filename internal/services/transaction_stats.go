package services

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/plutoledger/pluto/internal/models"
)

const dayKeyFormat = "2006-01-02"

// Stats aggregates the user's transactions over the given period into totals,
// category breakdowns and a daily chart series. It is read-only; records it
// cannot place in the series are logged and skipped rather than failing the
// whole aggregation.
func (s *transactionService) Stats(ctx context.Context, userID string, period models.Period) (*models.TransactionStats, error) {
	if !period.Valid() {
		period = models.PeriodMonth
	}

	endDate := time.Now()
	startDate := period.Start(endDate)

	transactions, err := s.transactions.ListByDateRange(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	categoryNames, err := s.categoryNames(ctx, userID)
	if err != nil {
		return nil, err
	}
	investmentTypes, err := s.investmentTypes(ctx, userID)
	if err != nil {
		return nil, err
	}

	var totalIncome, totalExpenses, totalInvestment decimal.Decimal
	incomeByCategory := map[string]decimal.Decimal{}
	expensesByCategory := map[string]decimal.Decimal{}
	investmentsByType := map[string]decimal.Decimal{}

	for _, tx := range transactions {
		switch tx.Type {
		case models.TypeIncome:
			totalIncome = totalIncome.Add(tx.Amount)
			label := categoryLabel(tx, categoryNames)
			incomeByCategory[label] = incomeByCategory[label].Add(tx.Amount)
		case models.TypeExpense:
			totalExpenses = totalExpenses.Add(tx.Amount)
			label := categoryLabel(tx, categoryNames)
			expensesByCategory[label] = expensesByCategory[label].Add(tx.Amount)
		case models.TypeInvestment:
			totalInvestment = totalInvestment.Add(tx.Amount)
			label := investmentLabel(tx, investmentTypes, categoryNames)
			investmentsByType[label] = investmentsByType[label].Add(tx.Amount)
		}
	}

	balance := totalIncome.Sub(totalExpenses).Sub(totalInvestment)

	// Pre-populate every calendar day in the window so the chart has zeroed
	// entries for days without transactions.
	buckets := map[string]*models.DailyPoint{}
	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		key := day.Format(dayKeyFormat)
		buckets[key] = &models.DailyPoint{Date: key}
	}

	for _, tx := range transactions {
		if tx.Date.IsZero() {
			s.logger.Warn("skipping transaction without a valid date in statistics",
				zap.String("transaction_id", tx.ID))
			continue
		}
		point, ok := buckets[tx.Date.Format(dayKeyFormat)]
		if !ok {
			continue
		}
		switch tx.Type {
		case models.TypeIncome:
			point.Income = point.Income.Add(tx.Amount)
		case models.TypeExpense:
			point.Expense = point.Expense.Add(tx.Amount)
		case models.TypeInvestment:
			point.Investment = point.Investment.Add(tx.Amount)
		}
	}

	chartData := make([]models.DailyPoint, 0, len(buckets))
	for _, point := range buckets {
		chartData = append(chartData, *point)
	}
	sort.Slice(chartData, func(i, j int) bool {
		return chartData[i].Date < chartData[j].Date
	})

	return &models.TransactionStats{
		Overview: models.StatsOverview{
			TotalIncome:     totalIncome,
			TotalExpenses:   totalExpenses,
			TotalInvestment: totalInvestment,
			Balance:         balance,
			Period:          period,
		},
		ExpensesByCategory: rankBreakdown(expensesByCategory, totalExpenses, 5),
		IncomeByCategory:   rankBreakdown(incomeByCategory, totalIncome, 5),
		InvestmentsByType:  rankBreakdown(investmentsByType, totalInvestment, 0),
		ChartData:          chartData,
	}, nil
}

func (s *transactionService) categoryNames(ctx context.Context, userID string) (map[string]string, error) {
	categories, err := s.categories.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(categories))
	for _, category := range categories {
		names[category.ID] = category.Name
	}
	return names, nil
}

func (s *transactionService) investmentTypes(ctx context.Context, userID string) (map[string]string, error) {
	investments, err := s.investments.List(ctx, userID)
	if err != nil {
		return nil, err
	}
	types := make(map[string]string, len(investments))
	for _, investment := range investments {
		types[investment.ID] = investment.Type
	}
	return types, nil
}

func categoryLabel(tx *models.Transaction, categoryNames map[string]string) string {
	if tx.CategoryID != nil {
		if name, ok := categoryNames[*tx.CategoryID]; ok && name != "" {
			return name
		}
	}
	return models.LabelUncategorized
}

func investmentLabel(tx *models.Transaction, investmentTypes, categoryNames map[string]string) string {
	if tx.InvestmentID != nil {
		if label, ok := investmentTypes[*tx.InvestmentID]; ok && label != "" {
			return label
		}
	}
	if tx.CategoryID != nil {
		if name, ok := categoryNames[*tx.CategoryID]; ok && name != "" {
			return name
		}
	}
	return models.LabelOther
}

// rankBreakdown turns a label-to-amount map into a descending list with each
// share of total. limit <= 0 keeps every entry.
func rankBreakdown(sums map[string]decimal.Decimal, total decimal.Decimal, limit int) []models.CategoryBreakdown {
	breakdown := make([]models.CategoryBreakdown, 0, len(sums))
	for label, amount := range sums {
		percentage := decimal.Zero
		if total.IsPositive() {
			percentage = amount.Div(total).Mul(decimal.NewFromInt(100))
		}
		breakdown = append(breakdown, models.CategoryBreakdown{
			Category:   label,
			Amount:     amount,
			Percentage: percentage,
		})
	}

	sort.Slice(breakdown, func(i, j int) bool {
		if breakdown[i].Amount.Equal(breakdown[j].Amount) {
			return breakdown[i].Category < breakdown[j].Category
		}
		return breakdown[i].Amount.GreaterThan(breakdown[j].Amount)
	})

	if limit > 0 && len(breakdown) > limit {
		breakdown = breakdown[:limit]
	}

	return breakdown
}
