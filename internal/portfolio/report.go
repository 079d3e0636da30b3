package portfolio

import (
	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// BuildProfitLossReport aggregates sold share records in a single pass.
//
// TotalProfit sums only the positive lots and TotalLoss only the negative
// ones, with its sign preserved (a loss total is a negative number). Lots
// with exactly zero profit/loss land in neither bucket but still count
// toward TotalTrades. An empty input yields a zero-valued report.
func BuildProfitLossReport(shares []model.SoldShare) model.ProfitLossReport {
	var report model.ProfitLossReport

	for _, share := range shares {
		report.TotalProfitLoss += share.ProfitOrLoss
		report.TotalTrades++

		switch {
		case share.ProfitOrLoss > 0:
			report.TotalProfit += share.ProfitOrLoss
			report.TotalProfitableShares++
		case share.ProfitOrLoss < 0:
			report.TotalLoss += share.ProfitOrLoss
			report.TotalLossShares++
		}
	}

	return report
}
