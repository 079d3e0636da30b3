// Package portfolio implements the pure position and profit/loss
// calculations. Functions here perform no I/O and hold no state: they take
// snapshots of transactions or sold shares and return derived values, so
// they can be re-run on every read without invalidation concerns.
package portfolio

import (
	"github.com/rmehta/stock-analysis-backend/internal/model"
)

// Aggregate folds the full transaction set into one Position per stock.
//
// Buys add to the buy-side totals, the net quantity and the invested
// capital. Sells add to the sell-side totals, reduce the net quantity, and
// reduce invested capital at the buy-side average price accumulated so far
// (not at the sale price): selling returns capital at cost basis, so that
// TotalInvestment stays meaningful for unrealized P&L display. A sell
// processed before any buy reduces investment by nothing (average is 0).
//
// The four running totals are plain sums, so they are independent of input
// order. TotalInvestment and RealizedPL depend on the running average at
// each sell, which makes them sensitive to the relative order of buys and
// sells for the same stock; callers should feed transactions in date order.
//
// Oversells are not rejected here. Selling more than is held produces a
// negative TotalQuantity, which the presentation layer flags; rejecting the
// mutation up front is the job of the validation layer.
func Aggregate(transactions []model.Transaction) map[string]*model.Position {
	positions := make(map[string]*model.Position)

	for _, tx := range transactions {
		pos, ok := positions[tx.StockID]
		if !ok {
			pos = &model.Position{StockID: tx.StockID}
			positions[tx.StockID] = pos
		}

		pos.Transactions = append(pos.Transactions, tx)

		value := tx.Quantity * tx.Price
		switch tx.Type {
		case model.TransactionBuy:
			pos.TotalBuyQuantity += tx.Quantity
			pos.TotalBuyValue += value
			pos.TotalQuantity += tx.Quantity
			pos.TotalInvestment += value
		case model.TransactionSell:
			pos.TotalSellQuantity += tx.Quantity
			pos.TotalSellValue += value
			pos.TotalQuantity -= tx.Quantity

			// Reduce invested capital at the running cost basis.
			avgPrice := 0.0
			if pos.TotalBuyQuantity > 0 {
				avgPrice = pos.TotalBuyValue / pos.TotalBuyQuantity
			}
			pos.TotalInvestment -= tx.Quantity * avgPrice
		}
	}

	for _, pos := range positions {
		finalize(pos)
	}

	return positions
}

// finalize computes the derived cost basis and realized P&L once the
// running totals are complete.
func finalize(pos *model.Position) {
	if pos.TotalBuyQuantity > 0 {
		pos.AveragePrice = pos.TotalBuyValue / pos.TotalBuyQuantity
	} else {
		pos.AveragePrice = 0
	}

	if pos.TotalSellQuantity > 0 && pos.AveragePrice > 0 {
		pos.RealizedPL = pos.TotalSellValue - pos.AveragePrice*pos.TotalSellQuantity
	} else {
		pos.RealizedPL = 0
	}
}

// TotalInvestment sums the invested capital across positions.
func TotalInvestment(positions []model.Position) float64 {
	var total float64
	for _, pos := range positions {
		total += pos.TotalInvestment
	}
	return total
}

// TotalRealizedPL sums the realized profit/loss across positions.
func TotalRealizedPL(positions []model.Position) float64 {
	var total float64
	for _, pos := range positions {
		total += pos.RealizedPL
	}
	return total
}
