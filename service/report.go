package service

import (
	"matchcore/domain/orderbook"
	exitwal "matchcore/infra/wal/exit"
)

// ExecutionReport is the published form of one execution.
type ExecutionReport struct {
	ISIN        string `json:"isin"`
	Seq         uint64 `json:"seq"`
	Index       uint32 `json:"index"`
	BuyOrderID  int64  `json:"buy_order_id"`
	SellOrderID int64  `json:"sell_order_id"`
	Price       int64  `json:"price"`
	Quantity    int64  `json:"quantity"`
	Time        int64  `json:"time"`
}

func NewExecutionReport(isin string, k exitwal.Key, ts int64, e orderbook.Execution) ExecutionReport {
	return ExecutionReport{
		ISIN:        isin,
		Seq:         k.Seq,
		Index:       k.Index,
		BuyOrderID:  e.BuyOrderID,
		SellOrderID: e.SellOrderID,
		Price:       e.Price,
		Quantity:    e.Quantity,
		Time:        ts,
	}
}

// ExecutionListener observes executions in production order. It runs on
// the writer path and must not block.
type ExecutionListener func(ExecutionReport)
