// Package report derives per-product daily average balances from a stream of
// transactions. Reports are computed on demand and never stored.
package report

import (
	"fmt"
	"iter"
	"slices"
	"strconv"
	"time"

	"github.com/amirasaad/txrecords/pkg/dto"
	"github.com/amirasaad/txrecords/pkg/query"
	"github.com/shopspring/decimal"
)

// Date is a UTC calendar day. It serializes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// MarshalJSON renders the date without a time of day.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(query.DateLayout) + `"`), nil
}

// UnmarshalJSON reads a YYYY-MM-DD date as midnight UTC.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	t, err := time.ParseInLocation(query.DateLayout, s, time.UTC)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// DailyAverage is the mean balance of one product on one day.
type DailyAverage struct {
	Date    Date    `json:"date"`
	Average float64 `json:"average"`
}

// ProductAverageGroup holds the daily averages of one product, oldest day first.
type ProductAverageGroup struct {
	ProductID     string         `json:"productId"`
	DailyAverages []DailyAverage `json:"dailyAverages"`
}

// AverageReport is the per-product breakdown for one client. Products appear in
// the order they were first seen in the input.
type AverageReport struct {
	ClientID string                `json:"clientId"`
	Products []ProductAverageGroup `json:"products"`
}

// bucket accumulates balances exactly; only the final division is inexact.
type bucket struct {
	sum   decimal.Decimal
	count int
}

type productBuckets struct {
	days map[time.Time]*bucket
}

// DailyAverages groups txs by product and by the UTC calendar day of their
// creation date and averages the balance of each group.
//
// The first error yielded by txs stops consumption and is returned as is; no
// partial report is produced. An empty stream yields a report with no products.
func DailyAverages(clientID string, txs iter.Seq2[*dto.TransactionRead, error]) (*AverageReport, error) {
	var order []string
	byProduct := make(map[string]*productBuckets)

	for tx, err := range txs {
		if err != nil {
			return nil, err
		}
		pb, ok := byProduct[tx.ProductID]
		if !ok {
			pb = &productBuckets{days: make(map[time.Time]*bucket)}
			byProduct[tx.ProductID] = pb
			order = append(order, tx.ProductID)
		}
		day := query.Day(tx.CreatedDate)
		b, ok := pb.days[day]
		if !ok {
			b = &bucket{}
			pb.days[day] = b
		}
		b.sum = b.sum.Add(tx.Balance)
		b.count++
	}

	rep := &AverageReport{
		ClientID: clientID,
		Products: make([]ProductAverageGroup, 0, len(order)),
	}
	for _, productID := range order {
		rep.Products = append(rep.Products, ProductAverageGroup{
			ProductID:     productID,
			DailyAverages: averages(byProduct[productID]),
		})
	}
	return rep, nil
}

func averages(pb *productBuckets) []DailyAverage {
	days := make([]time.Time, 0, len(pb.days))
	for day := range pb.days {
		days = append(days, day)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	out := make([]DailyAverage, 0, len(days))
	for _, day := range days {
		b := pb.days[day]
		out = append(out, DailyAverage{
			Date:    Date{day},
			Average: b.sum.InexactFloat64() / float64(b.count),
		})
	}
	return out
}
