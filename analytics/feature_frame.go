package analytics

import (
	"sort"
	"time"

	"app/models"
)

const dateLayout = "2006-01-02"

// FrameOptions narrows the built frame. Zero values mean "no filter".
type FrameOptions struct {
	StartDate     *time.Time
	EndDate       *time.Time
	FocusBrandIDs []int
}

// dayBrandKey is the natural grouping key of the daily frame.
type dayBrandKey struct {
	date    string
	brandID int
}

type salesAgg struct {
	qty     float64
	revenue float64
}

type shelfAgg struct {
	facingsSum float64
	shareSum   float64
	oosCount   int
	n          int
}

type sttAgg struct {
	count        int
	sentimentSum float64
	intents      map[string]int
}

// BuildBrandDayFrame joins sales, shelf vision, demand mentions, weather and
// foot traffic into one row per (date, brand) for the given store. Each
// source is aggregated independently and the partial aggregates are
// outer-joined, so a brand with shelf data but no sales still produces a
// row. Weather and traffic attach by date only. Rows are sorted by
// (date, brand_id) ascending and numeric gaps are left at zero.
func BuildBrandDayFrame(ctx *DataContext, storeID int, opts FrameOptions) []models.BrandDayRow {
	// Transactions: map each of the store's transactions to its calendar date
	// so lines (which carry no timestamp) can inherit it.
	txDate := make(map[string]string)
	for _, tx := range ctx.Transactions {
		if tx.StoreID != storeID {
			continue
		}
		txDate[tx.TransactionID] = tx.TxTimestamp.Format(dateLayout)
	}

	sales := make(map[dayBrandKey]*salesAgg)
	for _, line := range ctx.TransactionLines {
		date, ok := txDate[line.TransactionID]
		if !ok {
			continue // other store, or orphan line
		}
		key := dayBrandKey{date: date, brandID: line.BrandID}
		agg := sales[key]
		if agg == nil {
			agg = &salesAgg{}
			sales[key] = agg
		}
		agg.qty += line.Quantity
		agg.revenue += line.Subtotal
	}

	shelf := make(map[dayBrandKey]*shelfAgg)
	for _, ev := range ctx.ShelfVision {
		if ev.StoreID != storeID {
			continue
		}
		key := dayBrandKey{date: ev.EventTimestamp.Format(dateLayout), brandID: ev.BrandID}
		agg := shelf[key]
		if agg == nil {
			agg = &shelfAgg{}
			shelf[key] = agg
		}
		agg.facingsSum += float64(ev.Facings)
		agg.shareSum += ev.ShareOfShelf
		if ev.OosFlag {
			agg.oosCount++
		}
		agg.n++
	}

	stt := make(map[dayBrandKey]*sttAgg)
	for _, ev := range ctx.SttEvents {
		if ev.StoreID != storeID {
			continue
		}
		key := dayBrandKey{date: ev.EventTimestamp.Format(dateLayout), brandID: ev.BrandID}
		agg := stt[key]
		if agg == nil {
			agg = &sttAgg{intents: make(map[string]int)}
			stt[key] = agg
		}
		agg.count++
		agg.sentimentSum += ev.SentimentScore
		agg.intents[ev.IntentLabel]++
	}

	// Store-level weather and traffic, keyed by date only.
	weather := make(map[string]models.WeatherDaily)
	for _, w := range ctx.Weather {
		if w.StoreID == storeID {
			weather[w.Date.Format(dateLayout)] = w
		}
	}
	traffic := make(map[string]float64)
	for _, t := range ctx.FootTraffic {
		if t.StoreID == storeID {
			traffic[t.Date.Format(dateLayout)] = t.TrafficIndex
		}
	}

	brandMeta := make(map[int]models.Brand)
	for _, b := range ctx.Brands {
		brandMeta[b.BrandID] = b
	}

	// Outer join: the frame is built from activity, so the key set is the
	// union of the three per-brand aggregates.
	keys := make(map[dayBrandKey]struct{})
	for k := range sales {
		keys[k] = struct{}{}
	}
	for k := range shelf {
		keys[k] = struct{}{}
	}
	for k := range stt {
		keys[k] = struct{}{}
	}

	var startKey, endKey string
	if opts.StartDate != nil {
		startKey = opts.StartDate.Format(dateLayout)
	}
	if opts.EndDate != nil {
		endKey = opts.EndDate.Format(dateLayout)
	}
	focus := make(map[int]bool, len(opts.FocusBrandIDs))
	for _, id := range opts.FocusBrandIDs {
		focus[id] = true
	}

	rows := make([]models.BrandDayRow, 0, len(keys))
	for key := range keys {
		if startKey != "" && key.date < startKey {
			continue
		}
		if endKey != "" && key.date > endKey {
			continue
		}
		if len(focus) > 0 && !focus[key.brandID] {
			continue
		}

		row := models.BrandDayRow{Date: key.date, BrandID: key.brandID}

		if agg, ok := sales[key]; ok {
			row.QtySold = agg.qty
			row.Revenue = agg.revenue
		}
		if agg, ok := shelf[key]; ok {
			n := float64(agg.n)
			row.FacingsAvg = agg.facingsSum / n
			row.ShareOfShelfAvg = agg.shareSum / n
			row.OosRate = float64(agg.oosCount) / n
		}
		if agg, ok := stt[key]; ok {
			row.MentionCount = agg.count
			row.AvgSentiment = agg.sentimentSum / float64(agg.count)
			row.IntentCounts = agg.intents
		}
		if w, ok := weather[key.date]; ok {
			row.TempC = w.TempC
			row.RainfallMm = w.RainfallMm
			row.Condition = w.Condition
		}
		row.TrafficIndex = traffic[key.date]
		if meta, ok := brandMeta[key.brandID]; ok {
			row.BrandName = meta.BrandName
			row.Category = meta.Category
		}

		rows = append(rows, row)
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Date != rows[j].Date {
			return rows[i].Date < rows[j].Date
		}
		return rows[i].BrandID < rows[j].BrandID
	})

	return rows
}
