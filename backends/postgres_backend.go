package backends

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"app/analytics"
	"app/models"
)

// BuildContextFromPostgres loads a DataContext from the saricoach schema of
// a Postgres database. All nine tables are read up front; the context is
// immutable afterwards.
func BuildContextFromPostgres(ctx context.Context, db *pgxpool.Pool) (*analytics.DataContext, error) {
	out := &analytics.DataContext{}

	rows, err := db.Query(ctx, `SELECT brand_id, brand_name, category FROM saricoach.brands`)
	if err != nil {
		return nil, fmt.Errorf("querying brands: %w", err)
	}
	for rows.Next() {
		var b models.Brand
		if err := rows.Scan(&b.BrandID, &b.BrandName, &b.Category); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning brand row: %w", err)
		}
		out.Brands = append(out.Brands, b)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading brands: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT product_id, sku, barcode, brand_id, product_name, category, pack_size, pack_type FROM saricoach.products`)
	if err != nil {
		return nil, fmt.Errorf("querying products: %w", err)
	}
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ProductID, &p.SKU, &p.Barcode, &p.BrandID, &p.ProductName, &p.Category, &p.PackSize, &p.PackType); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning product row: %w", err)
		}
		out.Products = append(out.Products, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading products: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT store_id, store_name, region, city, barangay, store_type FROM saricoach.stores`)
	if err != nil {
		return nil, fmt.Errorf("querying stores: %w", err)
	}
	for rows.Next() {
		var s models.Store
		if err := rows.Scan(&s.StoreID, &s.StoreName, &s.Region, &s.City, &s.Barangay, &s.StoreType); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning store row: %w", err)
		}
		out.Stores = append(out.Stores, s)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading stores: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT transaction_id, store_id, tx_timestamp, total_amount FROM saricoach.transactions`)
	if err != nil {
		return nil, fmt.Errorf("querying transactions: %w", err)
	}
	for rows.Next() {
		var tx models.Transaction
		var ts time.Time
		if err := rows.Scan(&tx.TransactionID, &tx.StoreID, &ts, &tx.TotalAmount); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning transaction row: %w", err)
		}
		tx.TxTimestamp = models.FlexTime{Time: ts}
		out.Transactions = append(out.Transactions, tx)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT transaction_id, line_no, product_id, brand_id, quantity, unit_price, subtotal FROM saricoach.transaction_lines`)
	if err != nil {
		return nil, fmt.Errorf("querying transaction lines: %w", err)
	}
	for rows.Next() {
		var line models.TransactionLine
		if err := rows.Scan(&line.TransactionID, &line.LineNo, &line.ProductID, &line.BrandID, &line.Quantity, &line.UnitPrice, &line.Subtotal); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning transaction line row: %w", err)
		}
		out.TransactionLines = append(out.TransactionLines, line)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading transaction lines: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, store_id, event_timestamp, brand_id, facings, share_of_shelf, oos_flag, confidence FROM saricoach.shelf_vision_events`)
	if err != nil {
		return nil, fmt.Errorf("querying shelf vision events: %w", err)
	}
	for rows.Next() {
		var ev models.ShelfVisionEvent
		var ts time.Time
		if err := rows.Scan(&ev.ID, &ev.StoreID, &ts, &ev.BrandID, &ev.Facings, &ev.ShareOfShelf, &ev.OosFlag, &ev.Confidence); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning shelf vision row: %w", err)
		}
		ev.EventTimestamp = models.FlexTime{Time: ts}
		out.ShelfVision = append(out.ShelfVision, ev)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading shelf vision events: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT id, store_id, event_timestamp, brand_id, raw_text, intent_label, sentiment_score FROM saricoach.stt_events`)
	if err != nil {
		return nil, fmt.Errorf("querying stt events: %w", err)
	}
	for rows.Next() {
		var ev models.SttEvent
		var ts time.Time
		if err := rows.Scan(&ev.ID, &ev.StoreID, &ts, &ev.BrandID, &ev.RawText, &ev.IntentLabel, &ev.SentimentScore); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning stt row: %w", err)
		}
		ev.EventTimestamp = models.FlexTime{Time: ts}
		out.SttEvents = append(out.SttEvents, ev)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading stt events: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT store_id, date, temp_c, rainfall_mm, condition FROM saricoach.weather_daily`)
	if err != nil {
		return nil, fmt.Errorf("querying weather: %w", err)
	}
	for rows.Next() {
		var w models.WeatherDaily
		var date time.Time
		if err := rows.Scan(&w.StoreID, &date, &w.TempC, &w.RainfallMm, &w.Condition); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning weather row: %w", err)
		}
		w.Date = models.FlexTime{Time: date}
		out.Weather = append(out.Weather, w)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading weather: %w", err)
	}

	rows, err = db.Query(ctx, `SELECT store_id, date, traffic_index FROM saricoach.foot_traffic_daily`)
	if err != nil {
		return nil, fmt.Errorf("querying foot traffic: %w", err)
	}
	for rows.Next() {
		var t models.FootTrafficDaily
		var date time.Time
		if err := rows.Scan(&t.StoreID, &date, &t.TrafficIndex); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scanning foot traffic row: %w", err)
		}
		t.Date = models.FlexTime{Time: date}
		out.FootTraffic = append(out.FootTraffic, t)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading foot traffic: %w", err)
	}

	return out, nil
}
