package models

import (
	"time"

	"app/utils"
)

// --- Custom time type for CSV loading ---

// FlexTime wraps time.Time so CSV cells in any of the accepted formats
// (RFC3339, bare dates, etc.) unmarshal cleanly.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalCSV(value string) error {
	if value == "" {
		t.Time = time.Time{}
		return nil
	}
	parsed, err := utils.ParseFlexibleTime(value)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

func (t FlexTime) MarshalCSV() (string, error) {
	return t.Format(time.RFC3339), nil
}

// --- Source tables ---

// Brand is one catalog brand; Category groups brands for benchmarking.
type Brand struct {
	BrandID   int    `json:"brand_id" csv:"brand_id"`
	BrandName string `json:"brand_name" csv:"brand_name"`
	Category  string `json:"category" csv:"category"`
}

// Product belongs to exactly one brand.
type Product struct {
	ProductID   int    `json:"product_id" csv:"product_id"`
	SKU         string `json:"sku" csv:"sku"`
	Barcode     string `json:"barcode" csv:"barcode"`
	BrandID     int    `json:"brand_id" csv:"brand_id"`
	ProductName string `json:"product_name" csv:"product_name"`
	Category    string `json:"category" csv:"category"`
	PackSize    string `json:"pack_size" csv:"pack_size"`
	PackType    string `json:"pack_type" csv:"pack_type"`
}

// Store is a single retail location.
type Store struct {
	StoreID   int    `json:"store_id" csv:"store_id"`
	StoreName string `json:"store_name" csv:"store_name"`
	Region    string `json:"region" csv:"region"`
	City      string `json:"city" csv:"city"`
	Barangay  string `json:"barangay" csv:"barangay"`
	StoreType string `json:"store_type" csv:"store_type"`
}

// Transaction is one checkout event at a store.
type Transaction struct {
	TransactionID string   `json:"transaction_id" csv:"transaction_id"`
	StoreID       int      `json:"store_id" csv:"store_id"`
	TxTimestamp   FlexTime `json:"tx_timestamp" csv:"tx_timestamp"`
	TotalAmount   float64  `json:"total_amount" csv:"total_amount"`
}

// TransactionLine is one item line of a transaction. Lines carry no
// timestamp of their own; they take the parent transaction's date.
type TransactionLine struct {
	TransactionID string  `json:"transaction_id" csv:"transaction_id"`
	LineNo        int     `json:"line_no" csv:"line_no"`
	ProductID     int     `json:"product_id" csv:"product_id"`
	BrandID       int     `json:"brand_id" csv:"brand_id"`
	Quantity      float64 `json:"quantity" csv:"quantity"`
	UnitPrice     float64 `json:"unit_price" csv:"unit_price"`
	Subtotal      float64 `json:"subtotal" csv:"subtotal"`
}

// ShelfVisionEvent is one sampled observation of shelf state for a brand.
type ShelfVisionEvent struct {
	ID             string   `json:"id" csv:"id"`
	StoreID        int      `json:"store_id" csv:"store_id"`
	EventTimestamp FlexTime `json:"event_timestamp" csv:"event_timestamp"`
	BrandID        int      `json:"brand_id" csv:"brand_id"`
	Facings        int      `json:"facings" csv:"facings"`
	ShareOfShelf   float64  `json:"share_of_shelf" csv:"share_of_shelf"`
	OosFlag        bool     `json:"oos_flag" csv:"oos_flag"`
	Confidence     float64  `json:"confidence" csv:"confidence"`
}

// SttEvent is one detected spoken utterance referencing a brand.
type SttEvent struct {
	ID             string   `json:"id" csv:"id"`
	StoreID        int      `json:"store_id" csv:"store_id"`
	EventTimestamp FlexTime `json:"event_timestamp" csv:"event_timestamp"`
	BrandID        int      `json:"brand_id" csv:"brand_id"`
	RawText        string   `json:"raw_text" csv:"raw_text"`
	IntentLabel    string   `json:"intent_label" csv:"intent_label"`
	SentimentScore float64  `json:"sentiment_score" csv:"sentiment_score"`
}

// WeatherDaily is one weather observation per (store, date).
type WeatherDaily struct {
	StoreID    int      `json:"store_id" csv:"store_id"`
	Date       FlexTime `json:"date" csv:"date"`
	TempC      float64  `json:"temp_c" csv:"temp_c"`
	RainfallMm float64  `json:"rainfall_mm" csv:"rainfall_mm"`
	Condition  string   `json:"condition" csv:"condition"`
}

// FootTrafficDaily is one foot traffic index per (store, date).
type FootTrafficDaily struct {
	StoreID      int      `json:"store_id" csv:"store_id"`
	Date         FlexTime `json:"date" csv:"date"`
	TrafficIndex float64  `json:"traffic_index" csv:"traffic_index"`
}
