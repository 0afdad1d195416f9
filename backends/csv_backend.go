package backends

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"app/analytics"
	"app/models"
)

// BuildContextFromCSV loads a DataContext from a directory holding the nine
// canonical CSV exports. Every file is required; a missing table is a setup
// error, not an empty dataset.
func BuildContextFromCSV(dataDir string) (*analytics.DataContext, error) {
	brands, err := readCSV[models.Brand](dataDir, "brands.csv")
	if err != nil {
		return nil, err
	}
	products, err := readCSV[models.Product](dataDir, "products.csv")
	if err != nil {
		return nil, err
	}
	stores, err := readCSV[models.Store](dataDir, "stores.csv")
	if err != nil {
		return nil, err
	}
	transactions, err := readCSV[models.Transaction](dataDir, "transactions.csv")
	if err != nil {
		return nil, err
	}
	transactionLines, err := readCSV[models.TransactionLine](dataDir, "transaction_lines.csv")
	if err != nil {
		return nil, err
	}
	shelfVision, err := readCSV[models.ShelfVisionEvent](dataDir, "shelf_vision_events.csv")
	if err != nil {
		return nil, err
	}
	sttEvents, err := readCSV[models.SttEvent](dataDir, "stt_events.csv")
	if err != nil {
		return nil, err
	}
	weather, err := readCSV[models.WeatherDaily](dataDir, "weather_daily.csv")
	if err != nil {
		return nil, err
	}
	footTraffic, err := readCSV[models.FootTrafficDaily](dataDir, "foot_traffic_daily.csv")
	if err != nil {
		return nil, err
	}

	return &analytics.DataContext{
		Brands:           brands,
		Products:         products,
		Stores:           stores,
		Transactions:     transactions,
		TransactionLines: transactionLines,
		ShelfVision:      shelfVision,
		SttEvents:        sttEvents,
		Weather:          weather,
		FootTraffic:      footTraffic,
	}, nil
}

func readCSV[T any](dataDir, name string) ([]T, error) {
	path := filepath.Join(dataDir, name)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("missing required data file: %s", path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []T
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return records, nil
}
