package analytics

import "app/models"

// DataContext holds all canonical source tables for one observation horizon.
// A backend loads it once at startup; it is read-only afterwards and safe to
// share across concurrent requests.
type DataContext struct {
	Brands           []models.Brand
	Products         []models.Product
	Stores           []models.Store
	Transactions     []models.Transaction
	TransactionLines []models.TransactionLine
	ShelfVision      []models.ShelfVisionEvent
	SttEvents        []models.SttEvent
	Weather          []models.WeatherDaily
	FootTraffic      []models.FootTrafficDaily
}
