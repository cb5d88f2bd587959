// Package seed loads the bundled JSON data files into the database.
// Loading is idempotent per entity: a primary key already present is
// skipped, never updated, so running the loader twice leaves row
// counts unchanged.
package seed

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hakikifaturrahman/simlog/internal/model"
)

// Default admin account created at startup when absent.
const (
	defaultAdminUsername = "admin"
	defaultAdminEmail    = "admin@simlog.com"
	defaultAdminPassword = "admin123"
)

type userRecord struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"password_hash"`
	Role         string `json:"role"`
	CreatedAt    string `json:"created_at"`
}

type productRecord struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	StockQuantity int     `json:"stock_quantity"`
	MinStockLevel int     `json:"min_stock_level"`
	UnitPrice     float64 `json:"unit_price"`
	CreatedAt     string  `json:"created_at"`
	UpdatedAt     string  `json:"updated_at"`
}

type supplierRecord struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	ContactPerson string  `json:"contact_person"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	Rating        float64 `json:"rating"`
	CreatedAt     string  `json:"created_at"`
}

type orderRecord struct {
	ID            uint    `json:"id"`
	UserID        uint    `json:"user_id"`
	SupplierID    uint    `json:"supplier_id"`
	ProductID     uint    `json:"product_id"`
	Quantity      int     `json:"quantity"`
	UnitPrice     float64 `json:"unit_price"`
	TotalCost     float64 `json:"total_cost"`
	LogisticsCost float64 `json:"logistics_cost"`
	PackageType   string  `json:"package_type"`
	Status        string  `json:"status"`
	OrderDate     string  `json:"order_date"`
}

type shipmentRecord struct {
	ID                uint   `json:"id"`
	OrderID           uint   `json:"order_id"`
	TrackingNumber    string `json:"tracking_number"`
	Status            string `json:"status"`
	ShippedDate       string `json:"shipped_date"`
	EstimatedDelivery string `json:"estimated_delivery"`
	ActualDelivery    string `json:"actual_delivery"`
	CurrentLocation   string `json:"current_location"`
}

type financialRecord struct {
	ID              uint    `json:"id"`
	OrderID         uint    `json:"order_id"`
	TransactionType string  `json:"transaction_type"`
	Amount          float64 `json:"amount"`
	Description     string  `json:"description"`
	TransactionDate string  `json:"transaction_date"`
}

type supplierTransactionRecord struct {
	ID              uint    `json:"id"`
	SupplierID      uint    `json:"supplier_id"`
	OrderID         uint    `json:"order_id"`
	Amount          float64 `json:"amount"`
	TransactionDate string  `json:"transaction_date"`
}

// Load reads the seven entity files from dir and inserts any records
// whose ids are not yet present. Users, products, and suppliers land
// before the tables that reference them.
func Load(db *gorm.DB, dir string) error {
	var users []userRecord
	if err := readFile(dir, "users.json", &users); err != nil {
		return err
	}
	for _, u := range users {
		if exists(db, &model.User{}, u.ID) {
			continue
		}
		record := model.User{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			Role:         u.Role,
			CreatedAt:    parseTime(u.CreatedAt),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed user %d: %w", u.ID, err)
		}
	}

	var products []productRecord
	if err := readFile(dir, "products.json", &products); err != nil {
		return err
	}
	for _, p := range products {
		if exists(db, &model.Product{}, p.ID) {
			continue
		}
		record := model.Product{
			ID:            p.ID,
			Name:          p.Name,
			Description:   p.Description,
			StockQuantity: p.StockQuantity,
			MinStockLevel: p.MinStockLevel,
			UnitPrice:     p.UnitPrice,
			CreatedAt:     parseTime(p.CreatedAt),
			UpdatedAt:     parseTime(p.UpdatedAt),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed product %d: %w", p.ID, err)
		}
	}

	var suppliers []supplierRecord
	if err := readFile(dir, "suppliers.json", &suppliers); err != nil {
		return err
	}
	for _, s := range suppliers {
		if exists(db, &model.Supplier{}, s.ID) {
			continue
		}
		record := model.Supplier{
			ID:            s.ID,
			Name:          s.Name,
			ContactPerson: s.ContactPerson,
			Email:         s.Email,
			Phone:         s.Phone,
			Address:       s.Address,
			Rating:        s.Rating,
			CreatedAt:     parseTime(s.CreatedAt),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed supplier %d: %w", s.ID, err)
		}
	}

	var orders []orderRecord
	if err := readFile(dir, "orders.json", &orders); err != nil {
		return err
	}
	for _, o := range orders {
		if exists(db, &model.Order{}, o.ID) {
			continue
		}
		record := model.Order{
			ID:            o.ID,
			UserID:        o.UserID,
			SupplierID:    o.SupplierID,
			ProductID:     o.ProductID,
			Quantity:      o.Quantity,
			UnitPrice:     o.UnitPrice,
			TotalCost:     o.TotalCost,
			LogisticsCost: o.LogisticsCost,
			PackageType:   o.PackageType,
			Status:        o.Status,
			OrderDate:     parseTime(o.OrderDate),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed order %d: %w", o.ID, err)
		}
	}

	var shipments []shipmentRecord
	if err := readFile(dir, "shipments.json", &shipments); err != nil {
		return err
	}
	for _, s := range shipments {
		if exists(db, &model.Shipment{}, s.ID) {
			continue
		}
		record := model.Shipment{
			ID:                s.ID,
			OrderID:           s.OrderID,
			TrackingNumber:    s.TrackingNumber,
			Status:            s.Status,
			ShippedDate:       parseTimePtr(s.ShippedDate),
			EstimatedDelivery: parseTimePtr(s.EstimatedDelivery),
			ActualDelivery:    parseTimePtr(s.ActualDelivery),
			CurrentLocation:   s.CurrentLocation,
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed shipment %d: %w", s.ID, err)
		}
	}

	var financials []financialRecord
	if err := readFile(dir, "financial_records.json", &financials); err != nil {
		return err
	}
	for _, f := range financials {
		if exists(db, &model.FinancialRecord{}, f.ID) {
			continue
		}
		record := model.FinancialRecord{
			ID:              f.ID,
			OrderID:         f.OrderID,
			TransactionType: f.TransactionType,
			Amount:          f.Amount,
			Description:     f.Description,
			TransactionDate: parseTime(f.TransactionDate),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed financial record %d: %w", f.ID, err)
		}
	}

	var transactions []supplierTransactionRecord
	if err := readFile(dir, "supplier_transactions.json", &transactions); err != nil {
		return err
	}
	for _, t := range transactions {
		if exists(db, &model.SupplierTransaction{}, t.ID) {
			continue
		}
		record := model.SupplierTransaction{
			ID:              t.ID,
			SupplierID:      t.SupplierID,
			OrderID:         t.OrderID,
			Amount:          t.Amount,
			TransactionDate: parseTime(t.TransactionDate),
		}
		if err := db.Create(&record).Error; err != nil {
			return fmt.Errorf("seed supplier transaction %d: %w", t.ID, err)
		}
	}

	return nil
}

// EnsureDefaultAdmin creates the bootstrap admin account if no user
// with the default admin username exists yet.
func EnsureDefaultAdmin(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.User{}).Where("username = ?", defaultAdminUsername).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(defaultAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := model.User{
		Username:     defaultAdminUsername,
		Email:        defaultAdminEmail,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	return db.Create(&admin).Error
}

func readFile(dir, name string, out interface{}) error {
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

func exists(db *gorm.DB, entity interface{}, id uint) bool {
	var count int64
	db.Model(entity).Where("id = ?", id).Count(&count)
	return count > 0
}

// parseTime parses an ISO-8601 timestamp, normalizing a trailing Z
// to an explicit UTC offset first. Returns the zero time for empty
// or malformed values.
func parseTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseTimePtr(value string) *time.Time {
	if value == "" {
		return nil
	}
	t := parseTime(value)
	if t.IsZero() {
		return nil
	}
	return &t
}
