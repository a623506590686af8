// Package csvloader parses the store's product CSV feeds. Two layouts share
// one loader:
//
//	computers:   sku, brand, model, product_type, category, stock, price, cpu, gpu, ram_gb, storage_gb, os, warranty_years
//	accessories: sku, brand, product_name, product_type, category, stock, price
//
// The loader is row-tolerant: a bad row is counted and reported, never fatal.
package csvloader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"smartbyte-be/internal/entity"
)

// ImportStats summarizes one load: how many rows were seen, how many became
// products and what went wrong with the rest.
type ImportStats struct {
	TotalRows int      `json:"total_rows"`
	Loaded    int      `json:"loaded"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors"`
}

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

// Load reads all rows from r and returns the parsed products plus stats.
// Only an unreadable header or stream aborts the load.
func (l *Loader) Load(r io.Reader) ([]*entity.Product, ImportStats, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ImportStats{}, fmt.Errorf("read csv header: %w", err)
	}
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(strings.ToLower(name))] = i
	}

	var (
		products []*entity.Product
		stats    ImportStats
	)

	for rowNum := 2; ; rowNum++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, stats, fmt.Errorf("read csv row %d: %w", rowNum, err)
		}

		stats.TotalRows++
		product, err := parseRow(columns, record)
		if err != nil {
			stats.Skipped++
			stats.Errors = append(stats.Errors, fmt.Sprintf("row %d: %v", rowNum, err))
			continue
		}
		products = append(products, product)
		stats.Loaded++
	}

	return products, stats, nil
}

func parseRow(columns map[string]int, record []string) (*entity.Product, error) {
	field := func(name string) string {
		idx, ok := columns[name]
		if !ok || idx >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[idx])
	}

	sku := field("sku")
	if sku == "" {
		return nil, fmt.Errorf("missing sku")
	}
	brand := field("brand")
	if brand == "" {
		return nil, fmt.Errorf("missing brand")
	}
	productType := field("product_type")
	if productType == "" {
		return nil, fmt.Errorf("missing product_type")
	}
	category := field("category")
	if category == "" {
		return nil, fmt.Errorf("missing category")
	}

	price, err := strconv.ParseFloat(field("price"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price %q", field("price"))
	}
	stock, err := strconv.Atoi(field("stock"))
	if err != nil {
		return nil, fmt.Errorf("invalid stock %q", field("stock"))
	}

	// Computers name themselves via "model", accessories via "product_name".
	name := field("model")
	if name == "" {
		name = field("product_name")
	}
	if name == "" {
		return nil, fmt.Errorf("product must have either model or product_name")
	}

	specs := extractSpecs(field)

	return &entity.Product{
		SKU:         sku,
		Name:        name,
		Brand:       brand,
		ProductType: productType,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Specs:       specs,
		Description: buildDescription(name, brand, specs),
	}, nil
}

// extractSpecs pulls whichever spec columns the row actually carries.
// Unparseable numeric specs are dropped silently, the row itself stays valid.
func extractSpecs(field func(string) string) map[string]interface{} {
	specs := make(map[string]interface{})

	for _, name := range []string{"cpu", "gpu", "os"} {
		if v := field(name); v != "" {
			specs[name] = v
		}
	}
	for _, name := range []string{"ram_gb", "storage_gb", "warranty_years"} {
		if v := field(name); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				specs[name] = n
			}
		}
	}

	if len(specs) == 0 {
		return nil
	}
	return specs
}

func buildDescription(name, brand string, specs map[string]interface{}) string {
	parts := []string{brand + " " + name}

	if cpu, ok := specs["cpu"].(string); ok {
		parts = append(parts, "CPU: "+cpu)
	}
	if ram, ok := specs["ram_gb"].(int); ok {
		parts = append(parts, fmt.Sprintf("RAM: %dGB", ram))
	}
	if storage, ok := specs["storage_gb"].(int); ok {
		parts = append(parts, fmt.Sprintf("Storage: %dGB", storage))
	}
	if gpu, ok := specs["gpu"].(string); ok {
		parts = append(parts, "GPU: "+gpu)
	}

	return strings.Join(parts, " | ")
}
