package csvloader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const computerCSV = `sku,brand,model,product_type,category,stock,price,cpu,gpu,ram_gb,storage_gb,os,warranty_years
LT-001,Lenovo,IdeaPad Slim 3,laptop,computer,14,2290,Core i5-1235U,Intel UHD,16,512,Windows 11,1
DT-001,Dell,Aurora R16,desktop,computer,3,8990,Core i7-14700F,RTX 4070,32,2000,Windows 11,2
`

const accessoryCSV = `sku,brand,product_name,product_type,category,stock,price
AC-001,Logitech,G305 Lightspeed,accessory,mouse,30,199
AC-002,HyperX,Cloud III,accessory,headset,12,449
`

func TestLoadComputerLayout(t *testing.T) {
	l := NewLoader()

	products, stats, err := l.Load(strings.NewReader(computerCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalRows)
	assert.Equal(t, 2, stats.Loaded)
	assert.Equal(t, 0, stats.Skipped)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "LT-001", p.SKU)
	assert.Equal(t, "IdeaPad Slim 3", p.Name)
	assert.Equal(t, "laptop", p.ProductType)
	assert.Equal(t, float64(2290), p.Price)
	assert.Equal(t, 14, p.Stock)
	assert.Equal(t, 16, p.Specs["ram_gb"])
	assert.Equal(t, "Core i5-1235U", p.Specs["cpu"])
	assert.Equal(t, "Lenovo IdeaPad Slim 3 | CPU: Core i5-1235U | RAM: 16GB | Storage: 512GB | GPU: Intel UHD", p.Description)
}

func TestLoadAccessoryLayout(t *testing.T) {
	l := NewLoader()

	products, stats, err := l.Load(strings.NewReader(accessoryCSV))
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Loaded)
	require.Len(t, products, 2)

	p := products[0]
	assert.Equal(t, "AC-001", p.SKU)
	assert.Equal(t, "G305 Lightspeed", p.Name)
	assert.Equal(t, "mouse", p.Category)
	assert.Nil(t, p.Specs)
	assert.Equal(t, "Logitech G305 Lightspeed", p.Description)
}

func TestBadRowsAreSkippedNotFatal(t *testing.T) {
	csv := `sku,brand,product_name,product_type,category,stock,price
AC-001,Logitech,G305,accessory,mouse,30,199
,Logitech,NoSKU,accessory,mouse,5,99
AC-003,HyperX,BadPrice,accessory,headset,5,notaprice
`
	l := NewLoader()

	products, stats, err := l.Load(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalRows)
	assert.Equal(t, 1, stats.Loaded)
	assert.Equal(t, 2, stats.Skipped)
	assert.Len(t, stats.Errors, 2)
	require.Len(t, products, 1)
	assert.Equal(t, "AC-001", products[0].SKU)

	// Errors carry the 1-based csv row number, header included.
	assert.Contains(t, stats.Errors[0], "row 3")
}

func TestUnreadableHeaderFails(t *testing.T) {
	l := NewLoader()

	_, _, err := l.Load(strings.NewReader(""))
	assert.Error(t, err)
}
