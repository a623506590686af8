package main

import (
	"context"
	"log"
	"os"

	"smartbyte-be/internal/entity"
	"smartbyte-be/internal/repository/implementation"
	"smartbyte-be/internal/repository/specification"
	"smartbyte-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Seeds a demo catalog plus one admin account so a fresh install can be
// exercised end to end.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	products := implementation.NewProductRepository(db)

	for _, p := range sampleProducts() {
		existed, err := products.UpsertBySKU(ctx, p)
		if err != nil {
			color.Red("✗ %s: %v", p.SKU, err)
			continue
		}
		if existed {
			color.Yellow("~ updated %s (%s)", p.SKU, p.DisplayName())
		} else {
			color.Green("✓ seeded  %s (%s)", p.SKU, p.DisplayName())
		}
	}

	seedAdmin(ctx, db)

	color.Cyan("Done.")
}

func seedAdmin(ctx context.Context, db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("~ skipping admin seed (ADMIN_EMAIL/ADMIN_PASSWORD not set)")
		return
	}

	users := implementation.NewUserRepository(db)

	existing, err := users.FindOne(ctx, specification.Filter("email", email))
	if err != nil {
		color.Red("✗ admin lookup: %v", err)
		return
	}
	if existing != nil {
		color.Yellow("~ admin %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("✗ hash admin password: %v", err)
		return
	}

	if err := users.Create(ctx, &entity.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Administrator",
		Role:         entity.UserRoleAdmin,
	}); err != nil {
		color.Red("✗ create admin: %v", err)
		return
	}
	color.Green("✓ admin %s created", email)
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			SKU: "LT-GM-001", Name: "Legion 5 Pro", Brand: "Lenovo",
			ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
			Price: 6490, Stock: 7,
			Specs: map[string]interface{}{
				"cpu": "Ryzen 7 7840HS", "gpu": "RTX 4060", "ram_gb": 32, "storage_gb": 1000, "os": "Windows 11",
			},
			Description: "Lenovo Legion 5 Pro | CPU: Ryzen 7 7840HS | RAM: 32GB | Storage: 1000GB | GPU: RTX 4060",
		},
		{
			SKU: "LT-ST-002", Name: "IdeaPad Slim 3", Brand: "Lenovo",
			ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
			Price: 2290, Stock: 14,
			Specs: map[string]interface{}{
				"cpu": "Core i5-1235U", "gpu": "Intel UHD", "ram_gb": 16, "storage_gb": 512, "os": "Windows 11",
			},
			Description: "Lenovo IdeaPad Slim 3 | CPU: Core i5-1235U | RAM: 16GB | Storage: 512GB | GPU: Intel UHD",
		},
		{
			SKU: "LT-EN-003", Name: "ZenBook 14", Brand: "ASUS",
			ProductType: entity.ProductTypeLaptop, Category: entity.CategoryComputer,
			Price: 4890, Stock: 5,
			Specs: map[string]interface{}{
				"cpu": "Core Ultra 7 155H", "gpu": "Intel Arc", "ram_gb": 32, "storage_gb": 1000, "os": "Windows 11",
			},
			Description: "Asus ZenBook 14 | CPU: Core Ultra 7 155H | RAM: 32GB | Storage: 1000GB | GPU: Intel Arc",
		},
		{
			SKU: "DT-GM-004", Name: "Aurora R16", Brand: "Dell",
			ProductType: entity.ProductTypeDesktop, Category: entity.CategoryComputer,
			Price: 8990, Stock: 3,
			Specs: map[string]interface{}{
				"cpu": "Core i7-14700F", "gpu": "RTX 4070", "ram_gb": 32, "storage_gb": 2000, "os": "Windows 11",
			},
			Description: "Dell Aurora R16 | CPU: Core i7-14700F | RAM: 32GB | Storage: 2000GB | GPU: RTX 4070",
		},
		{
			SKU: "DT-HM-005", Name: "Pavilion TP01", Brand: "HP",
			ProductType: entity.ProductTypeDesktop, Category: entity.CategoryComputer,
			Price: 2790, Stock: 9,
			Specs: map[string]interface{}{
				"cpu": "Ryzen 5 5600G", "gpu": "Radeon Vega 7", "ram_gb": 16, "storage_gb": 512, "os": "Windows 11",
			},
			Description: "HP Pavilion TP01 | CPU: Ryzen 5 5600G | RAM: 16GB | Storage: 512GB | GPU: Radeon Vega 7",
		},
		{
			SKU: "AC-MS-010", Name: "G305 Lightspeed", Brand: "Logitech",
			ProductType: entity.ProductTypeAccessory, Category: "mouse",
			Price: 199, Stock: 30,
			Description: "Logitech G305 Lightspeed",
		},
		{
			SKU: "AC-KB-011", Name: "K120", Brand: "Logitech",
			ProductType: entity.ProductTypeAccessory, Category: "keyboard",
			Price: 79, Stock: 40,
			Description: "Logitech K120",
		},
		{
			SKU: "AC-HS-012", Name: "Cloud III", Brand: "HyperX",
			ProductType: entity.ProductTypeAccessory, Category: "headset",
			Price: 449, Stock: 12,
			Description: "HyperX Cloud III",
		},
		{
			SKU: "AC-BG-013", Name: "Classic Briefcase 15.6", Brand: "Targus",
			ProductType: entity.ProductTypeAccessory, Category: "bag",
			Price: 129, Stock: 25,
			Description: "Targus Classic Briefcase 15.6",
		},
		{
			SKU: "AC-MN-014", Name: "Odyssey G5 27", Brand: "Samsung",
			ProductType: entity.ProductTypeAccessory, Category: "monitor",
			Price: 1190, Stock: 8,
			Description: "Samsung Odyssey G5 27",
		},
	}
}
