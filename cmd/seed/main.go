package main

import (
	"fmt"
	"time"

	"github.com/delipedidos/api/internal/config"
	"github.com/delipedidos/api/internal/constants"
	"github.com/delipedidos/api/internal/logger"
	"github.com/delipedidos/api/internal/models"

	"github.com/shopspring/decimal"
)

func money(value float64) models.Money {
	return models.NewMoneyFromDecimal(decimal.NewFromFloat(value))
}

func moneyPtr(value float64) *models.Money {
	m := money(value)
	return &m
}

func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	categories := []models.Category{
		{Name: "Fiambres", Slug: "fiambres", SortOrder: 10, IsActive: true},
		{Name: "Quesos", Slug: "quesos", SortOrder: 20, IsActive: true},
		{Name: "Empanadas", Slug: "empanadas", SortOrder: 30, IsActive: true},
		{Name: "Almacén", Slug: "almacen", SortOrder: 40, IsActive: true},
	}
	for _, cat := range categories {
		var existing models.Category
		if err := models.DB.Where("slug = ?", cat.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&cat).Error; err != nil {
				stdLog.Printf("Failed to create category %s: %v", cat.Slug, err)
			} else {
				stdLog.Printf("Created category: %s", cat.Slug)
			}
		} else {
			stdLog.Printf("Category already exists: %s", cat.Slug)
		}
	}

	categoryIDs := map[string]uint{}
	var categoryList []models.Category
	if err := models.DB.Find(&categoryList).Error; err != nil {
		stdLog.Printf("Failed to load categories: %v", err)
	}
	for _, cat := range categoryList {
		categoryIDs[cat.Slug] = cat.ID
	}
	fiambresID := categoryIDs["fiambres"]
	quesosID := categoryIDs["quesos"]
	empanadasID := categoryIDs["empanadas"]
	almacenID := categoryIDs["almacen"]

	products := []models.Product{
		{
			Name:        "Jamón crudo serrano",
			Slug:        "jamon-crudo-serrano",
			Description: "Estacionado 12 meses, cortado a cuchillo.",
			ProductType: constants.ProductTypeWeighted,
			PricePerKg:  money(18500),
			CategoryID:  &fiambresID,
			Images:      models.StringArray{"https://images.unsplash.com/photo-1625938145744-e380515399b7?w=800"},
			Tags:        models.StringArray{"fiambre", "premium"},
			IsActive:    true,
			IsFeatured:  true,
			HasStock:    true,
			SortOrder:   10,
		},
		{
			Name:               "Queso provolone",
			Slug:               "queso-provolone",
			Description:        "Ideal para picadas y provoleta.",
			ProductType:        constants.ProductTypeWeighted,
			PricePerKg:         money(9800),
			PromoDiscountType:  constants.DiscountTypePercentage,
			PromoDiscountValue: money(15),
			PromoBadge:         "15% OFF",
			IsPromo:            true,
			CategoryID:         &quesosID,
			Images:             models.StringArray{"https://images.unsplash.com/photo-1486297678162-eb2a19b0a32d?w=800"},
			Tags:               models.StringArray{"queso"},
			IsActive:           true,
			HasStock:           true,
			SortOrder:          20,
		},
		{
			Name:        "Empanada de carne",
			Slug:        "empanada-de-carne",
			Description: "Carne cortada a cuchillo, receta salteña.",
			ProductType: constants.ProductTypeStandard,
			Price:       money(1200),
			CategoryID:  &empanadasID,
			Images:      models.StringArray{"https://images.unsplash.com/photo-1601050690597-df0568f70950?w=800"},
			Tags:        models.StringArray{"empanada"},
			IsActive:    true,
			IsFeatured:  true,
			HasStock:    true,
			SortOrder:   30,
		},
		{
			Name:        "Docena de empanadas surtidas",
			Slug:        "docena-empanadas-surtidas",
			Description: "12 unidades a elección.",
			ProductType: constants.ProductTypeCombo,
			Price:       money(13000),
			PromoPrice:  moneyPtr(11500),
			IsPromo:     true,
			IsOffer:     true,
			CategoryID:  &empanadasID,
			Tags:        models.StringArray{"combo", "oferta"},
			IsActive:    true,
			HasStock:    true,
			SortOrder:   40,
		},
		{
			Name:        "Aceitunas verdes en frasco",
			Slug:        "aceitunas-verdes",
			ProductType: constants.ProductTypeStandard,
			Price:       money(3400),
			CategoryID:  &almacenID,
			Tags:        models.StringArray{"almacen"},
			IsActive:    true,
			HasStock:    false,
			SortOrder:   50,
		},
	}
	for _, prod := range products {
		if prod.CategoryID == nil || *prod.CategoryID == 0 {
			stdLog.Printf("Skip product %s: category missing", prod.Slug)
			continue
		}
		var existing models.Product
		if err := models.DB.Where("slug = ?", prod.Slug).First(&existing).Error; err != nil {
			if err := models.DB.Create(&prod).Error; err != nil {
				stdLog.Printf("Failed to create product %s: %v", prod.Slug, err)
			} else {
				stdLog.Printf("Created product: %s", prod.Slug)
			}
		} else {
			stdLog.Printf("Product already exists: %s", prod.Slug)
		}
	}

	hours := models.JSON(map[string]interface{}{
		"mon-fri": "9:00-13:00 / 17:00-21:00",
		"sat":     "9:00-21:00",
		"sun":     "9:00-13:00",
	})
	branches := []models.Branch{
		{
			Name:        "Sucursal Centro",
			AddressText: "Av. San Martín 1250, Centro",
			MapQuery:    "Av. San Martin 1250",
			Phone:       "+54 11 4321-0001",
			WhatsApp:    "+54 9 11 4321-0001",
			HoursJSON:   hours,
			IsActive:    true,
		},
		{
			Name:        "Sucursal Norte",
			AddressText: "Belgrano 480, Barrio Norte",
			MapQuery:    "Belgrano 480",
			Phone:       "+54 11 4321-0002",
			WhatsApp:    "+54 9 11 4321-0002",
			HoursJSON:   hours,
			IsActive:    true,
		},
	}
	for _, branch := range branches {
		var existing models.Branch
		if err := models.DB.Where("name = ?", branch.Name).First(&existing).Error; err != nil {
			if err := models.DB.Create(&branch).Error; err != nil {
				stdLog.Printf("Failed to create branch %s: %v", branch.Name, err)
			} else {
				stdLog.Printf("Created branch: %s", branch.Name)
			}
		} else {
			stdLog.Printf("Branch already exists: %s", branch.Name)
		}
	}

	now := time.Now()
	promoEnd := now.AddDate(0, 1, 0)
	promos := []models.Promo{
		{
			Title:      "Picada para 4 personas",
			Subtitle:   "Fiambres y quesos seleccionados",
			Conditions: "Válido retirando en sucursal. No acumulable con otras promos.",
			StartsAt:   &now,
			EndsAt:     &promoEnd,
			IsActive:   true,
		},
		{
			Title:    "Miércoles de empanadas",
			Subtitle: "Docena surtida a precio de promoción",
			IsActive: true,
		},
	}
	for _, promo := range promos {
		var existing models.Promo
		if err := models.DB.Where("title = ?", promo.Title).First(&existing).Error; err != nil {
			if err := models.DB.Create(&promo).Error; err != nil {
				stdLog.Printf("Failed to create promo %s: %v", promo.Title, err)
			} else {
				stdLog.Printf("Created promo: %s", promo.Title)
			}
		} else {
			stdLog.Printf("Promo already exists: %s", promo.Title)
		}
	}

	siteConfig := models.SiteConfig{
		ID:             models.SiteConfigID,
		BrandName:      "Delipedidos",
		BrandTagline:   "Fiambres y quesos de primera",
		WhatsAppNumber: "+54 9 11 5555-0000",
		Currency:       "ARS",
		DeliveryOptions: models.JSON(map[string]interface{}{
			"pickup":   true,
			"delivery": true,
			"zones":    []string{"Centro", "Norte", "Oeste"},
		}),
		PaymentMethods: models.StringArray{
			constants.PaymentMethodCash,
			constants.PaymentMethodTransfer,
			constants.PaymentMethodMercadoPago,
		},
	}
	var existingConfig models.SiteConfig
	if err := models.DB.First(&existingConfig, models.SiteConfigID).Error; err != nil {
		if err := models.DB.Create(&siteConfig).Error; err != nil {
			stdLog.Printf("Failed to create site config: %v", err)
		} else {
			stdLog.Println("Created site config")
		}
	} else {
		stdLog.Println("Site config already exists")
	}

	fmt.Println("\nSeed data ready:")
	fmt.Println("- 4 categories")
	fmt.Println("- 5 products (weighted, standard, combo)")
	fmt.Println("- 2 branches")
	fmt.Println("- 2 promos")
	fmt.Println("- Site configuration")
}
