package main

import (
	"github.com/ferreguly-next/internal/config"
	"github.com/ferreguly-next/internal/logger"
	"github.com/ferreguly-next/internal/models"

	"github.com/shopspring/decimal"
)

func main() {
	// 连接数据库
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

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 分类
	categories := []models.Category{
		{Name: "Herramientas", Description: "Herramienta manual y eléctrica", IsActive: true},
		{Name: "Plomería", Description: "Tubería, conexiones y accesorios", IsActive: true},
		{Name: "Material eléctrico", Description: "Cables, contactos y lámparas", IsActive: true},
		{Name: "Pinturas", Description: "Pinturas, brochas y solventes", IsActive: true},
	}
	for i := range categories {
		if err := models.DB.Where("name = ?", categories[i].Name).FirstOrCreate(&categories[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed category %s: %v", categories[i].Name, err)
		}
	}

	// 品牌
	brands := []models.Brand{
		{Name: "Truper", Description: "Herramienta y ferretería en general", IsActive: true},
		{Name: "Pretul", Description: "Línea económica de herramienta", IsActive: true},
		{Name: "Foset", Description: "Plomería y grifería", IsActive: true},
		{Name: "Volteck", Description: "Material eléctrico", IsActive: true},
		{Name: "Comex", Description: "Pinturas y recubrimientos", IsActive: true},
	}
	for i := range brands {
		if err := models.DB.Where("name = ?", brands[i].Name).FirstOrCreate(&brands[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed brand %s: %v", brands[i].Name, err)
		}
	}

	// 商品
	products := []models.Product{
		{
			CategoryID:  categories[0].ID,
			BrandID:     brands[0].ID,
			Name:        "Martillo de uña 16 oz",
			Description: "Mango de fibra de vidrio con grip antiderrapante",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(189.00)),
			Stock:       40,
			IsActive:    true,
		},
		{
			CategoryID:  categories[0].ID,
			BrandID:     brands[1].ID,
			Name:        "Juego de desarmadores 6 piezas",
			Description: "Puntas de cruz y planas, acero al cromo vanadio",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(145.50)),
			Stock:       25,
			IsActive:    true,
		},
		{
			CategoryID:  categories[1].ID,
			BrandID:     brands[2].ID,
			Name:        "Llave mezcladora para lavabo",
			Description: "Acabado cromado, incluye mangueras de alimentación",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(420.00)),
			Stock:       12,
			IsActive:    true,
		},
		{
			CategoryID:  categories[2].ID,
			BrandID:     brands[3].ID,
			Name:        "Rollo de cable THW calibre 12",
			Description: "100 metros, forro termoplástico",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(1150.00)),
			Stock:       8,
			IsActive:    true,
		},
		{
			CategoryID:  categories[3].ID,
			BrandID:     brands[4].ID,
			Name:        "Pintura vinílica blanca 4 L",
			Description: "Acabado mate para interiores",
			Price:       models.NewMoneyFromDecimal(decimal.NewFromFloat(585.00)),
			Stock:       18,
			IsActive:    true,
		},
	}
	for i := range products {
		if err := models.DB.Where("name = ?", products[i].Name).FirstOrCreate(&products[i]).Error; err != nil {
			stdLog.Fatalf("Failed to seed product %s: %v", products[i].Name, err)
		}
	}

	stdLog.Printf("Seed completed: %d categories, %d brands, %d products", len(categories), len(brands), len(products))
}
