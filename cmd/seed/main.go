package main

import (
	"context"
	"log"

	"github.com/SergeyBogomolovv/storefront-service/internal/config"
	"github.com/SergeyBogomolovv/storefront-service/internal/entities"
	"github.com/SergeyBogomolovv/storefront-service/internal/postgres"
	"github.com/SergeyBogomolovv/storefront-service/internal/repo"
	"github.com/joho/godotenv"
)

// Заливает демо-каталог в пустую базу.
var catalog = []entities.Product{
	{Name: "Leather Boots", SKU: "BOOT-001", PriceCents: 12999, Quantity: 25, IsActive: true},
	{Name: "Wool Socks", SKU: "SOCK-010", PriceCents: 899, Quantity: 200, IsActive: true},
	{Name: "Brass Lamp", SKU: "LAMP-003", PriceCents: 4550, Quantity: 40, IsActive: true},
	{Name: "Canvas Backpack", SKU: "PACK-021", PriceCents: 7999, Quantity: 60, IsActive: true},
	{Name: "Ceramic Mug", SKU: "MUG-002", PriceCents: 1250, Quantity: 150, IsActive: true},
	{Name: "Steel Thermos", SKU: "THRM-007", PriceCents: 3499, Quantity: 80, IsActive: true},
	{Name: "Linen Shirt", SKU: "SHRT-015", PriceCents: 5999, Quantity: 45, IsActive: true},
	{Name: "Pocket Knife", SKU: "KNIF-004", PriceCents: 2799, Quantity: 30, IsActive: true},
	{Name: "Tin Compass", SKU: "CMPS-001", PriceCents: 1999, Quantity: 0, IsActive: true},
	{Name: "Retired Lantern", SKU: "LANT-099", PriceCents: 3299, Quantity: 10, IsActive: false},
}

func main() {
	godotenv.Load()

	conf := config.New()
	if err := conf.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	db, err := postgres.New(conf.Postgres)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer db.Close()

	products := repo.NewProductRepo(db)

	ctx := context.Background()
	for _, p := range catalog {
		id, err := products.CreateProduct(ctx, p)
		if err != nil {
			log.Fatalf("failed to create product %s: %v", p.SKU, err)
		}
		log.Printf("seeded product %d (%s)", id, p.SKU)
	}

	log.Printf("done, %d products", len(catalog))
}
