package main

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"atelier-system/config"
	"atelier-system/internal/database"
	"atelier-system/internal/database/models"
)

var orderTypeNames = []string{"Standard", "Express", "Custom", "Wholesale"}

func main() {
	gofakeit.Seed(time.Now().UnixNano())

	cfg := config.LoadConfig()
	if cfg.DB.DSN == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := database.NewConnection(cfg.DB.DSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	for _, name := range orderTypeNames {
		if err := db.FirstOrCreate(&models.OrderType{}, models.OrderType{Name: name}).Error; err != nil {
			log.Fatalf("seed order type %s: %v", name, err)
		}
	}

	count := mustInt("20", os.Getenv("SEED_COUNT"))
	for i := 0; i < count; i++ {
		order := fakeOrder()
		err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&order).Error; err != nil {
				return err
			}
			// Invoice numbers are millisecond timestamps; stagger them so a
			// tight loop cannot collide on the unique index.
			invoice := models.NewInvoiceForOrder(order, time.Now().Add(time.Duration(i)*time.Millisecond))
			return tx.Create(&invoice).Error
		})
		if err != nil {
			log.Fatalf("seed order: %v", err)
		}
	}

	log.Printf("seeded %d order type(s) and %d order(s)", len(orderTypeNames), count)
}

func fakeOrder() models.Order {
	total := decimal.NewFromFloat(gofakeit.Price(50, 2000)).Round(2)

	status := models.OrderNotPaid
	paid := decimal.Zero
	if gofakeit.Bool() {
		status = models.OrderPaid
		paid = total
	}

	return models.Order{
		OrderType:        orderTypeNames[gofakeit.Number(0, len(orderTypeNames)-1)],
		Deadline:         time.Now().AddDate(0, 0, gofakeit.Number(3, 60)),
		TotalAmount:      total,
		PaymentStatus:    status,
		AmountPaid:       paid,
		RemainingBalance: total.Sub(paid),
		ClientName:       gofakeit.Name(),
		ClientPhone:      gofakeit.Phone(),
		Notes:            gofakeit.Sentence(8),
	}
}

func mustInt(def, s string) int {
	if s == "" {
		s = def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("invalid count %q: %v", s, err)
	}
	return n
}
