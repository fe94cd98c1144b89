// seed-directory loads the read-only reference data the forms cascade
// through: the brand/owner contacts, the influencer roster, and a pending
// ledger entry per roster pair so the submission path has something to
// settle.
//
// Usage (from the backend directory):
//
//	MONGODB_URI=... MONGODB_DATABASE=... go run ./cmd/seed-directory
package main

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aniketgore/Influencer_Payment_Backend.git/database"
	"github.com/aniketgore/Influencer_Payment_Backend.git/models"
	"github.com/aniketgore/Influencer_Payment_Backend.git/services"
	"github.com/aniketgore/Influencer_Payment_Backend.git/store/mongostore"
)

type rosterEntry struct {
	brand  string
	handle string
	amount float64
}

var brands = map[string]string{
	"YFF":              "payments@yff.example.com",
	"Anand Home Store": "owner@anandhomestore.example.com",
	"Nike":             "collabs@nike.example.com",
	"Gymshark":         "partners@gymshark.example.com",
}

var roster = []rosterEntry{
	{"YFF", "style.with.riya", 1500},
	{"YFF", "mumbai.moodboard", 2000},
	{"Anand Home Store", "decor.by.dev", 800},
	{"Nike", "run.with.arjun", 5000},
	{"Gymshark", "lift.like.lena", 3500},
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Info: no .env file found: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	database.Connect()
	defer database.Disconnect()
	db := database.GetDB()

	now := time.Now()

	for name, email := range brands {
		filter := bson.M{"brand_name": name}
		update := bson.M{
			"$set":         bson.M{"owner_email": email},
			"$setOnInsert": bson.M{"brand_name": name, "created_at": now},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := db.Collection(mongostore.CollBrands).UpdateOne(ctx, filter, update, opts); err != nil {
			log.Fatalf("Failed to seed brand %q: %v", name, err)
		}
	}
	fmt.Printf("Seeded %d brands.\n", len(brands))

	for _, entry := range roster {
		filter := bson.M{"brand_name": entry.brand, "instagram_handle": entry.handle}
		update := bson.M{"$setOnInsert": filter}
		opts := options.Update().SetUpsert(true)
		if _, err := db.Collection(mongostore.CollInfluencers).UpdateOne(ctx, filter, update, opts); err != nil {
			log.Fatalf("Failed to seed influencer %q: %v", entry.handle, err)
		}

		// One pending ledger entry per pair, skipped if any already exists so
		// reruns do not pile up owed amounts.
		ledgerFilter := bson.M{
			"brand_name":       entry.brand,
			"instagram_handle": entry.handle,
			"status":           models.StatusPending,
		}
		count, err := db.Collection(mongostore.CollPending).CountDocuments(ctx, ledgerFilter, options.Count().SetLimit(1))
		if err != nil {
			log.Fatalf("Failed to check ledger for %q: %v", entry.handle, err)
		}
		if count > 0 {
			continue
		}

		payment := models.PendingPayment{
			PaymentID:       services.GeneratePaymentID(),
			InstagramHandle: entry.handle,
			BrandName:       entry.brand,
			Amount:          entry.amount,
			Status:          models.StatusPending,
			CreatedAt:       now,
		}
		if _, err := db.Collection(mongostore.CollPending).InsertOne(ctx, payment); err != nil {
			log.Fatalf("Failed to seed pending payment for %q: %v", entry.handle, err)
		}
		fmt.Printf("Seeded pending payment %s for %s (%s).\n",
			payment.PaymentID, entry.handle, strings.TrimSpace(entry.brand))
	}

	fmt.Println("Directory seed complete.")
}
