// Command seed populates the data file with a small starter catalog and a
// couple of blog posts, for local development and demos. Existing records are
// left alone; seeding an already-populated file only reports the counts.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"storecms/internal/config"
	"storecms/internal/db"
	"storecms/internal/model"
	"storecms/internal/repository"
)

var seedProducts = []model.Product{
	{Name: "Lavender Soap", Price: 450, Category: "Bath", Description: "Hand-pressed bar with dried lavender.", Featured: true},
	{Name: "Dark Chocolate Bar", Price: 700, Category: "Pantry", Description: "72% single-origin dark chocolate."},
	{Name: "Beeswax Candle", Price: 1200, Category: "Home", Description: "Slow-burning pure beeswax candle."},
}

var seedBlogs = []model.Blog{
	{
		Title:    "Welcome to the store",
		Author:   "Admin",
		Content:  "<p>We opened our online storefront. Have a look around!</p>",
		Category: "News",
		Featured: true,
	},
	{
		Title:    "How our soap is made",
		Author:   "John Doe",
		Content:  "<p>A walk through the cold-process method we use.</p>",
		Category: "Behind the scenes",
	},
}

func main() {
	log.Println("Starting seed script...")

	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg := config.Load()

	fileDB := db.NewFileDB(cfg.DataFile, cfg.FailOpenReads)
	productRepo := repository.NewProductRepository(fileDB)
	blogRepo := repository.NewBlogRepository(fileDB)

	ctx := context.Background()

	products, err := productRepo.List(ctx)
	if err != nil {
		log.Fatalf("read products: %v", err)
	}
	blogs, err := blogRepo.List(ctx)
	if err != nil {
		log.Fatalf("read blogs: %v", err)
	}

	if len(products) > 0 || len(blogs) > 0 {
		log.Printf("Data file already has %d products and %d blogs, nothing to do", len(products), len(blogs))
		return
	}

	for i := range seedProducts {
		created, err := productRepo.Create(ctx, &seedProducts[i])
		if err != nil {
			log.Fatalf("seed product %q: %v", seedProducts[i].Name, err)
		}
		log.Printf("Created product %d: %s", created.ID, created.Name)
	}

	for i := range seedBlogs {
		created, err := blogRepo.Create(ctx, &seedBlogs[i])
		if err != nil {
			log.Fatalf("seed blog %q: %v", seedBlogs[i].Title, err)
		}
		log.Printf("Created blog %d: %s", created.ID, created.Title)
	}

	log.Printf("Seeded %d products and %d blogs into %s", len(seedProducts), len(seedBlogs), cfg.DataFile)
}
