package db

import (
	"log"

	"gorm.io/gorm"

	"github.com/dgsoftwash/booking-api/internal/models"
)

// Seed loads the initial service catalog and discount tiers on an
// empty database. Subsequent edits live in the database; the seed
// never overwrites them.
func Seed(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Service{}).Count(&count).Error; err != nil {
		log.Printf("seed: count failed: %v", err)
		return
	}
	if count > 0 {
		return
	}

	services := []models.Service{
		// House washes (one selection per group)
		{Key: "house-rancher", Label: "Rancher House Wash", Category: models.CategoryBase, Price: 350, Duration: 2, SortOrder: 1, Group: "house"},
		{Key: "house-single", Label: "Single Family House Wash", Category: models.CategoryBase, Price: 575, Duration: 3, SortOrder: 2, Group: "house"},
		{Key: "house-plus", Label: "Plus+ House Wash", Category: models.CategoryBase, Price: 805, Duration: 4, SortOrder: 3, Group: "house"},

		// Decks
		{Key: "deck-little", Label: "Little Deck", Category: models.CategoryBase, Price: 125, Duration: 2, SortOrder: 4, Group: "deck"},
		{Key: "deck-medium", Label: "Medium Deck", Category: models.CategoryBase, Price: 175, Duration: 2, SortOrder: 5, Group: "deck"},
		{Key: "deck-large", Label: "Large Deck", Category: models.CategoryBase, Price: 225, Duration: 2, SortOrder: 6, Group: "deck"},

		// Fences
		{Key: "fence-standard", Label: "Standard Fence (1/4 Acre)", Category: models.CategoryBase, Price: 200, Duration: 2, SortOrder: 7, Group: "fence"},
		{Key: "fence-large", Label: "Large Fence (1/2 Acre)", Category: models.CategoryBase, Price: 350, Duration: 2, SortOrder: 8, Group: "fence"},

		// RVs
		{Key: "rv-short", Label: "Short Bus RV", Category: models.CategoryBase, Price: 75, Duration: 1, SortOrder: 9, Group: "rv"},
		{Key: "rv-medium", Label: "Medium Bumper Pull RV", Category: models.CategoryBase, Price: 125, Duration: 1, SortOrder: 10, Group: "rv"},
		{Key: "rv-big", Label: "Big Boy 5th Wheel RV", Category: models.CategoryBase, Price: 200, Duration: 1, SortOrder: 11, Group: "rv"},

		// Boats
		{Key: "boat-small", Label: "Boat (20ft or Less)", Category: models.CategoryBase, Price: 100, Duration: 1, SortOrder: 12, Group: "boat"},
		{Key: "boat-large", Label: "Boat (21-26ft)", Category: models.CategoryBase, Price: 150, Duration: 1, SortOrder: 13, Group: "boat"},

		// Estimate-only: listed, never bookable online
		{Key: "heavy-equipment", Label: "Heavy Equipment", Category: models.CategoryBase, Price: 0, Duration: 0, SortOrder: 14, Bookable: false},
		{Key: "commercial", Label: "Commercial", Category: models.CategoryBase, Price: 0, Duration: 0, SortOrder: 15, Bookable: false},

		// House add-ons, priced per house variant
		{Key: "house-rancher-roof", Label: "Roof Wash", Category: models.CategoryAddon, ParentKey: "house-rancher", Price: 125, Duration: 1, SortOrder: 1},
		{Key: "house-rancher-driveway", Label: "Driveway Hot Wash", Category: models.CategoryAddon, ParentKey: "house-rancher", Price: 75, Duration: 1.5, SortOrder: 2},
		{Key: "house-rancher-stain", Label: "Driveway Heavy Stain (Peroxide/Degreaser)", Category: models.CategoryAddon, ParentKey: "house-rancher", Price: 125, Duration: 2, SortOrder: 3},
		{Key: "house-rancher-uv", Label: "UV Protectant", Category: models.CategoryAddon, ParentKey: "house-rancher", Price: 25, Duration: 1, SortOrder: 4},
		{Key: "house-rancher-windows", Label: "Streak-Free Window Cleaning", Category: models.CategoryAddon, ParentKey: "house-rancher", Price: 25, Duration: 0.75, SortOrder: 5},

		{Key: "house-single-roof", Label: "Roof Wash", Category: models.CategoryAddon, ParentKey: "house-single", Price: 225, Duration: 1, SortOrder: 1},
		{Key: "house-single-driveway", Label: "Driveway Hot Wash", Category: models.CategoryAddon, ParentKey: "house-single", Price: 75, Duration: 1.5, SortOrder: 2},
		{Key: "house-single-stain", Label: "Driveway Heavy Stain (Peroxide/Degreaser)", Category: models.CategoryAddon, ParentKey: "house-single", Price: 125, Duration: 2, SortOrder: 3},
		{Key: "house-single-uv", Label: "UV Protectant", Category: models.CategoryAddon, ParentKey: "house-single", Price: 65, Duration: 1, SortOrder: 4},
		{Key: "house-single-windows", Label: "Streak-Free Window Cleaning", Category: models.CategoryAddon, ParentKey: "house-single", Price: 60, Duration: 0.75, SortOrder: 5},

		{Key: "house-plus-roof", Label: "Roof Wash", Category: models.CategoryAddon, ParentKey: "house-plus", Price: 400, Duration: 1, SortOrder: 1},
		{Key: "house-plus-driveway", Label: "Driveway Hot Wash", Category: models.CategoryAddon, ParentKey: "house-plus", Price: 125, Duration: 1.5, SortOrder: 2},
		{Key: "house-plus-stain", Label: "Driveway Heavy Stain (Peroxide/Degreaser)", Category: models.CategoryAddon, ParentKey: "house-plus", Price: 175, Duration: 2, SortOrder: 3},
		{Key: "house-plus-uv", Label: "UV Protectant", Category: models.CategoryAddon, ParentKey: "house-plus", Price: 100, Duration: 1, SortOrder: 4},
		{Key: "house-plus-windows", Label: "Streak-Free Window Cleaning", Category: models.CategoryAddon, ParentKey: "house-plus", Price: 85, Duration: 0.75, SortOrder: 5},

		// RV add-ons, priced per RV size
		{Key: "rv-short-uv", Label: "UV Protectant", Category: models.CategoryAddon, ParentKey: "rv-short", Price: 20, Duration: 0.5, SortOrder: 1},
		{Key: "rv-short-windows", Label: "Streak-Free Window Cleaning", Category: models.CategoryAddon, ParentKey: "rv-short", Price: 20, Duration: 0.25, SortOrder: 2},
		{Key: "rv-medium-uv", Label: "UV Protectant", Category: models.CategoryAddon, ParentKey: "rv-medium", Price: 35, Duration: 0.5, SortOrder: 1},
		{Key: "rv-medium-windows", Label: "Streak-Free Window Cleaning", Category: models.CategoryAddon, ParentKey: "rv-medium", Price: 35, Duration: 0.25, SortOrder: 2},
		{Key: "rv-big-uv", Label: "UV Protectant", Category: models.CategoryAddon, ParentKey: "rv-big", Price: 50, Duration: 0.5, SortOrder: 1},
		{Key: "rv-big-windows", Label: "Streak-Free Window Cleaning", Category: models.CategoryAddon, ParentKey: "rv-big", Price: 50, Duration: 0.25, SortOrder: 2},
	}

	for i := range services {
		services[i].Active = true
		if services[i].Key != "heavy-equipment" && services[i].Key != "commercial" {
			services[i].Bookable = true
		}
	}

	discounts := []models.Discount{
		{Key: "multi-2", Label: "2+ Services Discount", Percent: 10, Auto: true, MinServices: 2, Active: true},
		{Key: "multi-3", Label: "3+ Services Discount", Percent: 15, Auto: true, MinServices: 3, Active: true},
		{Key: "cash", Label: "Cash Payment Discount", Percent: 10, Active: true},
		{Key: "returning", Label: "Returning Customer Discount", Percent: 10, Active: true},
	}

	if err := db.Create(&services).Error; err != nil {
		log.Printf("seed: services failed: %v", err)
		return
	}
	if err := db.Create(&discounts).Error; err != nil {
		log.Printf("seed: discounts failed: %v", err)
		return
	}

	log.Printf("seeded %d services and %d discounts", len(services), len(discounts))
}
