package cmd

import (
	"fmt"
	"log"

	"github.com/chasselife/xpnse/internal/category"
	"github.com/chasselife/xpnse/internal/expense"
	"github.com/chasselife/xpnse/internal/item"
	"github.com/chasselife/xpnse/internal/storage"
	"github.com/chasselife/xpnse/pkg/logger"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample data for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db := storage.New(cfg.Database.Path)
		gdb, err := db.Init()
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		if clearData {
			for _, table := range []string{"items", "categories", "expenses"} {
				if err := gdb.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		lg := logger.L()
		expenseService := expense.NewService(storage.Expenses(db), lg)
		categoryService := category.NewService(storage.Categories(db), expenseService, lg)
		itemService := item.NewService(storage.Items(db), categoryService, lg)

		trip, err := expenseService.Create(expense.CreateExpenseDTO{
			Title:       "Weekend Trip",
			Description: "Two days in the mountains",
			Icon:        "hiking",
			Color:       "#2e7d32",
		})
		if err != nil {
			log.Fatalf("failed to seed expense: %v", err)
		}

		food, err := categoryService.Create(category.CreateCategoryDTO{
			ExpenseID:   trip.ID,
			Title:       "Food",
			Description: "Meals and snacks",
			Icon:        "restaurant",
			Color:       "#ef6c00",
		})
		if err != nil {
			log.Fatalf("failed to seed category: %v", err)
		}

		lodging, err := categoryService.Create(category.CreateCategoryDTO{
			ExpenseID:   trip.ID,
			Title:       "Lodging",
			Description: "Cabin rental",
			Icon:        "cabin",
			Color:       "#1565c0",
		})
		if err != nil {
			log.Fatalf("failed to seed category: %v", err)
		}

		seedItems := []item.CreateItemDTO{
			{
				ExpenseCategoryID: food.ID,
				Date:              "2024-06-14",
				Time:              "19:30",
				Title:             "Dinner at the lodge",
				SubItems:          []string{"soup", "trout", "dessert"},
				Cost:              62.40,
			},
			{
				ExpenseCategoryID: food.ID,
				Date:              "2024-06-15",
				Time:              "08:00",
				Title:             "Trail breakfast",
				Cost:              18.90,
			},
			{
				ExpenseCategoryID: lodging.ID,
				Date:              "2024-06-14",
				Time:              "15:00",
				Title:             "Cabin, one night",
				Notes:             "Includes cleaning fee",
				Cost:              140.00,
			},
		}

		for _, dto := range seedItems {
			if _, err := itemService.Create(dto); err != nil {
				log.Fatalf("failed to seed item: %v", err)
			}
		}

		fmt.Printf("Seeded expense %q with %d categories and %d items\n", trip.Title, 2, len(seedItems))
	},
}
