package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/20alina03/FYP-MASALA-TARKA/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeLike{}); err != nil {
		log.Fatalf("Error migrating recipe like database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeComment{}); err != nil {
		log.Fatalf("Error migrating recipe comment database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.RecipeBook{}); err != nil {
		log.Fatalf("Error migrating recipe book database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GeneratedRecipe{}); err != nil {
		log.Fatalf("Error migrating generated recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GeneratedRecipeBook{}); err != nil {
		log.Fatalf("Error migrating generated recipe book database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
