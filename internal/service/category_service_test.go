package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/delipedidos/api/internal/models"
	"github.com/delipedidos/api/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func newCatalogTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.Category{}, &models.Product{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return db
}

func TestCategoryCreateDerivesSlug(t *testing.T) {
	db := newCatalogTestDB(t, "category_slug")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	category, err := svc.Create(CategoryInput{Name: "Fiambres y Quesos"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if category.Slug != "fiambres-y-quesos" {
		t.Fatalf("slug want fiambres-y-quesos, got %s", category.Slug)
	}
	if !category.IsActive {
		t.Fatalf("new category should default to active")
	}
}

func TestCategoryCreateRejectsDuplicateSlug(t *testing.T) {
	db := newCatalogTestDB(t, "category_dup_slug")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	if _, err := svc.Create(CategoryInput{Name: "Bebidas"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	if _, err := svc.Create(CategoryInput{Name: "Bebidas"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists, got %v", err)
	}
}

func TestCategoryUpdateKeepsSlugUniqueness(t *testing.T) {
	db := newCatalogTestDB(t, "category_update_slug")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	first, err := svc.Create(CategoryInput{Name: "Almacén"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(CategoryInput{Name: "Bebidas"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Renaming onto another category's slug is refused.
	if _, err := svc.Update(second.ID, CategoryInput{Name: "Almacén"}); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("want ErrSlugExists, got %v", err)
	}
	// Saving a category under its own slug is fine.
	if _, err := svc.Update(first.ID, CategoryInput{Name: "Almacén", SortOrder: 5}); err != nil {
		t.Fatalf("self update failed: %v", err)
	}
}

func TestCategoryDeleteBlockedWhileInUse(t *testing.T) {
	db := newCatalogTestDB(t, "category_in_use")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	category, err := svc.Create(CategoryInput{Name: "Fiambres"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	product := models.Product{
		CategoryID: &category.ID,
		Name:       "Salame",
		Slug:       "salame",
	}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}

	if err := svc.Delete(category.ID); !errors.Is(err, ErrCategoryInUse) {
		t.Fatalf("want ErrCategoryInUse, got %v", err)
	}

	if err := db.Delete(&product).Error; err != nil {
		t.Fatalf("delete product failed: %v", err)
	}
	if err := svc.Delete(category.ID); err != nil {
		t.Fatalf("delete after detach failed: %v", err)
	}
}

func TestCategoryDeleteMissing(t *testing.T) {
	db := newCatalogTestDB(t, "category_missing")
	svc := NewCategoryService(repository.NewCategoryRepository(db))

	if err := svc.Delete(4242); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
