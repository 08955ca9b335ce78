package categoryController

import (
	"strconv"

	"helpti/database"
	"helpti/middleware"
	"helpti/models"

	"github.com/gofiber/fiber/v2"
)

func CategoryList(c *fiber.Ctx) error {
	var categories []models.Category
	if err := database.Database.Db.
		Where("is_deleted = false").
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch categories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", categories)
}

func CreateCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateCategory").(*struct {
		Name string `json:"name"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var existing models.Category
	if err := database.Database.Db.Where("name = ? AND is_deleted = false", reqData.Name).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
	}

	category := models.Category{Name: reqData.Name}
	if err := database.Database.Db.Create(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create category!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}

// SubCategoryList lists subcategories, optionally filtered to one parent
// via ?categoryId=.
func SubCategoryList(c *fiber.Ctx) error {
	db := database.Database.Db.Where("is_deleted = false")

	if raw := c.Query("categoryId"); raw != "" {
		categoryId, err := strconv.Atoi(raw)
		if err != nil || categoryId < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid categoryId filter!", nil)
		}
		db = db.Where("category_id = ?", categoryId)
	}

	var subCategories []models.SubCategory
	if err := db.Preload("Category").Order("name ASC").Find(&subCategories).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch subcategories!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Subcategories fetched successfully!", subCategories)
}

func CreateSubCategory(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCreateSubCategory").(*struct {
		Name       string `json:"name"`
		CategoryID uint   `json:"categoryId"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var parent models.Category
	if err := database.Database.Db.Where("id = ? AND is_deleted = false", reqData.CategoryID).First(&parent).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent category not found!", nil)
	}

	var existing models.SubCategory
	if err := database.Database.Db.
		Where("name = ? AND category_id = ? AND is_deleted = false", reqData.Name, reqData.CategoryID).
		First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Subcategory already exists in this category!", nil)
	}

	subCategory := models.SubCategory{
		Name:       reqData.Name,
		CategoryID: reqData.CategoryID,
	}
	if err := database.Database.Db.Create(&subCategory).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create subcategory!", nil)
	}

	subCategory.Category = parent

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Subcategory created successfully!", subCategory)
}
