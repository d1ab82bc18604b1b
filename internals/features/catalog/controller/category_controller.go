// internals/features/catalog/controller/category_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/dto"
	"almanara_backend/internals/features/catalog/store"
	helper "almanara_backend/internals/helpers"
)

var validate = validator.New()

const (
	defaultPerPage = 25
	maxPerPage     = 200
)

// mapStoreErr menerjemahkan error store ke JSON response (tanpa bocor detail).
func mapStoreErr(c *fiber.Ctx, err error, notFoundMsg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return helper.JsonError(c, fiber.StatusNotFound, notFoundMsg)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to access data")
}

type CategoryController struct {
	Store store.CatalogStore
}

// =========================================================
// LIST - GET /api/categories?per_page=&search=
// =========================================================
func (h *CategoryController) List(c *fiber.Ctx) error {
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListCategories(c.UserContext(), store.ListOptions{
		Search: paging.Search,
		Limit:  paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list categories")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// CREATE - POST /api/categories
// Body: JSON atau form sederhana
// =========================================================
func (h *CategoryController) Create(c *fiber.Ctx) error {
	var req dto.CategoryCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Store.CreateCategory(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create category")
	}
	return helper.JsonCreated(c, "Category created", m)
}

// =========================================================
// DETAIL - GET /api/categories/:id
// =========================================================
func (h *CategoryController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	row, err := h.Store.GetCategory(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Category not found")
	}
	return helper.JsonOK(c, "", row)
}

// =========================================================
// UPDATE - PUT /api/categories/:id
// Partial: hanya field yang dikirim yang menimpa
// =========================================================
func (h *CategoryController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CategoryUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := h.Store.GetCategory(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Category not found")
	}

	req.Apply(&row)
	if err := h.Store.SaveCategory(c.UserContext(), &row); err != nil {
		return mapStoreErr(c, err, "Category not found")
	}
	return helper.JsonUpdated(c, "Category updated", row)
}

// =========================================================
// DELETE - DELETE /api/categories/:id
// Tanpa cascade ke courses (mock behaviour)
// =========================================================
func (h *CategoryController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.Store.DeleteCategory(c.UserContext(), id); err != nil {
		return mapStoreErr(c, err, "Category not found")
	}
	return helper.JsonDeleted(c, "Category deleted", fiber.Map{"id": id})
}
