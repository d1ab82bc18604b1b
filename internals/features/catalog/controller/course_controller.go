// internals/features/catalog/controller/course_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/dto"
	"almanara_backend/internals/features/catalog/store"
	helper "almanara_backend/internals/helpers"
)

type CourseController struct {
	Store store.CatalogStore
}

// =========================================================
// LIST - GET /api/courses?per_page=&search=&category_id=
// =========================================================
func (h *CourseController) List(c *fiber.Ctx) error {
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListCourses(c.UserContext(), store.ListOptions{
		ParentID: uint(c.QueryInt("category_id")),
		Search:   paging.Search,
		Limit:    paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// LIST (nested) - GET /api/categories/:id/courses
// =========================================================
func (h *CourseController) ListByCategory(c *fiber.Ctx) error {
	categoryID, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListCourses(c.UserContext(), store.ListOptions{
		ParentID: categoryID,
		Search:   paging.Search,
		Limit:    paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list courses")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// CREATE - POST /api/courses  |  POST /api/categories/:id/courses
// Parent category boleh belum ada (lenient; mendukung seeding out-of-order).
// =========================================================
func (h *CourseController) Create(c *fiber.Ctx) error {
	var req dto.CourseCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	// Nested route: category id dari path menimpa body
	if raw := c.Params("id"); raw != "" {
		categoryID, err := helper.ParseID(c, "id")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
		}
		req.CategoryID = categoryID
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Store.CreateCourse(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create course")
	}
	return helper.JsonCreated(c, "Course created", m)
}

// =========================================================
// DETAIL - GET /api/courses/:id
// =========================================================
func (h *CourseController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	row, err := h.Store.GetCourse(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Course not found")
	}
	return helper.JsonOK(c, "", row)
}

// =========================================================
// UPDATE - PUT /api/courses/:id
// =========================================================
func (h *CourseController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.CourseUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := h.Store.GetCourse(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Course not found")
	}

	req.Apply(&row)
	if err := h.Store.SaveCourse(c.UserContext(), &row); err != nil {
		return mapStoreErr(c, err, "Course not found")
	}
	return helper.JsonUpdated(c, "Course updated", row)
}

// =========================================================
// DELETE - DELETE /api/courses/:id
// =========================================================
func (h *CourseController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.Store.DeleteCourse(c.UserContext(), id); err != nil {
		return mapStoreErr(c, err, "Course not found")
	}
	return helper.JsonDeleted(c, "Course deleted", fiber.Map{"id": id})
}
