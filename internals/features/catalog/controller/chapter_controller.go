// internals/features/catalog/controller/chapter_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/dto"
	"almanara_backend/internals/features/catalog/store"
	helper "almanara_backend/internals/helpers"
)

type ChapterController struct {
	Store store.CatalogStore
}

// =========================================================
// LIST - GET /api/chapters?per_page=&search=&course_id=
// =========================================================
func (h *ChapterController) List(c *fiber.Ctx) error {
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListChapters(c.UserContext(), store.ListOptions{
		ParentID: uint(c.QueryInt("course_id")),
		Search:   paging.Search,
		Limit:    paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list chapters")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// LIST (nested) - GET /api/courses/:id/chapters
// =========================================================
func (h *ChapterController) ListByCourse(c *fiber.Ctx) error {
	courseID, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListChapters(c.UserContext(), store.ListOptions{
		ParentID: courseID,
		Search:   paging.Search,
		Limit:    paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list chapters")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// CREATE - POST /api/chapters  |  POST /api/courses/:id/chapters
// =========================================================
func (h *ChapterController) Create(c *fiber.Ctx) error {
	var req dto.ChapterCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if raw := c.Params("id"); raw != "" {
		courseID, err := helper.ParseID(c, "id")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
		}
		req.CourseID = courseID
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Store.CreateChapter(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create chapter")
	}
	return helper.JsonCreated(c, "Chapter created", m)
}

// =========================================================
// DETAIL - GET /api/chapters/:id
// =========================================================
func (h *ChapterController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	row, err := h.Store.GetChapter(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Chapter not found")
	}
	return helper.JsonOK(c, "", row)
}

// =========================================================
// UPDATE - PUT /api/chapters/:id
// =========================================================
func (h *ChapterController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.ChapterUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := h.Store.GetChapter(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Chapter not found")
	}

	req.Apply(&row)
	if err := h.Store.SaveChapter(c.UserContext(), &row); err != nil {
		return mapStoreErr(c, err, "Chapter not found")
	}
	return helper.JsonUpdated(c, "Chapter updated", row)
}

// =========================================================
// DELETE - DELETE /api/chapters/:id
// =========================================================
func (h *ChapterController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.Store.DeleteChapter(c.UserContext(), id); err != nil {
		return mapStoreErr(c, err, "Chapter not found")
	}
	return helper.JsonDeleted(c, "Chapter deleted", fiber.Map{"id": id})
}
