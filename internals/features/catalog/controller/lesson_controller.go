// internals/features/catalog/controller/lesson_controller.go
package controller

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/dto"
	"almanara_backend/internals/features/catalog/store"
	helper "almanara_backend/internals/helpers"
)

type LessonController struct {
	Store store.CatalogStore
}

// =========================================================
// LIST - GET /api/lessons?per_page=&search=&chapter_id=
// =========================================================
func (h *LessonController) List(c *fiber.Ctx) error {
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListLessons(c.UserContext(), store.ListOptions{
		ParentID: uint(c.QueryInt("chapter_id")),
		Search:   paging.Search,
		Limit:    paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list lessons")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// LIST (nested) - GET /api/chapters/:id/lessons
// =========================================================
func (h *LessonController) ListByChapter(c *fiber.Ctx) error {
	chapterID, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}
	paging := helper.ResolveListQuery(c, defaultPerPage, maxPerPage)

	rows, err := h.Store.ListLessons(c.UserContext(), store.ListOptions{
		ParentID: chapterID,
		Search:   paging.Search,
		Limit:    paging.PerPage,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list lessons")
	}
	return helper.JsonList(c, "", rows)
}

// =========================================================
// CREATE - POST /api/lessons  |  POST /api/chapters/:id/lessons
// =========================================================
func (h *LessonController) Create(c *fiber.Ctx) error {
	var req dto.LessonCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if raw := c.Params("id"); raw != "" {
		chapterID, err := helper.ParseID(c, "id")
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
		}
		req.ChapterID = chapterID
	}

	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.Store.CreateLesson(c.UserContext(), m); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create lesson")
	}
	return helper.JsonCreated(c, "Lesson created", m)
}

// =========================================================
// DETAIL - GET /api/lessons/:id
// =========================================================
func (h *LessonController) GetByID(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	row, err := h.Store.GetLesson(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Lesson not found")
	}
	return helper.JsonOK(c, "", row)
}

// =========================================================
// UPDATE - PUT /api/lessons/:id
// =========================================================
func (h *LessonController) Update(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	var req dto.LessonUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := h.Store.GetLesson(c.UserContext(), id)
	if err != nil {
		return mapStoreErr(c, err, "Lesson not found")
	}

	req.Apply(&row)
	if err := h.Store.SaveLesson(c.UserContext(), &row); err != nil {
		return mapStoreErr(c, err, "Lesson not found")
	}
	return helper.JsonUpdated(c, "Lesson updated", row)
}

// =========================================================
// DELETE - DELETE /api/lessons/:id
// =========================================================
func (h *LessonController) Delete(c *fiber.Ctx) error {
	id, err := helper.ParseID(c, "id")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid id")
	}

	if err := h.Store.DeleteLesson(c.UserContext(), id); err != nil {
		return mapStoreErr(c, err, "Lesson not found")
	}
	return helper.JsonDeleted(c, "Lesson deleted", fiber.Map{"id": id})
}
