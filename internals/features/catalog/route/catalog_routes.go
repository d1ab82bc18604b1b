// internals/features/catalog/route/catalog_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"

	"almanara_backend/internals/features/catalog/controller"
	"almanara_backend/internals/features/catalog/store"
)

// CatalogRoutes memasang endpoint mock catalog (dev stand-in untuk backend API).
func CatalogRoutes(api fiber.Router, st store.CatalogStore) {
	categoryCtrl := &controller.CategoryController{Store: st}
	courseCtrl := &controller.CourseController{Store: st}
	chapterCtrl := &controller.ChapterController{Store: st}
	lessonCtrl := &controller.LessonController{Store: st}

	// ===================== CATEGORIES / DIPLOMAS =====================
	categories := api.Group("/categories")
	categories.Get("/", categoryCtrl.List)
	categories.Post("/", categoryCtrl.Create)
	categories.Get("/:id", categoryCtrl.GetByID)
	categories.Put("/:id", categoryCtrl.Update)
	categories.Delete("/:id", categoryCtrl.Delete)
	categories.Get("/:id/courses", courseCtrl.ListByCategory)
	categories.Post("/:id/courses", courseCtrl.Create)

	// ===================== COURSES =====================
	courses := api.Group("/courses")
	courses.Get("/", courseCtrl.List)
	courses.Post("/", courseCtrl.Create)
	courses.Get("/:id", courseCtrl.GetByID)
	courses.Put("/:id", courseCtrl.Update)
	courses.Delete("/:id", courseCtrl.Delete)
	courses.Get("/:id/chapters", chapterCtrl.ListByCourse)
	courses.Post("/:id/chapters", chapterCtrl.Create)

	// ===================== CHAPTERS =====================
	chapters := api.Group("/chapters")
	chapters.Get("/", chapterCtrl.List)
	chapters.Post("/", chapterCtrl.Create)
	chapters.Get("/:id", chapterCtrl.GetByID)
	chapters.Put("/:id", chapterCtrl.Update)
	chapters.Delete("/:id", chapterCtrl.Delete)
	chapters.Get("/:id/lessons", lessonCtrl.ListByChapter)
	chapters.Post("/:id/lessons", lessonCtrl.Create)

	// ===================== LESSONS =====================
	lessons := api.Group("/lessons")
	lessons.Get("/", lessonCtrl.List)
	lessons.Post("/", lessonCtrl.Create)
	lessons.Get("/:id", lessonCtrl.GetByID)
	lessons.Put("/:id", lessonCtrl.Update)
	lessons.Delete("/:id", lessonCtrl.Delete)
}
