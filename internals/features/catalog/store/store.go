// internals/features/catalog/store/store.go
package store

import (
	"context"
	"errors"

	"almanara_backend/internals/features/catalog/model"
)

var ErrNotFound = errors.New("record not found")

// ListOptions: filter opsional untuk listing.
//   - ParentID 0 = tanpa filter parent
//   - Search   = substring match (case-insensitive) pada title
//   - Limit    = batas jumlah baris (0 = tanpa batas)
type ListOptions struct {
	ParentID uint
	Search   string
	Limit    int
}

// CatalogStore adalah store eksplisit yang di-inject ke controller,
// sehingga mock in-memory bisa ditukar dengan database asli di balik
// interface yang sama.
//
// Semantik bersama:
//   - Create: assign id auto-increment + stamp created/updated.
//   - Save:   replace row yang ada (ErrNotFound jika tidak ada), refresh updated.
//   - Delete: ErrNotFound jika tidak ada; tanpa cascade ke anak.
//   - Field *_count dihitung live saat Get/List (tidak pernah disimpan).
type CatalogStore interface {
	ListCategories(ctx context.Context, opt ListOptions) ([]model.Category, error)
	CreateCategory(ctx context.Context, cat *model.Category) error
	GetCategory(ctx context.Context, id uint) (model.Category, error)
	SaveCategory(ctx context.Context, cat *model.Category) error
	DeleteCategory(ctx context.Context, id uint) error

	ListCourses(ctx context.Context, opt ListOptions) ([]model.Course, error)
	CreateCourse(ctx context.Context, course *model.Course) error
	GetCourse(ctx context.Context, id uint) (model.Course, error)
	SaveCourse(ctx context.Context, course *model.Course) error
	DeleteCourse(ctx context.Context, id uint) error

	ListChapters(ctx context.Context, opt ListOptions) ([]model.Chapter, error)
	CreateChapter(ctx context.Context, chapter *model.Chapter) error
	GetChapter(ctx context.Context, id uint) (model.Chapter, error)
	SaveChapter(ctx context.Context, chapter *model.Chapter) error
	DeleteChapter(ctx context.Context, id uint) error

	ListLessons(ctx context.Context, opt ListOptions) ([]model.Lesson, error)
	CreateLesson(ctx context.Context, lesson *model.Lesson) error
	GetLesson(ctx context.Context, id uint) (model.Lesson, error)
	SaveLesson(ctx context.Context, lesson *model.Lesson) error
	DeleteLesson(ctx context.Context, id uint) error
}
