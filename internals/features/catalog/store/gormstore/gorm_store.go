// internals/features/catalog/store/gormstore/gorm_store.go
package gormstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"almanara_backend/internals/features/catalog/model"
	"almanara_backend/internals/features/catalog/store"
)

// Store: implementasi CatalogStore di atas Postgres/GORM, dipakai saat
// DATABASE_URL di-set (menggantikan mock in-memory di balik interface yang sama).
type Store struct {
	db *gorm.DB
}

var _ store.CatalogStore = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// AutoMigrate menyiapkan tabel katalog.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Category{},
		&model.Course{},
		&model.Chapter{},
		&model.Lesson{},
	)
}

func applySearch(q *gorm.DB, column, search string) *gorm.DB {
	if strings.TrimSpace(search) == "" {
		return q
	}
	return q.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(search)+"%")
}

func applyLimit(q *gorm.DB, limit int) *gorm.DB {
	if limit > 0 {
		return q.Limit(limit)
	}
	return q
}

/* ===============================
   Categories
=================================*/

func (s *Store) ListCategories(ctx context.Context, opt store.ListOptions) ([]model.Category, error) {
	q := s.db.WithContext(ctx).Model(&model.Category{}).Order("category_id ASC")
	q = applySearch(q, "category_title", opt.Search)
	q = applyLimit(q, opt.Limit)

	var rows []model.Category
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		n, err := s.countCoursesByCategory(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		rows[i].CoursesCount = n
	}
	return rows, nil
}

func (s *Store) CreateCategory(ctx context.Context, cat *model.Category) error {
	now := time.Now()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	return s.db.WithContext(ctx).Create(cat).Error
}

func (s *Store) GetCategory(ctx context.Context, id uint) (model.Category, error) {
	var row model.Category
	if err := s.db.WithContext(ctx).First(&row, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Category{}, store.ErrNotFound
		}
		return model.Category{}, err
	}
	n, err := s.countCoursesByCategory(ctx, id)
	if err != nil {
		return model.Category{}, err
	}
	row.CoursesCount = n
	return row, nil
}

func (s *Store) SaveCategory(ctx context.Context, cat *model.Category) error {
	cat.UpdatedAt = time.Now()
	res := s.db.WithContext(ctx).Model(&model.Category{}).
		Where("category_id = ?", cat.ID).
		Select("*").Omit("category_id", "created_at").
		Updates(cat)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Category{}, "category_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) countCoursesByCategory(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Course{}).
		Where("course_category_id = ?", id).Count(&n).Error
	return n, err
}

/* ===============================
   Courses
=================================*/

func (s *Store) ListCourses(ctx context.Context, opt store.ListOptions) ([]model.Course, error) {
	q := s.db.WithContext(ctx).Model(&model.Course{}).Order("course_id ASC")
	if opt.ParentID != 0 {
		q = q.Where("course_category_id = ?", opt.ParentID)
	}
	q = applySearch(q, "course_title", opt.Search)
	q = applyLimit(q, opt.Limit)

	var rows []model.Course
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		n, err := s.countChaptersByCourse(ctx, rows[i].ID)
		if err != nil {
			return nil, err
		}
		rows[i].ChaptersCount = n
	}
	return rows, nil
}

func (s *Store) CreateCourse(ctx context.Context, course *model.Course) error {
	now := time.Now()
	course.CreatedAt = now
	course.UpdatedAt = now
	return s.db.WithContext(ctx).Create(course).Error
}

func (s *Store) GetCourse(ctx context.Context, id uint) (model.Course, error) {
	var row model.Course
	if err := s.db.WithContext(ctx).First(&row, "course_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Course{}, store.ErrNotFound
		}
		return model.Course{}, err
	}
	n, err := s.countChaptersByCourse(ctx, id)
	if err != nil {
		return model.Course{}, err
	}
	row.ChaptersCount = n
	return row, nil
}

func (s *Store) SaveCourse(ctx context.Context, course *model.Course) error {
	course.UpdatedAt = time.Now()
	res := s.db.WithContext(ctx).Model(&model.Course{}).
		Where("course_id = ?", course.ID).
		Select("*").Omit("course_id", "created_at").
		Updates(course)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteCourse(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Course{}, "course_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) countChaptersByCourse(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Chapter{}).
		Where("chapter_course_id = ?", id).Count(&n).Error
	return n, err
}

/* ===============================
   Chapters
=================================*/

func (s *Store) ListChapters(ctx context.Context, opt store.ListOptions) ([]model.Chapter, error) {
	q := s.db.WithContext(ctx).Model(&model.Chapter{}).Order("chapter_id ASC")
	if opt.ParentID != 0 {
		q = q.Where("chapter_course_id = ?", opt.ParentID)
	}
	q = applySearch(q, "chapter_title", opt.Search)
	q = applyLimit(q, opt.Limit)

	var rows []model.Chapter
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) CreateChapter(ctx context.Context, chapter *model.Chapter) error {
	now := time.Now()
	chapter.CreatedAt = now
	chapter.UpdatedAt = now
	return s.db.WithContext(ctx).Create(chapter).Error
}

func (s *Store) GetChapter(ctx context.Context, id uint) (model.Chapter, error) {
	var row model.Chapter
	if err := s.db.WithContext(ctx).First(&row, "chapter_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Chapter{}, store.ErrNotFound
		}
		return model.Chapter{}, err
	}
	return row, nil
}

func (s *Store) SaveChapter(ctx context.Context, chapter *model.Chapter) error {
	chapter.UpdatedAt = time.Now()
	res := s.db.WithContext(ctx).Model(&model.Chapter{}).
		Where("chapter_id = ?", chapter.ID).
		Select("*").Omit("chapter_id", "created_at").
		Updates(chapter)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteChapter(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Chapter{}, "chapter_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

/* ===============================
   Lessons
=================================*/

func (s *Store) ListLessons(ctx context.Context, opt store.ListOptions) ([]model.Lesson, error) {
	q := s.db.WithContext(ctx).Model(&model.Lesson{}).Order("lesson_id ASC")
	if opt.ParentID != 0 {
		q = q.Where("lesson_chapter_id = ?", opt.ParentID)
	}
	q = applySearch(q, "lesson_title", opt.Search)
	q = applyLimit(q, opt.Limit)

	var rows []model.Lesson
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *Store) CreateLesson(ctx context.Context, lesson *model.Lesson) error {
	now := time.Now()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now
	return s.db.WithContext(ctx).Create(lesson).Error
}

func (s *Store) GetLesson(ctx context.Context, id uint) (model.Lesson, error) {
	var row model.Lesson
	if err := s.db.WithContext(ctx).First(&row, "lesson_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return model.Lesson{}, store.ErrNotFound
		}
		return model.Lesson{}, err
	}
	return row, nil
}

func (s *Store) SaveLesson(ctx context.Context, lesson *model.Lesson) error {
	lesson.UpdatedAt = time.Now()
	res := s.db.WithContext(ctx).Model(&model.Lesson{}).
		Where("lesson_id = ?", lesson.ID).
		Select("*").Omit("lesson_id", "created_at").
		Updates(lesson)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) DeleteLesson(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&model.Lesson{}, "lesson_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
