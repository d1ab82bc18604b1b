// internals/features/catalog/store/memory/memory_store.go
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"almanara_backend/internals/features/catalog/model"
	"almanara_backend/internals/features/catalog/store"
)

type (
	// Store adalah mock persistence in-memory untuk development lokal.
	// Id monoton per tabel, data hidup selama proses berjalan saja.
	Store struct {
		categories *table[model.Category]
		courses    *table[model.Course]
		chapters   *table[model.Chapter]
		lessons    *table[model.Lesson]
	}

	table[T any] struct {
		t       map[uint]*T
		pkCount uint
		mutex   sync.RWMutex
	}
)

var _ store.CatalogStore = (*Store)(nil)

func Open() *Store {
	return &Store{
		categories: &table[model.Category]{t: make(map[uint]*model.Category)},
		courses:    &table[model.Course]{t: make(map[uint]*model.Course)},
		chapters:   &table[model.Chapter]{t: make(map[uint]*model.Chapter)},
		lessons:    &table[model.Lesson]{t: make(map[uint]*model.Lesson)},
	}
}

/* ===============================
   Generic table primitives
=================================*/

func (tb *table[T]) nextID() uint {
	tb.pkCount++
	return tb.pkCount
}

// sortedIDs: id monoton, jadi urutan id == urutan insert.
func (tb *table[T]) sortedIDs() []uint {
	ids := make([]uint, 0, len(tb.t))
	for id := range tb.t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func containsFold(title, q string) bool {
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(title), strings.ToLower(q))
}

/* ===============================
   Categories
=================================*/

func (s *Store) ListCategories(_ context.Context, opt store.ListOptions) ([]model.Category, error) {
	s.categories.mutex.RLock()
	defer s.categories.mutex.RUnlock()

	out := make([]model.Category, 0, len(s.categories.t))
	for _, id := range s.categories.sortedIDs() {
		row := s.categories.t[id]
		if !containsFold(row.Title, opt.Search) {
			continue
		}
		cp := *row
		cp.CoursesCount = s.countCoursesByCategory(cp.ID)
		out = append(out, cp)
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CreateCategory(_ context.Context, cat *model.Category) error {
	s.categories.mutex.Lock()
	defer s.categories.mutex.Unlock()

	now := time.Now()
	cat.ID = s.categories.nextID()
	cat.CreatedAt = now
	cat.UpdatedAt = now
	cp := *cat
	s.categories.t[cat.ID] = &cp
	return nil
}

func (s *Store) GetCategory(_ context.Context, id uint) (model.Category, error) {
	s.categories.mutex.RLock()
	defer s.categories.mutex.RUnlock()

	row, ok := s.categories.t[id]
	if !ok {
		return model.Category{}, store.ErrNotFound
	}
	cp := *row
	cp.CoursesCount = s.countCoursesByCategory(id)
	return cp, nil
}

func (s *Store) SaveCategory(_ context.Context, cat *model.Category) error {
	s.categories.mutex.Lock()
	defer s.categories.mutex.Unlock()

	old, ok := s.categories.t[cat.ID]
	if !ok {
		return store.ErrNotFound
	}
	cat.CreatedAt = old.CreatedAt
	cat.UpdatedAt = time.Now()
	cp := *cat
	s.categories.t[cat.ID] = &cp
	return nil
}

func (s *Store) DeleteCategory(_ context.Context, id uint) error {
	s.categories.mutex.Lock()
	defer s.categories.mutex.Unlock()

	if _, ok := s.categories.t[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.categories.t, id)
	return nil
}

/* ===============================
   Courses
=================================*/

func (s *Store) ListCourses(_ context.Context, opt store.ListOptions) ([]model.Course, error) {
	s.courses.mutex.RLock()
	defer s.courses.mutex.RUnlock()

	out := make([]model.Course, 0, len(s.courses.t))
	for _, id := range s.courses.sortedIDs() {
		row := s.courses.t[id]
		if opt.ParentID != 0 && row.CategoryID != opt.ParentID {
			continue
		}
		if !containsFold(row.Title, opt.Search) {
			continue
		}
		cp := *row
		cp.ChaptersCount = s.countChaptersByCourse(cp.ID)
		out = append(out, cp)
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CreateCourse(_ context.Context, course *model.Course) error {
	s.courses.mutex.Lock()
	defer s.courses.mutex.Unlock()

	// Parent category boleh belum ada (lenient, untuk seeding out-of-order).
	now := time.Now()
	course.ID = s.courses.nextID()
	course.CreatedAt = now
	course.UpdatedAt = now
	cp := *course
	s.courses.t[course.ID] = &cp
	return nil
}

func (s *Store) GetCourse(_ context.Context, id uint) (model.Course, error) {
	s.courses.mutex.RLock()
	defer s.courses.mutex.RUnlock()

	row, ok := s.courses.t[id]
	if !ok {
		return model.Course{}, store.ErrNotFound
	}
	cp := *row
	cp.ChaptersCount = s.countChaptersByCourse(id)
	return cp, nil
}

func (s *Store) SaveCourse(_ context.Context, course *model.Course) error {
	s.courses.mutex.Lock()
	defer s.courses.mutex.Unlock()

	old, ok := s.courses.t[course.ID]
	if !ok {
		return store.ErrNotFound
	}
	course.CreatedAt = old.CreatedAt
	course.UpdatedAt = time.Now()
	cp := *course
	s.courses.t[course.ID] = &cp
	return nil
}

func (s *Store) DeleteCourse(_ context.Context, id uint) error {
	s.courses.mutex.Lock()
	defer s.courses.mutex.Unlock()

	if _, ok := s.courses.t[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.courses.t, id)
	return nil
}

/* ===============================
   Chapters
=================================*/

func (s *Store) ListChapters(_ context.Context, opt store.ListOptions) ([]model.Chapter, error) {
	s.chapters.mutex.RLock()
	defer s.chapters.mutex.RUnlock()

	out := make([]model.Chapter, 0, len(s.chapters.t))
	for _, id := range s.chapters.sortedIDs() {
		row := s.chapters.t[id]
		if opt.ParentID != 0 && row.CourseID != opt.ParentID {
			continue
		}
		if !containsFold(row.Title, opt.Search) {
			continue
		}
		out = append(out, *row)
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CreateChapter(_ context.Context, chapter *model.Chapter) error {
	s.chapters.mutex.Lock()
	defer s.chapters.mutex.Unlock()

	now := time.Now()
	chapter.ID = s.chapters.nextID()
	chapter.CreatedAt = now
	chapter.UpdatedAt = now
	cp := *chapter
	s.chapters.t[chapter.ID] = &cp
	return nil
}

func (s *Store) GetChapter(_ context.Context, id uint) (model.Chapter, error) {
	s.chapters.mutex.RLock()
	defer s.chapters.mutex.RUnlock()

	row, ok := s.chapters.t[id]
	if !ok {
		return model.Chapter{}, store.ErrNotFound
	}
	return *row, nil
}

func (s *Store) SaveChapter(_ context.Context, chapter *model.Chapter) error {
	s.chapters.mutex.Lock()
	defer s.chapters.mutex.Unlock()

	old, ok := s.chapters.t[chapter.ID]
	if !ok {
		return store.ErrNotFound
	}
	chapter.CreatedAt = old.CreatedAt
	chapter.UpdatedAt = time.Now()
	cp := *chapter
	s.chapters.t[chapter.ID] = &cp
	return nil
}

func (s *Store) DeleteChapter(_ context.Context, id uint) error {
	s.chapters.mutex.Lock()
	defer s.chapters.mutex.Unlock()

	if _, ok := s.chapters.t[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.chapters.t, id)
	return nil
}

/* ===============================
   Lessons
=================================*/

func (s *Store) ListLessons(_ context.Context, opt store.ListOptions) ([]model.Lesson, error) {
	s.lessons.mutex.RLock()
	defer s.lessons.mutex.RUnlock()

	out := make([]model.Lesson, 0, len(s.lessons.t))
	for _, id := range s.lessons.sortedIDs() {
		row := s.lessons.t[id]
		if opt.ParentID != 0 && row.ChapterID != opt.ParentID {
			continue
		}
		if !containsFold(row.Title, opt.Search) {
			continue
		}
		out = append(out, *row)
		if opt.Limit > 0 && len(out) >= opt.Limit {
			break
		}
	}
	return out, nil
}

func (s *Store) CreateLesson(_ context.Context, lesson *model.Lesson) error {
	s.lessons.mutex.Lock()
	defer s.lessons.mutex.Unlock()

	now := time.Now()
	lesson.ID = s.lessons.nextID()
	lesson.CreatedAt = now
	lesson.UpdatedAt = now
	cp := *lesson
	s.lessons.t[lesson.ID] = &cp
	return nil
}

func (s *Store) GetLesson(_ context.Context, id uint) (model.Lesson, error) {
	s.lessons.mutex.RLock()
	defer s.lessons.mutex.RUnlock()

	row, ok := s.lessons.t[id]
	if !ok {
		return model.Lesson{}, store.ErrNotFound
	}
	return *row, nil
}

func (s *Store) SaveLesson(_ context.Context, lesson *model.Lesson) error {
	s.lessons.mutex.Lock()
	defer s.lessons.mutex.Unlock()

	old, ok := s.lessons.t[lesson.ID]
	if !ok {
		return store.ErrNotFound
	}
	lesson.CreatedAt = old.CreatedAt
	lesson.UpdatedAt = time.Now()
	cp := *lesson
	s.lessons.t[lesson.ID] = &cp
	return nil
}

func (s *Store) DeleteLesson(_ context.Context, id uint) error {
	s.lessons.mutex.Lock()
	defer s.lessons.mutex.Unlock()

	if _, ok := s.lessons.t[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.lessons.t, id)
	return nil
}

/* ===============================
   Live aggregates
=================================*/

func (s *Store) countCoursesByCategory(categoryID uint) int64 {
	s.courses.mutex.RLock()
	defer s.courses.mutex.RUnlock()

	var n int64
	for _, c := range s.courses.t {
		if c.CategoryID == categoryID {
			n++
		}
	}
	return n
}

func (s *Store) countChaptersByCourse(courseID uint) int64 {
	s.chapters.mutex.RLock()
	defer s.chapters.mutex.RUnlock()

	var n int64
	for _, ch := range s.chapters.t {
		if ch.CourseID == courseID {
			n++
		}
	}
	return n
}
