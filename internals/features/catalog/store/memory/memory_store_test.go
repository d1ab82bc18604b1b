package memory

import (
	"context"
	"errors"
	"testing"

	"almanara_backend/internals/features/catalog/model"
	"almanara_backend/internals/features/catalog/store"
)

func TestCreateAssignsMonotonicIDs(t *testing.T) {
	s := Open()
	ctx := context.Background()

	first := &model.Category{Title: "Fiqh"}
	second := &model.Category{Title: "Tafsir"}
	if err := s.CreateCategory(ctx, first); err != nil {
		t.Fatalf("create first: %v", err)
	}
	if err := s.CreateCategory(ctx, second); err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.ID != 1 || second.ID != 2 {
		t.Fatalf("expected ids 1,2 got %d,%d", first.ID, second.ID)
	}
	if first.CreatedAt.IsZero() || first.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be stamped on create")
	}

	// Id tidak boleh dipakai ulang setelah delete.
	if err := s.DeleteCategory(ctx, second.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	third := &model.Category{Title: "Hadith"}
	if err := s.CreateCategory(ctx, third); err != nil {
		t.Fatalf("create third: %v", err)
	}
	if third.ID != 3 {
		t.Fatalf("expected id 3 after delete, got %d", third.ID)
	}
}

func TestListSearchIsCaseInsensitive(t *testing.T) {
	s := Open()
	ctx := context.Background()

	for _, title := range []string{"Arabic Grammar", "Quran Recitation", "Advanced Arabic"} {
		if err := s.CreateCourse(ctx, &model.Course{Title: title}); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}

	out, err := s.ListCourses(ctx, store.ListOptions{Search: "ARABIC"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}
	if out[0].Title != "Arabic Grammar" || out[1].Title != "Advanced Arabic" {
		t.Fatalf("unexpected order: %q, %q", out[0].Title, out[1].Title)
	}
}

func TestListLimit(t *testing.T) {
	s := Open()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		if err := s.CreateLesson(ctx, &model.Lesson{Title: "Lesson"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	out, err := s.ListLessons(ctx, store.ListOptions{Limit: 3})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(out))
	}
	if out[0].ID != 1 || out[2].ID != 3 {
		t.Fatalf("expected insertion order, got ids %d..%d", out[0].ID, out[2].ID)
	}
}

func TestSaveAndDeleteNotFound(t *testing.T) {
	s := Open()
	ctx := context.Background()

	if err := s.SaveCourse(ctx, &model.Course{ID: 99, Title: "Ghost"}); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on save, got %v", err)
	}
	if err := s.DeleteCourse(ctx, 99); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}

	// Koleksi tidak berubah setelah operasi gagal.
	out, err := s.ListCourses(ctx, store.ListOptions{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("expected empty collection, got %d rows", len(out))
	}
}

func TestSavePreservesCreatedAt(t *testing.T) {
	s := Open()
	ctx := context.Background()

	ch := &model.Chapter{CourseID: 1, Title: "Intro"}
	if err := s.CreateChapter(ctx, ch); err != nil {
		t.Fatalf("create: %v", err)
	}
	created := ch.CreatedAt

	ch.Title = "Introduction"
	if err := s.SaveChapter(ctx, ch); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := s.GetChapter(ctx, ch.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Introduction" {
		t.Fatalf("title not updated: %q", got.Title)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed on save")
	}
	if got.UpdatedAt.Before(created) {
		t.Fatalf("updated_at not refreshed")
	}
}

func TestLiveCounts(t *testing.T) {
	s := Open()
	ctx := context.Background()

	cat := &model.Category{Title: "Diploma"}
	if err := s.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("create category: %v", err)
	}

	c1 := &model.Course{CategoryID: cat.ID, Title: "Course A"}
	c2 := &model.Course{CategoryID: cat.ID, Title: "Course B"}
	for _, c := range []*model.Course{c1, c2} {
		if err := s.CreateCourse(ctx, c); err != nil {
			t.Fatalf("create course: %v", err)
		}
	}
	if err := s.CreateChapter(ctx, &model.Chapter{CourseID: c1.ID, Title: "Ch 1"}); err != nil {
		t.Fatalf("create chapter: %v", err)
	}

	got, err := s.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if got.CoursesCount != 2 {
		t.Fatalf("expected courses_count 2, got %d", got.CoursesCount)
	}

	course, err := s.GetCourse(ctx, c1.ID)
	if err != nil {
		t.Fatalf("get course: %v", err)
	}
	if course.ChaptersCount != 1 {
		t.Fatalf("expected chapters_count 1, got %d", course.ChaptersCount)
	}

	// Count mengikuti delete, tidak pernah disimpan.
	if err := s.DeleteCourse(ctx, c2.ID); err != nil {
		t.Fatalf("delete course: %v", err)
	}
	got, err = s.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get category: %v", err)
	}
	if got.CoursesCount != 1 {
		t.Fatalf("expected courses_count 1 after delete, got %d", got.CoursesCount)
	}
}

func TestOrphanCreateIsLenient(t *testing.T) {
	s := Open()
	ctx := context.Background()

	// Parent belum ada: create tetap sukses (seeding out-of-order).
	course := &model.Course{CategoryID: 42, Title: "Orphan"}
	if err := s.CreateCourse(ctx, course); err != nil {
		t.Fatalf("create orphan course: %v", err)
	}
	if course.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
}

func TestReadsReturnCopies(t *testing.T) {
	s := Open()
	ctx := context.Background()

	cat := &model.Category{Title: "Original"}
	if err := s.CreateCategory(ctx, cat); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	got.Title = "Mutated"

	again, err := s.GetCategory(ctx, cat.ID)
	if err != nil {
		t.Fatalf("get again: %v", err)
	}
	if again.Title != "Original" {
		t.Fatalf("store row mutated through returned copy")
	}
}
