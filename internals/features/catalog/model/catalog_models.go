// internals/features/catalog/model/catalog_models.go
package model

import "time"

// Publish status lifecycle: draft → published → archived.
const (
	StatusDraft     = "draft"
	StatusPublished = "published"
	StatusArchived  = "archived"
)

func ValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusPublished, StatusArchived:
		return true
	}
	return false
}

// Category adalah diploma/program induk yang menaungi beberapa course.
type Category struct {
	ID           uint      `json:"id" gorm:"column:category_id;primaryKey;autoIncrement"`
	Title        string    `json:"title" gorm:"column:category_title;not null"`
	Description  string    `json:"description" gorm:"column:category_description"`
	Price        float64   `json:"price" gorm:"column:category_price;default:0"`
	IsFree       bool      `json:"is_free" gorm:"column:category_is_free;default:false"`
	Status       string    `json:"status" gorm:"column:category_status;default:draft"`
	InstructorID *uint     `json:"instructor_id,omitempty" gorm:"column:category_instructor_id"`
	CoverImage   *string   `json:"cover_image,omitempty" gorm:"column:category_cover_image"`
	CoursesCount int64     `json:"courses_count" gorm:"-"` // live aggregate, never stored
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Category) TableName() string { return "categories" }

type Course struct {
	ID            uint      `json:"id" gorm:"column:course_id;primaryKey;autoIncrement"`
	CategoryID    uint      `json:"category_id" gorm:"column:course_category_id;index"`
	Title         string    `json:"title" gorm:"column:course_title;not null"`
	Description   string    `json:"description" gorm:"column:course_description"`
	Price         float64   `json:"price" gorm:"column:course_price;default:0"`
	IsFree        bool      `json:"is_free" gorm:"column:course_is_free;default:false"`
	Status        string    `json:"status" gorm:"column:course_status;default:draft"`
	InstructorID  *uint     `json:"instructor_id,omitempty" gorm:"column:course_instructor_id"`
	CoverImage    *string   `json:"cover_image,omitempty" gorm:"column:course_cover_image"`
	VideoURL      *string   `json:"video_url,omitempty" gorm:"column:course_video_url"`
	Duration      *int      `json:"duration,omitempty" gorm:"column:course_duration"`
	Order         *int      `json:"order,omitempty" gorm:"column:course_order"`
	ChaptersCount int64     `json:"chapters_count" gorm:"-"` // live aggregate, never stored
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Course) TableName() string { return "courses" }

// Chapter: subdivisi course. Field order hanyalah display hint (tanpa
// uniqueness atau sorting).
type Chapter struct {
	ID          uint      `json:"id" gorm:"column:chapter_id;primaryKey;autoIncrement"`
	CourseID    uint      `json:"course_id" gorm:"column:chapter_course_id;index"`
	Title       string    `json:"title" gorm:"column:chapter_title;not null"`
	Description string    `json:"description" gorm:"column:chapter_description"`
	Order       *int      `json:"order,omitempty" gorm:"column:chapter_order"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Chapter) TableName() string { return "chapters" }

type Lesson struct {
	ID          uint      `json:"id" gorm:"column:lesson_id;primaryKey;autoIncrement"`
	ChapterID   uint      `json:"chapter_id" gorm:"column:lesson_chapter_id;index"`
	Title       string    `json:"title" gorm:"column:lesson_title;not null"`
	Description string    `json:"description" gorm:"column:lesson_description"`
	Content     string    `json:"content" gorm:"column:lesson_content"`
	VideoURL    *string   `json:"video_url,omitempty" gorm:"column:lesson_video_url"`
	Order       *int      `json:"order,omitempty" gorm:"column:lesson_order"`
	IsVisible   bool      `json:"is_visible" gorm:"column:lesson_is_visible;default:true"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Lesson) TableName() string { return "lessons" }
