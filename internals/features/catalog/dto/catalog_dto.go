// internals/features/catalog/dto/catalog_dto.go
package dto

import (
	"fmt"
	"strings"

	"almanara_backend/internals/features/catalog/model"
)

/* =========================
   FlexBool
   ========================= */

// FlexBool menerima true/false, 1/0, dan "1"/"true"/"0"/"false" — satu titik
// koersi eksplisit di boundary, bukan cek ad-hoc berulang di handler.
type FlexBool bool

func (b *FlexBool) UnmarshalJSON(data []byte) error {
	return b.set(strings.Trim(string(data), `"`))
}

// UnmarshalText dipakai oleh form decoder.
func (b *FlexBool) UnmarshalText(text []byte) error {
	return b.set(string(text))
}

func (b *FlexBool) set(raw string) error {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		*b = true
	case "false", "0", "off", "no", "", "null":
		*b = false
	default:
		return fmt.Errorf("invalid boolean value %q", raw)
	}
	return nil
}

func (b FlexBool) Bool() bool { return bool(b) }

func trimPtr(p **string) {
	if *p == nil {
		return
	}
	v := strings.TrimSpace(**p)
	if v == "" {
		*p = nil
	} else {
		*p = &v
	}
}

/* =========================
   Category / Diploma
   ========================= */

type CategoryCreateRequest struct {
	Title        string    `json:"title" form:"title" validate:"required"`
	Description  string    `json:"description" form:"description"`
	Price        float64   `json:"price" form:"price" validate:"gte=0"`
	IsFree       *FlexBool `json:"is_free" form:"is_free"`
	Status       string    `json:"status" form:"status" validate:"omitempty,oneof=draft published archived"`
	InstructorID *uint     `json:"instructor_id" form:"instructor_id"`
	CoverImage   *string   `json:"cover_image" form:"cover_image"`
}

func (r *CategoryCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	trimPtr(&r.CoverImage)
}

func (r *CategoryCreateRequest) ToModel() *model.Category {
	status := r.Status
	if status == "" {
		status = model.StatusDraft
	}
	isFree := false
	if r.IsFree != nil {
		isFree = r.IsFree.Bool()
	}
	return &model.Category{
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		IsFree:       isFree,
		Status:       status,
		InstructorID: r.InstructorID,
		CoverImage:   r.CoverImage,
	}
}

type CategoryUpdateRequest struct {
	Title        *string   `json:"title" form:"title"`
	Description  *string   `json:"description" form:"description"`
	Price        *float64  `json:"price" form:"price" validate:"omitempty,gte=0"`
	IsFree       *FlexBool `json:"is_free" form:"is_free"`
	Status       *string   `json:"status" form:"status" validate:"omitempty,oneof=draft published archived"`
	InstructorID *uint     `json:"instructor_id" form:"instructor_id"`
	CoverImage   *string   `json:"cover_image" form:"cover_image"`
}

func (r *CategoryUpdateRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.CoverImage)
	if r.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &v
	}
}

// Apply: setiap field yang dikirim menimpa field tersimpan, sisanya dibiarkan.
func (r *CategoryUpdateRequest) Apply(m *model.Category) {
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.IsFree != nil {
		m.IsFree = r.IsFree.Bool()
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.InstructorID != nil {
		m.InstructorID = r.InstructorID
	}
	if r.CoverImage != nil {
		m.CoverImage = r.CoverImage
	}
}

/* =========================
   Course
   ========================= */

type CourseCreateRequest struct {
	CategoryID   uint      `json:"category_id" form:"category_id"`
	Title        string    `json:"title" form:"title" validate:"required"`
	Description  string    `json:"description" form:"description"`
	Price        float64   `json:"price" form:"price" validate:"gte=0"`
	IsFree       *FlexBool `json:"is_free" form:"is_free"`
	Status       string    `json:"status" form:"status" validate:"omitempty,oneof=draft published archived"`
	InstructorID *uint     `json:"instructor_id" form:"instructor_id"`
	CoverImage   *string   `json:"cover_image" form:"cover_image"`
	VideoURL     *string   `json:"video_url" form:"video_url"`
	Duration     *int      `json:"duration" form:"duration"`
	Order        *int      `json:"order" form:"order"`
}

func (r *CourseCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Status = strings.ToLower(strings.TrimSpace(r.Status))
	trimPtr(&r.CoverImage)
	trimPtr(&r.VideoURL)
}

func (r *CourseCreateRequest) ToModel() *model.Course {
	status := r.Status
	if status == "" {
		status = model.StatusDraft
	}
	isFree := false
	if r.IsFree != nil {
		isFree = r.IsFree.Bool()
	}
	return &model.Course{
		CategoryID:   r.CategoryID,
		Title:        r.Title,
		Description:  r.Description,
		Price:        r.Price,
		IsFree:       isFree,
		Status:       status,
		InstructorID: r.InstructorID,
		CoverImage:   r.CoverImage,
		VideoURL:     r.VideoURL,
		Duration:     r.Duration,
		Order:        r.Order,
	}
}

type CourseUpdateRequest struct {
	CategoryID   *uint     `json:"category_id" form:"category_id"`
	Title        *string   `json:"title" form:"title"`
	Description  *string   `json:"description" form:"description"`
	Price        *float64  `json:"price" form:"price" validate:"omitempty,gte=0"`
	IsFree       *FlexBool `json:"is_free" form:"is_free"`
	Status       *string   `json:"status" form:"status" validate:"omitempty,oneof=draft published archived"`
	InstructorID *uint     `json:"instructor_id" form:"instructor_id"`
	CoverImage   *string   `json:"cover_image" form:"cover_image"`
	VideoURL     *string   `json:"video_url" form:"video_url"`
	Duration     *int      `json:"duration" form:"duration"`
	Order        *int      `json:"order" form:"order"`
}

func (r *CourseUpdateRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.CoverImage)
	trimPtr(&r.VideoURL)
	if r.Status != nil {
		v := strings.ToLower(strings.TrimSpace(*r.Status))
		r.Status = &v
	}
}

func (r *CourseUpdateRequest) Apply(m *model.Course) {
	if r.CategoryID != nil {
		m.CategoryID = *r.CategoryID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Price != nil {
		m.Price = *r.Price
	}
	if r.IsFree != nil {
		m.IsFree = r.IsFree.Bool()
	}
	if r.Status != nil {
		m.Status = *r.Status
	}
	if r.InstructorID != nil {
		m.InstructorID = r.InstructorID
	}
	if r.CoverImage != nil {
		m.CoverImage = r.CoverImage
	}
	if r.VideoURL != nil {
		m.VideoURL = r.VideoURL
	}
	if r.Duration != nil {
		m.Duration = r.Duration
	}
	if r.Order != nil {
		m.Order = r.Order
	}
}

/* =========================
   Chapter
   ========================= */

type ChapterCreateRequest struct {
	CourseID    uint   `json:"course_id" form:"course_id"`
	Title       string `json:"title" form:"title" validate:"required"`
	Description string `json:"description" form:"description"`
	Order       *int   `json:"order" form:"order"`
}

func (r *ChapterCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *ChapterCreateRequest) ToModel() *model.Chapter {
	return &model.Chapter{
		CourseID:    r.CourseID,
		Title:       r.Title,
		Description: r.Description,
		Order:       r.Order,
	}
}

type ChapterUpdateRequest struct {
	CourseID    *uint   `json:"course_id" form:"course_id"`
	Title       *string `json:"title" form:"title"`
	Description *string `json:"description" form:"description"`
	Order       *int    `json:"order" form:"order"`
}

func (r *ChapterUpdateRequest) Normalize() {
	trimPtr(&r.Title)
}

func (r *ChapterUpdateRequest) Apply(m *model.Chapter) {
	if r.CourseID != nil {
		m.CourseID = *r.CourseID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Order != nil {
		m.Order = r.Order
	}
}

/* =========================
   Lesson
   ========================= */

type LessonCreateRequest struct {
	ChapterID   uint      `json:"chapter_id" form:"chapter_id"`
	Title       string    `json:"title" form:"title" validate:"required"`
	Description string    `json:"description" form:"description"`
	Content     string    `json:"content" form:"content"`
	VideoURL    *string   `json:"video_url" form:"video_url"`
	Order       *int      `json:"order" form:"order"`
	IsVisible   *FlexBool `json:"is_visible" form:"is_visible"`
}

func (r *LessonCreateRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	trimPtr(&r.VideoURL)
}

func (r *LessonCreateRequest) ToModel() *model.Lesson {
	isVisible := true
	if r.IsVisible != nil {
		isVisible = r.IsVisible.Bool()
	}
	return &model.Lesson{
		ChapterID:   r.ChapterID,
		Title:       r.Title,
		Description: r.Description,
		Content:     r.Content,
		VideoURL:    r.VideoURL,
		Order:       r.Order,
		IsVisible:   isVisible,
	}
}

type LessonUpdateRequest struct {
	ChapterID   *uint     `json:"chapter_id" form:"chapter_id"`
	Title       *string   `json:"title" form:"title"`
	Description *string   `json:"description" form:"description"`
	Content     *string   `json:"content" form:"content"`
	VideoURL    *string   `json:"video_url" form:"video_url"`
	Order       *int      `json:"order" form:"order"`
	IsVisible   *FlexBool `json:"is_visible" form:"is_visible"`
}

func (r *LessonUpdateRequest) Normalize() {
	trimPtr(&r.Title)
	trimPtr(&r.VideoURL)
}

func (r *LessonUpdateRequest) Apply(m *model.Lesson) {
	if r.ChapterID != nil {
		m.ChapterID = *r.ChapterID
	}
	if r.Title != nil {
		m.Title = *r.Title
	}
	if r.Description != nil {
		m.Description = strings.TrimSpace(*r.Description)
	}
	if r.Content != nil {
		m.Content = *r.Content
	}
	if r.VideoURL != nil {
		m.VideoURL = r.VideoURL
	}
	if r.Order != nil {
		m.Order = r.Order
	}
	if r.IsVisible != nil {
		m.IsVisible = r.IsVisible.Bool()
	}
}
