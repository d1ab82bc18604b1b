// internals/features/certificates/dto/certificate_dto.go
package dto

import (
	"strings"
	"time"
)

const (
	TypeCourse  = "course"
	TypeDiploma = "diploma"
)

// CertificatePayload adalah record kelulusan dari backend yang akan dirender.
// Untuk type=course dipakai course_id/course_title; untuk diploma
// category_id/category_title.
type CertificatePayload struct {
	ID                uint    `json:"id" validate:"required"`
	UserID            uint    `json:"user_id"`
	CourseID          uint    `json:"course_id"`
	CategoryID        uint    `json:"category_id"`
	CourseTitle       string  `json:"course_title"`
	CategoryTitle     string  `json:"category_title"`
	UserName          string  `json:"user_name"`
	VerificationToken string  `json:"verification_token"`
	VerificationURL   string  `json:"verification_url"`
	CompletedAt       *string `json:"completed_at"`
	IssuedAt          *string `json:"issued_at"`
}

type GenerateCertificateRequest struct {
	Type        string             `json:"type" validate:"required,oneof=course diploma"`
	Certificate CertificatePayload `json:"certificate"`
}

func (r *GenerateCertificateRequest) Normalize() {
	r.Type = strings.ToLower(strings.TrimSpace(r.Type))
	r.Certificate.CourseTitle = strings.TrimSpace(r.Certificate.CourseTitle)
	r.Certificate.CategoryTitle = strings.TrimSpace(r.Certificate.CategoryTitle)
	r.Certificate.UserName = strings.TrimSpace(r.Certificate.UserName)
	r.Certificate.VerificationToken = strings.TrimSpace(r.Certificate.VerificationToken)
	r.Certificate.VerificationURL = strings.TrimSpace(r.Certificate.VerificationURL)
}

// Title memilih judul sesuai type; kosong berarti payload tidak lengkap.
func (r *GenerateCertificateRequest) Title() string {
	if r.Type == TypeDiploma {
		return r.Certificate.CategoryTitle
	}
	return r.Certificate.CourseTitle
}

// ItemID memilih id course/category sesuai type.
func (r *GenerateCertificateRequest) ItemID() uint {
	if r.Type == TypeDiploma {
		return r.Certificate.CategoryID
	}
	return r.Certificate.CourseID
}

// ParseTime menerima RFC3339 atau tanggal polos dari backend.
func ParseTime(raw *string) *time.Time {
	if raw == nil {
		return nil
	}
	s := strings.TrimSpace(*raw)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}
