package dto

import (
	"testing"

	"github.com/bytedance/sonic"

	"almanara_backend/internals/features/catalog/model"
)

func TestFlexBoolAcceptedForms(t *testing.T) {
	cases := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`1`, true},
		{`0`, false},
		{`"true"`, true},
		{`"false"`, false},
		{`"1"`, true},
		{`"0"`, false},
		{`"on"`, true},
		{`"off"`, false},
		{`""`, false},
		{`null`, false},
	}

	for _, tc := range cases {
		var b FlexBool
		if err := sonic.Unmarshal([]byte(tc.raw), &b); err != nil {
			t.Fatalf("unmarshal %s: %v", tc.raw, err)
		}
		if b.Bool() != tc.want {
			t.Fatalf("unmarshal %s: expected %v got %v", tc.raw, tc.want, b.Bool())
		}
	}
}

func TestFlexBoolRejectsGarbage(t *testing.T) {
	var b FlexBool
	if err := sonic.Unmarshal([]byte(`"maybe"`), &b); err == nil {
		t.Fatalf("expected error for invalid boolean literal")
	}
}

func TestFlexBoolInsideRequestBody(t *testing.T) {
	var req CategoryCreateRequest
	body := `{"title":"Fiqh","price":0,"is_free":"1"}`
	if err := sonic.Unmarshal([]byte(body), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if req.IsFree == nil || !req.IsFree.Bool() {
		t.Fatalf("expected is_free coerced to true")
	}
}

func TestCategoryCreateDefaults(t *testing.T) {
	req := CategoryCreateRequest{Title: "  Fiqh  "}
	req.Normalize()
	m := req.ToModel()

	if m.Title != "Fiqh" {
		t.Fatalf("title not trimmed: %q", m.Title)
	}
	if m.Status != "draft" {
		t.Fatalf("expected default status draft, got %q", m.Status)
	}
	if m.IsFree {
		t.Fatalf("expected is_free default false")
	}
}

func TestLessonCreateVisibleByDefault(t *testing.T) {
	req := LessonCreateRequest{Title: "Intro"}
	m := req.ToModel()
	if !m.IsVisible {
		t.Fatalf("expected is_visible default true")
	}
}

func TestUpdateApplyIsPartial(t *testing.T) {
	title := " New Title "
	free := FlexBool(true)
	req := CourseUpdateRequest{Title: &title, IsFree: &free}
	req.Normalize()

	m := model.Course{Title: "Old", Description: "Keep me", Price: 150, Status: "published"}
	req.Apply(&m)

	if m.Title != "New Title" {
		t.Fatalf("title not applied/trimmed: %q", m.Title)
	}
	if !m.IsFree {
		t.Fatalf("is_free not applied")
	}
	// Field yang tidak dikirim harus utuh.
	if m.Description != "Keep me" || m.Price != 150 || m.Status != "published" {
		t.Fatalf("untouched fields were overwritten: %+v", m)
	}
}
