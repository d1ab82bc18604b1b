package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestGenerator(t *testing.T) *Generator {
	t.Helper()
	return &Generator{
		OutputDir:     t.TempDir(),
		PublicBaseURL: "http://localhost:3000/public/certificates",
		BackgroundDir: "", // tanpa aset: jatuh ke halaman polos
	}
}

func TestGenerateWritesPDF(t *testing.T) {
	g := newTestGenerator(t)

	completed := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	res, err := g.Generate(context.Background(), Input{
		Type:              "course",
		CertificateID:     7,
		RecipientID:       3,
		ItemID:            12,
		Title:             "Intro to Tajwid",
		RecipientName:     "Aisha Rahman",
		VerificationToken: "tok-abc123",
		VerificationURL:   "https://example.com/verify/tok-abc123",
		CompletedAt:       &completed,
		IssuedAt:          time.Now(),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if !strings.HasPrefix(res.Filename, "course-") || !strings.HasSuffix(res.Filename, ".pdf") {
		t.Fatalf("unexpected filename: %q", res.Filename)
	}
	if !strings.HasPrefix(res.FilePath, g.PublicBaseURL+"/") {
		t.Fatalf("file path not under public base: %q", res.FilePath)
	}

	raw, err := os.ReadFile(filepath.Join(g.OutputDir, res.Filename))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("output is not a PDF (starts with %q)", raw[:4])
	}
}

func TestGenerateDiplomaWithoutOptionalFields(t *testing.T) {
	g := newTestGenerator(t)

	// Tanpa QR, token, tanggal, font, background — semua opsional.
	res, err := g.Generate(context.Background(), Input{
		Type:          "diploma",
		CertificateID: 1,
		Title:         "Arabic Language Diploma",
		RecipientName: "Omar Farouk",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.HasPrefix(res.Filename, "diploma-") {
		t.Fatalf("unexpected filename: %q", res.Filename)
	}
	if _, err := os.Stat(filepath.Join(g.OutputDir, res.Filename)); err != nil {
		t.Fatalf("output missing: %v", err)
	}
}

func TestGenerateSameInputTwiceYieldsDistinctFiles(t *testing.T) {
	g := newTestGenerator(t)

	in := Input{
		Type:          "course",
		CertificateID: 5,
		RecipientID:   9,
		ItemID:        2,
		Title:         "Fiqh of Worship",
		RecipientName: "Bilal Saeed",
		IssuedAt:      time.Now(),
	}

	first, err := g.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("first generate: %v", err)
	}
	second, err := g.Generate(context.Background(), in)
	if err != nil {
		t.Fatalf("second generate: %v", err)
	}

	// Salt acak menjamin re-issue tidak menimpa file lama.
	if first.Filename == second.Filename {
		t.Fatalf("expected distinct filenames, both %q", first.Filename)
	}
	for _, res := range []Result{first, second} {
		if _, err := os.Stat(filepath.Join(g.OutputDir, res.Filename)); err != nil {
			t.Fatalf("output %q missing: %v", res.Filename, err)
		}
	}
}

func TestDeriveFilenameShape(t *testing.T) {
	name, err := deriveFilename(Input{Type: "course", CertificateID: 1, IssuedAt: time.Now()})
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	// course- + 20 hex + .pdf
	if len(name) != len("course-")+20+len(".pdf") {
		t.Fatalf("unexpected filename length: %q", name)
	}
}
