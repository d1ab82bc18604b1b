// internals/features/certificates/service/generator.go
package service

import (
	"bytes"
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/font"

	"almanara_backend/internals/configs"
	osshelper "almanara_backend/internals/helpers/oss"
)

// Default page saat tidak ada background sama sekali (A4 landscape @96dpi).
const (
	defaultPageW = 1123
	defaultPageH = 794

	panelHeight = 160.0
	qrSize      = 120
	qrMargin    = 40
)

type Input struct {
	Type              string // "course" | "diploma"
	CertificateID     uint
	RecipientID       uint
	ItemID            uint // course atau category id sesuai type
	Title             string
	RecipientName     string
	VerificationToken string
	VerificationURL   string
	CompletedAt       *time.Time
	IssuedAt          time.Time
}

type Result struct {
	FilePath string `json:"file_path"`
	Filename string `json:"filename"`
}

// Generator merender sertifikat satu halaman dan menyimpannya ke storage
// publik (disk lokal, atau OSS bila dikonfigurasi).
type Generator struct {
	OutputDir     string
	PublicBaseURL string
	FontPath      string
	BackgroundDir string
	OSS           *osshelper.OSSService // nil = simpan lokal saja
}

func NewGeneratorFromConfig() *Generator {
	g := &Generator{
		OutputDir:     configs.CertOutputDir,
		PublicBaseURL: configs.CertPublicBaseURL,
		FontPath:      configs.CertFontPath,
		BackgroundDir: configs.CertBackgroundDir,
	}
	if osshelper.Configured() {
		svc, err := osshelper.NewOSSServiceFromEnv("certificates")
		if err == nil {
			g.OSS = svc
		}
	}
	return g
}

// Generate merender penuh ke memori dulu; file baru ditulis setelah render
// sukses, jadi tidak pernah ada artefak parsial yang bisa direferensikan.
func (g *Generator) Generate(ctx context.Context, in Input) (Result, error) {
	if in.IssuedAt.IsZero() {
		in.IssuedAt = time.Now()
	}

	pageBytes, err := g.renderPDF(in)
	if err != nil {
		return Result{}, fmt.Errorf("render certificate: %w", err)
	}

	filename, err := deriveFilename(in)
	if err != nil {
		return Result{}, fmt.Errorf("derive filename: %w", err)
	}

	if g.OSS != nil {
		url, err := g.OSS.UploadStream(ctx, filename, bytes.NewReader(pageBytes), "application/pdf")
		if err != nil {
			return Result{}, fmt.Errorf("upload certificate: %w", err)
		}
		return Result{FilePath: url, Filename: filename}, nil
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return Result{}, fmt.Errorf("prepare output dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(g.OutputDir, filename), pageBytes, 0o644); err != nil {
		return Result{}, fmt.Errorf("write certificate: %w", err)
	}

	return Result{
		FilePath: strings.TrimRight(g.PublicBaseURL, "/") + "/" + filename,
		Filename: filename,
	}, nil
}

/* ===============================
   Rendering
=================================*/

func (g *Generator) renderPDF(in Input) ([]byte, error) {
	bg := g.loadBackground(in.Type)

	w, h := defaultPageW, defaultPageH
	if bg != nil {
		w = bg.Bounds().Dx()
		h = bg.Bounds().Dy()
	}

	dc := gg.NewContext(w, h)
	if bg != nil {
		dc.DrawImage(bg, 0, 0)
	} else {
		// fallback terakhir: halaman polos
		dc.SetRGB(0.96, 0.95, 0.91)
		dc.Clear()
	}

	fw, fh := float64(w), float64(h)

	// Panel putih semi-transparan ±70% lebar halaman, vertikal di tengah
	panelW := fw * 0.7
	panelX := (fw - panelW) / 2
	panelY := fh/2 - panelHeight/2
	dc.SetRGBA(1, 1, 1, 0.75)
	dc.DrawRectangle(panelX, panelY, panelW, panelHeight)
	dc.Fill()

	dc.SetRGB(0.13, 0.13, 0.17)

	label := "Certificate of Completion"
	if in.Type == "diploma" {
		label = "Diploma Certificate"
	}

	g.setFontFace(dc, 30)
	dc.DrawStringAnchored(label, fw/2, panelY+34, 0.5, 0.5)

	g.setFontFace(dc, 24)
	dc.DrawStringAnchored(in.Title, fw/2, panelY+72, 0.5, 0.5)

	if in.RecipientName != "" {
		g.setFontFace(dc, 18)
		dc.DrawStringAnchored(in.RecipientName, fw/2, panelY+106, 0.5, 0.5)
	}
	if in.CompletedAt != nil {
		g.setFontFace(dc, 14)
		dc.DrawStringAnchored(in.CompletedAt.Format("02 Jan 2006"), fw/2, panelY+136, 0.5, 0.5)
	}

	// QR verifikasi di pojok kanan bawah, hanya bila URL ada
	if in.VerificationURL != "" {
		qr, err := qrcode.New(in.VerificationURL, qrcode.Medium)
		if err != nil {
			return nil, fmt.Errorf("encode qr: %w", err)
		}
		dc.DrawImage(qr.Image(qrSize), w-qrSize-qrMargin, h-qrSize-qrMargin)
	}

	// Token verifikasi kecil di bagian paling bawah, hanya bila ada
	if in.VerificationToken != "" {
		g.setFontFace(dc, 11)
		dc.SetRGB(0.35, 0.35, 0.4)
		dc.DrawStringAnchored(in.VerificationToken, fw/2, fh-22, 0.5, 0.5)
	}

	var pagePNG bytes.Buffer
	if err := dc.EncodePNG(&pagePNG); err != nil {
		return nil, fmt.Errorf("encode page: %w", err)
	}

	return wrapInPDF(&pagePNG, w, h)
}

// wrapInPDF menempelkan halaman raster ke PDF satu halaman berukuran sama
// (px @96dpi → pt).
func wrapInPDF(pagePNG *bytes.Buffer, w, h int) ([]byte, error) {
	ptW := float64(w) * 72.0 / 96.0
	ptH := float64(h) * 72.0 / 96.0

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: ptW, Ht: ptH},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("certificate-page", opts, pagePNG)
	pdf.ImageOptions("certificate-page", 0, 0, ptW, ptH, false, opts, 0, "")

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("emit pdf: %w", err)
	}
	return out.Bytes(), nil
}

// loadBackground mencoba aset per-type dulu, lalu aset umum; nil berarti
// jatuh ke halaman polos. Rantai fallback ini tidak boleh gagal keras.
func (g *Generator) loadBackground(certType string) image.Image {
	if g.BackgroundDir == "" {
		return nil
	}
	names := []string{certType + "-background", "background"}
	exts := []string{".png", ".jpg", ".jpeg", ".webp"}
	for _, name := range names {
		for _, ext := range exts {
			img := decodeImageFile(filepath.Join(g.BackgroundDir, name+ext))
			if img != nil {
				return img
			}
		}
	}
	return nil
}

func decodeImageFile(path string) image.Image {
	if strings.EqualFold(filepath.Ext(path), ".webp") {
		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer f.Close()
		img, err := webp.Decode(f)
		if err != nil {
			return nil
		}
		return img
	}
	img, err := imaging.Open(path)
	if err != nil {
		return nil
	}
	return img
}

func (g *Generator) setFontFace(dc *gg.Context, points float64) {
	if g.FontPath == "" {
		return // pakai face default gg
	}
	if face, err := loadFontFace(g.FontPath, points); err == nil {
		dc.SetFontFace(face)
	}
}

func loadFontFace(path string, points float64) (font.Face, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := truetype.Parse(raw)
	if err != nil {
		return nil, err
	}
	return truetype.NewFace(f, &truetype.Options{Size: points}), nil
}

/* ===============================
   Filename derivation
=================================*/

// deriveFilename: hash(id|recipient|item|token|issued|salt) → nama file yang
// tidak bisa ditebak dan bebas tabrakan antar re-issue input yang sama.
func deriveFilename(in Input) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	seed := fmt.Sprintf("%d|%d|%d|%s|%d|%s",
		in.CertificateID,
		in.RecipientID,
		in.ItemID,
		in.VerificationToken,
		in.IssuedAt.UnixNano(),
		hex.EncodeToString(salt),
	)
	sum := blake2b.Sum256([]byte(seed))
	return fmt.Sprintf("%s-%s.pdf", in.Type, hex.EncodeToString(sum[:])[:20]), nil
}
