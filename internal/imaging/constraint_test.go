package imaging

import (
	"image/color"
	"testing"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"photo.png", "png"},
		{"photo.PNG", "png"},
		{"photo.jpg", "jpeg"},
		{"photo.JPEG", "jpeg"},
		{"icon.Ico", "ico"},
		{"scan.bmp", "bmp"},
		{"anim.gif", "gif"},
		{"/some/dir/photo.webp", "webp"},
		{"noextension", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := FormatForPath(tt.path); got != tt.want {
				t.Errorf("FormatForPath(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestConstrain_NoConstraint(t *testing.T) {
	src := createInMemoryImage(4096, 2048, color.NRGBA{1, 2, 3, 255})

	got, err := Constrain(src, "png")
	if err != nil {
		t.Fatalf("Constrain failed: %v", err)
	}
	if got != src {
		t.Error("unconstrained format should return the source image unchanged")
	}
}

func TestConstrain_CompliantPassesThrough(t *testing.T) {
	for _, d := range []struct{ w, h int }{{256, 256}, {256, 100}, {1, 1}, {200, 256}} {
		src := createInMemoryImage(d.w, d.h, color.NRGBA{1, 2, 3, 255})
		got, err := Constrain(src, "ico")
		if err != nil {
			t.Fatalf("Constrain(%dx%d) failed: %v", d.w, d.h, err)
		}
		if got != src {
			t.Errorf("compliant %dx%d image should not be touched", d.w, d.h)
		}
	}
}

func TestConstrain_ScalesOversized(t *testing.T) {
	tests := []struct {
		name         string
		srcW, srcH   int
		wantW, wantH int
	}{
		{"wide 2:1", 4096, 2048, 256, 128},
		{"tall 1:2", 2048, 4096, 128, 256},
		{"square", 512, 512, 256, 256},
		{"barely over", 257, 100, 256, 100},
		{"extreme ratio floors at one", 10000, 1, 256, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := createInMemoryImage(tt.srcW, tt.srcH, color.NRGBA{9, 9, 9, 255})
			got, err := Constrain(src, "ico")
			if err != nil {
				t.Fatalf("Constrain failed: %v", err)
			}
			b := got.Bounds()
			if b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("dimensions: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
			if b.Dx() > 256 || b.Dy() > 256 {
				t.Errorf("constraint violated: %dx%d", b.Dx(), b.Dy())
			}
		})
	}
}

func TestConstrain_PreservesAspectRatio(t *testing.T) {
	src := createInMemoryImage(1920, 1080, color.NRGBA{0, 0, 0, 255})

	got, err := Constrain(src, "ico")
	if err != nil {
		t.Fatalf("Constrain failed: %v", err)
	}

	b := got.Bounds()
	if b.Dx() != 256 {
		t.Fatalf("max side: got %d, want 256", b.Dx())
	}
	// 1080 * 256/1920 = 144 exactly; allow one pixel of rounding slack
	// for the general property.
	if b.Dy() < 143 || b.Dy() > 145 {
		t.Errorf("short side: got %d, want 144 +/- 1", b.Dy())
	}
}
