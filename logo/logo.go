// Package logo loads and prepares raster logos for the sheet header.
//
// A logo may come from a local file or an HTTP(S) URL. Before embedding it
// is flattened against a white background (print output has no alpha
// channel) and fitted into the header's bounding box preserving its aspect
// ratio.
package logo

import (
	"fmt"
	"image"
	"image/color"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	// Lets image.Decode (and therefore imaging.Decode) handle WebP logos.
	_ "golang.org/x/image/webp"
)

var httpClient = &http.Client{Timeout: 10 * time.Second}

// Load fetches and decodes the logo at ref, which is either a filesystem
// path or an http:// / https:// URL. Failures are terminal; nothing is
// retried.
func Load(ref string) (image.Image, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return loadURL(ref)
	}
	f, err := os.Open(ref)
	if err != nil {
		return nil, fmt.Errorf("logo: %w", err)
	}
	defer f.Close()
	img, err := imaging.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("logo: decoding %s: %w", ref, err)
	}
	return img, nil
}

func loadURL(url string) (image.Image, error) {
	resp, err := httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("logo: fetching %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo: fetching %s: unexpected status %s", url, resp.Status)
	}
	img, err := imaging.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("logo: decoding %s: %w", url, err)
	}
	return img, nil
}

// Flatten composites img over a solid white background, producing an opaque
// raster of the same pixel dimensions. Each channel blends as
// fg·α + 255·(1−α).
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	canvas := imaging.New(b.Dx(), b.Dy(), color.White)
	return imaging.Overlay(canvas, img, image.Pt(0, 0), 1.0)
}

// FitBox scales the pixel dimensions width x height into a maxW x maxH
// physical box, preserving the aspect ratio exactly: one output dimension
// equals its bound and the other is at most its bound. When the box and the
// image share an aspect ratio the fit is width-constrained.
func FitBox(width, height int, maxW, maxH float64) (w, h float64) {
	aspect := float64(width) / float64(height)
	if maxW/maxH > aspect {
		return maxH * aspect, maxH
	}
	return maxW, maxW / aspect
}
