package main

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/chai2010/webp"
	"github.com/rohanthewiz/serr"
	xdraw "golang.org/x/image/draw"
)

type options struct {
	MaxWidth int
	Quality  float32
	Force    bool
}

type result struct {
	Source     string
	Target     string
	SourceSize int64
	TargetSize int64
	Skipped    bool
	Err        error
}

var sourceExts = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

// webpTarget is the WebP path served for src; it matches the <picture>
// source the pages render.
func webpTarget(src string) string {
	return strings.TrimSuffix(src, filepath.Ext(src)) + ".webp"
}

// findSources lists convertible images under dir, sorted.
func findSources(dir string) ([]string, error) {
	var sources []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && sourceExts[strings.ToLower(filepath.Ext(path))] {
			sources = append(sources, path)
		}
		return nil
	})
	if err != nil {
		return nil, serr.Wrap(err, "failed to scan "+dir)
	}
	sort.Strings(sources)
	return sources, nil
}

func optimizeDir(dir string, opts options, workers int) ([]result, error) {
	sources, err := findSources(dir)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		workers = 1
	}

	results := make([]result, len(sources))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = optimizeFile(sources[i], opts)
			}
		}()
	}
	for i := range sources {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, nil
}

func optimizeFile(src string, opts options) result {
	r := result{Source: src, Target: webpTarget(src)}

	srcInfo, err := os.Stat(src)
	if err != nil {
		r.Err = serr.Wrap(err, "failed to stat source")
		return r
	}
	r.SourceSize = srcInfo.Size()

	if !opts.Force {
		if dstInfo, err := os.Stat(r.Target); err == nil && !dstInfo.ModTime().Before(srcInfo.ModTime()) {
			r.Skipped = true
			r.TargetSize = dstInfo.Size()
			return r
		}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		r.Err = serr.Wrap(err, "failed to read source")
		return r
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		r.Err = serr.Wrap(err, "failed to decode source")
		return r
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, scaleToWidth(img, opts.MaxWidth), &webp.Options{Lossless: false, Quality: opts.Quality}); err != nil {
		r.Err = serr.Wrap(err, "failed to encode webp")
		return r
	}
	if err := os.WriteFile(r.Target, buf.Bytes(), 0o644); err != nil {
		r.Err = serr.Wrap(err, "failed to write webp")
		return r
	}
	r.TargetSize = int64(buf.Len())
	return r
}

// scaleToWidth keeps the aspect ratio. Images at or below maxWidth are
// returned unchanged.
func scaleToWidth(img image.Image, maxWidth int) image.Image {
	bounds := img.Bounds()
	if maxWidth <= 0 || bounds.Dx() <= maxWidth {
		return img
	}
	h := bounds.Dy() * maxWidth / bounds.Dx()
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, maxWidth, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}
