// Command optimize_images writes a WebP copy next to every JPEG and PNG under
// the static images directory. Pages serve the WebP through <picture> and
// fall back to the original.
package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/peace-building-initiative/site/config"
)

func main() {
	var (
		dir      = flag.String("dir", filepath.Join(config.StaticDir, "images"), "Directory to scan")
		maxWidth = flag.Int("max-width", 1600, "Scale images wider than this down to it")
		quality  = flag.Float64("quality", 80, "WebP quality (0-100)")
		force    = flag.Bool("force", false, "Rewrite WebP files that are already up to date")
		workers  = flag.Int("workers", 4, "Number of parallel encoders")
	)
	flag.Parse()

	opts := options{
		MaxWidth: *maxWidth,
		Quality:  float32(*quality),
		Force:    *force,
	}

	results, err := optimizeDir(*dir, opts, *workers)
	if err != nil {
		log.Fatalf("Failed to optimize images: %v", err)
	}

	var written, skipped, failed int
	for _, r := range results {
		switch {
		case r.Err != nil:
			failed++
			log.Printf("Failed %s: %v", r.Source, r.Err)
		case r.Skipped:
			skipped++
		default:
			written++
			log.Printf("Wrote %s (%d -> %d bytes)", r.Target, r.SourceSize, r.TargetSize)
		}
	}
	log.Printf("Done: %d written, %d up to date, %d failed", written, skipped, failed)
	if failed > 0 {
		log.Fatal("Some images could not be converted")
	}
}
