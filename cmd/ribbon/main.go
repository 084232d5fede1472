// Command ribbon converts arrow documents into GeoJSON, SVG or PNG.
//
// Usage:
//
//	ribbon -in arrow.yaml -format geojson -out arrow.geojson
//
// Documents may be JSON, YAML or TOML. With -watch, the output is
// regenerated whenever the input file changes, until interrupted.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/arrowkit/ribbon"
	"github.com/arrowkit/ribbon/internal/arrowdoc"
	"github.com/arrowkit/ribbon/internal/render"
	"github.com/fsnotify/fsnotify"
)

type config struct {
	in, out, format string
	zoom            float64
	zoomSet         bool
	width, height   int
	handles         bool
}

func main() {
	var (
		in      = flag.String("in", "", "input document (.json, .yaml, .yml or .toml)")
		out     = flag.String("out", "", "output file (default stdout)")
		format  = flag.String("format", "geojson", "output format: geojson, svg or png")
		zoom    = flag.Float64("zoom", 0, "map zoom to evaluate at (default: the document's)")
		width   = flag.Int("width", 800, "PNG width")
		height  = flag.Int("height", 600, "PNG height")
		handles = flag.Bool("handles", false, "draw handles in PNG output")
		watch   = flag.Bool("watch", false, "regenerate the output whenever the input changes")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	ribbon.SetLogger(logger)

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}
	cfg := config{
		in:      *in,
		out:     *out,
		format:  *format,
		zoom:    *zoom,
		width:   *width,
		height:  *height,
		handles: *handles,
	}
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "zoom" {
			cfg.zoomSet = true
		}
	})
	if *watch && cfg.out == "" {
		log.Fatalf("-watch requires -out")
	}

	if err := run(cfg); err != nil {
		if !*watch {
			log.Fatalf("%s: %v", cfg.in, err)
		}
		logger.Error("conversion failed", "in", cfg.in, "err", err)
	}
	if !*watch {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watchFile(ctx, logger, cfg); err != nil {
		log.Fatalf("watching %s: %v", cfg.in, err)
	}
}

func run(cfg config) error {
	doc, err := arrowdoc.Open(cfg.in)
	if err != nil {
		return err
	}
	zoom := doc.ViewZoom()
	if cfg.zoomSet {
		zoom = cfg.zoom
	}
	arrow, err := doc.Evaluate(zoom)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch cfg.format {
	case "geojson":
		err = arrow.WriteGeoJSON(&buf, doc.Name)
	case "svg":
		err = render.WriteSVG(&buf, arrow, doc.Name)
	case "png":
		opts := render.Options{Width: cfg.width, Height: cfg.height, Handles: cfg.handles}
		err = render.WritePNG(&buf, arrow, doc.Name, opts)
	default:
		err = fmt.Errorf("unknown output format %q", cfg.format)
	}
	if err != nil {
		return err
	}

	if cfg.out == "" {
		_, err = os.Stdout.Write(buf.Bytes())
		return err
	}
	return os.WriteFile(cfg.out, buf.Bytes(), 0o644)
}

// watchFile re-runs the conversion whenever cfg.in is written. The
// directory is watched rather than the file so that editors which replace
// the file on save are handled too.
func watchFile(ctx context.Context, logger *slog.Logger, cfg config) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	target, err := filepath.Abs(cfg.in)
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	logger.Info("watching", "in", cfg.in, "out", cfg.out)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			if err := run(cfg); err != nil {
				logger.Error("conversion failed", "in", cfg.in, "err", err)
				continue
			}
			logger.Info("updated", "out", cfg.out)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", "err", err)
		}
	}
}
