package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"net/http"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	triangulizor "github.com/esimov/triangulizor/core"
	"github.com/esimov/triangulizor/utils"
	"golang.org/x/term"
)

const banner = `
┌┬┐┬─┐┬┌─┐┌┐┌┌─┐┬ ┬┬  ┬┌─┐┌─┐┬─┐
 │ ├┬┘│├─┤││││ ┬│ ││  │┌─┘│ │├┬┘
 ┴ ┴└─┴┴ ┴┘└┘└─┘└─┘┴─┘┴└─┘└─┘┴└─

Go (Golang) triangular pixel effect.
    Version: %s

`

// pipeName is the file name that indicates stdin/stdout is being used.
const pipeName = "-"

const (
	successColor = "\x1b[92m"
	errorColor   = "\x1b[31m"
	defaultColor = "\x1b[0m"
)

// Version indicates the current build version.
var Version string

func main() {
	var (
		// Flags
		source      = flag.String("in", pipeName, "Source image (path or http(s) URL)")
		destination = flag.String("out", pipeName, "Destination image")
		tileSize    = flag.Int("t", 20, "Tile size (must be a positive even number)")
		wireframe   = flag.Int("wire", 0, "Wireframe mode: 0 none | 1 overlay | 2 wireframe only")
		strokeWidth = flag.Float64("stroke", 1, "Wireframe stroke width")
		verbose     = flag.Bool("v", false, "Verbose output")
		show        = flag.Bool("show", false, "Display the image in the default viewer instead of writing it")
	)

	log.SetFlags(0)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, banner, Version)
		flag.PrintDefaults()
	}
	flag.Parse()

	start := time.Now()

	src, err := openSource(*source)
	if err != nil {
		log.Fatalf("Unable to open the source image: %s%v%s", errorColor, err, defaultColor)
	}

	if *verbose {
		log.Printf("Input image size: %dx%d", src.Bounds().Dx(), src.Bounds().Dy())
		log.Printf("Tile size: %d", *tileSize)
	}

	ind := utils.NewProgressIndicator("Generating the triangulated image...", time.Millisecond*100)
	ind.Start()

	proc := &triangulizor.Processor{
		TileSize:    *tileSize,
		Wireframe:   *wireframe,
		StrokeWidth: *strokeWidth,
	}
	img, err := proc.Triangulize(src)
	if err != nil {
		ind.StopMsg = fmt.Sprintf("Generating the triangulated image... %sfailed ✗%s", errorColor, defaultColor)
		ind.Stop()
		log.Fatalf("Processing error: %s%v%s", errorColor, err, defaultColor)
	}

	ind.StopMsg = fmt.Sprintf("Generating the triangulated image... %sfinished ✔%s", successColor, defaultColor)
	ind.Stop()

	if *verbose {
		log.Printf("Output image size: %dx%d", img.Bounds().Dx(), img.Bounds().Dy())
	}

	if *show {
		if err := showImage(img); err != nil {
			log.Fatalf("Unable to display the image: %s%v%s", errorColor, err, defaultColor)
		}
	} else {
		if err := writeImage(img, *destination); err != nil {
			log.Fatalf("Error encoding the output image: %s%v%s", errorColor, err, defaultColor)
		}
	}

	log.Printf("\nExecution time: %s%.2fs%s", successColor, time.Since(start).Seconds(), defaultColor)
}

// openSource decodes the input image from a file path, an http(s) URL or
// stdin when the `-` pipe name is used.
func openSource(source string) (image.Image, error) {
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		resp, err := http.Get(source)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("fetching %s: %s", source, resp.Status)
		}
		return triangulizor.DecodeImage(resp.Body)
	}

	if source == pipeName {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			log.Fatalln("`-` should be used with a pipe for stdin")
		}
		return triangulizor.DecodeImage(os.Stdin)
	}

	return triangulizor.GetImage(source)
}

// writeImage encodes the processed image to the destination file or to stdout
// when the `-` pipe name is used. The encoder is selected by the file
// extension; stdout always receives PNG.
func writeImage(img image.Image, destination string) error {
	if destination == pipeName {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			log.Fatalln("`-` should be used with a pipe for stdout")
		}
		return png.Encode(os.Stdout, img)
	}

	fileTypes := []string{".jpg", ".jpeg", ".png"}
	ext := filepath.Ext(destination)
	if !inSlice(ext, fileTypes) {
		return fmt.Errorf("output file type not supported: %v", ext)
	}

	fn, err := os.OpenFile(destination, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0755)
	if err != nil {
		return fmt.Errorf("unable to open output file: %v", err)
	}
	defer fn.Close()

	return encodeImage(fn, img, ext)
}

func encodeImage(dst io.Writer, img image.Image, ext string) error {
	switch ext {
	case ".jpg", ".jpeg":
		return jpeg.Encode(dst, img, &jpeg.Options{Quality: 100})
	case "", ".png":
		return png.Encode(dst, img)
	default:
		return errors.New("unsupported image format")
	}
}

// showImage writes the image to a temporary PNG file and opens it with the
// platform image viewer.
func showImage(img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}

	tmp, err := os.CreateTemp("", "triangulizor-*.png")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	var opener string
	switch runtime.GOOS {
	case "darwin":
		opener = "open"
	case "windows":
		opener = "explorer"
	default:
		opener = "xdg-open"
	}
	return exec.Command(opener, tmp.Name()).Start()
}

// inSlice checks if the item exists in the slice.
func inSlice(item string, slice []string) bool {
	for _, it := range slice {
		if it == item {
			return true
		}
	}
	return false
}
