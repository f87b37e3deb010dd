package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"
	"os/exec"
	"strings"

	_ "golang.org/x/image/webp"
)

const (
	DefaultMaxDimension = 3840
	defaultWebPQuality  = 80
)

type Upload struct {
	Reader      io.Reader
	Size        int64
	FileName    string
	ContentType string
}

type Result struct {
	Bytes       []byte
	ContentType string
	Resized     bool
}

// Processor normalizes uploaded listing photos. Every accepted image comes
// out as webp so the public site serves one format regardless of what the
// admin uploaded.
type Processor interface {
	Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error)
}

type FFMPEGProcessor struct {
	path         string
	maxDimension int
	webpQuality  int
}

func NewFFMPEGProcessor(binaryPath string, maxDimension int) *FFMPEGProcessor {
	path := strings.TrimSpace(binaryPath)
	if path == "" {
		path = "ffmpeg"
	}
	if maxDimension <= 0 {
		maxDimension = DefaultMaxDimension
	}
	return &FFMPEGProcessor{
		path:         path,
		maxDimension: maxDimension,
		webpQuality:  defaultWebPQuality,
	}
}

func (p *FFMPEGProcessor) Process(ctx context.Context, upload Upload, maxDimension int) (*Result, error) {
	if upload.Reader == nil {
		return nil, fmt.Errorf("media: empty reader")
	}
	data, err := io.ReadAll(upload.Reader)
	if err != nil {
		return nil, fmt.Errorf("media: read image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("media: empty image data")
	}

	width, height, err := decodeDimensions(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("media: decode dimensions: %w", err)
	}

	targetMax := maxDimension
	if targetMax <= 0 {
		targetMax = p.maxDimension
	}

	resized := width > targetMax || height > targetMax
	targetW, targetH := width, height
	if resized {
		targetW, targetH = scaleToFit(width, height, targetMax)
	}

	processed, err := p.transcode(ctx, data, targetW, targetH, resized)
	if err != nil {
		return nil, err
	}

	return &Result{
		Bytes:       processed,
		ContentType: "image/webp",
		Resized:     resized,
	}, nil
}

func decodeDimensions(r io.Reader) (int, int, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, err
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return 0, 0, fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	return cfg.Width, cfg.Height, nil
}

func scaleToFit(width, height, maxDim int) (int, int) {
	if width >= height {
		newW := maxDim
		newH := int(math.Round(float64(height) * float64(maxDim) / float64(width)))
		return ensureMin(newW), ensureMin(newH)
	}
	newH := maxDim
	newW := int(math.Round(float64(width) * float64(maxDim) / float64(height)))
	return ensureMin(newW), ensureMin(newH)
}

func ensureMin(value int) int {
	if value < 2 {
		return 2
	}
	return value
}

func (p *FFMPEGProcessor) transcode(ctx context.Context, data []byte, width, height int, resize bool) ([]byte, error) {
	cmdArgs := []string{
		"-hide_banner",
		"-loglevel", "error",
		"-i", "pipe:0",
	}
	if resize {
		cmdArgs = append(cmdArgs, "-vf", fmt.Sprintf("scale=%d:%d:flags=lanczos", width, height))
	}
	cmdArgs = append(cmdArgs,
		"-frames:v", "1",
		"-f", "image2",
		"-c:v", "libwebp",
		"-quality", fmt.Sprintf("%d", p.webpQuality),
		"pipe:1",
	)

	cmd := exec.CommandContext(ctx, p.path, cmdArgs...)
	cmd.Stdin = bytes.NewReader(data)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("media: ffmpeg transcode: %s", msg)
	}
	if stdout.Len() == 0 {
		return nil, fmt.Errorf("media: ffmpeg produced no output")
	}
	return stdout.Bytes(), nil
}

var _ Processor = (*FFMPEGProcessor)(nil)
