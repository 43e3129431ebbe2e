package animator

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"os/exec"
	"strconv"

	"golang.org/x/image/draw"
)

// FrameWriter encodes rendered frames into a video file.
type FrameWriter interface {
	WriteFrame(img *image.RGBA) error
	// Close finishes the file.
	Close() error
	// Abort discards a partially written file.
	Abort()
}

func newFrameWriter(ctx context.Context, format, path string, fps int) (FrameWriter, error) {
	switch format {
	case FormatGIF:
		return newGIFWriter(path, fps), nil
	case FormatMP4:
		return newFFmpegWriter(ctx, path, fps)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

type gifWriter struct {
	path  string
	delay int
	anim  gif.GIF
}

// newGIFWriter buffers frames in memory; GIF delays are in 1/100 s.
func newGIFWriter(path string, fps int) *gifWriter {
	delay := (100 + fps/2) / fps
	if delay < 1 {
		delay = 1
	}
	return &gifWriter{path: path, delay: delay}
}

func (w *gifWriter) WriteFrame(img *image.RGBA) error {
	pal := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.FloydSteinberg.Draw(pal, img.Bounds(), img, img.Bounds().Min)
	w.anim.Image = append(w.anim.Image, pal)
	w.anim.Delay = append(w.anim.Delay, w.delay)
	return nil
}

func (w *gifWriter) Close() error {
	f, err := os.Create(w.path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &w.anim); err != nil {
		f.Close()
		os.Remove(w.path)
		return err
	}
	return f.Close()
}

func (w *gifWriter) Abort() {
	w.anim = gif.GIF{}
}

// ffmpegWriter streams raw RGBA frames into an ffmpeg process.
type ffmpegWriter struct {
	path   string
	fps    int
	ctx    context.Context
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stderr bytes.Buffer
}

func newFFmpegWriter(ctx context.Context, path string, fps int) (*ffmpegWriter, error) {
	if _, err := exec.LookPath("ffmpeg"); err != nil {
		return nil, ErrEncoderNotFound
	}
	return &ffmpegWriter{path: path, fps: fps, ctx: ctx}, nil
}

// start launches ffmpeg once the frame size is known.
func (w *ffmpegWriter) start(size image.Point) error {
	w.cmd = exec.CommandContext(w.ctx, "ffmpeg",
		"-y", "-loglevel", "error",
		"-f", "rawvideo", "-pix_fmt", "rgba",
		"-s", fmt.Sprintf("%dx%d", size.X, size.Y),
		"-r", strconv.Itoa(w.fps),
		"-i", "-",
		"-c:v", "libx264", "-pix_fmt", "yuv420p",
		w.path,
	)
	w.cmd.Stderr = &w.stderr
	stdin, err := w.cmd.StdinPipe()
	if err != nil {
		return err
	}
	w.stdin = stdin
	return w.cmd.Start()
}

func (w *ffmpegWriter) WriteFrame(img *image.RGBA) error {
	if w.cmd == nil {
		if err := w.start(img.Bounds().Size()); err != nil {
			return err
		}
	}
	b := img.Bounds()
	rowLen := 4 * b.Dx()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		if _, err := w.stdin.Write(img.Pix[off : off+rowLen]); err != nil {
			return w.wrap(err)
		}
	}
	return nil
}

func (w *ffmpegWriter) Close() error {
	if w.cmd == nil {
		return nil
	}
	if err := w.stdin.Close(); err != nil {
		return w.wrap(err)
	}
	if err := w.cmd.Wait(); err != nil {
		return w.wrap(err)
	}
	return nil
}

func (w *ffmpegWriter) Abort() {
	if w.cmd == nil {
		return
	}
	w.stdin.Close()
	if w.cmd.Process != nil {
		w.cmd.Process.Kill()
	}
	w.cmd.Wait()
	os.Remove(w.path)
}

func (w *ffmpegWriter) wrap(err error) error {
	if msg := bytes.TrimSpace(w.stderr.Bytes()); len(msg) > 0 {
		return fmt.Errorf("ffmpeg: %w: %s", err, msg)
	}
	return fmt.Errorf("ffmpeg: %w", err)
}
