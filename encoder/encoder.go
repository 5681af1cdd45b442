// Package encoder pipes rendered RGBA frames into an ffmpeg process.
package encoder

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path/filepath"
	"strings"
	"sync"

	options "github.com/richinsley/goquad/options"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// BytesPerPixel of the raw frames written to ffmpeg (RGBA8).
const BytesPerPixel = 4

const numBuffers = 3

// Frame represents a single rendered frame's data, ready for encoding.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// Recorder is the consumer side of the frame pipeline. Frames are written in
// the order they are submitted.
type Recorder struct {
	width  int
	height int
	frames chan *Frame
	done   chan error
	closed bool

	mu  sync.Mutex
	err error // first failure of the writer or ffmpeg
}

func inputArgs(width, height, fps int) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"f":         "rawvideo",
		"pix_fmt":   "rgba",
		"s":         fmt.Sprintf("%dx%d", width, height),
		"framerate": fmt.Sprintf("%d", fps),
	}
}

// outputArgs flips rows since GL reads the framebuffer bottom-up.
func outputArgs(output string) ffmpeg.KwArgs {
	args := ffmpeg.KwArgs{"vf": "vflip"}
	switch strings.ToLower(filepath.Ext(output)) {
	case ".mp4", ".mkv", ".mov":
		args["c:v"] = "libx264"
		args["pix_fmt"] = "yuv420p"
	case ".gif":
	default:
		args["pix_fmt"] = "yuv420p"
	}
	return args
}

func command(cfg *options.Config, width, height int, r io.Reader) *ffmpeg.Stream {
	cmd := ffmpeg.Input("pipe:", inputArgs(width, height, cfg.Record.FPS)).
		Output(cfg.Record.Output, outputArgs(cfg.Record.Output)).
		OverWriteOutput().WithInput(r).ErrorToStdOut()
	if cfg.Record.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(cfg.Record.FFMPEGPath)
	}
	return cmd
}

// NewRecorder starts ffmpeg writing cfg.Record.Output from width x height frames.
func NewRecorder(cfg *options.Config, width, height int) (*Recorder, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid recording size %dx%d", width, height)
	}
	r := &Recorder{
		width:  width,
		height: height,
		frames: make(chan *Frame, numBuffers),
		done:   make(chan error, 1),
	}

	pipeReader, pipeWriter := io.Pipe()
	cmd := command(cfg, width, height, pipeReader)

	errc := make(chan error, 1)
	go func() {
		err := cmd.Run()
		if err != nil {
			err = fmt.Errorf("ffmpeg failed: %w", err)
			r.fail(err)
		}
		// Unblock the writer if ffmpeg exits early.
		pipeReader.CloseWithError(errors.Join(err, io.ErrClosedPipe))
		errc <- err
	}()

	go r.run(pipeWriter, errc)
	log.Printf("Recording %dx%d at %d fps to %s", width, height, cfg.Record.FPS, cfg.Record.Output)
	return r, nil
}

// fail records err unless an earlier failure is already recorded.
func (r *Recorder) fail(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err == nil {
		r.err = err
		log.Println(err)
	}
}

func (r *Recorder) failure() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// run writes queued frames until the channel closes. After a failure it keeps
// draining so WriteFrame never blocks on a dead pipe.
func (r *Recorder) run(w *io.PipeWriter, errc <-chan error) {
	for frame := range r.frames {
		if r.failure() != nil {
			continue
		}
		if _, err := w.Write(frame.Pixels); err != nil {
			r.fail(fmt.Errorf("failed to write frame %d to ffmpeg: %w", frame.PTS, err))
		}
	}
	w.Close()
	<-errc
	r.done <- r.failure()
}

// FrameSize is the byte length WriteFrame expects.
func (r *Recorder) FrameSize() int {
	return r.width * r.height * BytesPerPixel
}

func (r *Recorder) Size() (int, int) {
	return r.width, r.height
}

// WriteFrame queues a frame. It blocks while numBuffers frames are pending
// and returns the first writer or ffmpeg failure once one has occurred.
func (r *Recorder) WriteFrame(f *Frame) error {
	if r.closed {
		return fmt.Errorf("recorder is closed")
	}
	if err := r.failure(); err != nil {
		return fmt.Errorf("recorder stopped: %w", err)
	}
	if len(f.Pixels) != r.FrameSize() {
		return fmt.Errorf("frame %d has %d bytes, want %d", f.PTS, len(f.Pixels), r.FrameSize())
	}
	r.frames <- f
	return nil
}

// Close flushes pending frames and waits for ffmpeg to exit.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	close(r.frames)
	return <-r.done
}
