package renderer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/goquad/encoder"
	"github.com/richinsley/goquad/graphics"
)

// FrameSink consumes finished frames as RGBA8 pixels, bottom row first.
type FrameSink interface {
	Size() (int, int)
	WriteFrame(f *encoder.Frame) error
}

// capture reads the back buffer before it is swapped and forwards it to the sink.
func (r *Renderer) capture(pts int64) error {
	width, height := r.sink.Size()
	fbWidth, fbHeight := r.context.GetFramebufferSize()
	if err := checkCaptureSize(fbWidth, fbHeight, width, height); err != nil {
		return graphics.Fail("record frame", fmt.Errorf("frame %d: %w", pts, err))
	}
	pixels := make([]byte, width*height*encoder.BytesPerPixel)

	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	if err := checkError("read frame"); err != nil {
		return err
	}
	if err := r.sink.WriteFrame(&encoder.Frame{Pixels: pixels, PTS: pts}); err != nil {
		return graphics.Fail("record frame", fmt.Errorf("frame %d: %w", pts, err))
	}
	return nil
}

func checkCaptureSize(fbWidth, fbHeight, width, height int) error {
	if fbWidth != width || fbHeight != height {
		return fmt.Errorf("framebuffer is %dx%d but the recording is %dx%d", fbWidth, fbHeight, width, height)
	}
	return nil
}
