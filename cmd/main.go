package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"runtime"

	encoder "github.com/richinsley/goquad/encoder"
	frameloop "github.com/richinsley/goquad/frameloop"
	glfwcontext "github.com/richinsley/goquad/glfwcontext"
	graphics "github.com/richinsley/goquad/graphics"
	headless "github.com/richinsley/goquad/headless"
	options "github.com/richinsley/goquad/options"
	renderer "github.com/richinsley/goquad/renderer"
	scene "github.com/richinsley/goquad/scene"
	shader "github.com/richinsley/goquad/shader"
	translator "github.com/richinsley/goquad/translator"
)

func init() {
	runtime.LockOSThread()
}

// newContext returns the rendering context and a function that releases the
// platform layer once the context itself has been shut down.
func newContext(cfg *options.Config) (graphics.Context, func(), error) {
	if cfg.Render.Headless {
		ctx, err := headless.New(cfg.Display.Width, cfg.Display.Height)
		if err != nil {
			return nil, nil, graphics.Fail("create surface", err)
		}
		return ctx, func() {}, nil
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		return nil, nil, graphics.Fail("create surface", fmt.Errorf("failed to initialize glfw: %w", err))
	}
	ctx, err := glfwcontext.New(cfg)
	if err != nil {
		glfwcontext.TerminateGraphics()
		return nil, nil, graphics.Fail("create surface", err)
	}
	return ctx, glfwcontext.TerminateGraphics, nil
}

func shaderSources(r *renderer.Renderer, cfg *options.Config) (shader.Sources, error) {
	if !cfg.Render.Translate {
		return shader.Native(r.IsGLES()), nil
	}
	res, err := translator.Translate(context.Background(), shader.WebGL2(), r.IsGLES())
	if err != nil {
		return shader.Sources{}, graphics.Fail("compile program", err)
	}
	r.SetPositionAttribute(res.PositionAttribute)
	return res.Sources, nil
}

func run(cfg *options.Config) (err error) {
	ctx, terminate, err := newContext(cfg)
	if err != nil {
		return err
	}
	defer terminate()

	r, err := renderer.NewRenderer(ctx)
	if err != nil {
		ctx.Shutdown()
		return err
	}
	defer r.Shutdown()

	src, err := shaderSources(r, cfg)
	if err != nil {
		return err
	}
	quad, err := scene.NewQuad(r, src)
	if err != nil {
		return err
	}

	width, height := ctx.GetFramebufferSize()
	if cfg.Recording() {
		rec, rerr := encoder.NewRecorder(cfg, width, height)
		if rerr != nil {
			return fmt.Errorf("failed to start recorder: %w", rerr)
		}
		r.SetFrameSink(rec)
		defer func() {
			if cerr := rec.Close(); cerr != nil {
				err = errors.Join(err, cerr)
			} else {
				log.Printf("Successfully recorded to %s", cfg.Record.Output)
			}
		}()
	}

	opts := frameloop.DefaultOptions()
	c := cfg.Render.ClearColor
	opts.ClearColor = graphics.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
	opts.MaxFrames = cfg.Render.MaxFrames

	driver := frameloop.New(r, quad, frameloop.Geometry{Width: width, Height: height}, opts)
	log.Println("Starting render loop...")
	return driver.Run()
}

func main() {
	flags := options.Register(flag.CommandLine)
	flag.Parse()

	if *flags.Help {
		fmt.Println("goquad: draws a red quad on a blue background until Escape or close")
		flag.PrintDefaults()
		return
	}

	cfg := options.Default()
	if *flags.ConfigFile != "" {
		var err error
		cfg, err = options.Load(*flags.ConfigFile)
		if err != nil {
			log.Fatalf("Error loading config: %v", err)
		}
	}
	cfg.Override(flag.CommandLine, flags)
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Rendering failed: %v", err)
	}
}
