// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/overlay"
	"github.com/gogpu/overlay/draw"
	"github.com/gogpu/overlay/draw/halpipe"
	"github.com/gogpu/overlay/draw/recorder"
	"github.com/gogpu/overlay/frame"
)

type traceOptions struct {
	hal     bool
	verbose bool
	quiet   bool
}

func newRootCmd() *cobra.Command {
	var opts traceOptions
	cmd := &cobra.Command{
		Use:   "overlaytrace <scene.toml>",
		Short: "Trace the overlay draw submissions of a scene",
		Long: `overlaytrace runs one overlay frame of a TOML scene description through
the overlay engine and prints every view change, framebuffer bind, depth clear
and pass submission in order.`,
		Version:       overlay.Version,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.verbose {
				l := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
					Level: slog.LevelDebug,
				}))
				overlay.SetLogger(l)
				halpipe.SetLogger(l)
			}
			sf, err := loadSceneFile(args[0])
			if err != nil {
				return err
			}
			return runTrace(cmd.OutOrStdout(), sf, opts)
		},
	}
	cmd.Flags().BoolVar(&opts.hal, "hal", false, "resolve render pipelines on a noop HAL device")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "log engine diagnostics to stderr")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "print the summary only")
	return cmd
}

// runTrace draws the frames of sf and writes the trace of the last one.
func runTrace(w io.Writer, sf *sceneFile, opts traceOptions) error {
	bs, err := sf.build()
	if err != nil {
		return err
	}

	rec := recorder.New()
	var backend draw.Backend = rec
	var hb *halpipe.Backend
	var cache *halpipe.Cache
	if opts.hal {
		provider, err := openNoopProvider()
		if err != nil {
			return err
		}
		defer provider.destroy()
		cache, err = halpipe.NewCacheFromProvider(provider)
		if err != nil {
			return err
		}
		defer cache.Destroy()
		hb = halpipe.NewBackend(rec, cache, halpipe.TargetFormat(provider, bs.purpose))
		backend = hb
	}

	e := overlay.New()
	for range sf.Frames {
		rec.Reset()
		f := &frame.Frame{
			Ctx:     bs.ctx,
			Backend: backend,
			Purpose: bs.purpose,
			Framebuffers: &draw.FramebufferList{
				Default: &draw.Framebuffer{Name: "overlay_default"},
				InFront: &draw.Framebuffer{Name: "overlay_in_front"},
			},
		}
		e.Init(f)
		e.CacheInit(f)
		for _, ob := range bs.objects {
			e.CachePopulate(f, ob)
		}
		e.CacheFinish(f)
		e.Draw(f)
	}

	if !opts.quiet {
		for _, cmd := range rec.Commands() {
			fmt.Fprintln(w, cmd)
		}
		fmt.Fprintln(w)
	}

	calls := 0
	for _, d := range rec.Draws() {
		calls += d.Calls
	}
	st := e.Wireframe().Stats()
	p := message.NewPrinter(language.English)
	p.Fprintf(w, "mode %v: %d objects, %d submissions, %d calls\n",
		e.Private().Mode, len(bs.objects), len(rec.Draws()), calls)
	p.Fprintf(w, "wireframe: %d slow path, %d fast path, %d loose edges, %d loose points\n",
		st.SlowPath, st.FastPath, st.LooseEdges, st.LoosePoints)

	if hb != nil {
		cs := cache.Stats()
		p.Fprintf(w, "pipelines: %d created, %d modules, %d hits\n", cs.Pipelines, cs.Modules, cs.Hits)
		return hb.Err()
	}
	return nil
}

// noopProvider exposes a noop HAL device as a gpucontext provider.
type noopProvider struct {
	instance hal.Instance
	device   hal.Device
	queue    hal.Queue
}

func (p *noopProvider) Device() gpucontext.Device { return p.device }
func (p *noopProvider) Queue() gpucontext.Queue   { return p.queue }

// SurfaceFormat reports no surface: the trace is headless.
func (p *noopProvider) SurfaceFormat() gputypes.TextureFormat {
	return gputypes.TextureFormatUndefined
}

func (p *noopProvider) Adapter() gpucontext.Adapter { return nil }

func (p *noopProvider) AdapterInfo() gpucontext.AdapterInfo {
	return gpucontext.AdapterInfo{Name: "noop", Type: gpucontext.AdapterTypeSoftware}
}

func (p *noopProvider) destroy() {
	p.device.Destroy()
	p.instance.Destroy()
}

func openNoopProvider() (*noopProvider, error) {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return nil, fmt.Errorf("create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("no adapter")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("open device: %w", err)
	}
	return &noopProvider{instance: instance, device: openDev.Device, queue: openDev.Queue}, nil
}
