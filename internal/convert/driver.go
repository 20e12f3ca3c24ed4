// Package convert implements the single-document conversion driver. It owns
// all interaction with the external word-processing application and all
// error translation; callers receive an Outcome, never an error or panic.
package convert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"word2pdf/internal/logger"
)

// Driver converts one document per call by driving an external
// word-processing application through a Session. It is stateless between
// calls; every conversion gets a fresh application instance.
type Driver struct {
	launcher Launcher
	log      logger.Logger
	timeout  time.Duration
}

// NewDriver creates a driver. A zero timeout disables the conversion
// deadline; a hung external process then blocks the request indefinitely.
func NewDriver(launcher Launcher, log logger.Logger, timeout time.Duration) *Driver {
	return &Driver{
		launcher: launcher,
		log:      log,
		timeout:  timeout,
	}
}

// Convert runs the full conversion sequence for one request. Preconditions
// (input exists, output directory writable) are checked before the external
// application is started, because launching and tearing it down is expensive
// and a predictable permission failure should not pay that cost. Any failure
// mid-sequence is total failure; a retry re-executes everything with a fresh
// instance.
func (d *Driver) Convert(ctx context.Context, req Request) (outcome Outcome) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			outcome = failure(FailureUnknown, fmt.Sprintf("conversion panicked: %v", r))
			d.log.Error("Driver", fmt.Errorf("panic during conversion: %v", r), map[string]interface{}{
				"input": req.InputPath,
			})
		}
	}()

	if _, err := os.Stat(req.InputPath); err != nil {
		d.log.Warning("Driver", "input document not found", map[string]interface{}{
			"input": req.InputPath,
		})
		return failure(FailureInputNotFound, fmt.Sprintf("input document not found: %s", req.InputPath))
	}

	if err := probeWritable(filepath.Dir(req.OutputPath)); err != nil {
		d.log.Warning("Driver", "output directory rejected write probe", map[string]interface{}{
			"output": req.OutputPath,
			"reason": err.Error(),
		})
		return failure(FailureOutputNotWritable,
			fmt.Sprintf("cannot write to output directory %s: %v", filepath.Dir(req.OutputPath), err))
	}

	// The automation interface is unreliable with relative paths.
	input, err := filepath.Abs(req.InputPath)
	if err != nil {
		return failure(FailureUnknown, fmt.Sprintf("resolving input path: %v", err))
	}
	output, err := filepath.Abs(req.OutputPath)
	if err != nil {
		return failure(FailureUnknown, fmt.Sprintf("resolving output path: %v", err))
	}

	if d.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	d.log.Info("Driver", "conversion started", map[string]interface{}{
		"input":   input,
		"output":  output,
		"quality": req.Quality.String(),
	})

	session, err := d.launcher.Launch(ctx)
	if err != nil {
		return d.automationFailure(ctx, "launching word processor", err)
	}
	defer func() {
		// Teardown runs on every exit path. Failures here are swallowed so
		// cleanup never masks the primary outcome.
		if err := session.Quit(); err != nil {
			d.log.Warning("Driver", "teardown failed", map[string]interface{}{
				"reason": err.Error(),
			})
		}
	}()

	if err := session.Open(ctx, input); err != nil {
		return d.automationFailure(ctx, "opening document", err)
	}

	if err := session.ExportPDF(ctx, output, req.Quality.Hint()); err != nil {
		return d.automationFailure(ctx, "exporting PDF", err)
	}

	if err := session.Close(); err != nil {
		return d.automationFailure(ctx, "closing document", err)
	}

	d.log.Info("Driver", "conversion complete", map[string]interface{}{
		"output":      output,
		"duration_ms": time.Since(start).Milliseconds(),
	})
	return success()
}

func (d *Driver) automationFailure(ctx context.Context, step string, err error) Outcome {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		d.log.Error("Driver", err, map[string]interface{}{"step": step, "timeout": d.timeout.String()})
		return failure(FailureTimeout, fmt.Sprintf("%s: conversion exceeded %s deadline", step, d.timeout))
	}

	d.log.Error("Driver", err, map[string]interface{}{"step": step})
	return failure(FailureAutomation, fmt.Sprintf("%s: %v", step, err))
}

// probeWritable verifies the directory accepts writes by creating and
// removing a uniquely-named temporary file. A directory that does not exist
// passes: the external application is permitted to create the final output
// path itself.
func probeWritable(dir string) error {
	if dir == "" {
		return nil
	}
	if _, err := os.Stat(dir); err != nil {
		return nil
	}

	probe := filepath.Join(dir, ".write-probe-"+uuid.NewString()+".tmp")
	f, err := os.Create(probe)
	if err != nil {
		return err
	}
	f.Close()
	os.Remove(probe)
	return nil
}
