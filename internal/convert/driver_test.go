package convert

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"word2pdf/internal/logger"
)

// fakeSession records the calls made against it and fails on demand.
type fakeSession struct {
	calls     []string
	openErr   error
	exportErr error
	closeErr  error
	quitErr   error

	exportPath string
	exportHint ExportHint

	// blockOnExport makes ExportPDF wait for context cancellation, emulating
	// a hung external process.
	blockOnExport bool
}

func (f *fakeSession) Open(ctx context.Context, path string) error {
	f.calls = append(f.calls, "open")
	return f.openErr
}

func (f *fakeSession) ExportPDF(ctx context.Context, path string, hint ExportHint) error {
	f.calls = append(f.calls, "export")
	f.exportPath = path
	f.exportHint = hint
	if f.blockOnExport {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.exportErr
}

func (f *fakeSession) Close() error {
	f.calls = append(f.calls, "close")
	return f.closeErr
}

func (f *fakeSession) Quit() error {
	f.calls = append(f.calls, "quit")
	return f.quitErr
}

// fakeLauncher counts launches so tests can assert the external application
// was never started for precondition failures.
type fakeLauncher struct {
	session   *fakeSession
	launchErr error
	launches  int
}

func (f *fakeLauncher) Launch(ctx context.Context) (Session, error) {
	f.launches++
	if f.launchErr != nil {
		return nil, f.launchErr
	}
	return f.session, nil
}

func writeInput(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "report.docx")
	require.NoError(t, os.WriteFile(path, []byte("doc"), 0o644))
	return path
}

func TestConvertSuccess(t *testing.T) {
	session := &fakeSession{}
	launcher := &fakeLauncher{session: session}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	input := writeInput(t)
	output := filepath.Join(t.TempDir(), "report.pdf")

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  input,
		OutputPath: output,
		Quality:    QualityStandard,
	})

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, FailureNone, outcome.Kind)
	assert.Empty(t, outcome.ErrorDetail)
	assert.Equal(t, []string{"open", "export", "close", "quit"}, session.calls)
	assert.Equal(t, 1, launcher.launches)
}

func TestConvertInputNotFound(t *testing.T) {
	launcher := &fakeLauncher{session: &fakeSession{}}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  filepath.Join(t.TempDir(), "missing.docx"),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
	})

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, FailureInputNotFound, outcome.Kind)
	assert.NotEmpty(t, outcome.ErrorDetail)
	assert.Zero(t, launcher.launches, "external application must never be started")
}

func TestConvertOutputNotWritable(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("write probe cannot fail when running as root")
	}

	launcher := &fakeLauncher{session: &fakeSession{}}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	input := writeInput(t)
	readonly := t.TempDir()
	require.NoError(t, os.Chmod(readonly, 0o555))
	t.Cleanup(func() { os.Chmod(readonly, 0o755) })

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  input,
		OutputPath: filepath.Join(readonly, "out.pdf"),
	})

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, FailureOutputNotWritable, outcome.Kind)
	assert.Zero(t, launcher.launches, "external application must never be started")
}

func TestConvertMissingOutputDirPassesProbe(t *testing.T) {
	// A destination directory that does not exist yet is treated as
	// writable; the external application may create the path itself.
	session := &fakeSession{}
	launcher := &fakeLauncher{session: session}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  writeInput(t),
		OutputPath: filepath.Join(t.TempDir(), "does", "not", "exist", "out.pdf"),
	})

	assert.True(t, outcome.Succeeded)
	assert.Equal(t, 1, launcher.launches)
}

func TestConvertAutomationFailures(t *testing.T) {
	tests := []struct {
		name      string
		session   *fakeSession
		launchErr error
		wantCalls []string
	}{
		{
			name:      "launch failure",
			session:   &fakeSession{},
			launchErr: errors.New("application not installed"),
			wantCalls: nil,
		},
		{
			name:      "open failure",
			session:   &fakeSession{openErr: errors.New("document is corrupt")},
			wantCalls: []string{"open", "quit"},
		},
		{
			name:      "export failure",
			session:   &fakeSession{exportErr: errors.New("disk full")},
			wantCalls: []string{"open", "export", "quit"},
		},
		{
			name:      "close failure",
			session:   &fakeSession{closeErr: errors.New("ipc fault")},
			wantCalls: []string{"open", "export", "close", "quit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			launcher := &fakeLauncher{session: tt.session, launchErr: tt.launchErr}
			driver := NewDriver(launcher, logger.Nop{}, 0)

			outcome := driver.Convert(context.Background(), Request{
				InputPath:  writeInput(t),
				OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
			})

			assert.False(t, outcome.Succeeded)
			assert.Equal(t, FailureAutomation, outcome.Kind)
			assert.NotEmpty(t, outcome.ErrorDetail)
			assert.Equal(t, tt.wantCalls, tt.session.calls, "teardown must run on every exit path")
		})
	}
}

func TestConvertTeardownErrorSwallowed(t *testing.T) {
	session := &fakeSession{quitErr: errors.New("terminate failed")}
	launcher := &fakeLauncher{session: session}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  writeInput(t),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
	})

	assert.True(t, outcome.Succeeded, "teardown errors never override the primary outcome")
}

func TestConvertTimeout(t *testing.T) {
	session := &fakeSession{blockOnExport: true}
	launcher := &fakeLauncher{session: session}
	driver := NewDriver(launcher, logger.Nop{}, 20*time.Millisecond)

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  writeInput(t),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
	})

	assert.False(t, outcome.Succeeded)
	assert.Equal(t, FailureTimeout, outcome.Kind)
	assert.Contains(t, session.calls, "quit")
}

func TestConvertPassesQualityHint(t *testing.T) {
	session := &fakeSession{}
	launcher := &fakeLauncher{session: session}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	driver.Convert(context.Background(), Request{
		InputPath:  writeInput(t),
		OutputPath: filepath.Join(t.TempDir(), "out.pdf"),
		Quality:    QualityMinimum,
	})

	assert.Equal(t, ExportHint{Set: true, Value: 2}, session.exportHint)
}

func TestConvertResolvesRelativeOutput(t *testing.T) {
	session := &fakeSession{}
	launcher := &fakeLauncher{session: session}
	driver := NewDriver(launcher, logger.Nop{}, 0)

	outcome := driver.Convert(context.Background(), Request{
		InputPath:  writeInput(t),
		OutputPath: "relative-out.pdf",
	})

	require.True(t, outcome.Succeeded)
	assert.True(t, filepath.IsAbs(session.exportPath), "paths handed to the automation layer must be absolute")
}
