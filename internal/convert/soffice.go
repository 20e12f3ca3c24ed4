package convert

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"word2pdf/internal/logger"
)

// candidateBinaries are the headless office binaries probed on PATH when no
// explicit binary is configured.
var candidateBinaries = []string{"soffice", "libreoffice"}

// executor abstracts command execution for testing.
type executor interface {
	LookPath(file string) (string, error)
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (osExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (osExecutor) Run(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return string(out), err
}

// OfficeLauncher launches fresh headless instances of an installed office
// suite. Each session runs under its own user profile directory so it never
// attaches to, or disturbs, an instance the operator already has open.
type OfficeLauncher struct {
	binary string
	exec   executor
	log    logger.Logger
}

// NewOfficeLauncher resolves the office binary and returns a launcher.
// An empty binary autodetects from PATH.
func NewOfficeLauncher(binary string, log logger.Logger) (*OfficeLauncher, error) {
	return newOfficeLauncher(binary, osExecutor{}, log)
}

func newOfficeLauncher(binary string, exec executor, log logger.Logger) (*OfficeLauncher, error) {
	if binary != "" {
		resolved, err := exec.LookPath(binary)
		if err != nil {
			return nil, fmt.Errorf("word processor binary %q not found: %w", binary, err)
		}
		return &OfficeLauncher{binary: resolved, exec: exec, log: log}, nil
	}

	for _, candidate := range candidateBinaries {
		if resolved, err := exec.LookPath(candidate); err == nil {
			return &OfficeLauncher{binary: resolved, exec: exec, log: log}, nil
		}
	}
	return nil, fmt.Errorf("no word processor found on PATH (tried %s)", strings.Join(candidateBinaries, ", "))
}

// Binary returns the resolved binary path.
func (l *OfficeLauncher) Binary() string {
	return l.binary
}

// Launch prepares one isolated session. The instance itself starts when the
// document is exported; the profile directory created here is what guarantees
// exclusivity against any copy of the suite the operator is running.
func (l *OfficeLauncher) Launch(ctx context.Context) (Session, error) {
	profile := filepath.Join(os.TempDir(), "word2pdf-"+uuid.NewString())
	if err := os.MkdirAll(profile, 0o755); err != nil {
		return nil, fmt.Errorf("creating session profile: %w", err)
	}

	l.log.Debug("OfficeLauncher", "session launched", map[string]interface{}{
		"binary":  l.binary,
		"profile": profile,
	})

	return &officeSession{
		binary:  l.binary,
		profile: profile,
		exec:    l.exec,
		log:     l.log,
	}, nil
}

// officeSession drives one conversion through the office binary's headless
// command interface. Headless mode keeps the instance invisible and
// suppresses every interactive prompt, so it cannot block on operator input.
type officeSession struct {
	binary  string
	profile string
	exec    executor
	log     logger.Logger
	docPath string
}

func (s *officeSession) Open(ctx context.Context, path string) error {
	if s.docPath != "" {
		return fmt.Errorf("session already has %s open", s.docPath)
	}
	if path == "" {
		return fmt.Errorf("empty document path")
	}
	s.docPath = path
	return nil
}

func (s *officeSession) ExportPDF(ctx context.Context, path string, hint ExportHint) error {
	if s.docPath == "" {
		return fmt.Errorf("no document open")
	}

	// The binary names its output after the input document, so export into a
	// scratch directory inside the session profile and move the result to
	// the requested path afterwards.
	scratch := filepath.Join(s.profile, "out")
	if err := os.MkdirAll(scratch, 0o755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}

	args := []string{
		"--headless",
		"--invisible",
		"--norestore",
		"--nolockcheck",
		"-env:UserInstallation=file://" + s.profile,
		"--convert-to", exportFilter(hint),
		"--outdir", scratch,
		s.docPath,
	}

	out, err := s.exec.Run(ctx, s.binary, args...)
	if err != nil {
		return fmt.Errorf("word processor export failed: %w (%s)", err, strings.TrimSpace(out))
	}

	base := strings.TrimSuffix(filepath.Base(s.docPath), filepath.Ext(s.docPath))
	produced := filepath.Join(scratch, base+".pdf")
	if _, err := os.Stat(produced); err != nil {
		return fmt.Errorf("word processor reported success but produced no PDF (%s)", strings.TrimSpace(out))
	}

	if err := moveFile(produced, path); err != nil {
		return fmt.Errorf("placing PDF at %s: %w", path, err)
	}
	return nil
}

func (s *officeSession) Close() error {
	s.docPath = ""
	return nil
}

func (s *officeSession) Quit() error {
	return os.RemoveAll(s.profile)
}

// exportFilter builds the PDF export filter spec for the optimization hint.
// Hint 2 minimizes file size by downsampling and recompressing images,
// hint 0 uses the filter defaults, and no hint exports losslessly for
// maximum fidelity.
func exportFilter(hint ExportHint) string {
	const base = "pdf:writer_pdf_Export"

	if !hint.Set {
		return base + `:{"UseLosslessCompression":{"type":"boolean","value":"true"}}`
	}
	if hint.Value == hintMinimizeSize {
		return base + `:{"ReduceImageResolution":{"type":"boolean","value":"true"},` +
			`"MaxImageResolution":{"type":"long","value":"150"},` +
			`"Quality":{"type":"long","value":"50"}}`
	}
	return base
}

// moveFile renames src to dst, copying when rename fails (cross-device).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return os.Remove(src)
}
