// Package formgen implements the formgen command: writing the blank
// templates, filling a leave request from a JSON file and checking the
// result with pdfcpu.
package formgen

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/OWENATOR-3000/staffPortal/internal/leaveform"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/apperror"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"go.uber.org/zap"
)

const usage = `usage:
  formgen blank [-out DIR]
  formgen fill -in data.json -out form.pdf [-checklist]
  formgen verify FILE...`

var ErrUsage = errors.New(usage)

type Runner struct {
	renderer    leaveform.Renderer
	templateDir string
	stdout      io.Writer
	logger      *zap.Logger
}

// NewRunner builds a Runner; templateDir is the default output directory
// of the blank subcommand.
func NewRunner(renderer leaveform.Renderer, templateDir string, stdout io.Writer, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if templateDir == "" {
		templateDir = "."
	}
	return &Runner{
		renderer:    renderer,
		templateDir: templateDir,
		stdout:      stdout,
		logger:      logger.Named("formgen"),
	}
}

// Run dispatches args (without the program name) to a subcommand.
func (r *Runner) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return ErrUsage
	}

	switch args[0] {
	case "blank":
		fs := flag.NewFlagSet("blank", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		out := fs.String("out", r.templateDir, "output directory")
		if err := fs.Parse(args[1:]); err != nil {
			return fmt.Errorf("%w\n%v", ErrUsage, err)
		}
		_, err := r.Blank(ctx, *out)
		return err

	case "fill":
		fs := flag.NewFlagSet("fill", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		in := fs.String("in", "", "leave request JSON file")
		out := fs.String("out", "", "output PDF path")
		checklist := fs.Bool("checklist", false, "render the checklist layout")
		if err := fs.Parse(args[1:]); err != nil {
			return fmt.Errorf("%w\n%v", ErrUsage, err)
		}
		if *in == "" || *out == "" {
			return ErrUsage
		}
		return r.Fill(ctx, *in, *out, *checklist)

	case "verify":
		if len(args) < 2 {
			return ErrUsage
		}
		return r.Verify(args[1:])

	default:
		return ErrUsage
	}
}

// Blank writes every blank template into dir under its fixed file name and
// returns the written paths.
func (r *Runner) Blank(ctx context.Context, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	service := leaveform.NewService(r.renderer, dir, r.logger)

	paths := make([]string, 0, len(leaveform.Templates))
	for _, tpl := range leaveform.Templates {
		path := filepath.Join(dir, tpl.Filename())
		if err := writeTemplate(ctx, service, tpl, path); err != nil {
			return paths, err
		}
		r.logger.Info("template written", zap.String("template", string(tpl)), zap.String("path", path))
		fmt.Fprintln(r.stdout, path)
		paths = append(paths, path)
	}
	return paths, nil
}

func writeTemplate(ctx context.Context, service leaveform.Service, tpl leaveform.Template, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := service.WriteTemplate(ctx, tpl, f); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	return f.Close()
}

// Fill renders the leave request stored as JSON at inPath to outPath.
func (r *Runner) Fill(ctx context.Context, inPath, outPath string, checklist bool) error {
	req, err := readLeaveRequest(inPath)
	if err != nil {
		return err
	}

	// render next to the destination so the final rename stays on one filesystem
	dir := filepath.Dir(outPath)
	service := leaveform.NewService(r.renderer, dir, r.logger)

	render := service.CreateLeaveForm
	if checklist {
		render = service.CreateLeaveChecklist
	}

	form, err := render(ctx, req)
	if err != nil {
		return err
	}
	if err := os.Rename(form.Path, outPath); err != nil {
		os.Remove(form.Path)
		return fmt.Errorf("move %s: %w", form.Path, err)
	}

	r.logger.Info("leave form written",
		zap.Stringp("employee_name", req.EmployeeName),
		zap.String("path", outPath),
		zap.Bool("checklist", checklist),
	)
	fmt.Fprintln(r.stdout, outPath)
	return nil
}

func readLeaveRequest(path string) (leaveform.LeaveRequest, error) {
	var req leaveform.LeaveRequest

	raw, err := os.ReadFile(path)
	if err != nil {
		return req, fmt.Errorf("read %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, apperror.MapValidationError(err)
	}
	if err := apperror.Validate(req); err != nil {
		return req, err
	}
	return req, nil
}

// Verify validates every file with pdfcpu and prints its page count. All
// files are checked; the first failure is returned.
func (r *Runner) Verify(paths []string) error {
	api.DisableConfigDir()

	var firstErr error
	for _, path := range paths {
		pages, err := verifyFile(path)
		if err != nil {
			r.logger.Warn("invalid pdf", zap.String("path", path), zap.Error(err))
			fmt.Fprintf(r.stdout, "%s: invalid: %v\n", path, err)
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", path, err)
			}
			continue
		}
		fmt.Fprintf(r.stdout, "%s: ok, %d page(s)\n", path, pages)
	}
	return firstErr
}

func verifyFile(path string) (int, error) {
	if err := api.ValidateFile(path, nil); err != nil {
		return 0, err
	}
	return api.PageCountFile(path)
}
