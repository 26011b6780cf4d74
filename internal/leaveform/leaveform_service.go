package leaveform

import (
	"context"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	leaveformerrors "github.com/OWENATOR-3000/staffPortal/internal/leaveform/errors"
	"github.com/OWENATOR-3000/staffPortal/internal/pdfcanvas"
	"github.com/OWENATOR-3000/staffPortal/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RenderedForm is a finished PDF on disk. The caller owns Path and must
// remove it once the file has been delivered.
type RenderedForm struct {
	Path     string
	Filename string
}

//go:generate mockgen -source=leaveform_service.go -destination=mock/leaveform_service_mock.go -package=mock
type Service interface {
	CreateLeaveForm(ctx context.Context, req LeaveRequest) (RenderedForm, error)
	CreateLeaveChecklist(ctx context.Context, req LeaveRequest) (RenderedForm, error)
	WriteTemplate(ctx context.Context, tpl Template, w io.Writer) error
}

type service struct {
	renderer Renderer
	tempDir  string
	opts     []pdfcanvas.Option
	logger   *zap.Logger
}

// NewService renders into tempDir, or the OS temp directory when empty.
func NewService(renderer Renderer, tempDir string, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaveform.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveform.service")
	}
	if tempDir == "" {
		tempDir = os.TempDir()
	}
	return &service{renderer: renderer, tempDir: tempDir, logger: l}
}

// NewServiceWithOptions is NewService with extra document options applied
// to every rendered PDF.
func NewServiceWithOptions(renderer Renderer, tempDir string, opts []pdfcanvas.Option, logger ...*zap.Logger) Service {
	s := NewService(renderer, tempDir, logger...).(*service)
	s.opts = opts
	return s
}

func (s *service) CreateLeaveForm(ctx context.Context, req LeaveRequest) (RenderedForm, error) {
	return s.renderToTemp(ctx, req, req.Filename(), leaveFormTitle, s.renderer.LeaveForm)
}

func (s *service) CreateLeaveChecklist(ctx context.Context, req LeaveRequest) (RenderedForm, error) {
	return s.renderToTemp(ctx, req, req.ChecklistFilename(), leaveFormTitle, s.renderer.LeaveChecklist)
}

func (s *service) WriteTemplate(ctx context.Context, tpl Template, w io.Writer) error {
	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := ParseTemplate(string(tpl)); err != nil {
		return err
	}

	doc := s.newDocument(tpl.title())
	if err := s.renderer.Draw(doc, tpl); err != nil {
		log.Error("draw template failed", zap.String("template", string(tpl)), zap.Error(err))
		return leaveformerrors.RenderFailed(err)
	}
	if err := doc.Output(w); err != nil {
		log.Error("write template failed", zap.String("template", string(tpl)), zap.Error(err))
		return leaveformerrors.RenderFailed(err)
	}

	log.Debug("template rendered", zap.String("template", string(tpl)))
	return nil
}

func (s *service) renderToTemp(
	ctx context.Context,
	req LeaveRequest,
	filename string,
	title string,
	draw func(pdfcanvas.Canvas, LeaveRequest) error,
) (RenderedForm, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	path := filepath.Join(s.tempDir, TempFileName())
	doc := s.newDocument(title)

	if err := draw(doc, req); err != nil {
		log.Error("draw leave form failed", zap.Stringp("employee_name", req.EmployeeName), zap.Error(err))
		return RenderedForm{}, leaveformerrors.RenderFailed(err)
	}

	if err := doc.Save(path); err != nil {
		removeQuietly(log, path)
		log.Error("save leave form failed", zap.String("path", path), zap.Error(err))
		return RenderedForm{}, leaveformerrors.RenderFailed(err)
	}

	log.Info("leave form rendered",
		zap.Stringp("employee_name", req.EmployeeName),
		zap.String("path", path),
	)
	return RenderedForm{Path: path, Filename: filename}, nil
}

func (s *service) newDocument(title string) *pdfcanvas.Document {
	opts := append([]pdfcanvas.Option{pdfcanvas.WithTitle(title)}, s.opts...)
	return pdfcanvas.New(pdfcanvas.A4, opts...)
}

// TempFileName returns temp_<hex of a random v4 UUID>.pdf.
func TempFileName() string {
	id := uuid.New()
	return "temp_" + hex.EncodeToString(id[:]) + ".pdf"
}

func removeQuietly(log *zap.Logger, path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn("remove temp file failed", zap.String("path", path), zap.Error(err))
	}
}
