package coverletters

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/shared/server/middleware"
	"coverletter-backend/internal/shared/server/respond"
	"coverletter-backend/internal/shared/util"
)

const defaultMaxUploadBytes = 10 << 20

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc            *Service
	MaxUploadBytes int64
}

// NewHandler constructs a Handler. A non-positive limit falls back to 10MB.
func NewHandler(svc *Service, maxUploadBytes int64) *Handler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &Handler{Svc: svc, MaxUploadBytes: maxUploadBytes}
}

// RegisterRoutes attaches the generate route.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large", "resume exceeds the upload size limit")
			return
		}
		respond.Error(c, http.StatusBadRequest, "validation_error", "resume file is required")
		return
	}
	jobDescription, ok := c.GetPostForm("job_description")
	if !ok || jobDescription == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job_description is required")
		return
	}

	filename := util.BaseFileName(fileHeader.Filename)
	c.Set("resumeFormat", formatLabel(filename))
	c.Set("resumeSizeBytes", fileHeader.Size)

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read resume file")
		return
	}
	defer file.Close()

	ctx := WithRequestID(c.Request.Context(), middleware.RequestIDFromContext(c))
	out, err := h.Svc.Generate(ctx, filename, file, jobDescription)
	if err != nil {
		writeError(c, err)
		return
	}

	respond.OK(c, out)
}

func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
	case errors.Is(err, extract.ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "unsupported_format", err.Error())
	case errors.Is(err, extract.ErrExtraction):
		respond.Error(c, http.StatusInternalServerError, "extraction_failed", err.Error())
	case errors.Is(err, llm.ErrCompletion):
		respond.Error(c, http.StatusInternalServerError, "completion_failed", err.Error())
	default:
		respond.Error(c, http.StatusInternalServerError, "internal", "Unexpected server error")
	}
}

func formatLabel(filename string) string {
	if f, err := extract.ParseFormat(filename); err == nil {
		return f.String()
	}
	if i := strings.LastIndex(filename, "."); i >= 0 {
		return strings.ToLower(filename[i+1:])
	}
	return ""
}
