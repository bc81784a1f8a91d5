package coverletters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"coverletter-backend/internal/extract"
	"coverletter-backend/internal/llm"
	"coverletter-backend/internal/shared/metrics"
	"coverletter-backend/internal/shared/telemetry"
	"coverletter-backend/internal/shared/util"
)

// ResumeExtractor turns an uploaded resume into plain text.
type ResumeExtractor interface {
	Extract(ctx context.Context, filename string, r io.Reader) (string, error)
}

// Service runs the extract-then-complete pipeline for one request.
type Service struct {
	Extractor ResumeExtractor
	Completer llm.Completer
	// Timeout bounds the completion call. Zero means no extra bound beyond ctx.
	Timeout time.Duration
}

// NewService constructs a Service.
func NewService(extractor ResumeExtractor, completer llm.Completer, timeout time.Duration) *Service {
	return &Service{Extractor: extractor, Completer: completer, Timeout: timeout}
}

// Generate extracts the resume text and asks the completer for a recruiter message and
// cover letter. The completer is never called when extraction fails.
func (s *Service) Generate(ctx context.Context, filename string, r io.Reader, jobDescription string) (llm.CoverLetter, error) {
	if jobDescription == "" {
		return llm.CoverLetter{}, fmt.Errorf("%w: job_description is required", ErrInvalidInput)
	}
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	metrics.IncGenerationStarted()

	start := time.Now()
	resumeText, err := s.Extractor.Extract(ctx, filename, r)
	extractMs := float64(time.Since(start).Microseconds()) / 1000
	if err != nil {
		s.logExtractionFailure(requestID, filename, err)
		return llm.CoverLetter{}, err
	}
	metrics.ObserveExtractionMs(extractMs)

	completeCtx := ctx
	if s.Timeout > 0 {
		var cancel context.CancelFunc
		completeCtx, cancel = context.WithTimeout(ctx, s.Timeout)
		defer cancel()
	}

	start = time.Now()
	out, err := s.Completer.Complete(completeCtx, BuildPrompt(resumeText, jobDescription))
	completeMs := float64(time.Since(start).Microseconds()) / 1000
	metrics.ObserveCompletionMs(completeMs)
	if err != nil {
		metrics.IncCompletionFailed()
		err = llm.Fail("", err)
		telemetry.Error("generation.completion_failed", map[string]any{
			"request_id":  requestID,
			"duration_ms": completeMs,
			"error":       err.Error(),
		})
		return llm.CoverLetter{}, err
	}

	metrics.IncGenerationCompleted()
	telemetry.Info("generation.complete", map[string]any{
		"request_id":         requestID,
		"resume_chars":       len(resumeText),
		"resume_fingerprint": util.Fingerprint([]byte(resumeText)),
		"extract_ms":         extractMs,
		"completion_ms":      completeMs,
		"cover_letter_chars": len(out.CoverLetter),
	})
	return out, nil
}

func (s *Service) logExtractionFailure(requestID, filename string, err error) {
	fields := map[string]any{
		"request_id": requestID,
		"filename":   filename,
		"error":      err.Error(),
	}
	var unsupported *extract.UnsupportedFormatError
	if errors.As(err, &unsupported) {
		fields["tag"] = unsupported.Tag
		telemetry.Warn("generation.unsupported_format", fields)
		return
	}
	metrics.IncExtractionFailed()
	var extractErr *extract.ExtractionError
	if errors.As(err, &extractErr) {
		fields["format"] = extractErr.Format.String()
		fields["detected_mime"] = extractErr.DetectedMIME
	}
	telemetry.Error("generation.extraction_failed", fields)
}

type requestIDKey struct{}

// WithRequestID attaches a request id that Generate includes in its log lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey{}, id)
}
