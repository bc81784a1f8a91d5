package coverletters

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"coverletter-backend/internal/llm"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (llm.CoverLetter, error) {
	args := m.Called(ctx, prompt)
	return args.Get(0).(llm.CoverLetter), args.Error(1)
}

type stubExtractor struct {
	text string
	err  error
}

func (s stubExtractor) Extract(ctx context.Context, filename string, r io.Reader) (string, error) {
	return s.text, s.err
}
