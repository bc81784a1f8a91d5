package extract

import (
	"context"
	"errors"
	"testing"
)

func TestJoinPagesSkipsEmptyPages(t *testing.T) {
	got, err := joinPages(fakePages{"A", "", "B"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A\nB" {
		t.Fatalf("expected %q, got %q", "A\nB", got)
	}
}

func TestJoinPagesWhitespaceOnlyPageIsEmpty(t *testing.T) {
	got, err := joinPages(fakePages{"  \n\t", "Only page\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Only page" {
		t.Fatalf("expected %q, got %q", "Only page", got)
	}
}

func TestJoinPagesNoPages(t *testing.T) {
	got, err := joinPages(fakePages{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty text, got %q", got)
	}
}

type failingPages struct{}

func (failingPages) NumPage() int { return 2 }

func (failingPages) PageText(num int) (string, error) {
	if num == 2 {
		return "", errors.New("bad content stream")
	}
	return "first", nil
}

func TestJoinPagesPropagatesPageError(t *testing.T) {
	_, err := joinPages(failingPages{})
	if err == nil {
		t.Fatal("expected page error")
	}
	if err.Error() != "pdf page 2: bad content stream" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExtractPDFSkipsBlankPage(t *testing.T) {
	data := buildPDF(t, "A", "", "B")

	got, err := New(1).ExtractBytes(context.Background(), "resume.pdf", data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "A\nB" {
		t.Fatalf("expected %q, got %q", "A\nB", got)
	}
}

func TestExtractPDFSinglePage(t *testing.T) {
	data := buildPDF(t, "Jane")

	got, err := New(1).ExtractBytes(context.Background(), "CV.PDF", data)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if got != "Jane" {
		t.Fatalf("expected %q, got %q", "Jane", got)
	}
}

func TestJoinPagesTrimsLeadingLineBreak(t *testing.T) {
	got, err := joinPages(fakePages{"\nA", "", "\nB\n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "A\nB" {
		t.Fatalf("expected %q, got %q", "A\nB", got)
	}
}
