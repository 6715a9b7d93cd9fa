package service

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// DocumentService turns uploaded manuals into fixed-size corpus chunks.
// PDF extraction shells out to pdftotext; anything else is read as plain
// text.
type DocumentService struct {
	chunkSize int
}

func NewDocumentService(chunkSize int) *DocumentService {
	if chunkSize <= 0 {
		chunkSize = 500
	}
	return &DocumentService{chunkSize: chunkSize}
}

// ExtractText returns the raw text of the file at path.
func (s *DocumentService) ExtractText(path string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return extractPDFText(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

func extractPDFText(path string) (string, error) {
	cmd := exec.Command("pdftotext", "-layout", path, "-")
	out, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("pdftotext failed: %w", err)
	}
	return string(out), nil
}

// CleanText collapses all whitespace runs to single spaces.
func (s *DocumentService) CleanText(text string) string {
	return strings.TrimSpace(strings.Join(strings.Fields(text), " "))
}

// Chunk splits cleaned text into fixed-size pieces, counted in runes so a
// multi-byte character never gets cut in half. Concatenating the chunks
// reproduces the input.
func (s *DocumentService) Chunk(text string) []string {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	chunks := make([]string, 0, len(runes)/s.chunkSize+1)
	for start := 0; start < len(runes); start += s.chunkSize {
		end := start + s.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
