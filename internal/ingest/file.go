package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gen2brain/go-fitz"

	"github.com/spigell/hire-screener/internal/screening"
)

// ErrUnsupportedFormat is returned for files that are neither .txt nor .pdf.
var ErrUnsupportedFormat = errors.New("unsupported résumé format")

// File is a screening.Source backed by a résumé on disk. The candidate name is the
// file name without its extension.
type File struct {
	Path string
}

var _ screening.Source = File{}

func (f File) Name() string { return f.Path }

// Load reads the file and extracts the profile.
func (f File) Load(ctx context.Context) (screening.Profile, error) {
	if err := ctx.Err(); err != nil {
		return screening.Profile{}, err
	}

	text, err := ReadText(f.Path)
	if err != nil {
		return screening.Profile{}, err
	}

	return Extract(CandidateName(f.Path), text), nil
}

// CandidateName derives a display name from a résumé path.
func CandidateName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ReadText returns the plain text of a .txt or .pdf file.
func ReadText(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read text file: %w", err)
		}
		return string(data), nil
	case ".pdf":
		return readPDF(path)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

func readPDF(path string) (string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	var b strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("failed to extract text from page %d: %w", i, err)
		}
		b.WriteString(text)
		b.WriteString("\n")
	}

	return b.String(), nil
}

// Sources expands paths, directories and glob patterns into file sources.
// Directories contribute their .txt and .pdf entries. Duplicates are removed; order is
// the order of first appearance, with glob and directory matches sorted by name.
func Sources(patterns []string) ([]screening.Source, error) {
	seen := make(map[string]struct{})
	var sources []screening.Source

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		sources = append(sources, File{Path: path})
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			// Keep the literal path so the batch reports it as a named failure.
			add(pattern)
			continue
		}
		sort.Strings(matches)

		for _, match := range matches {
			info, err := os.Stat(match)
			if err != nil || !info.IsDir() {
				add(match)
				continue
			}

			entries, err := os.ReadDir(match)
			if err != nil {
				return nil, fmt.Errorf("read directory %s: %w", match, err)
			}
			for _, entry := range entries {
				ext := strings.ToLower(filepath.Ext(entry.Name()))
				if entry.IsDir() || (ext != ".txt" && ext != ".pdf") {
					continue
				}
				add(filepath.Join(match, entry.Name()))
			}
		}
	}

	return sources, nil
}
