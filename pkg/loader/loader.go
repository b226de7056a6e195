// SPDX-FileCopyrightText: 2023 Christoph Mewes
// SPDX-License-Identifier: MIT

package loader

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Options struct {
	// FileExtensions are the extensions of files that are picked up when
	// a directory is given as a source.
	FileExtensions []string
	// Stdin is used for the source "-".
	Stdin io.Reader
}

func NewDefaultOptions() *Options {
	return &Options{
		FileExtensions: []string{"mmd", "mermaid", "md"},
		Stdin:          os.Stdin,
	}
}

// LoadDiagram reads all sources fully into memory and concatenates them into
// a single diagram text. Sources can be files, directories or "-" for stdin.
// Markdown files contribute the contents of their ```mermaid code blocks.
func LoadDiagram(sources []string, opt *Options) (string, error) {
	if opt == nil {
		opt = NewDefaultOptions()
	}

	if len(sources) == 0 {
		sources = []string{"-"}
	}

	var buf bytes.Buffer

	for _, source := range sources {
		if err := loadSource(&buf, opt, source); err != nil {
			return "", fmt.Errorf("failed to load from %q: %w", source, err)
		}
	}

	return buf.String(), nil
}

func loadSource(buf *bytes.Buffer, opt *Options, source string) error {
	if source == "-" {
		// thank you https://stackoverflow.com/a/26567513
		if f, ok := opt.Stdin.(*os.File); ok {
			stat, err := f.Stat()
			if err == nil && stat.Mode()&os.ModeCharDevice != 0 {
				return errors.New("no data provided on stdin")
			}
		}

		return loadSourceReader(buf, opt.Stdin, false)
	}

	stat, err := os.Stat(source)
	if err != nil {
		return fmt.Errorf("invalid source: %w", err)
	}

	if stat.IsDir() {
		absSource, err := filepath.Abs(source)
		if err != nil {
			return fmt.Errorf("failed to determine absolute path: %w", err)
		}

		return loadSourceDirectory(buf, opt, absSource)
	}

	return loadSourceFile(buf, source)
}

func loadSourceFile(buf *bytes.Buffer, source string) error {
	f, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	return loadSourceReader(buf, f, hasExtension(source, []string{"md"}))
}

func loadSourceReader(buf *bytes.Buffer, source io.Reader, markdown bool) error {
	data, err := io.ReadAll(source)
	if err != nil {
		return fmt.Errorf("failed to read: %w", err)
	}

	if markdown {
		data, err = extractMermaidBlocks(data)
		if err != nil {
			return fmt.Errorf("failed to parse Markdown: %w", err)
		}
	}

	if buf.Len() > 0 && len(data) > 0 {
		buf.WriteString("\n")
	}

	buf.Write(data)

	return nil
}

func loadSourceDirectory(buf *bytes.Buffer, opt *Options, rootDir string) error {
	contents, err := os.ReadDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to read directory: %w", err)
	}

	for _, entry := range contents {
		fullPath := filepath.Join(rootDir, entry.Name())

		if entry.IsDir() {
			if err := loadSourceDirectory(buf, opt, fullPath); err != nil {
				return fmt.Errorf("failed to read directory %s: %w", fullPath, err)
			}
		} else if hasExtension(entry.Name(), opt.FileExtensions) {
			if err := loadSourceFile(buf, fullPath); err != nil {
				return fmt.Errorf("failed to read file %s: %w", fullPath, err)
			}
		}
	}

	return nil
}

func hasExtension(filename string, extensions []string) bool {
	parts := strings.Split(filename, ".")
	extension := parts[len(parts)-1]

	for _, ext := range extensions {
		if ext == extension {
			return true
		}
	}

	return false
}

// extractMermaidBlocks returns the contents of all fenced mermaid code blocks
// in a Markdown document.
func extractMermaidBlocks(source []byte) ([]byte, error) {
	var out bytes.Buffer

	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		block, ok := n.(*ast.FencedCodeBlock)
		if !ok || string(block.Language(source)) != "mermaid" {
			return ast.WalkContinue, nil
		}

		lines := block.Lines()
		for i := 0; i < lines.Len(); i++ {
			segment := lines.At(i)
			out.Write(segment.Value(source))
		}

		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}
