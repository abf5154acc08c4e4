// Package toc generates EPUB 2 navigation control (NCX) and package (OPF)
// documents for chapter directory of the HTML edition of SICP.
package toc

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/maruel/natural"
	"go.uber.org/zap"

	"sicpgen/book"
)

const (
	chapterPattern = "book-Z-H*.html"
	chapterPrefix  = "book-Z-H-"
	chapterExt     = ".html"
	coverName      = "cover.jpg"
)

var digitsRe = regexp.MustCompile(`\d+`)

// Builder produces NCX and OPF documents. Every call recomputes result from
// the table of contents and current directory listing.
type Builder struct {
	srcDir   string
	contents book.Contents
	now      func() time.Time
	log      *zap.Logger
}

type Option func(*Builder)

// WithClock sets source of the publication date.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// WithContents replaces table of contents, default is book.SICP().
func WithContents(contents book.Contents) Option {
	return func(b *Builder) {
		b.contents = contents
	}
}

// New creates Builder for chapters located in srcDir. Directory existence is
// not checked here, srcDir is used verbatim as prefix of every reference in
// produced documents.
func New(srcDir string, opts ...Option) (*Builder, error) {
	if len(srcDir) == 0 {
		return nil, errors.New("source directory is not specified")
	}
	if strings.ContainsRune(srcDir, 0) {
		return nil, fmt.Errorf("invalid source directory %q", srcDir)
	}

	b := &Builder{
		srcDir:   srcDir,
		contents: book.SICP(),
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, setOpt := range opts {
		setOpt(b)
	}
	if err := b.contents.Validate(); err != nil {
		return nil, fmt.Errorf("unable to use table of contents: %w", err)
	}
	return b, nil
}

// SourceDir returns directory Builder was created for.
func (b *Builder) SourceDir() string {
	return b.srcDir
}

// Contents returns table of contents in use.
func (b *Builder) Contents() book.Contents {
	return b.contents
}

// href returns reference to a file in the source directory.
func (b *Builder) href(name string) string {
	return strings.TrimSuffix(b.srcDir, "/") + "/" + name
}

// ChapterHref returns reference to chapter file with given id.
func (b *Builder) ChapterHref(id int) string {
	return b.href(chapterPrefix + strconv.Itoa(id) + chapterExt)
}

// Chapters lists chapter files in the source directory ordered by the first
// number found in the file name. Absent or unreadable directory results in
// empty list.
func (b *Builder) Chapters() []string {
	entries, err := os.ReadDir(b.srcDir)
	if err != nil {
		b.log.Debug("Unable to list chapters", zap.String("dir", b.srcDir), zap.Error(err))
		return []string{}
	}

	type chapter struct {
		name string
		key  uint64
	}

	chapters := make([]chapter, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if ok, _ := filepath.Match(chapterPattern, name); !ok {
			continue
		}
		chapters = append(chapters, chapter{name: name, key: sortKey(name)})
	}

	slices.SortStableFunc(chapters, func(x, y chapter) int {
		switch {
		case x.key < y.key:
			return -1
		case x.key > y.key:
			return 1
		case natural.Less(x.name, y.name):
			return -1
		case natural.Less(y.name, x.name):
			return 1
		}
		return 0
	})

	result := make([]string, 0, len(chapters))
	for _, c := range chapters {
		result = append(result, b.href(c.name))
	}
	return result
}

// sortKey returns value of the first run of digits in name, 0 when there
// are none. Values which do not fit are sorted last.
func sortKey(name string) uint64 {
	digits := digitsRe.FindString(name)
	if len(digits) == 0 {
		return 0
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return ^uint64(0)
	}
	return n
}
