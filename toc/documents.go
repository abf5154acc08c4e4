package toc

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
	"text/template"
	"time"

	sprig "github.com/go-task/slim-sprig/v3"

	"sicpgen/book"
)

const (
	// NCXName is the name manifest uses to reference navigation control file.
	NCXName = "toc.ncx"
	bookUID = "BookId"
)

//go:embed toc.ncx.tmpl
var ncxTmpl string

//go:embed content.opf.tmpl
var opfTmpl string

var (
	ncxTemplate = newTemplate("ncx", ncxTmpl)
	opfTemplate = newTemplate("opf", opfTmpl)
)

func newTemplate(name, text string) *template.Template {
	funcMap := sprig.FuncMap()
	funcMap["xml"] = escape
	return template.Must(template.New(name).Funcs(funcMap).Parse(text))
}

// ncxValues is everything NCX template needs.
type ncxValues struct {
	UID       string
	Title     string
	NavPoints []string
}

// opfValues is everything OPF template needs.
type opfValues struct {
	UID         string
	Title       string
	Language    string
	ISBN        string
	Creator     string
	Description string
	Subject     string
	Publisher   string
	Date        time.Time
	Cover       string
	Items       []string
	ItemRefs    []string
	NCXName     string
	TOCPage     string
	StartPage   string
}

func renderNCX(v *ncxValues) string {
	return render(ncxTemplate, v)
}

func renderOPF(v *opfValues) string {
	return render(opfTemplate, v)
}

func render(tmpl *template.Template, values any) string {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, values); err != nil {
		// templates are embedded and values are typed, this should never happen
		panic(fmt.Sprintf("unable to expand %s template: %v", tmpl.Name(), err))
	}
	return buf.String()
}

// NCX returns navigation control document.
func (b *Builder) NCX() string {
	return renderNCX(&ncxValues{
		UID:       bookUID,
		Title:     book.BookTitle,
		NavPoints: b.NavigationPoints(),
	})
}

// ManifestItems returns manifest entries for chapter files. Item ids are
// positional and have nothing to do with chapter numbers.
func (b *Builder) ManifestItems() []string {
	return manifestItems(b.Chapters())
}

// ItemRefs returns spine entries, one per manifest item.
func (b *Builder) ItemRefs() []string {
	return itemRefs(len(b.ManifestItems()))
}

func manifestItems(chapters []string) []string {
	lines := make([]string, 0, len(chapters))
	for i, chapter := range chapters {
		lines = append(lines, "          <item id='"+itemID(i)+"' media-type='application/xhtml+xml' href='"+escape(chapter)+"'></item>")
	}
	return lines
}

func itemRefs(count int) []string {
	lines := make([]string, 0, count)
	for i := range count {
		lines = append(lines, "          <itemref idref='"+itemID(i)+"'/>")
	}
	return lines
}

func itemID(i int) string {
	return "item" + strconv.Itoa(i+1)
}

// OPF returns package document. Publication date is taken from Builder
// clock, everything else depends only on the source directory and its content.
func (b *Builder) OPF() string {
	items := manifestItems(b.Chapters())
	return renderOPF(&opfValues{
		UID:         bookUID,
		Title:       book.BookTitle,
		Language:    book.Language,
		ISBN:        book.ISBN,
		Creator:     book.Creator,
		Description: book.Description,
		Subject:     book.Subject,
		Publisher:   book.Publisher,
		Date:        b.now(),
		Cover:       b.href(coverName),
		Items:       items,
		ItemRefs:    itemRefs(len(items)),
		NCXName:     NCXName,
		TOCPage:     b.ChapterHref(book.TOCPage),
		StartPage:   b.ChapterHref(book.StartPage),
	})
}

// escape makes s safe to use as XML text or quoted attribute value.
func escape(s string) string {
	var buf strings.Builder
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
