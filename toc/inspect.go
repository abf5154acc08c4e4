package toc

import (
	"fmt"

	"github.com/beevik/etree"
)

// Summary describes generated document.
type Summary struct {
	Root       string
	DocTitles  int
	NavPoints  int
	PlayOrders int
	Items      int
	ItemRefs   int
	Identifier string
}

// Inspect parses generated NCX or OPF document and counts elements of
// interest. Error means document is not well formed.
func Inspect(doc string) (*Summary, error) {
	d := etree.NewDocument()
	if err := d.ReadFromString(doc); err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	root := d.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}

	s := &Summary{
		Root:      root.Tag,
		DocTitles: len(root.SelectElements("docTitle")),
	}
	for _, np := range root.FindElements("//navPoint") {
		s.NavPoints++
		if np.SelectAttr("playOrder") != nil {
			s.PlayOrders++
		}
	}
	s.Items = len(root.FindElements("./manifest/item"))
	s.ItemRefs = len(root.FindElements("./spine/itemref"))
	if id := root.FindElement("./metadata/dc:identifier"); id != nil {
		s.Identifier = id.Text()
	}
	return s, nil
}

// Check verifies documents produced by Builder agree with each other and
// with the table of contents.
func (b *Builder) Check(ncx, opf string) error {
	n, err := Inspect(ncx)
	if err != nil {
		return fmt.Errorf("bad NCX: %w", err)
	}
	if n.Root != "ncx" || n.DocTitles != 1 {
		return fmt.Errorf("bad NCX: root %q with %d titles", n.Root, n.DocTitles)
	}
	if want := b.contents.Count(); n.NavPoints != want {
		return fmt.Errorf("bad NCX: %d navigation points, expected %d", n.NavPoints, want)
	}
	if want := len(b.contents); n.PlayOrders != want {
		return fmt.Errorf("bad NCX: %d ordered navigation points, expected %d", n.PlayOrders, want)
	}

	o, err := Inspect(opf)
	if err != nil {
		return fmt.Errorf("bad OPF: %w", err)
	}
	if o.Root != "package" {
		return fmt.Errorf("bad OPF: root %q", o.Root)
	}
	if o.Items != o.ItemRefs+1 {
		return fmt.Errorf("bad OPF: %d manifest items for %d spine references", o.Items, o.ItemRefs)
	}
	return nil
}
