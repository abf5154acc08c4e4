package toc

import (
	"slices"
	"strconv"
	"strings"

	"sicpgen/book"
)

const indentStep = "    "

// NavigationPoints renders table of contents into navMap lines. Top level
// points carry playOrder, nested points are numbered per parent and get
// composite ids (navPoint-7-2).
func (b *Builder) NavigationPoints() []string {
	lines := make([]string, 0, b.contents.Count()*5)
	for i, entry := range b.contents {
		n := strconv.Itoa(i + 1)
		lines = b.appendNavPoint(lines, entry, []string{n}, 1)
	}
	return lines
}

func (b *Builder) appendNavPoint(lines []string, entry book.Entry, number []string, depth int) []string {
	indent := strings.Repeat(indentStep, depth)
	inner := indent + indentStep

	id := "navPoint-" + strings.Join(number, "-")
	if depth == 1 {
		lines = append(lines, indent+"<navPoint id='"+id+"' playOrder='"+number[0]+"'>")
	} else {
		lines = append(lines, indent+"<navPoint id='"+id+"'>")
	}
	lines = append(lines,
		inner+"<navLabel><text>"+escape(entry.Title.Label(strings.Join(number, ".")))+"</text></navLabel>",
		inner+"<content src='"+escape(b.ChapterHref(entry.ID))+"'/>",
	)
	for i, child := range entry.Children {
		lines = b.appendNavPoint(lines, child, append(slices.Clone(number), strconv.Itoa(i+1)), depth+1)
	}
	return append(lines, indent+"</navPoint>")
}
