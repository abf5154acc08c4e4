package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sicpgen/book"
	"sicpgen/state"
	"sicpgen/toc"
)

// Outline prints table of contents and chapter files as they will appear in
// generated documents.
func Outline(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("outline")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no chapter directory has been specified")
	}
	b, err := toc.New(src, toc.WithClock(env.Now), toc.WithLogger(log))
	if err != nil {
		return err
	}
	log.Debug("Printing outline", zap.String("source", src))
	return writeOutline(os.Stdout, b)
}

func writeOutline(w io.Writer, b *toc.Builder) error {
	nav := newTable("Nav point", "Play order", "Chapter", "Label", "Source")
	for i, entry := range b.Contents() {
		appendOutlineRows(nav, b, entry, []string{strconv.Itoa(i + 1)})
	}
	nav.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})

	files := newTable("Item", "File")
	for i, chapter := range b.Chapters() {
		files.AppendRow(table.Row{"item" + strconv.Itoa(i+1), chapter})
	}

	_, err := fmt.Fprintf(w, "%s\n\n%s\n", nav.Render(), files.Render())
	return err
}

func newTable(headers ...string) table.Writer {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, 0, len(headers))
	for _, h := range headers {
		header = append(header, h)
	}
	tw.AppendHeader(header)
	return tw
}

func appendOutlineRows(tw table.Writer, b *toc.Builder, entry book.Entry, number []string) {
	playOrder := ""
	if len(number) == 1 {
		playOrder = number[0]
	}
	tw.AppendRow(table.Row{
		"navPoint-" + strings.Join(number, "-"),
		playOrder,
		entry.ID,
		strings.Repeat("  ", len(number)-1) + entry.Title.Label(strings.Join(number, ".")),
		b.ChapterHref(entry.ID),
	})
	for i, child := range entry.Children {
		appendOutlineRows(tw, b, child, append(append([]string{}, number...), strconv.Itoa(i+1)))
	}
}
