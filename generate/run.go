// Package generate implements subcommands producing EPUB metadata documents.
package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sicpgen/config"
	"sicpgen/state"
	"sicpgen/toc"
)

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	// Source directory is used as is since it becomes part of every
	// reference in produced documents.
	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no chapter directory has been specified")
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		var err error
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.Overwrite = cmd.Bool("overwrite") || env.Cfg.Generate.Overwrite

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, log)
}

// process generates documents independently of CLI framework.
func process(ctx context.Context, src, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)
	cfg := &env.Cfg.Generate

	b, err := toc.New(src, toc.WithClock(env.Now), toc.WithLogger(log))
	if err != nil {
		return err
	}

	chapters := b.Chapters()
	if len(chapters) == 0 {
		log.Warn("No chapter files found, book will be empty", zap.String("source", src))
	} else {
		log.Debug("Chapters found", zap.Int("count", len(chapters)), zap.String("first", chapters[0]), zap.String("last", chapters[len(chapters)-1]))
	}

	ncx, opf := b.NCX(), b.OPF()

	if cfg.Verify {
		if err := b.Check(ncx, opf); err != nil {
			env.Rpt.StoreData("output/"+toc.NCXName, []byte(ncx))
			env.Rpt.StoreData("output/opf", []byte(opf))
			return fmt.Errorf("generated documents did not pass verification: %w", err)
		}
		log.Debug("Generated documents verified")
	}

	opfName := config.CleanFileName(cfg.OPFName)
	docs := []struct {
		name string
		data string
	}{
		{toc.NCXName, ncx},
		{opfName, opf},
	}

	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	// do not leave half of the results behind
	for _, doc := range docs {
		if err := checkDestination(filepath.Join(dst, doc.name), env.Overwrite, log); err != nil {
			return err
		}
	}
	for _, doc := range docs {
		if err := ctx.Err(); err != nil {
			return err
		}
		env.Rpt.StoreData("output/"+doc.name, []byte(doc.data))

		fname := filepath.Join(dst, doc.name)
		if err := os.WriteFile(fname, []byte(doc.data), 0644); err != nil {
			return fmt.Errorf("unable to write %s: %w", fname, err)
		}
		log.Info("Document written", zap.String("file", fname), zap.Int("size", len(doc.data)))
	}
	return nil
}

func checkDestination(fname string, overwrite bool, log *zap.Logger) error {
	fi, err := os.Stat(fname)
	switch {
	case err == nil && fi.IsDir():
		return fmt.Errorf("output path is a directory: %s", fname)
	case err == nil && !overwrite:
		return fmt.Errorf("output file already exists: %s", fname)
	case err == nil:
		log.Warn("Overwriting existing file", zap.String("file", fname))
	case !os.IsNotExist(err):
		return err
	}
	return nil
}
