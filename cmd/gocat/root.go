package main

import (
	"bufio"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"

	"gocat/internal/cli"
	"gocat/internal/config"
	"gocat/internal/report"
	"gocat/internal/source"
	"gocat/internal/transform"
)

// stdin is swappable in tests.
var stdin io.Reader = os.Stdin

func runRoot(cmd *cobra.Command, args []string) error {
	// Help срабатывает только в первой позиции; дальше по списку это
	// просто распознанный флаг без эффекта.
	if cli.WantsHelp(args) {
		printUsage(cmd.OutOrStdout())
		return nil
	}

	rep := report.New(cmd.ErrOrStderr(), report.ModeFromEnv())
	opts, paths := cli.Parse(args)

	if path, ok := config.Locate(); ok {
		defaults, err := config.Load(path)
		if err != nil {
			// Сломанный конфиг не должен ломать конвейер:
			// предупреждаем и работаем по одним флагам.
			rep.Errorf("%v", err)
		} else {
			opts = config.Merge(defaults, opts)
		}
	}

	out := bufio.NewWriter(cmd.OutOrStdout())
	err := catAll(paths, opts, out, rep)
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = &transform.WriteError{Err: ferr}
	}
	if err != nil {
		rep.Errorf("%v", err)
		return err
	}
	return nil
}

// catAll streams every source in listed order, strictly sequentially.
// Open and read failures are reported and the next source is attempted; a
// destination failure stops everything.
func catAll(paths []string, opts transform.Options, out io.Writer, rep *report.Reporter) error {
	if len(paths) == 0 {
		return catSource(source.New("standard input", stdin), opts, out, rep)
	}
	for _, path := range paths {
		src, err := source.Open(path)
		if err != nil {
			rep.Errorf("%v", err)
			continue
		}
		if err := catSource(src, opts, out, rep); err != nil {
			return err
		}
	}
	return nil
}

// catSource pipes one source through a fresh transformer, so numbering and
// blank tracking restart per source. Only destination failures propagate;
// a read failure is reported here and the caller moves on.
func catSource(src *source.Source, opts transform.Options, out io.Writer, rep *report.Reporter) error {
	defer src.Close()
	err := transform.New(opts).Run(src.Lines(), out)
	var werr *transform.WriteError
	if errors.As(err, &werr) {
		return err
	}
	if err != nil {
		rep.Errorf("%s: %v", src.Name, err)
	}
	return nil
}
