package main

import (
	"fmt"
	"os"

	"github.com/logtint/logtint/internal/filter"
	"github.com/logtint/logtint/internal/monitor"
	"github.com/logtint/logtint/internal/pipeline"
	"github.com/logtint/logtint/internal/sink"
	"github.com/logtint/logtint/internal/source"
	"github.com/spf13/cobra"
)

var (
	pipe      bool
	keyword   string
	excludes  []string
	levels    string
	showStats bool

	rootCmd = &cobra.Command{
		Use:   "logtint [file] [-- less-args...]",
		Short: "logtint recolors tracing logs and views them in less",
		Long: `logtint recolors tracing logs of the form 'TIMESTAMP LEVEL SOURCE: MESSAGE'
and opens them in less. Input is read from a file or piped via stdin; output
can be piped onwards with --pipe. Arguments after -- are passed to less.`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}
)

func init() {
	rootCmd.Flags().BoolVarP(&pipe, "pipe", "P", false, "output directly to stdout for piping rather than opening less")
	rootCmd.Flags().StringVarP(&keyword, "keyword", "k", "", "only show lines containing this keyword")
	rootCmd.Flags().StringArrayVar(&excludes, "exclude", nil, "hide lines containing this text (repeatable)")
	rootCmd.Flags().StringVar(&levels, "level", "", "only show lines at these levels, comma-separated (e.g. error,warn)")
	rootCmd.Flags().BoolVar(&showStats, "stats", false, "print processing statistics to stderr when done")
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
}

func run(cmd *cobra.Command, args []string) error {
	// Everything after -- goes to less; at most one positional arg (the file)
	// may come before it.
	fileArgs := args
	var lessArgs []string
	if dash := cmd.ArgsLenAtDash(); dash >= 0 {
		fileArgs = args[:dash]
		lessArgs = args[dash:]
	}
	if len(fileArgs) > 1 {
		return fmt.Errorf("expected at most one file argument, got %d", len(fileArgs))
	}
	var path string
	if len(fileArgs) == 1 {
		path = fileArgs[0]
	}

	chain, err := buildFilters()
	if err != nil {
		return err
	}

	src, err := source.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	var out sink.Sink
	if pipe {
		out = sink.NewStdoutSink(os.Stdout)
	} else {
		pager := sink.NewPagerSink(lessArgs)
		if err := pager.Start(); err != nil {
			return err
		}
		out = pager
	}

	stats := monitor.NewStats()
	runErr := pipeline.Run(&pipeline.Config{
		Source:  src,
		Sink:    out,
		Filters: chain,
		Stats:   stats,
	})

	// Close on every path: for the pager this releases its stdin before
	// waiting on the process, so less can reach end of input and exit.
	if err := out.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	if showStats {
		fmt.Fprintln(os.Stderr, stats.Summary())
	}
	return nil
}

func buildFilters() (*filter.Chain, error) {
	chain := filter.NewChain()
	if levels != "" {
		parsed, err := filter.ParseLevels(levels)
		if err != nil {
			return nil, err
		}
		chain.Add(filter.NewLevelFilter(parsed...))
	}
	if keyword != "" {
		chain.Add(filter.NewKeywordFilter(keyword))
	}
	if len(excludes) > 0 {
		chain.Add(filter.NewExcludeFilter(excludes...))
	}
	return chain, nil
}
