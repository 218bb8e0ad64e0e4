package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jjclark1982/date-scraper-go/pkg/evidence"
	"github.com/jjclark1982/date-scraper-go/pkg/filedate"
	"github.com/jjclark1982/date-scraper-go/pkg/plan"
	"github.com/jjclark1982/date-scraper-go/pkg/render"
	"github.com/jjclark1982/date-scraper-go/pkg/rename"
	"github.com/jjclark1982/date-scraper-go/pkg/scan"
)

const version = "0.1.0"

type options struct {
	verbose      bool
	quiet        bool
	plain        bool
	rewriteMtime bool
	rename       bool
	timeout      time.Duration
}

func main() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "date-scraper [paths...]",
		Short:   "Read every date associated with a file and reconcile the earliest",
		Long: "Date Scraper reads all date/time signals associated with a file - from its " +
			"name, filesystem metadata, embedded media and image metadata, and extended " +
			"attributes - reconciles them into a single earliest plausible date, and can " +
			"rewrite the file's modification time or filename to match.",
		Version: version,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	rootCmd.SetOut(os.Stdout)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SilenceUsage = true

	rootCmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose diagnostics")
	rootCmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress per-file date reports")
	rootCmd.Flags().BoolVar(&opts.plain, "plain", false, "force plain output even on a terminal")
	rootCmd.Flags().BoolVar(&opts.rewriteMtime, "rewrite-mtime", false, "set each file's modification time to its earliest date")
	rootCmd.Flags().BoolVar(&opts.rename, "rename", false, "rename each file to carry its earliest date")
	rootCmd.Flags().DurationVar(&opts.timeout, "timeout", evidence.DefaultTimeout, "time limit per external tool invocation")

	return rootCmd
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{ReportTimestamp: false})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	files, err := scan.Expand(args)
	if err != nil {
		return err
	}
	if !opts.quiet && len(files) > 1 {
		cmd.Printf("date-scraper: reading %d files...\n\n", len(files))
	}

	styled := !opts.plain && stdoutIsTerminal(cmd)
	ctx := cmd.Context()
	scanOpts := filedate.Options{Tools: evidence.HostToolbox{Timeout: opts.timeout}}

	var (
		toStamp  []string
		earliest = make(map[string]time.Time)
		written  int
		failed   int
	)

	for _, path := range files {
		record, scanErr := filedate.Scan(ctx, path, scanOpts)
		if scanErr != nil {
			logger.Error("reading dates failed", "path", path, "err", scanErr)
			failed++
			continue
		}
		logger.Debug("scanned", "path", path, "dates", len(record.Dates))

		if !opts.quiet {
			if styled {
				cmd.Println(render.Pretty(record))
			} else {
				cmd.Println(render.Plain(record))
			}
		}

		if opts.rewriteMtime {
			previous := record.Dates[evidence.LabelModified]
			wrote, writeErr := record.RewriteMtime()
			switch {
			case writeErr != nil:
				logger.Error("rewriting mtime failed", "path", path, "err", writeErr)
				failed++
			case wrote:
				cmd.Printf("Changed modification time of %q from %s to %s\n",
					path, previous.Format(time.RFC3339), record.Earliest.Format(time.RFC3339))
				written++
			}
		}

		if opts.rename && !record.Earliest.IsZero() {
			toStamp = append(toStamp, path)
			earliest[path] = record.Earliest
		}

		if !opts.quiet {
			cmd.Println("")
		}
	}

	if opts.rename {
		for _, result := range rename.Execute(plan.Plan(toStamp, earliest)) {
			if result.Error != nil {
				logger.Error("rename failed",
					"path", result.Operation.SourcePath, "err", result.Error)
				failed++
				continue
			}
			cmd.Printf("Renamed %q to %q\n",
				result.Operation.SourcePath, result.Operation.DestinationPath)
			written++
		}
	}

	if !opts.quiet && written > 0 {
		cmd.Printf("date-scraper: updated %d / %d files.\n", written, len(files))
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(files))
	}
	return nil
}

func stdoutIsTerminal(cmd *cobra.Command) bool {
	f, ok := cmd.OutOrStdout().(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
