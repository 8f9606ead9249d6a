package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	root    string
	quiet   bool
	verbose bool
}

// buildFlags holds flags for the build command.
type buildFlags struct {
	common  commonFlags
	output  string
	workers int
	drafts  bool
}

// serveFlags holds flags for the serve command.
type serveFlags struct {
	build buildFlags
	addr  string
	watch bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.root, "root", "r", ".", "project root directory")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed progress")
}

// parseBuildFlags parses build command flags and returns positional args.
func parseBuildFlags(args []string) (*buildFlags, []string, error) {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	f := &buildFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output directory (default: <root>/build)")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel render workers (0 = auto)")
	fs.BoolVar(&f.drafts, "drafts", false, "include pages marked draft")
	addCommonFlags(fs, &f.common)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}

// parseServeFlags parses serve command flags and returns positional args.
func parseServeFlags(args []string) (*serveFlags, []string, error) {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	f := &serveFlags{}

	fs.StringVarP(&f.build.output, "output", "o", "", "output directory (default: <root>/build)")
	fs.IntVarP(&f.build.workers, "workers", "w", 0, "parallel render workers (0 = auto)")
	fs.BoolVar(&f.build.drafts, "drafts", true, "include pages marked draft")
	fs.StringVarP(&f.addr, "addr", "a", "localhost:8080", "listen address")
	fs.BoolVar(&f.watch, "watch", true, "rebuild on content changes")
	addCommonFlags(fs, &f.build.common)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return f, fs.Args(), nil
}
