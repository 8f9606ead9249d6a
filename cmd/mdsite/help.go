package main

import (
	"fmt"
	"io"
)

// printUsage writes the top-level usage text.
func printUsage(w io.Writer) {
	fmt.Fprint(w, `mdsite - a markdown blog builder

Usage: mdsite <COMMAND> [OPTIONS]

Commands:
  build     Build the site into the output directory
  serve     Build, serve over HTTP, and rebuild on changes
  new       Create a new site skeleton in the given directory
  version   Print the version

Options:
  -c, --config   config file name or path (default: site.yaml in root)
  -r, --root     project root directory (default: .)
  -o, --output   output directory (default: <root>/build)
  -w, --workers  parallel render workers (0 = auto)
      --drafts   include pages marked draft
  -a, --addr     listen address for serve (default: localhost:8080)
      --watch    rebuild on content changes (serve only, default: true)
  -q, --quiet    only show errors
  -v, --verbose  show detailed progress
`)
}
