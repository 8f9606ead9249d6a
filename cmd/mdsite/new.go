package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// defaultSiteConfig seeds a new project.
const defaultSiteConfig = `site:
  title: "My site"
  url: "http://localhost:8080"
  description: ""
render:
  footnotes: true
  typographer: false
  emoji: false
  toc:
    enabled: true
    listStyle: unordered
    minLevel: 1
    maxLevel: 4
  highlight:
    enabled: true
    theme: github
    grammarDir: ""
`

// defaultTemplate is the minimal layout for a new project.
const defaultTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{ .Title }}</title>
<style>{{ .Stylesheet }}</style>
</head>
<body>
{{ .Content }}
</body>
</html>
`

// defaultIndex is the starter page for a new project.
const defaultIndex = `---
title: "Welcome"
---

[[toc]]

# Welcome

Welcome to my site.
`

// runNew implements the new command: scaffold a project directory.
func runNew(args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	for _, dir := range []string{"content", "templates", "public"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return err
		}
	}

	files := map[string]string{
		filepath.Join(root, "site.yaml"):                 defaultSiteConfig,
		filepath.Join(root, "templates", "default.html"): defaultTemplate,
		filepath.Join(root, "content", "index.md"):       defaultIndex,
	}
	for path, content := range files {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return err
		}
	}

	fmt.Fprintf(os.Stderr, "Created site skeleton in %s\n", root)
	return nil
}
