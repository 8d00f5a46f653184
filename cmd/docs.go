package cmd

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// https://pmarsceill.github.io/just-the-docs/docs/navigation-structure/
const rootDoc = `---
layout: default
title: %s
nav_order: %d
has_children: true
permalink: /
---
`

// child command without children
const childDoc = `---
layout: default
title: %s
parent: %s
nav_order: %d
---
`

// meta is for describing the position/info for a command doc page
type meta struct {
	root     bool
	title    string
	navOrder int
	parent   string
}

// map from the base Markdown file name to its build meta
var metaMap = map[string]meta{
	"overlap": {
		root:     true,
		title:    "overlap",
		navOrder: 0,
	},
	"overlap_simulate": {
		title:    "simulate",
		navOrder: 0,
		parent:   "overlap",
	},
}

// newDocsCmd is a hidden command that writes Markdown documentation for root's command tree.
func newDocsCmd(root *cobra.Command) *cobra.Command {
	return &cobra.Command{
		Use:    "docs [dir]",
		Short:  "Write Markdown docs for each command",
		Hidden: true,
		Args:   cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "./docs"
			if len(args) > 0 {
				dir = args[0]
			}
			return makeDocs(root, dir)
		},
	}
}

// makeDocs parses the custom commands and outputs Markdown documentation files
func makeDocs(root *cobra.Command, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create docs directory %s: %v", dir, err)
	}

	root.DisableAutoGenTag = true
	return doc.GenMarkdownTreeCustom(root, dir, filePrepender, linkHandler)
}

// filePrepender adds YAML headings that are required by the just-the-docs theme
// https://github.com/spf13/cobra/blob/master/doc/md_docs.md
func filePrepender(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	m, ok := metaMap[base]
	if !ok {
		return ""
	}
	if m.root {
		return fmt.Sprintf(rootDoc, m.title, m.navOrder)
	}
	return fmt.Sprintf(childDoc, m.title, m.parent, m.navOrder)
}

// linkHandler returns the URL to a documentation page
func linkHandler(filename string) string {
	name := filepath.Base(filename)
	base := strings.TrimSuffix(name, path.Ext(name))

	if base == "overlap" {
		return "/"
	}
	return base
}
