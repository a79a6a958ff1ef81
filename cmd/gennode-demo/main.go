// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Command gennode-demo loads a schema document and renders it through a
// registered generator.
package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/albertocavalcante/gennode/generator"
	"github.com/albertocavalcante/gennode/generators/golang"
	"github.com/albertocavalcante/gennode/internal/fetch"
)

//go:embed testdata/default.json
var embeddedDefault embed.FS

func init() {
	generator.Register(golang.NewGenerator())
}

func usage() {
	fmt.Fprintf(os.Stderr, `gennode-demo generates target-language source from a schema document.

Usage:
  gennode-demo [flags]

Flags:
`)
	flag.PrintDefaults()
}

func main() {
	var (
		target      = flag.String("t", "go", "generator to use (see -list)")
		outputDir   = flag.String("o", "", "output directory (defaults to stdout)")
		outputFile  = flag.String("f", "", "single output filename within -o, or stdout if -o is empty")
		pkg         = flag.String("p", "", "target package/namespace name")
		specPath    = flag.String("spec", "", "path to a local schema JSON file (defaults to the embedded demo schema)")
		specURL     = flag.String("url", "", "URL to fetch the schema JSON from")
		types       = flag.String("types", "", "comma-separated record/enum names to generate (empty = all)")
		resolveDeps = flag.Bool("resolve-deps", true, "include transitive dependencies of -types")
		experimental = flag.Bool("experimental", false, "include experimental records, enums, and fields")
		dryRun      = flag.Bool("dry-run", false, "print what would be written without writing files")
		list        = flag.Bool("list", false, "list registered generators and exit")
		verbose     = flag.Bool("verbose", false, "log progress to stderr")
	)
	flag.Usage = usage
	flag.Parse()

	if *list {
		for _, name := range generator.List() {
			fmt.Println(name)
		}
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	opts := fetch.Options{LocalPath: *specPath, URL: *specURL}
	if opts.LocalPath == "" && opts.URL == "" {
		data, err := embeddedDefault.ReadFile("testdata/default.json")
		if err != nil {
			fatalf("read embedded schema: %v", err)
		}
		tmp, err := os.CreateTemp("", "gennode-demo-*.json")
		if err != nil {
			fatalf("stage embedded schema: %v", err)
		}
		defer os.Remove(tmp.Name())
		if _, err := tmp.Write(data); err != nil {
			fatalf("stage embedded schema: %v", err)
		}
		tmp.Close()
		opts.LocalPath = tmp.Name()
	}

	if *verbose {
		fmt.Fprintf(os.Stderr, "loading schema (local=%q url=%q)\n", opts.LocalPath, opts.URL)
	}
	result, err := fetch.Fetch(ctx, opts)
	if err != nil {
		fatalf("fetch schema: %v", err)
	}

	gen, ok := generator.Get(*target)
	if !ok {
		fatalf("unknown generator %q (see -list)", *target)
	}

	cfg := generator.Config{
		OutputDir:            *outputDir,
		OutputFile:           *outputFile,
		ResolveDeps:          *resolveDeps,
		IncludeExperimental:  *experimental,
		Source:               result.Source,
		SchemaVersion:        "",
		Options:              map[string]string{"package": *pkg},
	}
	if *types != "" {
		cfg.Types = strings.Split(*types, ",")
	}

	out, err := gen.Generate(ctx, result.Schema, cfg)
	if err != nil {
		fatalf("generate: %v", err)
	}

	if *dryRun {
		for name := range out.Files {
			fmt.Printf("would write %s\n", filepath.Join(*outputDir, name))
		}
		return
	}

	if *outputDir == "" {
		for _, content := range out.Files {
			os.Stdout.Write(content)
		}
		return
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		fatalf("create output dir: %v", err)
	}
	for name, content := range out.Files {
		path := filepath.Join(*outputDir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			fatalf("write %s: %v", path, err)
		}
		if *verbose {
			fmt.Fprintf(os.Stderr, "wrote %s\n", path)
		}
	}
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "gennode-demo: "+format+"\n", args...)
	os.Exit(1)
}
