// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package fetch loads a schema document from a local file or a URL.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/albertocavalcante/gennode/internal/schema"
)

// Options configures how to fetch a schema document.
type Options struct {
	// URL is the location to fetch the schema JSON from over HTTP(S).
	URL string

	// LocalPath is a path to a local schema JSON file. If set, the file
	// is read directly instead of fetching over HTTP.
	LocalPath string

	// Timeout for network operations.
	Timeout time.Duration
}

// Result contains the fetched schema and where it came from.
type Result struct {
	// Schema is the parsed schema document.
	Schema *schema.Schema

	// Source describes where the schema was loaded from.
	Source string
}

var fetchGroup singleflight.Group

// Fetch retrieves and parses a schema document.
func Fetch(ctx context.Context, opts Options) (*Result, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}

	if opts.LocalPath != "" {
		return fetchFromFile(opts.LocalPath)
	}

	return fetchFromURL(ctx, opts)
}

// fetchFromFile reads the schema from a local file.
func fetchFromFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	s, err := parseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	return &Result{
		Schema: s,
		Source: fmt.Sprintf("file://%s", path),
	}, nil
}

// fetchFromURL downloads the schema over HTTP. Concurrent fetches for the
// same URL are deduplicated: only one request is in flight at a time, and
// every caller waiting on it gets a copy of the same result.
func fetchFromURL(ctx context.Context, opts Options) (*Result, error) {
	fetchCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	v, err, _ := fetchGroup.Do(opts.URL, func() (any, error) {
		return FetchRaw(fetchCtx, opts.URL)
	})
	if err != nil {
		return nil, err
	}

	s, err := parseSchema(v.([]byte))
	if err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	return &Result{
		Schema: s,
		Source: opts.URL,
	}, nil
}

// parseSchema parses schema JSON with line number injection for debugging.
func parseSchema(data []byte) (*schema.Schema, error) {
	data = injectLineNumbers(data)

	var s schema.Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// injectLineNumbers adds a "line" field to each JSON object whose opening
// brace is directly followed by a line break, so parse and validation
// errors can report a source line.
func injectLineNumbers(data []byte) []byte {
	var result []byte
	lineNum := 1

	for i := 0; i < len(data); i++ {
		result = append(result, data[i])
		switch data[i] {
		case '{':
			if i+1 < len(data) && data[i+1] == '\n' {
				result = append(result, fmt.Sprintf(`"line":%d,`, lineNum)...)
			}
		case '\n':
			lineNum++
		}
	}
	return result
}

// FetchRaw fetches the raw schema JSON content via HTTP.
func FetchRaw(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, resp.Status)
	}

	return io.ReadAll(resp.Body)
}
