// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package types

// FileEntry is one accepted file found by the tree walker.
type FileEntry struct {
	RelPath string // Path relative to the mapped root
	AbsPath string // Path usable for reading the file
}

// Section is the rendered part of the report for a single file.
type Section struct {
	RelPath string
	Mode    RenderMode
	Body    string
}

// Report is the assembled project map: the folder tree followed by one
// section per accepted file, in traversal order.
type Report struct {
	Tree     string
	Sections []Section
}

// Counts returns the number of sections rendered in each mode.
func (r Report) Counts() map[RenderMode]int {
	counts := make(map[RenderMode]int)
	for _, s := range r.Sections {
		counts[s.Mode]++
	}
	return counts
}
