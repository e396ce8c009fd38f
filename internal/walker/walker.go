// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package walker enumerates the mapped root, pruning directories and
// filtering files through a policy. It produces the ordered file list and
// the indented folder tree of the project map.
package walker

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/petar-djukic/codemap/internal/policy"
	"github.com/petar-djukic/codemap/pkg/types"
)

const indentUnit = "    "

// Walker traverses one root directory.
type Walker struct {
	root    string
	absRoot string
	policy  *policy.Policy
}

// New creates a walker for root. Relative roots are resolved against the
// working directory for the file entries' absolute paths.
func New(root string, p *policy.Policy) *Walker {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		absRoot = filepath.Clean(root)
	}
	return &Walker{root: root, absRoot: absRoot, policy: p}
}

// dirVisit is what the traversal reports for every directory it enters.
type dirVisit struct {
	rel   string            // Relative path of the directory ("" for root)
	name  string            // Base name shown in the tree
	files []types.FileEntry // Accepted files, in listing order
}

// BuildFileList returns every accepted file in traversal order: the files
// of a directory come before the contents of its subdirectories.
func (w *Walker) BuildFileList(ctx context.Context) ([]types.FileEntry, error) {
	var files []types.FileEntry
	err := w.walk(ctx, func(v dirVisit) {
		files = append(files, v.files...)
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

// BuildFolderTree renders the accepted structure, one directory line
// ("name/") followed by its accepted files. Indentation is four spaces per
// separator in the directory's relative path, so the root and its direct
// subdirectories share the same column.
func (w *Walker) BuildFolderTree(ctx context.Context) (string, error) {
	var lines []string
	err := w.walk(ctx, func(v dirVisit) {
		indent := strings.Repeat(indentUnit, depth(v.rel))
		lines = append(lines, indent+v.name+"/")
		for _, f := range v.files {
			lines = append(lines, indent+indentUnit+filepath.Base(f.RelPath))
		}
	})
	if err != nil {
		return "", err
	}
	return strings.Join(lines, "\n"), nil
}

// walk runs a top-down traversal from the root and calls visit once per
// accepted directory.
func (w *Walker) walk(ctx context.Context, visit func(dirVisit)) error {
	return w.walkDir(ctx, w.absRoot, "", visit)
}

func (w *Walker) walkDir(ctx context.Context, absDir, rel string, visit func(dirVisit)) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// A directory outside the allowlist is never descended into.
	if !w.policy.IsIncluded(rel) {
		slog.Debug("Skipping directory outside allowlist", "dir", rel)
		return nil
	}

	entries, err := os.ReadDir(absDir)
	if err != nil {
		if rel == "" {
			return fmt.Errorf("reading root %s: %w", w.root, err)
		}
		slog.Warn("Skipping unreadable directory", "dir", rel, "error", err)
		return nil
	}

	var subdirs []string
	var files []types.FileEntry
	for _, entry := range entries {
		name := entry.Name()
		entryRel := name
		if rel != "" {
			entryRel = filepath.Join(rel, name)
		}

		if isDir(absDir, entry) {
			if w.policy.IsExcludedDir(name) {
				continue
			}
			if entry.Type()&fs.ModeSymlink != 0 {
				// Symlinked directories are listed by the host but never followed.
				continue
			}
			subdirs = append(subdirs, name)
			continue
		}

		if !w.policy.AcceptFile(entryRel, name) {
			continue
		}
		files = append(files, types.FileEntry{
			RelPath: entryRel,
			AbsPath: filepath.Join(absDir, name),
		})
	}

	dirName := filepath.Base(absDir)
	slog.Debug("Visited directory", "dir", rel, "files", len(files), "subdirs", len(subdirs))
	visit(dirVisit{rel: rel, name: dirName, files: files})

	for _, name := range subdirs {
		childRel := name
		if rel != "" {
			childRel = filepath.Join(rel, name)
		}
		if err := w.walkDir(ctx, filepath.Join(absDir, name), childRel, visit); err != nil {
			return err
		}
	}
	return nil
}

// isDir reports whether entry is a directory, resolving symlinks so a link
// to a directory is not mistaken for a file.
func isDir(parent string, entry fs.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(parent, entry.Name()))
	return err == nil && info.IsDir()
}

// depth counts the separators in a directory's relative path.
func depth(rel string) int {
	if rel == "" {
		return 0
	}
	return strings.Count(rel, string(os.PathSeparator))
}
