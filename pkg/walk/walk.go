// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package walk enumerates the files beneath a root directory.
package walk

import (
	"context"
	"io"
	"io/fs"
	"iter"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 📄 Entry is a file found during a walk
type Entry struct {
	Dir  string // directory holding the file, joined from the root as given
	Name string // base name of the file
	Rel  string // slash-separated path relative to the root
}

// Path returns the file path joined from the walk root
func (e Entry) Path() string {
	return filepath.Join(e.Dir, e.Name)
}

// 🔍 Files returns every non-directory entry reachable from root, at any depth.
//
// The root is checked up front: a missing, unreadable or non-directory root is an
// error and nothing is walked. Subdirectories that cannot be listed later are
// logged and skipped. Symlinks that resolve to directories are neither yielded nor
// descended; all other symlinks are yielded like regular files.
//
// The returned sequence is lazy and can be ranged over more than once. It stops
// early when ctx is cancelled.
func Files(ctx context.Context, root string) (iter.Seq[Entry], error) {
	if err := checkRoot(root); err != nil {
		return nil, err
	}

	logger := zerolog.Ctx(ctx)

	// WalkDir does not descend into a symlinked root unless it is spelled as a directory
	walkRoot := root
	if info, err := os.Lstat(root); err == nil && info.Mode()&fs.ModeSymlink != 0 {
		walkRoot = root + string(filepath.Separator)
	}

	return func(yield func(Entry) bool) {
		_ = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}

			if err != nil {
				if path == walkRoot {
					logger.Warn().Err(err).Str("root", root).Msg("root became unreadable during walk")
					return err
				}
				logger.Warn().Err(err).Str("path", path).Msg("skipping unreadable directory")
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				return nil
			}

			if d.Type()&fs.ModeSymlink != 0 {
				if info, statErr := os.Stat(path); statErr == nil && info.IsDir() {
					logger.Debug().Str("path", path).Msg("not following directory symlink")
					return nil
				}
			}

			rel, relErr := filepath.Rel(root, path)
			if relErr != nil {
				rel = d.Name()
			}

			entry := Entry{
				Dir:  filepath.Dir(path),
				Name: d.Name(),
				Rel:  filepath.ToSlash(rel),
			}
			if !yield(entry) {
				return fs.SkipAll
			}
			return nil
		})
	}, nil
}

// checkRoot verifies root exists, is a directory and can be listed
func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return errors.Errorf("accessing root %q: %w", root, err)
	}
	if !info.IsDir() {
		return errors.Errorf("root %q is not a directory", root)
	}

	dir, err := os.Open(root)
	if err != nil {
		return errors.Errorf("opening root %q: %w", root, err)
	}
	defer dir.Close()

	if _, err := dir.ReadDir(1); err != nil && !errors.Is(err, io.EOF) {
		return errors.Errorf("listing root %q: %w", root, err)
	}

	return nil
}
