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

package walk

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func collect(t *testing.T, ctx context.Context, root string) []string {
	t.Helper()
	seq, err := Files(ctx, root)
	require.NoError(t, err, "Files should succeed")

	var got []string
	for e := range seq {
		got = append(got, e.Rel)
	}
	return got
}

func TestFiles(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())

	tests := []struct {
		name  string
		files map[string]string
		dirs  []string
		want  []string
	}{
		{
			name: "flat",
			files: map[string]string{
				"a.ts":  "",
				"b.txt": "",
			},
			want: []string{"a.ts", "b.txt"},
		},
		{
			name: "deeply_nested",
			files: map[string]string{
				"root.md":            "",
				"one/two/three/x.ts": "",
				"one/two/y.css":      "",
				"one/z.json":         "",
			},
			want: []string{"one/two/three/x.ts", "one/two/y.css", "one/z.json", "root.md"},
		},
		{
			name: "directories_never_yielded",
			files: map[string]string{
				"src/index.ts": "",
			},
			dirs: []string{"empty", "src/also-empty.ts"},
			want: []string{"src/index.ts"},
		},
		{
			name: "empty_root",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeTree(t, root, tt.files)
			for _, d := range tt.dirs {
				require.NoError(t, os.MkdirAll(filepath.Join(root, filepath.FromSlash(d)), 0o755))
			}

			got := collect(t, ctx, root)
			sort.Strings(got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilesEntryPaths(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a/b/c.ts": "x"})

	seq, err := Files(ctx, root)
	require.NoError(t, err)

	var entries []Entry
	for e := range seq {
		entries = append(entries, e)
	}

	require.Len(t, entries, 1)
	assert.Equal(t, filepath.Join(root, "a", "b"), entries[0].Dir)
	assert.Equal(t, "c.ts", entries[0].Name)
	assert.Equal(t, filepath.Join(root, "a", "b", "c.ts"), entries[0].Path())
}

func TestFilesIsRestartable(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	root := t.TempDir()
	writeTree(t, root, map[string]string{"x.ts": "", "d/y.ts": ""})

	seq, err := Files(ctx, root)
	require.NoError(t, err)

	var first, second []string
	for e := range seq {
		first = append(first, e.Rel)
	}
	for e := range seq {
		second = append(second, e.Rel)
	}
	assert.Equal(t, first, second, "ranging twice should yield the same files")
	assert.Len(t, first, 2)
}

func TestFilesEarlyStop(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.ts": "", "b.ts": "", "c.ts": ""})

	seq, err := Files(ctx, root)
	require.NoError(t, err)

	count := 0
	for range seq {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(t, 2, count)
}

func TestFilesCancelledContext(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a.ts": "", "b.ts": ""})

	ctx, cancel := context.WithCancel(zerolog.Nop().WithContext(context.Background()))
	seq, err := Files(ctx, root)
	require.NoError(t, err)
	cancel()

	got := 0
	for range seq {
		got++
	}
	assert.Zero(t, got, "no files should be yielded after cancellation")
}

func TestFilesSymlinks(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	root := t.TempDir()
	outside := t.TempDir()
	writeTree(t, root, map[string]string{"real.ts": ""})
	writeTree(t, outside, map[string]string{"hidden.ts": ""})

	require.NoError(t, os.Symlink(filepath.Join(root, "real.ts"), filepath.Join(root, "link.ts")))
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linkdir")))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing.ts"), filepath.Join(root, "dangling.ts")))

	got := collect(t, ctx, root)
	sort.Strings(got)
	assert.Equal(t, []string{"dangling.ts", "link.ts", "real.ts"}, got)
}

func TestFilesSymlinkedRoot(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	target := t.TempDir()
	writeTree(t, target, map[string]string{"sub/a.ts": ""})

	link := filepath.Join(t.TempDir(), "root")
	require.NoError(t, os.Symlink(target, link))

	got := collect(t, ctx, link)
	assert.Equal(t, []string{"sub/a.ts"}, got)
}

func TestFilesRootErrors(t *testing.T) {
	ctx := zerolog.Nop().WithContext(context.Background())
	dir := t.TempDir()
	file := filepath.Join(dir, "file.ts")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	tests := []struct {
		name        string
		root        string
		errContains string
		notExist    bool
	}{
		{
			name:        "missing_root",
			root:        filepath.Join(dir, "nope"),
			errContains: "accessing root",
			notExist:    true,
		},
		{
			name:        "root_is_file",
			root:        file,
			errContains: "is not a directory",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, err := Files(ctx, tt.root)
			require.Error(t, err)
			assert.Nil(t, seq)
			assert.Contains(t, err.Error(), tt.errContains)
			if tt.notExist {
				assert.ErrorIs(t, err, os.ErrNotExist)
			}
		})
	}
}
