// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package git reads commits and file contents from a local repository.
package git

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// NullID is the object id git uses for the missing side of an added or deleted file.
const NullID = "0000000000000000000000000000000000000000"

// Repo is a git repository. All methods are safe for concurrent use.
type Repo struct {
	dir string

	mu  sync.Mutex // guards the cat-file process
	cmd *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open opens the repository in dir and starts a long running cat-file process to read blobs.
func Open(ctx context.Context, dir string) (*Repo, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, "git", "-C", dir, "cat-file", "--batch")
	in, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdin: %v", err)
	}
	out, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("connecting stdout: %v", err)
	}
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %v", err)
	}
	return &Repo{
		dir: dir,
		cmd: cmd,
		in:  in,
		out: bufio.NewReader(out),
	}, nil
}

// Close stops the cat-file process.
func (r *Repo) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := r.in.Close(); err != nil {
		return err
	}
	return r.cmd.Wait()
}

// RevList returns the ids of all non-merge commits reachable from HEAD.
func (r *Repo) RevList(ctx context.Context) ([]string, error) {
	out, err := r.git(ctx, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// FileDiff is a file changed by a commit.
type FileDiff struct {
	Name  string
	OldID string // NullID if the file was added
	NewID string // NullID if the file was deleted
}

// DiffTree returns the files changed by commit relative to its first parent.
func (r *Repo) DiffTree(ctx context.Context, commit string) ([]FileDiff, error) {
	out, err := r.git(ctx, "diff-tree", "-r", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	return parseDiffTree(out)
}

// parseDiffTree parses the raw output format of git diff-tree, for example
//
//	:100644 100644 bcd1234 0123456 M	file0
func parseDiffTree(out string) ([]FileDiff, error) {
	var ret []FileDiff
	for line := range strings.Lines(out) {
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			continue
		}
		meta, name, ok := strings.Cut(line, "\t")
		if !ok || !strings.HasPrefix(meta, ":") {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		fields := strings.Fields(meta[1:])
		if len(fields) != 5 {
			return nil, fmt.Errorf("malformed diff-tree line: %q", line)
		}
		// Renames and copies list the source and destination, separated by a tab.
		if _, dst, ok := strings.Cut(name, "\t"); ok {
			name = dst
		}
		ret = append(ret, FileDiff{
			Name:  name,
			OldID: fields[2],
			NewID: fields[3],
		})
	}
	return ret, nil
}

// Blob returns the contents of the blob with the given id. The contents of NullID are empty.
func (r *Repo) Blob(id string) (string, error) {
	if id == NullID {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, err := fmt.Fprintf(r.in, "%s\n", id); err != nil {
		return "", fmt.Errorf("requesting blob %s: %v", id, err)
	}
	return readBlob(r.out, id)
}

// readBlob reads one response of git cat-file --batch.
func readBlob(r *bufio.Reader, id string) (string, error) {
	header, err := r.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading header of blob %s: %v", id, err)
	}
	fields := strings.Fields(header)
	if len(fields) == 2 && fields[1] == "missing" {
		return "", fmt.Errorf("blob %s missing", id)
	}
	if len(fields) != 3 {
		return "", fmt.Errorf("malformed cat-file header: %q", header)
	}
	if fields[0] != id {
		return "", fmt.Errorf("ids don't match %s vs %s", fields[0], id)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return "", fmt.Errorf("malformed cat-file header: %q", header)
	}
	buf := make([]byte, n+1) // contents are followed by a newline
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("reading blob %s: %v", id, err)
	}
	return string(buf[:n]), nil
}

func (r *Repo) git(ctx context.Context, args ...string) (string, error) {
	var wout, werr strings.Builder
	cmd := exec.CommandContext(ctx, "git", append([]string{"-C", r.dir}, args...)...)
	cmd.Stdout = &wout
	cmd.Stderr = &werr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("running git command %v: %v\n%s", cmd, err, werr.String())
	}
	return wout.String(), nil
}
