// Package stream builds the git fast-import object stream for a synthetic
// linear history: blobs with strictly increasing marks, then commits that
// bind those marks into the tree, terminated by "done".
package stream

import (
	"errors"
	"fmt"
	"io"
	"time"
)

// fileMode is the tree entry mode for regular files in the import grammar.
const fileMode = "100644"

// Sentinel errors for stream invariant violations. These are defensive: a
// well-formed plan can never trigger them.
var (
	// ErrUndefinedMark indicates a commit referenced a mark no blob defined.
	ErrUndefinedMark = errors.New("commit references an undefined mark")
	// ErrTimestampRegression indicates commit timestamps went backwards.
	ErrTimestampRegression = errors.New("commit timestamp regressed")
)

// An Identity names the author and committer of the synthesized history.
type Identity struct {
	Name  string
	Email string
}

// A FileBinding assigns an already-defined blob mark to a tree path.
type FileBinding struct {
	Mark int
	Path string
}

// A Writer emits the line-oriented fast-import grammar while enforcing the
// stream invariants: marks strictly increase from 1, commits reference only
// defined marks, and timestamps never decrease. The first error sticks and
// suppresses further output.
type Writer struct {
	w        io.Writer
	nextMark int
	lastTime time.Time
	err      error
}

// NewWriter returns a Writer emitting to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, nextMark: 1}
}

// Err returns the first error encountered, if any.
func (sw *Writer) Err() error {
	return sw.err
}

// Blob emits a blob holding content and returns its mark.
func (sw *Writer) Blob(content string) int {
	if sw.err != nil {
		return 0
	}

	mark := sw.nextMark
	sw.nextMark++

	// The byte after the counted payload is a cosmetic separator; fast-import
	// tolerates one optional LF after a data block.
	_, sw.err = fmt.Fprintf(sw.w, "blob\nmark :%d\ndata %d\n%s\n", mark, len(content), content)

	return mark
}

// Commit emits a commit on branch binding the given files, stamped at when
// for both author and committer.
func (sw *Writer) Commit(branch string, who Identity, when time.Time, message string, files []FileBinding) error {
	if sw.err != nil {
		return sw.err
	}

	for _, f := range files {
		if f.Mark < 1 || f.Mark >= sw.nextMark {
			sw.err = fmt.Errorf("%w: :%d (marks defined: %d)", ErrUndefinedMark, f.Mark, sw.nextMark-1)

			return sw.err
		}
	}

	if !sw.lastTime.IsZero() && when.Before(sw.lastTime) {
		sw.err = fmt.Errorf("%w: %s after %s", ErrTimestampRegression, when, sw.lastTime)

		return sw.err
	}

	sw.lastTime = when

	secs := when.Unix()
	zone := when.Format("-0700")

	fmt.Fprintf(sw.w, "commit refs/heads/%s\n", branch)
	fmt.Fprintf(sw.w, "author %s <%s> %d %s\n", who.Name, who.Email, secs, zone)
	fmt.Fprintf(sw.w, "committer %s <%s> %d %s\n", who.Name, who.Email, secs, zone)
	fmt.Fprintf(sw.w, "data %d\n%s\n", len(message), message)

	for _, f := range files {
		_, sw.err = fmt.Fprintf(sw.w, "M %s :%d %s\n", fileMode, f.Mark, f.Path)
	}

	return sw.err
}

// Done terminates the stream.
func (sw *Writer) Done() error {
	if sw.err != nil {
		return sw.err
	}

	_, sw.err = io.WriteString(sw.w, "done\n")

	return sw.err
}
