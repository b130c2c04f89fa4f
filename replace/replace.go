// Package replace implements the Replacement Engine: given selected match
// items and a replacement string, it rewrites each affected file on disk.
package replace

import (
	"os"
	"regexp"

	"github.com/google/renameio/v2"
	"github.com/pkg/errors"

	"github.com/acheronfail/repgrep-sub000/exec"
	"github.com/acheronfail/repgrep-sub000/item"
	"github.com/acheronfail/repgrep-sub000/rgencoding"
)

// Attempt is the outcome of replacing a single submatch.
type Attempt struct {
	Success bool
	// Removed is the text that was replaced, present when Success is true.
	Removed string
	// Reason is a human-readable failure message, present when Success is
	// false.
	Reason string
}

// FileResult collects every replacement attempt made against one file. A
// file with several selected Match items still gets exactly one FileResult:
// all of its items are decoded, patched, and encoded together against a
// single in-memory buffer before one atomic write.
type FileResult struct {
	Path     string
	Encoder  string
	Attempts []Attempt
}

// Result is the outcome of a whole replacement run.
type Result struct {
	Text  string
	Files []FileResult
}

// Run performs every selected replacement named by criteria and writes each
// affected file atomically. Items are grouped by path first; within each
// group they are processed in reverse document order so that earlier byte
// offsets in the file are never invalidated by a replacement made later in
// the same pass.
func Run(criteria exec.ReplacementCriteria) (*Result, error) {
	declared := rgencoding.ParseDeclared(criteria.EncodingLabel)

	pattern, err := compilePattern(criteria.Pattern)
	if err != nil {
		return nil, err
	}

	result := &Result{Text: criteria.Text}

	groups, order := groupByPath(criteria.Items.Items)
	for _, path := range order {
		result.Files = append(result.Files, replaceInFile(path, groups[path], criteria.Text, pattern, declared))
	}
	return result, nil
}

// groupByPath collects the selected Match items by the file they belong to,
// preserving each group's items in document order and returning the paths
// in first-seen order.
func groupByPath(items []item.Item) (map[string][]*item.Item, []string) {
	groups := make(map[string][]*item.Item)
	var order []string
	for i := range items {
		it := &items[i]
		if it.Kind != item.KindMatch || it.ReplaceCount() == 0 {
			continue
		}
		path := it.Path().ToPlatformPath()
		if _, ok := groups[path]; !ok {
			order = append(order, path)
		}
		groups[path] = append(groups[path], it)
	}
	return groups, order
}

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, errors.Wrapf(err, "compile replacement pattern %q", pattern)
	}
	return re, nil
}

// replaceInFile reads path once, applies every selected submatch across all
// of its items against a single in-memory buffer (items in reverse document
// order, and within each item its submatches in reverse order, so that
// earlier byte offsets are never invalidated by a later replacement in the
// same pass), then atomically rewrites it once.
func replaceInFile(path string, items []*item.Item, replacement string, pattern *regexp.Regexp, declared rgencoding.Declared) FileResult {
	contents, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Attempts: []Attempt{{Reason: errors.Wrapf(err, "read %s", path).Error()}}}
	}

	outcome := rgencoding.Detect(contents, declared)

	// Strip the BOM before decoding. A UTF-8 BOM is left in place; ripgrep
	// doesn't strip it either, so byte offsets already account for it.
	body := contents
	if outcome.BOM != rgencoding.BOMNone && outcome.BOM != rgencoding.BOMUtf8 {
		body = contents[outcome.BOM.Len():]
	}

	fileStr, err := outcome.Codec.Decode(body)
	if err != nil {
		return FileResult{
			Path:     path,
			Encoder:  outcome.Codec.Name(),
			Attempts: []Attempt{{Reason: errors.Wrapf(err, "decode %s", path).Error()}},
		}
	}

	var attempts []Attempt
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		offset := it.Offset()
		for j := len(it.SubItems) - 1; j >= 0; j-- {
			sub := it.SubItems[j]
			if !sub.ShouldReplace {
				continue
			}

			start := offset + sub.SubMatch.Start
			end := offset + sub.SubMatch.End
			if end > uint64(len(fileStr)) || start > end {
				attempts = append(attempts, Attempt{
					Reason: errors.Errorf("submatch range %d..%d out of bounds in %s", start, end, path).Error(),
				})
				continue
			}

			actual := fileStr[start:end]
			expected := sub.SubMatch.Match.Bytes()
			if actual != string(expected) {
				attempts = append(attempts, Attempt{
					Reason: errors.Errorf("matched bytes do not match bytes to replace in %s@%d", path, start).Error(),
				})
				continue
			}

			text := expandReplacement(replacement, pattern, actual)
			fileStr = fileStr[:start] + text + fileStr[end:]
			attempts = append(attempts, Attempt{Success: true, Removed: actual})
		}
	}

	replacedBytes, err := outcome.Codec.Encode(fileStr)
	if err != nil {
		return FileResult{
			Path:     path,
			Encoder:  outcome.Codec.Name(),
			Attempts: []Attempt{{Reason: errors.Wrapf(err, "encode %s", path).Error()}},
		}
	}

	if err := writeFile(path, outcome, replacedBytes); err != nil {
		return FileResult{
			Path:     path,
			Encoder:  outcome.Codec.Name(),
			Attempts: []Attempt{{Reason: errors.Wrapf(err, "write %s", path).Error()}},
		}
	}

	return FileResult{Path: path, Encoder: outcome.Codec.Name(), Attempts: attempts}
}

// expandReplacement applies a capture-group pattern against the matched
// text when one was supplied, otherwise returns the plain replacement
// string.
func expandReplacement(replacement string, pattern *regexp.Regexp, matched string) string {
	if pattern == nil {
		return replacement
	}
	loc := pattern.FindStringSubmatchIndex(matched)
	if loc == nil {
		return replacement
	}
	return string(pattern.ExpandString(nil, replacement, matched, loc))
}

// writeFile rewrites path atomically via renameio's pending file, a
// temporary file with a renameio-chosen hidden name in the same directory
// (no ".rgr" file is created), re-prepending the original BOM (other than a
// UTF-8 one, which was never stripped).
func writeFile(path string, outcome rgencoding.Outcome, body []byte) error {
	t, err := renameio.NewPendingFile(path, renameio.WithPermissions(0644), renameio.WithExistingPermissions())
	if err != nil {
		return errors.Wrap(err, "create temp file")
	}
	defer t.Cleanup()

	if outcome.BOM != rgencoding.BOMNone && outcome.BOM != rgencoding.BOMUtf8 {
		if _, err := t.Write(outcome.BOM.Bytes()); err != nil {
			return errors.Wrap(err, "write bom")
		}
	}
	if _, err := t.Write(body); err != nil {
		return errors.Wrap(err, "write contents")
	}
	return t.CloseAtomicallyReplace()
}
