package reconcile

import (
	"strings"

	"github.com/arthur-debert/rigup/pkg/types"
)

// renderBlock produces the canonical on-disk form of a managed block:
// begin marker line, body with a trailing newline, end marker line.
func renderBlock(file types.ManagedFile) string {
	body := file.Content
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	return file.MarkerBegin + "\n" + body + file.MarkerEnd + "\n"
}

// upsertBlock returns the file content with exactly one up-to-date marked
// block, and the outcome describing how it got there. The input slice is
// returned unchanged when the block is already current.
func upsertBlock(existing []byte, file types.ManagedFile) ([]byte, Outcome) {
	content := string(existing)
	block := renderBlock(file)

	begin := strings.Index(content, file.MarkerBegin)
	if begin == -1 {
		out := content
		if out != "" && !strings.HasSuffix(out, "\n") {
			out += "\n"
		}
		return []byte(out + block), OutcomeBlockAppended
	}

	// Locate the end of the existing block. A missing end marker means a
	// damaged block; reclaim everything to EOF so the rewrite restores
	// the single-block invariant.
	regionEnd := len(content)
	if endRel := strings.Index(content[begin+len(file.MarkerBegin):], file.MarkerEnd); endRel != -1 {
		regionEnd = begin + len(file.MarkerBegin) + endRel + len(file.MarkerEnd)
		if regionEnd < len(content) && content[regionEnd] == '\n' {
			regionEnd++
		}
	}

	if content[begin:regionEnd] == block {
		return existing, OutcomeSkipped
	}

	return []byte(content[:begin] + block + content[regionEnd:]), OutcomeBlockRefreshed
}
