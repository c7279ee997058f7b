package formatter

import (
	"io"
	"unicode/utf8"

	"jcs.mleku.dev/text"
)

const replacement = "\uFFFD"

// WriteString emits s as one string token: runs of bytes that need no
// escaping go out as fragments and every byte that does goes out as its own
// WriteCharEscape. Invalid UTF-8 sequences are replaced by U+FFFD, the same
// as encoding/json does, so the output is always valid UTF-8.
func WriteString(f I, w io.Writer, s string) (err error) {
	if err = f.BeginString(w); err != nil {
		return
	}
	var start int
	flush := func(end int) (err error) {
		if start < end {
			err = f.WriteStringFragment(w, s[start:end])
		}
		return
	}
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if text.NeedsEscape(c) {
				if err = flush(i); err != nil {
					return
				}
				if err = f.WriteCharEscape(w, c); err != nil {
					return
				}
				start = i + 1
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			if err = flush(i); err != nil {
				return
			}
			if err = f.WriteStringFragment(w, replacement); err != nil {
				return
			}
			start = i + 1
		}
		i += size
	}
	if err = flush(len(s)); err != nil {
		return
	}
	return f.EndString(w)
}
