package canonical

import (
	"bytes"
	"io"
	"slices"

	"jcs.mleku.dev/text"
)

// member is one finished key/value pair of an open object.
type member struct {
	// key is the quoted and escaped key token as it is written out.
	key []byte
	// text is the unescaped key, which is what members are ordered by.
	text  []byte
	value []byte
}

// frame buffers the members of one open object until it is closed.
type frame struct {
	key, value bytes.Buffer
	text       []byte
	keyPhase   bool
	members    map[string]member
}

func (f *frame) reset() {
	f.key.Reset()
	f.value.Reset()
	f.text = f.text[:0]
	f.keyPhase = false
	if f.members == nil {
		f.members = make(map[string]member)
	} else {
		clear(f.members)
	}
}

// pending reports whether a member has been started but not finished.
func (f *frame) pending() bool { return f.keyPhase || f.key.Len() > 0 || f.value.Len() > 0 }

// commit moves the pending key and value into the members, replacing an
// earlier member with the same key.
func (f *frame) commit() {
	m := member{
		key:   bytes.Clone(f.key.Bytes()),
		text:  bytes.Clone(f.text),
		value: bytes.Clone(f.value.Bytes()),
	}
	f.members[string(m.key)] = m
	f.key.Reset()
	f.value.Reset()
	f.text = f.text[:0]
	f.keyPhase = false
}

// sorted returns the members ordered by the UTF-16 code units of their keys.
func (f *frame) sorted() (ms []member) {
	ms = make([]member, 0, len(f.members))
	for _, m := range f.members {
		ms = append(ms, m)
	}
	slices.SortFunc(ms, func(a, b member) int { return text.CompareUTF16(a.text, b.text) })
	return
}

// flush writes the sorted members and the closing brace to w. The opening
// brace was written when the object began.
func (f *frame) flush(w io.Writer) (err error) {
	for i, m := range f.sorted() {
		if i > 0 {
			if _, err = w.Write([]byte{','}); err != nil {
				return
			}
		}
		if _, err = w.Write(m.key); err != nil {
			return
		}
		if _, err = w.Write([]byte{':'}); err != nil {
			return
		}
		if _, err = w.Write(m.value); err != nil {
			return
		}
	}
	_, err = w.Write([]byte{'}'})
	return
}

// stack holds one frame per open object. Frames are kept after they are
// popped and reused by later objects at the same depth.
type stack struct {
	frames []frame
	depth  int
}

func (s *stack) push() {
	if s.depth == len(s.frames) {
		s.frames = append(s.frames, frame{})
	}
	s.frames[s.depth].reset()
	s.depth++
}

// top returns the innermost open frame, or nil if no object is open.
func (s *stack) top() *frame {
	if s.depth == 0 {
		return nil
	}
	return &s.frames[s.depth-1]
}

// pop closes the innermost frame. The frame stays valid until the next push.
func (s *stack) pop() (f *frame) {
	if s.depth == 0 {
		return nil
	}
	s.depth--
	return &s.frames[s.depth]
}
