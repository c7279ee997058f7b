package walk

import (
	"bytes"
	"io"
	"strconv"

	"github.com/go-json-experiment/json/jsontext"
	"github.com/pkg/errors"

	"jcs.mleku.dev/formatter"
)

// ErrMalformedRawFragment is returned when raw JSON text is not exactly one
// valid JSON value.
var ErrMalformedRawFragment = errors.New("malformed raw JSON fragment")

// Raw reads exactly one JSON value from data and emits its events into f.
//
// Duplicate member names are allowed and passed on as they are; a formatter
// that buffers members keeps the last. Numbers are read as IEEE-754 doubles,
// so a literal too large for a double becomes an infinity, which the
// formatter then rejects.
func Raw(f formatter.I, w io.Writer, data []byte) (err error) {
	dec := jsontext.NewDecoder(bytes.NewReader(data), jsontext.AllowDuplicateNames(true))
	if err = rawValue(f, w, dec); err != nil {
		return
	}
	if _, err = dec.ReadToken(); err != io.EOF {
		if err == nil {
			err = errors.Wrapf(ErrMalformedRawFragment, "trailing data after value at offset %d",
				dec.InputOffset())
		} else {
			err = malformed(err)
		}
		return
	}
	return nil
}

func malformed(err error) error {
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return errors.Wrapf(ErrMalformedRawFragment, "%s", err)
}

func rawValue(f formatter.I, w io.Writer, dec *jsontext.Decoder) (err error) {
	var tok jsontext.Token
	if tok, err = dec.ReadToken(); err != nil {
		return malformed(err)
	}
	switch tok.Kind() {
	case 'n':
		return f.WriteNull(w)
	case 't', 'f':
		return f.WriteBool(w, tok.Bool())
	case '"':
		return formatter.WriteString(f, w, tok.String())
	case '0':
		return rawNumber(f, w, tok.String())
	case '[':
		if err = f.BeginArray(w); err != nil {
			return
		}
		for first := true; dec.PeekKind() != ']'; first = false {
			if err = f.BeginArrayValue(w, first); err != nil {
				return
			}
			if err = rawValue(f, w, dec); err != nil {
				return
			}
			if err = f.EndArrayValue(w); err != nil {
				return
			}
		}
		if _, err = dec.ReadToken(); err != nil {
			return malformed(err)
		}
		return f.EndArray(w)
	case '{':
		if err = f.BeginObject(w); err != nil {
			return
		}
		for first := true; dec.PeekKind() != '}'; first = false {
			var name jsontext.Token
			if name, err = dec.ReadToken(); err != nil {
				return malformed(err)
			}
			if err = f.BeginObjectKey(w, first); err != nil {
				return
			}
			if err = formatter.WriteString(f, w, name.String()); err != nil {
				return
			}
			if err = f.EndObjectKey(w); err != nil {
				return
			}
			if err = f.BeginObjectValue(w); err != nil {
				return
			}
			if err = rawValue(f, w, dec); err != nil {
				return
			}
			if err = f.EndObjectValue(w); err != nil {
				return
			}
		}
		if _, err = dec.ReadToken(); err != nil {
			return malformed(err)
		}
		return f.EndObject(w)
	}
	return errors.Wrapf(ErrMalformedRawFragment, "unexpected token %s", tok.Kind())
}

func rawNumber(f formatter.I, w io.Writer, s string) (err error) {
	var v float64
	if v, err = strconv.ParseFloat(s, 64); err != nil {
		var ne *strconv.NumError
		if !errors.As(err, &ne) || ne.Err != strconv.ErrRange {
			return malformed(err)
		}
		log.D.F("number %s is out of range for a double", s)
	}
	return f.WriteFloat(w, v)
}
