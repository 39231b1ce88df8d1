package value

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

var (
	// ErrEmpty is returned when the input holds no JSON value.
	ErrEmpty = errors.New("value: empty input")
	// ErrTrailingData is returned when more data follows the first JSON value.
	ErrTrailingData = errors.New("value: trailing data after JSON value")
	// ErrTooDeep is returned when nesting exceeds DecodeOptions.MaxDepth.
	ErrTooDeep = errors.New("value: max depth exceeded")
	// ErrTooLarge is returned when the input exceeds DecodeOptions.MaxBytes.
	ErrTooLarge = errors.New("value: max bytes exceeded")
	// ErrDuplicateKey is returned for repeated object keys when
	// DecodeOptions.RejectDuplicateKeys is set.
	ErrDuplicateKey = errors.New("value: duplicate key")
)

// DecodeOptions bounds decoding. Zero values disable each limit.
type DecodeOptions struct {
	MaxDepth            int
	MaxBytes            int64
	RejectDuplicateKeys bool
}

// Parse decodes a single JSON document.
func Parse(data []byte) (Value, error) { return Decode(bytes.NewReader(data)) }

// Decode reads a single JSON document from r. Numbers keep their literal
// text, object members keep document order and the last duplicate key wins.
func Decode(r io.Reader) (Value, error) { return DecodeWith(r, DecodeOptions{}) }

// DecodeWith is Decode with enforcement of opt.
func DecodeWith(r io.Reader, opt DecodeOptions) (Value, error) {
	var lr *limitReader
	if opt.MaxBytes > 0 {
		lr = &limitReader{r: r, left: opt.MaxBytes}
		r = lr
	}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	d := &decoder{dec: dec, opt: opt, lr: lr}
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) && !d.exceeded() {
			return nil, ErrEmpty
		}
		return nil, d.wrap(err)
	}
	v, err := d.value(tok)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if d.exceeded() {
			return nil, ErrTooLarge
		}
		return nil, ErrTrailingData
	}
	return v, nil
}

type decoder struct {
	dec   *json.Decoder
	opt   DecodeOptions
	lr    *limitReader
	depth int
}

func (d *decoder) exceeded() bool { return d.lr != nil && d.lr.left < 0 }

func (d *decoder) value(tok json.Token) (Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{', '[':
			d.depth++
			if d.opt.MaxDepth > 0 && d.depth > d.opt.MaxDepth {
				return nil, ErrTooDeep
			}
			defer func() { d.depth-- }()
			if t == '{' {
				return d.object()
			}
			return d.array()
		}
		return nil, fmt.Errorf("value: unexpected delimiter %q", rune(t))
	case string:
		return String(t), nil
	case json.Number:
		return Number(t), nil
	case float64:
		return NumberFromFloat(t), nil
	case bool:
		return Bool(t), nil
	case nil:
		return Null{}, nil
	}
	return nil, fmt.Errorf("value: unexpected token %v", tok)
}

func (d *decoder) object() (Value, error) {
	obj := Object{}
	index := map[string]int{}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.wrap(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == '}' {
			return obj, nil
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("value: expected object key, got %v", tok)
		}
		vt, err := d.dec.Token()
		if err != nil {
			return nil, d.wrap(err)
		}
		v, err := d.value(vt)
		if err != nil {
			return nil, err
		}
		if i, dup := index[key]; dup {
			if d.opt.RejectDuplicateKeys {
				return nil, fmt.Errorf("%w: %q", ErrDuplicateKey, key)
			}
			obj[i].Value = v
			continue
		}
		index[key] = len(obj)
		obj = append(obj, Member{Key: key, Value: v})
	}
}

func (d *decoder) array() (Value, error) {
	arr := Array{}
	for {
		tok, err := d.dec.Token()
		if err != nil {
			return nil, d.wrap(err)
		}
		if delim, ok := tok.(json.Delim); ok && delim == ']' {
			return arr, nil
		}
		v, err := d.value(tok)
		if err != nil {
			return nil, err
		}
		arr = append(arr, v)
	}
}

func (d *decoder) wrap(err error) error {
	switch {
	case d.exceeded():
		return ErrTooLarge
	case errors.Is(err, io.EOF):
		return fmt.Errorf("value: %w", io.ErrUnexpectedEOF)
	}
	return fmt.Errorf("value: %w", err)
}

// limitReader fails with ErrTooLarge once more than left bytes are read.
type limitReader struct {
	r    io.Reader
	left int64
}

func (l *limitReader) Read(p []byte) (int, error) {
	if l.left < 0 {
		return 0, ErrTooLarge
	}
	if int64(len(p)) > l.left+1 {
		p = p[:l.left+1]
	}
	n, err := l.r.Read(p)
	l.left -= int64(n)
	if l.left < 0 {
		return 0, ErrTooLarge
	}
	return n, err
}
