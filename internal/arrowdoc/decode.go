package arrowdoc

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Decoder is implemented by the decoders of encoding/json, yaml and toml.
type Decoder interface {
	Decode(v any) error
}

// DecoderFunc creates a new Decoder for the given reader.
type DecoderFunc func(r io.Reader) Decoder

// NewDecoderFunc returns a DecoderFunc for a specific Decoder type.
func NewDecoderFunc[T Decoder](f func(r io.Reader) T) DecoderFunc {
	return func(r io.Reader) Decoder { return f(r) }
}

// Decoders maps file extensions to document decoders.
var Decoders = map[string]DecoderFunc{
	".json": NewDecoderFunc(json.NewDecoder),
	".yaml": NewDecoderFunc(yaml.NewDecoder),
	".yml":  NewDecoderFunc(yaml.NewDecoder),
	".toml": NewDecoderFunc(toml.NewDecoder),
}

// DecoderFor returns the decoder registered for filename's extension.
func DecoderFor(filename string) (DecoderFunc, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	f, ok := Decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%q: %w", ext, ErrUnknownFormat)
	}
	return f, nil
}

// Open reads and validates the document in filename. The format is chosen
// by the file's extension.
func Open(filename string) (*Document, error) {
	f, err := DecoderFor(filename)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	d, err := Read(bufio.NewReader(fp), f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return d, nil
}

// Read decodes and validates a document from r.
func Read(r io.Reader, f DecoderFunc) (*Document, error) {
	var d Document
	if err := f(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("decoding document: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// ReadBytes decodes and validates a document from data.
func ReadBytes(data []byte, f DecoderFunc) (*Document, error) {
	return Read(bytes.NewReader(data), f)
}
