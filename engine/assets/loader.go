package assets

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/spaghettifunk/geoscene/engine/core"
	"github.com/spaghettifunk/geoscene/engine/dynamicscene"
)

// Decoder turns raw file contents into a Document.
type Decoder interface {
	Decode(data []byte, doc *Document) error
}

type tomlDecoder struct{}

func (tomlDecoder) Decode(data []byte, doc *Document) error {
	return toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(doc)
}

type yamlDecoder struct{}

func (yamlDecoder) Decode(data []byte, doc *Document) error {
	d := yaml.NewDecoder(bytes.NewReader(data))
	d.KnownFields(true)
	if err := d.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

var decoders = map[string]Decoder{
	".toml": tomlDecoder{},
	".yaml": yamlDecoder{},
	".yml":  yamlDecoder{},
}

// IsDocument reports whether path has an extension a decoder is registered for.
func IsDocument(path string) bool {
	_, ok := decoders[strings.ToLower(filepath.Ext(path))]
	return ok
}

// DecodeDocument decodes data using the decoder registered for ext, such as ".toml".
func DecodeDocument(data []byte, ext string) (*Document, error) {
	decoder, ok := decoders[strings.ToLower(ext)]
	if !ok {
		return nil, fmt.Errorf("no decoder registered for extension %q: %w", ext, core.ErrUnsupportedDocument)
	}
	doc := &Document{}
	if err := decoder.Decode(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s document: %w", ext, err)
	}
	return doc, nil
}

// LoadDocument reads and decodes the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene document: %w", err)
	}
	doc, err := DecodeDocument(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// LoadCollection builds a new collection from the document at path.
func LoadCollection(path string) (*dynamicscene.DynamicObjectCollection, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	collection := dynamicscene.NewDynamicObjectCollection()
	if err := ProcessDocument(doc, collection); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	core.LogDebug("loaded %d objects from '%s'", collection.Len(), path)
	return collection, nil
}
