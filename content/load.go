package content

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/rohanthewiz/serr"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML content file over the defaults. Keys absent from the
// file keep their default value; lists are replaced wholesale. An empty path
// returns the defaults.
func Load(path string) (Site, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Site{}, serr.Wrap(err, "failed to read content file "+path)
	}

	site, err := Parse(data)
	if err != nil {
		return Site{}, serr.Wrap(err, "failed to parse content file "+path)
	}
	return site, nil
}

// Parse decodes YAML over the defaults, rejecting unknown keys.
func Parse(data []byte) (Site, error) {
	site := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&site); err != nil && !errors.Is(err, io.EOF) {
		return Site{}, err
	}
	return site, nil
}
