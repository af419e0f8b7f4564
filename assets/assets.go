// Package assets fingerprints the site's own static files so pages can link
// them with a cache-busting version.
package assets

import (
	"encoding/hex"
	"io/fs"

	"github.com/rohanthewiz/serr"
	"golang.org/x/crypto/blake2b"
)

const (
	ScriptPath     = "/js/site.js"
	StylesheetPath = "/css/site.css"
)

// Files are the static files that change with releases.
var Files = []string{"js/site.js", "css/site.css"}

// Version hashes the named files into a short hex digest.
func Version(fsys fs.FS, names ...string) (string, error) {
	h, err := blake2b.New256(nil)
	if err != nil {
		return "", serr.Wrap(err, "failed to create hash")
	}
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return "", serr.Wrap(err, "failed to read asset "+name)
		}
		h.Write([]byte(name))
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))[:12], nil
}

// URL appends the version query to path. An empty version leaves path as is.
func URL(path, version string) string {
	if version == "" {
		return path
	}
	return path + "?v=" + version
}
