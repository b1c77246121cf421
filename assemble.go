package vcmi

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"

	"github.com/jeyms233/vcmi/debug"
	"github.com/jeyms233/vcmi/dom"
	"github.com/jeyms233/vcmi/parse"
)

// Assemble parses the named sources in order and merges them into one
// resolved document, later sources overriding earlier ones. Every node
// is stamped with the path of the source that set it. Sources ending in
// .gz or .zst are decompressed first; the format is then chosen by the
// remaining extension. Any unreadable or malformed source fails the
// whole assembly.
func Assemble(fsys fs.FS, paths ...string) (*dom.Node, error) {
	doc := dom.Null()
	for _, p := range paths {
		node, err := loadSource(fsys, p)
		if err != nil {
			return nil, err
		}
		Merge(doc, node)
	}
	return doc, nil
}

// AssembleBestEffort is Assemble in the permissive mode: broken sources
// contribute what parses, and the flag reports whether every source was
// read and syntactically valid.
func AssembleBestEffort(fsys fs.FS, paths ...string) (*dom.Node, bool) {
	doc := dom.Null()
	valid := true
	for _, p := range paths {
		data, rest, err := readSource(fsys, p)
		if err != nil {
			valid = false
			continue
		}
		var (
			node *dom.Node
			ok   bool
		)
		if parse.FormatForPath(rest) == parse.YAMLFormat {
			var err error
			node, err = parse.YAML(data, parse.WithMeta(p))
			ok = err == nil
			if node == nil {
				node = dom.Null()
			}
		} else {
			node, ok = parse.BestEffort(data, parse.WithMeta(p))
		}
		valid = valid && ok
		Merge(doc, node)
	}
	return doc, valid
}

func loadSource(fsys fs.FS, p string) (*dom.Node, error) {
	data, rest, err := readSource(fsys, p)
	if err != nil {
		return nil, err
	}
	node, err := parse.As(data, parse.FormatForPath(rest), parse.WithMeta(p))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", p, err)
	}
	return node, nil
}

// readSource reads and, when the extension asks for it, decompresses
// one source. rest is the path with any compression suffix removed.
func readSource(fsys fs.FS, p string) (data []byte, rest string, err error) {
	data, err = fs.ReadFile(fsys, p)
	if err != nil {
		return nil, "", err
	}
	rest = p
	switch path.Ext(p) {
	case ".gz":
		rest = strings.TrimSuffix(p, ".gz")
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", p, err)
		}
		defer r.Close()
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", p, err)
		}
	case ".zst":
		rest = strings.TrimSuffix(p, ".zst")
		d, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", p, err)
		}
		defer d.Close()
		data, err = io.ReadAll(d.IOReadCloser())
		if err != nil {
			return nil, "", fmt.Errorf("%s: %w", p, err)
		}
	}
	if debug.Assemble() {
		debug.Logf("assemble source %s (%d bytes)\n", p, len(data))
	}
	return data, rest, nil
}
