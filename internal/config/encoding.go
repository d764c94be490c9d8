package config

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
)

// ResolveEncoding maps a declared encoding name to a text decoder. The
// source dataset ships in a Windows codepage, so UTF-8 is supported but not
// assumed.
func ResolveEncoding(name string) (encoding.Encoding, error) {
	if name == "" || name == "utf-8" || name == "utf8" {
		return unicode.UTF8, nil
	}

	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown input encoding %q: %w", name, err)
	}
	return enc, nil
}
