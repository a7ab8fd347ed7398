package lexicon

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

// decodeReader wraps r so that the named character encoding is converted to
// UTF-8. An empty name or any spelling of UTF-8 is a passthrough; other
// names are resolved through the IANA character set registry ("ISO-8859-1",
// "windows-1252", ...).
func decodeReader(r io.Reader, encodingName string) (io.Reader, error) {
	name := strings.TrimSpace(encodingName)
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return r, nil
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("unknown character encoding %q", encodingName)
	}
	if enc == encoding.Nop {
		return r, nil
	}
	return transform.NewReader(r, enc.NewDecoder()), nil
}
