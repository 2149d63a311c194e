package sink

import (
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"

	"github.com/arthur-debert/termsay/pkg/config"
	"github.com/arthur-debert/termsay/pkg/errors"
	"github.com/arthur-debert/termsay/pkg/translit"
)

// lookupCharset resolves an IANA charset name. UTF-8 needs no encoder and
// returns nil.
func lookupCharset(charset string) (encoding.Encoding, error) {
	if config.IsUTF8(charset) {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(charset)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "unknown charset %q", charset).
			WithDetail("charset", charset)
	}
	if enc == nil {
		return nil, errors.Newf(errors.ErrEncoding, "charset %q has no encoder", charset).
			WithDetail("charset", charset)
	}
	return enc, nil
}

// encode converts text to the bytes of charset. Runes the charset cannot
// represent yield an ErrEncoding error. Pure ASCII text always encodes,
// even when the charset itself is unknown.
func encode(text, charset string) ([]byte, error) {
	enc, err := lookupCharset(charset)
	if err != nil {
		if translit.IsASCII(text) {
			return []byte(text), nil
		}
		return nil, err
	}
	if enc == nil {
		return []byte(text), nil
	}
	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrEncoding, "cannot encode message as %s", charset).
			WithDetail("charset", charset)
	}
	return []byte(out), nil
}
