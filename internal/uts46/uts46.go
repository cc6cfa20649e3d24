// Package uts46 converts domain names between Unicode and ASCII the way the
// WHATWG URL standard's domain-to-ASCII algorithm does.
package uts46

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"
	"golang.org/x/text/width"
)

// profile is non-transitional UTS-46 processing with bidi and joiner checks,
// without STD3 rules, hyphen placement checks or DNS length limits.
// STD3 is replaced by the URL deny list below.
var profile = idna.New(
	idna.MapForLookup(),
	idna.BidiRule(),
	idna.Transitional(false),
	idna.CheckHyphens(false),
	idna.StrictDomainName(false),
	idna.VerifyDNSLength(false),
)

const acePrefix = "xn--"

// urlDenied holds the printable ASCII code points the URL standard forbids in
// a domain. C0 controls, space, DEL and U+FFFD are rejected separately.
const urlDenied = `%#/:<>?@[\]^|`

var (
	ErrEmpty       = errors.New("empty domain")
	ErrInvalidUTF8 = errors.New("domain is not valid UTF-8")
)

// ForbiddenCodePointError reports a code point rejected by the URL deny list.
type ForbiddenCodePointError struct {
	Domain string
	Rune   rune
}

func (e *ForbiddenCodePointError) Error() string {
	return fmt.Sprintf("forbidden code point %U %q in domain %q", e.Rune, e.Rune, e.Domain)
}

// ACELabelError reports an "xn--" label that does not encode a non-ASCII
// label: its Punycode part is empty or decodes to plain ASCII.
type ACELabelError struct {
	Label  string
	Reason string
}

func (e *ACELabelError) Error() string {
	return fmt.Sprintf("invalid A-label %q: %s", e.Label, e.Reason)
}

// ToUnicode maps and validates domain and returns its Unicode form.
// A-labels ("xn--") are decoded.
func ToUnicode(domain string) (string, error) {
	if err := checkInput(domain); err != nil {
		return "", err
	}
	out, err := profile.ToUnicode(domain)
	if err != nil {
		return "", err
	}
	if err := checkACELabels(domain); err != nil {
		return "", err
	}
	if err := checkDenyList(out); err != nil {
		return "", err
	}
	// Anything accepted here must convert back.
	if _, err := profile.ToASCII(out); err != nil {
		return "", err
	}
	return out, nil
}

// ToASCII maps and validates domain and returns its Punycode form.
func ToASCII(domain string) (string, error) {
	if err := checkInput(domain); err != nil {
		return "", err
	}
	out, err := profile.ToASCII(domain)
	if err != nil {
		return "", err
	}
	if err := checkACELabels(domain); err != nil {
		return "", err
	}
	if err := checkDenyList(out); err != nil {
		return "", err
	}
	return out, nil
}

func checkInput(domain string) error {
	if domain == "" {
		return ErrEmpty
	}
	if !utf8.ValidString(domain) {
		return fmt.Errorf("%w: %q", ErrInvalidUTF8, domain)
	}
	return nil
}

// checkACELabels rejects input A-labels whose Punycode part is empty or
// decodes to ASCII. The idna package decodes those silently, so the check
// runs on the input labels rather than on the converted name.
func checkACELabels(domain string) error {
	for _, label := range strings.FieldsFunc(domain, isDot) {
		label = strings.ToLower(width.Fold.String(label))
		if !strings.HasPrefix(label, acePrefix) {
			continue
		}
		if len(label) == len(acePrefix) {
			return &ACELabelError{Label: label, Reason: "empty Punycode part"}
		}
		decoded, err := idna.Punycode.ToUnicode(label)
		if err != nil {
			return err
		}
		if isASCII(decoded) {
			return &ACELabelError{Label: label, Reason: fmt.Sprintf("decodes to ASCII %q", decoded)}
		}
	}
	return nil
}

// isDot reports the label separators UTS-46 maps to a full stop.
func isDot(r rune) bool {
	switch r {
	case '.', '\u3002', '\uff0e', '\uff61':
		return true
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

func checkDenyList(domain string) error {
	for _, r := range domain {
		if r <= 0x20 || r == 0x7f || r == utf8.RuneError || strings.ContainsRune(urlDenied, r) {
			return &ForbiddenCodePointError{Domain: domain, Rune: r}
		}
	}
	return nil
}
