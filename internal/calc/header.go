package calc

import (
	"fmt"
	"strings"

	"github.com/aretw0/strcalc/pkg/domain"
)

// ParseHeader detects the optional "//...\n" header and returns the delimiter
// set together with the residual body.
//
// Inputs without the marker use the default delimiters and keep the whole
// input as the body. With the marker, the header runs up to the first newline
// and is read either as bracket groups ("[*][%]") or as one literal delimiter.
func ParseHeader(input string) (domain.DelimiterSpec, error) {
	if !strings.HasPrefix(input, domain.HeaderMarker) {
		return domain.DefaultSpec(input), nil
	}

	rest := input[len(domain.HeaderMarker):]
	end := strings.IndexByte(rest, '\n')
	if end < 0 {
		return domain.DelimiterSpec{}, &domain.MalformedHeaderError{
			Header: rest,
			Reason: "missing terminating newline",
		}
	}
	header, body := rest[:end], rest[end+1:]

	var (
		delims []string
		err    error
	)
	if strings.HasPrefix(header, "[") {
		delims, err = parseBracketed(header)
	} else {
		delims, err = parseBare(header)
	}
	if err != nil {
		return domain.DelimiterSpec{}, err
	}

	delims = dedupe(delims)
	if len(delims) == 0 {
		return domain.DelimiterSpec{}, &domain.MalformedHeaderError{Header: header, Reason: "no delimiters declared"}
	}

	return domain.DelimiterSpec{Delimiters: delims, Body: body, Custom: true}, nil
}

// parseBracketed reads one or more immediately concatenated "[<delim>]" groups.
func parseBracketed(header string) ([]string, error) {
	var delims []string
	pos := 0
	for pos < len(header) {
		if header[pos] != '[' {
			return nil, &domain.MalformedHeaderError{
				Header: header,
				Reason: fmt.Sprintf("unexpected %q at offset %d, want '['", header[pos], pos),
			}
		}

		closing := strings.IndexByte(header[pos+1:], ']')
		if closing < 0 {
			return nil, &domain.MalformedHeaderError{Header: header, Reason: "unterminated bracket group"}
		}
		content := header[pos+1 : pos+1+closing]

		if content == "" {
			return nil, &domain.MalformedHeaderError{Header: header, Reason: "empty bracket group"}
		}
		if strings.IndexByte(content, '[') >= 0 {
			return nil, &domain.MalformedHeaderError{Header: header, Reason: "nested '[' inside bracket group"}
		}

		delims = append(delims, content)
		pos += closing + 2
	}
	return delims, nil
}

// parseBare treats the whole header as a single literal delimiter.
func parseBare(header string) ([]string, error) {
	if header == "" {
		return nil, &domain.MalformedHeaderError{Header: header, Reason: "empty delimiter"}
	}
	return []string{header}, nil
}

func dedupe(delims []string) []string {
	seen := make(map[string]struct{}, len(delims))
	out := delims[:0]
	for _, d := range delims {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
