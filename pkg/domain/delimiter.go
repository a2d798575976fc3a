package domain

// HeaderMarker prefixes an input that declares custom delimiters.
const HeaderMarker = "//"

// DefaultDelimiters are used when the input carries no header.
var DefaultDelimiters = []string{",", "\n"}

// DelimiterSpec is the result of header parsing: the delimiters to split on
// and the residual body that follows the header.
type DelimiterSpec struct {
	// Delimiters holds every declared delimiter in declaration order.
	// None is empty and duplicates are removed.
	Delimiters []string

	// Body is the numeric part of the input.
	Body string

	// Custom is true when the delimiters came from a "//" header.
	Custom bool
}

// DefaultSpec returns the spec used for inputs without a header.
func DefaultSpec(body string) DelimiterSpec {
	delims := make([]string, len(DefaultDelimiters))
	copy(delims, DefaultDelimiters)
	return DelimiterSpec{Delimiters: delims, Body: body}
}

// Token is a contiguous substring of the body between two delimiters.
type Token struct {
	Value string
	// Position is the zero-based index of the token in the body.
	Position int
}
