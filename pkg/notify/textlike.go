package notify

// TextLike is implemented by any value that can stand in for a plain name
// wherever the platform expects one: request identifiers, titles, bodies,
// category and thread keys. Resolution is total; Text never fails.
type TextLike interface {
	Text() string
}

// Text is the built-in TextLike conformance for plain strings.
type Text string

// Text returns the string itself.
func (t Text) Text() string {
	return string(t)
}

// Equal reports whether two TextLike values resolve to the same text.
// Nil values resolve to the empty string.
func Equal(a, b TextLike) bool {
	return textOf(a) == textOf(b)
}

// EqualText reports whether a TextLike value resolves to the given string.
func EqualText(a TextLike, s string) bool {
	return textOf(a) == s
}

// textOf resolves an optional TextLike, treating nil as empty.
func textOf(v TextLike) string {
	if v == nil {
		return ""
	}
	return v.Text()
}
