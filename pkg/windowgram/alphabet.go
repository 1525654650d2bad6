package windowgram

import "strings"

// Alphabet is the ordered set of valid pane identifiers.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// Reserved symbols, valid only in extended windowgrams.
const (
	Transparent byte = '.'
	MaskOne     byte = '@'
	MaskZero    byte = ':'
)

// Reserved lists the extended-mode symbols in their sort order.
const Reserved = ".@:"

// symbols is the alphabet followed by the reserved symbols; the position in
// this string is the sort key for identifiers.
const symbols = Alphabet + Reserved

// MaxPanes is the number of distinct pane identifiers.
const MaxPanes = len(Alphabet)

// IsPaneID reports whether c is in the pane alphabet.
func IsPaneID(c byte) bool {
	return strings.IndexByte(Alphabet, c) >= 0
}

// IsReserved reports whether c is one of the extended-mode symbols.
func IsReserved(c byte) bool {
	return strings.IndexByte(Reserved, c) >= 0
}

func validSymbol(c byte, extended bool) bool {
	if extended {
		return strings.IndexByte(symbols, c) >= 0
	}
	return IsPaneID(c)
}

// Index returns the sort position of c, or -1 if c is not a symbol.
func Index(c byte) int {
	return strings.IndexByte(symbols, c)
}

// SortIDs returns the distinct valid symbols of ids in alphabet order.
// Unknown characters are dropped.
func SortIDs(ids string) string {
	var seen [len(symbols)]bool
	for i := 0; i < len(ids); i++ {
		if ix := Index(ids[i]); ix >= 0 {
			seen[ix] = true
		}
	}
	var b strings.Builder
	for ix, ok := range seen {
		if ok {
			b.WriteByte(symbols[ix])
		}
	}
	return b.String()
}

// Union returns the sorted, distinct identifiers found in a or b.
func Union(a, b string) string {
	return SortIDs(a + b)
}

// Subtract returns the sorted identifiers of a that are not in b.
func Subtract(a, b string) string {
	var out strings.Builder
	for _, c := range []byte(SortIDs(a)) {
		if strings.IndexByte(b, c) < 0 {
			out.WriteByte(c)
		}
	}
	return out.String()
}

// InvalidIDs returns the characters of ids that are not pane identifiers,
// in order of appearance and without duplicates.
func InvalidIDs(ids string) string {
	var out []byte
	for i := 0; i < len(ids); i++ {
		c := ids[i]
		if !IsPaneID(c) && strings.IndexByte(string(out), c) < 0 {
			out = append(out, c)
		}
	}
	return string(out)
}
