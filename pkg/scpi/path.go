package scpi

import (
	"strconv"
	"strings"
)

// Separator is the SCPI path separator.
const Separator = ":"

// Join composes a command path from segments, inserting exactly one
// separator between consecutive segments regardless of whether the
// segments carry leading or trailing colons themselves. Empty segments
// are skipped. The result always starts with a single leading colon.
//
//	Join("CHAN1", "BWL")    == ":CHAN1:BWL"
//	Join(":TRIG", ":EDG")   == ":TRIG:EDG"
//	Join(":CURS:TRAC", "AX") == ":CURS:TRAC:AX"
func Join(segments ...string) string {
	var b strings.Builder
	for _, seg := range segments {
		seg = strings.Trim(seg, Separator)
		if seg == "" {
			continue
		}
		b.WriteString(Separator)
		b.WriteString(seg)
	}
	return b.String()
}

// Indexed appends a 1-based index to a subsystem segment. Substitution
// is purely textual; no validation happens here (collections validate
// their own cardinality before constructing nodes).
//
//	Indexed("CHAN", 1) == "CHAN1"
func Indexed(segment string, index int) string {
	return segment + strconv.Itoa(index)
}

// Query returns the query form of a command path.
//
//	Query(":CHAN1:DISP") == ":CHAN1:DISP?"
func Query(path string) string {
	return path + "?"
}

// Set returns the write form of a command path with an encoded value.
//
//	Set(":CHAN1:SCAL", "1.0000e+00") == ":CHAN1:SCAL 1.0000e+00"
func Set(path, value string) string {
	return path + " " + value
}
