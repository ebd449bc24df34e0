package sim

import (
	"strconv"
	"strings"
)

// LabelsAfterOne returns the labels clockwise of cup 1, stopping before 1
// comes around again. The result has N-1 labels.
func LabelsAfterOne(r *Ring) []Label {
	out := make([]Label, 0, r.Len()-1)
	for l := r.Successor(1); l != 1; l = r.Successor(l) {
		out = append(out, l)
	}
	return out
}

// LabelsAfterOneString concatenates LabelsAfterOne as decimal numbers.
func LabelsAfterOneString(r *Ring) string {
	var sb strings.Builder
	for _, l := range LabelsAfterOne(r) {
		sb.WriteString(strconv.Itoa(int(l)))
	}
	return sb.String()
}

// ProductAfterOne multiplies the two labels immediately clockwise of cup 1.
// For a million cups the product exceeds 32 bits, hence uint64.
func ProductAfterOne(r *Ring) uint64 {
	a := r.Successor(1)
	b := r.Successor(a)
	return uint64(a) * uint64(b)
}
