package words

import (
	"strconv"
	"strings"
)

const (
	// MinBucketLength is the word length selected by bucket 0.
	MinBucketLength = 2
	// BucketCount is the number of toggleable length buckets (lengths 2..8).
	BucketCount = 7
)

// LengthFilter holds one enabled flag per length bucket.
// Bucket i selects words of length MinBucketLength+i.
type LengthFilter [BucketCount]bool

// DefaultFilter enables only the shortest bucket.
func DefaultFilter() LengthFilter {
	var f LengthFilter
	f[0] = true
	return f
}

// Toggle flips bucket i. Out-of-range indexes are ignored.
func (f *LengthFilter) Toggle(i int) {
	if i < 0 || i >= BucketCount {
		return
	}
	f[i] = !f[i]
}

// Enabled reports whether bucket i is on.
func (f LengthFilter) Enabled(i int) bool {
	return i >= 0 && i < BucketCount && f[i]
}

// Lengths returns the word lengths of the enabled buckets, ascending.
func (f LengthFilter) Lengths() []int {
	var out []int
	for i, on := range f {
		if on {
			out = append(out, BucketLength(i))
		}
	}
	return out
}

// BucketLength returns the word length selected by bucket i.
func BucketLength(i int) int {
	return MinBucketLength + i
}

// BucketForLength returns the bucket index for a word length, or -1.
func BucketForLength(length int) int {
	i := length - MinBucketLength
	if i < 0 || i >= BucketCount {
		return -1
	}
	return i
}

// String renders the enabled lengths, e.g. "2,5,8".
func (f LengthFilter) String() string {
	lengths := f.Lengths()
	parts := make([]string, len(lengths))
	for i, l := range lengths {
		parts[i] = strconv.Itoa(l)
	}
	return strings.Join(parts, ",")
}
