// Code generator for the fixedarray Backing constraint.
// Emits the union ~[1]T | ~[2]T | ... | ~[max]T.

package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
)

// maxUnionTerms is the go/types limit on terms in one union.
const maxUnionTerms = 100

var errTooManyTerms = fmt.Errorf("-max exceeds the %d-term union limit", maxUnionTerms)

var (
	maxSize = flag.Int("max", maxUnionTerms, "largest array length accepted by Backing")
	perLine = flag.Int("per-line", 8, "union terms per source line")
	output  = flag.String("o", "backing_gen.go", "output file")
	pkg     = flag.String("pkg", "fixedarray", "package name")
)

func main() {
	flag.Parse()

	src, err := Generate(*pkg, *maxSize, *perLine)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*output, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Generate renders the gofmt'ed source of the Backing constraint.
func Generate(pkg string, maxSize, perLine int) ([]byte, error) {
	switch {
	case maxSize < 1:
		return nil, errors.New("-max must be at least 1")
	case maxSize > maxUnionTerms:
		return nil, fmt.Errorf("%w: got %d", errTooManyTerms, maxSize)
	case perLine < 1:
		return nil, errors.New("-per-line must be at least 1")
	}

	var b bytes.Buffer

	fmt.Fprintln(&b, "// Code generated by backinggen; DO NOT EDIT.")
	fmt.Fprintln(&b)
	fmt.Fprintf(&b, "package %s\n\n", pkg)
	fmt.Fprintln(&b, "// MaxSize is the largest N accepted by Backing.")
	fmt.Fprintf(&b, "const MaxSize = %d\n\n", maxSize)
	fmt.Fprintln(&b, "// Backing is the set of Go array types [N]T with 1 <= N <= MaxSize.")
	fmt.Fprintln(&b, "// [0]T is not a member; the zero-length container is Empty.")
	fmt.Fprintln(&b, "type Backing[T any] interface {")

	for n := 1; n <= maxSize; n++ {
		if (n-1)%perLine == 0 {
			if n == 1 {
				b.WriteString("\t")
			} else {
				b.WriteString("\n\t\t")
			}
		} else {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "~[%d]T", n)
		if n < maxSize {
			b.WriteString(" |")
		}
	}
	fmt.Fprintln(&b)
	fmt.Fprintln(&b, "}")

	return format.Source(b.Bytes())
}
