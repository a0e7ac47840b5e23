package main

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/fixedarray"
)

// report is the yaml view of a sequence.
type report struct {
	Stage    string `yaml:"stage"`
	Size     int    `yaml:"size"`
	Empty    bool   `yaml:"empty"`
	Front    *int   `yaml:"front,omitempty"`
	Back     *int   `yaml:"back,omitempty"`
	Elements []int  `yaml:"elements"`
}

func newReport(stage string, s fixedarray.Sequence[int]) report {
	elems := fixedarray.Collect(s)
	r := report{
		Stage:    stage,
		Size:     s.Size(),
		Empty:    s.IsEmpty(),
		Elements: elems,
	}
	if len(elems) > 0 {
		r.Front = &elems[0]
		r.Back = &elems[len(elems)-1]
	}
	return r
}

// printer renders sequences in one output format.
type printer struct {
	w      io.Writer
	format string
	enc    *yaml.Encoder
}

func newPrinter(w io.Writer, format string) *printer {
	p := &printer{w: w, format: format}
	if format == formatYAML {
		p.enc = yaml.NewEncoder(w)
		p.enc.SetIndent(2)
	}
	return p
}

// Summary writes the emptiness/size/front/back header. It is part of the
// text format only; yaml reports carry the same fields.
func (p *printer) Summary(s fixedarray.Sequence[int]) error {
	if p.format != formatText {
		return nil
	}
	r := newReport("", s)
	if _, err := fmt.Fprintf(p.w, "Empty: %t\nSize: %d\n", r.Empty, r.Size); err != nil {
		return err
	}
	if r.Front == nil {
		_, err := fmt.Fprintln(p.w)
		return err
	}
	_, err := fmt.Fprintf(p.w, "Front: %d\nBack: %d\n\n", *r.Front, *r.Back)
	return err
}

// Print writes the elements of s.
func (p *printer) Print(stage string, s fixedarray.Sequence[int]) error {
	if p.format == formatYAML {
		return p.enc.Encode(newReport(stage, s))
	}

	if _, err := io.WriteString(p.w, "{\n"); err != nil {
		return err
	}
	for v := range s.Values() {
		if _, err := fmt.Fprintf(p.w, "  %d\n", v); err != nil {
			return err
		}
	}
	_, err := io.WriteString(p.w, "}\n")
	return err
}

// Close flushes buffered yaml output.
func (p *printer) Close() error {
	if p.enc != nil {
		return p.enc.Close()
	}
	return nil
}
