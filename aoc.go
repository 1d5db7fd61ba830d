// Package aoc is a small harness for running Advent of Code solutions.
//
// A solver is a struct embedding *Puzzle with methods named D{day}p{part}
// returning any. Run finds those methods, checks each against the sample
// answer in its doc comment, then runs it on the real input.
package aoc

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"log"
	"reflect"
	"regexp"
	"slices"
	"strings"
	"sync"
	"time"

	"golang.org/x/exp/maps"
)

type sample struct {
	input string
	want  string
}

var sampleRx = regexp.MustCompile(`(?sm)^\s*want=([^\n]*)(?:\s+(.+\n))?\s*`)

// parseSample parses a comment of the form
//
//	/*
//	want=42
//
//	sample input
//	*/
//
// The input may be omitted, in which case the previous sample's input is
// reused.
func parseSample(comment string) (sample, bool) {
	text := strings.TrimPrefix(comment, "//")
	if v, ok := strings.CutPrefix(text, "/*"); ok {
		text = strings.TrimSuffix(v, "*/")
	}
	m := sampleRx.FindStringSubmatch(text)
	if m == nil {
		return sample{}, false
	}
	return sample{want: m[1], input: m[2]}, true
}

// docSample returns the first sample in fd's doc comment.
func docSample(fd *ast.FuncDecl) (sample, bool) {
	if fd.Doc == nil {
		return sample{}, false
	}
	for _, c := range fd.Doc.List {
		if s, ok := parseSample(c.Text); ok {
			return s, true
		}
	}
	return sample{}, false
}

// extractSamples maps each function in src to its sample. A sample without
// input inherits the input of the sample before it in source order.
func extractSamples(src []byte) map[string]sample {
	f, err := parser.ParseFile(token.NewFileSet(), "solver.go", src, parser.ParseComments)
	if err != nil {
		log.Fatalf("extracting samples: %v", err)
	}
	samples := make(map[string]sample)
	var prev sample
	for _, d := range f.Decls {
		fd, ok := d.(*ast.FuncDecl)
		if !ok {
			continue
		}
		s, ok := docSample(fd)
		if !ok {
			continue
		}
		s.input = Or(s.input, prev.input)
		samples[fd.Name.Name] = s
		prev = s
	}
	return samples
}

// Puzzle is the state of the day and part being solved. Solvers embed it to
// get at the input.
type Puzzle struct {
	year       int
	day        int
	SampleMode bool

	solver  partSolver
	samples map[string]sample
	input   []byte // real input, loaded once per day
}

// Input returns the sample input in sample mode and the real input
// otherwise.
func (p *Puzzle) Input() []byte {
	if p.SampleMode {
		return []byte(p.Sample().input)
	}
	if p.input == nil {
		in, err := loadInput(p.year, p.day)
		if err != nil {
			log.Fatalf("day %d input: %v", p.day, err)
		}
		p.input = in
		p.Debugf("input: %s", describeInput(p.input))
	}
	return p.input
}

func (p *Puzzle) Scanner() *bufio.Scanner {
	return bufio.NewScanner(bytes.NewReader(p.Input()))
}

// Lines returns the lines of the input without their newlines.
func (p *Puzzle) Lines() []string {
	var lines []string
	p.ForLines(func(line string) {
		lines = append(lines, line)
	})
	return lines
}

// ForLinesY calls onLine for each line of input.
// The y value is the row number, starting with 0.
func (p *Puzzle) ForLinesY(onLine func(y int, line string)) {
	s := p.Scanner()
	y := -1
	for s.Scan() {
		y++
		onLine(y, s.Text())
	}
	if err := s.Err(); err != nil {
		log.Fatal(err)
	}
}

// ForLines calls onLine for each line of input.
func (p *Puzzle) ForLines(onLine func(line string)) {
	p.ForLinesY(func(_ int, line string) { onLine(line) })
}

// Debugf prints when running with -debug.
func (p *Puzzle) Debugf(format string, args ...any) {
	if opts.debug {
		fmt.Printf(format+"\n", args...)
	}
}

// Sample returns the sample declared on the running part's method.
func (p *Puzzle) Sample() sample {
	s, ok := p.samples[p.solver.Name]
	if !ok {
		log.Fatalf("no sample found for %v", p.solver.Name)
	}
	return s
}

type partSolver struct {
	fn   func() any
	Part string
	Name string
}

var methodRx = regexp.MustCompile(`^D(\d+)p(\d+.*)$`)

// extractMethods finds the methods of x named D{day}p{part}, grouped by day
// with parts sorted.
func extractMethods(x any) map[int][]partSolver {
	v := reflect.ValueOf(x).Elem()
	if v.Kind() != reflect.Struct {
		log.Fatalf("Run: got %T; want pointer to struct", x)
	}
	vt := v.Type()
	byDays := map[int][]partSolver{}
	for i := 0; i < vt.NumMethod(); i++ {
		mn := vt.Method(i).Name
		m := methodRx.FindStringSubmatch(mn)
		if m == nil {
			continue
		}
		fn, ok := v.Method(i).Interface().(func() any)
		if !ok {
			log.Fatalf("%s: got %v; want func() any", mn, v.Method(i).Type())
		}
		d := Int(m[1])
		byDays[d] = append(byDays[d], partSolver{
			fn:   fn,
			Part: m[2],
			Name: mn,
		})
	}
	for _, parts := range byDays {
		slices.SortFunc(parts, func(a, b partSolver) int {
			return strings.Compare(a.Part, b.Part)
		})
	}
	return byDays
}

// opts holds the command-line flags shared by every solver binary.
var opts struct {
	day        int
	part       string
	debug      bool
	sampleOnly bool
	skipSample bool
	input      string
}

func init() {
	flag.IntVar(&opts.day, "day", -1, "run only this day")
	flag.StringVar(&opts.part, "part", "", "run only this part")
	flag.BoolVar(&opts.debug, "debug", false, "print Debugf output")
	flag.BoolVar(&opts.sampleOnly, "sample", false, "run samples only")
	flag.BoolVar(&opts.skipSample, "skip-sample", false, "run real input only")
	flag.StringVar(&opts.input, "input", "", "read the real input from this file, or standard input if -")
}

var initFlags = sync.OnceFunc(flag.Parse)

// runDay runs every part of one day, stopping at the first failed sample.
func runDay(p *Puzzle, day int, parts []partSolver) {
	p.day = day
	p.input = nil
	fmt.Println("Running day", day)
	for _, ps := range parts {
		if opts.part != "" && ps.Part != opts.part {
			continue
		}
		p.solver = ps
		for _, sm := range []bool{true, false} {
			if (!sm && opts.sampleOnly) || (sm && opts.skipSample) {
				continue
			}
			p.SampleMode = sm
			if !sm {
				// Prime the input so fetching isn't timed.
				p.Input()
			}
			t0 := time.Now()
			got := ps.fn()
			took := time.Since(t0).Round(time.Microsecond)
			if !sm {
				fmt.Printf("part %s: %v (took %v)\n", ps.Part, got, took)
				continue
			}
			if want := p.Sample().want; fmt.Sprint(got) != want {
				fmt.Printf("part %s: %v ❌; want %v\n", ps.Part, got, want)
				return
			}
			fmt.Printf("part %s sample: %v ✅ (%v)\n", ps.Part, got, took)
		}
	}
}

// Run runs the solver slvr, a pointer to a struct embedding *Puzzle, for
// the given year. src is the solver's source, which holds the samples.
func Run(year int, src []byte, slvr any) {
	initFlags()
	p := &Puzzle{
		year:    year,
		samples: extractSamples(src),
	}
	sv := reflect.ValueOf(slvr).Elem().FieldByName("Puzzle")
	if !sv.IsValid() {
		log.Fatalf("Run: %T does not embed *aoc.Puzzle", slvr)
	}
	sv.Set(reflect.ValueOf(p))
	days := extractMethods(slvr)

	if opts.day != -1 {
		parts, ok := days[opts.day]
		if !ok {
			log.Fatalf("no day %d", opts.day)
		}
		runDay(p, opts.day, parts)
		return
	}

	dayNums := maps.Keys(days)
	slices.Sort(dayNums)
	for _, d := range dayNums {
		runDay(p, d, days[d])
		fmt.Println()
	}
}

// MustGet returns v as is. It panics if err is non-nil.
func MustGet[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// Or returns the first non-zero value in list.
func Or[T any](list ...T) T {
	for _, v := range list {
		if !reflect.ValueOf(&v).Elem().IsZero() {
			return v
		}
	}
	var zero T
	return zero
}
