// Package report models the hierarchical test-run results file written by
// the Unity test runner and parses it into an immutable tree.
//
// The root Report owns a sequence of suites. Suites own an ordered sequence
// of Detail values, which is a closed set of variants:
//
//	*Suite, *Case, Failure, Output, Properties, Reason
//
// Cases own the same kind of sequence minus nested suites. The order of
// details is the order of the elements in the source document.
package report

import "fmt"

// Result is the terminal outcome of a single test case
type Result int

const (
	Passed Result = iota
	Failed
	Skipped
)

// String returns the attribute value used for the result in the document
func (r Result) String() string {
	switch r {
	case Passed:
		return "Passed"
	case Failed:
		return "Failed"
	case Skipped:
		return "Skipped"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ParseResult converts a result attribute value. Matching is case-sensitive.
func ParseResult(s string) (Result, bool) {
	switch s {
	case "Passed":
		return Passed, true
	case "Failed":
		return Failed, true
	case "Skipped":
		return Skipped, true
	default:
		return 0, false
	}
}

// Report is the root of a parsed results document
type Report struct {
	Suites []Suite
}

// Totals holds counters summed over the top-level suites of a report
type Totals struct {
	Passed  int
	Failed  int
	Skipped int
	Total   int
}

// Totals sums the document-supplied counters of the top-level suites
func (r *Report) Totals() Totals {
	var t Totals
	for _, s := range r.Suites {
		t.Passed += s.Passed
		t.Failed += s.Failed
		t.Skipped += s.Skipped
		t.Total += s.Total
	}
	return t
}

// Suite is a named group of cases and nested suites with aggregate counters.
// The counters come from the document and are not recomputed from children.
type Suite struct {
	// Kind is the opaque category label, e.g. "Assembly" or "TestFixture"
	Kind    string
	Name    string
	Failed  int
	Passed  int
	Skipped int
	Total   int
	Details []Detail
}

// Case is a single named test execution
type Case struct {
	Name    string
	Result  Result
	Details []Detail
}

// FailureInfo is an ordered sequence of explanation fragments
type FailureInfo struct {
	Details []FailureDetail
}

// Detail is any child node attached to a suite or a case.
// The set of implementations is closed; see the package documentation.
//
//sumtype:decl
type Detail interface {
	isDetail()
}

// Failure carries the failure explanation of a case or suite
type Failure struct {
	FailureInfo
}

// Reason carries the explanation for a skipped or inconclusive case
type Reason struct {
	FailureInfo
}

// Output is console text captured while the test ran
type Output string

// Properties marks the presence of a properties element. It has no payload.
type Properties struct{}

func (*Suite) isDetail()     {}
func (*Case) isDetail()      {}
func (Failure) isDetail()    {}
func (Reason) isDetail()     {}
func (Output) isDetail()     {}
func (Properties) isDetail() {}

// FailureDetail is one fragment of a FailureInfo: a Message or a StackTrace
//
//sumtype:decl
type FailureDetail interface {
	isFailureDetail()
}

// Message is a human readable failure message
type Message string

// StackTrace is the stack trace recorded for a failure
type StackTrace string

func (Message) isFailureDetail()    {}
func (StackTrace) isFailureDetail() {}
