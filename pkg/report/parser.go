package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/logging"
	"github.com/beevik/etree"
)

// Element and attribute names of the results document
const (
	TagSuite       = "test-suite"
	TagCase        = "test-case"
	TagFailure     = "failure"
	TagFailureInfo = "failure-info"
	TagOutput      = "output"
	TagProperties  = "properties"
	TagReason      = "reason"
	TagMessage     = "message"
	TagStackTrace  = "stack-trace"

	AttrKind    = "type"
	AttrName    = "name"
	AttrFailed  = "failed"
	AttrPassed  = "passed"
	AttrSkipped = "skipped"
	AttrTotal   = "total"
	AttrResult  = "result"
)

type options struct {
	checkCounts bool
}

// Option configures a parse call
type Option func(*options)

// WithCountCheck enables or disables the check that a suite's total
// equals passed+failed+skipped. The check is enabled by default.
func WithCountCheck(enabled bool) Option {
	return func(o *options) {
		o.checkCounts = enabled
	}
}

func newOptions(opts []Option) options {
	o := options{checkCounts: true}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ParseFile reads and parses the results document at path
func ParseFile(path string, opts ...Option) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrIO, "failed to read report %s", path).
			WithDetail("file", path)
	}

	rep, err := ParseBytes(data, opts...)
	if err != nil {
		if e, ok := err.(*errors.UnitoolError); ok {
			e.WithDetail("file", path)
		}
		return nil, err
	}
	return rep, nil
}

// Parse reads the whole of r and parses it as a results document
func Parse(r io.Reader, opts ...Option) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrIO, "failed to read report")
	}
	return ParseBytes(data, opts...)
}

// ParseBytes parses a results document held in memory. Either a complete
// report is returned or an error; partial trees are never returned.
func ParseBytes(data []byte, opts ...Option) (*Report, error) {
	logger := logging.GetLogger("report.parser")
	p := &parser{opts: newOptions(opts)}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrMalformedReport, "report is not well-formed XML")
	}

	roots := doc.ChildElements()
	switch len(roots) {
	case 0:
		return nil, errors.New(errors.ErrMalformedReport, "report has no root element")
	case 1:
	default:
		return nil, errors.Newf(errors.ErrMalformedReport, "report has %d root elements, expected 1", len(roots))
	}

	root := roots[0]
	rep, err := p.report(root)
	if err != nil {
		return nil, err
	}

	totals := rep.Totals()
	logger.Debug().
		Str("root", root.Tag).
		Int("suites", len(rep.Suites)).
		Int("passed", totals.Passed).
		Int("failed", totals.Failed).
		Int("skipped", totals.Skipped).
		Msg("Report parsed")
	return rep, nil
}

type parser struct {
	opts options
}

// siblings numbers child elements per tag so paths read like XPath steps
type siblings map[string]int

func (s siblings) step(parent string, el *etree.Element) string {
	s[el.Tag]++
	return fmt.Sprintf("%s/%s[%d]", parent, el.Tag, s[el.Tag])
}

func (p *parser) report(root *etree.Element) (*Report, error) {
	path := "/" + root.Tag
	rep := &Report{Suites: []Suite{}}
	idx := siblings{}
	for _, child := range root.ChildElements() {
		childPath := idx.step(path, child)
		if child.Tag != TagSuite {
			return nil, unknownElement(childPath, child.Tag)
		}
		suite, err := p.suite(child, childPath)
		if err != nil {
			return nil, err
		}
		rep.Suites = append(rep.Suites, *suite)
	}
	return rep, nil
}

func (p *parser) suite(el *etree.Element, path string) (*Suite, error) {
	s := &Suite{}
	var err error
	if s.Kind, err = requireAttr(el, path, AttrKind); err != nil {
		return nil, err
	}
	if s.Name, err = requireAttr(el, path, AttrName); err != nil {
		return nil, err
	}
	if s.Failed, err = countAttr(el, path, AttrFailed); err != nil {
		return nil, err
	}
	if s.Passed, err = countAttr(el, path, AttrPassed); err != nil {
		return nil, err
	}
	if s.Skipped, err = countAttr(el, path, AttrSkipped); err != nil {
		return nil, err
	}
	if s.Total, err = countAttr(el, path, AttrTotal); err != nil {
		return nil, err
	}

	if p.opts.checkCounts && s.Passed+s.Failed+s.Skipped != s.Total {
		return nil, errors.Newf(errors.ErrMalformedReport,
			"%s: total %d does not match passed %d + failed %d + skipped %d",
			path, s.Total, s.Passed, s.Failed, s.Skipped).
			WithDetail("path", path)
	}

	if s.Details, err = p.details(el, path, true); err != nil {
		return nil, err
	}
	return s, nil
}

func (p *parser) testCase(el *etree.Element, path string) (*Case, error) {
	c := &Case{}
	var err error
	if c.Name, err = requireAttr(el, path, AttrName); err != nil {
		return nil, err
	}

	raw, err := requireAttr(el, path, AttrResult)
	if err != nil {
		return nil, err
	}
	result, ok := ParseResult(raw)
	if !ok {
		return nil, errors.Newf(errors.ErrMalformedReport, "%s: invalid result %q", path, raw).
			WithDetail("path", path).
			WithDetail("value", raw)
	}
	c.Result = result

	if c.Details, err = p.details(el, path, false); err != nil {
		return nil, err
	}
	return c, nil
}

// details dispatches each child element to its Detail variant, keeping
// document order across variants
func (p *parser) details(el *etree.Element, path string, allowSuites bool) ([]Detail, error) {
	children := el.ChildElements()
	details := make([]Detail, 0, len(children))
	idx := siblings{}
	for _, child := range children {
		childPath := idx.step(path, child)

		var (
			detail Detail
			err    error
		)
		switch child.Tag {
		case TagSuite:
			if !allowSuites {
				return nil, unknownElement(childPath, child.Tag)
			}
			detail, err = p.suite(child, childPath)
		case TagCase:
			detail, err = p.testCase(child, childPath)
		case TagFailure, TagFailureInfo:
			var info FailureInfo
			info, err = failureInfo(child, childPath)
			detail = Failure{FailureInfo: info}
		case TagReason:
			var info FailureInfo
			info, err = failureInfo(child, childPath)
			detail = Reason{FailureInfo: info}
		case TagOutput:
			detail = Output(text(child))
		case TagProperties:
			detail = Properties{}
		default:
			return nil, unknownElement(childPath, child.Tag)
		}
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

func failureInfo(el *etree.Element, path string) (FailureInfo, error) {
	children := el.ChildElements()
	info := FailureInfo{Details: make([]FailureDetail, 0, len(children))}
	idx := siblings{}
	for _, child := range children {
		childPath := idx.step(path, child)
		switch child.Tag {
		case TagMessage:
			info.Details = append(info.Details, Message(text(child)))
		case TagStackTrace:
			info.Details = append(info.Details, StackTrace(text(child)))
		default:
			return FailureInfo{}, unknownElement(childPath, child.Tag)
		}
	}
	return info, nil
}

// text joins the character data of el. CDATA sections are kept verbatim;
// plain text has its surrounding whitespace trimmed, so indentation of the
// document does not leak into messages.
func text(el *etree.Element) string {
	var sb strings.Builder
	for _, tok := range el.Child {
		cd, ok := tok.(*etree.CharData)
		if !ok {
			continue
		}
		if cd.IsCData() {
			sb.WriteString(cd.Data)
		} else {
			sb.WriteString(strings.TrimSpace(cd.Data))
		}
	}
	return sb.String()
}

func requireAttr(el *etree.Element, path, key string) (string, error) {
	attr := el.SelectAttr(key)
	if attr == nil {
		return "", errors.Newf(errors.ErrMalformedReport, "%s: missing attribute %q", path, key).
			WithDetail("path", path).
			WithDetail("attribute", key)
	}
	return attr.Value, nil
}

func countAttr(el *etree.Element, path, key string) (int, error) {
	raw, err := requireAttr(el, path, key)
	if err != nil {
		return 0, err
	}
	n, convErr := strconv.ParseUint(raw, 10, 31)
	if convErr != nil {
		return 0, errors.Wrapf(convErr, errors.ErrMalformedReport,
			"%s: attribute %q is not a non-negative integer: %q", path, key, raw).
			WithDetail("path", path).
			WithDetail("attribute", key)
	}
	return int(n), nil
}

func unknownElement(path, tag string) error {
	return errors.Newf(errors.ErrMalformedReport, "%s: unexpected element <%s>", path, tag).
		WithDetail("path", path).
		WithDetail("element", tag)
}
