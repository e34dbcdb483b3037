package report_test

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/arthur-debert/unitool/pkg/errors"
	"github.com/arthur-debert/unitool/pkg/report"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// encode writes rep as a results document, the inverse of the parser
func encode(t *testing.T, rep *report.Report) []byte {
	t.Helper()

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="utf-8"`)
	root := doc.CreateElement("test-run")
	for i := range rep.Suites {
		encodeSuite(root, &rep.Suites[i])
	}

	data, err := doc.WriteToBytes()
	require.NoError(t, err)
	return data
}

func encodeSuite(parent *etree.Element, s *report.Suite) {
	el := parent.CreateElement(report.TagSuite)
	el.CreateAttr(report.AttrKind, s.Kind)
	el.CreateAttr(report.AttrName, s.Name)
	el.CreateAttr(report.AttrFailed, strconv.Itoa(s.Failed))
	el.CreateAttr(report.AttrPassed, strconv.Itoa(s.Passed))
	el.CreateAttr(report.AttrSkipped, strconv.Itoa(s.Skipped))
	el.CreateAttr(report.AttrTotal, strconv.Itoa(s.Total))
	encodeDetails(el, s.Details)
}

func encodeDetails(parent *etree.Element, details []report.Detail) {
	for _, d := range details {
		switch d := d.(type) {
		case *report.Suite:
			encodeSuite(parent, d)
		case *report.Case:
			el := parent.CreateElement(report.TagCase)
			el.CreateAttr(report.AttrName, d.Name)
			el.CreateAttr(report.AttrResult, d.Result.String())
			encodeDetails(el, d.Details)
		case report.Failure:
			encodeFailureInfo(parent.CreateElement(report.TagFailure), d.FailureInfo)
		case report.Reason:
			encodeFailureInfo(parent.CreateElement(report.TagReason), d.FailureInfo)
		case report.Output:
			parent.CreateElement(report.TagOutput).CreateCData(string(d))
		case report.Properties:
			parent.CreateElement(report.TagProperties)
		}
	}
}

func encodeFailureInfo(el *etree.Element, info report.FailureInfo) {
	for _, fd := range info.Details {
		switch fd := fd.(type) {
		case report.Message:
			el.CreateElement(report.TagMessage).CreateCData(string(fd))
		case report.StackTrace:
			el.CreateElement(report.TagStackTrace).CreateCData(string(fd))
		}
	}
}

func suiteOf(kind, name string, passed, failed, skipped int, details ...report.Detail) *report.Suite {
	if details == nil {
		details = []report.Detail{}
	}
	return &report.Suite{
		Kind:    kind,
		Name:    name,
		Passed:  passed,
		Failed:  failed,
		Skipped: skipped,
		Total:   passed + failed + skipped,
		Details: details,
	}
}

func caseOf(name string, result report.Result, details ...report.Detail) *report.Case {
	if details == nil {
		details = []report.Detail{}
	}
	return &report.Case{Name: name, Result: result, Details: details}
}

func failure(details ...report.FailureDetail) report.Failure {
	return report.Failure{FailureInfo: report.FailureInfo{Details: details}}
}

func TestParseRoundTrip(t *testing.T) {
	want := &report.Report{Suites: []report.Suite{
		*suiteOf("Assembly", "Core", 3, 1, 1,
			report.Properties{},
			suiteOf("TestFixture", "MathTests", 2, 1, 0,
				caseOf("Adds", report.Passed, report.Output("1 + 1\n")),
				caseOf("Divides", report.Failed,
					failure(report.Message("expected 1 got 2"), report.StackTrace("at Foo.Bar:12")),
					report.Output("dividing"),
				),
				failure(report.Message("child failed")),
				caseOf("Multiplies", report.Passed),
			),
			caseOf("Ignored", report.Skipped,
				report.Properties{},
				report.Reason{FailureInfo: report.FailureInfo{Details: []report.FailureDetail{report.Message("not ready")}}},
			),
			suiteOf("TestFixture", "Deep", 1, 0, 0,
				suiteOf("TestFixture", "Deeper", 1, 0, 0,
					caseOf("Leaf", report.Passed),
				),
			),
		),
		*suiteOf("Assembly", "Empty", 0, 0, 0),
	}}

	got, err := report.ParseBytes(encode(t, want))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseFixture(t *testing.T) {
	rep, err := report.ParseFile(filepath.Join("testdata", "editmode-results.xml"))
	require.NoError(t, err)

	require.Len(t, rep.Suites, 1)
	game := rep.Suites[0]
	assert.Equal(t, "TestSuite", game.Kind)
	assert.Equal(t, "Game", game.Name)
	assert.Equal(t, report.Totals{Passed: 3, Failed: 1, Skipped: 1, Total: 5}, rep.Totals())

	require.Len(t, game.Details, 3)
	assert.IsType(t, report.Properties{}, game.Details[0])
	assert.Equal(t, failure(report.Message("One or more child tests had errors")), game.Details[1])

	assembly, ok := game.Details[2].(*report.Suite)
	require.True(t, ok)
	assert.Equal(t, "Assembly", assembly.Kind)
	require.Len(t, assembly.Details, 3)

	inventory := assembly.Details[1].(*report.Suite)
	require.Len(t, inventory.Details, 3)

	stacks := inventory.Details[2].(*report.Case)
	assert.Equal(t, "StacksItems", stacks.Name)
	assert.Equal(t, report.Failed, stacks.Result)
	require.Len(t, stacks.Details, 2)
	assert.Equal(t, failure(
		report.Message("  Expected: 2\n  But was:  1\n"),
		report.StackTrace("at InventoryTests.StacksItems () [0x00001] in /project/Assets/Tests/InventoryTests.cs:42\n"),
	), stacks.Details[0])
	assert.Equal(t, report.Output("stacking 2 potions\n"), stacks.Details[1])

	saves := assembly.Details[2].(*report.Suite)
	legacy := saves.Details[1].(*report.Case)
	assert.Equal(t, report.Skipped, legacy.Result)
	require.Len(t, legacy.Details, 2)
	assert.IsType(t, report.Reason{}, legacy.Details[1])
}

func TestParsePreservesMixedOrder(t *testing.T) {
	doc := `<test-run>
  <test-suite type="TestFixture" name="S" failed="1" passed="1" skipped="0" total="2">
    <test-case name="a" result="Failed"/>
    <failure><message>m</message></failure>
    <output>o</output>
    <test-case name="b" result="Passed"/>
    <properties/>
  </test-suite>
</test-run>`

	rep, err := report.ParseBytes([]byte(doc))
	require.NoError(t, err)

	details := rep.Suites[0].Details
	require.Len(t, details, 5)
	assert.IsType(t, &report.Case{}, details[0])
	assert.IsType(t, report.Failure{}, details[1])
	assert.IsType(t, report.Output(""), details[2])
	assert.IsType(t, &report.Case{}, details[3])
	assert.IsType(t, report.Properties{}, details[4])
}

func TestParseFailureInfoAlias(t *testing.T) {
	doc := `<test-run><test-suite type="T" name="S" failed="0" passed="0" skipped="0" total="0">
<failure-info><stack-trace>at X</stack-trace><message>boom</message></failure-info>
</test-suite></test-run>`

	rep, err := report.ParseBytes([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []report.Detail{
		failure(report.StackTrace("at X"), report.Message("boom")),
	}, rep.Suites[0].Details)
}

func TestParseTextWhitespace(t *testing.T) {
	doc := `<test-run>
  <test-suite type="T" name="S" failed="1" passed="0" skipped="0" total="1">
    <test-case name="c" result="Failed">
      <failure>
        <message>
          boom
        </message>
        <stack-trace><![CDATA[  at X
]]></stack-trace>
      </failure>
      <output>
        plain output
      </output>
      <output><![CDATA[
kept
]]></output>
    </test-case>
  </test-suite>
</test-run>`

	rep, err := report.ParseBytes([]byte(doc))
	require.NoError(t, err)

	c := rep.Suites[0].Details[0].(*report.Case)
	assert.Equal(t, []report.Detail{
		failure(report.Message("boom"), report.StackTrace("  at X\n")),
		report.Output("plain output"),
		report.Output("\nkept\n"),
	}, c.Details)
}

func TestParseEmptyRun(t *testing.T) {
	rep, err := report.ParseBytes([]byte(`<test-run id="2"/>`))
	require.NoError(t, err)
	assert.Empty(t, rep.Suites)
	assert.Equal(t, report.Totals{}, rep.Totals())
}

func TestParseMalformed(t *testing.T) {
	suite := func(attrs, body string) string {
		return `<test-run><test-suite ` + attrs + `>` + body + `</test-suite></test-run>`
	}
	const okAttrs = `type="Assembly" name="Core" failed="0" passed="1" skipped="0" total="1"`

	tests := []struct {
		name     string
		doc      string
		wantPath string
		wantMsg  string
	}{
		{
			name: "not xml",
			doc:  "this is not xml",
		},
		{
			name: "unclosed element",
			doc:  `<test-run><test-suite>`,
		},
		{
			name:    "empty document",
			doc:     "",
			wantMsg: "no root element",
		},
		{
			name:     "unknown result",
			doc:      suite(okAttrs, `<test-case name="a" result="Weird"/>`),
			wantPath: "/test-run/test-suite[1]/test-case[1]",
			wantMsg:  `invalid result "Weird"`,
		},
		{
			name:     "result is case sensitive",
			doc:      suite(okAttrs, `<test-case name="a" result="passed"/>`),
			wantPath: "/test-run/test-suite[1]/test-case[1]",
			wantMsg:  `invalid result "passed"`,
		},
		{
			name:     "missing case name",
			doc:      suite(okAttrs, `<test-case result="Passed"/>`),
			wantPath: "/test-run/test-suite[1]/test-case[1]",
			wantMsg:  `missing attribute "name"`,
		},
		{
			name:     "missing suite counter",
			doc:      suite(`type="Assembly" name="Core" failed="0" passed="1" skipped="0"`, ""),
			wantPath: "/test-run/test-suite[1]",
			wantMsg:  `missing attribute "total"`,
		},
		{
			name:     "missing suite kind",
			doc:      suite(`name="Core" failed="0" passed="1" skipped="0" total="1"`, ""),
			wantPath: "/test-run/test-suite[1]",
			wantMsg:  `missing attribute "type"`,
		},
		{
			name:     "negative counter",
			doc:      suite(`type="Assembly" name="Core" failed="-1" passed="1" skipped="0" total="0"`, ""),
			wantPath: "/test-run/test-suite[1]",
			wantMsg:  `attribute "failed" is not a non-negative integer`,
		},
		{
			name:     "unknown child element",
			doc:      suite(okAttrs, `<test-case name="a" result="Passed"/><attachments/>`),
			wantPath: "/test-run/test-suite[1]/attachments[1]",
			wantMsg:  "unexpected element <attachments>",
		},
		{
			name:     "suite nested in case",
			doc:      suite(okAttrs, `<test-case name="a" result="Passed"><test-suite type="T" name="n" failed="0" passed="0" skipped="0" total="0"/></test-case>`),
			wantPath: "/test-run/test-suite[1]/test-case[1]/test-suite[1]",
			wantMsg:  "unexpected element <test-suite>",
		},
		{
			name:     "unknown failure fragment",
			doc:      suite(okAttrs, `<failure><message>m</message><hint>h</hint></failure>`),
			wantPath: "/test-run/test-suite[1]/failure[1]/hint[1]",
			wantMsg:  "unexpected element <hint>",
		},
		{
			name:     "non suite at root",
			doc:      `<test-run><command-line/></test-run>`,
			wantPath: "/test-run/command-line[1]",
			wantMsg:  "unexpected element <command-line>",
		},
		{
			name:     "total mismatch",
			doc:      suite(`type="Assembly" name="Core" failed="1" passed="1" skipped="0" total="3"`, ""),
			wantPath: "/test-run/test-suite[1]",
			wantMsg:  "total 3 does not match",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rep, err := report.ParseBytes([]byte(tt.doc))
			require.Error(t, err)
			assert.Nil(t, rep)
			assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedReport), "got %v", err)
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
			if tt.wantPath != "" {
				assert.Equal(t, tt.wantPath, errors.GetErrorDetails(err)["path"])
			}
		})
	}
}

func TestParseMalformedSecondSuiteFailsWholeParse(t *testing.T) {
	doc := `<test-run>
<test-suite type="Assembly" name="Good" failed="0" passed="0" skipped="0" total="0"/>
<test-suite type="Assembly" name="Bad" failed="0" passed="0" skipped="0"/>
</test-run>`

	rep, err := report.ParseBytes([]byte(doc))
	require.Error(t, err)
	assert.Nil(t, rep)
	assert.Equal(t, "/test-run/test-suite[2]", errors.GetErrorDetails(err)["path"])
}

func TestParseCountCheckDisabled(t *testing.T) {
	doc := `<test-run><test-suite type="Assembly" name="Core" failed="0" passed="1" skipped="0" total="2"/></test-run>`

	_, err := report.ParseBytes([]byte(doc))
	require.Error(t, err)

	rep, err := report.ParseBytes([]byte(doc), report.WithCountCheck(false))
	require.NoError(t, err)
	assert.Equal(t, 2, rep.Suites[0].Total)
}

func TestParseFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing.xml")
		_, err := report.ParseFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrIO))
		assert.Equal(t, path, errors.GetErrorDetails(err)["file"])
	})

	t.Run("malformed file keeps file detail", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.xml")
		require.NoError(t, os.WriteFile(path, []byte(`<test-run><oops/></test-run>`), 0644))

		_, err := report.ParseFile(path)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrMalformedReport))
		assert.Equal(t, path, errors.GetErrorDetails(err)["file"])
	})
}

func TestParseReader(t *testing.T) {
	rep, err := report.Parse(strings.NewReader(`<test-run><test-suite type="A" name="n" failed="0" passed="0" skipped="0" total="0"/></test-run>`))
	require.NoError(t, err)
	require.Len(t, rep.Suites, 1)
	assert.Equal(t, "n", rep.Suites[0].Name)
}

func TestParseResult(t *testing.T) {
	for _, r := range []report.Result{report.Passed, report.Failed, report.Skipped} {
		got, ok := report.ParseResult(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}

	_, ok := report.ParseResult("Inconclusive")
	assert.False(t, ok)
}
