// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package lineedit

import (
	"encoding/json"
	"testing"

	"github.com/gemstones-dev/gemstones/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const functionsBody = `{-}
    my_first_function() {
        my_first_sub_function() {

        }

        a = []
        b = ()
        c = {}

        my_other_first_sub_function() {

        }
    }

    my_second_function() {
        my_other_second_sub_function() {

        }
    }
    {-}
    `

const overClosed = `{
        my_first_function() {
            }
            }
            }
        }
    }

    my_second_function() {
        my_other_second_sub_function() {

        }
    }
    `

func TestScanLinesFunctionsBody(t *testing.T) {
	lines := SplitLines(functionsBody)
	require.Len(t, lines, 22)

	tests := []struct {
		name      string
		startFrom int
		want      ScanResult
	}{
		{"same line marker", 1, ScanResult{TagSpan{1, 1}, ScanBalanced}},
		{"first function", 2, ScanResult{TagSpan{2, 14}, ScanBalanced}},
		{"nested function", 3, ScanResult{TagSpan{3, 5}, ScanBalanced}},
		{"skips lines without tags", 7, ScanResult{TagSpan{9, 9}, ScanBalanced}},
		{"second function", 16, ScanResult{TagSpan{16, 20}, ScanBalanced}},
		{"trailing marker", 21, ScanResult{TagSpan{21, 21}, ScanBalanced}},
		{"end tag first", 5, ScanResult{Status: ScanMalformed}},
		{"whitespace only", 22, ScanResult{Status: ScanNoStartTag}},
		{"zero means first line", 0, ScanResult{TagSpan{1, 1}, ScanBalanced}},
		{"past end of file", 40, ScanResult{Status: ScanNoStartTag}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanLines(lines, '{', '}', tt.startFrom))
		})
	}
}

func TestScanLinesOverClosed(t *testing.T) {
	got := ScanLines(SplitLines(overClosed), '{', '}', 1)
	assert.Equal(t, ScanResult{TagSpan{1, 4}, ScanBalanced}, got)
}

func TestScanLinesEdges(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		start rune
		end   rune
		want  ScanResult
	}{
		{"nested across lines", []string{"{\n", "a{b}c\n", "}\n"}, '{', '}', ScanResult{TagSpan{1, 3}, ScanBalanced}},
		{"pair on one line", []string{"x\n", "f() { return }\n"}, '{', '}', ScanResult{TagSpan{2, 2}, ScanBalanced}},
		{"balance mid line wins", []string{"{\n", "} {\n", "}\n"}, '{', '}', ScanResult{TagSpan{1, 2}, ScanBalanced}},
		{"never closes", []string{"{\n", "{\n", "}\n"}, '{', '}', ScanResult{Status: ScanUnbalanced}},
		{"malformed even if balanced later", []string{"}\n", "{\n", "}\n"}, '{', '}', ScanResult{Status: ScanMalformed}},
		{"no tags", []string{"a\n", "b\n"}, '{', '}', ScanResult{Status: ScanNoStartTag}},
		{"empty file", nil, '{', '}', ScanResult{Status: ScanNoStartTag}},
		{"angle brackets", []string{"<a\n", "b>\n"}, '<', '>', ScanResult{TagSpan{1, 2}, ScanBalanced}},
		{"multibyte tags", []string{"« début\n", "fin »\n"}, '«', '»', ScanResult{TagSpan{1, 2}, ScanBalanced}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScanLines(tt.lines, tt.start, tt.end, 1))
		})
	}
}

func TestFindEnclosingTags(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "f.txt", functionsBody)

	span, ok, err := FindEnclosingTags(path, '{', '}', 16)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, TagSpan{Start: 16, End: 20}, span)

	span, ok, err = FindEnclosingTags(path, '{', '}', 5)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, TagSpan{}, span)

	_, ok, err = FindEnclosingTags(path, '(', ')', 1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestScanTagsReportsReason(t *testing.T) {
	path := testutil.WriteLines(t, t.TempDir(), "f.txt", "{", "{", "}")

	result, err := ScanTags(path, '{', '}', 1)
	require.NoError(t, err)
	assert.False(t, result.OK())
	assert.Equal(t, ScanUnbalanced, result.Status)

	_, err = ScanTags(path+".missing", '{', '}', 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestScanResultJSON(t *testing.T) {
	data, err := json.Marshal(ScanResult{Span: TagSpan{Start: 2, End: 14}, Status: ScanBalanced})
	require.NoError(t, err)
	assert.JSONEq(t, `{"span":{"start":2,"end":14},"status":"balanced"}`, string(data))

	assert.Equal(t, "no_start_tag", ScanNoStartTag.String())
	assert.Equal(t, "malformed", ScanMalformed.String())
	assert.Equal(t, "unknown", ScanStatus(42).String())

	var back ScanResult
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, ScanResult{Span: TagSpan{Start: 2, End: 14}, Status: ScanBalanced}, back)

	var status ScanStatus
	assert.Error(t, status.UnmarshalText([]byte("tilted")))
}
