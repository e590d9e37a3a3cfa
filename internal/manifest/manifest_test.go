package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tcs := map[string]struct {
		line string
		want Entry
	}{
		"comment":                {"!foo", Entry{Kind: Comment, Line: 1, Text: "!foo"}},
		"comment with separator": {"!a||b||c||d", Entry{Kind: Comment, Line: 1, Text: "!a||b||c||d"}},
		"blank":                  {"  \t", Entry{Kind: Blank, Line: 1, Text: "  \t"}},
		"bare path":              {"  /data/ref.fa \r\n", Entry{Kind: BarePath, Line: 1, Text: "  /data/ref.fa ", Path: "/data/ref.fa"}},
		"record": {
			"Bpseudomallei_K96243 || Burkholderia || pseudomallei_K96243 || /data/K96243.fna\n",
			Entry{
				Kind: Record, Line: 1,
				Text:          "Bpseudomallei_K96243 || Burkholderia || pseudomallei_K96243 || /data/K96243.fna",
				CommonName:    "Bpseudomallei_K96243",
				Genus:         "Burkholderia",
				SpeciesStrain: "pseudomallei_K96243",
				Path:          "/data/K96243.fna",
			},
		},
		"three fields": {"a||b||/x.fa", Entry{Kind: Malformed, Line: 1, Text: "a||b||/x.fa"}},
		"five fields":  {"a||b||c||d||e", Entry{Kind: Malformed, Line: 1, Text: "a||b||c||d||e"}},
		"empty field":  {"a|| ||c||/x.fa", Entry{Kind: Malformed, Line: 1, Text: "a|| ||c||/x.fa"}},
		"single pipe":  {"a|b", Entry{Kind: BarePath, Line: 1, Text: "a|b", Path: "a|b"}},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(1, tc.line))
		})
	}
}

func TestParseLineNumbers(t *testing.T) {
	in := "!foo\n\n/data/a.fa\nx||g||s||/data/b.fa"
	entries, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, entries, 4)
	for i, e := range entries {
		assert.Equal(t, i+1, e.Line)
	}
	assert.True(t, entries[0].Skipped())
	assert.True(t, entries[1].Skipped())
	assert.Equal(t, BarePath, entries[2].Kind)
	assert.Equal(t, Record, entries[3].Kind)
	assert.Equal(t, "/data/b.fa", entries[3].Path)
}

func TestScanStopsOnEmitError(t *testing.T) {
	boom := errors.New("stop")
	calls := 0
	err := Scan(strings.NewReader("a\nb\nc\n"), func(Entry) error {
		calls++
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "record", Record.String())
	assert.Equal(t, "malformed", Malformed.String())
}
