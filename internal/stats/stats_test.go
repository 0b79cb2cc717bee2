// internal/stats/stats_test.go
package stats

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const annoA = "# build test\n" +
	"chr1\tHAVANA\tgene\t1\t100\t.\t+\t.\tgene_id \"G1\";\n" +
	"chr1\tHAVANA\texon\t1\t50\t.\t+\t.\tgene_id \"G1\";\n" +
	"chr2\tHAVANA\texon\t10\t20\t.\t-\t.\tgene_id \"G2\";\n"

const annoB = "chrX\tENSEMBL\tCDS\t5\t25\t.\t+\t0\n"

func writeGTF(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestCollect(t *testing.T) {
	p := writeGTF(t, "a.gtf", annoA)
	s, err := Collect(context.Background(), p, "feature", nil)
	require.NoError(t, err)

	assert.Equal(t, p, s.File)
	assert.Equal(t, 3, s.Records)
	assert.Equal(t, 2, s.Seqnames)
	assert.Equal(t, map[string]int{"gene": 1, "exon": 2}, s.Tallies)
}

func TestCollectDimensions(t *testing.T) {
	p := writeGTF(t, "a.gtf", annoA)

	cases := []struct {
		by   string
		want map[string]int
	}{
		{"feature", map[string]int{"gene": 1, "exon": 2}},
		{"source", map[string]int{"HAVANA": 3}},
		{"seqname", map[string]int{"chr1": 2, "chr2": 1}},
		{"strand", map[string]int{"+": 2, "-": 1}},
	}
	for _, tc := range cases {
		t.Run(tc.by, func(t *testing.T) {
			s, err := Collect(context.Background(), p, tc.by, nil)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Tallies)
		})
	}
}

func TestCollectEmptyFile(t *testing.T) {
	p := writeGTF(t, "empty.gtf", "# nothing\n")
	s, err := Collect(context.Background(), p, "feature", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Records)
	assert.Empty(t, s.Tallies)
}

func TestCollectAllKeepsInputOrder(t *testing.T) {
	a := writeGTF(t, "a.gtf", annoA)
	b := writeGTF(t, "b.gtf", annoB)

	sums, err := CollectAll(context.Background(), []string{a, b}, "feature", nil, 4)
	require.NoError(t, err)
	require.Len(t, sums, 2)
	assert.Equal(t, a, sums[0].File)
	assert.Equal(t, b, sums[1].File)
	assert.Equal(t, 3, sums[0].Records)
	assert.Equal(t, 1, sums[1].Records)
}

func TestCollectAllSerialMatchesParallel(t *testing.T) {
	paths := []string{
		writeGTF(t, "a.gtf", annoA),
		writeGTF(t, "b.gtf", annoB),
		writeGTF(t, "c.gtf", annoA+annoB),
	}

	serial, err := CollectAll(context.Background(), paths, "feature", nil, 1)
	require.NoError(t, err)
	parallel, err := CollectAll(context.Background(), paths, "feature", nil, 8)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestCollectAllPropagatesFailure(t *testing.T) {
	a := writeGTF(t, "a.gtf", annoA)
	missing := filepath.Join(t.TempDir(), "nope.gtf")

	_, err := CollectAll(context.Background(), []string{a, missing}, "feature", nil, 2)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMergeOrdersByCountThenKey(t *testing.T) {
	sums := []Summary{
		{Tallies: map[string]int{"exon": 3, "gene": 1}},
		{Tallies: map[string]int{"CDS": 2, "gene": 1}},
	}

	got := Merge(sums)
	want := []KeyCount{
		{Key: "exon", Records: 3},
		{Key: "CDS", Records: 2},
		{Key: "gene", Records: 2},
	}
	assert.Equal(t, want, got)
}

func TestMergeEmpty(t *testing.T) {
	assert.Empty(t, Merge(nil))
	assert.Empty(t, Merge([]Summary{{File: "a.gtf"}}))
}
