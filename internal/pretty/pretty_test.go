package pretty

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gtfq-core/gtf"
)

func sample() gtf.Record {
	return gtf.Record{
		Seqname: "chr1",
		Source:  "HAVANA",
		Feature: "gene",
		Start:   11869,
		End:     14409,
		Score:   gtf.NoScore,
		Strand:  '+',
		Frame:   gtf.NoFrame,
		Attributes: map[string]string{
			"gene_name": "DDX11L1",
			"gene_id":   "ENSG1",
		},
	}
}

func TestRenderRecord(t *testing.T) {
	want := "# chr1:11869-14409 gene (+) HAVANA\n" +
		"#   gene_id: ENSG1\n" +
		"#   gene_name: DDX11L1\n" +
		"#\n"
	assert.Equal(t, want, RenderRecord(sample()))
}

func TestRenderRecordScoreAndFrame(t *testing.T) {
	r := sample()
	r.Score = 0.5
	r.Frame = 2
	r.Attributes = nil

	want := "# chr1:11869-14409 gene (+) HAVANA score=0.5 frame=2\n#\n"
	assert.Equal(t, want, RenderRecord(r))
}

func TestRenderRecordZeroStrand(t *testing.T) {
	r := sample()
	r.Strand = 0
	r.Attributes = nil
	assert.Equal(t, "# chr1:11869-14409 gene (.) HAVANA\n#\n", RenderRecord(r))
}
