// internal/integration/integration_test.go
package integration

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gtfq/internal/app"
	"gtfq/internal/statapp"
	"gtfq/pkg/api"
)

const sampleGTF = `# sample annotation
chr1	HAVANA	gene	11869	14409	.	+	.	gene_id "ENSG1"; gene_name "DDX11L1";
chr1	HAVANA	exon	11869	12227	.	+	.	gene_id "ENSG1"; exon_number "1";
chr2	ENSEMBL	gene	100	200	2.5	-	0	gene_id "ENSG2";
`

// isolate keeps a stray ~/.gtfq.json from leaking into test runs.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("GTFQ_CONFIG", filepath.Join(t.TempDir(), "absent.json"))
}

func write(t *testing.T, fn, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fn)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write %s: %v", fn, err)
	}
	return path
}

func writeGz(t *testing.T, fn, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), fn)
	fh, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", fn, err)
	}
	zw := gzip.NewWriter(fh)
	if _, err := zw.Write([]byte(data)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	if err := fh.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

func TestEndToEnd(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "itest.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--feature", "gene", gtfFile}, &out, &errBuf)

	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "DDX11L1") {
		t.Fatalf("expected gene row in output, got:\n%s", out.String())
	}
	if strings.Contains(out.String(), "exon_number") {
		t.Fatalf("exon row leaked through feature filter:\n%s", out.String())
	}
}

func TestNoMatchExitCode(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "nomatch.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--feature", "CDS", gtfFile}, &out, &errBuf)
	if code != 1 {
		t.Fatalf("expected default no-match exit 1, got %d (err=%s)", code, errBuf.String())
	}

	out.Reset()
	errBuf.Reset()
	code = app.Run([]string{"--feature", "CDS", "--no-match-exit-code", "7", gtfFile}, &out, &errBuf)
	if code != 7 {
		t.Fatalf("expected custom no-match exit 7, got %d", code)
	}
}

func TestEmptyArgvPrintsUsage(t *testing.T) {
	isolate(t)
	var out, errBuf bytes.Buffer
	code := app.Run(nil, &out, &errBuf)
	if code != 0 {
		t.Fatalf("expected exit 0 for empty argv, got %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("expected usage text, got:\n%s", out.String())
	}
}

func TestUsageErrorExit2(t *testing.T) {
	isolate(t)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--no-such-flag"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("expected exit 2 on bad flag, got %d", code)
	}
	if errBuf.Len() == 0 {
		t.Fatalf("expected usage text on stderr")
	}
}

func TestMissingFileExit3(t *testing.T) {
	isolate(t)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{filepath.Join(t.TempDir(), "absent.gtf")}, &out, &errBuf)
	if code != 3 {
		t.Fatalf("expected exit 3 on unreadable input, got %d (err=%s)", code, errBuf.String())
	}
}

func TestGzipInput(t *testing.T) {
	isolate(t)
	gzFile := writeGz(t, "itest.gtf.gz", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--feature", "exon", "--input", gzFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "exon_number=1") {
		t.Fatalf("expected exon row from gzip input, got:\n%s", out.String())
	}
}

func TestCountMode(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "count.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--count", "--feature", "gene", gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "2" {
		t.Fatalf("expected count 2, got %q", got)
	}
}

func TestJSONOutput(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "json.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", "json", gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}

	var recs []api.RecordV1
	if err := json.Unmarshal(out.Bytes(), &recs); err != nil {
		t.Fatalf("unmarshal json output: %v\n%s", err, out.String())
	}
	if len(recs) != 3 {
		t.Fatalf("expected 3 records, got %d", len(recs))
	}
	if recs[0].Score != nil {
		t.Fatalf("expected absent score on record 0, got %v", *recs[0].Score)
	}
	if recs[2].Score == nil || *recs[2].Score != 2.5 {
		t.Fatalf("expected score 2.5 on record 2, got %+v", recs[2].Score)
	}
}

func TestJSONLOutput(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "jsonl.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--output", "jsonl", gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 jsonl lines, got %d:\n%s", len(lines), out.String())
	}
	for i, ln := range lines {
		var rec api.RecordV1
		if err := json.Unmarshal([]byte(ln), &rec); err != nil {
			t.Fatalf("line %d: %v", i, err)
		}
	}
}

func TestWithScoreFilter(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "scored.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--with-score", "--count", gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if got := strings.TrimSpace(out.String()); got != "1" {
		t.Fatalf("expected 1 scored record, got %q", got)
	}
}

func TestNoInputsExit2(t *testing.T) {
	isolate(t)
	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--feature", "gene"}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("expected exit 2 with no inputs and no default annotation, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "annotation file") {
		t.Fatalf("expected input-required error, got: %s", errBuf.String())
	}
}

func TestConfigAnnotationFallback(t *testing.T) {
	gtfFile := write(t, "default.gtf", sampleGTF)
	cfg := filepath.Join(t.TempDir(), "gtfq.json")
	body := fmt.Sprintf("{\"annotation\": %q}", gtfFile)
	if err := os.WriteFile(cfg, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GTFQ_CONFIG", cfg)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{"--feature", "gene"}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "DDX11L1") {
		t.Fatalf("expected records from the configured annotation, got:\n%s", out.String())
	}

	// Named inputs beat the configured annotation.
	other := write(t, "other.gtf", "chrZ\tsrc\tgene\t1\t2\t.\t+\t.\tgene_id \"Z1\";\n")
	out.Reset()
	errBuf.Reset()
	code = app.Run([]string{"--feature", "gene", other}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if strings.Contains(out.String(), "DDX11L1") {
		t.Fatalf("configured annotation leaked past a named input:\n%s", out.String())
	}
}

func TestMalformedConfigExit2(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "gtfq.json")
	if err := os.WriteFile(cfg, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GTFQ_CONFIG", cfg)

	gtfFile := write(t, "in.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{gtfFile}, &out, &errBuf)
	if code != 2 {
		t.Fatalf("expected exit 2 for malformed defaults file, got %d", code)
	}
	if !strings.Contains(errBuf.String(), "malformed defaults file") {
		t.Fatalf("expected malformed-config error, got: %s", errBuf.String())
	}
}

func TestConfigDefaultsApplied(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "gtfq.json")
	if err := os.WriteFile(cfg, []byte(`{"output":"jsonl","header":false}`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("GTFQ_CONFIG", cfg)

	gtfFile := write(t, "cfg.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := app.Run([]string{gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	first := strings.SplitN(out.String(), "\n", 2)[0]
	var rec api.RecordV1
	if err := json.Unmarshal([]byte(first), &rec); err != nil {
		t.Fatalf("configured jsonl output not honored: %v\n%s", err, out.String())
	}
}

func TestStatEndToEnd(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "stat.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := statapp.Run([]string{gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "exon=1,gene=2") {
		t.Fatalf("expected per-file tallies in output, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "feature\trecords\ngene\t2\nexon\t1\n") {
		t.Fatalf("expected merged table in output, got:\n%s", out.String())
	}
}

func TestStatBySource(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "bysource.gtf", sampleGTF)

	var out, errBuf bytes.Buffer
	code := statapp.Run([]string{"--by", "source", gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("run exit %d, err=%s", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "ENSEMBL=1,HAVANA=2") {
		t.Fatalf("expected source tallies, got:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "source\trecords\nHAVANA\t2\nENSEMBL\t1\n") {
		t.Fatalf("expected merged source table, got:\n%s", out.String())
	}
}

func TestStatZeroRecordsExitsZero(t *testing.T) {
	isolate(t)
	gtfFile := write(t, "empty.gtf", "# header only\n")

	var out, errBuf bytes.Buffer
	code := statapp.Run([]string{gtfFile}, &out, &errBuf)
	if code != 0 {
		t.Fatalf("an empty summary is still a summary; want exit 0, got %d (err=%s)", code, errBuf.String())
	}
	if !strings.Contains(out.String(), "empty.gtf\t0\t0\t") {
		t.Fatalf("expected zero row, got:\n%s", out.String())
	}
}

func TestStatParallelMatchesEqualSerial(t *testing.T) {
	isolate(t)
	a := write(t, "par_a.gtf", sampleGTF)
	b := write(t, "par_b.gtf", sampleGTF)

	run := func(threads int) string {
		var out, errB bytes.Buffer
		code := statapp.Run([]string{
			"--threads", fmt.Sprint(threads),
			"--output", "json",
			a, b,
		}, &out, &errB)
		if code != 0 {
			t.Fatalf("exit %d err %s", code, errB.String())
		}
		return out.String()
	}

	serial := run(1)
	parallel := run(4)

	if serial != parallel {
		t.Fatalf("parallel output differs from serial\nserial: %s\nparallel:%s", serial, parallel)
	}
}
