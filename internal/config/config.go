// internal/config/config.go
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"

	"gtfq/internal/clibase"
)

// FileName is the per-user defaults file, looked up in the home directory.
const FileName = ".gtfq.json"

// EnvPath overrides the defaults file location when set. Point it at an
// empty or missing file to disable user defaults entirely.
const EnvPath = "GTFQ_CONFIG"

// ErrMalformed marks a defaults file that exists but does not parse. The
// tools treat it as a usage error; a silently ignored typo in the file
// would change behavior without a trace.
var ErrMalformed = errors.New("malformed defaults file")

// Defaults are user-level flag defaults. Explicit command-line flags always
// win; a nil pointer field means "not configured".
type Defaults struct {
	Annotation   string `json:"annotation,omitempty"`
	Output       string `json:"output,omitempty"`
	Header       *bool  `json:"header,omitempty"`
	Quiet        *bool  `json:"quiet,omitempty"`
	StrictScores *bool  `json:"strict_scores,omitempty"`
}

// Path returns the effective defaults file location.
func Path() (string, error) {
	if p := os.Getenv(EnvPath); p != "" {
		return p, nil
	}
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// Load reads the defaults file. A missing file yields zero Defaults and no
// error; an unreadable file yields an error the caller may downgrade to a
// warning; a garbled file yields an error matching ErrMalformed. The
// annotation path comes back with "~" already expanded.
func Load() (Defaults, error) {
	var d Defaults
	p, err := Path()
	if err != nil {
		return d, fmt.Errorf("defaults file: %w", err)
	}
	raw, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return d, nil
	}
	if err != nil {
		return d, fmt.Errorf("defaults file %s: %w", p, err)
	}
	if err := json.Unmarshal(raw, &d); err != nil {
		return Defaults{}, fmt.Errorf("%w %s: %v", ErrMalformed, p, err)
	}
	if d.Annotation != "" {
		if exp, err := homedir.Expand(d.Annotation); err == nil {
			d.Annotation = exp
		}
	}
	return d, nil
}

// Apply overlays configured defaults onto c for flags the user left unset.
// set holds the flag names actually given on the command line. An output
// format outside the tool's allowed set is skipped, so a defaults file
// written for one tool never breaks the other. The configured annotation
// fills in only when the command line named no inputs at all.
func Apply(d Defaults, set map[string]bool, c *clibase.Common, outputs ...string) {
	if d.Annotation != "" && len(c.Files) == 0 {
		c.Files = []string{d.Annotation}
	}
	if d.Output != "" && !set["output"] && !set["o"] && allowed(d.Output, outputs) {
		c.Output = d.Output
	}
	if d.Header != nil && !set["no-header"] {
		c.Header = *d.Header
	}
	if d.Quiet != nil && !set["quiet"] && !set["q"] {
		c.Quiet = *d.Quiet
	}
	if d.StrictScores != nil && !set["strict-scores"] {
		c.StrictScores = *d.StrictScores
	}
}

func allowed(v string, outputs []string) bool {
	for _, o := range outputs {
		if v == o {
			return true
		}
	}
	return false
}
