package extraction

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Diagnostics persists raw model output that failed to parse so it can
// be inspected offline. This is a debugging aid, not part of the data
// contract; write errors are logged and swallowed.
type Diagnostics struct {
	dir string
	log zerolog.Logger
}

func NewDiagnostics(dir string, log zerolog.Logger) *Diagnostics {
	if dir == "" {
		dir = "."
	}
	return &Diagnostics{dir: dir, log: log}
}

// WriteFailedResponse saves text under a uniquely named file and returns
// the path, or "" when the write failed.
func (d *Diagnostics) WriteFailedResponse(prefix, text string) string {
	name := fmt.Sprintf("%s_%s_%s.txt",
		prefix,
		time.Now().UTC().Format("20060102150405"),
		uuid.NewString()[:8],
	)
	path := filepath.Join(d.dir, name)

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		d.log.Error().Err(err).Str("path", path).Msg("failed to write diagnostic file")
		return ""
	}

	d.log.Warn().Str("path", path).Msg("saved unparseable model response")
	return path
}
