package selection

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tableflip.dev/oneiro/pkg/dream"
)

const (
	exportLayout = "2006-01-02-15-04-05"
	exportPrefix = "DreamDump"
)

// Sink writes a UTF-8 text blob to a platform-chosen location.
type Sink interface {
	Write(filename string, data []byte) error
}

// DirSink writes export files into a downloads-style directory.
type DirSink struct {
	Dir string
}

func (d DirSink) Write(filename string, data []byte) error {
	if err := os.MkdirAll(d.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(d.Dir, filename), data, 0o644)
}

// Filename embeds the export timestamp: DreamDump_<YYYY-MM-DD-HH-MM-SS>.txt.
func Filename(now time.Time) string {
	return fmt.Sprintf("%s_%s.txt", exportPrefix, now.Format(exportLayout))
}

// Render serializes records into the export text: per record a title line,
// description line, comma-joined tags line, vividness line, and a timestamp
// line, blocks separated by two blank lines.
func Render(records []*dream.Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Title)
		b.WriteString("\n")
		b.WriteString(r.Description)
		b.WriteString("\nTags: ")
		b.WriteString(strings.Join(r.Tags, ","))
		b.WriteString(fmt.Sprintf("\nVividness: %d\n", r.Vividness))
		b.WriteString(r.Date.Local().Format(exportLayout))
		b.WriteString("\n\n\n")
	}
	return b.String()
}

// Export writes the current selection through the sink. A failed write keeps
// the selection so the user can retry; success clears it.
func (s *Selection) Export(sink Sink, now time.Time) (string, error) {
	name := Filename(now)
	if err := sink.Write(name, []byte(Render(s.Records()))); err != nil {
		return name, fmt.Errorf("failed to create export file: %w", err)
	}
	s.Clear()
	return name, nil
}
