package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/livecheck/internal/app"
	"go.trai.ch/livecheck/internal/core/domain"
	"go.trai.ch/livecheck/internal/ui/output"
	"go.trai.ch/livecheck/internal/ui/style"
	"gopkg.in/yaml.v3"
)

type renderFunc func(w io.Writer, results []app.Result, digest bool) error

// absent is printed for unset values in text output.
const absent = "-"

type resultDoc struct {
	Name      string          `json:"name"             yaml:"name"`
	Path      string          `json:"path"             yaml:"path"`
	Livecheck domain.Snapshot `json:"livecheck"        yaml:"livecheck"`
	Digest    string          `json:"digest,omitempty" yaml:"digest,omitempty"`
}

func toDocs(results []app.Result, digest bool) []resultDoc {
	docs := make([]resultDoc, len(results))
	for i, r := range results {
		docs[i] = resultDoc{
			Name:      r.Name,
			Path:      r.Path,
			Livecheck: r.Snapshot,
		}
		if digest {
			docs[i].Digest = formatDigest(r.Snapshot)
		}
	}
	return docs
}

func formatDigest(s domain.Snapshot) string {
	return fmt.Sprintf("%016x", s.Digest())
}

func renderJSON(w io.Writer, results []app.Result, digest bool) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toDocs(results, digest))
}

func renderYAML(w io.Writer, results []app.Result, digest bool) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(toDocs(results, digest)); err != nil {
		return err
	}
	return enc.Close()
}

// renderText prints one block per package with the snapshot keys aligned.
func renderText(w io.Writer, results []app.Result, digest bool) error {
	r := lipgloss.NewRenderer(w, termenv.WithProfile(output.Profile(w)))
	header := r.NewStyle().Bold(true).Foreground(style.Iris)
	key := r.NewStyle().Foreground(style.Slate)
	skipped := r.NewStyle().Foreground(style.Yellow)

	keys := domain.SnapshotKeys
	if digest {
		keys = slices.Concat(keys, []string{"digest"})
	}
	width := 0
	for _, k := range keys {
		width = max(width, len(k))
	}

	var b strings.Builder
	for i, res := range results {
		if i > 0 {
			b.WriteString("\n")
		}

		icon := style.Check
		if res.Snapshot.Skip {
			icon = skipped.Render(style.Warning)
		}
		b.WriteString(icon + " " + header.Render(res.Name) + " (" + res.Path + ")\n")

		values := textValues(res.Snapshot)
		if digest {
			values["digest"] = formatDigest(res.Snapshot)
		}
		for _, k := range keys {
			pad := strings.Repeat(" ", width-len(k)+2)
			b.WriteString("  " + key.Render(k) + pad + values[k] + "\n")
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func textValues(s domain.Snapshot) map[string]string {
	values := map[string]string{
		domain.KeyRegex:       absent,
		domain.KeySkip:        strconv.FormatBool(s.Skip),
		domain.KeySkipMessage: absent,
		domain.KeyStrategy:    absent,
		domain.KeyURL:         absent,
	}
	if s.Regex != nil {
		values[domain.KeyRegex] = s.Regex.String()
	}
	if s.SkipMessage != nil {
		values[domain.KeySkipMessage] = *s.SkipMessage
	}
	if s.Strategy != nil {
		values[domain.KeyStrategy] = s.Strategy.String()
	}
	if s.URL != nil {
		values[domain.KeyURL] = *s.URL
	}
	return values
}
