// Package evidence gathers labeled date/time evidence for a file from
// independent sources: its name, filesystem metadata, embedded media
// and image metadata, and extended attributes.
//
// Extractors are isolated from one another: a missing host tool or an
// unreadable metadata source contributes no evidence rather than an
// error, so one bad source never masks the others.
package evidence

import (
	"bytes"
	"context"
	"os/exec"
	"time"
)

// Labels for filesystem evidence. Other extractors build their labels
// from the source name and are kept in disjoint namespaces so merging
// never silently drops an entry.
const (
	LabelAccessed = "File Accessed"
	LabelModified = "File Modified"
	LabelChanged  = "File Changed"
	LabelCreated  = "File Created"
)

// Mapping holds one file's evidence: label -> UTC timestamp.
type Mapping map[string]time.Time

// Merge copies src entries into m. Later sources win on equal labels.
func (m Mapping) Merge(src Mapping) {
	for label, t := range src {
		m[label] = t
	}
}

// Toolbox locates and runs optional host tools. Extractors check Look
// before running a tool; an absent tool means that extractor yields no
// evidence.
type Toolbox interface {
	Look(name string) bool
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultTimeout bounds each external tool run so a wedged tool is
// treated as "no evidence" instead of hanging the whole scan.
const DefaultTimeout = 10 * time.Second

// HostToolbox runs tools found on the host PATH.
type HostToolbox struct {
	// Timeout bounds each Run; DefaultTimeout when zero.
	Timeout time.Duration
}

func (h HostToolbox) Look(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

func (h HostToolbox) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	timeout := h.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	var out bytes.Buffer
	cmd.Stdout = &out
	if err := cmd.Run(); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}
