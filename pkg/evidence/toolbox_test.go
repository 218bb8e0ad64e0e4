package evidence

import (
	"context"
	"errors"
	"strings"
)

// fakeToolbox serves canned tool output keyed by the full command line.
type fakeToolbox struct {
	tools   map[string]bool
	outputs map[string][]byte
	errs    map[string]error

	calls []string
}

func (f *fakeToolbox) Look(name string) bool {
	return f.tools[name]
}

func (f *fakeToolbox) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	key := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, key)
	if err, ok := f.errs[key]; ok {
		return nil, err
	}
	out, ok := f.outputs[key]
	if !ok {
		return nil, errors.New("unexpected invocation: " + key)
	}
	return out, nil
}
