package retrobridge

import (
	"maps"
	"strconv"
	"strings"

	"github.com/pawndev/retrobridge/pkg/retrobridge/constants"
)

// LaunchParams are the extras the screen was started with. They are
// read-only once the screen exists.
type LaunchParams struct {
	extras map[string]string
}

func NewLaunchParams(extras map[string]string) LaunchParams {
	copied := make(map[string]string, len(extras))
	for k, v := range extras {
		copied[k] = v
	}
	return LaunchParams{extras: copied}
}

// ParseLaunchParams reads KEY=VALUE pairs; a bare KEY means "true".
func ParseLaunchParams(pairs []string) LaunchParams {
	extras := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		key, value, found := strings.Cut(pair, "=")
		if !found {
			value = "true"
		}
		extras[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return LaunchParams{extras: extras}
}

func (p LaunchParams) Has(key string) bool {
	_, ok := p.extras[key]
	return ok
}

func (p LaunchParams) String(key string) string {
	return p.extras[key]
}

// Bool returns the extra as a boolean. Absent or unparsable values are false.
func (p LaunchParams) Bool(key string) bool {
	v, ok := p.extras[key]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}

// MultiDisk reports whether the content declared more than one disk. The
// extra only has to be present; an explicit false value ("false", "0")
// turns it off.
func (p LaunchParams) MultiDisk() bool {
	v, ok := p.extras[constants.ExtraMultiDisk]
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err != nil || b
}

// Map returns a copy of the extras.
func (p LaunchParams) Map() map[string]string {
	return maps.Clone(p.extras)
}
