package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	oerrors "github.com/pyrepo/cli/internal/errors"
	"github.com/pyrepo/cli/internal/output"
)

// RecordSection is the single section the configuration record is written to.
const RecordSection = "main"

// Entry is one parameter to persist.
type Entry struct {
	Key   string
	Value any
}

// Record is the persisted last-used parameter set, in file order.
type Record struct {
	keys   []string
	values map[string]string
}

// Keys returns the record keys in file order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get returns the value stored for key.
func (r *Record) Get(key string) (string, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Map returns a copy of the record as a plain map.
func (r *Record) Map() map[string]string {
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Save writes entries as the only section of the record file, replacing any
// previous content. Every value is stored as text.
func Save(path string, entries []Entry) error {
	cfg := ini.Empty()
	section, err := cfg.NewSection(RecordSection)
	if err != nil {
		return fmt.Errorf("creating section %s: %w", RecordSection, err)
	}

	for _, e := range entries {
		if e.Key == "" {
			return oerrors.NewValidationError("configuration key cannot be empty", "", "")
		}
		value, err := encodeValue(coerce(e.Value))
		if err != nil {
			return oerrors.NewValidationError(fmt.Sprintf("cannot store %s: %s", e.Key, err), e.Key, "")
		}
		if _, err := section.NewKey(e.Key, value); err != nil {
			return fmt.Errorf("setting %s: %w", e.Key, err)
		}
	}

	if err := cfg.SaveTo(path); err != nil {
		return fmt.Errorf("writing configuration record %s: %w", path, err)
	}

	output.Debug("saved configuration record", "path", path, "keys", len(entries))
	return nil
}

// Load reads the record file. A missing file yields an ErrNotFound error.
func Load(path string) (*Record, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, oerrors.NewNotFoundError(oerrors.MsgNoConfiguration, path, "")
		}
		return nil, fmt.Errorf("checking configuration record %s: %w", path, err)
	}

	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreContinuation: true,
	}, path)
	if err != nil {
		return nil, fmt.Errorf("reading configuration record %s: %w", path, err)
	}

	rec := &Record{values: make(map[string]string)}
	section, err := cfg.GetSection(RecordSection)
	if err != nil {
		// a file without [main] holds no parameters
		return rec, nil
	}
	for _, key := range section.Keys() {
		rec.keys = append(rec.keys, key.Name())
		rec.values[key.Name()] = key.Value()
	}
	return rec, nil
}

// encodeValue prepares v for the ini writer so that Load returns it unchanged.
// The writer quotes values holding a newline, a backtick, '#' or ';' on its
// own. Values the parser would otherwise trim or unquote are wrapped in a
// quote character they do not contain.
func encodeValue(v string) (string, error) {
	switch {
	case strings.ContainsAny(v, "\n`"):
		if strings.Contains(v, `"""`) {
			return "", errors.New(`values with a newline or backtick cannot contain """`)
		}
		return v, nil
	case strings.ContainsAny(v, "#;"), !needsQuotes(v):
		return v, nil
	}

	for _, q := range []string{`'`, `"`} {
		if !strings.Contains(v, q) {
			return q + v + q, nil
		}
	}
	return "", errors.New("quoted or padded values cannot contain both quote characters")
}

// needsQuotes reports whether the parser would change v when written bare.
func needsQuotes(v string) bool {
	return strings.TrimSpace(v) != v ||
		strings.HasPrefix(v, `"""`) ||
		surroundedBy(v, '"') ||
		surroundedBy(v, '\'')
}

func surroundedBy(v string, q byte) bool {
	return len(v) >= 2 && v[0] == q && v[len(v)-1] == q &&
		strings.IndexByte(v[1:], q) == len(v)-2
}

func coerce(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "true"
		}
		return "false"
	default:
		return fmt.Sprint(t)
	}
}
