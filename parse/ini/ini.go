package ini

// Package ini implements a production-grade INI parser with a byte-driven
// state machine, deterministic semantics, and typed key lookups.
//
// Scope:
// - Single-pass parse of a whole file or reader
// - Sections of typed key/value pairs (int, float, string)
// - Type inference for unquoted values
// - Linear-scan, default-on-miss accessors
// - Deterministic errors with byte offsets
//
// Non-goals (by design):
// - Write-back / serialization
// - Nested sections or multi-line values
// - Unicode-aware scanning (byte oriented)
// - Comments inside values
//
// This implementation is suitable for production use as a configuration
// ingestion layer.

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Tuning knobs, fixed at build time like the original format limits.
const (
	// NameMaxLen is the maximum accepted length of a section or key name.
	NameMaxLen = 128

	// initialCap seeds the section and key slices; growth past it is
	// amortized doubling via append.
	initialCap = 16
)

// =========================
// Store Definitions
// =========================

type ValueKind uint8

const (
	ValueInt ValueKind = iota
	ValueFloat
	ValueString
)

// Value is a tagged union over the three supported variants. The tag is
// fixed at parse time; V holds an int, a float32 or a string.
type Value struct {
	Type ValueKind
	V    any
}

// Key binds a name to exactly one typed value. Names are not unique within
// a section; lookups return the first match in insertion order.
type Key struct {
	Name  string
	Value Value
}

// Section is an ordered group of keys. The empty name identifies the group
// of keys that appear before any [section] header.
type Section struct {
	Name string
	Keys []Key
}

// File is the read-only snapshot produced by one parse. It has no mutation
// API; sections and keys are fixed once Parse or Load returns.
type File struct {
	sections []Section
}

// =========================
// Errors
// =========================

var (
	// ErrSyntax reports a grammar violation. The wrapping error carries
	// the byte offset of the offending input.
	ErrSyntax = errors.New("invalid syntax")

	// ErrNameTooLong reports a section or key name longer than NameMaxLen.
	ErrNameTooLong = errors.New("name exceeds maximum length")
)

// =========================
// Public API
// =========================

// Parse parses INI input from r and returns the loaded File.
//
// Parsing is all-or-nothing: any grammar violation or name-length violation
// discards everything built so far and returns an error, never a partially
// populated File. Duplicate section names and duplicate key names are kept
// as independent entries; keys always land in the most recently declared
// section, while lookups resolve the first match in scan order.
func Parse(r io.Reader) (*File, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ini: read: %w", err)
	}
	return parse(buf)
}

// Load reads the file at path fully into memory and parses it.
func Load(path string) (*File, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ini: read %s: %w", path, err)
	}
	return parse(buf)
}

// =========================
// Parser Implementation
// =========================

type parseState uint8

const (
	stateNone parseState = iota
	stateComment
	stateSectionName
	stateAfterSectionName
	stateKeyName
	stateAfterKeyName
	stateBeforeValue
	stateQuotedValue
	stateUnquotedValue
	stateAfterValue
)

type parser struct {
	buf  []byte
	file *File
	cur  int    // section receiving keys, -1 before the first one exists
	mark int    // start of the capture in progress
	key  string // key name waiting for its value
}

func parse(buf []byte) (*File, error) {
	p := &parser{
		buf:  buf,
		file: &File{sections: make([]Section, 0, initialCap)},
		cur:  -1,
	}

	state := stateNone

	// One virtual NUL past the end stands in for EOF so the same
	// transitions flush whatever token is still open on the last line.
	for i := 0; i <= len(buf); i++ {
		var c byte
		if i < len(buf) {
			c = buf[i]
		}

		switch state {

		case stateNone:
			switch {
			case isLineEnd(c) || isBlank(c):
				// Skip blank space between statements.
			case c == ';' || c == '#':
				state = stateComment
			case c == '[':
				p.mark = i + 1
				state = stateSectionName
			default:
				p.mark = i
				state = stateKeyName
			}

		case stateComment:
			if isLineEnd(c) {
				state = stateNone
			}

		case stateSectionName:
			switch {
			case c == ']':
				if i-p.mark > NameMaxLen {
					return nil, p.errf(i, ErrNameTooLong)
				}
				p.addSection(string(buf[p.mark:i]))
				state = stateAfterSectionName
			case c == '[' || c == '=' || c == ';' || c == '#' || isLineEnd(c):
				return nil, p.errf(i, ErrSyntax)
			}

		case stateAfterSectionName:
			switch {
			case isLineEnd(c):
				state = stateNone
			case isBlank(c):
				// Padding after "]" is tolerated up to the newline.
			default:
				return nil, p.errf(i, ErrSyntax)
			}

		case stateKeyName:
			switch {
			case isBlank(c):
				p.key = string(buf[p.mark:i])
				state = stateAfterKeyName
			case c == '=':
				p.key = string(buf[p.mark:i])
				state = stateBeforeValue
			case c == '[' || c == ']' || isLineEnd(c):
				return nil, p.errf(i, ErrSyntax)
			default:
				if i+1-p.mark > NameMaxLen {
					return nil, p.errf(i, ErrNameTooLong)
				}
			}

		case stateAfterKeyName:
			switch {
			case isBlank(c):
			case c == '=':
				state = stateBeforeValue
			default:
				return nil, p.errf(i, ErrSyntax)
			}

		case stateBeforeValue:
			switch {
			case isBlank(c):
			case isLineEnd(c) || c == '=' || c == '[' || c == ']':
				return nil, p.errf(i, ErrSyntax)
			case c == '"':
				p.mark = i + 1
				state = stateQuotedValue
			default:
				p.mark = i
				state = stateUnquotedValue
			}

		case stateQuotedValue:
			switch {
			case c == '"':
				// Quoted values are always strings, numeric-looking or not.
				p.commitKey(Value{Type: ValueString, V: string(buf[p.mark:i])})
				state = stateAfterValue
			case isLineEnd(c):
				return nil, p.errf(i, ErrSyntax)
			}

		case stateUnquotedValue:
			switch {
			case isLineEnd(c):
				p.commitKey(inferValue(string(buf[p.mark:i])))
				state = stateNone
			case c == '[' || c == ']' || c == '=':
				return nil, p.errf(i, ErrSyntax)
			}

		case stateAfterValue:
			if !isLineEnd(c) {
				return nil, p.errf(i, ErrSyntax)
			}
			state = stateNone
		}
	}

	return p.file, nil
}

func (p *parser) addSection(name string) {
	p.file.sections = append(p.file.sections, Section{
		Name: name,
		Keys: make([]Key, 0, initialCap),
	})
	p.cur = len(p.file.sections) - 1
}

func (p *parser) commitKey(v Value) {
	if p.cur < 0 {
		// First key before any header: synthesize the nameless section.
		p.addSection("")
	}
	sec := &p.file.sections[p.cur]
	sec.Keys = append(sec.Keys, Key{Name: p.key, Value: v})
}

func (p *parser) errf(off int, err error) error {
	return fmt.Errorf("ini:%d: %w", off, err)
}

func isLineEnd(c byte) bool {
	return c == '\n' || c == '\r' || c == 0
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

// =========================
// Value Inference
// =========================

// inferValue classifies an unquoted token. The trimmed token is tried as a
// signed integer literal (base auto-detected: 0x, 0o, 0b, decimal), then as
// a float narrowed to single precision; anything else stays a verbatim
// string including its original spacing.
func inferValue(raw string) Value {
	tok := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(tok, 0, 0); err == nil {
		return Value{Type: ValueInt, V: int(n)}
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Value{Type: ValueFloat, V: float32(f)}
	}
	return Value{Type: ValueString, V: raw}
}

// =========================
// Safe Access Helpers
// =========================

// NumSections returns the number of sections, counting the nameless one if
// any key appeared before the first header.
func (f *File) NumSections() int {
	return len(f.sections)
}

// Sections exposes the parsed sections in declaration order. The slice is
// owned by the File and must be treated as read-only.
func (f *File) Sections() []Section {
	return f.sections
}

// HasSection reports whether a section with the given name exists.
func (f *File) HasSection(name string) bool {
	return f.section(name) != nil
}

// NumKeys returns the number of keys in the first section with the given
// name, or 0 if no such section exists.
func (f *File) NumKeys(section string) int {
	s := f.section(section)
	if s == nil {
		return 0
	}
	return len(s.Keys)
}

// HasKey reports whether the first section with the given name holds a key
// with the given name.
func (f *File) HasKey(section, key string) bool {
	_, ok := f.Lookup(section, key)
	return ok
}

// Lookup finds a key by section and key name, first match wins on both.
func (f *File) Lookup(section, key string) (Value, bool) {
	s := f.section(section)
	if s == nil {
		return Value{}, false
	}
	for k := range s.Keys {
		if s.Keys[k].Name == key {
			return s.Keys[k].Value, true
		}
	}
	return Value{}, false
}

// GetInt returns the key's value when it exists and is an integer, def
// otherwise. Floats and strings are never coerced.
func (f *File) GetInt(section, key string, def int) int {
	if v, ok := f.Lookup(section, key); ok && v.Type == ValueInt {
		return v.V.(int)
	}
	return def
}

// GetFloat returns the key's value when it exists and is a float, def
// otherwise.
func (f *File) GetFloat(section, key string, def float32) float32 {
	if v, ok := f.Lookup(section, key); ok && v.Type == ValueFloat {
		return v.V.(float32)
	}
	return def
}

// GetString returns the key's value when it exists and is a string, def
// otherwise.
func (f *File) GetString(section, key, def string) string {
	if v, ok := f.Lookup(section, key); ok && v.Type == ValueString {
		return v.V.(string)
	}
	return def
}

// Release drops every section and key owned by the File so the backing
// arrays become collectable at once. It ends the File's life: calling any
// accessor after Release is forbidden.
func (f *File) Release() {
	f.sections = nil
}

func (f *File) section(name string) *Section {
	for s := range f.sections {
		if f.sections[s].Name == name {
			return &f.sections[s]
		}
	}
	return nil
}
