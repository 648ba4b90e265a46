package internal

// Scanner error message constants
const (
	ErrMsgUnterminatedPlaceholder = "unclosed variable declaration"
	ErrMsgEmptyPlaceholderName    = "empty variable name"
	ErrMsgInvalidPlaceholderName  = "invalid variable name"
	ErrMsgNestedPlaceholder       = "nested variable declaration"
)

// Position represents a location in the template source.
type Position struct {
	Offset int // Byte offset from start
	Line   int // 1-indexed line number
	Column int // 1-indexed column number
}

// ScanError reports malformed placeholder syntax found while scanning.
type ScanError struct {
	Message  string
	Fragment string
	Pos      Position
}

// Error implements the error interface.
func (e *ScanError) Error() string {
	return e.Message + ": " + e.Fragment
}

// ScanPlaceholders scans template source left to right and returns the
// placeholder names in order of first occurrence, deduplicated.
//
// A placeholder is ${name} where name matches [_a-zA-Z][_a-zA-Z0-9]*.
// Brace characters outside a ${...} span are ordinary literals, so
// embedded JSON bodies never need escaping. Inside a span, a nested '{',
// an empty body, a character outside the identifier grammar, or a missing
// closing '}' is a syntax error.
func ScanPlaceholders(source string) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})

	i := 0
	for i < len(source) {
		if source[i] != '$' || i+1 >= len(source) || source[i+1] != '{' {
			i++
			continue
		}

		start := i
		i += 2 // consume "${"
		bodyStart := i

		for {
			if i >= len(source) {
				return nil, &ScanError{
					Message:  ErrMsgUnterminatedPlaceholder,
					Fragment: source[start:],
					Pos:      PositionAt(source, start),
				}
			}
			ch := source[i]
			if ch == '}' {
				break
			}
			if ch == '{' {
				return nil, &ScanError{
					Message:  ErrMsgNestedPlaceholder,
					Fragment: source[start : i+1],
					Pos:      PositionAt(source, start),
				}
			}
			if !isIdentChar(ch) {
				return nil, &ScanError{
					Message:  ErrMsgInvalidPlaceholderName,
					Fragment: source[start : i+1],
					Pos:      PositionAt(source, start),
				}
			}
			i++
		}

		name := source[bodyStart:i]
		i++ // consume "}"

		if name == "" {
			return nil, &ScanError{
				Message:  ErrMsgEmptyPlaceholderName,
				Fragment: source[start:i],
				Pos:      PositionAt(source, start),
			}
		}
		if !isIdentStart(name[0]) {
			return nil, &ScanError{
				Message:  ErrMsgInvalidPlaceholderName,
				Fragment: source[start:i],
				Pos:      PositionAt(source, start),
			}
		}

		if _, ok := seen[name]; !ok {
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}

	return names, nil
}

// isIdentStart reports whether ch may start a placeholder name.
func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

// isIdentChar reports whether ch may appear in a placeholder name.
func isIdentChar(ch byte) bool {
	return isIdentStart(ch) || (ch >= '0' && ch <= '9')
}

// PositionAt calculates the Position (line, column, offset) for a byte offset.
func PositionAt(source string, offset int) Position {
	pos := Position{
		Offset: offset,
		Line:   1,
		Column: 1,
	}

	for i := 0; i < offset && i < len(source); i++ {
		if source[i] == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
