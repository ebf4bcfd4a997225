package parambuilder

import (
	"strconv"
	"strings"
)

// Query serializes params into a query string
//
// the result always starts with "?" - empty params serialize to just "?"
//
// entries are emitted in order as key=value (key and value text trimmed of surrounding whitespace),
// separated by "&" - entries with no key are dropped. Keys and values are not escaped.
//
// returns an ErrorArgumentRequired error if params is nil, or an ErrorConversion error if any
// keyed entry's value has no text representation
func Query(params *Params) (string, error) {
	if params == nil {
		return "", newError(ErrorArgumentRequired, "params", "params is required")
	}
	return encode(params, nil)
}

// encode calls dropped (if non-nil) with the index of each null key entry
func encode(params *Params, dropped func(index int)) (string, error) {
	var buf strings.Builder
	buf.WriteByte('?')
	emitted := 0
	for i, e := range params.entries {
		key, ok := e.keyText()
		if !ok {
			if dropped != nil {
				dropped(i)
			}
			continue
		}
		text, err := textOf(e.Value)
		if err != nil {
			return "", wrapError(ErrorConversion, key, err, "param "+strconv.Quote(key)+" value has no text")
		}
		if emitted > 0 {
			buf.WriteByte('&')
		}
		buf.WriteString(strings.TrimSpace(key))
		buf.WriteByte('=')
		buf.WriteString(strings.TrimSpace(text))
		emitted++
	}
	return buf.String(), nil
}
