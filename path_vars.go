package parambuilder

import (
	"github.com/go-andiamo/urit"
	"strings"
)

// pathVars are positional values for resolving a templated base uri path
type pathVars []any

var _ urit.PathVars = pathVars{}

func (p pathVars) GetPositional(position int) (string, bool) {
	if position >= 0 && position < len(p) {
		if s, err := textOf(ValueOf(p[position])); err == nil {
			return s, true
		}
	}
	return "", false
}

func (p pathVars) GetNamed(name string, position int) (string, bool) {
	return p.GetPositional(position)
}

func (p pathVars) GetNamedFirst(name string) (string, bool) {
	return "", false
}

func (p pathVars) GetNamedLast(name string) (string, bool) {
	return "", false
}

func (p pathVars) Get(idents ...interface{}) (string, bool) {
	if len(idents) == 1 {
		if i, ok := idents[0].(int); ok {
			return p.GetPositional(i)
		}
	}
	return "", false
}

func (p pathVars) GetAll() []urit.PathVar {
	return nil
}

func (p pathVars) Len() int {
	return len(p)
}

func (p pathVars) Clear() {}

func (p pathVars) VarsType() urit.PathVarsType {
	return urit.Positions
}

func (p pathVars) AddNamedValue(name string, val interface{}) error {
	return newError(ErrorArgumentInvalid, name, "path vars are positional only")
}

func (p pathVars) AddPositionalValue(val interface{}) error {
	return newError(ErrorArgumentInvalid, "", "path vars are fixed once set")
}

// resolveBase resolves the path portion of base as a template (if there are any vars)
//
// the scheme & authority portion of base (if any) and any query or fragment are kept verbatim -
// a relative path stays relative
func resolveBase(base string, vars []any) (string, error) {
	if len(vars) == 0 {
		return base, nil
	}
	rest, suffix := splitSuffix(base)
	prefix, path := splitAuthority(rest)
	if path == "" {
		return base, nil
	}
	relative := !strings.HasPrefix(path, "/")
	if relative {
		path = "/" + path
	}
	template, err := urit.NewTemplate(path)
	if err != nil {
		return "", wrapError(ErrorMalformedURI, "base", err, "base uri path is not a valid template")
	}
	resolved, err := template.PathFrom(pathVars(vars))
	if err != nil {
		return "", wrapError(ErrorArgumentInvalid, "pathVars", err, "unable to resolve base uri path")
	}
	if relative {
		resolved = strings.TrimPrefix(resolved, "/")
	}
	return prefix + resolved + suffix, nil
}

// splitSuffix splits off any query or fragment
func splitSuffix(base string) (rest string, suffix string) {
	if i := strings.IndexAny(base, "?#"); i >= 0 {
		return base[:i], base[i:]
	}
	return base, ""
}

func splitAuthority(base string) (prefix string, path string) {
	if i := strings.Index(base, "://"); i >= 0 {
		rest := base[i+3:]
		if j := strings.IndexByte(rest, '/'); j >= 0 {
			return base[:i+3+j], rest[j:]
		}
		return base, ""
	}
	return "", base
}
