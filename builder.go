package parambuilder

import (
	"github.com/go-andiamo/gopt"
	"go.uber.org/zap"
	"net/url"
	"strconv"
)

// Builder combines Params with a base uri
//
// the fields may be freely reassigned after construction - every call re-serializes from the current values.
// A Builder is not safe for concurrent use if any of its fields are being changed.
type Builder struct {
	// Params are the query params
	Params *Params
	// BaseURI is the uri prefix used when no base override is supplied (nil or empty optional means no base)
	BaseURI *gopt.Optional[string]
	// PathVars are positional values for {name} segments in the base uri path - if empty, the base is used verbatim
	PathVars []any
	logger   *zap.Logger
}

// New creates a new Builder
//
// returns an ErrorArgumentRequired error if params is nil
func New(params *Params, options ...Option) (*Builder, error) {
	if params == nil {
		return nil, newError(ErrorArgumentRequired, "params", "params is required")
	}
	b := &Builder{
		Params:  params,
		BaseURI: gopt.Empty[string](),
		logger:  zap.NewNop(),
	}
	for _, o := range options {
		if o != nil {
			o.apply(b)
		}
	}
	return b, nil
}

// Query returns the query string for the builder's Params
//
// returns an ErrorInvalidState error if the builder has no Params
func (b *Builder) Query() (string, error) {
	if b.Params == nil {
		return "", newError(ErrorInvalidState, "Params", "builder has no Params")
	}
	return encode(b.Params, b.logDropped)
}

// URIString returns the base uri followed by the query string
//
// with no args, the builder's BaseURI is used (an ErrorInvalidState error is returned if it is not present or empty).
// With one arg, that is used as the base (an ErrorArgumentRequired error is returned if it is empty).
//
// the base and query are concatenated as is - no separator normalization is performed
func (b *Builder) URIString(base ...string) (string, error) {
	var useBase string
	switch len(base) {
	case 0:
		if b.BaseURI == nil || !b.BaseURI.IsPresent() || b.BaseURI.Default("") == "" {
			return "", newError(ErrorInvalidState, "BaseURI", "builder has no BaseURI - set it in construction or by setting the field")
		}
		useBase = b.BaseURI.Default("")
	case 1:
		if base[0] == "" {
			return "", newError(ErrorArgumentRequired, "base", "base is required")
		}
		useBase = base[0]
	default:
		return "", newError(ErrorArgumentInvalid, "base", "only one base may be supplied")
	}
	q, err := b.Query()
	if err != nil {
		return "", err
	}
	if useBase, err = resolveBase(useBase, b.PathVars); err != nil {
		return "", err
	}
	result := useBase + q
	b.log().Debug("built uri", zap.String("uri", result), zap.Int("params", b.Params.Len()))
	return result, nil
}

// URI is the same as URIString but returns the parsed url
//
// returns an ErrorMalformedURI error if the result cannot be parsed
func (b *Builder) URI(base ...string) (*url.URL, error) {
	s, err := b.URIString(base...)
	if err != nil {
		return nil, err
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, wrapError(ErrorMalformedURI, "uri", err, "uri "+strconv.Quote(s)+" is malformed")
	}
	return u, nil
}

func (b *Builder) log() *zap.Logger {
	if b.logger == nil {
		return zap.NewNop()
	}
	return b.logger
}

func (b *Builder) logDropped(index int) {
	b.log().Debug("dropped param with no key", zap.Int("index", index))
}

// Option is an option for New
type Option interface {
	apply(b *Builder)
}

type option struct {
	fn func(b *Builder)
}

func (o *option) apply(b *Builder) {
	o.fn(b)
}

// WithBaseURI sets the initial BaseURI
func WithBaseURI(base string) Option {
	return &option{
		fn: func(b *Builder) {
			b.BaseURI = gopt.Of[string](base)
		}}
}

// WithPathVars sets the initial PathVars
func WithPathVars(vars ...any) Option {
	return &option{
		fn: func(b *Builder) {
			b.PathVars = vars
		}}
}

// WithLogger sets the logger used for debug logging
func WithLogger(logger *zap.Logger) Option {
	return &option{
		fn: func(b *Builder) {
			b.logger = logger
		}}
}
