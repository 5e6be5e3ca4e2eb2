package mongopatch

import "github.com/deckhouse/deckhouse/pkg/log"

// Option configures a Translator.
type Option interface {
	apply(t *Translator)
}

type strictAddOption bool

func (o strictAddOption) apply(t *Translator) {
	t.strictAdd = bool(o)
}

// StrictAdd returns an option that makes an "add" whose path does not end in
// an array position ("-" or an integer) fail with ErrUnsupportedOperation
// instead of being translated like a "replace".
func StrictAdd(strict bool) Option {
	return strictAddOption(strict)
}

type copyValuesOption bool

func (o copyValuesOption) apply(t *Translator) {
	t.copyValues = bool(o)
}

// CopyValues returns an option that controls whether patch values are deep
// copied into the update. It is enabled by default so the update never
// shares memory with the patch.
func CopyValues(enabled bool) Option {
	return copyValuesOption(enabled)
}

type loggerOption struct {
	logger *log.Logger
}

func (o loggerOption) apply(t *Translator) {
	if o.logger != nil {
		t.logger = o.logger
	}
}

// WithLogger returns an option that makes the Translator log every
// operation it dispatches at debug level.
func WithLogger(logger *log.Logger) Option {
	return loggerOption{logger: logger}
}
