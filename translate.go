package mongopatch

import (
	"log/slog"

	"github.com/deckhouse/deckhouse/pkg/log"

	"github.com/brunoga/mongopatch/internal/core"
	"github.com/brunoga/mongopatch/patch"
)

// Translator turns JSON Patches into MongoDB update documents.
//
// A Translator only holds its options, so a single instance can be shared by
// any number of goroutines.
type Translator struct {
	strictAdd  bool
	copyValues bool
	logger     *log.Logger
}

// NewTranslator returns a Translator configured with the given options.
func NewTranslator(opts ...Option) *Translator {
	t := &Translator{
		copyValues: true,
		logger:     log.NewNop(),
	}
	for _, opt := range opts {
		opt.apply(t)
	}
	return t
}

// Translate folds the operations of p, in order, into a single update.
//
// It returns an *UnsupportedOperationError (matching ErrUnsupportedOperation)
// for the first operation that cannot be expressed, in which case no update
// is returned at all.
func (t *Translator) Translate(p []patch.Operation) (*Update, error) {
	u := newUpdate()
	for i, op := range p {
		field := core.ToFieldPath(op.Path)

		t.logger.Debug("translate operation",
			slog.Int("index", i),
			slog.String("op", string(op.Op)),
			slog.String("path", op.Path),
			slog.String("field", field))

		var err error
		switch op.Op {
		case patch.OperationTypeAdd:
			err = t.add(u, i, op, field)
		case patch.OperationTypeRemove:
			u.Unset[field] = unsetMarker
		case patch.OperationTypeReplace:
			u.Set[field] = t.value(op.Value)
		case patch.OperationTypeTest:
			// A test does not change the document.
		case patch.OperationTypeMove:
			if !op.HasFrom() {
				err = unsupported(i, op, ReasonMoveWithoutFrom)
				break
			}
			u.Rename[core.ToFieldPath(op.From)] = field
		case patch.OperationTypeCopy:
			err = unsupported(i, op, ReasonCopy)
		default:
			err = unsupported(i, op, ReasonUnknownOperation)
		}
		if err != nil {
			t.logger.Debug("reject patch", slog.Int("index", i), slog.String("error", err.Error()))
			return nil, err
		}
	}

	u.compact()
	return u, nil
}

// add translates an "add". Paths ending in "-" or in an integer become
// $push directives, merged with the directive already accumulated for the
// same array. Any other path is a plain field assignment.
func (t *Translator) add(u *Update, i int, op patch.Operation, field string) error {
	key, token := core.SplitFieldPath(field)

	if token == core.EndOfArray {
		existing, ok := u.Push[key]
		if !ok {
			u.Push[key] = NewPush(t.value(op.Value))
			return nil
		}
		if err := existing.Append(t.value(op.Value)); err != nil {
			return unsupported(i, op, err.Error())
		}
		return nil
	}

	position, ok := core.ParsePosition(token)
	if !ok {
		if t.strictAdd {
			return unsupported(i, op, ReasonAddWithoutIndex)
		}
		u.Set[field] = t.value(op.Value)
		return nil
	}

	existing, ok := u.Push[key]
	if !ok {
		u.Push[key] = NewPushAt(position, t.value(op.Value))
		return nil
	}
	if err := existing.InsertAt(position, t.value(op.Value)); err != nil {
		return unsupported(i, op, err.Error())
	}
	return nil
}

func (t *Translator) value(v any) any {
	if !t.copyValues {
		return v
	}
	return copyValue(v)
}

// Translate folds the operations of p into a single update using a
// Translator configured with opts.
func Translate(p []patch.Operation, opts ...Option) (*Update, error) {
	return NewTranslator(opts...).Translate(p)
}

// TranslateJSON decodes an RFC 6902 JSON document and translates it.
func TranslateJSON(data []byte, opts ...Option) (*Update, error) {
	p, err := patch.Decode(data)
	if err != nil {
		return nil, err
	}
	return Translate(p, opts...)
}

// TranslateYAML decodes a JSON Patch written as YAML and translates it.
func TranslateYAML(data []byte, opts ...Option) (*Update, error) {
	p, err := patch.DecodeYAML(data)
	if err != nil {
		return nil, err
	}
	return Translate(p, opts...)
}

// FieldPath converts a JSON Pointer into the dotted field path used as a key
// in update documents, reversing the "~1" and "~0" escapes.
func FieldPath(pointer string) string {
	return core.ToFieldPath(pointer)
}
