package emit

import (
	"github.com/teranos/schemagen/errors"
)

// Writer names.
const (
	WriterInterface  = "interface"
	WriterEncoded    = "encoded"
	WriterSchema     = "schema"
	WriterEnumType   = "type"
	WriterEnumSchema = "schema"
)

// Default writer lists, in emission order.
var (
	DefaultRecordWriters = []string{WriterInterface, WriterEncoded, WriterSchema}
	DefaultEnumWriters   = []string{WriterEnumType, WriterEnumSchema}
)

// RecordWriters builds the record writers named in names. The schema writer
// is annotated with whichever interface writers are also present.
func RecordWriters(names []string) ([]Writer, error) {
	has := make(map[string]bool, len(names))
	for _, n := range names {
		has[n] = true
	}
	writers := make([]Writer, 0, len(names))
	for _, n := range names {
		switch n {
		case WriterInterface:
			writers = append(writers, InterfaceWriter{})
		case WriterEncoded:
			writers = append(writers, EncodedWriter{})
		case WriterSchema:
			writers = append(writers, SchemaWriter{Output: has[WriterInterface], Encoded: has[WriterEncoded]})
		default:
			return nil, unknownWriter("record", n, DefaultRecordWriters)
		}
	}
	return writers, nil
}

// EnumWriters builds the enum writers named in names.
func EnumWriters(names []string) ([]Writer, error) {
	writers := make([]Writer, 0, len(names))
	for _, n := range names {
		switch n {
		case WriterEnumType:
			writers = append(writers, EnumTypeWriter{})
		case WriterEnumSchema:
			writers = append(writers, EnumSchemaWriter{})
		default:
			return nil, unknownWriter("enum", n, DefaultEnumWriters)
		}
	}
	return writers, nil
}

func unknownWriter(kind, name string, known []string) error {
	return errors.WithHintf(
		errors.NewUnknownTransformerError("%s writer %q is not registered", kind, name),
		"known %s writers: %v", kind, known)
}
