package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/khalid-nowaf/contamers/pkg/list"
)

type Writer interface {
	Write(out io.Writer, people *list.List[Person]) error
}

// TextWriter prints a header line, then one person per line in list order.
type TextWriter struct{}

func (TextWriter) Write(out io.Writer, people *list.List[Person]) error {
	if _, err := fmt.Fprintln(out, "the people:"); err != nil {
		return err
	}
	for person := range people.All() {
		if _, err := fmt.Fprintln(out, person); err != nil {
			return err
		}
	}
	return nil
}

// JsonWriter prints the people as a JSON array in list order.
type JsonWriter struct {
	Indent bool
}

func (w JsonWriter) Write(out io.Writer, people *list.List[Person]) error {
	encoder := json.NewEncoder(out)
	if w.Indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(people.Values())
}

func newWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return TextWriter{}, nil
	case "json":
		return JsonWriter{Indent: true}, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
