// Package output renders command results as text, JSON or YAML.
package output

import "io"

type Handler[T any] interface {
	// Writer returns the io.Writer this Handler will write to.
	Writer() io.Writer

	// HandleResult renders a single item.
	HandleResult(item T) error

	// HandleResults renders a collection of items.
	HandleResults(items ...T) error

	// HandleError renders the error.
	HandleError(err error) error
}

// WriteFunc writes output related to a collection of items of type T, such as a header or footer.
// It receives the total count of items being printed, not the items themselves.
type WriteFunc[T any] func(w io.Writer, count int)

type Printer[T any] interface {
	// Header should be called once before the items.
	Header(w io.Writer, count int)

	// SetHeader can be used to configure the Header function.
	SetHeader(fn WriteFunc[T])

	// Item prints one element.
	Item(w io.Writer, elem T) error

	// Footer should be called once after the items.
	Footer(w io.Writer, count int)

	// SetFooter can be used to configure the Footer function.
	SetFooter(fn WriteFunc[T])
}

// ResultsPayload wraps multiple results under the key "results".
type ResultsPayload[T any] struct {
	Results []T `json:"results" yaml:"results"`
}

// ResultPayload wraps a single result under the key "result".
type ResultPayload[T any] struct {
	Result T `json:"result" yaml:"result"`
}

// ErrorPayload wraps an error message under the key "error".
type ErrorPayload struct {
	Error string `json:"error" yaml:"error"`
}
