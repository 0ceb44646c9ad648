// Package picker provides interactive multi-selection over a list of
// candidate names.
package picker

import (
	"errors"
	"os"

	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"golang.org/x/term"
)

var (
	// ErrNoTTY is returned when interactive selection is requested
	// without a terminal attached.
	ErrNoTTY = errors.New("interactive selection requires a terminal")

	// ErrNothingToPick is returned when the candidate list is empty.
	ErrNothingToPick = errors.New("nothing to select from")
)

// Picker supplies a user-chosen subset of candidate names.
type Picker interface {
	// PickMulti shows the candidates under the given header and
	// returns the chosen ones. Aborting the selection is an error.
	PickMulti(header string, items []string) ([]string, error)
}

// Fuzzy is the interactive fuzzy-finder Picker.
type Fuzzy struct{}

// PickMulti implements Picker with a full-screen fuzzy finder.
func (Fuzzy) PickMulti(header string, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, ErrNothingToPick
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, ErrNoTTY
	}

	indexes, err := fuzzyfinder.FindMulti(
		items,
		func(i int) string { return items[i] },
		fuzzyfinder.WithHeader(header),
	)
	if err != nil {
		return nil, err
	}

	selected := make([]string, 0, len(indexes))
	for _, i := range indexes {
		selected = append(selected, items[i])
	}
	return selected, nil
}
