package cli

import (
	"fmt"
	"iter"
	"slices"

	"github.com/khalid-nowaf/contamers/pkg/list"
)

type PeopleCmd struct {
	File   string `type:"existingfile" help:"YAML or JSON file with the people, the built-in people are used if empty"`
	Angry  bool   `help:"Upper-case the names" default:"true" negatable:""`
	Format string `help:"Output format" default:"text" enum:"text,json"`
}

// Run collects the people into a list and prints it.
// The list is built with list.FromSeq, so people are printed in the reverse of the input order.
func (cmd *PeopleCmd) Run(ctx *Context) error {
	people := DefaultPeople()
	if cmd.File != "" {
		parsed, err := parsePeople(cmd.File)
		if err != nil {
			return fmt.Errorf("reading people from %s: %w", cmd.File, err)
		}
		people = parsed
	}
	ctx.Logger.Debug().Str("file", cmd.File).Int("people", len(people)).Msg("loaded people")

	seq := slices.Values(people)
	if cmd.Angry {
		seq = mapSeq(seq, WithAngryName)
	}
	persons := list.FromSeq(seq)

	writer, err := newWriter(cmd.Format)
	if err != nil {
		return err
	}
	return writer.Write(ctx.Out, persons)
}

// mapSeq lazily applies f to every element of seq.
func mapSeq[A, B any](seq iter.Seq[A], f func(A) B) iter.Seq[B] {
	return func(yield func(B) bool) {
		for v := range seq {
			if !yield(f(v)) {
				return
			}
		}
	}
}
