package cli

import (
	"fmt"
)

type WordsCmd struct {
	Dict   string   `arg:"" type:"existingfile" help:"Dictionary file, one word per line"`
	Words  []string `arg:"" optional:"" help:"Words to look up"`
	Prefix bool     `help:"Also report whether each word is a prefix of a dictionary word"`
}

// Run loads the dictionary into a trie and prints one line per looked up word.
func (cmd *WordsCmd) Run(ctx *Context) error {
	trie, lines, err := parseDictionary(cmd.Dict)
	if err != nil {
		return fmt.Errorf("reading dictionary %s: %w", cmd.Dict, err)
	}
	ctx.Logger.Info().
		Str("dict", cmd.Dict).
		Int("lines", lines).
		Int("words", trie.Len()).
		Int("nodes", trie.NodeCount()).
		Msg("dictionary loaded")

	for _, word := range cmd.Words {
		found := trie.Contains(word)
		if !found {
			ctx.Logger.Debug().Str("word", word).Msg("not in dictionary")
		}
		if cmd.Prefix {
			_, err = fmt.Fprintf(ctx.Out, "%s: %t (prefix: %t)\n", word, found, trie.HasPrefix(word))
		} else {
			_, err = fmt.Fprintf(ctx.Out, "%s: %t\n", word, found)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
