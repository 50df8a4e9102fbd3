// Command unisig prints Unicode category and block signatures of text.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/scalecode-solutions/unisig"
)

const version = "0.1.0"

// Globals are flags shared by all commands.
type Globals struct {
	MaxLength int    `name:"max-length" short:"n" default:"256" help:"Maximum number of code points to analyze (1-1024)"`
	Stdin     bool   `name:"stdin" help:"Read text from standard input instead of the argument"`
	LogLevel  string `name:"log-level" enum:"debug,info,warn,error" default:"warn" help:"Log level"`
	LogFormat string `name:"log-format" enum:"text,json" default:"text" help:"Log output format"`

	logger *slog.Logger `kong:"-"`
}

// CLI defines the command-line interface for unisig.
type CLI struct {
	Globals

	Show        ShowCmd        `cmd:"" help:"Print every signature view of a text"`
	Fingerprint FingerprintCmd `cmd:"" help:"Print the composite signature fingerprint of a text"`
	Block       BlockCmd       `cmd:"" help:"Print block and category of each character"`
	Version     VersionCmd     `cmd:"" help:"Print version information"`
}

// signature builds the signature of the argument or of standard input.
func (g *Globals) signature(ctx *kong.Context, arg string, in io.Reader) (*unisig.Signature, error) {
	if g.logger == nil {
		g.logger = newLogger(ctx.Stderr, g.LogLevel, g.LogFormat)
	}

	text := arg
	if g.Stdin {
		b, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		text = strings.TrimSuffix(string(b), "\n")
	}

	s, err := unisig.New(text, unisig.WithMaxLength(g.MaxLength))
	if err != nil {
		g.logger.Error("invalid input", "error", err, "kind", int(unisig.KindOf(err)))
		return nil, err
	}
	if n := utf8.RuneCountInString(text); n > s.Len() {
		g.logger.Debug("text truncated", "length", n, "max_length", g.MaxLength)
	}
	g.logger.Debug("analyzed text", "code_points", s.Len(), "bytes", len(s.Text()))
	return s, nil
}

// ShowCmd prints every view of a signature.
type ShowCmd struct {
	Text string `arg:"" optional:"" help:"Text to analyze"`
}

func (c *ShowCmd) Run(g *Globals, in io.Reader, ctx *kong.Context) error {
	s, err := g.signature(ctx, c.Text, in)
	if err != nil {
		return err
	}
	writeViews(ctx.Stdout, s)
	return nil
}

// FingerprintCmd prints the fingerprint of a signature.
type FingerprintCmd struct {
	Text string `arg:"" optional:"" help:"Text to analyze"`
}

func (c *FingerprintCmd) Run(g *Globals, in io.Reader, ctx *kong.Context) error {
	s, err := g.signature(ctx, c.Text, in)
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.Stdout, s.Fingerprint())
	return nil
}

// BlockCmd prints the classification of each character.
type BlockCmd struct {
	Text string `arg:"" optional:"" help:"Text to analyze"`
}

func (c *BlockCmd) Run(g *Globals, in io.Reader, ctx *kong.Context) error {
	s, err := g.signature(ctx, c.Text, in)
	if err != nil {
		return err
	}
	for _, r := range s.Codepoints() {
		fmt.Fprintf(ctx.Stdout, "U+%04X\t%s\t%s\n", r, unisig.CategoryOf(r), unisig.BlockOf(r))
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(ctx *kong.Context) error {
	fmt.Fprintf(ctx.Stdout, "unisig version %s (blocks %s, categories %s)\n",
		version, unisig.BlockVersion, unisig.CategoryVersion)
	return nil
}

// writeViews prints one "name: value" line per view.
func writeViews(w io.Writer, s *unisig.Signature) {
	blocks := func(starts []rune) string {
		parts := make([]string, len(starts))
		for i, start := range starts {
			parts[i] = unisig.BlockToken(start).String()
		}
		return "[" + strings.Join(parts, " ") + "]"
	}

	runs := s.CompositeRuns()
	runParts := make([]string, len(runs))
	for i, run := range runs {
		runParts[i] = fmt.Sprintf("%d:%s=%d", run.Position, run.Token(), run.Len())
	}

	counts := s.CompositeCounts()
	countParts := make([]string, 0, len(counts))
	for token, n := range counts {
		countParts = append(countParts, fmt.Sprintf("%s=%d", token, n))
	}
	sort.Strings(countParts)

	fmt.Fprintf(w, "text: %q\n", s.Text())
	fmt.Fprintf(w, "length: %d\n", s.Len())
	fmt.Fprintf(w, "codepoints: %v\n", s.Codepoints())
	fmt.Fprintf(w, "codepoint_string: %s\n", s.CodepointString())
	fmt.Fprintf(w, "category_signature: %v\n", s.CategorySignature())
	fmt.Fprintf(w, "category_set: %v\n", s.CategorySet())
	fmt.Fprintf(w, "block_signature: %s\n", blocks(s.BlockSignature()))
	fmt.Fprintf(w, "block_label_signature: %q\n", s.BlockLabelSignature())
	fmt.Fprintf(w, "block_set: %s\n", blocks(s.BlockSet()))
	fmt.Fprintf(w, "composite_signature: %v\n", s.CompositeSignature())
	fmt.Fprintf(w, "composite_runs: [%s]\n", strings.Join(runParts, " "))
	fmt.Fprintf(w, "composite_counts: [%s]\n", strings.Join(countParts, " "))
	fmt.Fprintf(w, "punctuation_signature: %v\n", s.PunctuationSignature())
	fmt.Fprintf(w, "fingerprint: %s\n", s.Fingerprint())
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("unisig"),
		kong.Description("Unicode category and block signatures of text"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.BindTo(os.Stdin, (*io.Reader)(nil)),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
