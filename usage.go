package clargs

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/mfridman/clargs/pkg/textutil"
)

const (
	// DefaultKeysWidth is the width of the key names column used by [Parser.Description].
	DefaultKeysWidth = 38
	// DefaultDescriptionWidth is the width of the description column used by
	// [Parser.Description].
	DefaultDescriptionWidth = 40

	// columnGap separates the key names column from the description column.
	columnGap = 2
	helpWidth = 80
)

// KeyDescription is the help entry of one registered argument.
type KeyDescription struct {
	// KeyNames is the rendered key column, e.g. "  -o, --output=VALUE".
	KeyNames string
	// Description is the description given at registration, unformatted.
	Description string
}

// KeyDescriptions returns the help entries of all registered arguments in registration order.
func (p *Parser) KeyDescriptions() []KeyDescription {
	return slices.Clone(p.keyDescriptions)
}

// Description formats the registered arguments with [DefaultKeysWidth] and
// [DefaultDescriptionWidth].
func (p *Parser) Description() string {
	return FormatKeyDescriptions(p.keyDescriptions, DefaultKeysWidth, DefaultDescriptionWidth)
}

// DescriptionWidth formats the registered arguments in two columns, keysWidth characters for key
// names and width characters for descriptions. See [FormatKeyDescriptions].
func (p *Parser) DescriptionWidth(keysWidth, width int) string {
	return FormatKeyDescriptions(p.keyDescriptions, keysWidth, width)
}

// FormatKeyDescriptions renders descs one after another, each description word-wrapped to width
// and indented to start two characters after the key names column. Key names longer than
// keysWidth push their description to the next line.
func FormatKeyDescriptions(descs []KeyDescription, keysWidth, width int) string {
	var b strings.Builder
	indentation := strings.Repeat(" ", keysWidth+columnGap)

	for _, d := range descs {
		lines := textutil.Wrap(d.Description, width)
		if len(lines) == 0 {
			b.WriteString(d.KeyNames)
			b.WriteRune('\n')
			continue
		}

		if utf8.RuneCountInString(d.KeyNames) > keysWidth {
			b.WriteString(d.KeyNames)
			b.WriteRune('\n')
			b.WriteString(indentation)
		} else {
			b.WriteString(textutil.PadRight(d.KeyNames, keysWidth+columnGap))
		}
		b.WriteString(lines[0])
		b.WriteRune('\n')

		for _, line := range lines[1:] {
			b.WriteString(indentation)
			b.WriteString(line)
			b.WriteRune('\n')
		}
	}
	return b.String()
}

// Help returns the full help text: ShortHelp, Usage and the argument descriptions.
func (p *Parser) Help() string {
	return p.help(DefaultDescriptionWidth)
}

func (p *Parser) help(width int) string {
	var b strings.Builder

	if p.ShortHelp != "" {
		for _, line := range textutil.Wrap(p.ShortHelp, helpWidth) {
			b.WriteString(line)
			b.WriteRune('\n')
		}
		b.WriteRune('\n')
	}

	if p.Usage != "" {
		b.WriteString("Usage:\n  ")
		b.WriteString(p.Usage)
		b.WriteString("\n\n")
	}

	if len(p.keyDescriptions) > 0 {
		b.WriteString("Options:\n")
		b.WriteString(FormatKeyDescriptions(p.keyDescriptions, DefaultKeysWidth, width))
	}

	return strings.TrimRight(b.String(), "\n")
}

// keyNames renders the key column of a help entry.
func keyNames(short rune, long string, kind argumentKind) string {
	var b strings.Builder
	b.WriteString("  ")

	if short != 0 {
		b.WriteRune('-')
		b.WriteRune(short)
		if kind != booleanOnly && long == "" {
			b.WriteString(" VALUE")
		}
	}

	if long != "" || short == 0 {
		if short != 0 {
			b.WriteString(", ")
		} else {
			b.WriteString("    ")
		}
		b.WriteString(longKeyPrefix)
		b.WriteString(long)
		switch kind {
		case valueOnly:
			b.WriteString("=VALUE")
		case valueWithDefault:
			b.WriteString("[=VALUE]")
		}
	}
	return b.String()
}
