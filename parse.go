package clargs

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mfridman/clargs/pkg/suggest"
)

const (
	longKeyPrefix = "--"
	// shortKeyTokenSize is the minimum size of a short key token, e.g. "-a".
	shortKeyTokenSize = 2

	maxSuggestions = 3
)

// Parse parses args and calls the handlers of the arguments it finds. It returns the non-key
// arguments in the order they were given, unless a non-key handler is set, in which case they are
// passed to it instead.
//
// args must not include the program name; pass os.Args[1:]. See [Parser.ParseArgv] for the full
// argument vector.
//
// Parsing stops at the first error, whether it comes from the command line or from a handler.
// Handlers called before the error keep their effects.
func (p *Parser) Parse(args []string) ([]string, error) {
	var leftovers []string
	err := p.parse(args, func(arg string) error {
		leftovers = append(leftovers, arg)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return leftovers, nil
}

// ParseArgv is like [Parser.Parse] but takes the full argument vector, typically os.Args. The
// first element is the program name and is skipped.
func (p *Parser) ParseArgv(argv []string) ([]string, error) {
	if len(argv) == 0 {
		return nil, nil
	}
	return p.Parse(argv[1:])
}

// ParseFunc is like [Parser.Parse] but passes non-key arguments to sink instead of returning
// them. A non-key handler registered with [Parser.SetNonKeyHandler] takes precedence over sink.
func (p *Parser) ParseFunc(args []string, sink func(arg string) error) error {
	if sink == nil {
		return newError(ErrConfiguration, nil, "non-key argument sink is nil")
	}
	return p.parse(args, sink)
}

func (p *Parser) parse(args []string, sink func(string) error) error {
	p.stopRequested = false

	for i := 0; i < len(args); i++ {
		if p.stopRequested {
			return nil
		}
		arg := args[i]

		switch {
		case p.KeyParsingEnabled() && strings.HasPrefix(arg, longKeyPrefix):
			if err := p.parseLongKey(arg); err != nil {
				return err
			}
		case p.KeyParsingEnabled() && len(arg) >= shortKeyTokenSize && arg[0] == '-':
			pending, err := p.parseShortKeyBatch(arg)
			if err != nil {
				return err
			}
			if pending == nil {
				continue
			}
			// The value is the next argument.
			i++
			if i == len(args) {
				last, _ := utf8.DecodeLastRuneInString(arg)
				return newError(ErrMissingValue, nil, "argument '%c' requires value", last)
			}
			if err := pending(args[i]); err != nil {
				return err
			}
		case p.KeyParsingEnabled() && p.subcommandHandler != nil:
			if err := p.subcommandHandler(arg, args[i+1:]); err != nil {
				return fmt.Errorf("%s: %w", arg, err)
			}
			return nil
		case p.nonKeyHandler != nil:
			if err := p.nonKeyHandler(arg); err != nil {
				return err
			}
		default:
			if err := sink(arg); err != nil {
				return err
			}
		}
	}
	return nil
}

// parseLongKey handles "--KEY" and "--KEY=VALUE".
func (p *Parser) parseLongKey(arg string) error {
	body := arg[len(longKeyPrefix):]

	if key, value, ok := strings.Cut(body, "="); ok {
		a, found := p.arguments[key]
		if !found {
			return p.unknownArgument(arg, key)
		}
		if a.value == nil {
			return newError(ErrUnexpectedValue, nil, "key argument '%s' is a boolean argument and cannot have value", key)
		}
		return callValue(a.value, longKeyPrefix+key, value)
	}

	if a, found := p.arguments[body]; found {
		if a.boolean == nil {
			return newError(ErrMissingValue, nil, "key argument '%s' requires value", body)
		}
		return callBool(a.boolean, arg)
	}
	if arg == longKeyPrefix {
		// "--" disables key parsing unless an empty long key was registered.
		p.EnableKeyParsing(false)
		return nil
	}
	return p.unknownArgument(arg, body)
}

// parseShortKeyBatch handles "-a", "-abc" and "-abcVALUE". Boolean keys are consumed until the
// first value key, which takes the rest of the token as its value. If nothing is left in the token
// the value key's handler is returned so the caller can feed it the next argument.
func (p *Parser) parseShortKeyBatch(arg string) (ValueHandler, error) {
	for i := 1; i < len(arg); {
		key, size := utf8.DecodeRuneInString(arg[i:])
		i += size

		a := p.lookupShort(key)
		if a == nil {
			return nil, newError(ErrUnknownArgument, nil, "unknown argument: %s", arg)
		}
		name := "-" + string(key)

		if a.kind == valueOnly {
			if i == len(arg) {
				return func(value string) error {
					return callValue(a.value, name, value)
				}, nil
			}
			return nil, callValue(a.value, name, arg[i:])
		}
		if err := callBool(a.boolean, name); err != nil {
			return nil, err
		}
	}
	return nil, nil
}

func (p *Parser) unknownArgument(arg, key string) error {
	known := make([]string, 0, len(p.arguments))
	for long := range p.arguments {
		if long != "" {
			known = append(known, long)
		}
	}
	suggestions := suggest.FindSimilar(key, known, maxSuggestions)
	for i, s := range suggestions {
		suggestions[i] = longKeyPrefix + s
	}
	return newError(ErrUnknownArgument, suggestions, "unknown argument: %s", arg)
}

func callValue(h ValueHandler, name, value string) error {
	if err := h(value); err != nil {
		return fmt.Errorf("argument '%s': %w", name, err)
	}
	return nil
}

func callBool(h BoolHandler, name string) error {
	if err := h(); err != nil {
		return fmt.Errorf("argument '%s': %w", name, err)
	}
	return nil
}
