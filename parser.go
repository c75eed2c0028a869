package clargs

import (
	"fmt"
	"strings"
)

// ValueHandler receives the value of a value argument. The value may be empty, e.g. for
// "--key=". Returning an error stops parsing.
type ValueHandler func(value string) error

// BoolHandler is called when a boolean argument is present on the command line. For an argument
// registered with [Parser.AddOptionalValue] it is called when the key is given without a value.
type BoolHandler func() error

// SubcommandHandler receives the subcommand name and all arguments following it. It typically
// creates a new [Parser] for the subcommand and parses args with it.
type SubcommandHandler func(name string, args []string) error

// Parser holds registered arguments with their handlers and parses command lines against them. The
// zero value is ready to use. A Parser is not safe for concurrent use.
type Parser struct {
	// Usage is the usage pattern shown by [Parser.Help].
	//
	// Example: "task [options] <command>"
	Usage string

	// ShortHelp is a brief description of the program, shown at the top of [Parser.Help].
	ShortHelp string

	keyParsingDisabled bool
	stopRequested      bool

	// arguments with a long key, keyed by that key.
	arguments map[string]*argument
	// arguments with a short key only.
	shortArguments map[rune]*argument
	shortToLong    map[rune]string

	keyDescriptions []KeyDescription

	nonKeyHandler     func(string) error
	subcommandHandler SubcommandHandler
}

type argumentKind int

const (
	valueOnly argumentKind = iota
	booleanOnly
	valueWithDefault
)

type argument struct {
	kind    argumentKind
	value   ValueHandler
	boolean BoolHandler
}

// AddValue registers an argument that takes a value. Either short or long may be empty (0 for
// short), but not both.
//
// The value can be given as "--long=VALUE", "-sVALUE" or "-s VALUE".
func (p *Parser) AddValue(short rune, long, description string, h ValueHandler) error {
	if h == nil {
		return newError(ErrConfiguration, nil, "value handler is nil")
	}
	return p.add(short, long, description, &argument{kind: valueOnly, value: h})
}

// AddBool registers an argument that takes no value, given as "--long" or "-s". Either short or
// long may be empty (0 for short), but not both.
func (p *Parser) AddBool(short rune, long, description string, h BoolHandler) error {
	if h == nil {
		return newError(ErrConfiguration, nil, "boolean handler is nil")
	}
	return p.add(short, long, description, &argument{kind: booleanOnly, boolean: h})
}

// AddOptionalValue registers a long key argument whose value is optional. "--long=VALUE" calls h
// with the value and a bare "--long" calls def.
//
// An empty long key is accepted here: it overrides the default handling of "--", which then calls
// def, while "--=VALUE" calls h.
func (p *Parser) AddOptionalValue(long, description string, h ValueHandler, def BoolHandler) error {
	if h == nil || def == nil {
		return newError(ErrConfiguration, nil, "optional value argument needs both a value and a default handler")
	}
	arg := &argument{kind: valueWithDefault, value: h, boolean: def}
	if long == "" {
		return p.addLong("", description, arg)
	}
	return p.add(0, long, description, arg)
}

// HandleDoubleDash overrides the default handling of "--". By default "--" disables key parsing for
// the remaining arguments; with a handler registered, "--" calls h instead and key parsing stays
// enabled unless h disables it. It is registered as the argument with an empty long key.
func (p *Parser) HandleDoubleDash(description string, h BoolHandler) error {
	if h == nil {
		return newError(ErrConfiguration, nil, "boolean handler is nil")
	}
	return p.addLong("", description, &argument{kind: booleanOnly, boolean: h})
}

// SetNonKeyHandler registers the handler that receives every non-key argument. Arguments passed to
// it are not returned by [Parser.Parse]. It can be registered only once.
func (p *Parser) SetNonKeyHandler(h func(arg string) error) error {
	if h == nil {
		return newError(ErrConfiguration, nil, "non-key handler is nil")
	}
	if p.nonKeyHandler != nil {
		return newError(ErrDuplicateHandler, nil, "non-key handler is already set")
	}
	p.nonKeyHandler = h
	return nil
}

// SetSubcommandHandler registers the handler that takes over on the first non-key argument while
// key parsing is enabled. It has priority over the non-key handler. It can be registered only
// once.
func (p *Parser) SetSubcommandHandler(h SubcommandHandler) error {
	if h == nil {
		return newError(ErrConfiguration, nil, "subcommand handler is nil")
	}
	if p.subcommandHandler != nil {
		return newError(ErrDuplicateHandler, nil, "subcommand handler is already set")
	}
	p.subcommandHandler = h
	return nil
}

// EnableKeyParsing turns key parsing on or off. While it is off every argument is treated as a
// non-key argument. It is safe to call from a handler; the change applies from the next argument.
func (p *Parser) EnableKeyParsing(enable bool) {
	p.keyParsingDisabled = !enable
}

// KeyParsingEnabled reports whether key parsing is enabled.
func (p *Parser) KeyParsingEnabled() bool {
	return !p.keyParsingDisabled
}

// Stop makes the running parse return before the next argument, as if the command line ended
// there. Handlers already called keep their effects.
func (p *Parser) Stop() {
	p.stopRequested = true
}

func (p *Parser) init() {
	if p.arguments == nil {
		p.arguments = make(map[string]*argument)
	}
	if p.shortArguments == nil {
		p.shortArguments = make(map[rune]*argument)
	}
	if p.shortToLong == nil {
		p.shortToLong = make(map[rune]string)
	}
}

// add registers arg under its keys. Either all of the registry, the alias map and the description
// list are updated or none of them.
func (p *Parser) add(short rune, long, description string, arg *argument) (retErr error) {
	if short == 0 && long == "" {
		return newError(ErrConfiguration, nil, "both short and long key names are empty")
	}
	if strings.HasPrefix(long, "-") || strings.Contains(long, "=") {
		return newError(ErrConfiguration, nil, "long key %q must not start with '-' or contain '='", long)
	}
	if short == '-' {
		return newError(ErrConfiguration, nil, "short key '-' is not allowed")
	}
	p.init()

	var undo []func()
	defer func() {
		if retErr != nil {
			for i := len(undo) - 1; i >= 0; i-- {
				undo[i]()
			}
		}
	}()

	n := len(p.keyDescriptions)
	p.keyDescriptions = append(p.keyDescriptions, KeyDescription{
		KeyNames:    keyNames(short, long, arg.kind),
		Description: description,
	})
	undo = append(undo, func() { p.keyDescriptions = p.keyDescriptions[:n] })

	if long == "" {
		if p.shortKeyTaken(short) {
			return duplicateShortKey(short)
		}
		p.shortArguments[short] = arg
		return nil
	}

	if _, exists := p.arguments[long]; exists {
		return newError(ErrDuplicateKey, nil, "argument with long key '%s' already exists", long)
	}
	p.arguments[long] = arg
	undo = append(undo, func() { delete(p.arguments, long) })

	if short != 0 {
		if p.shortKeyTaken(short) {
			return duplicateShortKey(short)
		}
		p.shortToLong[short] = long
	}
	return nil
}

// addLong registers arg under a long key without validating the key name, which allows the empty
// key that overrides "--". It has a single step, so nothing needs to be rolled back.
func (p *Parser) addLong(long, description string, arg *argument) error {
	p.init()
	if _, exists := p.arguments[long]; exists {
		return newError(ErrDuplicateKey, nil, "argument with long key '%s' already exists", long)
	}
	p.arguments[long] = arg
	p.keyDescriptions = append(p.keyDescriptions, KeyDescription{
		KeyNames:    keyNames(0, long, arg.kind),
		Description: description,
	})
	return nil
}

func (p *Parser) shortKeyTaken(short rune) bool {
	if _, ok := p.shortToLong[short]; ok {
		return true
	}
	_, ok := p.shortArguments[short]
	return ok
}

// lookupShort resolves a short key through the alias map first, then among short-only arguments.
func (p *Parser) lookupShort(short rune) *argument {
	if long, ok := p.shortToLong[short]; ok {
		return p.arguments[long]
	}
	return p.shortArguments[short]
}

func duplicateShortKey(short rune) error {
	return newError(ErrDuplicateKey, nil, "argument with short key '%c' already exists", short)
}

func newError(code ErrorCode, suggestions []string, format string, args ...any) *Error {
	return &Error{
		code:        code,
		err:         fmt.Errorf(format, args...),
		suggestions: suggestions,
	}
}
