// Package clargs parses command-line arguments by calling handlers registered for each key.
//
// Arguments are registered on a [Parser] with a one-letter short key, a long key, or both, and a
// handler. [Parser.Parse] walks the command line once, calls the handler of every key it meets and
// returns the remaining non-key arguments:
//
//	var p clargs.Parser
//	verbose := false
//	output := ""
//	_ = p.AddBool('v', "verbose", "print more", func() error { verbose = true; return nil })
//	_ = p.AddValue('o', "output", "output file", func(v string) error { output = v; return nil })
//	args, err := p.Parse(os.Args[1:])
//
// The following forms are recognized:
//
//	--key          boolean argument, or the default of an optional value argument
//	--key=value    value argument; the value may be empty
//	--             disables key parsing for the remaining arguments (see [Parser.HandleDoubleDash])
//	-x             short boolean or value argument
//	-xyz           several short boolean arguments, the last one may take the rest as its value
//	-x value       short value argument taking the next argument as its value
//
// Anything else is a non-key argument. It is returned by Parse, passed to the non-key handler,
// or, with a subcommand handler registered, hands the rest of the command line over to a
// subcommand.
//
// The parser does not interpret values; converting and validating them is up to the handlers,
// which may return an error to stop parsing.
package clargs
