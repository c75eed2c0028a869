package clargs

import "flag"

// AddFlagSet registers every flag defined in fs as a long key argument with the flag's name and
// usage. Values are stored with fs.Set, so fs.Visit and fs.Lookup see them as set.
//
// Boolean flags (those whose Value has an IsBoolFlag method returning true) accept an optional
// value: "--name" sets them to true and "--name=false" to false. All other flags require a value,
// given as "--name=VALUE".
//
// Flags are added in lexicographical order. If one of them fails to register, the ones before it
// stay registered.
func (p *Parser) AddFlagSet(fs *flag.FlagSet) error {
	var err error
	fs.VisitAll(func(f *flag.Flag) {
		if err != nil {
			return
		}
		name := f.Name
		set := func(value string) error {
			return fs.Set(name, value)
		}
		if isBoolFlag(f.Value) {
			err = p.AddOptionalValue(name, f.Usage, set, func() error {
				return fs.Set(name, "true")
			})
			return
		}
		err = p.AddValue(0, name, f.Usage, set)
	})
	return err
}

func isBoolFlag(v flag.Value) bool {
	b, ok := v.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
