package typechecker

// Environment mirrors the interpreter's single flat scope: it holds every
// name the checker has seen declared so far.
type Environment struct {
	symbols map[string]Type
}

func NewEnvironment() *Environment {
	return &Environment{symbols: make(map[string]Type)}
}

// Define binds a name to a type, replacing any earlier binding.
func (e *Environment) Define(name string, typ Type) {
	e.symbols[name] = typ
}

// Lookup reports the type bound to name.
func (e *Environment) Lookup(name string) (Type, bool) {
	typ, ok := e.symbols[name]
	return typ, ok
}

// Clone copies the bindings so a branch can be checked in isolation.
func (e *Environment) Clone() *Environment {
	out := NewEnvironment()
	for name, typ := range e.symbols {
		out.symbols[name] = typ
	}
	return out
}

// Merge folds the bindings of other into e. Names bound on only one side
// stay visible because a later statement may run after either path.
func (e *Environment) Merge(other *Environment) {
	for name, typ := range other.symbols {
		if existing, ok := e.symbols[name]; ok {
			e.symbols[name] = joinTypes(existing, typ)
			continue
		}
		e.symbols[name] = typ
	}
}
