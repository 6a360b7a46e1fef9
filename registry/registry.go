package registry

import (
	"errors"
	"fmt"
	"sync"

	"github.com/signadot/objectgraph/object"
)

// Sentinel errors surfaced by lookups, matching the spec's encode/decode
// error taxonomy (§7). Wrap with fmt.Errorf("%w: ...") so callers can
// errors.Is against these.
var (
	ErrUnknownPrototype = errors.New("registry: unknown prototype")
	ErrUnknownFunction  = errors.New("registry: unknown function")
	ErrUnknownSymbol    = errors.New("registry: unknown symbol")
	ErrIndexOutOfRange  = errors.New("registry: index out of range")
)

// Config is the positional table supplied at construction. All three
// fields default to empty when omitted, per §6.
type Config struct {
	Prototypes []*object.Class
	Functions  []*object.Func
	Symbols    []*object.Symbol
}

// Registry is the peer-shared configuration of §4.1: ordered tables of
// prototypes, functions, and symbols, looked up by identity (or, for
// functions, by source-text equivalence) during encode and by index
// during decode.
//
// Grounded on the teacher's schema.ContextRegistry: a mutex-guarded set
// of positional/named tables with conflict-checked registration. Lookups
// never need the mutex's write side; it exists for RegisterPrototype and
// friends, which most callers never use because the common case builds
// the whole table once via New.
type Registry struct {
	mu sync.RWMutex

	prototypes []*object.Class
	functions  []*object.Func
	symbols    []*object.Symbol
}

// New builds a Registry from cfg. The returned Registry copies cfg's
// slices, so later mutation of cfg does not affect it.
func New(cfg Config) *Registry {
	r := &Registry{
		prototypes: append([]*object.Class(nil), cfg.Prototypes...),
		functions:  append([]*object.Func(nil), cfg.Functions...),
		symbols:    append([]*object.Symbol(nil), cfg.Symbols...),
	}
	return r
}

// RegisterPrototype appends a class to the prototype table, returning
// its index. Used by callers that build a registry incrementally rather
// than via a single Config; ordinary marshal/unmarshal peers should
// prefer New so both sides agree on index order up front.
func (r *Registry) RegisterPrototype(c *object.Class) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prototypes = append(r.prototypes, c)
	return len(r.prototypes) - 1
}

// RegisterFunction appends a function to the function table, returning
// its index.
func (r *Registry) RegisterFunction(f *object.Func) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.functions = append(r.functions, f)
	return len(r.functions) - 1
}

// RegisterSymbol appends a symbol to the symbol table, returning its
// index.
func (r *Registry) RegisterSymbol(s *object.Symbol) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.symbols = append(r.symbols, s)
	return len(r.symbols) - 1
}

// PrototypeOf looks up obj's class in the registry. isPlain is true when
// obj has no registered class (Proto == nil), in which case index is
// meaningless. Otherwise index is obj's class's position in the table,
// or err is ErrUnknownPrototype if obj's class was never registered.
func (r *Registry) PrototypeOf(obj *object.Object) (index int, isPlain bool, err error) {
	if obj.Proto == nil {
		return 0, true, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, c := range r.prototypes {
		if c == obj.Proto {
			return i, false, nil
		}
	}
	return 0, false, fmt.Errorf("%w: class %q", ErrUnknownPrototype, obj.Proto.Name)
}

// FunctionIndex looks up f's position in the function table, matching
// either by pointer identity or by source-text equality (the spec's
// function-equivalence rule), so two independently-constructed
// registries sharing source can still interoperate.
func (r *Registry) FunctionIndex(f *object.Func) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, candidate := range r.functions {
		if candidate == f {
			return i, nil
		}
	}
	if f.Source != "" {
		for i, candidate := range r.functions {
			if candidate.Source == f.Source {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFunction, f.Name)
}

// SymbolIndex looks up s's position in the symbol table by identity only.
func (r *Registry) SymbolIndex(s *object.Symbol) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i, candidate := range r.symbols {
		if candidate == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, s.Name)
}

// PrototypeAt resolves a decode-time class index back to its Class.
func (r *Registry) PrototypeAt(index int) (*object.Class, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.prototypes) {
		return nil, fmt.Errorf("%w: prototype index %d (table has %d entries)", ErrIndexOutOfRange, index, len(r.prototypes))
	}
	return r.prototypes[index], nil
}

// FunctionAt resolves a decode-time function index back to its Func.
func (r *Registry) FunctionAt(index int) (*object.Func, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.functions) {
		return nil, fmt.Errorf("%w: function index %d (table has %d entries)", ErrIndexOutOfRange, index, len(r.functions))
	}
	return r.functions[index], nil
}

// SymbolAt resolves a decode-time symbol index back to its Symbol.
func (r *Registry) SymbolAt(index int) (*object.Symbol, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if index < 0 || index >= len(r.symbols) {
		return nil, fmt.Errorf("%w: symbol index %d (table has %d entries)", ErrIndexOutOfRange, index, len(r.symbols))
	}
	return r.symbols[index], nil
}

// PrototypeCount, FunctionCount and SymbolCount report table lengths,
// useful for a caller that wants to assert two registries are the same
// shape before trusting a decode.
func (r *Registry) PrototypeCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.prototypes)
}

func (r *Registry) FunctionCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.functions)
}

func (r *Registry) SymbolCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.symbols)
}
