// Package symbols resolves the mediator and pipeline declarations a package
// depends on and classifies the types it declares. Every lint rule requires
// its Analyzer.
package symbols

import (
	"flag"
	"go/ast"
	"go/types"
	"reflect"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// Default import paths of the dispatch core and the extension layer.
const (
	DefaultMediatorPath = "github.com/louisbranch/mediatr/mediator"
	DefaultPipelinePath = "github.com/louisbranch/mediatr/pipeline"
)

var (
	mediatorPath = DefaultMediatorPath
	pipelinePath = DefaultPipelinePath
)

// Analyzer computes the *Symbols of a package.
var Analyzer = &analysis.Analyzer{
	Name:       "mediatorsym",
	Doc:        "resolve mediator declarations and classify the types of a package",
	Requires:   []*analysis.Analyzer{inspect.Analyzer},
	Run:        run,
	ResultType: reflect.TypeFor[*Symbols](),
}

func init() {
	Analyzer.Flags.StringVar(&mediatorPath, "mediator", DefaultMediatorPath, "import path of the mediator package")
	Analyzer.Flags.StringVar(&pipelinePath, "pipeline", DefaultPipelinePath, "import path of the pipeline package")
}

// RegisterFlags defines the Analyzer flags on fs, prefixed with the analyzer
// name. Drivers only expose flags of the analyzers they are given, and
// Analyzer is never one of them.
func RegisterFlags(fs *flag.FlagSet) {
	Analyzer.Flags.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, Analyzer.Name+"."+f.Name, f.Usage)
	})
}

// Kind classifies a declared type. A type may be several kinds at once.
type Kind uint8

const (
	Request Kind = 1 << iota
	StreamRequest
	Notification
	RequestHandler
	StreamRequestHandler
	NotificationHandler
)

// Has reports whether k includes every kind of other.
func (k Kind) Has(other Kind) bool {
	return k&other == other
}

// Type is a named type declared in the analyzed package that plays at least
// one mediator role.
type Type struct {
	Obj   *types.TypeName
	Ident *ast.Ident
	Kind  Kind
}

// Symbols is the result of Analyzer. Mediator is nil when the analyzed
// package does not depend on the mediator package; rules are silent then.
type Symbols struct {
	Mediator *types.Package
	Pipeline *types.Package

	baseRequest       *types.Interface
	baseStreamRequest *types.Interface
	notification      *types.Interface
	unit              types.Type

	requestHandler      *types.Named
	streamHandler       *types.Named
	notificationHandler *types.Named

	// Types lists the classified types in declaration order.
	Types  []Type
	byName map[*types.TypeName]Kind
}

// KindOf returns the kind of a type declared in the analyzed package.
func (s *Symbols) KindOf(obj *types.TypeName) Kind {
	return s.byName[obj]
}

// InMediatorLayer reports whether pkg is the mediator or pipeline package,
// which implement the APIs the rules steer users towards.
func (s *Symbols) InMediatorLayer(pkg *types.Package) bool {
	return pkg.Path() == mediatorPath || pkg.Path() == pipelinePath
}

func run(pass *analysis.Pass) (any, error) {
	syms := &Symbols{byName: map[*types.TypeName]Kind{}}
	syms.Mediator = findPackage(pass.Pkg, mediatorPath)
	if syms.Mediator == nil {
		return syms, nil
	}
	syms.Pipeline = findPackage(pass.Pkg, pipelinePath)
	if !syms.resolve() {
		syms.Mediator = nil
		return syms, nil
	}

	insp := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	insp.Preorder([]ast.Node{(*ast.TypeSpec)(nil)}, func(n ast.Node) {
		spec := n.(*ast.TypeSpec)
		if spec.Assign.IsValid() || spec.TypeParams != nil {
			return
		}
		obj, ok := pass.TypesInfo.Defs[spec.Name].(*types.TypeName)
		if !ok {
			return
		}
		if kind := syms.classify(obj); kind != 0 {
			syms.Types = append(syms.Types, Type{Obj: obj, Ident: spec.Name, Kind: kind})
			syms.byName[obj] = kind
		}
	})
	return syms, nil
}

// findPackage returns pkg or the transitive import of pkg with the given path.
func findPackage(pkg *types.Package, path string) *types.Package {
	seen := map[*types.Package]bool{}
	var walk func(*types.Package) *types.Package
	walk = func(p *types.Package) *types.Package {
		if seen[p] {
			return nil
		}
		seen[p] = true
		if p.Path() == path {
			return p
		}
		for _, imp := range p.Imports() {
			if found := walk(imp); found != nil {
				return found
			}
		}
		return nil
	}
	return walk(pkg)
}

func (s *Symbols) resolve() bool {
	var ok bool
	if s.baseRequest, ok = lookupInterface(s.Mediator, "BaseRequest"); !ok {
		return false
	}
	if s.baseStreamRequest, ok = lookupInterface(s.Mediator, "BaseStreamRequest"); !ok {
		return false
	}
	if s.notification, ok = lookupInterface(s.Mediator, "Notification"); !ok {
		return false
	}
	unit, ok := s.Mediator.Scope().Lookup("Unit").(*types.TypeName)
	if !ok {
		return false
	}
	s.unit = unit.Type()
	if s.requestHandler, ok = lookupGeneric(s.Mediator, "RequestHandler", 2); !ok {
		return false
	}
	if s.streamHandler, ok = lookupGeneric(s.Mediator, "StreamRequestHandler", 2); !ok {
		return false
	}
	if s.notificationHandler, ok = lookupGeneric(s.Mediator, "NotificationHandler", 1); !ok {
		return false
	}
	return true
}

func lookupInterface(pkg *types.Package, name string) (*types.Interface, bool) {
	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}
	iface, ok := obj.Type().Underlying().(*types.Interface)
	return iface, ok
}

func lookupGeneric(pkg *types.Package, name string, arity int) (*types.Named, bool) {
	obj, ok := pkg.Scope().Lookup(name).(*types.TypeName)
	if !ok {
		return nil, false
	}
	named, ok := obj.Type().(*types.Named)
	if !ok || named.TypeParams().Len() != arity {
		return nil, false
	}
	return named, true
}

func (s *Symbols) classify(obj *types.TypeName) Kind {
	named, ok := obj.Type().(*types.Named)
	if !ok {
		return 0
	}
	if _, isIface := named.Underlying().(*types.Interface); isIface {
		return 0
	}

	var kind Kind
	if implements(named, s.baseRequest) {
		kind |= Request
	}
	if implements(named, s.baseStreamRequest) {
		kind |= StreamRequest
	}
	if implements(named, s.notification) {
		kind |= Notification
	}
	kind |= s.handlerKind(named)
	return kind
}

func implements(t types.Type, iface *types.Interface) bool {
	return types.Implements(t, iface) || types.Implements(types.NewPointer(t), iface)
}

// handlerKind instantiates the handler interfaces with the types of the
// Handle method of t and reports which ones t implements.
func (s *Symbols) handlerKind(t *types.Named) Kind {
	handle, _, _ := types.LookupFieldOrMethod(types.NewPointer(t), false, nil, "Handle")
	fn, ok := handle.(*types.Func)
	if !ok {
		return 0
	}
	sig := fn.Type().(*types.Signature)
	if sig.Params().Len() != 2 {
		return 0
	}
	request := sig.Params().At(1).Type()

	switch sig.Results().Len() {
	case 1:
		result, _ := sig.Results().At(0).Type().(*types.Named)
		if result != nil && isIterSeq2(result) {
			if s.instanceImplements(t, s.streamHandler, request, result.TypeArgs().At(0)) {
				return StreamRequestHandler
			}
			return 0
		}
		if s.instanceImplements(t, s.notificationHandler, request) {
			return NotificationHandler
		}
	case 2:
		if s.instanceImplements(t, s.requestHandler, request, sig.Results().At(0).Type()) {
			return RequestHandler
		}
	}
	return 0
}

func isIterSeq2(t *types.Named) bool {
	obj := t.Origin().Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == "iter" && obj.Name() == "Seq2" && t.TypeArgs().Len() == 2
}

func (s *Symbols) instanceImplements(t types.Type, generic *types.Named, args ...types.Type) bool {
	inst, err := types.Instantiate(nil, generic, args, true)
	if err != nil {
		return false
	}
	iface, ok := inst.Underlying().(*types.Interface)
	if !ok {
		return false
	}
	return implements(t, iface)
}

// IsQuery reports whether t is a request answered with something other than
// Unit. t may be a concrete type or a Request instance.
func (s *Symbols) IsQuery(t types.Type) bool {
	if s.Mediator == nil || t == nil {
		return false
	}
	obj, _, _ := types.LookupFieldOrMethod(t, true, s.Mediator, "response")
	fn, ok := obj.(*types.Func)
	if !ok {
		return false
	}
	results := fn.Type().(*types.Signature).Results()
	if results.Len() != 1 {
		return false
	}
	return !types.Identical(results.At(0).Type(), s.unit)
}
