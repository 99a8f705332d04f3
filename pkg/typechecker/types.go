package typechecker

import "touchgrass/interpreter-go/pkg/ast"

// Type is what the checker knows statically about a value.
type Type interface {
	Name() string
}

type PrimitiveKind string

const (
	PrimitiveNumber PrimitiveKind = "number"
	PrimitiveString PrimitiveKind = "string"
	PrimitiveBool   PrimitiveKind = "bool"
	PrimitiveNull   PrimitiveKind = "bugatti"
)

type PrimitiveType struct {
	Kind PrimitiveKind
}

func (p PrimitiveType) Name() string { return string(p.Kind) }

// UnknownType stands for a value whose kind depends on which branch ran.
type UnknownType struct{}

func (UnknownType) Name() string { return "unknown" }

var (
	numberType = PrimitiveType{Kind: PrimitiveNumber}
	stringType = PrimitiveType{Kind: PrimitiveString}
	boolType   = PrimitiveType{Kind: PrimitiveBool}
	nullType   = PrimitiveType{Kind: PrimitiveNull}
)

func isUnknownType(t Type) bool {
	if t == nil {
		return true
	}
	_, ok := t.(UnknownType)
	return ok
}

func typeName(t Type) string {
	if t == nil {
		return "unknown"
	}
	return t.Name()
}

// joinTypes merges the types a name may hold after control flow rejoins.
func joinTypes(a, b Type) Type {
	if isUnknownType(a) || isUnknownType(b) {
		return UnknownType{}
	}
	if a.Name() == b.Name() {
		return a
	}
	return UnknownType{}
}

// declaredType maps a declaration's type tag to a checker type.
func declaredType(decl *ast.VarDeclaration) Type {
	switch decl.DeclaredType {
	case "number":
		return numberType
	default:
		return UnknownType{}
	}
}
