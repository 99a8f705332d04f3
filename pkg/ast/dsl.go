package ast

// Program and statement helpers.

// Prog and Blk never hold a nil slice, matching what the parser builds.
func Prog(statements ...Statement) *Program {
	if statements == nil {
		statements = []Statement{}
	}
	return NewProgram(statements)
}

func Decl(name string, value Expression) *VarDeclaration {
	return NewVarDeclaration(name, "number", value)
}

func Set(name string, value Expression) *Assignment {
	return NewAssignment(name, value)
}

func Say(expr Expression) *Print {
	return NewPrint(expr)
}

func Blk(statements ...Statement) *Block {
	if statements == nil {
		statements = []Statement{}
	}
	return NewBlock(statements)
}

func IfThen(condition Expression, then *Block) *Conditional {
	return NewConditional(condition, then, nil)
}

func IfElse(condition Expression, then, els *Block) *Conditional {
	return NewConditional(condition, then, els)
}

func While(condition Expression, body *Block) *WhileLoop {
	return NewWhileLoop(condition, body)
}

// Expression helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Num(value int64) *NumberLiteral {
	return NewNumberLiteral(value)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Bool(value bool) *BooleanLiteral {
	return NewBooleanLiteral(value)
}

func Null() *NullLiteral {
	return NewNullLiteral()
}

func Bin(left Expression, op Operator, right Expression) *BinaryOp {
	return NewBinaryOp(left, op, right)
}
