package ast

type NodeType string

const (
	NodeProgram        NodeType = "Program"
	NodeVarDeclaration NodeType = "VarDeclaration"
	NodeAssignment     NodeType = "Assignment"
	NodeIdentifier     NodeType = "Identifier"
	NodeNumberLiteral  NodeType = "NumberLiteral"
	NodeStringLiteral  NodeType = "StringLiteral"
	NodeBooleanLiteral NodeType = "BooleanLiteral"
	NodeNullLiteral    NodeType = "NullLiteral"
	NodePrint          NodeType = "Print"
	NodeConditional    NodeType = "Conditional"
	NodeBlock          NodeType = "Block"
	NodeWhileLoop      NodeType = "WhileLoop"
	NodeBinaryOp       NodeType = "BinaryOp"
)

type Node interface {
	NodeType() NodeType
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

// Operator is the closed set of binary operators.
type Operator int

const (
	OpGreaterThan Operator = iota
	OpLessThan
	OpEquals
	OpPlus
	OpMinus
)

// Symbol returns the operator as written in source.
func (o Operator) Symbol() string {
	switch o {
	case OpGreaterThan:
		return ">"
	case OpLessThan:
		return "<"
	case OpEquals:
		return "="
	case OpPlus:
		return "+"
	case OpMinus:
		return "-"
	default:
		return "?"
	}
}

func (o Operator) String() string {
	switch o {
	case OpGreaterThan:
		return "GreaterThan"
	case OpLessThan:
		return "LessThan"
	case OpEquals:
		return "Equals"
	case OpPlus:
		return "Plus"
	case OpMinus:
		return "Minus"
	default:
		return "Unknown"
	}
}

// IsComparison reports whether the operator yields a boolean.
func (o Operator) IsComparison() bool {
	return o == OpGreaterThan || o == OpLessThan || o == OpEquals
}

// Program

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Statements

type VarDeclaration struct {
	nodeImpl
	statementMarker

	Name         string     `json:"name"`
	DeclaredType string     `json:"declaredType"`
	Value        Expression `json:"value"`
}

func NewVarDeclaration(name, declaredType string, value Expression) *VarDeclaration {
	return &VarDeclaration{nodeImpl: newNodeImpl(NodeVarDeclaration), Name: name, DeclaredType: declaredType, Value: value}
}

type Assignment struct {
	nodeImpl
	statementMarker

	Name  string     `json:"name"`
	Value Expression `json:"value"`
}

func NewAssignment(name string, value Expression) *Assignment {
	return &Assignment{nodeImpl: newNodeImpl(NodeAssignment), Name: name, Value: value}
}

type Print struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewPrint(expr Expression) *Print {
	return &Print{nodeImpl: newNodeImpl(NodePrint), Expression: expr}
}

type Block struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlock(statements []Statement) *Block {
	return &Block{nodeImpl: newNodeImpl(NodeBlock), Statements: statements}
}

// Conditional runs Then when Condition is true and Else (if any) when it is
// false.
type Conditional struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      *Block     `json:"then"`
	Else      *Block     `json:"else,omitempty"`
}

func NewConditional(condition Expression, then, els *Block) *Conditional {
	return &Conditional{nodeImpl: newNodeImpl(NodeConditional), Condition: condition, Then: then, Else: els}
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      *Block     `json:"body"`
}

func NewWhileLoop(condition Expression, body *Block) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

// Expressions

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

type NumberLiteral struct {
	nodeImpl
	expressionMarker

	Value int64 `json:"value"`
}

func NewNumberLiteral(value int64) *NumberLiteral {
	return &NumberLiteral{nodeImpl: newNodeImpl(NodeNumberLiteral), Value: value}
}

type StringLiteral struct {
	nodeImpl
	expressionMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

type BooleanLiteral struct {
	nodeImpl
	expressionMarker

	Value bool `json:"value"`
}

func NewBooleanLiteral(value bool) *BooleanLiteral {
	return &BooleanLiteral{nodeImpl: newNodeImpl(NodeBooleanLiteral), Value: value}
}

// NullLiteral is the `bugatti` keyword.
type NullLiteral struct {
	nodeImpl
	expressionMarker
}

func NewNullLiteral() *NullLiteral {
	return &NullLiteral{nodeImpl: newNodeImpl(NodeNullLiteral)}
}

type BinaryOp struct {
	nodeImpl
	expressionMarker

	Left     Expression `json:"left"`
	Operator Operator   `json:"operator"`
	Right    Expression `json:"right"`
}

func NewBinaryOp(left Expression, operator Operator, right Expression) *BinaryOp {
	return &BinaryOp{nodeImpl: newNodeImpl(NodeBinaryOp), Left: left, Operator: operator, Right: right}
}
