// Package nodes defines the AST produced from a project export. Every node
// is built exactly once, bottom-up, and is immutable afterwards.
package nodes

// Kind identifies the variant of a Node.
type Kind string

const (
	KindNullLiteral      Kind = "NullLiteral"
	KindStringLiteral    Kind = "StringLiteral"
	KindNumericLiteral   Kind = "NumericLiteral"
	KindBooleanLiteral   Kind = "BooleanLiteral"
	KindVariable         Kind = "Variable"
	KindField            Kind = "Field"
	KindIndex            Kind = "Index"
	KindBinaryExpression Kind = "BinaryExpression"
	KindUnaryExpression  Kind = "UnaryExpression"
	KindParenthesis      Kind = "Parenthesis"
	KindList             Kind = "List"
	KindDict             Kind = "Dict"
	KindTemplate         Kind = "Template"
	KindAssign           Kind = "Assign"
	KindArgument         Kind = "Argument"
	KindCall             Kind = "Call"
	KindIfThen           Kind = "IfThen"
	KindStep             Kind = "Step"
	KindWhile            Kind = "While"
	KindTag              Kind = "Tag"
	KindParameter        Kind = "Parameter"
	KindActionword       Kind = "Actionword"
	KindScenario         Kind = "Scenario"
	KindActionwords      Kind = "Actionwords"
	KindScenarios        Kind = "Scenarios"
	KindProject          Kind = "Project"
)

// Node is implemented by every AST node.
type Node interface {
	Kind() Kind
}

type NullLiteral struct{}

type StringLiteral struct {
	Value string
}

// NumericLiteral keeps the raw textual form so values round-trip exactly.
type NumericLiteral struct {
	Value string
}

type BooleanLiteral struct {
	Value bool
}

type Variable struct {
	Name string
}

type Field struct {
	Base Node
	Name string
}

type Index struct {
	Base       Node
	Expression Node
}

type BinaryExpression struct {
	Left     Node
	Operator string
	Right    Node
}

type UnaryExpression struct {
	Operator string
	Operand  Node
}

type Parenthesis struct {
	Expression Node
}

type List struct {
	Items []Node
}

// Property is one dict entry; the key is the source element's own tag.
type Property struct {
	Key   string
	Value Node
}

type Dict struct {
	Properties []Property
}

type Template struct {
	Fragments []Node
}

type Assign struct {
	To    Node
	Value Node
}

type Argument struct {
	Name  string
	Value Node
}

type Call struct {
	Actionword string
	Arguments  []*Argument
}

type IfThen struct {
	Condition Node
	Then      []Node
	Else      []Node
}

// Step wraps exactly one payload; Key names the role the source document
// gave it (e.g. "action", "result").
type Step struct {
	Key   string
	Value Node
}

type While struct {
	Condition Node
	Body      []Node
}

// Tag is a key with an optional value; HasValue distinguishes an absent
// value element from an empty one.
type Tag struct {
	Key      string
	Value    string
	HasValue bool
}

// Parameter has an optional default; Default is nil when none was given.
type Parameter struct {
	Name    string
	Default Node
}

type Actionword struct {
	Name       string
	Tags       []*Tag
	Parameters []*Parameter
	Steps      []Node
}

type Scenario struct {
	Name        string
	Description string
	Tags        []*Tag
	Parameters  []*Parameter
	Steps       []Node
}

type Actionwords struct {
	Items []*Actionword
}

type Scenarios struct {
	Items []*Scenario
}

// Project is the root; it exclusively owns both collections.
type Project struct {
	Name        string
	Description string
	Scenarios   *Scenarios
	Actionwords *Actionwords
}

func (*NullLiteral) Kind() Kind      { return KindNullLiteral }
func (*StringLiteral) Kind() Kind    { return KindStringLiteral }
func (*NumericLiteral) Kind() Kind   { return KindNumericLiteral }
func (*BooleanLiteral) Kind() Kind   { return KindBooleanLiteral }
func (*Variable) Kind() Kind         { return KindVariable }
func (*Field) Kind() Kind            { return KindField }
func (*Index) Kind() Kind            { return KindIndex }
func (*BinaryExpression) Kind() Kind { return KindBinaryExpression }
func (*UnaryExpression) Kind() Kind  { return KindUnaryExpression }
func (*Parenthesis) Kind() Kind      { return KindParenthesis }
func (*List) Kind() Kind             { return KindList }
func (*Dict) Kind() Kind             { return KindDict }
func (*Template) Kind() Kind         { return KindTemplate }
func (*Assign) Kind() Kind           { return KindAssign }
func (*Argument) Kind() Kind         { return KindArgument }
func (*Call) Kind() Kind             { return KindCall }
func (*IfThen) Kind() Kind           { return KindIfThen }
func (*Step) Kind() Kind             { return KindStep }
func (*While) Kind() Kind            { return KindWhile }
func (*Tag) Kind() Kind              { return KindTag }
func (*Parameter) Kind() Kind        { return KindParameter }
func (*Actionword) Kind() Kind       { return KindActionword }
func (*Scenario) Kind() Kind         { return KindScenario }
func (*Actionwords) Kind() Kind      { return KindActionwords }
func (*Scenarios) Kind() Kind        { return KindScenarios }
func (*Project) Kind() Kind          { return KindProject }

// NewNullLiteral and the other literal constructors cover callers that
// already hold a native value rather than a document element.

func NewNullLiteral() *NullLiteral { return &NullLiteral{} }

func NewStringLiteral(value string) *StringLiteral { return &StringLiteral{Value: value} }

func NewNumericLiteral(value string) *NumericLiteral { return &NumericLiteral{Value: value} }

func NewBooleanLiteral(value bool) *BooleanLiteral { return &BooleanLiteral{Value: value} }
