// Package parser builds the AST for a test-project XML export. The whole
// document is traversed once, depth-first; each element is turned into the
// matching nodes value. A malformed subtree never aborts the build: its
// failure is contained at the nearest sequence boundary and recorded as a
// diagnostic, and siblings still complete.
package parser

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/beevik/etree"

	"github.com/daniel-kun/hiptest-publisher/internal/nodes"
)

// Options controls diagnostic output during a build.
type Options struct {
	// Verbose logs every contained failure with the offending element's
	// raw form. Diagnostics are collected either way; Verbose only gates
	// the logging.
	Verbose bool
	// Logger receives diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Diagnostic records one contained failure.
type Diagnostic struct {
	Element string // serialized form of the offending element
	Err     error
}

// Builder turns a project export into a nodes.Project. A Builder is not
// safe for concurrent use; the build is a single synchronous traversal.
type Builder struct {
	doc     *etree.Document
	opts    Options
	logger  *slog.Logger
	diags   []Diagnostic
	project *nodes.Project
}

// NewBuilder parses source into a navigable document and returns a Builder
// over it.
func NewBuilder(source []byte, opts Options) (*Builder, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(source); err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{doc: doc, opts: opts, logger: logger}, nil
}

// Diagnostics returns one record per contained failure, in the order the
// failures occurred.
func (b *Builder) Diagnostics() []Diagnostic {
	return b.diags
}

// BuildProject assembles the root Project node. The four top-level project
// children (name, description, scenarios, actionwords) are the only
// structure whose absence fails the whole build; everything below them is
// contained per node. The built root is cached, so calling BuildProject
// again returns the same tree.
func (b *Builder) BuildProject() (*nodes.Project, error) {
	if b.project != nil {
		return b.project, nil
	}

	root := b.doc.Root()
	if root == nil || root.Tag != "project" {
		return nil, errors.New("document has no project root element")
	}

	name := queryFirst(root, "name")
	if name == nil {
		return nil, errors.New("project is missing its name element")
	}
	description := queryFirst(root, "description")
	if description == nil {
		return nil, errors.New("project is missing its description element")
	}
	if queryFirst(root, "scenarios") == nil {
		return nil, errors.New("project is missing its scenarios section")
	}
	if queryFirst(root, "actionwords") == nil {
		return nil, errors.New("project is missing its actionwords section")
	}

	scenarios := &nodes.Scenarios{Items: []*nodes.Scenario{}}
	for _, node := range b.buildAll(query(root, "scenarios/scenario")) {
		if sc, ok := node.(*nodes.Scenario); ok {
			scenarios.Items = append(scenarios.Items, sc)
		}
	}
	actionwords := &nodes.Actionwords{Items: []*nodes.Actionword{}}
	for _, node := range b.buildAll(query(root, "actionwords/actionword")) {
		if aw, ok := node.(*nodes.Actionword); ok {
			actionwords.Items = append(actionwords.Items, aw)
		}
	}

	b.project = &nodes.Project{
		Name:        name.Text(),
		Description: description.Text(),
		Scenarios:   scenarios,
		Actionwords: actionwords,
	}
	return b.project, nil
}

type buildFunc func(*Builder, *etree.Element) (nodes.Node, error)

// buildRules maps each element tag to its construction rule. The set is
// closed; any other tag is an UnknownElementError. Filled in init because
// the rules recurse through buildNode, which reads the map.
var buildRules map[string]buildFunc

func init() {
	buildRules = map[string]buildFunc{
		"null":        (*Builder).buildNull,
		"string":      (*Builder).buildString,
		"numeric":     (*Builder).buildNumeric,
		"boolean":     (*Builder).buildBoolean,
		"var":         (*Builder).buildVar,
		"field":       (*Builder).buildField,
		"index":       (*Builder).buildIndex,
		"operation":   (*Builder).buildOperation,
		"parenthesis": (*Builder).buildParenthesis,
		"list":        (*Builder).buildListNode,
		"dict":        (*Builder).buildDict,
		"template":    (*Builder).buildTemplate,
		"assign":      (*Builder).buildAssign,
		"argument":    (*Builder).buildArgument,
		"call":        (*Builder).buildCall,
		"if":          (*Builder).buildIf,
		"step":        (*Builder).buildStep,
		"while":       (*Builder).buildWhile,
		"tag":         (*Builder).buildTag,
		"parameter":   (*Builder).buildParameter,
		"actionword":  (*Builder).buildActionword,
		"scenario":    (*Builder).buildScenario,
	}
}

// buildNode dispatches on the element's tag. Failures are returned, not
// contained; build is the containment boundary.
func (b *Builder) buildNode(el *etree.Element) (nodes.Node, error) {
	rule, ok := buildRules[el.Tag]
	if !ok {
		return nil, &UnknownElementError{Tag: el.Tag}
	}
	return rule(b, el)
}

// build is the containment boundary around a single-node construction: on
// failure it records a diagnostic and reports absence as nil. No error
// escapes past it.
func (b *Builder) build(el *etree.Element) nodes.Node {
	node, err := b.buildNode(el)
	if err != nil {
		b.contain(el, err)
		return nil
	}
	return node
}

func (b *Builder) contain(el *etree.Element, err error) {
	diag := Diagnostic{Element: rawElement(el), Err: err}
	b.diags = append(b.diags, diag)
	switch {
	case !containable(err):
		b.logger.Error("unexpected failure building node", "element", diag.Element, "error", err)
	case b.opts.Verbose:
		b.logger.Warn("unable to build node", "element", diag.Element, "error", err)
	}
}

// buildAll builds each element in order. Contained failures leave no slot:
// the result preserves document order and has length N minus the failures.
func (b *Builder) buildAll(els []*etree.Element) []nodes.Node {
	built := make([]nodes.Node, 0, len(els))
	for _, el := range els {
		if node := b.build(el); node != nil {
			built = append(built, node)
		}
	}
	return built
}

func (b *Builder) buildNull(el *etree.Element) (nodes.Node, error) {
	return nodes.NewNullLiteral(), nil
}

func (b *Builder) buildString(el *etree.Element) (nodes.Node, error) {
	return nodes.NewStringLiteral(el.Text()), nil
}

func (b *Builder) buildNumeric(el *etree.Element) (nodes.Node, error) {
	text := el.Text()
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
		return nil, &MalformedValueError{Tag: el.Tag, Text: text, Err: errors.New("not a number")}
	}
	return nodes.NewNumericLiteral(text), nil
}

func (b *Builder) buildBoolean(el *etree.Element) (nodes.Node, error) {
	text := strings.TrimSpace(el.Text())
	value, err := strconv.ParseBool(text)
	if err != nil {
		return nil, &MalformedValueError{Tag: el.Tag, Text: text, Err: errors.New("not a boolean")}
	}
	return nodes.NewBooleanLiteral(value), nil
}

func (b *Builder) buildVar(el *etree.Element) (nodes.Node, error) {
	name := strings.TrimSpace(el.Text())
	if name == "" {
		return nil, &MalformedValueError{Tag: el.Tag, Text: el.Text(), Err: errors.New("variable name is empty")}
	}
	return &nodes.Variable{Name: name}, nil
}

func (b *Builder) buildField(el *etree.Element) (nodes.Node, error) {
	baseEl := wrapped(el, "base")
	if baseEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "base/*"}
	}
	name, ok := childText(el, "name")
	if !ok {
		return nil, &MissingChildError{Tag: el.Tag, Path: "name"}
	}
	base, err := b.buildNode(baseEl)
	if err != nil {
		return nil, err
	}
	return &nodes.Field{Base: base, Name: name}, nil
}

func (b *Builder) buildIndex(el *etree.Element) (nodes.Node, error) {
	baseEl := wrapped(el, "base")
	if baseEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "base/*"}
	}
	exprEl := wrapped(el, "expression")
	if exprEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "expression/*"}
	}
	base, err := b.buildNode(baseEl)
	if err != nil {
		return nil, err
	}
	expr, err := b.buildNode(exprEl)
	if err != nil {
		return nil, err
	}
	return &nodes.Index{Base: base, Expression: expr}, nil
}

// buildOperation resolves the structural overload of <operation>: the
// presence of a <left> child decides between the binary and unary forms.
func (b *Builder) buildOperation(el *etree.Element) (nodes.Node, error) {
	operator, ok := childText(el, "operator")
	if !ok {
		return nil, &MissingChildError{Tag: el.Tag, Path: "operator"}
	}
	rightEl := wrapped(el, "right")
	if rightEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "right/*"}
	}
	right, err := b.buildNode(rightEl)
	if err != nil {
		return nil, err
	}

	leftWrapper := queryFirst(el, "left")
	if leftWrapper == nil {
		return &nodes.UnaryExpression{Operator: operator, Operand: right}, nil
	}
	leftEl := firstElementChild(leftWrapper)
	if leftEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "left/*"}
	}
	left, err := b.buildNode(leftEl)
	if err != nil {
		return nil, err
	}
	return &nodes.BinaryExpression{Left: left, Operator: operator, Right: right}, nil
}

func (b *Builder) buildParenthesis(el *etree.Element) (nodes.Node, error) {
	inner := firstElementChild(el)
	if inner == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "*"}
	}
	expr, err := b.buildNode(inner)
	if err != nil {
		return nil, err
	}
	return &nodes.Parenthesis{Expression: expr}, nil
}

func (b *Builder) buildListNode(el *etree.Element) (nodes.Node, error) {
	return &nodes.List{Items: b.buildAll(query(el, "item/*"))}, nil
}

// buildDict treats every element child as a property; the key is the
// child's own tag and the value its single element child.
func (b *Builder) buildDict(el *etree.Element) (nodes.Node, error) {
	children := el.ChildElements()
	properties := make([]nodes.Property, 0, len(children))
	for _, child := range children {
		valueEl := firstElementChild(child)
		if valueEl == nil {
			b.contain(child, &MissingChildError{Tag: child.Tag, Path: "*"})
			continue
		}
		value := b.build(valueEl)
		if value == nil {
			continue
		}
		properties = append(properties, nodes.Property{Key: child.Tag, Value: value})
	}
	return &nodes.Dict{Properties: properties}, nil
}

func (b *Builder) buildTemplate(el *etree.Element) (nodes.Node, error) {
	return &nodes.Template{Fragments: b.buildAll(el.ChildElements())}, nil
}

func (b *Builder) buildAssign(el *etree.Element) (nodes.Node, error) {
	toEl := wrapped(el, "to")
	if toEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "to/*"}
	}
	valueEl := wrapped(el, "value")
	if valueEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "value/*"}
	}
	to, err := b.buildNode(toEl)
	if err != nil {
		return nil, err
	}
	value, err := b.buildNode(valueEl)
	if err != nil {
		return nil, err
	}
	return &nodes.Assign{To: to, Value: value}, nil
}

func (b *Builder) buildArgument(el *etree.Element) (nodes.Node, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return nil, &MissingChildError{Tag: el.Tag, Path: "@name"}
	}
	valueEl := wrapped(el, "value")
	if valueEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "value/*"}
	}
	value, err := b.buildNode(valueEl)
	if err != nil {
		return nil, err
	}
	return &nodes.Argument{Name: name, Value: value}, nil
}

func (b *Builder) buildCall(el *etree.Element) (nodes.Node, error) {
	actionword := el.SelectAttrValue("actionword", "")
	if actionword == "" {
		return nil, &MissingChildError{Tag: el.Tag, Path: "@actionword"}
	}
	arguments := []*nodes.Argument{}
	for _, node := range b.buildAll(query(el, "arguments/argument")) {
		if arg, ok := node.(*nodes.Argument); ok {
			arguments = append(arguments, arg)
		}
	}
	return &nodes.Call{Actionword: actionword, Arguments: arguments}, nil
}

func (b *Builder) buildIf(el *etree.Element) (nodes.Node, error) {
	conditionEl := wrapped(el, "condition")
	if conditionEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "condition/*"}
	}
	condition, err := b.buildNode(conditionEl)
	if err != nil {
		return nil, err
	}
	return &nodes.IfThen{
		Condition: condition,
		Then:      b.buildAll(query(el, "then/*")),
		Else:      b.buildAll(query(el, "else/*")),
	}, nil
}

// buildStep wraps the single element child under the step element; the
// child's own tag is the step's role.
func (b *Builder) buildStep(el *etree.Element) (nodes.Node, error) {
	child := firstElementChild(el)
	if child == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "*"}
	}
	payload, err := b.buildNode(child)
	if err != nil {
		return nil, err
	}
	return &nodes.Step{Key: child.Tag, Value: payload}, nil
}

func (b *Builder) buildWhile(el *etree.Element) (nodes.Node, error) {
	conditionEl := wrapped(el, "condition")
	if conditionEl == nil {
		return nil, &MissingChildError{Tag: el.Tag, Path: "condition/*"}
	}
	condition, err := b.buildNode(conditionEl)
	if err != nil {
		return nil, err
	}
	return &nodes.While{
		Condition: condition,
		Body:      b.buildAll(query(el, "body/*")),
	}, nil
}

func (b *Builder) buildTag(el *etree.Element) (nodes.Node, error) {
	key, ok := childText(el, "key")
	if !ok {
		return nil, &MissingChildError{Tag: el.Tag, Path: "key"}
	}
	tag := &nodes.Tag{Key: key}
	// The value element is optional; its absence is not an error.
	if valueEl := queryFirst(el, "value"); valueEl != nil {
		tag.Value = valueEl.Text()
		tag.HasValue = true
	}
	return tag, nil
}

func (b *Builder) buildParameter(el *etree.Element) (nodes.Node, error) {
	name, ok := childText(el, "name")
	if !ok {
		return nil, &MissingChildError{Tag: el.Tag, Path: "name"}
	}
	parameter := &nodes.Parameter{Name: name}
	if defaultEl := wrapped(el, "default_value"); defaultEl != nil {
		node, err := b.buildNode(defaultEl)
		if err != nil {
			return nil, err
		}
		parameter.Default = node
	}
	return parameter, nil
}

func (b *Builder) buildActionword(el *etree.Element) (nodes.Node, error) {
	name, ok := childText(el, "name")
	if !ok {
		return nil, &MissingChildError{Tag: el.Tag, Path: "name"}
	}
	return &nodes.Actionword{
		Name:       name,
		Tags:       b.buildTags(el),
		Parameters: b.buildParameters(el),
		Steps:      b.buildAll(query(el, "steps/*")),
	}, nil
}

func (b *Builder) buildScenario(el *etree.Element) (nodes.Node, error) {
	name, ok := childText(el, "name")
	if !ok {
		return nil, &MissingChildError{Tag: el.Tag, Path: "name"}
	}
	description, _ := childText(el, "description")
	return &nodes.Scenario{
		Name:        name,
		Description: description,
		Tags:        b.buildTags(el),
		Parameters:  b.buildParameters(el),
		Steps:       b.buildAll(query(el, "steps/*")),
	}, nil
}

// buildTags and buildParameters extract the optional sections shared by
// scenarios and actionwords. An absent section yields an empty sequence.

func (b *Builder) buildTags(el *etree.Element) []*nodes.Tag {
	tags := []*nodes.Tag{}
	for _, node := range b.buildAll(query(el, "tags/tag")) {
		if tag, ok := node.(*nodes.Tag); ok {
			tags = append(tags, tag)
		}
	}
	return tags
}

func (b *Builder) buildParameters(el *etree.Element) []*nodes.Parameter {
	parameters := []*nodes.Parameter{}
	for _, node := range b.buildAll(query(el, "parameters/parameter")) {
		if parameter, ok := node.(*nodes.Parameter); ok {
			parameters = append(parameters, parameter)
		}
	}
	return parameters
}
