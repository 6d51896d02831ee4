package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/ngdeps"
)

const (
	angularObject      = "angular"
	moduleProperty     = "module"
	angularModuleFn    = "angularModule"
	nodeMember         = "member_expression"
	nodeCall           = "call_expression"
	nodeDeclarator     = "variable_declarator"
	nodeIdentifier     = "identifier"
	nodeProperty       = "property_identifier"
	nodeString         = "string"
	nodeArray          = "array"
	nodeParenthesized  = "parenthesized_expression"
	nodeComment        = "comment"
	fieldObject        = "object"
	fieldProperty      = "property"
	fieldOptionalChain = "optional_chain"
	fieldFunction      = "function"
	fieldArguments     = "arguments"
	fieldName          = "name"
	fieldValue         = "value"
)

// syntaxNode is the closed set of node shapes the extraction cares about
type syntaxNode interface {
	syntaxNode()
}

// memberAccess represents obj.prop with a plain identifier object
type memberAccess struct {
	object   string
	property string
}

// callSite represents a call with an identifier callee (callee is empty otherwise)
type callSite struct {
	callee string
	args   []*sitter.Node
	offset uint32
}

// declarator represents a variable declarator binding a plain identifier
type declarator struct {
	name  string
	value *sitter.Node
}

type otherNode struct{}

func (memberAccess) syntaxNode() {}
func (callSite) syntaxNode() {}
func (declarator) syntaxNode() {}
func (otherNode) syntaxNode() {}

func classify(n *sitter.Node, src []byte) syntaxNode {
	switch n.Type() {
	case nodeMember:
		object := n.ChildByFieldName(fieldObject)
		property := n.ChildByFieldName(fieldProperty)
		if object == nil || property == nil || object.Type() != nodeIdentifier || property.Type() != nodeProperty {
			return otherNode{}
		}
		if n.ChildByFieldName(fieldOptionalChain) != nil {
			return otherNode{}
		}
		return memberAccess{object: object.Content(src), property: property.Content(src)}
	case nodeCall:
		ret := callSite{offset: n.StartByte(), args: arguments(n)}
		if fn := n.ChildByFieldName(fieldFunction); fn != nil && fn.Type() == nodeIdentifier {
			ret.callee = fn.Content(src)
		}
		return ret
	case nodeDeclarator:
		name := n.ChildByFieldName(fieldName)
		if name == nil || name.Type() != nodeIdentifier {
			return otherNode{}
		}
		return declarator{name: name.Content(src), value: n.ChildByFieldName(fieldValue)}
	}
	return otherNode{}
}

// isModuleStatement returns true for the angular.module callee
func (m memberAccess) isModuleStatement() bool {
	return m.object == angularObject && m.property == moduleProperty
}

// isCoreModuleSelfDeclaration matches angularModule('ng'), the way angular.js registers its own core module
func (c callSite) isCoreModuleSelfDeclaration(src []byte) bool {
	if c.callee != angularModuleFn || len(c.args) == 0 {
		return false
	}
	value, ok := stringLiteral(c.args[0], src)
	return ok && value == ngdeps.CoreModule
}

// aliasValue returns the initializer value of a string-initialized declarator
func (d declarator) aliasValue(src []byte) (string, bool) {
	if d.value == nil {
		return "", false
	}
	return stringLiteral(d.value, src)
}

// enclosingCall returns the call whose callee is member
func enclosingCall(member *sitter.Node, src []byte) (callSite, bool) {
	parent := member.Parent()
	if parent == nil || parent.Type() != nodeCall {
		return callSite{}, false
	}
	fn := parent.ChildByFieldName(fieldFunction)
	if fn == nil || fn.StartByte() != member.StartByte() || fn.EndByte() != member.EndByte() {
		return callSite{}, false
	}
	call, ok := classify(parent, src).(callSite)
	return call, ok
}

func arguments(call *sitter.Node) []*sitter.Node {
	args := call.ChildByFieldName(fieldArguments)
	if args == nil {
		return nil
	}
	return namedChildren(args)
}

func namedChildren(n *sitter.Node) []*sitter.Node {
	var ret []*sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == nodeComment {
			continue
		}
		ret = append(ret, child)
	}
	return ret
}

// stringElements returns string literal elements of an array; any other
// dependency expression yields an empty list
func stringElements(n *sitter.Node, src []byte) []string {
	ret := []string{}
	n = unwrap(n)
	if n.Type() != nodeArray {
		return ret
	}
	for _, element := range namedChildren(n) {
		if value, ok := stringLiteral(element, src); ok {
			ret = append(ret, value)
		}
	}
	return ret
}

func unwrap(n *sitter.Node) *sitter.Node {
	for n.Type() == nodeParenthesized && n.NamedChildCount() == 1 {
		n = n.NamedChild(0)
	}
	return n
}
