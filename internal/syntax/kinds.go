// Copyright 2026 Ben Asher. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package syntax

// Grammar production names of the tree-sitter JavaScript grammar, limited
// to the nodes the linter inspects.
const (
	KindProgram               = "program"
	KindStatementBlock        = "statement_block"
	KindLexicalDeclaration    = "lexical_declaration"
	KindVariableDeclaration   = "variable_declaration"
	KindVariableDeclarator    = "variable_declarator"
	KindIdentifier            = "identifier"
	KindParenthesized         = "parenthesized_expression"
	KindTernary               = "ternary_expression"
	KindArray                 = "array"
	KindObject                = "object"
	KindPair                  = "pair"
	KindShorthandProperty     = "shorthand_property_identifier"
	KindSpreadElement         = "spread_element"
	KindMethodDefinition      = "method_definition"
	KindCall                  = "call_expression"
	KindMember                = "member_expression"
	KindArguments             = "arguments"
	KindString                = "string"
	KindStringFragment        = "string_fragment"
	KindComment               = "comment"
	KindJSXOpeningElement     = "jsx_opening_element"
	KindJSXSelfClosingElement = "jsx_self_closing_element"
	KindJSXAttribute          = "jsx_attribute"
	KindJSXExpression         = "jsx_expression"
	KindJSXNamespaceName      = "jsx_namespace_name"
	KindNestedIdentifier      = "nested_identifier"
	KindError                 = "ERROR"
)

// Grammar field names used with [Node.Field].
const (
	FieldName        = "name"
	FieldValue       = "value"
	FieldKind        = "kind"
	FieldCondition   = "condition"
	FieldConsequence = "consequence"
	FieldAlternative = "alternative"
	FieldFunction    = "function"
	FieldArguments   = "arguments"
	FieldObject      = "object"
	FieldProperty    = "property"
)

// DeclKind tags the declaration form of a variable declaration.
type DeclKind uint8

const (
	// DeclConst is a block-scoped, single-assignment declaration.
	DeclConst DeclKind = iota

	// DeclLet is a block-scoped, reassignable declaration.
	DeclLet

	// DeclVar is a function-scoped declaration.
	DeclVar
)

// DeclarationKind returns the declaration form of a lexical_declaration or
// variable_declaration node.
func DeclarationKind(n Node) DeclKind {
	switch declarationKeyword(n) {
	case "const":
		return DeclConst

	case "let":
		return DeclLet

	default:
		return DeclVar
	}
}

// declarationKeyword reads the leading keyword of a declaration. Recent
// grammar versions expose it as the "kind" field; older ones only as the
// first token.
func declarationKeyword(n Node) string {
	if kind := n.Field(FieldKind); kind.Exists() {
		return kind.Text()
	}

	if n.ChildCount() == 0 {
		return ""
	}

	return n.Child(0).Text()
}
