package parser

import (
	"strconv"

	"github.com/swiftsyntax/swiftparse/internal/ast"
	"github.com/swiftsyntax/swiftparse/internal/combinator"
	"github.com/swiftsyntax/swiftparse/internal/config"
	"github.com/swiftsyntax/swiftparse/internal/cursor"
	"github.com/swiftsyntax/swiftparse/internal/diagnostics"
	"github.com/swiftsyntax/swiftparse/internal/lexer"
)

// ParseDeclaration dispatches across every declaration variant spec.md §3
// names.
func ParseDeclaration(c *cursor.Cursor) (ast.Declaration, *diagnostics.ParseError) {
	if d, ok := tryParseDecl(c, parseImportDeclaration); ok {
		return d, nil
	}

	attrs, err := parseAttributes(c)
	if err != nil {
		return nil, err
	}
	mods := parseModifiers(c)

	start := c.Position()
	before := c.Save()

	if _, e := lexer.Keyword("let")(c); e == nil {
		return parseConstantDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("var")(c); e == nil {
		return parseVariableDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("typealias")(c); e == nil {
		return parseTypeAliasDeclarationBody(c, start)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("func")(c); e == nil {
		return parseFunctionDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("enum")(c); e == nil {
		return parseEnumDeclarationBody(c, start, attrs, mods, false)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("struct")(c); e == nil {
		return parseStructDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("class")(c); e == nil {
		return parseClassDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("protocol")(c); e == nil {
		return parseProtocolDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("init")(c); e == nil {
		return parseInitializerDeclarationBody(c, start, attrs, mods, ast.InitPlain)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("deinit")(c); e == nil {
		return parseDeinitializerDeclarationBody(c, start)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("extension")(c); e == nil {
		return parseExtensionDeclarationBody(c, start)
	}
	c.Restore(before)

	if _, e := lexer.Keyword("subscript")(c); e == nil {
		return parseSubscriptDeclarationBody(c, start, attrs, mods)
	}
	c.Restore(before)

	if fixity, e := tryParseOperatorFixity(c); e {
		return parseOperatorDeclarationBody(c, start, fixity)
	}
	c.Restore(before)

	return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "expected a declaration")
}

func tryParseDecl(c *cursor.Cursor, fn func(*cursor.Cursor) (ast.Declaration, *diagnostics.ParseError)) (ast.Declaration, bool) {
	d, err := combinator.Try(combinator.Parser[ast.Declaration](fn))(c)
	return d, err == nil
}

func parseImportDeclaration(c *cursor.Cursor) (ast.Declaration, *diagnostics.ParseError) {
	start := c.Position()
	if _, e := lexer.Keyword("import")(c); e != nil {
		return nil, e
	}
	kind := ""
	before := c.Save()
	for _, k := range []string{"typealias", "struct", "class", "enum", "protocol", "var", "func"} {
		if _, e := lexer.Keyword(k)(c); e == nil {
			kind = k
			before = c.Save()
			break
		}
		c.Restore(before)
	}
	var path []string
	first, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	path = append(path, first.Lexeme)
	for {
		pbefore := c.Save()
		if _, e := lexer.Punct(".")(c); e != nil {
			c.Restore(pbefore)
			break
		}
		tok, err := lexer.Ident(c)
		if err != nil {
			return nil, err
		}
		path = append(path, tok.Lexeme)
	}
	return ast.ImportDeclaration{Span: ast.Span{Start: start, End: c.Position()}, Kind: kind, Path: path}, nil
}

func parsePatternInitializerList(c *cursor.Cursor) ([]ast.PatternInitializer, *diagnostics.ParseError) {
	return combinator.SepBy1(combinator.Parser[ast.PatternInitializer](parsePatternInitializer), lexer.Punct(","))(c)
}

func parsePatternInitializer(c *cursor.Cursor) (ast.PatternInitializer, *diagnostics.ParseError) {
	pat, err := ParsePattern(c)
	if err != nil {
		return ast.PatternInitializer{}, err
	}
	var init *ast.Expression
	before := c.Save()
	if _, e := lexer.OperatorSymbol("=")(c); e == nil {
		expr, err := ParseExpression(c)
		if err != nil {
			return ast.PatternInitializer{}, err
		}
		init = expr
	} else {
		c.Restore(before)
	}
	return ast.PatternInitializer{Pattern: pat, Initializer: init}, nil
}

func parseConstantDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	inits, err := parsePatternInitializerList(c)
	if err != nil {
		return nil, err
	}
	return ast.ConstantDeclaration{
		Span:         ast.Span{Start: start, End: c.Position()},
		Attributes:   attrs,
		Modifiers:    mods,
		Initializers: inits,
	}, nil
}

// parseVariableDeclarationBody disambiguates the four `var` shapes spec.md
// §4.4 names, tried most-specific first: observed (willSet/didSet),
// computed (get/set), single-name-with-type-annotation (stored), then the
// catch-all pattern-initializer-list form.
func parseVariableDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	before := c.Save()

	if decl, e := combinator.Try(combinator.Parser[ast.Declaration](func(c *cursor.Cursor) (ast.Declaration, *diagnostics.ParseError) {
		return parseNamedVariableDeclaration(c, start, attrs, mods)
	}))(c); e == nil {
		return decl, nil
	}
	c.Restore(before)

	inits, err := parsePatternInitializerList(c)
	if err != nil {
		return nil, err
	}
	return ast.VariableDeclaration{
		Span:         ast.Span{Start: start, End: c.Position()},
		Attributes:   attrs,
		Modifiers:    mods,
		Kind:         ast.VariablePatternInitializer,
		Initializers: inits,
	}, nil
}

func parseNamedVariableDeclaration(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Punct(":")(c); e != nil {
		return nil, e
	}
	typ, err := ParseType(c)
	if err != nil {
		return nil, err
	}

	before := c.Save()
	if _, e := lexer.Punct("{")(c); e == nil {
		decl, err := parseComputedOrObservedBody(c, start, attrs, mods, nameTok.Lexeme, typ)
		if err != nil {
			return nil, err
		}
		return decl, nil
	}
	c.Restore(before)

	var init *ast.Expression
	ibefore := c.Save()
	if _, e := lexer.OperatorSymbol("=")(c); e == nil {
		expr, err := ParseExpression(c)
		if err != nil {
			return nil, err
		}
		init = expr
		obefore := c.Save()
		if _, e := lexer.Punct("{")(c); e == nil {
			decl, err := parseComputedOrObservedBody(c, start, attrs, mods, nameTok.Lexeme, typ)
			if err != nil {
				return nil, err
			}
			v, ok := decl.(ast.VariableDeclaration)
			if !ok || v.Kind != ast.VariableObserved {
				return nil, diagnostics.NewParseError(diagnostics.KindSyntax, start, "only willSet/didSet may follow an initializer")
			}
			v.Initializer = init
			return v, nil
		}
		c.Restore(obefore)
	} else {
		c.Restore(ibefore)
	}
	return ast.VariableDeclaration{
		Span:           ast.Span{Start: start, End: c.Position()},
		Attributes:     attrs,
		Modifiers:      mods,
		Kind:           ast.VariableStored,
		Name:           nameTok.Lexeme,
		TypeAnnotation: typ,
		Initializer:    init,
	}, nil
}

// parseComputedOrObservedBody parses the `{ ... }` block already opened by
// the caller as either a computed property (get/set, or a bare statement
// list as a read-only getter) or an observed property (willSet/didSet).
func parseComputedOrObservedBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string, name string, typ ast.Type) (ast.Declaration, *diagnostics.ParseError) {
	before := c.Save()
	if _, e := lexer.Keyword("get")(c); e == nil {
		getterBody, err := parseCodeBlockUnopened(c)
		if err != nil {
			return nil, err
		}
		var setter *ast.CodeBlock
		setterName := ""
		sbefore := c.Save()
		if _, e := lexer.Keyword("set")(c); e == nil {
			setterName = parseOptionalSetterName(c)
			body, err := parseCodeBlock(c)
			if err != nil {
				return nil, err
			}
			setter = body
		} else {
			c.Restore(sbefore)
		}
		if _, e := lexer.Punct("}")(c); e != nil {
			return nil, e
		}
		return ast.VariableDeclaration{
			Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
			Kind: ast.VariableComputed, Name: name, TypeAnnotation: typ,
			Getter: getterBody, Setter: setter, SetterName: setterName,
		}, nil
	}
	c.Restore(before)

	if _, e := lexer.Keyword("set")(c); e == nil {
		setterName := parseOptionalSetterName(c)
		setterBody, err := parseCodeBlock(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.Keyword("get")(c); e != nil {
			return nil, e
		}
		getterBody, err := parseCodeBlockUnopened(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.Punct("}")(c); e != nil {
			return nil, e
		}
		return ast.VariableDeclaration{
			Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
			Kind: ast.VariableComputed, Name: name, TypeAnnotation: typ,
			Getter: getterBody, Setter: setterBody, SetterName: setterName,
		}, nil
	}
	c.Restore(before)

	var willSet, didSet *ast.CodeBlock
	willSetName, didSetName := "", ""
	matchedAny := false
	for {
		wbefore := c.Save()
		if _, e := lexer.Keyword("willSet")(c); e == nil {
			willSetName = parseOptionalSetterName(c)
			body, err := parseCodeBlock(c)
			if err != nil {
				return nil, err
			}
			willSet = body
			matchedAny = true
			continue
		}
		c.Restore(wbefore)
		if _, e := lexer.Keyword("didSet")(c); e == nil {
			didSetName = parseOptionalSetterName(c)
			body, err := parseCodeBlock(c)
			if err != nil {
				return nil, err
			}
			didSet = body
			matchedAny = true
			continue
		}
		c.Restore(wbefore)
		break
	}
	if !matchedAny {
		// No accessor keyword: the block is a read-only getter's body.
		getterBody, err := parseCodeBlockUnopened(c)
		if err != nil {
			return nil, err
		}
		if _, e := lexer.Punct("}")(c); e != nil {
			return nil, e
		}
		return ast.VariableDeclaration{
			Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
			Kind: ast.VariableComputed, Name: name, TypeAnnotation: typ, Getter: getterBody,
		}, nil
	}
	if _, e := lexer.Punct("}")(c); e != nil {
		return nil, e
	}
	return ast.VariableDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
		Kind: ast.VariableObserved, Name: name, TypeAnnotation: typ,
		WillSet: willSet, WillSetName: willSetName, DidSet: didSet, DidSetName: didSetName,
	}, nil
}

func parseOptionalSetterName(c *cursor.Cursor) string {
	before := c.Save()
	if _, e := lexer.Punct("(")(c); e != nil {
		c.Restore(before)
		return ""
	}
	nameTok, err := lexer.Ident(c)
	if err != nil {
		c.Restore(before)
		return ""
	}
	if _, e := lexer.Punct(")")(c); e != nil {
		c.Restore(before)
		return ""
	}
	return nameTok.Lexeme
}

// parseCodeBlockUnopened parses a statement list with no braces of its own,
// stopping before (and not consuming) the next `}`, `get`, `set`,
// `willSet`, or `didSet` — the surrounding computed/observed-property
// parser owns the outer braces and the accessor keywords.
func parseCodeBlockUnopened(c *cursor.Cursor) (*ast.CodeBlock, *diagnostics.ParseError) {
	start := c.Position()
	var stmts []ast.Statement
	for {
		before := c.Save()
		stop := false
		for _, kw := range []string{"set", "get", "willSet", "didSet"} {
			if _, e := lexer.Keyword(kw)(c); e == nil {
				stop = true
			}
			c.Restore(before)
			if stop {
				break
			}
		}
		if !stop {
			if _, e := lexer.Punct("}")(c); e == nil {
				stop = true
			}
			c.Restore(before)
		}
		if stop {
			return &ast.CodeBlock{Span: ast.Span{Start: start, End: c.Position()}, Statements: stmts}, nil
		}
		stmt, err := ParseStatement(c)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
}

func parseTypeAliasDeclarationBody(c *cursor.Cursor, start cursor.Position) (ast.Declaration, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.OperatorSymbol("=")(c); e != nil {
		return nil, e
	}
	typ, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	return ast.TypeAliasDeclaration{Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme, Type: typ}, nil
}

func parseOptionalGenericParameterClause(c *cursor.Cursor) *ast.GenericParameterClause {
	start := c.Position()
	before := c.Save()
	if _, e := lexer.OperatorSymbol("<")(c); e != nil {
		c.Restore(before)
		return nil
	}
	params, err := combinator.SepBy1(combinator.Parser[ast.GenericParameter](parseGenericParameter), lexer.Punct(","))(c)
	if err != nil {
		c.Restore(before)
		return nil
	}
	if _, e := lexer.OperatorSymbol(">")(c); e != nil {
		c.Restore(before)
		return nil
	}
	return &ast.GenericParameterClause{Span: ast.Span{Start: start, End: c.Position()}, Parameters: params}
}

func parseGenericParameter(c *cursor.Cursor) (ast.GenericParameter, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return ast.GenericParameter{}, err
	}
	var constraint ast.Type
	before := c.Save()
	if _, e := lexer.Punct(":")(c); e == nil {
		typ, err := ParseType(c)
		if err != nil {
			return ast.GenericParameter{}, err
		}
		constraint = typ
	} else {
		c.Restore(before)
	}
	return ast.GenericParameter{Name: nameTok.Lexeme, Constraint: constraint}, nil
}

func parseOptionalTypeInheritanceClause(c *cursor.Cursor) *ast.TypeInheritanceClause {
	start := c.Position()
	before := c.Save()
	if _, e := lexer.Punct(":")(c); e != nil {
		c.Restore(before)
		return nil
	}
	types, err := combinator.SepBy1(combinator.Parser[ast.Type](ParseType), lexer.Punct(","))(c)
	if err != nil {
		c.Restore(before)
		return nil
	}
	return &ast.TypeInheritanceClause{Span: ast.Span{Start: start, End: c.Position()}, Types: types}
}

// parseFunctionDeclarationBody parses `func name<generics>(params)(params)...
// throws? -> Result? body?`, allowing an operator symbol in name position
// for operator-function definitions.
func parseFunctionDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	name, err := parseFunctionName(c)
	if err != nil {
		return nil, err
	}
	generics := parseOptionalGenericParameterClause(c)

	var clauses []ast.ParameterClause
	clause, err := parseParameterClause(c)
	if err != nil {
		return nil, err
	}
	clauses = append(clauses, clause)
	for {
		before := c.Save()
		cl, err := parseParameterClause(c)
		if err != nil {
			c.Restore(before)
			break
		}
		clauses = append(clauses, cl)
	}

	throwsMarker := ast.ThrowsNone
	before := c.Save()
	if _, e := lexer.Keyword("throws")(c); e == nil {
		throwsMarker = ast.ThrowsThrows
	} else if _, e := lexer.Keyword("rethrows")(c); e == nil {
		throwsMarker = ast.ThrowsRethrows
	} else {
		c.Restore(before)
	}

	var result ast.Type
	rbefore := c.Save()
	if _, e := lexer.OperatorSymbol("->")(c); e == nil {
		typ, err := ParseType(c)
		if err != nil {
			return nil, err
		}
		result = typ
	} else {
		c.Restore(rbefore)
	}

	var body *ast.CodeBlock
	bbefore := c.Save()
	if blk, e := combinator.Try(combinator.Parser[*ast.CodeBlock](parseCodeBlock))(c); e == nil {
		body = blk
	} else {
		c.Restore(bbefore)
	}

	return ast.FunctionDeclaration{
		Span:             ast.Span{Start: start, End: c.Position()},
		Attributes:       attrs,
		Modifiers:        mods,
		Name:             name,
		GenericParams:    generics,
		ParameterClauses: clauses,
		Throws:           throwsMarker,
		Result:           result,
		Body:             body,
	}, nil
}

func parseFunctionName(c *cursor.Cursor) (string, *diagnostics.ParseError) {
	before := c.Save()
	if tok, e := lexer.Operator(c); e == nil {
		return tok.Lexeme, nil
	}
	c.Restore(before)
	tok, err := lexer.Ident(c)
	if err != nil {
		return "", err
	}
	return tok.Lexeme, nil
}

func parseEnumDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string, indirect bool) (ast.Declaration, *diagnostics.ParseError) {
	for _, m := range mods {
		if m == "indirect" {
			indirect = true
		}
	}
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	generics := parseOptionalGenericParameterClause(c)
	inheritance := parseOptionalTypeInheritanceClause(c)

	if _, e := lexer.Punct("{")(c); e != nil {
		return nil, e
	}
	var cases []ast.EnumCase
	style := ast.EnumUnion
	var members []ast.Declaration
	for {
		cbefore := c.Save()
		if _, e := lexer.Punct("}")(c); e == nil {
			return ast.EnumDeclaration{
				Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
				Indirect: indirect, Name: nameTok.Lexeme, GenericParams: generics, Inheritance: inheritance,
				Style: style, Cases: cases, Members: members,
			}, nil
		}
		c.Restore(cbefore)

		if _, e := lexer.Keyword("case")(c); e == nil {
			newCases, raw, err := parseEnumCaseList(c)
			if err != nil {
				return nil, err
			}
			if raw {
				style = ast.EnumRaw
			}
			cases = append(cases, newCases...)
			continue
		}
		c.Restore(cbefore)

		decl, err := ParseDeclaration(c)
		if err != nil {
			return nil, err
		}
		members = append(members, decl)
	}
}

func parseEnumCaseList(c *cursor.Cursor) ([]ast.EnumCase, bool, *diagnostics.ParseError) {
	var cases []ast.EnumCase
	raw := false
	for {
		nameTok, err := lexer.Ident(c)
		if err != nil {
			return nil, false, err
		}
		ec := ast.EnumCase{Name: nameTok.Lexeme}
		before := c.Save()
		if _, e := lexer.Punct("(")(c); e == nil {
			c.Restore(before)
			typ, err := parsePrimaryType(c)
			if err != nil {
				return nil, false, err
			}
			if tt, ok := typ.(ast.TupleType); ok {
				ec.Payload = &tt
			}
		} else {
			c.Restore(before)
			if _, e := lexer.OperatorSymbol("=")(c); e == nil {
				lit, err := parseLiteral(c)
				if err != nil {
					return nil, false, err
				}
				ec.RawValue = lit
				raw = true
			} else {
				c.Restore(before)
			}
		}
		cases = append(cases, ec)

		nbefore := c.Save()
		if _, e := lexer.Punct(",")(c); e != nil {
			c.Restore(nbefore)
			break
		}
	}
	return cases, raw, nil
}

func parseStructDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	generics := parseOptionalGenericParameterClause(c)
	inheritance := parseOptionalTypeInheritanceClause(c)
	members, err := parseMemberBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.StructDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
		Name: nameTok.Lexeme, GenericParams: generics, Inheritance: inheritance, Members: members,
	}, nil
}

func parseClassDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	generics := parseOptionalGenericParameterClause(c)
	inheritance := parseOptionalTypeInheritanceClause(c)
	members, err := parseMemberBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.ClassDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
		Name: nameTok.Lexeme, GenericParams: generics, Inheritance: inheritance, Members: members,
	}, nil
}

func parseProtocolDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	inheritance := parseOptionalTypeInheritanceClause(c)
	members, err := parseMemberBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.ProtocolDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
		Name: nameTok.Lexeme, Inheritance: inheritance, Members: members,
	}, nil
}

func parseMemberBlock(c *cursor.Cursor) ([]ast.Declaration, *diagnostics.ParseError) {
	if _, e := lexer.Punct("{")(c); e != nil {
		return nil, e
	}
	var members []ast.Declaration
	for {
		before := c.Save()
		if _, e := lexer.Punct("}")(c); e == nil {
			return members, nil
		}
		c.Restore(before)
		decl, err := ParseDeclaration(c)
		if err != nil {
			return nil, err
		}
		members = append(members, decl)
	}
}

func parseInitializerDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string, kind ast.InitializerKind) (ast.Declaration, *diagnostics.ParseError) {
	before := c.Save()
	if _, e := lexer.OperatorSymbol("?")(c); e == nil {
		kind = ast.InitOptional
	} else {
		c.Restore(before)
		if _, e := lexer.OperatorSymbol("!")(c); e == nil {
			kind = ast.InitForced
		} else {
			c.Restore(before)
		}
	}
	generics := parseOptionalGenericParameterClause(c)
	params, err := parseParameterClause(c)
	if err != nil {
		return nil, err
	}
	throwsMarker := ast.ThrowsNone
	tbefore := c.Save()
	if _, e := lexer.Keyword("throws")(c); e == nil {
		throwsMarker = ast.ThrowsThrows
	} else if _, e := lexer.Keyword("rethrows")(c); e == nil {
		throwsMarker = ast.ThrowsRethrows
	} else {
		c.Restore(tbefore)
	}
	var body *ast.CodeBlock
	bbefore := c.Save()
	if blk, e := combinator.Try(combinator.Parser[*ast.CodeBlock](parseCodeBlock))(c); e == nil {
		body = blk
	} else {
		c.Restore(bbefore)
	}
	return ast.InitializerDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
		Kind: kind, GenericParams: generics, Parameters: params, Throws: throwsMarker, Body: body,
	}, nil
}

func parseDeinitializerDeclarationBody(c *cursor.Cursor, start cursor.Position) (ast.Declaration, *diagnostics.ParseError) {
	body, err := parseCodeBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.DeinitializerDeclaration{Span: ast.Span{Start: start, End: c.Position()}, Body: body}, nil
}

func parseExtensionDeclarationBody(c *cursor.Cursor, start cursor.Position) (ast.Declaration, *diagnostics.ParseError) {
	nameTok, err := lexer.Ident(c)
	if err != nil {
		return nil, err
	}
	inheritance := parseOptionalTypeInheritanceClause(c)
	members, err := parseMemberBlock(c)
	if err != nil {
		return nil, err
	}
	return ast.ExtensionDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Name: nameTok.Lexeme,
		Inheritance: inheritance, Members: members,
	}, nil
}

func parseSubscriptDeclarationBody(c *cursor.Cursor, start cursor.Position, attrs []ast.Attribute, mods []string) (ast.Declaration, *diagnostics.ParseError) {
	params, err := parseParameterClause(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.OperatorSymbol("->")(c); e != nil {
		return nil, e
	}
	result, err := ParseType(c)
	if err != nil {
		return nil, err
	}
	if _, e := lexer.Punct("{")(c); e != nil {
		return nil, e
	}
	decl, err := parseComputedOrObservedBody(c, start, attrs, mods, "", result)
	if err != nil {
		return nil, err
	}
	variable := decl.(ast.VariableDeclaration)
	return ast.SubscriptDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Attributes: attrs, Modifiers: mods,
		Parameters: params, Result: result,
		Getter: variable.Getter, Setter: variable.Setter, SetterName: variable.SetterName,
	}, nil
}

func tryParseOperatorFixity(c *cursor.Cursor) (ast.OperatorFixity, bool) {
	before := c.Save()
	if _, e := lexer.Keyword("prefix")(c); e == nil {
		if _, e2 := lexer.Keyword("operator")(c); e2 == nil {
			return ast.FixityPrefix, true
		}
	}
	c.Restore(before)
	if _, e := lexer.Keyword("postfix")(c); e == nil {
		if _, e2 := lexer.Keyword("operator")(c); e2 == nil {
			return ast.FixityPostfix, true
		}
	}
	c.Restore(before)
	if _, e := lexer.Keyword("infix")(c); e == nil {
		if _, e2 := lexer.Keyword("operator")(c); e2 == nil {
			return ast.FixityInfix, true
		}
	}
	c.Restore(before)
	return "", false
}

// parseOperatorDeclarationBody parses `<fixity> operator <op> { precedence?
// associativity? }`, defaulting precedence/associativity per config's
// Swift-standard-library values when the body omits a clause.
func parseOperatorDeclarationBody(c *cursor.Cursor, start cursor.Position, fixity ast.OperatorFixity) (ast.Declaration, *diagnostics.ParseError) {
	opTok, err := lexer.Operator(c)
	if err != nil {
		return nil, err
	}
	precedence := (*int)(nil)
	assoc := ast.AssocUnset

	if _, e := lexer.Punct("{")(c); e == nil {
		for {
			before := c.Save()
			if _, e := lexer.Punct("}")(c); e == nil {
				break
			}
			c.Restore(before)
			if _, e := lexer.Keyword("precedence")(c); e == nil {
				intTok, err := lexer.Integer(c)
				if err != nil {
					return nil, err
				}
				n, convErr := strconv.Atoi(intTok.Lexeme)
				if convErr != nil || n < config.MinPrecedence || n > config.MaxPrecedence {
					return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "precedence out of range 0..255")
				}
				precedence = &n
				continue
			}
			c.Restore(before)
			if _, e := lexer.Keyword("associativity")(c); e == nil {
				if _, e := lexer.Keyword("left")(c); e == nil {
					assoc = ast.AssocLeft
				} else if _, e := lexer.Keyword("right")(c); e == nil {
					assoc = ast.AssocRight
				} else if _, e := lexer.Keyword("none")(c); e == nil {
					assoc = ast.AssocNone
				} else {
					return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected 'left', 'right', or 'none'")
				}
				continue
			}
			c.Restore(before)
			return nil, diagnostics.NewParseError(diagnostics.KindSyntax, c.Position(), "expected 'precedence', 'associativity', or '}'")
		}
	}

	return ast.OperatorDeclaration{
		Span: ast.Span{Start: start, End: c.Position()}, Fixity: fixity, Symbol: opTok.Lexeme,
		Precedence: precedence, Associativity: assoc,
	}, nil
}
