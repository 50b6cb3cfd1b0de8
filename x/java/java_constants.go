package java

// tree-sitter-java 语法节点种类
const (
	kindProgram            = "program"
	kindPackageDecl        = "package_declaration"
	kindImportDecl         = "import_declaration"
	kindClassDecl          = "class_declaration"
	kindInterfaceDecl      = "interface_declaration"
	kindEnumDecl           = "enum_declaration"
	kindRecordDecl         = "record_declaration"
	kindAnnotationTypeDecl = "annotation_type_declaration"
	kindClassBody          = "class_body"
	kindEnumConstant       = "enum_constant"
	kindFieldDecl          = "field_declaration"
	kindConstantDecl       = "constant_declaration"
	kindLocalVarDecl       = "local_variable_declaration"
	kindVariableDeclarator = "variable_declarator"
	kindMethodDecl         = "method_declaration"
	kindConstructorDecl    = "constructor_declaration"
	kindCompactConstructor = "compact_constructor_declaration"
	kindAnnotationElement  = "annotation_type_element_declaration"
	kindFormalParameters   = "formal_parameters"
	kindFormalParameter    = "formal_parameter"
	kindSpreadParameter    = "spread_parameter"
	kindCatchFormalParam   = "catch_formal_parameter"
	kindResource           = "resource"
	kindEnhancedFor        = "enhanced_for_statement"
	kindLambda             = "lambda_expression"
	kindInferredParameters = "inferred_parameters"
	kindInstanceof         = "instanceof_expression"
	kindTypePattern        = "type_pattern"
	kindMethodInvocation   = "method_invocation"
	kindFieldAccess        = "field_access"
	kindObjectCreation     = "object_creation_expression"
	kindArgumentList       = "argument_list"
	kindModifiers          = "modifiers"
	kindMarkerAnnotation   = "marker_annotation"
	kindAnnotation         = "annotation"
	kindAnnotationArgList  = "annotation_argument_list"
	kindElementValuePair   = "element_value_pair"
	kindElementValueArray  = "element_value_array_initializer"
	kindIdentifier         = "identifier"
	kindThis               = "this"
	kindSuper              = "super"
	kindClassLiteral       = "class_literal"
	kindParenthesized      = "parenthesized_expression"
	kindCast               = "cast_expression"
	kindTernary            = "ternary_expression"
	kindBinary             = "binary_expression"
	kindArrayAccess        = "array_access"
	kindStringLiteral      = "string_literal"
	kindCharacterLiteral   = "character_literal"
	kindDimensions         = "dimensions"
	kindMethodReference    = "method_reference"
	kindScopedIdentifier   = "scoped_identifier"
	kindSuperclass         = "superclass"
	kindSuperInterfaces    = "super_interfaces"
	kindExtendsInterfaces  = "extends_interfaces"
	kindLabeledStatement   = "labeled_statement"
	kindBreakStatement     = "break_statement"
	kindContinueStatement  = "continue_statement"
	kindLineComment        = "line_comment"
	kindBlockComment       = "block_comment"
	kindError              = "ERROR"
	kindScopedTypeIdent    = "scoped_type_identifier"
)

// 类型引用的语法种类，转换后统一成 model.NodeType 叶子节点
var typeKinds = map[string]bool{
	"type_identifier":     true,
	kindScopedTypeIdent:   true,
	"generic_type":        true,
	"array_type":          true,
	"integral_type":       true,
	"floating_point_type": true,
	"boolean_type":        true,
	"void_type":           true,
}

var literalKinds = map[string]bool{
	"decimal_integer_literal":        true,
	"hex_integer_literal":            true,
	"octal_integer_literal":          true,
	"binary_integer_literal":         true,
	"decimal_floating_point_literal": true,
	"hex_floating_point_literal":     true,
	"true":                           true,
	"false":                          true,
	kindCharacterLiteral:             true,
	kindStringLiteral:                true,
	"null_literal":                   true,
}

// 引入新作用域的语法种类
var scopeKinds = map[string]bool{
	"block":                        true,
	"constructor_body":             true,
	"switch_block":                 true,
	"switch_block_statement_group": true,
	"switch_rule":                  true,
	"for_statement":                true,
	kindEnhancedFor:                true,
	"catch_clause":                 true,
	"try_with_resources_statement": true,
	kindLambda:                     true,
	"static_initializer":           true,
}

var primitiveTypes = map[string]bool{
	"byte": true, "short": true, "int": true, "long": true, "char": true,
	"float": true, "double": true, "boolean": true, "void": true,
}

// Java 关键字修饰符
const (
	modPublic    = "public"
	modPrivate   = "private"
	modProtected = "protected"
	modStatic    = "static"
	modFinal     = "final"
	modAbstract  = "abstract"
)

const (
	objectQN = "java.lang.Object"
	stringQN = "java.lang.String"
	classQN  = "java.lang.Class"
	enumQN   = "java.lang.Enum"
	recordQN = "java.lang.Record"
)
