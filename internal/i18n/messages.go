package i18n

// Message keys for lexer and parser errors
const (
	ErrAtLine  = "lexer.at_line"  // args: line, message
	ErrGeneric = "parser.generic" // args: line, column, message

	ErrUnterminatedString = "lexer.unterminated_string"
	ErrInvalidNumber      = "lexer.invalid_number" // args: literal

	ErrTrailingTypeInput           = "parser.trailing_type_input"  // args: typeString
	ErrStatementNotTerminated      = "parser.statement_not_terminated"
	ErrUnexpectedCharacter         = "parser.unexpected_character" // args: character
	ErrDecoratorNotCall            = "parser.decorator_not_call"
	ErrInvalidVariableName         = "parser.invalid_variable_name"
	ErrExpectAssignOrDraw          = "parser.expect_assign_or_draw"
	ErrImportPathMissing           = "parser.import_path_missing"
	ErrInvalidImportPath           = "parser.invalid_import_path"
	ErrInvalidVariableType         = "parser.invalid_variable_type"
	ErrGenericNotClosed            = "parser.generic_not_closed"
	ErrExpectRParenArgs            = "parser.expect_rparen_args"
	ErrExpectPropertyName          = "parser.expect_property_name"
	ErrUnnamedArgument             = "parser.unnamed_argument"
	ErrExpectRParenExpr            = "parser.expect_rparen_expr"
	ErrExpectExpression            = "parser.expect_expression"
	ErrExpectLoopVariable          = "parser.expect_loop_variable"
	ErrExpectIn                    = "parser.expect_in"
	ErrExpectRBracketComprehension = "parser.expect_rbracket_comprehension"
	ErrExpectRBracketArray         = "parser.expect_rbracket_array"
)

// Message keys for component libraries
const (
	ErrLibraryEmpty       = "library.empty"
	ErrLibraryDecode      = "library.decode"
	ErrLibraryMissingRoot = "library.missing_root"
	ErrLibraryOpen        = "library.open" // args: path
	ErrLibraryLoad        = "library.load" // args: path
	ErrLibraryNoName      = "library.no_name"

	ErrTypeIncomplete      = "library.type_incomplete"       // args: libraryName
	ErrDuplicateType       = "library.duplicate_type"        // args: qualifiedName
	ErrInType              = "library.in_type"               // args: qualifiedName
	ErrInProperty          = "library.in_property"           // args: qualifiedName, property
	ErrInGenerator         = "library.in_generator"          // args: qualifiedName
	ErrGeneratorIncomplete = "library.generator_incomplete"
	ErrGeneratorKind       = "library.generator_kind"        // args: kind
	ErrNotDistributionType = "library.not_distribution_type" // args: typeString
	ErrArgumentNoName      = "library.argument_no_name"
	ErrInArgument          = "library.in_argument"           // args: argument
	ErrDuplicateName       = "library.duplicate_name"        // args: name

	ErrUnknownNamespace = "symbol.unknown_namespace" // args: namespace
)

// Message keys for type errors
const (
	ErrUnknownType               = "types.unknown_type"              // args: name
	ErrTypeArity                 = "types.type_arity"                // args: name, count
	ErrAssignMismatch            = "types.assign_mismatch"           // args: exprType, variable, varType
	HintUseDraw                  = "types.hint_use_draw"
	ErrNotADistribution          = "types.not_a_distribution"        // args: exprType
	ErrUnaryNotSupported         = "types.unary_not_supported"       // args: op, type
	ErrBinaryNotSupported        = "types.binary_not_supported"      // args: op, left, right
	ErrUnknownFunction           = "types.unknown_function"          // args: name
	ErrNoMatchingOverload        = "types.no_matching_overload"      // args: name
	ErrNoCommonElementType       = "types.no_common_element_type"    // args: types
	ErrNotIterable               = "types.not_iterable"              // args: type
	ErrNotIterablePairs          = "types.not_iterable_pairs"        // args: type
	ErrUnknownProperty           = "types.unknown_property"          // args: property, type
	ErrUnknownVariable           = "types.unknown_variable"          // args: name
	ErrWrongArgumentType         = "types.wrong_argument_type"       // args: generator, argument, expected, got
	ErrCannotInferTypeParameter  = "types.cannot_infer_type_param"   // args: param, generator, candidates
	ErrCannotInferGenerated      = "types.cannot_infer_generated"    // args: generator
	ErrUnnamedArgumentNotAllowed = "types.unnamed_argument"          // args: generator
	ErrNoSuchArgument            = "types.no_such_argument"          // args: generator, argument
	ErrDuplicateArgument         = "types.duplicate_argument"        // args: generator, argument
	ErrMissingRequiredArgument   = "types.missing_required_argument" // args: generator, argument
)

// Message keys for configuration
const (
	ErrConfigDecode   = "config.decode"   // args: path
	ErrConfigLanguage = "config.language" // args: language
)

// Message keys for CLI
const (
	// Usage and help
	MsgUsage          = "cli.usage"
	MsgCommands       = "cli.commands"
	MsgCmdCheck       = "cli.cmd_check"
	MsgCmdParse       = "cli.cmd_parse"
	MsgCmdFmt         = "cli.cmd_fmt"
	MsgCmdTypes       = "cli.cmd_types"
	MsgCmdLibs        = "cli.cmd_libs"
	MsgCmdVersion     = "cli.cmd_version"
	MsgCmdHelp        = "cli.cmd_help"
	MsgUseHelp        = "cli.use_help"
	MsgUnknownCommand = "cli.unknown_command" // args: command

	// Command usage
	MsgCheckUsage       = "cli.check_usage"
	MsgCheckDescription = "cli.check_description"
	MsgCheckArgInput    = "cli.check_arg_input"
	MsgParseUsage       = "cli.parse_usage"
	MsgParseDescription = "cli.parse_description"
	MsgFmtUsage         = "cli.fmt_usage"
	MsgFmtDescription   = "cli.fmt_description"
	MsgTypesUsage       = "cli.types_usage"
	MsgTypesDescription = "cli.types_description"
	MsgLibsUsage        = "cli.libs_usage"
	MsgLibsDescription  = "cli.libs_description"
	MsgArgFile          = "cli.arg_file"
	MsgOptVerbose       = "cli.opt_verbose"
	MsgOptFold          = "cli.opt_fold"
	MsgOptWrite         = "cli.opt_write"

	// Common errors
	ErrInputRequired     = "cli.input_required"
	ErrCannotGetCwd      = "cli.cannot_get_cwd"  // args: error
	ErrCannotAccessInput = "cli.cannot_access_input"
	ErrCannotLoadConfig  = "cli.cannot_load_config"
	ErrCannotReadFile    = "cli.cannot_read_file"
	ErrCannotWriteFile   = "cli.cannot_write_file"
	ErrCannotLoadLibrary = "cli.cannot_load_library"
	ErrImportFailed      = "cli.import_failed"
	ErrNoScriptFiles     = "cli.no_script_files" // args: dir
	ErrCheckFailed       = "cli.check_failed"    // args: errorCount, fileCount

	// Info messages
	MsgUsingConfig   = "cli.using_config"   // args: configPath, project
	MsgNoConfig      = "cli.no_config"
	MsgChecking      = "cli.checking"       // args: path
	MsgLoadedLibrary = "cli.loaded_library" // args: name, path
	MsgLibsNotFound  = "cli.libs_not_found" // args: path
	MsgCheckSuccess  = "cli.check_success"  // args: fileCount
	MsgFormatted     = "cli.formatted"      // args: path
	MsgVersion       = "cli.version"        // args: version
	MsgNamespace     = "cli.namespace"      // args: namespace
)
