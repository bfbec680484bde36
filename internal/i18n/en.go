package i18n

// enMessages contains English translations
var enMessages = map[string]string{
	// Lexer and parser errors
	ErrAtLine:  "line %d: %s",
	ErrGeneric: "line %d:%d: %s",

	ErrUnterminatedString: "Unterminated string.",
	ErrInvalidNumber:      "Invalid number '%s'.",

	ErrTrailingTypeInput:           "Unexpected input after type '%s'.",
	ErrStatementNotTerminated:      "Statement has to be terminated by a line break.",
	ErrUnexpectedCharacter:         "Unexpected character '%s'.",
	ErrDecoratorNotCall:            "Decorators can only be function calls.",
	ErrInvalidVariableName:         "Invalid variable name.",
	ErrExpectAssignOrDraw:          "Expect assignment or draw.",
	ErrImportPathMissing:           "Import path must be provided.",
	ErrInvalidImportPath:           "Invalid import path.",
	ErrInvalidVariableType:         "Invalid variable type.",
	ErrGenericNotClosed:            "Generic type must be closed with a '>'.",
	ErrExpectRParenArgs:            "Expect ')' after arguments.",
	ErrExpectPropertyName:          "Expect property name after '.'.",
	ErrUnnamedArgument:             "Arguments can only be omitted when there is only one argument.",
	ErrExpectRParenExpr:            "Expect ')' after expression.",
	ErrExpectExpression:            "Expect expression.",
	ErrExpectLoopVariable:          "Expect variable name after 'for'.",
	ErrExpectIn:                    "Expect 'in' after loop variables.",
	ErrExpectRBracketComprehension: "Expect ']' after list comprehension.",
	ErrExpectRBracketArray:         "Expect ']' after array elements.",

	// Component libraries
	ErrLibraryEmpty:       "component library is empty",
	ErrLibraryDecode:      "cannot decode component library",
	ErrLibraryMissingRoot: "missing top-level key componentLibrary",
	ErrLibraryOpen:        "cannot open %s",
	ErrLibraryLoad:        "cannot load library %s",
	ErrLibraryNoName:      "library has no name",

	ErrTypeIncomplete:      "library %s declares a type without name or namespace",
	ErrDuplicateType:       "type %s is declared twice",
	ErrInType:              "in type %s",
	ErrInProperty:          "in property %[2]s of type %[1]s",
	ErrInGenerator:         "in generator %s",
	ErrGeneratorIncomplete: "generator without name or namespace",
	ErrGeneratorKind:       "unknown generator type %q, expected function or distribution",
	ErrNotDistributionType: "distribution generates %s, which is not a Distribution",
	ErrArgumentNoName:      "argument without name",
	ErrInArgument:          "in argument %s",
	ErrDuplicateName:       "%s is declared twice",

	ErrUnknownNamespace: "Namespace `%s` is not known",

	// Type errors
	ErrUnknownType:               "Unknown type: %s",
	ErrTypeArity:                 "Type `%s` takes %d type parameters",
	ErrAssignMismatch:            "Expression of type `%s` cannot be assigned to variable `%s` of type `%s`",
	HintUseDraw:                  "Use `~` instead of `=` to draw from the distribution.",
	ErrNotADistribution:          "Expression of type `%s` is not a distribution. Do you want to assign it using `=` instead of `~`?",
	ErrUnaryNotSupported:         "Operation `%s` is not supported for type `%s`",
	ErrBinaryNotSupported:        "Operation `%s` is not supported for types `%s` and `%s`",
	ErrUnknownFunction:           "Function `%s` is not known",
	ErrNoMatchingOverload:        "No overload of `%s` matches the arguments",
	ErrNoCommonElementType:       "Array elements of types %s have no common type",
	ErrNotIterable:               "Expression of type `%s` cannot be iterated over",
	ErrNotIterablePairs:          "Expression of type `%s` is not a vector of pairs and cannot be unpacked into two variables",
	ErrUnknownProperty:           "Property `%s` is not defined for type `%s`",
	ErrUnknownVariable:           "Variable `%s` is not known",
	ErrWrongArgumentType:         "Argument `%[2]s` of `%[1]s` expects `%[3]s` but got `%[4]s`",
	ErrCannotInferTypeParameter:  "Cannot infer type parameter `%s` of `%s` from %s",
	ErrCannotInferGenerated:      "Cannot infer the type generated by `%s`",
	ErrUnnamedArgumentNotAllowed: "`%s` takes more than one argument, so arguments must be named",
	ErrNoSuchArgument:            "`%s` has no argument `%s`",
	ErrDuplicateArgument:         "Argument `%[2]s` of `%[1]s` is given twice",
	ErrMissingRequiredArgument:   "`%s` requires argument `%s`",

	// Configuration
	ErrConfigDecode:   "cannot decode %s",
	ErrConfigLanguage: "unsupported language %q",

	// CLI - Usage and help
	MsgUsage:          "Usage: phylospec <command> [arguments]",
	MsgCommands:       "Commands:",
	MsgCmdCheck:       "  check    Type-check PhyloSpec scripts",
	MsgCmdParse:       "  parse    Print the canonical form of a script",
	MsgCmdFmt:         "  fmt      Reformat a script",
	MsgCmdTypes:       "  types    Print the type of every variable in a script",
	MsgCmdLibs:        "  libs     List the loaded component libraries",
	MsgCmdVersion:     "  version  Print version information",
	MsgCmdHelp:        "  help     Print this help message",
	MsgUseHelp:        "Use \"phylospec <command> -h\" for more information about a command.",
	MsgUnknownCommand: "Unknown command: %s",

	// CLI - Commands
	MsgCheckUsage:       "Usage: phylospec check [options] <input>",
	MsgCheckDescription: "Parse and type-check PhyloSpec scripts. Directories are searched for .phylospec files.",
	MsgCheckArgInput:    "  <input>    Input file or directory",
	MsgParseUsage:       "Usage: phylospec parse [options] <file>",
	MsgParseDescription: "Parse a script and print it in canonical form.",
	MsgFmtUsage:         "Usage: phylospec fmt [options] <file>",
	MsgFmtDescription:   "Reformat a script. The result is printed unless -w is given.",
	MsgTypesUsage:       "Usage: phylospec types [options] <file>",
	MsgTypesDescription: "Print each variable of a script with its type and stochasticity.",
	MsgLibsUsage:        "Usage: phylospec libs [options] [dir]",
	MsgLibsDescription:  "List the namespaces, types and generators of the loaded component libraries.",
	MsgArgFile:          "  <file>     Input file",
	MsgOptVerbose:       "Verbose output",
	MsgOptFold:          "Evaluate operations on literals",
	MsgOptWrite:         "Write the result back to the file",

	// CLI - Common errors
	ErrInputRequired:     "Error: input file or directory is required",
	ErrCannotGetCwd:      "Error: cannot get current directory: %v",
	ErrCannotAccessInput: "cannot access input",
	ErrCannotLoadConfig:  "cannot load config",
	ErrCannotReadFile:    "cannot read file",
	ErrCannotWriteFile:   "cannot write file",
	ErrCannotLoadLibrary: "cannot load component library",
	ErrImportFailed:      "cannot import configured namespace",
	ErrNoScriptFiles:     "no .phylospec files found in %s",
	ErrCheckFailed:       "found %d errors in %d files",

	// CLI - Info messages
	MsgUsingConfig:   "Using config: %s (project: %s)",
	MsgNoConfig:      "No phylospec.toml found, using defaults",
	MsgChecking:      "Checking: %s",
	MsgLoadedLibrary: "Loaded library %s from %s",
	MsgLibsNotFound:  "libs directory not found: %s",
	MsgCheckSuccess:  "Checked %d files, no errors",
	MsgFormatted:     "Formatted: %s",
	MsgVersion:       "phylospec version %s",
	MsgNamespace:     "namespace %s",
}
