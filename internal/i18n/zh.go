package i18n

// zhMessages contains Chinese translations
var zhMessages = map[string]string{
	// Lexer and parser errors
	ErrAtLine:  "第 %d 行: %s",
	ErrGeneric: "第 %d 行第 %d 列: %s",

	ErrUnterminatedString: "字符串未结束。",
	ErrInvalidNumber:      "无效的数字 '%s'。",

	ErrTrailingTypeInput:           "类型 '%s' 之后有多余的输入。",
	ErrStatementNotTerminated:      "语句必须以换行结束。",
	ErrUnexpectedCharacter:         "意外的字符 '%s'。",
	ErrDecoratorNotCall:            "装饰器只能是函数调用。",
	ErrInvalidVariableName:         "无效的变量名。",
	ErrExpectAssignOrDraw:          "期望赋值或抽样。",
	ErrImportPathMissing:           "必须提供导入路径。",
	ErrInvalidImportPath:           "无效的导入路径。",
	ErrInvalidVariableType:         "无效的变量类型。",
	ErrGenericNotClosed:            "泛型类型必须以 '>' 结束。",
	ErrExpectRParenArgs:            "参数之后期望 ')'。",
	ErrExpectPropertyName:          "'.' 之后期望属性名。",
	ErrUnnamedArgument:             "只有一个参数时才能省略参数名。",
	ErrExpectRParenExpr:            "表达式之后期望 ')'。",
	ErrExpectExpression:            "期望表达式。",
	ErrExpectLoopVariable:          "'for' 之后期望变量名。",
	ErrExpectIn:                    "循环变量之后期望 'in'。",
	ErrExpectRBracketComprehension: "列表推导式之后期望 ']'。",
	ErrExpectRBracketArray:         "数组元素之后期望 ']'。",

	// Component libraries
	ErrLibraryEmpty:       "组件库为空",
	ErrLibraryDecode:      "无法解码组件库",
	ErrLibraryMissingRoot: "缺少顶层键 componentLibrary",
	ErrLibraryOpen:        "无法打开 %s",
	ErrLibraryLoad:        "无法加载组件库 %s",
	ErrLibraryNoName:      "组件库没有名称",

	ErrTypeIncomplete:      "组件库 %s 声明了缺少名称或命名空间的类型",
	ErrDuplicateType:       "类型 %s 被重复声明",
	ErrInType:              "在类型 %s 中",
	ErrInProperty:          "在类型 %[1]s 的属性 %[2]s 中",
	ErrInGenerator:         "在生成器 %s 中",
	ErrGeneratorIncomplete: "生成器缺少名称或命名空间",
	ErrGeneratorKind:       "未知的生成器类型 %q，应为 function 或 distribution",
	ErrNotDistributionType: "分布生成 %s，但它不是 Distribution",
	ErrArgumentNoName:      "参数缺少名称",
	ErrInArgument:          "在参数 %s 中",
	ErrDuplicateName:       "%s 被重复声明",

	ErrUnknownNamespace: "未知的命名空间 `%s`",

	// Type errors
	ErrUnknownType:               "未知类型: %s",
	ErrTypeArity:                 "类型 `%s` 需要 %d 个类型参数",
	ErrAssignMismatch:            "类型为 `%s` 的表达式不能赋值给类型为 `%[3]s` 的变量 `%[2]s`",
	HintUseDraw:                  "请使用 `~` 代替 `=` 从分布中抽样。",
	ErrNotADistribution:          "类型为 `%s` 的表达式不是分布。是否想用 `=` 代替 `~` 进行赋值？",
	ErrUnaryNotSupported:         "类型 `%[2]s` 不支持运算 `%[1]s`",
	ErrBinaryNotSupported:        "类型 `%[2]s` 和 `%[3]s` 不支持运算 `%[1]s`",
	ErrUnknownFunction:           "未知函数 `%s`",
	ErrNoMatchingOverload:        "`%s` 没有与参数匹配的重载",
	ErrNoCommonElementType:       "数组元素的类型 %s 没有公共类型",
	ErrNotIterable:               "类型为 `%s` 的表达式不能迭代",
	ErrNotIterablePairs:          "类型为 `%s` 的表达式不是二元组向量，不能解包为两个变量",
	ErrUnknownProperty:           "类型 `%[2]s` 没有属性 `%[1]s`",
	ErrUnknownVariable:           "未知变量 `%s`",
	ErrWrongArgumentType:         "`%s` 的参数 `%s` 期望 `%s`，实际是 `%s`",
	ErrCannotInferTypeParameter:  "无法从 %[3]s 推断 `%[2]s` 的类型参数 `%[1]s`",
	ErrCannotInferGenerated:      "无法推断 `%s` 生成的类型",
	ErrUnnamedArgumentNotAllowed: "`%s` 有多个参数，必须写出参数名",
	ErrNoSuchArgument:            "`%s` 没有参数 `%s`",
	ErrDuplicateArgument:         "`%s` 的参数 `%s` 被重复传入",
	ErrMissingRequiredArgument:   "`%s` 缺少必需参数 `%s`",

	// Configuration
	ErrConfigDecode:   "无法解码 %s",
	ErrConfigLanguage: "不支持的语言 %q",

	// CLI - Usage and help
	MsgUsage:          "用法: phylospec <命令> [参数]",
	MsgCommands:       "命令:",
	MsgCmdCheck:       "  check    对 PhyloSpec 脚本进行类型检查",
	MsgCmdParse:       "  parse    打印脚本的规范形式",
	MsgCmdFmt:         "  fmt      格式化脚本",
	MsgCmdTypes:       "  types    打印脚本中每个变量的类型",
	MsgCmdLibs:        "  libs     列出已加载的组件库",
	MsgCmdVersion:     "  version  打印版本信息",
	MsgCmdHelp:        "  help     打印帮助信息",
	MsgUseHelp:        "使用 \"phylospec <命令> -h\" 获取命令的更多信息。",
	MsgUnknownCommand: "未知命令: %s",

	// CLI - Commands
	MsgCheckUsage:       "用法: phylospec check [选项] <输入>",
	MsgCheckDescription: "解析 PhyloSpec 脚本并进行类型检查。目录会被搜索 .phylospec 文件。",
	MsgCheckArgInput:    "  <输入>    输入文件或目录",
	MsgParseUsage:       "用法: phylospec parse [选项] <文件>",
	MsgParseDescription: "解析脚本并以规范形式打印。",
	MsgFmtUsage:         "用法: phylospec fmt [选项] <文件>",
	MsgFmtDescription:   "格式化脚本。未指定 -w 时打印结果。",
	MsgTypesUsage:       "用法: phylospec types [选项] <文件>",
	MsgTypesDescription: "打印脚本中每个变量的类型和随机性。",
	MsgLibsUsage:        "用法: phylospec libs [选项] [目录]",
	MsgLibsDescription:  "列出已加载组件库的命名空间、类型和生成器。",
	MsgArgFile:          "  <文件>     输入文件",
	MsgOptVerbose:       "详细输出",
	MsgOptFold:          "计算字面量上的运算",
	MsgOptWrite:         "将结果写回文件",

	// CLI - Common errors
	ErrInputRequired:     "错误: 需要输入文件或目录",
	ErrCannotGetCwd:      "错误: 无法获取当前目录: %v",
	ErrCannotAccessInput: "无法访问输入",
	ErrCannotLoadConfig:  "无法加载配置",
	ErrCannotReadFile:    "无法读取文件",
	ErrCannotWriteFile:   "无法写入文件",
	ErrCannotLoadLibrary: "无法加载组件库",
	ErrImportFailed:      "无法导入配置的命名空间",
	ErrNoScriptFiles:     "在 %s 中未找到 .phylospec 文件",
	ErrCheckFailed:       "在 %[2]d 个文件中发现 %[1]d 个错误",

	// CLI - Info messages
	MsgUsingConfig:   "使用配置: %s (项目: %s)",
	MsgNoConfig:      "未找到 phylospec.toml，使用默认配置",
	MsgChecking:      "正在检查: %s",
	MsgLoadedLibrary: "已从 %[2]s 加载组件库 %[1]s",
	MsgLibsNotFound:  "组件库目录未找到: %s",
	MsgCheckSuccess:  "已检查 %d 个文件，没有错误",
	MsgFormatted:     "已格式化: %s",
	MsgVersion:       "phylospec 版本 %s",
	MsgNamespace:     "命名空间 %s",
}
