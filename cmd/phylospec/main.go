package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phylospec/phylospec/internal/i18n"
)

const version = "0.1.0"

func main() {
	// 初始化国际化
	i18n.Init()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "check":
		checkCmd(os.Args[2:])
	case "parse":
		parseCmd(os.Args[2:])
	case "fmt":
		fmtCmd(os.Args[2:])
	case "types":
		typesCmd(os.Args[2:])
	case "libs":
		libsCmd(os.Args[2:])
	case "version":
		fmt.Println(i18n.T(i18n.MsgVersion, version))
	case "help":
		printUsage()
	default:
		printError(i18n.T(i18n.MsgUnknownCommand, os.Args[1]))
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(i18n.T(i18n.MsgUsage))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgCommands))
	fmt.Println(i18n.T(i18n.MsgCmdCheck))
	fmt.Println(i18n.T(i18n.MsgCmdParse))
	fmt.Println(i18n.T(i18n.MsgCmdFmt))
	fmt.Println(i18n.T(i18n.MsgCmdTypes))
	fmt.Println(i18n.T(i18n.MsgCmdLibs))
	fmt.Println(i18n.T(i18n.MsgCmdVersion))
	fmt.Println(i18n.T(i18n.MsgCmdHelp))
	fmt.Println()
	fmt.Println(i18n.T(i18n.MsgUseHelp))
}

// 辅助打印函数
func printError(msg string) {
	fmt.Fprintln(os.Stderr, msg)
}

func printInfo(msg string) {
	fmt.Println(msg)
}

func printWarning(msg string) {
	fmt.Fprintln(os.Stderr, "Warning:", msg)
}

// commandUsage 生成子命令的帮助信息
func commandUsage(fs *flag.FlagSet, usageKey, descriptionKey, argKey string) func() {
	return func() {
		fmt.Println(i18n.T(usageKey))
		fmt.Println()
		fmt.Println(i18n.T(descriptionKey))
		fmt.Println()
		fmt.Println("Arguments:")
		fmt.Println(i18n.T(argKey))
		fmt.Println()
		fmt.Println("Options:")
		fs.PrintDefaults()
	}
}
