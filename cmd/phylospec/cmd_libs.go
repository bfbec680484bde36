package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phylospec/phylospec/internal/i18n"
)

// libsCmd 列出已加载组件库的命名空间和声明
func libsCmd(args []string) {
	fs := flag.NewFlagSet("libs", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))
	fs.Usage = commandUsage(fs, i18n.MsgLibsUsage, i18n.MsgLibsDescription, i18n.MsgCheckArgInput)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	// 默认从当前目录查找配置
	startDir := fs.Arg(0)
	if startDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			printError(i18n.T(i18n.ErrCannotGetCwd, err))
			os.Exit(1)
		}
		startDir = cwd
	}

	proj, err := loadProject(startDir, *verbose)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	for _, ns := range proj.registry.Namespaces() {
		fmt.Println(i18n.T(i18n.MsgNamespace, ns))
		for _, sym := range proj.registry.Symbols(ns) {
			fmt.Println("  " + describeSymbol(sym))
		}
	}
}
