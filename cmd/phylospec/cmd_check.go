package main

import (
	"flag"
	"os"

	"github.com/phylospec/phylospec/internal/i18n"
)

// checkCmd 解析并类型检查脚本
func checkCmd(args []string) {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))
	fs.Usage = commandUsage(fs, i18n.MsgCheckUsage, i18n.MsgCheckDescription, i18n.MsgCheckArgInput)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	input := fs.Arg(0)

	files, err := collectScripts(input)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	proj, err := loadProject(projectDir(input), *verbose)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	errorCount := 0
	for _, path := range files {
		a, err := proj.analyzeFile(path, *verbose)
		if err != nil {
			printError("Error: " + err.Error())
			os.Exit(1)
		}
		for _, d := range a.diags {
			printError(d.String())
		}
		errorCount += len(a.diags)
	}

	if errorCount > 0 {
		printError(i18n.T(i18n.ErrCheckFailed, errorCount, len(files)))
		os.Exit(1)
	}

	if *verbose {
		printInfo(i18n.T(i18n.MsgCheckSuccess, len(files)))
	}
}
