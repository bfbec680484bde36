package main

import (
	"flag"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/types"
)

// typesCmd 打印脚本中每个变量的类型和随机性
func typesCmd(args []string) {
	fs := flag.NewFlagSet("types", flag.ExitOnError)
	verbose := fs.Bool("v", false, i18n.T(i18n.MsgOptVerbose))
	fs.Usage = commandUsage(fs, i18n.MsgTypesUsage, i18n.MsgTypesDescription, i18n.MsgArgFile)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)

	proj, err := loadProject(projectDir(path), *verbose)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}

	a, err := proj.analyzeFile(path, *verbose)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
	for _, d := range a.diags {
		printError(d.String())
	}
	if a.resolver == nil {
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	writeVariables(w, a)
	w.Flush()

	if len(a.diags) > 0 {
		os.Exit(1)
	}
}

// writeVariables 每个变量一行: 名称 类型 随机性
func writeVariables(w *tabwriter.Writer, a *analysis) {
	stochasticity := types.ResolveStochasticity(a.stmts)
	for _, name := range a.resolver.Variables() {
		typ, ok := a.resolver.VariableType(name)
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", name, typ, stochasticity.Variable(name))
	}
}
