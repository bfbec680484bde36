package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/phylospec/phylospec/internal/fold"
	"github.com/phylospec/phylospec/internal/i18n"
	"github.com/phylospec/phylospec/internal/parser"
)

// parseCmd 解析脚本并打印规范形式
func parseCmd(args []string) {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	foldLiterals := fs.Bool("fold", false, i18n.T(i18n.MsgOptFold))
	fs.Usage = commandUsage(fs, i18n.MsgParseUsage, i18n.MsgParseDescription, i18n.MsgArgFile)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	doc := mustParse(fs.Arg(0))
	if *foldLiterals {
		doc = &parser.Document{Stmts: fold.Stmts(doc.Stmts), Comments: doc.Comments}
	}
	fmt.Print(parser.PrintDocument(doc))
}

// fmtCmd 格式化脚本
func fmtCmd(args []string) {
	fs := flag.NewFlagSet("fmt", flag.ExitOnError)
	write := fs.Bool("w", false, i18n.T(i18n.MsgOptWrite))
	fs.Usage = commandUsage(fs, i18n.MsgFmtUsage, i18n.MsgFmtDescription, i18n.MsgArgFile)

	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	if fs.NArg() < 1 {
		printError(i18n.T(i18n.ErrInputRequired))
		fs.Usage()
		os.Exit(1)
	}

	path := fs.Arg(0)
	formatted := parser.PrintDocument(mustParse(path))

	if !*write {
		fmt.Print(formatted)
		return
	}

	// 写回原文件
	if err := os.WriteFile(path, []byte(formatted), 0644); err != nil {
		printError("Error: " + (&writeFileError{path: path, err: err}).Error())
		os.Exit(1)
	}
	printInfo(i18n.T(i18n.MsgFormatted, path))
}

// mustParse 解析脚本，有语法错误时打印并退出
func mustParse(path string) *parser.Document {
	doc, diags, err := parseFile(path)
	if err != nil {
		printError("Error: " + err.Error())
		os.Exit(1)
	}
	if len(diags) > 0 {
		for _, d := range diags {
			printError(d.String())
		}
		os.Exit(1)
	}
	return doc
}
