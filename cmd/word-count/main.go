package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"textreports/cli"
	"textreports/loader"
	"textreports/logger"
	"textreports/report"
	"textreports/util"
	"textreports/wordfreq"
)

func help() {
	fmt.Println("word-count - frequency of each distinct word in a text or html file")
	fmt.Println()
	fmt.Println("Usage: word-count [-stem] <file_path>")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    cli:                            pick the input file interactively")
	fmt.Println("    -help:                          list all commands")
	fmt.Println("Options:")
	fmt.Println("    -stem:                          stem words with the English snowball")
	fmt.Println("                                    stemmer before counting")
	fmt.Println()
	fmt.Println("Splits the input on whitespace, folds words to lowercase, and writes the")
	fmt.Println("report to " + report.WordCountFile + " in the working directory.")
}

func run(path string, stem bool) error {
	fmt.Printf("Reading data from: %s\n\n", path)

	start := time.Now()

	words, err := loader.Words(path)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		fmt.Println(util.TerminalYellow + "Warning: No words found in the file." + util.TerminalReset)
		return nil
	}

	if stem {
		words, err = wordfreq.StemAll(words)
		if err != nil {
			return err
		}
	}

	frequency := wordfreq.Count(words)
	entries := wordfreq.SortedByWord(frequency)
	elapsed := time.Since(start)

	return report.Save(report.WordCounts(entries, len(words), elapsed), report.WordCountFile)
}

func fatal(err error) {
	logger.HandleError(err)
	fmt.Println(util.TerminalRed + "Error: " + err.Error() + util.TerminalReset)
	os.Exit(1)
}

func main() {
	flags := flag.NewFlagSet("word-count", flag.ContinueOnError)
	stem := flags.Bool("stem", false, "stem words before counting")
	flags.Usage = help

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(1)
	}

	args := flags.Args()
	if len(args) != 1 {
		fmt.Println("Usage: word-count [-stem] <file_path>")
		os.Exit(1)
	}

	switch args[0] {
	case "cli":
		if err := cli.Interactive(func(path string) error { return run(path, *stem) }); err != nil {
			fatal(err)
		}
	default:
		if err := run(args[0], *stem); err != nil {
			fatal(err)
		}
	}
}
