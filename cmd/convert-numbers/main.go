package main

import (
	"fmt"
	"os"
	"time"

	"textreports/cli"
	"textreports/loader"
	"textreports/logger"
	"textreports/radix"
	"textreports/report"
	"textreports/util"
)

func help() {
	fmt.Println("convert-numbers - binary and hexadecimal forms of non-negative integers")
	fmt.Println()
	fmt.Println("Usage: convert-numbers <file_path>")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    cli:                            pick the input file interactively")
	fmt.Println("    -help:                          list all commands")
	fmt.Println()
	fmt.Println("Reads one integer per line, skips negative and non-numeric lines, and")
	fmt.Println("writes the report to " + report.ConversionFile + " in the working directory.")
}

func run(path string) error {
	fmt.Printf("Reading data from: %s\n\n", path)

	start := time.Now()

	numbers, _, err := loader.Integers(path)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		return fmt.Errorf("no valid numbers found in the file")
	}

	conversions := radix.ConvertAll(numbers)
	elapsed := time.Since(start)

	return report.Save(report.Conversions(conversions, elapsed), report.ConversionFile)
}

func fatal(err error) {
	logger.HandleError(err)
	fmt.Println(util.TerminalRed + "Error: " + err.Error() + util.TerminalReset)
	os.Exit(1)
}

func main() {
	args := os.Args[1:]
	if len(args) != 1 {
		fmt.Println("Usage: convert-numbers <file_path>")
		os.Exit(1)
	}

	switch args[0] {
	case "cli":
		if err := cli.Interactive(run); err != nil {
			fatal(err)
		}
	case "-help":
		help()
	default:
		if err := run(args[0]); err != nil {
			fatal(err)
		}
	}
}
