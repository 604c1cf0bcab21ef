package main

import (
	"fmt"
	"os"
	"time"

	"textreports/cli"
	"textreports/loader"
	"textreports/logger"
	"textreports/report"
	"textreports/stats"
	"textreports/util"
)

func help() {
	fmt.Println("compute-statistics - descriptive statistics over a file of numbers")
	fmt.Println()
	fmt.Println("Usage: compute-statistics <file_path>")
	fmt.Println("----------------------------------")
	fmt.Println("Subcommands:")
	fmt.Println("    cli:                            pick the input file interactively")
	fmt.Println("    -help:                          list all commands")
	fmt.Println()
	fmt.Println("Reads one number per line, skips lines that do not parse, and writes")
	fmt.Println("the report to " + report.StatisticsFile + " in the working directory.")
}

func run(path string) error {
	fmt.Printf("Reading data from: %s\n\n", path)

	start := time.Now()

	numbers, _, err := loader.Numbers(path)
	if err != nil {
		return err
	}
	if len(numbers) == 0 {
		return fmt.Errorf("no valid numbers found in the file")
	}

	summary := stats.Describe(numbers)
	elapsed := time.Since(start)

	return report.Save(report.Statistics(summary, elapsed), report.StatisticsFile)
}

func fatal(err error) {
	logger.HandleError(err)
	fmt.Println(util.TerminalRed + "Error: " + err.Error() + util.TerminalReset)
	os.Exit(1)
}

func main() {
	args := os.Args[1:]
	if len(args) != 1 {
		fmt.Println("Usage: compute-statistics <file_path>")
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
