package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scantools/sff/pkg/logging"
	"github.com/scantools/sff/pkg/sff"
)

const version = "0.2.0"

var (
	inputPath   string
	logLevel    string
	versionFlag bool
	rootCmd     *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "sff-inspect",
		Short: "Inspect scanlation script files",
		Long:  `Inspect scanlation script files: metadata, balloon and line counts, character totals`,
		Run:   inspect,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (.sffx, .sffz or .txt) (required)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("sff-inspect %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func inspect(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("sff-inspect %s\n", version)
		return
	}

	logger := logging.NewCLILogger("sff-inspect", logLevel)

	doc, err := sff.NewReaderWithLogger(inputPath, logger).Read()
	if err != nil {
		logger.Error("Failed to open document", "path", inputPath, "error", err)
		os.Exit(1)
	}

	images := 0
	for _, b := range doc.Balloons {
		if b.Image != nil {
			images++
		}
	}

	fmt.Printf("Script:       %s\n", doc.ScriptVersion)
	fmt.Printf("App:          %s\n", doc.AppVersion)
	fmt.Printf("Info:         %s\n", doc.Info)
	fmt.Printf("Balloons:     %d\n", doc.BalloonCount())
	fmt.Printf("Lines:        %d\n", doc.LineCount())
	fmt.Printf("TL chars:     %d\n", doc.TranslationChars())
	fmt.Printf("PR chars:     %d\n", doc.ProofreadChars())
	fmt.Printf("Comment chars: %d\n", doc.CommentChars())
	fmt.Printf("Images:       %d\n", images)
}
