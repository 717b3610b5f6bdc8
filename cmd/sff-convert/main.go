package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/scantools/sff/pkg/logging"
	"github.com/scantools/sff/pkg/sff"
	"github.com/scantools/sff/pkg/sff/operations"
)

const version = "0.2.0"

var (
	inputPath   string
	outputBase  string
	outputKind  string
	logLevel    string
	versionFlag bool

	exportInput    string
	exportOutput   string
	exportCompress string

	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "sff-convert",
		Short: "Convert scanlation script files",
		Long:  `Convert scanlation script files between .sffx, .sffz and .txt`,
		Run:   convert,
	}

	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Input file (.sffx, .sffz or .txt) (required)")
	rootCmd.Flags().StringVarP(&outputBase, "output", "o", "", "Output base path, extension appended by kind (required)")
	rootCmd.Flags().StringVarP(&outputKind, "kind", "k", "raw", "Output kind (raw, zlib, txt)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")

	if err := rootCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := rootCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export the plain-text rendering through a compression codec",
		Long:  `Export the plain-text rendering through a compression codec, for handing scripts around without the sff tooling`,
		Run:   export,
	}

	exportCmd.Flags().StringVarP(&exportInput, "input", "i", "", "Input file (.sffx, .sffz or .txt) (required)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file path (required)")
	exportCmd.Flags().StringVarP(&exportCompress, "compress", "c", "gzip", fmt.Sprintf("Compression codec %v", operations.Names()))

	if err := exportCmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
	if err := exportCmd.MarkFlagRequired("output"); err != nil {
		panic(err)
	}

	rootCmd.AddCommand(exportCmd)
}

func main() {
	// Handle --version or -V before cobra parses other flags
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-V") {
		fmt.Printf("sff-convert %s\n", version)
		os.Exit(0)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func convert(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("sff-convert %s\n", version)
		return
	}

	logger := logging.NewCLILogger("sff-convert", logLevel)

	kind, err := parseKind(outputKind)
	if err != nil {
		logger.Error("Invalid output kind", "kind", outputKind, "error", err)
		os.Exit(1)
	}

	doc, err := sff.NewReaderWithLogger(inputPath, logger).Read()
	if err != nil {
		logger.Error("Failed to open document", "path", inputPath, "error", err)
		os.Exit(1)
	}

	path, err := sff.NewWriterWithLogger(logger).Write(doc, kind, outputBase)
	if err != nil {
		logger.Error("Failed to write document", "error", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Wrote %s (%d balloons, %d lines)\n", path, doc.BalloonCount(), doc.LineCount())
}

func export(cmd *cobra.Command, args []string) {
	logger := logging.NewCLILogger("sff-convert", logLevel)

	op, err := operations.FromString(exportCompress)
	if err != nil {
		logger.Error("Unknown compression codec", "codec", exportCompress, "error", err)
		os.Exit(1)
	}

	doc, err := sff.NewReaderWithLogger(exportInput, logger).Read()
	if err != nil {
		logger.Error("Failed to open document", "path", exportInput, "error", err)
		os.Exit(1)
	}

	data, err := op.Apply([]byte(doc.Text()))
	if err != nil {
		logger.Error("Compression failed", "codec", op.Name(), "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(exportOutput, data, 0644); err != nil {
		logger.Error("Failed to write export", "path", exportOutput, "error", err)
		os.Exit(1)
	}

	fmt.Printf("✓ Exported %s (%s, %d bytes)\n", exportOutput, op.Name(), len(data))
}

func parseKind(s string) (sff.OutputKind, error) {
	switch s {
	case "raw", "xml", "sffx":
		return sff.RawXML, nil
	case "zlib", "compressed", "sffz":
		return sff.CompressedXML, nil
	case "txt", "text":
		return sff.PlainText, nil
	default:
		return sff.RawXML, fmt.Errorf("expected raw, zlib or txt, got %q", s)
	}
}
