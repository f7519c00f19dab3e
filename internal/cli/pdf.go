package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"pdfapi/pkg/config"
	"pdfapi/pkg/model"
	"pdfapi/pkg/pdf"
)

type mergeOpts struct {
	fileNames  []string
	outputFile string
}

func MergeCommand() *cobra.Command {
	opts := mergeOpts{}

	mergeCmd := &cobra.Command{
		Use:     "merge",
		Example: "pdfapi merge --files scan.jpg,notes.txt --files cover.png --output-file merged.pdf",
		Short:   "Merge images, text and other files into one PDF, one page per file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return MergeFiles(opts.fileNames, opts.outputFile, config.DefaultDocumentConfig())
		},
	}

	mergeCmd.Flags().StringSliceVar(&opts.fileNames, "files", nil, "Files to merge in page order. Can be comma separated, or you can supply the files param several times with each file")
	mergeCmd.Flags().StringVar(&opts.outputFile, "output-file", config.DefaultMergedPDFName, "Path of the merged PDF")

	MarkFlagsRequired(mergeCmd, "files")
	return mergeCmd
}

func MergeFiles(fileNames []string, outputPath string, c config.DocumentConfig) error {
	s := NewSpinner()
	s.Prefix = "Reading files "
	s.Start()
	defer s.Stop()

	files := make([]model.InputFile, 0, len(fileNames))
	for _, fileName := range fileNames {
		content, err := os.ReadFile(fileName)
		if err != nil {
			return err
		}
		files = append(files, model.InputFile{Name: filepath.Base(fileName), Content: content})
	}

	s.Prefix = "Rendering pages "
	assembler := pdf.NewAssembler(pdf.NewLibrary(c))
	merged, err := pdf.Merge(assembler, files)
	if err != nil {
		return err
	}

	s.Prefix = "Writing PDF to disk "
	if err = os.WriteFile(outputPath, merged, 0664); err != nil {
		return err
	}

	stats := assembler.Stats()
	s.FinalMSG = fmt.Sprintf("Generated %s (%s) with %d pages from: %s\n",
		outputPath, humanize.Bytes(uint64(stats.OutputSize)), stats.PagesWritten, strings.Join(fileNames, ","))
	return nil
}

func SplitCommand() *cobra.Command {
	var sourceFile, outputDir string

	splitCmd := &cobra.Command{
		Use:     "split",
		Example: "pdfapi split --source report.pdf --output-dir pages",
		Short:   "Split a PDF into per-page text files, or the page images when a page has no text",
		RunE: func(cmd *cobra.Command, args []string) error {
			return SplitFile(sourceFile, outputDir, config.DefaultDocumentConfig())
		},
	}

	splitCmd.Flags().StringVar(&sourceFile, "source", "", "PDF to split")
	splitCmd.Flags().StringVar(&outputDir, "output-dir", ".", "Directory for the extracted files")

	MarkFlagsRequired(splitCmd, "source")
	return splitCmd
}

func SplitFile(sourcePath, outputDir string, c config.DocumentConfig) error {
	s := NewSpinner()
	s.Prefix = "Reading PDF from disk "
	s.Start()
	defer s.Stop()

	content, err := os.ReadFile(sourcePath)
	if err != nil {
		return err
	}

	s.Prefix = "Extracting pages "
	disassembler := pdf.NewDisassembler(pdf.NewLibrary(c))
	outputs, err := disassembler.Disassemble(filepath.Base(sourcePath), content)
	if err != nil {
		return err
	}

	s.Prefix = "Writing extracted files to disk "
	if err = os.MkdirAll(outputDir, 0775); err != nil {
		return err
	}
	fileNames := make([]string, 0, len(outputs))
	for _, output := range outputs {
		fileNames = append(fileNames, output.Name)
		if err = os.WriteFile(filepath.Join(outputDir, output.Name), output.Content, 0664); err != nil {
			return err
		}
	}

	stats := disassembler.Stats()
	s.FinalMSG = fmt.Sprintf("Extracted %d files from %d pages of %s: %s\n",
		len(outputs), stats.PageCount, sourcePath, strings.Join(fileNames, ","))
	return nil
}
