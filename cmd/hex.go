package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/mabhi256/hexdiag/internal/ihex"
	"github.com/mabhi256/hexdiag/internal/tui"
	"github.com/mabhi256/hexdiag/utils"
	"github.com/spf13/cobra"
)

var outputFormat string

// errFormatInvalid signals a file that failed checking; the verdict has
// already been printed, so Execute exits nonzero without reprinting it.
var errFormatInvalid = errors.New("file format is not valid")

var hexFileCompletion = utils.CompleteFilesByExtension([]string{".hex", ".ihex", ".ihx"})

var validateCmd = &cobra.Command{
	Use:               "validate [hex-file]",
	Short:             "Validate an Intel HEX file",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: hexFileCompletion,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		return checkHexFileArg(args[0])
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}

		if !ihex.PrintVerdict(checkFile(lines)) {
			return errFormatInvalid
		}
		return nil
	},
}

var analyzeCmd = &cobra.Command{
	Use:               "analyze [hex-file]",
	Short:             "Analyze an Intel HEX file record by record",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: hexFileCompletion,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		validFormats := []string{"cli", "tui"}
		if !slices.Contains(validFormats, outputFormat) {
			return fmt.Errorf("invalid output format: %s. Valid options: %v", outputFormat, validFormats)
		}

		return checkHexFileArg(args[0])
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		lines, err := readLines(args[0])
		if err != nil {
			return err
		}

		// Record breakdown only happens for a fully valid file.
		if !ihex.PrintVerdict(checkFile(lines)) {
			fmt.Println("\n--> Stopped checking: the file's format is not valid")
			return errFormatInvalid
		}

		infos := ihex.Inspect(lines)
		switch outputFormat {
		case "tui":
			return tui.Run(args[0], infos)
		default:
			ihex.PrintReport(infos)
		}
		return nil
	},
}

// checkFile runs the record validity pass and, only if it succeeds, the
// End-Of-File placement pass.
func checkFile(lines []string) *ihex.Fault {
	if fault := ihex.AnalyzeLines(lines); fault != nil {
		return fault
	}
	return ihex.CheckTerminalRecord(lines)
}

func readLines(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %v", err)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read file: %v", err)
	}
	return lines, nil
}

func isValidHexFile(filename string) bool {
	for _, ext := range []string{".hex", ".ihex", ".ihx"} {
		if strings.HasSuffix(filename, ext) {
			return true
		}
	}
	return false
}

// checkHexFileArg rejects non-hex paths and missing files before a command
// runs; validate and analyze share it.
func checkHexFileArg(filename string) error {
	if !isValidHexFile(filename) {
		return fmt.Errorf("invalid hex file: %s", filename)
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return fmt.Errorf("file does not exist: %s", filename)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVarP(&outputFormat, "output", "o", "cli", "Output format")

	// When user types: hexdiag analyze file.hex -o <TAB>
	analyzeCmd.RegisterFlagCompletionFunc("output", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"cli", "tui"}, cobra.ShellCompDirectiveNoFileComp
	})
}
