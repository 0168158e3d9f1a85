package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rail44/drills/internal/config"
	"github.com/rail44/drills/internal/formatter"
	"github.com/rail44/drills/internal/log"
	"github.com/rail44/drills/internal/report"
	"github.com/rail44/drills/luhn"
)

var strict bool

var luhnCmd = &cobra.Command{
	Use:   "luhn [number...]",
	Short: "Validate numbers with the Luhn checksum",
	Long: `Validate each number with the Luhn checksum. Spaces inside a number are
ignored; any other non-digit character makes it invalid.

With no arguments, or with "-", numbers are read from standard input, one
per line.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		allValid, err := runLuhn(cmd.OutOrStdout(), cmd.InOrStdin(), args, cfg, report.ColorEnabled(cfg.Color, os.Stdout))
		if err != nil {
			log.Error("luhn check failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if strict && !allValid {
			os.Exit(1)
		}
	},
}

func init() {
	luhnCmd.Flags().BoolVar(&strict, "strict", true, "exit with status 1 when any number is invalid")
	rootCmd.AddCommand(luhnCmd)

	checkDigitCmd.Flags().BoolP("quiet", "q", false, "print only the check digit")
	rootCmd.AddCommand(checkDigitCmd)
}

func runLuhn(out io.Writer, in io.Reader, args []string, cfg *config.Config, styled bool) (bool, error) {
	numbers := args
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		var err error
		numbers, err = readLines(in)
		if err != nil {
			return false, fmt.Errorf("failed to read numbers: %w", err)
		}
	}

	results := make([]report.LuhnResult, 0, len(numbers))
	allValid := true
	for _, n := range numbers {
		res := report.Check(n)
		log.Debug("checked", slog.String("number", res.Normalized), slog.Bool("valid", res.Valid))
		allValid = allValid && res.Valid
		results = append(results, res)
	}

	var output string
	if cfg.Format == config.FormatMarkdown {
		output = formatter.LuhnMarkdown(results)
	} else {
		output = report.Renderer{Styled: styled, Precision: cfg.Precision}.Luhn(results)
	}
	if _, err := io.WriteString(out, output); err != nil {
		return false, fmt.Errorf("failed to write results: %w", err)
	}
	return allValid, nil
}

// readLines returns the non-blank lines of r
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

var checkDigitCmd = &cobra.Command{
	Use:   "check-digit <payload>",
	Short: "Compute the Luhn check digit for a payload",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mustLoadConfig()

		quiet, _ := cmd.Flags().GetBool("quiet")
		if err := runCheckDigit(cmd.OutOrStdout(), args[0], quiet); err != nil {
			log.Error("failed to compute check digit", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func runCheckDigit(out io.Writer, payload string, quiet bool) error {
	digit, err := luhn.CheckDigit(payload)
	if err != nil {
		return err
	}

	if quiet {
		_, err = fmt.Fprintf(out, "%d\n", digit)
	} else {
		_, err = fmt.Fprintf(out, "%d\t%s%d\n", digit, luhn.Normalize(payload), digit)
	}
	return err
}
