package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/strcalc/internal/cli"
	"github.com/aretw0/strcalc/pkg/domain"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add [numbers]",
	Short: "Sum the numbers in the argument (or stdin)",
	Long: `Sums the numbers encoded in the argument. The two characters "\n" in the
argument stand for a newline. Without an argument standard input is used as is,
except that one trailing newline (as written by echo) is dropped.`,
	Example: `  strcalc add "1,2,3"
  strcalc add '//[*][%]\n1*2%3'
  echo 1,2 | strcalc add
  printf '//;\n1;2' | strcalc add`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}

		raw, err := readInput(args, cmd.InOrStdin())
		if err != nil {
			return err
		}

		calc, cleanup, err := buildCalculator(cmd.Context(), cfg, logger)
		if err != nil {
			return err
		}
		defer cleanup()

		res := calc.Calculate(cmd.Context(), raw)

		out := cmd.OutOrStdout()
		if asJSON {
			if err := json.NewEncoder(out).Encode(res); err != nil {
				return err
			}
		} else if res.Success {
			fmt.Fprintln(out, res.Value())
		}

		if !res.Success {
			if !asJSON {
				fmt.Fprintln(cmd.ErrOrStderr(), "error:", res.Error)
			}
			cleanup()
			os.Exit(1)
		}
		return nil
	},
}

// readInput returns the argument with "\n" escapes expanded, or stdin
// without the final line terminator.
func readInput(args []string, stdin io.Reader) (string, error) {
	if len(args) == 1 {
		return cli.Unescape(args[0]), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	raw := string(data)
	if !strings.HasSuffix(raw, "\n") {
		return raw, nil
	}
	trimmed := strings.TrimSuffix(raw[:len(raw)-1], "\r")
	// The newline closing a bare header line belongs to the header.
	if strings.HasPrefix(trimmed, domain.HeaderMarker) && !strings.Contains(trimmed, "\n") {
		return raw, nil
	}
	return trimmed, nil
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().Bool("json", false, "Print the result object as JSON")
}
