package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/russross/blockdown"
	"github.com/russross/blockdown/internal/config"
)

type ctxKey string

const appKey ctxKey = "app"

// app carries what every command needs once configuration is loaded.
type app struct {
	cfg *viper.Viper
	log *log.Logger // nil unless --verbose
}

// Execute builds the root command and runs it.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command. Without a subcommand it
// renders [inputfile [outputfile]], defaulting to stdin and stdout.
func NewRootCmd() *cobra.Command {
	var cfgPath string
	var verbose bool
	v := viper.New()

	cmd := &cobra.Command{
		Use:           "blockdown [inputfile [outputfile]]",
		Short:         "Render block-structured markup as HTML",
		Version:       blockdown.VERSION,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			if err := config.CheckConfigValidity(v); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
			a := &app{cfg: v}
			if verbose {
				a.log = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, a))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := getApp(cmd)
			if err != nil {
				return err
			}
			return render(cmd, a, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log sizes and pipeline stages to stderr")
	pf.String("mode", "preview", "output form: preview or raw")
	pf.Bool("page", false, "generate a standalone HTML page")
	pf.String("title", "", "title of the standalone page")
	pf.String("css", "", "link to a CSS stylesheet (implies --page)")
	pf.Bool("escape-content", false, "escape document content before adding markup")
	pf.Bool("heading-ids", false, "generate id attributes for headings")
	pf.Bool("no-classes", false, "omit CSS classes from the markup")
	pf.Bool("table-alignment", false, "honor ':' alignment markers in tables")

	for key, flag := range map[string]string{
		"mode":            "mode",
		"page.enabled":    "page",
		"page.title":      "title",
		"page.css":        "css",
		"escape_content":  "escape-content",
		"heading_ids":     "heading-ids",
		"no_classes":      "no-classes",
		"table_alignment": "table-alignment",
	} {
		_ = v.BindPFlag(key, pf.Lookup(flag))
	}

	cmd.AddCommand(newServeCmd(v))
	cmd.AddCommand(newConfigCmd())

	return cmd
}

func getApp(cmd *cobra.Command) (*app, error) {
	a, ok := cmd.Context().Value(appKey).(*app)
	if !ok {
		return nil, errors.New("internal error: app not initialized")
	}
	return a, nil
}

func render(cmd *cobra.Command, a *app, args []string) error {
	var input []byte
	var err error
	if len(args) == 0 {
		if input, err = io.ReadAll(cmd.InOrStdin()); err != nil {
			return fmt.Errorf("error reading from standard input: %w", err)
		}
	} else if input, err = os.ReadFile(args[0]); err != nil {
		return fmt.Errorf("error reading from %s: %w", args[0], err)
	}

	opts, err := config.RenderOptions(a.cfg)
	if err != nil {
		return err
	}
	opts = append(opts, blockdown.WithLogger(a.log))
	output := blockdown.Run(input, opts...)

	if len(args) == 2 {
		if err := os.WriteFile(args[1], output, 0o644); err != nil {
			return fmt.Errorf("error writing to %s: %w", args[1], err)
		}
	} else if _, err := cmd.OutOrStdout().Write(output); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}

	if a.log != nil {
		a.log.Printf("rendered %s mode=%s in=%s out=%s", inputName(args), a.cfg.GetString("mode"),
			humanize.Bytes(uint64(len(input))), humanize.Bytes(uint64(len(output))))
	}
	return nil
}

func inputName(args []string) string {
	if len(args) == 0 {
		return "stdin"
	}
	return args[0]
}
