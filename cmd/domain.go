/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vipcxj/divedns/internal/bounds"
	"github.com/vipcxj/divedns/internal/domain"
)

func newDomainCmd(root *rootOptions) *cobra.Command {
	domainCmd := &cobra.Command{
		Use:     "domain",
		Aliases: []string{"d"},
		Short:   "Manipulate domains",
	}
	domainCmd.AddCommand(newValidateCmd(root), newInfoCmd(root))
	return domainCmd
}

type validateOptions struct {
	root   string
	levels bounds.Value
	length bounds.Value
	config string
}

// flagAliases maps the long expect-* spellings onto the short flag names.
var flagAliases = map[string]string{
	"expect-root":   "root",
	"expect-levels": "levels",
	"expect-length": "length",
}

func normalizeAliases(f *pflag.FlagSet, name string) pflag.NormalizedName {
	if alias, ok := flagAliases[name]; ok {
		name = alias
	}
	return pflag.NormalizedName(name)
}

func newValidateCmd(root *rootOptions) *cobra.Command {
	opts := &validateOptions{}
	validateCmd := &cobra.Command{
		Use:     "validate <domain>",
		Aliases: []string{"v"},
		Short:   "Validate a domain name",
		Long: `Validate a domain name and print its normalized Unicode form.

Ranges use the notation "[a..b]", "[a..b)", "(a..b]" or "(a..b)". A missing
bracket counts as inclusive, so "1..3" is "[1..3]".`,
		Example: `  divedns domain validate hello.dive --root dive --levels "[1..3]"
  divedns domain validate xn--mnchen-3ya.de --length "(0..63]"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			validator, err := opts.validator(cmd.Flags())
			if err != nil {
				return err
			}
			logger.WithFields(validatorFields(validator)).Debug("validating domain")
			warnEmptyRanges(logger, validator)

			d, err := validator.Validate(args[0])
			if err != nil {
				logger.WithError(err).WithField("input", args[0]).Debug("domain rejected")
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}

	flags := validateCmd.Flags()
	flags.SetNormalizeFunc(normalizeAliases)
	flags.StringVar(&opts.root, "root", "", "Expected domain root (last label)")
	flags.Var(&opts.levels, "levels", `Expected number of labels, root included (e.g. "1..3", "(1..3]")`)
	flags.Var(&opts.length, "length", `Expected length of the normalized name in bytes (e.g. "[1..253]")`)
	flags.StringVar(&opts.config, "config", "", "YAML or JSON validator file; flags override its values")
	return validateCmd
}

// warnEmptyRanges flags constraints no domain can satisfy.
func warnEmptyRanges(logger log.FieldLogger, v domain.Validator) {
	if levels, ok := v.Levels(); ok && levels.IsEmpty() {
		logger.WithField("levels", levels.String()).Warn("levels range includes nothing, every domain will be rejected")
	}
	if length, ok := v.Length(); ok && length.IsEmpty() {
		logger.WithField("length", length.String()).Warn("length range includes nothing, every domain will be rejected")
	}
}

// validator merges the config file, if any, with the flags set on flags.
func (o *validateOptions) validator(flags *pflag.FlagSet) (domain.Validator, error) {
	var cfg domain.Config
	if o.config != "" {
		loaded, err := domain.LoadConfig(o.config)
		if err != nil {
			return domain.Validator{}, err
		}
		cfg = loaded
	}
	if flags.Changed("root") {
		cfg.ExpectRoot = &o.root
	}
	if o.levels.Range != nil {
		cfg.ExpectLevels = o.levels.Range
	}
	if o.length.Range != nil {
		cfg.ExpectLength = o.length.Range
	}
	return cfg.Validator(), nil
}

func validatorFields(v domain.Validator) log.Fields {
	fields := log.Fields{}
	if root, ok := v.Root(); ok {
		fields["expect_root"] = root
	}
	if levels, ok := v.Levels(); ok {
		fields["expect_levels"] = levels.String()
	}
	if length, ok := v.Length(); ok {
		fields["expect_length"] = length.String()
	}
	return fields
}

type infoOptions struct {
	format string
}

type domainInfo struct {
	Domain string `json:"domain"`
	ASCII  string `json:"ascii"`
	Root   string `json:"root"`
	Levels int    `json:"levels"`
}

func newInfoCmd(root *rootOptions) *cobra.Command {
	opts := &infoOptions{}
	infoCmd := &cobra.Command{
		Use:     "info <domain>",
		Aliases: []string{"i"},
		Short:   "View domain information",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := root.logger(cmd)
			if err != nil {
				return err
			}
			d, err := domain.New(args[0])
			if err != nil {
				return err
			}
			ascii, err := d.ToPunycode()
			if err != nil {
				return err
			}
			rootLabel, _ := d.Root()
			info := domainInfo{Domain: d.String(), ASCII: ascii, Root: rootLabel, Levels: d.Levels()}
			logger.WithFields(log.Fields{"domain": info.Domain, "ascii": info.ASCII}).Debug("domain parsed")

			out := cmd.OutOrStdout()
			switch strings.ToLower(opts.format) {
			case "text":
				fmt.Fprintf(out, "%s:\n", info.Domain)
				fmt.Fprintf(out, "  ASCII: %s\n", info.ASCII)
				fmt.Fprintf(out, "  Root: %s\n", info.Root)
				fmt.Fprintf(out, "  Levels: %d\n", info.Levels)
				return nil
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				return fmt.Errorf("unsupported format: %s, allowed formats are: text, json", opts.format)
			}
		},
	}
	infoCmd.Flags().StringVarP(&opts.format, "format", "f", "text", "Output format: text or json")
	return infoCmd
}
