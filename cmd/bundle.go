package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	bundlefile "github.com/bnema/companion/internal/adapters/bundle/file"
	"github.com/bnema/companion/internal/domain"
)

func newBundleCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Inspect and check locale bundles",
	}

	cmd.AddCommand(
		newBundleValidateCmd(a),
		newBundleLocalesCmd(a),
		newBundleDumpCmd(a),
	)

	return cmd
}

func newBundleValidateCmd(a *app) *cobra.Command {
	var files []string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Load the bundle, overlay files and compile every pattern",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := a.newEngine(cmd.Context(), files...)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "bundle ok: %d locales\n", len(e.Bundle().Locales))
			return err
		},
	}

	cmd.Flags().StringSliceVar(&files, "file", nil, "extra bundle file or directory to overlay (repeatable)")
	return cmd
}

func newBundleLocalesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "locales",
		Short: "List locales with their table sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bundle, err := a.loadBundle(cmd.Context())
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "LOCALE\tNAME\tINHERITS\tKEYWORDS\tPATTERNS\tJOKES")
			for _, entry := range bundle.Locales {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%d\n",
					entry.Locale,
					entry.DisplayName(),
					inheritLabel(entry.Inherit),
					len(entry.Keywords),
					patternCount(entry),
					len(entry.Jokes),
				)
			}
			return w.Flush()
		},
	}
}

func newBundleDumpCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump",
		Short: "Print the resolved bundle as TOML or YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := bundlefile.ParseFormat(format)
			if err != nil {
				return err
			}

			bundle, err := a.loadBundle(cmd.Context())
			if err != nil {
				return err
			}

			return bundlefile.Encode(cmd.OutOrStdout(), bundle, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", "toml", "output format: toml or yaml")
	return cmd
}

func inheritLabel(locale domain.Locale) string {
	if locale == "" {
		return "-"
	}
	return string(locale)
}

func patternCount(entry domain.LocaleBundle) int {
	n := 0
	for _, patterns := range entry.Patterns {
		n += len(patterns)
	}
	return n
}
