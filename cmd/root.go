package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}
	flags := &rootFlags{}

	rootCmd := &cobra.Command{
		Use:           "companion",
		Short:         "Desktop companion: a multilingual task, note and joke assistant",
		Long:          "companion is the conversation engine of a desktop companion. It understands English and Tamil, keeps tasks and notes for the session, tells jokes and answers in the language you speak.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.wire(*flags)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.close()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log at debug level")
	rootCmd.PersistentFlags().StringVar(&flags.locale, "locale", "", "starting locale (en-US, en-GB, ta-IN, ta-LK)")
	rootCmd.PersistentFlags().StringVar(&flags.bundle, "bundle", "", "extra locale bundle file or directory")
	rootCmd.PersistentFlags().BoolVar(&flags.speak, "speak", false, "echo spoken replies as [SPEAK] lines")

	rootCmd.AddCommand(
		newVersionCmd(),
		newChatCmd(a),
		newSayCmd(a),
		newBundleCmd(a),
	)

	return rootCmd
}
