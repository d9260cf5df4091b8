package cli

import (
	"github.com/spf13/cobra"

	"quantor/domain"
)

type themeResult struct {
	Theme domain.Theme `json:"theme"`
}

func NewThemeCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or toggle the persisted theme preference",
	}

	run := func(toggle bool) func(cmd *cobra.Command, args []string) error {
		return func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), root.Config)
			if err != nil {
				return err
			}
			defer a.Close()

			var theme domain.Theme
			if toggle {
				theme, err = a.theme.Toggle(cmd.Context())
			} else {
				theme, err = a.theme.Current(cmd.Context())
			}
			if err != nil {
				return err
			}

			out := &OutputFormatter{Format: root.Format, Writer: cmd.OutOrStdout()}
			return out.Print(themeResult{Theme: theme}, string(theme))
		}
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the persisted theme",
		Args:  cobra.NoArgs,
		RunE:  run(false),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Flip between dark and light and persist the result",
		Args:  cobra.NoArgs,
		RunE:  run(true),
	})

	return cmd
}
