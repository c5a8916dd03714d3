package cli

import (
	"io"
	"sort"

	"github.com/spf13/cobra"
)

// shellGenerators writes the completion script for each supported shell.
var shellGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash": func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":  func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish": func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error {
		return root.GenPowerShellCompletionWithDesc(w)
	},
}

func shellNames() []string {
	names := make([]string, 0, len(shellGenerators))
	for name := range shellGenerators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// completionCommand prints a shell completion script to c.Out.
func (c *CLI) completionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "completion SHELL",
		Short: "Print a shell completion script",
		Long: `Print the completion script for SHELL (bash, fish, powershell or zsh).

Source it for the current session, for example

  source <(plotutil completion bash)
  plotutil completion fish | source

or save it wherever your shell loads completions from.`,
		DisableFlagsInUseLine: true,
		ValidArgs:             shellNames(),
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return shellGenerators[args[0]](cmd.Root(), c.Out)
		},
	}
}
