package cli

import (
	"github.com/spf13/cobra"
)

// completionCommand creates the completion command for generating shell completions.
func (c *CLI) completionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Long: `Generate shell completion scripts for pkgstat.

To load completions:

Bash:
  $ source <(pkgstat completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ pkgstat completion bash > /etc/bash_completion.d/pkgstat
  # macOS:
  $ pkgstat completion bash > $(brew --prefix)/etc/bash_completion.d/pkgstat

Zsh:
  # If shell completion is not already enabled in your environment,
  # you will need to enable it. You can execute the following once:
  $ echo "autoload -U compinit; compinit" >> ~/.zshrc

  # To load completions for each session, execute once:
  $ pkgstat completion zsh > "${fpath[1]}/_pkgstat"

  # You will need to start a new shell for this setup to take effect.

Fish:
  $ pkgstat completion fish | source

  # To load completions for each session, execute once:
  $ pkgstat completion fish > ~/.config/fish/completions/pkgstat.fish

PowerShell:
  PS> pkgstat completion powershell | Out-String | Invoke-Expression

  # To load completions for every new session, run:
  PS> pkgstat completion powershell > pkgstat.ps1
  # and source this file from your PowerShell profile.
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			w := c.out
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(w, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(w)
			case "fish":
				return cmd.Root().GenFishCompletion(w, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(w)
			}
			return nil
		},
	}

	return cmd
}
