package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sawpanic/defiboard/internal/dashboard"
	"github.com/sawpanic/defiboard/internal/render/terminal"
)

// runRender prints the dashboard to stdout
func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	noColor, _ := cmd.Flags().GetBool("no-color")
	width, _ := cmd.Flags().GetInt("width")

	opts := terminalOptions(cmd.OutOrStdout() == os.Stdout, int(os.Stdout.Fd()), noColor, width)

	page := dashboard.Build(newDataset(cfg), dashboard.Options{
		Title:   cfg.Dashboard.Title,
		Ranking: cfg.Ranking(),
	})
	return terminal.NewRenderer(opts).Render(cmd.OutOrStdout(), page)
}

// terminalOptions enables color only on a real TTY and sizes output to it
func terminalOptions(isStdout bool, fd int, noColor bool, width int) terminal.Options {
	tty := isStdout && term.IsTerminal(fd)

	if width <= 0 && tty {
		if w, _, err := term.GetSize(fd); err == nil && w > 0 {
			width = w
		}
	}

	return terminal.Options{
		Width: width,
		Color: tty && !noColor,
	}
}
