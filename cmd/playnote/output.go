package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/kodistudios/playnote/internal/config"
	"github.com/kodistudios/playnote/sdk/midi"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true)
	flagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Width(22)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func printBanner(w io.Writer, msg string) {
	fmt.Fprintln(w, headerStyle.Render(msg))
}

func printError(w io.Writer, title string, err error) {
	fmt.Fprintln(w, errorStyle.Render(title))
	fmt.Fprintf(w, "Error: %v\n", err)
}

func printHelp(w io.Writer, appName string, cfg *config.Config) {
	line := func(flag, text string) {
		fmt.Fprintf(w, "%s%s\n", flagStyle.Render(flag), text)
	}

	fmt.Fprintln(w, headerStyle.Render("All flags are Optional!"))
	line("-c [0-15]", fmt.Sprintf("Channel. Default: %d", cfg.Note.Channel))
	line("-i [0-127]", fmt.Sprintf("Instrument. Default: %d (Grand Piano)", cfg.Note.Instrument))
	line("-p [0-127]", fmt.Sprintf("Pitch (Note). Default: %d (Middle C Note)", cfg.Note.Pitch))
	line("-v [0-127]", fmt.Sprintf("Velocity (Volume). Default: %d", cfg.Note.Velocity))
	line("-l [milliseconds]", fmt.Sprintf("Length (Note Length), in Milliseconds. Default: %d", cfg.Note.LengthMs))
	line("-s", "Use Simple Midi Api, no error detection.")
	line("-driver [name]", fmt.Sprintf("MIDI driver %v. Default: %s", midi.Drivers(), midi.DefaultDriver()))
	line("-device [index]", fmt.Sprintf("Output device index. Default: %d", cfg.Output.DeviceIndex))
	line("-port [name]", "Pick the output port whose name contains name.")
	line("-log-level [level]", "debug, info, warn or error. Default: info")
	line("-log-file [path]", "Write logs to a file instead of stderr.")
	line("-config [path]", "Config file. Default: ~/.config/playnote/config.json")
	line("-save-config", "Save the effective settings as the new defaults.")
	line("-?", "Print this help")
	fmt.Fprintln(w)

	fmt.Fprintln(w, headerStyle.Render("Sample Usage:"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s -i 24 -p 80\n", appName)
	fmt.Fprintln(w, dimStyle.Render("Play Guitar Note"))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s -c 1 -i 24 -p 81 -v 120 -l 2000\n", appName)
	fmt.Fprintln(w, dimStyle.Render("Sets Guitar to Channel 1, Plays G Note, at Volume 120, for 2 seconds"))
}
