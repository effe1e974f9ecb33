package main

import (
	"flag"
	"io"
	"strconv"

	"github.com/kodistudios/playnote/internal/config"
)

// appArguments holds the parsed command line. Note fields only override the config
// when their flag was given.
type appArguments struct {
	channel    uint32
	instrument uint32
	pitch      uint32
	velocity   uint32
	length     uint32
	simple     bool

	driver      string
	deviceIndex int
	portName    string
	logLevel    string
	logFile     string
	configPath  string
	saveConfig  bool

	help           bool
	userOverridden bool // any argument given; no arguments is the default demo
	set            map[string]bool
}

// parseArgs parses args (without the program name).
func parseArgs(args []string) (*appArguments, error) {
	a := &appArguments{set: make(map[string]bool)}

	fs := flag.NewFlagSet("playnote", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Func("c", "channel [0-15]", uint32Flag(&a.channel))
	fs.Func("i", "instrument [0-127]", uint32Flag(&a.instrument))
	fs.Func("p", "pitch [0-127]", uint32Flag(&a.pitch))
	fs.Func("v", "velocity [0-127]", uint32Flag(&a.velocity))
	fs.Func("l", "length in milliseconds", uint32Flag(&a.length))
	fs.BoolVar(&a.simple, "s", false, "use the simple API, no error detection")
	fs.BoolVar(&a.help, "?", false, "print help")

	fs.StringVar(&a.driver, "driver", "", "MIDI driver")
	fs.IntVar(&a.deviceIndex, "device", 0, "output device index")
	fs.StringVar(&a.portName, "port", "", "output port name filter")
	fs.StringVar(&a.logLevel, "log-level", "", "log level")
	fs.StringVar(&a.logFile, "log-file", "", "log file")
	fs.StringVar(&a.configPath, "config", "", "config file")
	fs.BoolVar(&a.saveConfig, "save-config", false, "save the effective settings as the new defaults")

	a.userOverridden = len(args) > 0
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			a.help = true
			return a, nil
		}
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, &unexpectedArgError{arg: fs.Arg(0)}
	}

	fs.Visit(func(f *flag.Flag) { a.set[f.Name] = true })
	return a, nil
}

// apply returns a copy of cfg with every given flag applied.
func (a *appArguments) apply(cfg *config.Config) *config.Config {
	out := *cfg
	overrides := []struct {
		flag string
		fn   func()
	}{
		{"c", func() { out.Note.Channel = a.channel }},
		{"i", func() { out.Note.Instrument = a.instrument }},
		{"p", func() { out.Note.Pitch = a.pitch }},
		{"v", func() { out.Note.Velocity = a.velocity }},
		{"l", func() { out.Note.LengthMs = a.length }},
		{"s", func() { out.Note.Simple = a.simple }},
		{"driver", func() { out.Output.Driver = a.driver }},
		{"device", func() { out.Output.DeviceIndex = a.deviceIndex }},
		{"port", func() { out.Output.PortName = a.portName }},
		{"log-level", func() { out.Log.Level = a.logLevel }},
		{"log-file", func() { out.Log.File = a.logFile }},
	}
	for _, o := range overrides {
		if a.set[o.flag] {
			o.fn()
		}
	}
	return &out
}

func uint32Flag(dst *uint32) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return err
		}
		*dst = uint32(v)
		return nil
	}
}

type unexpectedArgError struct {
	arg string
}

func (e *unexpectedArgError) Error() string {
	return "unexpected argument " + strconv.Quote(e.arg)
}
