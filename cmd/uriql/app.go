package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uriql/internal/driver"
	"uriql/internal/logs"
	"uriql/internal/manifest"
	"uriql/internal/observ"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	session        *driver.Session
	log            *logs.Logger
	timer          *observ.Timer
	color          bool
	maxDiagnostics int
}

var current *app

func setupApp(cmd *cobra.Command, _ []string) error {
	flags := cmd.Root().PersistentFlags()
	level, _ := flags.GetString("log-level")
	logFile, _ := flags.GetString("log-file")
	colorFlag, _ := flags.GetString("color")
	timings, _ := flags.GetBool("timings")
	maxDiagnostics, _ := flags.GetInt("max-diagnostics")
	configPath, _ := flags.GetString("config")
	noConfig, _ := flags.GetBool("no-config")

	var useColor bool
	switch colorFlag {
	case "on":
		useColor = true
	case "off":
	case "auto":
		useColor = isTerminal(os.Stdout)
	default:
		return fmt.Errorf("unsupported --color %q (must be auto, on or off)", colorFlag)
	}

	log, err := logs.New(logs.Options{Level: level, File: logFile})
	if err != nil {
		return err
	}

	a := &app{log: log, color: useColor, maxDiagnostics: maxDiagnostics}
	if timings {
		a.timer = observ.NewTimer()
	}

	if noConfig {
		configPath = ""
	} else if configPath == "" {
		found, ok, err := manifest.Find(".")
		if err != nil {
			return err
		}
		if ok {
			configPath = found
		}
	}
	a.session, err = driver.Open(driver.SessionOptions{ConfigPath: configPath, Log: log, Timer: a.timer})
	if err != nil {
		_ = log.Close()
		return err
	}
	current = a
	return nil
}

func teardownApp(cmd *cobra.Command, _ []string) error {
	if current == nil {
		return nil
	}
	if current.timer != nil {
		if _, err := fmt.Fprint(cmd.ErrOrStderr(), current.timer.Summary()); err != nil {
			return err
		}
	}
	return current.log.Close()
}
