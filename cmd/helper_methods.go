package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/rimu-dev/xbrew/internal/configs"
	"github.com/rimu-dev/xbrew/internal/credentials"
	"github.com/rimu-dev/xbrew/internal/ui"

	"github.com/briandowns/spinner"
	"github.com/spf13/pflag"
	"golang.org/x/term"
)

// addVerbosityFlags registers the shared --verbose/--debug flags on a
// command group's persistent flag set.
func addVerbosityFlags(fs *pflag.FlagSet, verbose, debug *bool) {
	fs.BoolVarP(verbose, "verbose", "v", false, "enable verbose output")
	fs.BoolVarP(debug, "debug", "d", false, "enable debug output")
}

// defaultStore returns the file-backed credential store at the configured
// path.
func defaultStore() credentials.FileStore {
	return credentials.FileStore{Path: configs.UserXbrewSettings.CredentialsPath}
}

// startSpinner creates and starts a spinner with the given message when not
// in verbose or debug mode. Returns the spinner and a function that should
// be deferred to clean up.
//
// spinner.FinalMSG values do NOT need trailing newlines; the cleanup
// function calls ui.EnsureNewline() on the final message before printing it.
func startSpinner(message string, verbose, debug bool) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without a colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	}

	cleanup := func() {
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		if !verbose && !debug {
			s.Stop()
		}

		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// promptPassword reads a password from the terminal without echo.
func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(password), nil
}

// prettyJSON renders a response for display.
func prettyJSON(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
