package cmd

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	secerrors "github.com/AsilbekT/secman/internal/errors"
	"github.com/AsilbekT/secman/internal/ui"

	"github.com/briandowns/spinner"
)

func startSpinner(message string, verbose bool) (*spinner.Spinner, func()) {
	Logger.Debugf("Starting spinner with message: %s", message)
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	if err := s.Color("cyan"); err != nil {
		// If we can't set spinner color, just continue without it.
		Logger.Warnf("Failed to set spinner color: %v", err)
	}

	if !verbose && !debug {
		s.Start()
		// Ensure log output is discarded unless in verbose mode.
		log.SetOutput(io.Discard)
	} else {
		Logger.Infof("Running in verbose or debug mode: %s", message)
	}

	cleanup := func() {
		// Restore log output first.
		if !verbose && !debug {
			log.SetOutput(os.Stdout)
		}

		// Ensure final message ends with a newline.
		finalMsg := ""
		if s.FinalMSG != "" {
			finalMsg = ui.EnsureNewline(s.FinalMSG)
			// Clear FinalMSG so s.Stop() doesn't print it.
			s.FinalMSG = ""
		}

		// Stop the spinner first to clear the spinner line.
		if !verbose && !debug {
			s.Stop()
		}

		// Print final message to stdout (for tests to capture).
		if finalMsg != "" {
			fmt.Print(finalMsg)
		}
	}

	return s, cleanup
}

// renderError maps a workflow error to a user-facing final message.
func renderError(err error) string {
	cross := ui.Error.Sprint("✗") + " "
	switch {
	case errors.Is(err, secerrors.ErrConfigNotFound), errors.Is(err, secerrors.ErrFileNotFound),
		errors.Is(err, secerrors.ErrNoFilesFound):
		return cross + "Secrets file not found\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("secman init") +
			" or point " + ui.Code.Sprint("--file") + " at an existing file\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrNoKeyDeclaration):
		return cross + "The secrets file declares no master key variable\n" +
			ui.Info.Sprint("→") + " Run " + ui.Code.Sprint("secman set-master <ENV_NAME>") + " first\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrKeyUnset):
		return cross + "The master key environment variable is not set\n" +
			ui.Info.Sprint("→") + " Export it, e.g. " + ui.Code.Sprint("export APP_KEY=$(secman key)") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrInvalidKey):
		return cross + "The master key is not a valid base64-encoded 256-bit key\n" +
			ui.Info.Sprint("→") + " Generate one with " + ui.Code.Sprint("secman key") + "\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrSignatureMismatch):
		return cross + "Signature check failed: the encrypted line was modified since encryption\n" +
			ui.Info.Sprint("→") + " Restore the line from a safe copy before decrypting\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrDecryptFailed):
		return cross + "Decryption failed: wrong key or corrupted ciphertext\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrSecretNotFound):
		return cross + "No such secret in the target file(s)\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	case errors.Is(err, secerrors.ErrAlreadyInitialized):
		return cross + "This project is already initialized\n" +
			ui.Error.Sprint("Error: ") + err.Error()
	default:
		return cross + ui.Error.Sprint("Error: ") + err.Error()
	}
}
