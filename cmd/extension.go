package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"strconv"
)

// EnvVerbose tells extensions whether -v was set.
const EnvVerbose = "NAVCHECK_VERBOSE"

// RunExtension attempts to find and execute an external navcheck-<subcommand>
// binary. It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
//
// The extension receives the resolved configuration in its environment, so
// that the global flags apply to it too.
func RunExtension(subcommand string, args []string) (bool, int) {
	name := "navcheck-" + subcommand

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Printf("External command %q not found in PATH: %v", name, err)
		return false, 0
	}

	cfg := LoadConfig()
	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = append(os.Environ(),
		EnvAlpacaKey+"="+cfg.AlpacaKeyID,
		EnvAlpacaSecret+"="+cfg.AlpacaSecretKey,
		EnvAlpacaURL+"="+cfg.AlpacaURL,
		EnvSchwabURL+"="+cfg.SchwabURL,
		EnvVerbose+"="+strconv.FormatBool(*Verbose),
	)

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return true, exitErr.ExitCode()
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
