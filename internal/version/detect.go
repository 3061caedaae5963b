package version

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// Info captures an executable version installed on the system.
type Info struct {
	Name    string
	Version string
}

// ansibleRegex matches both the modern "ansible [core 2.16.3]" banner and
// the pre-2.10 "ansible 2.9.27" form.
var ansibleRegex = regexp.MustCompile(`(?i)ansible\s+(?:\[core\s+)?(\d+\.\d+(?:\.\d+)?)`)

// DetectAnsible returns the system Ansible version by calling `ansible --version`.
func DetectAnsible() (Info, error) {
	out, err := runCommand("ansible", "--version")
	if err != nil {
		return Info{}, err
	}
	match := ansibleRegex.FindStringSubmatch(out)
	if len(match) < 2 {
		return Info{}, fmt.Errorf("unable to parse ansible version from %q", firstLine(out))
	}
	return Info{Name: "ansible", Version: match[1]}, nil
}

func runCommand(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = nil
	var buf bytes.Buffer
	cmd.Stdout = &buf
	cmd.Stderr = &buf
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}
	return s
}

// CompareMajorMinor compares major.minor portions of two semver-like versions.
func CompareMajorMinor(desired, actual string) bool {
	d := semverPrefix(desired)
	a := semverPrefix(actual)
	if d == "" || a == "" {
		return false
	}
	return strings.EqualFold(d, a)
}

func semverPrefix(version string) string {
	parts := strings.Split(version, ".")
	if len(parts) < 2 {
		return ""
	}
	return fmt.Sprintf("%s.%s", parts[0], parts[1])
}

// Missing reports whether executing the command returns a not-found error.
func Missing(cmdErr error) bool {
	return errors.Is(cmdErr, exec.ErrNotFound)
}
