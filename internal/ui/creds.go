package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// ReadCredentials asks for the database login. The password is hidden when
// stdin is a terminal; piped input is read in the clear since it cannot be
// masked anyway.
func ReadCredentials(in *bufio.Scanner, out io.Writer) (user, password string, err error) {
	fmt.Fprint(out, "Enter database user id: ")
	if !in.Scan() {
		return "", "", io.EOF
	}
	user = strings.TrimSpace(in.Text())

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprintf(out, "Enter database password for %s: ", user)
		raw, rerr := term.ReadPassword(fd)
		fmt.Fprintln(out)
		if rerr != nil {
			return "", "", rerr
		}
		return user, string(raw), nil
	}

	fmt.Fprintf(out, "Enter database password for %s (input not hidden): ", user)
	if !in.Scan() {
		return "", "", io.EOF
	}
	return user, in.Text(), nil
}
