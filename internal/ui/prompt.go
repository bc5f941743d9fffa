package ui

import (
	"fmt"
	"strconv"
	"strings"
)

func (u *UI) printf(format string, args ...any) {
	fmt.Fprintf(u.out, format, args...)
}

// readLine returns the next input line; ok is false on EOF.
func (u *UI) readLine() (string, bool) {
	if !u.in.Scan() {
		return "", false
	}
	return u.in.Text(), true
}

// readChoice parses a menu selection. eof reports a closed stdin; ok reports
// whether the line was an integer. Menus redraw on !ok instead of failing.
func (u *UI) readChoice() (choice int, ok bool, eof bool) {
	line, alive := u.readLine()
	if !alive {
		return 0, false, true
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, false, false
	}
	return n, true, false
}

// promptInt asks for one integer. ok=false means the flow should cancel:
// either the input was not a number or stdin closed.
func (u *UI) promptInt(label string) (int64, bool) {
	u.printf("%s", label)
	line, alive := u.readLine()
	if !alive {
		return 0, false
	}
	n, err := strconv.ParseInt(strings.TrimSpace(line), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (u *UI) promptFloat(label string) (float64, bool) {
	u.printf("%s", label)
	line, alive := u.readLine()
	if !alive {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// promptString trims nothing: free-text fields keep whatever was typed.
func (u *UI) promptString(label string) (string, bool) {
	u.printf("%s", label)
	return u.readLine()
}

// maskCard shows only the last four digits of a stored card number.
func maskCard(num string) string {
	if len(num) >= 4 {
		return "**** " + num[len(num)-4:]
	}
	return num
}
