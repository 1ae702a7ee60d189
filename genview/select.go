package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// promptSelection asks which gene to view and parses the answer.
func promptSelection(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, "\nWhich one would you like to view? > ")

	scanner := bufio.NewScanner(in)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, err
		}
		return 0, errors.New("no selection given")
	}
	return parseSelection(scanner.Text())
}

// parseSelection converts the user's answer into a gene number. The
// range check is left to the genes package.
func parseSelection(line string) (int, error) {
	line = strings.TrimSpace(line)
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid input: '%s'", line)
	}
	return n, nil
}
