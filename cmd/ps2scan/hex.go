package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// parseHex parses scan codes written as hex, like "e0", "0xE0" or "e0,2a".
func parseHex(fields []string) ([]byte, error) {
	var codes []byte
	for _, f := range fields {
		tokens := strings.FieldsFunc(f, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		for _, tok := range tokens {
			s := strings.TrimPrefix(strings.TrimPrefix(tok, "0x"), "0X")
			v, err := strconv.ParseUint(s, 16, 8)
			if err != nil {
				return nil, fmt.Errorf("invalid scan code %q: %w", tok, err)
			}
			codes = append(codes, byte(v))
		}
	}
	return codes, nil
}

// readHex reads hex scan codes from r, separated by whitespace or commas.
// Lines starting with # are skipped.
func readHex(r io.Reader) ([]byte, error) {
	var fields []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields = append(fields, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return parseHex(fields)
}
