// File: cmdline.go
// Title: Command Line Tokenizer
// Description: Splits a shell line into a command name and an options map.
//              Quoting follows POSIX shell rules via shlex.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial tokenizer

// Package cmdline turns shell input into dispatchable name and options.
//
// The first word is the command name. Every following word is an option in
// one of these forms:
//
//	key=value
//	--key=value
//	--key value
//	--flag        (value "true")
//
// A word containing "=" is always an option of its own, so it never becomes
// the value of a preceding --key: "--msg a=b" sets msg to "true" and a to
// "b". Values containing "=" are written as --msg=a=b or msg=a=b.
//
// Later occurrences of a key replace earlier ones.
package cmdline

import (
	"fmt"
	"strings"

	"github.com/google/shlex"

	mdwerror "github.com/msto63/semshell/foundation/core/error"
)

// Parse splits line into a command name and its options. A blank line
// yields an empty name.
func Parse(line string) (string, map[string]string, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return "", nil, mdwerror.Wrap(err, "cannot split command line").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("cmdline.Parse")
	}
	if len(words) == 0 {
		return "", map[string]string{}, nil
	}

	name := words[0]
	options, err := parseOptions(words[1:])
	if err != nil {
		return "", nil, err
	}
	return name, options, nil
}

// ParseArgs is Parse for arguments already split by the operating system
func ParseArgs(args []string) (map[string]string, error) {
	return parseOptions(args)
}

func parseOptions(words []string) (map[string]string, error) {
	options := make(map[string]string, len(words))

	for i := 0; i < len(words); i++ {
		word := words[i]

		if strings.HasPrefix(word, "--") {
			flag := word[2:]
			if flag == "" || strings.HasPrefix(flag, "=") {
				return nil, invalid(word, "missing option name")
			}
			if key, value, ok := strings.Cut(flag, "="); ok {
				options[key] = value
				continue
			}
			if i+1 < len(words) && isValue(words[i+1]) {
				options[flag] = words[i+1]
				i++
				continue
			}
			options[flag] = "true"
			continue
		}

		key, value, ok := strings.Cut(word, "=")
		if !ok {
			return nil, invalid(word, "options must be key=value")
		}
		if key == "" {
			return nil, invalid(word, "missing option name")
		}
		options[key] = value
	}

	return options, nil
}

// isValue reports whether word can be the value of a preceding --key.
// Words with "=" are options in their own right.
func isValue(word string) bool {
	return !strings.HasPrefix(word, "--") && !strings.Contains(word, "=")
}

func invalid(word, reason string) error {
	return mdwerror.New(fmt.Sprintf("unexpected argument %q: %s", word, reason)).
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("cmdline.Parse").
		WithDetail("argument", word)
}
