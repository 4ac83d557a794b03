package main

import "errors"

var (
	errBadType       = errors.New("negcycle: unknown -t value")
	errBadBounds     = errors.New("negcycle: -w must not exceed -W")
	errBadInit       = errors.New("negcycle: unknown -i value")
	errBadAlgo       = errors.New("negcycle: unknown -a value")
	errBadSubcommand = errors.New("negcycle: unknown subcommand")
)
