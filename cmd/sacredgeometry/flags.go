package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// DiceValue is a pflag.Value for comma-separated die rolls, e.g. "2,3,5,5"
type DiceValue struct {
	dice *[]uint
}

var _ pflag.Value = DiceValue{}

func (v DiceValue) String() string {
	if v.dice == nil {
		return ""
	}

	parts := make([]string, len(*v.dice))
	for i, die := range *v.dice {
		parts[i] = strconv.FormatUint(uint64(die), 10)
	}
	return strings.Join(parts, ",")
}

func (v DiceValue) Set(s string) error {
	dice, err := parseNumbers(strings.Split(s, ","))
	if err != nil {
		return err
	}
	*v.dice = dice
	return nil
}

func (v DiceValue) Type() string {
	return "dice"
}

func parseNumbers(args []string) ([]uint, error) {
	numbers := make([]uint, 0, len(args))
	for _, arg := range args {
		arg = strings.TrimSpace(arg)
		if arg == "" {
			continue
		}

		n, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("malformed number %q", arg)
		}
		numbers = append(numbers, uint(n))
	}
	return numbers, nil
}
