package temperature

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

type Unit string

const (
	Celsius    Unit = "C"
	Fahrenheit Unit = "F"
	Kelvin     Unit = "K"
)

var ErrUnsupportedConversion = errors.New("unsupported conversion")

// ParseUnit accepts C, F or K in either case.
func ParseUnit(s string) (Unit, bool) {
	switch u := Unit(strings.ToUpper(strings.TrimSpace(s))); u {
	case Celsius, Fahrenheit, Kelvin:
		return u, true
	}
	return "", false
}

type pair struct{ from, to Unit }

var formulas = map[pair]func(float64) float64{
	{Celsius, Fahrenheit}: func(v float64) float64 { return v*9.0/5.0 + 32.0 },
	{Celsius, Kelvin}:     func(v float64) float64 { return v + 273.15 },
	{Fahrenheit, Celsius}: func(v float64) float64 { return (v - 32.0) * 5.0 / 9.0 },
	{Fahrenheit, Kelvin}:  func(v float64) float64 { return (v + 459.67) * 5.0 / 9.0 },
	{Kelvin, Fahrenheit}:  func(v float64) float64 { return v*9.0/5.0 - 459.67 },
	{Kelvin, Celsius}:     func(v float64) float64 { return v - 273.15 },
}

// Convert converts value between two distinct units.
func Convert(value float64, from, to Unit) (float64, error) {
	f, ok := formulas[pair{from, to}]
	if !ok {
		return 0, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, from, to)
	}
	return f(value), nil
}

var errExit = errors.New("exit requested")

// session reads prompts from one scanner; io.EOF on the scanner ends the run.
type session struct {
	sc  *bufio.Scanner
	out io.Writer
}

func (s *session) readLine() (string, error) {
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(s.sc.Text()), nil
}

func (s *session) temperature() (float64, error) {
	for {
		fmt.Fprintln(s.out, "\n\nEnter a temperature (number) or E to exit:")
		line, err := s.readLine()
		if err != nil {
			return 0, err
		}
		if line == "E" {
			return 0, errExit
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			fmt.Fprintln(s.out, "[ERROR] Invalid temperature value.")
			continue
		}
		return v, nil
	}
}

func (s *session) unit(direction string) (Unit, error) {
	for {
		fmt.Fprintf(s.out, "Enter %s temperature unit:[Cc/Ff/Kk]\n", direction)
		line, err := s.readLine()
		if err != nil {
			return "", err
		}
		if u, ok := ParseUnit(line); ok {
			return u, nil
		}
		fmt.Fprintf(s.out, "[ERROR] Invalid %s temperature unit %s\n", direction, line)
		fmt.Fprintln(s.out, "Valid choices are:[Cc/Ff/Kk]")
		fmt.Fprintln(s.out)
	}
}

// Run drives the interactive converter until E or end of input.
func Run(in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, "This is a temperature conversion calculator.")
	fmt.Fprintln(out, "It converts from/to Celsius, Fahrenheit, and Kelvin.")

	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	s := &session{sc: sc, out: out}
	err := s.loop()
	if errors.Is(err, errExit) || errors.Is(err, io.EOF) {
		fmt.Fprintln(out, "\n\nExiting the temperature conversion calculator.")
		return nil
	}
	return err
}

func (s *session) loop() error {
	for {
		v, err := s.temperature()
		if err != nil {
			return err
		}
		from, err := s.unit("FROM")
		if err != nil {
			return err
		}
		to, err := s.unit("TO")
		if err != nil {
			return err
		}

		res, err := Convert(v, from, to)
		if err != nil {
			fmt.Fprintln(s.out, "\n[ERROR] There was an error in this conversion.")
			continue
		}
		fmt.Fprintf(s.out, "\n%.2f%s = %.2f%s\n", v, from, res, to)
	}
}
