package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"github.com/katalvlaran/lvroute/route"
)

// errNoInput is returned when input ends before a valid city was entered.
var errNoInput = errors.New("lvroute: no city entered")

// prompter asks for city names until a valid one is given.
type prompter struct {
	in          *bufio.Scanner
	out         io.Writer
	graph       *route.Graph
	interactive bool
}

func newPrompter(in io.Reader, out io.Writer, g *route.Graph) *prompter {
	p := &prompter{in: bufio.NewScanner(in), out: out, graph: g}
	if f, ok := in.(*os.File); ok {
		p.interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}

	return p
}

// city returns preset when it is non-empty, validating it against the graph.
// Otherwise it prompts.
func (p *prompter) city(title, preset string) (string, error) {
	preset = strings.TrimSpace(preset)
	if preset != "" {
		if p.graph.CityIndex(preset) == route.NoCity {
			return "", fmt.Errorf("%w: %q", route.ErrCityNotFound, preset)
		}
		return preset, nil
	}
	if p.interactive {
		return p.selectCity(title)
	}

	return p.readCity(title)
}

// selectCity shows a filterable list of cities.
func (p *prompter) selectCity(title string) (string, error) {
	var name string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huh.NewOptions(p.graph.Cities()...)...).
		Filtering(true).
		Value(&name).
		Run()
	if err != nil {
		return "", err
	}

	return name, nil
}

// readCity reads lines until one names a known city.
func (p *prompter) readCity(title string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", title)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return "", err
			}
			return "", errNoInput
		}
		name := strings.TrimSpace(p.in.Text())
		if p.graph.CityIndex(name) != route.NoCity {
			return name, nil
		}
		fmt.Fprintln(p.out, "Invalid city name. Please try again.")
	}
}
