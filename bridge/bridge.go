// Package bridge reads and writes the plain-text interchange format of
// the external tropical-geometry tool.
//
// The format is line-oriented. A line consisting of a section keyword
// (RAYS, CONES, CONES_ORBITS) opens that section; subsequent lines carry
// the section's data until a blank line resets the section. A '#'
// introduces an inline comment that runs to the end of the line. Cone
// lines are index lists, optionally wrapped in braces; indices are
// zero-based on input and one-based on output. Sections with unrecognized
// keywords are skipped. The exact output layout — section keywords, brace
// stripping, blank-line resets, one-based indices — is part of the
// contract with the external tool and must not drift.
package bridge

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/polyring"
	"github.com/dmg-lab/InitialIdealsRegularSubdivisions/ratmat"
)

// FanData is the combinatorial payload of a parsed fan file: rays (one
// per row), cone index lists, and cone orbits when the file carries a
// symmetry-reduced fan.
type FanData struct {
	Rays       *ratmat.Matrix
	Cones      [][]int
	ConeOrbits [][]int
}

// ParseFan reads a fan file. When negateRays is set, every ray coordinate
// is negated on the way in (used when loading data for the negative
// secondary fan).
func ParseFan(r io.Reader, negateRays bool) (*FanData, error) {
	scanner := bufio.NewScanner(r)
	section := ""
	lineNumber := 0
	var rayRows [][]*big.Rat
	retVal := &FanData{}
	for scanner.Scan() {
		lineNumber++
		line := scanner.Text()
		if cut := strings.IndexByte(line, '#'); cut >= 0 {
			line = line[:cut]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			section = ""
			continue
		}
		if isKeyword(line) {
			section = line
			continue
		}
		switch section {
		case "RAYS":
			row, err := parseRay(line, negateRays)
			if err != nil {
				return nil, fmt.Errorf("ParseFan: line %d: %s", lineNumber, err.Error())
			}
			rayRows = append(rayRows, row)
		case "CONES":
			cone, err := parseIndexList(line)
			if err != nil {
				return nil, fmt.Errorf("ParseFan: line %d: %s", lineNumber, err.Error())
			}
			retVal.Cones = append(retVal.Cones, cone)
		case "CONES_ORBITS":
			orbit, err := parseIndexList(line)
			if err != nil {
				return nil, fmt.Errorf("ParseFan: line %d: %s", lineNumber, err.Error())
			}
			retVal.ConeOrbits = append(retVal.ConeOrbits, orbit)
		default:
			// data inside an unrecognized or reset section is skipped
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("ParseFan: %s", err.Error())
	}
	rays, err := ratmat.NewFromRows(rayRows)
	if err != nil {
		return nil, fmt.Errorf("ParseFan: %s", err.Error())
	}
	retVal.Rays = rays
	return retVal, nil
}

// isKeyword reports whether a line is a section keyword: upper-case
// letters and underscores only.
func isKeyword(line string) bool {
	for _, r := range line {
		if (r < 'A' || 'Z' < r) && r != '_' {
			return false
		}
	}
	return len(line) > 0
}

// parseRay parses one whitespace-separated row of rational coordinates.
func parseRay(line string, negate bool) ([]*big.Rat, error) {
	fields := strings.Fields(line)
	row := make([]*big.Rat, len(fields))
	for i, field := range fields {
		value, ok := new(big.Rat).SetString(field)
		if !ok {
			return nil, fmt.Errorf("parseRay: cannot parse coordinate %q", field)
		}
		if negate {
			value.Neg(value)
		}
		row[i] = value
	}
	return row, nil
}

// parseIndexList parses a cone line: an optionally brace-wrapped list of
// zero-based indices separated by whitespace and/or commas.
func parseIndexList(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "{")
	line = strings.TrimSuffix(line, "}")
	line = strings.ReplaceAll(line, ",", " ")
	fields := strings.Fields(line)
	retVal := make([]int, 0, len(fields))
	for _, field := range fields {
		index, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("parseIndexList: cannot parse index %q", field)
		}
		if index < 0 {
			return nil, fmt.Errorf("parseIndexList: negative index %d", index)
		}
		retVal = append(retVal, index)
	}
	return retVal, nil
}

// WriteIdeal emits the ring/ideal declaration block for an ideal.
// Numeric suffixes of variable names are zero-padded to a common width so
// that lexicographic string sorting of the names matches numeric order.
func WriteIdeal(w io.Writer, ideal *polyring.Ideal) error {
	padded, err := paddedRing(ideal.Ring())
	if err != nil {
		return fmt.Errorf("WriteIdeal: %s", err.Error())
	}
	identity := make([]int, ideal.Ring().NumVars())
	for i := range identity {
		identity[i] = i
	}
	gens := make([]string, 0, ideal.NumGenerators())
	for _, gen := range ideal.Generators() {
		renamed, err := gen.Embed(padded, identity)
		if err != nil {
			return fmt.Errorf("WriteIdeal: %s", err.Error())
		}
		gens = append(gens, renamed.String())
	}
	if len(gens) == 0 {
		gens = append(gens, "0")
	}
	if _, err := fmt.Fprintf(w, "ring r = 0, (%s), dp;\n", strings.Join(padded.Variables(), ",")); err != nil {
		return fmt.Errorf("WriteIdeal: %s", err.Error())
	}
	if _, err := fmt.Fprintf(w, "ideal I = %s;\n", strings.Join(gens, ", ")); err != nil {
		return fmt.Errorf("WriteIdeal: %s", err.Error())
	}
	return nil
}

// WriteCones emits a CONES section with one-based, brace-wrapped index
// lists, terminated by a blank line (the format's section reset).
func WriteCones(w io.Writer, cones [][]int) error {
	if _, err := fmt.Fprintln(w, "CONES"); err != nil {
		return fmt.Errorf("WriteCones: %s", err.Error())
	}
	for _, cone := range cones {
		parts := make([]string, len(cone))
		for i, index := range cone {
			parts[i] = strconv.Itoa(index + 1)
		}
		if _, err := fmt.Fprintf(w, "{%s}\n", strings.Join(parts, " ")); err != nil {
			return fmt.Errorf("WriteCones: %s", err.Error())
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("WriteCones: %s", err.Error())
	}
	return nil
}

// paddedRing returns a ring with the same variables, numeric name
// suffixes zero-padded to the longest suffix width.
func paddedRing(ring *polyring.Ring) (*polyring.Ring, error) {
	names := ring.Variables()
	width := 0
	for _, name := range names {
		if _, digits := splitSuffix(name); len(digits) > width {
			width = len(digits)
		}
	}
	padded := make([]string, len(names))
	for i, name := range names {
		prefix, digits := splitSuffix(name)
		if digits == "" {
			padded[i] = name
			continue
		}
		padded[i] = prefix + strings.Repeat("0", width-len(digits)) + digits
	}
	return polyring.NewRing(padded)
}

// splitSuffix splits a name into its prefix and trailing decimal digits.
func splitSuffix(name string) (string, string) {
	cut := len(name)
	for cut > 0 && '0' <= name[cut-1] && name[cut-1] <= '9' {
		cut--
	}
	return name[:cut], name[cut:]
}
