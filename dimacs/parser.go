// Package dimacs reads the DIMACS CNF text format into the types the
// lookahead engine consumes.
package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/crillab/lookaheadsat/lookahead"
)

// Problem is a parsed CNF instance: the variable count declared in the
// header, and every clause as a slice of lookahead.Lit.
type Problem struct {
	NbVars  int
	Clauses [][]lookahead.Lit
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// readInt reads a signed int from r. b holds the last byte read, which may
// be leading whitespace, '-', or a digit; trailing whitespace after the
// digits is consumed along with it. It can return io.EOF.
func readInt(b *byte, r *bufio.Reader) (res int, err error) {
	for err == nil && isSpace(*b) {
		*b, err = r.ReadByte()
	}
	if err == io.EOF {
		return res, io.EOF
	}
	if err != nil {
		return res, fmt.Errorf("cannot read digit: %w", err)
	}
	neg := 1
	if *b == '-' {
		neg = -1
		*b, err = r.ReadByte()
		if err != nil {
			return 0, fmt.Errorf("cannot read int: %w", err)
		}
	}
	for err == nil {
		if *b < '0' || *b > '9' {
			return 0, fmt.Errorf("cannot read int: %q is not a digit", *b)
		}
		res = 10*res + int(*b-'0')
		*b, err = r.ReadByte()
		if isSpace(*b) {
			break
		}
	}
	return res * neg, err
}

func parseHeader(r *bufio.Reader) (nbVars, nbClauses int, err error) {
	line, err := r.ReadString('\n')
	if err != nil {
		return 0, 0, fmt.Errorf("cannot read header: %w", err)
	}
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return 0, 0, fmt.Errorf("invalid header %q", line)
	}
	if nbVars, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, fmt.Errorf("nbvars not an int: %q", fields[1])
	}
	if nbClauses, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, fmt.Errorf("nbclauses not an int: %q", fields[2])
	}
	return nbVars, nbClauses, nil
}

// Parse reads a CNF file from r and returns the declared variable count
// together with its clauses, converted to lookahead.Lit.
func Parse(r io.Reader) (*Problem, error) {
	br := bufio.NewReader(r)
	var pb Problem
	var nbClauses int

	b, err := br.ReadByte()
	for err == nil {
		switch {
		case b == 'c':
			for err == nil && b != '\n' {
				b, err = br.ReadByte()
			}
		case b == 'p':
			pb.NbVars, nbClauses, err = parseHeader(br)
			if err != nil {
				return nil, fmt.Errorf("cannot parse CNF header: %w", err)
			}
			pb.Clauses = make([][]lookahead.Lit, 0, nbClauses)
		default:
			var lits []lookahead.Lit
			for {
				val, rerr := readInt(&b, br)
				if rerr == io.EOF {
					if len(lits) != 0 {
						return nil, fmt.Errorf("unfinished clause at EOF")
					}
					err = io.EOF
					break
				}
				if rerr != nil {
					return nil, fmt.Errorf("cannot parse clause: %w", rerr)
				}
				if val == 0 {
					pb.Clauses = append(pb.Clauses, lits)
					break
				}
				if val > pb.NbVars || -val > pb.NbVars {
					return nil, fmt.Errorf("literal %d out of range for %d vars", val, pb.NbVars)
				}
				lits = append(lits, lookahead.IntToLit(val))
			}
		}
		if err == nil {
			b, err = br.ReadByte()
		}
	}
	if err != io.EOF {
		return nil, err
	}
	return &pb, nil
}
