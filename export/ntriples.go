package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	vocab "github.com/c360studio/shipyard/vocabulary/shipyard"
)

// Statement is a parsed N-Triples statement. Object holds either an IRI
// or the raw literal lexical form, distinguished by IsLiteral.
type Statement struct {
	Subject   string
	Predicate string
	Object    string
	IsLiteral bool
}

// ParseNTriples parses line-oriented N-Triples input. Blank lines and
// comment lines are skipped; any malformed line aborts with its number.
func ParseNTriples(r io.Reader) ([]Statement, error) {
	var out []Statement

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		st, err := parseStatement(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		out = append(out, st)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read ntriples: %w", err)
	}
	return out, nil
}

func parseStatement(line string) (Statement, error) {
	rest, ok := strings.CutSuffix(line, ".")
	if !ok {
		return Statement{}, fmt.Errorf("missing terminating dot")
	}
	rest = strings.TrimSpace(rest)

	subject, rest, err := takeIRI(rest)
	if err != nil {
		return Statement{}, fmt.Errorf("subject: %w", err)
	}
	predicate, rest, err := takeIRI(rest)
	if err != nil {
		return Statement{}, fmt.Errorf("predicate: %w", err)
	}

	rest = strings.TrimSpace(rest)
	switch {
	case strings.HasPrefix(rest, "<"):
		object, tail, err := takeIRI(rest)
		if err != nil {
			return Statement{}, fmt.Errorf("object: %w", err)
		}
		if strings.TrimSpace(tail) != "" {
			return Statement{}, fmt.Errorf("trailing content %q", tail)
		}
		return Statement{Subject: subject, Predicate: predicate, Object: object}, nil
	case strings.HasPrefix(rest, `"`):
		object, err := takeLiteral(rest)
		if err != nil {
			return Statement{}, fmt.Errorf("object: %w", err)
		}
		return Statement{Subject: subject, Predicate: predicate, Object: object, IsLiteral: true}, nil
	default:
		return Statement{}, fmt.Errorf("unrecognized object %q", rest)
	}
}

// takeIRI consumes a leading <iri> token and returns the IRI and the rest.
func takeIRI(s string) (string, string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return "", "", fmt.Errorf("expected IRI in %q", s)
	}
	end := strings.Index(s, ">")
	if end < 0 {
		return "", "", fmt.Errorf("unterminated IRI in %q", s)
	}
	return s[1:end], s[end+1:], nil
}

// takeLiteral consumes a quoted literal, dropping any datatype suffix,
// and returns the unescaped lexical form.
func takeLiteral(s string) (string, error) {
	var sb strings.Builder
	escaped := false
	for i := 1; i < len(s); i++ {
		c := s[i]
		if escaped {
			switch c {
			case 'n':
				sb.WriteByte('\n')
			case 'r':
				sb.WriteByte('\r')
			case 't':
				sb.WriteByte('\t')
			default:
				sb.WriteByte(c)
			}
			escaped = false
			continue
		}
		switch c {
		case '\\':
			escaped = true
		case '"':
			return sb.String(), nil
		default:
			sb.WriteByte(c)
		}
	}
	return "", fmt.Errorf("unterminated literal in %q", s)
}

// Summary aggregates a parsed N-Triples document for verification.
// Classes holds the class names seen in rdf:type assertions; Edges counts
// statements whose predicate is a declared object property.
type Summary struct {
	Statements int
	Subjects   int
	TypeCount  int
	Edges      int
	Classes    map[string]bool
}

// Summarize counts statements, distinct subjects, rdf:type assertions,
// relationship edges, and the class-name set of a parsed document.
// Exporting a graph and summarizing the result must reproduce the
// graph's individual count, edge count, and class names.
func Summarize(statements []Statement) Summary {
	subjects := make(map[string]struct{})
	s := Summary{
		Statements: len(statements),
		Classes:    make(map[string]bool),
	}
	for _, st := range statements {
		subjects[st.Subject] = struct{}{}
		switch {
		case st.Predicate == rdfTypeIRI:
			s.TypeCount++
			if name, ok := vocab.ClassNameForIRI(st.Object); ok {
				s.Classes[name] = true
			}
		case !st.IsLiteral:
			if _, ok := vocab.ObjectPropertyNameForIRI(st.Predicate); ok {
				s.Edges++
			}
		}
	}
	s.Subjects = len(subjects)
	return s
}
