package parse

import (
	"errors"

	"github.com/lu-zero/argenum/internal/codefmt"
)

// Validate reports every argenum directive that [Parser.ParseEnums] did not
// consume. A directive takes effect only in the doc comment of a type
// declaration or on a constant of a derived enum type; anywhere else it is
// silently dead, which is almost certainly a mistake.
func (p *Parser) Validate() error {
	var errs error

	for _, file := range p.pkg.Syntax {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !IsDirective(c) {
					continue
				}
				if _, ok := p.consumed[c.Pos()]; ok {
					continue
				}

				err := codefmt.Errorf(p, c, "misplaced argenum directive: it must document a type declaration or a constant of a derived enum type")
				errs = errors.Join(errs, err)
			}
		}
	}

	return errs
}
