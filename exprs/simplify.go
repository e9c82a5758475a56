package exprs

import (
	"sort"
	"strings"
)

// CanonicalSimplify normalizes an index expression: products are distributed,
// constants folded, and like terms collected, with terms emitted in a
// deterministic order. If the expression cannot be normalized -- it contains
// the Any wildcard, or a division by a non-constant -- it is returned
// unchanged.
//
// Two symbolically equal expressions simplify to structurally equal
// expressions, which is how relations prove dimension equality: the
// difference of two equal dimensions simplifies to the constant 0.
func CanonicalSimplify(e Expr) Expr {
	p, ok := normalize(e)
	if !ok {
		return e
	}
	return p.build()
}

// polyForm is a polynomial over symbolic dimensions: a constant plus a sum of
// terms, each a product of symbols (the map key, factors sorted and joined
// with '*') times an integer coefficient. Zero coefficients are never stored.
type polyForm struct {
	c     int64
	terms map[string]int64
}

func (p *polyForm) addTerm(key string, coef int64) {
	if coef == 0 {
		return
	}
	if key == "" {
		p.c += coef
		return
	}
	if p.terms == nil {
		p.terms = make(map[string]int64)
	}
	p.terms[key] += coef
	if p.terms[key] == 0 {
		delete(p.terms, key)
	}
}

func normalize(e Expr) (polyForm, bool) {
	switch v := e.(type) {
	case Const:
		return polyForm{c: int64(v)}, true
	case Sym:
		p := polyForm{}
		p.addTerm(string(v), 1)
		return p, true
	case anyDim:
		// The wildcard takes part in no arithmetic identities.
		return polyForm{}, false
	case Binary:
		lhs, ok := normalize(v.LHS)
		if !ok {
			return polyForm{}, false
		}
		rhs, ok := normalize(v.RHS)
		if !ok {
			return polyForm{}, false
		}
		switch v.Op {
		case OpAdd:
			return addPoly(lhs, rhs, 1), true
		case OpSub:
			return addPoly(lhs, rhs, -1), true
		case OpMul:
			return mulPoly(lhs, rhs), true
		case OpFloorDiv:
			if len(rhs.terms) > 0 || rhs.c == 0 {
				return polyForm{}, false
			}
			if rhs.c == 1 {
				return lhs, true
			}
			if len(lhs.terms) > 0 {
				return polyForm{}, false
			}
			return polyForm{c: floorDiv(lhs.c, rhs.c)}, true
		}
	}
	return polyForm{}, false
}

func addPoly(a, b polyForm, sign int64) polyForm {
	out := polyForm{c: a.c + sign*b.c}
	for key, coef := range a.terms {
		out.addTerm(key, coef)
	}
	for key, coef := range b.terms {
		out.addTerm(key, sign*coef)
	}
	return out
}

func mulPoly(a, b polyForm) polyForm {
	out := polyForm{c: a.c * b.c}
	for key, coef := range a.terms {
		out.addTerm(key, coef*b.c)
	}
	for key, coef := range b.terms {
		out.addTerm(key, coef*a.c)
	}
	for aKey, aCoef := range a.terms {
		for bKey, bCoef := range b.terms {
			out.addTerm(mergeFactors(aKey, bKey), aCoef*bCoef)
		}
	}
	return out
}

func mergeFactors(a, b string) string {
	factors := append(strings.Split(a, "*"), strings.Split(b, "*")...)
	sort.Strings(factors)
	return strings.Join(factors, "*")
}

// floorDiv rounds towards negative infinity, matching the FloorDiv operator.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// build rebuilds the canonical expression: terms sorted by their product key,
// the constant last.
func (p *polyForm) build() Expr {
	keys := make([]string, 0, len(p.terms))
	for key := range p.terms {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var out Expr
	for _, key := range keys {
		term := buildTerm(key, p.terms[key])
		if out == nil {
			out = term
		} else {
			out = Add(out, term)
		}
	}
	if out == nil {
		return Const(p.c)
	}
	if p.c > 0 {
		out = Add(out, Const(p.c))
	} else if p.c < 0 {
		out = Sub(out, Const(-p.c))
	}
	return out
}

func buildTerm(key string, coef int64) Expr {
	var term Expr
	for _, factor := range strings.Split(key, "*") {
		if term == nil {
			term = Sym(factor)
		} else {
			term = Mul(term, Sym(factor))
		}
	}
	if coef != 1 {
		term = Mul(Const(coef), term)
	}
	return term
}
