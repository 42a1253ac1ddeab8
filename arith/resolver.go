package arith

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/c360studio/algebra/catalog"
	"github.com/c360studio/algebra/ring"
)

func init() {
	catalog.RegisterBuiltin(nameResolver{})
}

// nameResolver teaches the catalog the arithmetic name grammar:
//
//	ZZ  QQ  ZZ/6  ZZ[x]  QQ[x][y]  M2(QQ)  M3(ZZ/5[t])
//
// Polynomial suffixes bind last, so M2(QQ)[x] is a polynomial ring over
// a matrix algebra while M2(QQ[x]) is a matrix algebra over a polynomial
// ring.
type nameResolver struct{}

func (nameResolver) Family() string { return "arith" }

func (nameResolver) CanResolve(name string) bool {
	_, ok := parseName(name)
	return ok
}

func (nameResolver) Resolve(name string) (*ring.Structure, error) {
	expr, ok := parseName(name)
	if !ok {
		return nil, fmt.Errorf("unparseable structure name %q", name)
	}
	return buildExpr(expr)
}

type exprKind uint8

const (
	exprIntegers exprKind = iota
	exprRationals
	exprModular
	exprPolynomial
	exprMatrix
)

// nameExpr is the parsed form of a structure name. Parsing is purely
// syntactic; semantic errors (a modulus of 1, say) surface when the
// expression is built.
type nameExpr struct {
	kind  exprKind
	mod   uint64
	dim   int
	vr    string
	inner *nameExpr
}

func parseName(name string) (*nameExpr, bool) {
	if strings.HasSuffix(name, "]") {
		open := strings.LastIndex(name, "[")
		if open <= 0 {
			return nil, false
		}
		vr := name[open+1 : len(name)-1]
		if !validVariable(vr) {
			return nil, false
		}
		inner, ok := parseName(name[:open])
		if !ok {
			return nil, false
		}
		return &nameExpr{kind: exprPolynomial, vr: vr, inner: inner}, true
	}

	if strings.HasPrefix(name, "M") && strings.HasSuffix(name, ")") {
		open := strings.Index(name, "(")
		if open < 2 {
			return nil, false
		}
		dim, err := strconv.Atoi(name[1:open])
		if err != nil || dim < 1 {
			return nil, false
		}
		inner, ok := parseName(name[open+1 : len(name)-1])
		if !ok {
			return nil, false
		}
		return &nameExpr{kind: exprMatrix, dim: dim, inner: inner}, true
	}

	if rest, ok := strings.CutPrefix(name, "ZZ/"); ok {
		mod, err := strconv.ParseUint(rest, 10, 64)
		if err != nil {
			return nil, false
		}
		return &nameExpr{kind: exprModular, mod: mod}, true
	}

	switch name {
	case "ZZ":
		return &nameExpr{kind: exprIntegers}, true
	case "QQ":
		return &nameExpr{kind: exprRationals}, true
	}
	return nil, false
}

func buildExpr(expr *nameExpr) (*ring.Structure, error) {
	switch expr.kind {
	case exprIntegers:
		return Integers(), nil
	case exprRationals:
		return Rationals(), nil
	case exprModular:
		return IntegersMod(expr.mod)
	case exprPolynomial:
		base, err := buildExpr(expr.inner)
		if err != nil {
			return nil, err
		}
		return PolynomialRing(base, expr.vr)
	case exprMatrix:
		base, err := buildExpr(expr.inner)
		if err != nil {
			return nil, err
		}
		return MatrixAlgebra(base, expr.dim)
	}
	return nil, fmt.Errorf("unhandled expression kind %d", expr.kind)
}
