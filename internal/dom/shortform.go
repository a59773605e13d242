package dom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ifcreader/ifc/internal/model"
	"github.com/ifcreader/ifc/internal/reader"
)

// fundamentalKeyword renders a TypeFundamental the way a C++ reader would
// spell it back out: sign + precision + basis (spec.md §4.5).
func fundamentalKeyword(t model.TypeFundamental) string {
	var sign string
	switch t.Sign {
	case model.SignSigned:
		sign = "signed "
	case model.SignUnsigned:
		sign = "unsigned "
	}

	var precision string
	switch t.Precision {
	case model.PrecisionShort:
		precision = "short "
	case model.PrecisionLong:
		precision = "long "
	case model.PrecisionLongLong:
		precision = "long long "
	case model.PrecisionBit8:
		precision = "8 "
	case model.PrecisionBit16:
		precision = "16 "
	case model.PrecisionBit32:
		precision = "32 "
	case model.PrecisionBit64:
		precision = "64 "
	}

	var basis string
	switch t.Basis {
	case model.BasisVoid:
		basis = "void"
	case model.BasisBool:
		basis = "bool"
	case model.BasisChar:
		basis = "char"
	case model.BasisWCharT:
		basis = "wchar_t"
	case model.BasisInt:
		basis = "int"
	case model.BasisFloat:
		basis = "float"
	case model.BasisDouble:
		basis = "double"
	case model.BasisNullptr:
		basis = "nullptr_t"
	}

	switch {
	case t.Precision != model.PrecisionDefault && (t.Precision == model.PrecisionBit8 || t.Precision == model.PrecisionBit16 ||
		t.Precision == model.PrecisionBit32 || t.Precision == model.PrecisionBit64):
		return strings.TrimSpace(sign + "int" + strconv.Itoa(bitWidthSuffix(t.Precision)))
	default:
		return strings.TrimSpace(sign + precision + basis)
	}
}

func bitWidthSuffix(p model.FundamentalPrecision) int {
	switch p {
	case model.PrecisionBit8:
		return 8
	case model.PrecisionBit16:
		return 16
	case model.PrecisionBit32:
		return 32
	case model.PrecisionBit64:
		return 64
	default:
		return 0
	}
}

// shortForm implements spec.md §4.5's get_string_if_possible rules: a
// handful of sorts render to a compact string without materializing a full
// Node. Returns ok=false when key's sort has no short form, so the caller
// falls back to the stable "sort_name-index" id.
func (l *Loader) shortForm(key NodeKey) (string, bool, error) {
	switch key.Kind {
	case KindType:
		return l.shortFormType(key)
	case KindExpr:
		return l.shortFormExpr(key)
	default:
		return "", false, nil
	}
}

func (l *Loader) shortFormType(key NodeKey) (string, bool, error) {
	idx, err := model.NewTypeIndex(model.TypeSort(key.SortTag), key.Position)
	if err != nil {
		return "", false, err
	}
	switch idx.Sort() {
	case model.TypeFundamentalSort:
		t, err := reader.GetType[model.TypeFundamental](l.r, idx, model.TypeFundamentalSort)
		if err != nil {
			return "", false, err
		}
		return fundamentalKeyword(t), true, nil
	case model.TypePointerSort:
		t, err := reader.GetType[model.TypePointer](l.r, idx, model.TypePointerSort)
		if err != nil {
			return "", false, err
		}
		pointee, err := l.Ref(ofType(t.Pointee))
		if err != nil {
			return "", false, err
		}
		return pointee + "*", true, nil
	case model.TypeLvalueReferenceSort:
		t, err := reader.GetType[model.TypeLvalueReference](l.r, idx, model.TypeLvalueReferenceSort)
		if err != nil {
			return "", false, err
		}
		referent, err := l.Ref(ofType(t.Referent))
		if err != nil {
			return "", false, err
		}
		return referent + "&", true, nil
	case model.TypeRvalueReferenceSort:
		t, err := reader.GetType[model.TypeRvalueReference](l.r, idx, model.TypeRvalueReferenceSort)
		if err != nil {
			return "", false, err
		}
		referent, err := l.Ref(ofType(t.Referent))
		if err != nil {
			return "", false, err
		}
		return referent + "&&", true, nil
	case model.TypeArraySort:
		t, err := reader.GetType[model.TypeArray](l.r, idx, model.TypeArraySort)
		if err != nil {
			return "", false, err
		}
		elem, err := l.Ref(ofType(t.Element))
		if err != nil {
			return "", false, err
		}
		bound := ""
		if t.Bound != 0 {
			bound = strconv.FormatUint(uint64(t.Bound), 10)
		}
		return fmt.Sprintf("%s[%s]", elem, bound), true, nil
	case model.TypeQualifiedSort:
		t, err := reader.GetType[model.TypeQualified](l.r, idx, model.TypeQualifiedSort)
		if err != nil {
			return "", false, err
		}
		base, err := l.Ref(ofType(t.Unqualified))
		if err != nil {
			return "", false, err
		}
		q := qualifiersString(t.Qualifiers)
		if q == "" {
			return base, true, nil
		}
		return base + " " + q, true, nil
	case model.TypeFunctionSort:
		t, err := reader.GetType[model.TypeFunction](l.r, idx, model.TypeFunctionSort)
		if err != nil {
			return "", false, err
		}
		ret, err := l.Ref(ofType(t.Target))
		if err != nil {
			return "", false, err
		}
		args, err := l.Ref(ofType(t.Source))
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("%s(%s)", ret, args), true, nil
	case model.TypeMethodSort:
		t, err := reader.GetType[model.TypeMethod](l.r, idx, model.TypeMethodSort)
		if err != nil {
			return "", false, err
		}
		ret, err := l.Ref(ofType(t.Target))
		if err != nil {
			return "", false, err
		}
		class, err := l.Ref(ofType(t.Class))
		if err != nil {
			return "", false, err
		}
		args, err := l.Ref(ofType(t.Source))
		if err != nil {
			return "", false, err
		}
		return fmt.Sprintf("%s(%s: %s)", ret, class, args), true, nil
	case model.TypeTupleSort:
		t, err := reader.GetType[model.TypeTuple](l.r, idx, model.TypeTupleSort)
		if err != nil {
			return "", false, err
		}
		elems, err := l.r.SequenceType(t.Elements)
		if err != nil {
			return "", false, err
		}
		parts := make([]string, len(elems))
		for i, e := range elems {
			parts[i], err = l.Ref(ofType(e))
			if err != nil {
				return "", false, err
			}
		}
		return strings.Join(parts, ", "), true, nil
	default:
		return "", false, nil
	}
}

func (l *Loader) shortFormExpr(key NodeKey) (string, bool, error) {
	idx, err := model.NewExprIndex(model.ExprSort(key.SortTag), key.Position)
	if err != nil {
		return "", false, err
	}
	switch idx.Sort() {
	case model.ExprNullptrSort:
		return "nullptr", true, nil
	case model.ExprThisSort:
		return "this", true, nil
	case model.ExprLiteralSort:
		e, err := reader.GetExpr[model.ExprLiteral](l.r, idx, model.ExprLiteralSort)
		if err != nil {
			return "", false, err
		}
		switch e.Kind {
		case model.LiteralInteger:
			return strconv.FormatInt(e.Integer, 10), true, nil
		case model.LiteralFloatingPoint:
			return strconv.FormatFloat(e.Float, 'g', -1, 64), true, nil
		default:
			lit, err := l.r.GetStringLiteral(e.Text)
			if err != nil {
				return "", false, err
			}
			return strconv.Quote(l.r.GetText(lit.Text)), true, nil
		}
	case model.ExprNamedDeclSort:
		e, err := reader.GetExpr[model.ExprNamedDecl](l.r, idx, model.ExprNamedDeclSort)
		if err != nil {
			return "", false, err
		}
		declRef, err := l.Ref(ofDecl(e.Decl))
		if err != nil {
			return "", false, err
		}
		return "decl-ref(" + declRef + ")", true, nil
	default:
		return "", false, nil
	}
}

// ofType/ofDecl adapt a concrete index into the (key, isNull) pair Ref
// accepts positionally, so e.g. l.Ref(ofType(t.Pointee)) reads naturally at
// each short-form call site.
func ofType(idx model.TypeIndex) (NodeKey, bool) { return typeKey(idx) }
func ofDecl(idx model.DeclIndex) (NodeKey, bool) { return declKey(idx) }
