package dom

import (
	"strconv"
	"strings"

	"github.com/ifcreader/ifc/internal/model"
)

// scopeRefString renders a home-scope back-pointer textually. Home scopes
// are back-references used by validation scenarios (spec.md §8.4), not
// forward graph edges the DOM needs to traverse, so they render as text
// without materializing a child node.
func scopeRefString(s model.ScopeIndexOrNull) string {
	if s.IsNull() {
		return "no-scope"
	}
	return "scope-" + strconv.FormatUint(uint64(s)-1, 10)
}

// traitRefString renders a declaration's trait-partition back-reference;
// null means "traits == None" (spec.md §8.4 scenario 1).
func traitRefString(t model.TraitIndex) string {
	if uint32(t) == 0 {
		return "none"
	}
	return "trait-" + strconv.FormatUint(uint64(t.Sort()), 10) + "-" + strconv.FormatUint(uint64(t.Position()), 10)
}

func parameterSortString(s model.ParameterSort) string {
	if s == model.ParameterType {
		return "type"
	}
	return "object"
}

func qualifiersString(q model.TypeQualifier) string {
	if q == model.QualifierNone {
		return ""
	}
	var parts []string
	if q&model.QualifierConst != 0 {
		parts = append(parts, "const")
	}
	if q&model.QualifierVolatile != 0 {
		parts = append(parts, "volatile")
	}
	if q&model.QualifierRestrict != 0 {
		parts = append(parts, "restrict")
	}
	return strings.Join(parts, " ")
}

// basicSpecString renders the DeclTraits bitset as its set bit names,
// space-joined, matching spec.md §8.4 scenario 5's trait-bit checks.
func basicSpecString(d model.DeclTraits) string {
	names := []struct {
		bit  model.DeclTraits
		name string
	}{
		{model.TraitCxx, "Cxx"},
		{model.TraitExternal, "External"},
		{model.TraitNonExported, "NonExported"},
		{model.TraitInline, "Inline"},
		{model.TraitConstexpr, "Constexpr"},
		{model.TraitNoReturn, "NoReturn"},
		{model.TraitDeleted, "Deleted"},
		{model.TraitConstrained, "Constrained"},
		{model.TraitImmediate, "Immediate"},
		{model.TraitExplicit, "Explicit"},
		{model.TraitVirtual, "Virtual"},
		{model.TraitPureVirtual, "PureVirtual"},
		{model.TraitDefaulted, "Defaulted"},
		{model.TraitFinal, "Final"},
		{model.TraitOverride, "Override"},
	}
	var parts []string
	for _, e := range names {
		if d.Has(e.bit) {
			parts = append(parts, e.name)
		}
	}
	return strings.Join(parts, " ")
}

// refChart renders and materializes a ChartIndex edge, skipping ChartNone.
func (l *Loader) refChart(n *Node, prop string, idx model.ChartIndex) error {
	key, isNone := chartKey(idx)
	s, err := l.Ref(key, isNone)
	if err != nil {
		return err
	}
	n.SetProperty(prop, s)
	if !isNone {
		child, err := l.Get(key)
		if err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

func (l *Loader) refDeclSequence(n *Node, prop string, seq model.Sequence[model.DeclIndex]) error {
	indices, err := l.r.SequenceDecl(seq)
	if err != nil {
		return err
	}
	rendered := make([]string, len(indices))
	for i, idx := range indices {
		key, isNull := declKey(idx)
		s, err := l.Ref(key, isNull)
		if err != nil {
			return err
		}
		rendered[i] = s
		if !isNull {
			child, err := l.Get(key)
			if err != nil {
				return err
			}
			n.AddChild(child)
		}
	}
	n.SetProperty(prop, strings.Join(rendered, ", "))
	return nil
}

func (l *Loader) refTypeSequence(n *Node, prop string, seq model.Sequence[model.TypeIndex]) error {
	indices, err := l.r.SequenceType(seq)
	if err != nil {
		return err
	}
	rendered := make([]string, len(indices))
	for i, idx := range indices {
		key, isNull := typeKey(idx)
		s, err := l.Ref(key, isNull)
		if err != nil {
			return err
		}
		rendered[i] = s
		if !isNull {
			child, err := l.Get(key)
			if err != nil {
				return err
			}
			n.AddChild(child)
		}
	}
	n.SetProperty(prop, strings.Join(rendered, ", "))
	return nil
}

func (l *Loader) refExprSequence(n *Node, prop string, seq model.Sequence[model.ExprIndex]) error {
	indices, err := l.r.SequenceExpr(seq)
	if err != nil {
		return err
	}
	rendered := make([]string, len(indices))
	for i, idx := range indices {
		key, isNull := exprKey(idx)
		s, err := l.Ref(key, isNull)
		if err != nil {
			return err
		}
		rendered[i] = s
		if !isNull {
			child, err := l.Get(key)
			if err != nil {
				return err
			}
			n.AddChild(child)
		}
	}
	n.SetProperty(prop, strings.Join(rendered, ", "))
	return nil
}

func (l *Loader) refStmtSequence(n *Node, prop string, seq model.Sequence[model.StmtIndex]) error {
	indices, err := l.r.SequenceStmt(seq)
	if err != nil {
		return err
	}
	rendered := make([]string, len(indices))
	for i, idx := range indices {
		key, isNull := stmtKey(idx)
		s, err := l.Ref(key, isNull)
		if err != nil {
			return err
		}
		rendered[i] = s
		if !isNull {
			child, err := l.Get(key)
			if err != nil {
				return err
			}
			n.AddChild(child)
		}
	}
	n.SetProperty(prop, strings.Join(rendered, ", "))
	return nil
}
