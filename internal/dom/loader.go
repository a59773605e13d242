package dom

import (
	"fmt"
	"strconv"

	"github.com/ifcreader/ifc/internal/catalog"
	"github.com/ifcreader/ifc/internal/model"
	"github.com/ifcreader/ifc/internal/obs"
	"github.com/ifcreader/ifc/internal/reader"
)

// Loader materializes reader entries into a Node graph, lazily and
// cycle-safely, keyed by NodeKey (spec.md §4.5). It is single-threaded and
// owns its arena exclusively; nodes are never destroyed before the loader.
type Loader struct {
	r       *reader.Reader
	arena   map[NodeKey]*Node
	pending map[NodeKey]bool
	metrics *obs.Metrics
}

// New builds a Loader over an already-constructed Reader.
func New(r *reader.Reader) *Loader {
	return &Loader{r: r, arena: make(map[NodeKey]*Node), pending: make(map[NodeKey]bool)}
}

// SetMetrics attaches m so subsequent Get calls that materialize a new node
// increment DomNodesLoaded; nil detaches it.
func (l *Loader) SetMetrics(m *obs.Metrics) { l.metrics = m }

// PendingCount reports how many referenced-but-not-yet-expanded nodes
// remain; a consumer (e.g. a printer) loops calling Get on pending keys
// until this reaches zero to force full expansion (spec.md §4.5).
func (l *Loader) PendingCount() int { return len(l.pending) }

// Pending returns a snapshot of the currently pending keys.
func (l *Loader) Pending() []NodeKey {
	out := make([]NodeKey, 0, len(l.pending))
	for k := range l.pending {
		out = append(out, k)
	}
	return out
}

func familyFor(kind SortKind) (catalog.FamilyID, bool) {
	switch kind {
	case KindDecl:
		return catalog.FamilyDecl, true
	case KindType:
		return catalog.FamilyType, true
	case KindExpr:
		return catalog.FamilyExpr, true
	case KindStmt:
		return catalog.FamilyStmt, true
	case KindName:
		return catalog.FamilyName, true
	case KindChart:
		return catalog.FamilyChart, true
	case KindSyntax:
		return catalog.FamilySyntax, true
	default:
		return 0, false
	}
}

func stableID(key NodeKey) string {
	family, ok := familyFor(key.Kind)
	if !ok {
		return key.String()
	}
	name, ok := catalog.NameOf(family, key.SortTag)
	if !ok {
		name = fmt.Sprintf("%s.unknown-%d", key.Kind, key.SortTag)
	}
	return name + "-" + strconv.FormatUint(uint64(key.Position), 10)
}

// Get ensures a node exists for key: if already materialized, returns the
// cached node (DOM idempotence, spec.md §8.2). Otherwise it allocates the
// node first — so a reference back to key discovered mid-load finds the
// same (still-filling) node instead of recursing forever — then loads it
// and clears key from the pending set.
func (l *Loader) Get(key NodeKey) (*Node, error) {
	if n, ok := l.arena[key]; ok {
		return n, nil
	}
	n := &Node{Key: key, ID: stableID(key)}
	l.arena[key] = n
	l.metrics.IncDomNodeLoaded()
	if err := l.load(n); err != nil {
		return nil, err
	}
	delete(l.pending, key)
	return n, nil
}

// Ref renders a short textual reference to key without forcing a full
// materialization: nulls render as "no-<kind>"; entities with a short
// pretty form (fundamental types, literals, ...) render that form
// directly; everything else is registered as pending and rendered as its
// stable id (spec.md §4.5).
func (l *Loader) Ref(key NodeKey, isNull bool) (string, error) {
	if isNull {
		return "no-" + key.Kind.String(), nil
	}
	if short, ok, err := l.shortForm(key); err != nil {
		return "", err
	} else if ok {
		return short, nil
	}
	if _, inArena := l.arena[key]; !inArena {
		l.pending[key] = true
	}
	return stableID(key), nil
}

func declKey(idx model.DeclIndex) (NodeKey, bool) {
	return NodeKey{Kind: KindDecl, SortTag: uint32(idx.Sort()), Position: idx.Position()}, idx.IsNull()
}

func typeKey(idx model.TypeIndex) (NodeKey, bool) {
	return NodeKey{Kind: KindType, SortTag: uint32(idx.Sort()), Position: idx.Position()}, idx.IsNull()
}

func exprKey(idx model.ExprIndex) (NodeKey, bool) {
	return NodeKey{Kind: KindExpr, SortTag: uint32(idx.Sort()), Position: idx.Position()}, idx.IsNull()
}

func stmtKey(idx model.StmtIndex) (NodeKey, bool) {
	return NodeKey{Kind: KindStmt, SortTag: uint32(idx.Sort()), Position: idx.Position()}, idx.IsNull()
}

func nameKey(idx model.NameIndex) (NodeKey, bool) {
	return NodeKey{Kind: KindName, SortTag: uint32(idx.Sort()), Position: idx.Position()}, idx.IsNull()
}

func chartKey(idx model.ChartIndex) (NodeKey, bool) {
	return NodeKey{Kind: KindChart, SortTag: uint32(idx.Sort()), Position: idx.Position()}, idx.Sort() == model.ChartNone
}

// refDecl renders and, for non-short-form cases, registers a DeclIndex edge
// as both a property value and a materialized child.
func (l *Loader) refDecl(n *Node, prop string, idx model.DeclIndex) error {
	key, isNull := declKey(idx)
	s, err := l.Ref(key, isNull)
	if err != nil {
		return err
	}
	n.SetProperty(prop, s)
	if !isNull {
		child, err := l.Get(key)
		if err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

func (l *Loader) refType(n *Node, prop string, idx model.TypeIndex) error {
	key, isNull := typeKey(idx)
	s, err := l.Ref(key, isNull)
	if err != nil {
		return err
	}
	n.SetProperty(prop, s)
	if !isNull {
		child, err := l.Get(key)
		if err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

func (l *Loader) refExpr(n *Node, prop string, idx model.ExprIndex) error {
	key, isNull := exprKey(idx)
	s, err := l.Ref(key, isNull)
	if err != nil {
		return err
	}
	n.SetProperty(prop, s)
	if !isNull {
		child, err := l.Get(key)
		if err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

func (l *Loader) refStmt(n *Node, prop string, idx model.StmtIndex) error {
	key, isNull := stmtKey(idx)
	s, err := l.Ref(key, isNull)
	if err != nil {
		return err
	}
	n.SetProperty(prop, s)
	if !isNull {
		child, err := l.Get(key)
		if err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

func (l *Loader) refName(n *Node, prop string, idx model.NameIndex) error {
	key, isNull := nameKey(idx)
	s, err := l.Ref(key, isNull)
	if err != nil {
		return err
	}
	n.SetProperty(prop, s)
	if !isNull {
		child, err := l.Get(key)
		if err != nil {
			return err
		}
		n.AddChild(child)
	}
	return nil
}

// TryGetChart returns a node for a Unilevel/Multilevel chart, or ok=false
// for ChartSort::None (spec.md §4.5 "try_get(ChartIndex)").
func (l *Loader) TryGetChart(idx model.ChartIndex) (*Node, bool, error) {
	key, isNone := chartKey(idx)
	if isNone {
		return nil, false, nil
	}
	n, err := l.Get(key)
	if err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// loadError wraps plumbing errors with the node key that triggered them,
// for diagnosability.
func loadError(key NodeKey, err error) error {
	return fmt.Errorf("dom: loading %s: %w", key, err)
}
