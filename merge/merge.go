package merge

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/signadot/confmerge/ir"
	"github.com/signadot/confmerge/mergeop"
)

// Issue is a leaf which could not be merged.
type Issue struct {
	Address string
	Message string
	Node    ir.NodeID
}

func (i Issue) String() string {
	return i.Address + ": " + i.Message
}

type Result struct {
	Warnings []Issue
	Errors   []Issue
}

// Failed reports whether any error was recorded.
func (r *Result) Failed() bool {
	return len(r.Errors) > 0
}

// Merge merges the values of src into dst, see the package documentation.
// dst is modified in place and src is left unchanged.  The returned error
// is non-nil only for faults which make the result unusable, such as a
// malformed override annotation; leaves which cannot be merged are reported
// in the Result.
func Merge(src, dst *ir.Document, opts ...Option) (*Result, error) {
	mOpts := &mergeOpts{}
	for _, f := range opts {
		f(mOpts)
	}
	if mOpts.log == nil {
		mOpts.log = slog.New(slog.DiscardHandler)
	}
	m := &merger{src: src, dst: dst, log: mOpts.log, res: &Result{}}
	if err := m.annotate(mOpts.overrides); err != nil {
		return nil, err
	}
	for _, leaf := range Leaves(dst, m.log) {
		if err := m.leaf(leaf); err != nil {
			return nil, fmt.Errorf("error merging %s: %w", leaf.Address, err)
		}
	}
	if err := dst.VerifyOrder(); err != nil {
		return nil, fmt.Errorf("%w: %w", errInternal, err)
	}
	return m.res, nil
}

type merger struct {
	src, dst *ir.Document
	log      *slog.Logger
	res      *Result
}

func (m *merger) annotate(overrides map[string]string) error {
	for _, addr := range slices.Sorted(maps.Keys(overrides)) {
		text := overrides[addr]
		as, rest, err := mergeop.Parse(text)
		if err != nil {
			return fmt.Errorf("annotation for %s: %w", addr, err)
		}
		ids, err := m.dst.Resolve(addr)
		if errors.Is(err, ir.ErrAddressNotFound) {
			m.res.Warnings = append(m.res.Warnings, Issue{
				Address: ir.NormalizeAddress(addr),
				Message: fmt.Sprintf("annotation %q: address not found", text),
				Node:    ir.NoNode,
			})
			continue
		}
		if err != nil {
			return err
		}
		n := m.dst.Node(ids[0])
		n.SetAnnotations(as)
		if rest != "" {
			n.SetComment(strings.TrimSpace(rest + " " + n.Comment))
		}
		m.log.Debug("annotated", "address", m.dst.Address(n.ID), "annotation", text)
	}
	return nil
}

func (m *merger) leaf(l Leaf) error {
	n := m.dst.Node(l.Node)
	if n == nil {
		return fmt.Errorf("%w: leaf node %d removed", errInternal, l.Node)
	}
	as := n.Annotations
	n.StripAnnotations()
	if mergeop.Has(as, mergeop.Ignore) {
		m.log.Debug("ignored", "address", l.Address)
		return nil
	}
	addr := l.Address
	instead := false
	if a, ok := mergeop.Find(as, mergeop.From); ok {
		addr = ir.NormalizeAddress(a.Arg)
	} else if a, ok := mergeop.Find(as, mergeop.Instead); ok {
		addr = ir.NormalizeAddress(a.Arg)
		instead = true
		// a missing source must not leave the template value in place
		if err := m.dst.SetEmpty(n.ID); err != nil {
			return err
		}
	}
	prefix, hasPrefix := mergeop.Find(as, mergeop.Prefix)

	found, group, err := m.src.Lookup(addr)
	if errors.Is(err, ir.ErrAddressNotFound) {
		m.missing(l, n, addr, instead)
		return nil
	}
	if err != nil {
		return err
	}
	if group {
		from, to := m.src.GroupRange(found)
		m.log.Debug("merged list element", "address", l.Address, "source", addr, "lines", len(found))
		return m.dst.Graft(n.ID, m.src, from, to)
	}
	sn := m.src.Node(found[0])
	if instead && sn.HasKey() && sn.Key != n.Key {
		n.SetKey(sn.Key)
		m.dst.ResetAddresses()
	}
	switch sn.Value.Kind {
	case ir.ScalarValue:
		v := sn.Value.Scalar
		if hasPrefix {
			v = prefix.Arg + v
		}
		if !n.Value.IsScalar() || n.Value.Scalar != v {
			if err := m.dst.SetScalar(n.ID, v); err != nil {
				return err
			}
		}
	case ir.ChildrenValue:
		from, to := m.src.SubtreeRange(sn.ID)
		if err := m.dst.Graft(n.ID, m.src, from, to); err != nil {
			return err
		}
	default:
		if !n.Value.IsEmpty() {
			if err := m.dst.SetEmpty(n.ID); err != nil {
				return err
			}
		}
	}
	if n.Comment == "" && sn.Comment != "" {
		n.SetComment(sn.Comment)
	}
	m.log.Debug("merged", "address", l.Address, "source", addr, "value", sn.Value.Kind)
	return nil
}

func (m *merger) missing(l Leaf, n *ir.Node, addr string, instead bool) {
	what := addr
	if addr != l.Address {
		what = fmt.Sprintf("%s (for %s)", addr, l.Address)
	}
	var msg string
	fail := true
	switch {
	case instead:
		msg = fmt.Sprintf("%s not found in source, required by INSTEAD", what)
	case n.Value.IsEmpty():
		msg = fmt.Sprintf("%s not found in source and template has no value", what)
	case n.Value.IsScalar() && IsPlaceholder(n.Value.Scalar):
		msg = fmt.Sprintf("%s not found in source and template value %s is a placeholder", what, n.Value.Scalar)
	default:
		fail = false
		msg = fmt.Sprintf("%s not found in source, keeping template value", what)
	}
	issue := Issue{Address: l.Address, Message: msg, Node: n.ID}
	if fail {
		n.Mark(mergeop.Fail)
		m.res.Errors = append(m.res.Errors, issue)
		m.log.Debug("merge failed", "address", l.Address, "source", addr)
		return
	}
	n.Mark(mergeop.Check)
	m.res.Warnings = append(m.res.Warnings, issue)
	m.log.Debug("merge check", "address", l.Address, "source", addr)
}

// IsPlaceholder reports whether a template value stands for a value to be
// filled in, like <repo> or "<token>".
func IsPlaceholder(v string) bool {
	if len(v) < 2 {
		return false
	}
	return v[0] == '<' || strings.HasPrefix(v, `"<`) || strings.HasPrefix(v, `'<`)
}
