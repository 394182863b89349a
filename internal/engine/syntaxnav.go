package engine

import (
	"github.com/kaku-editor/kaku/internal/selection"
	"github.com/kaku-editor/kaku/internal/syntax"
)

// treeDirection selects which neighbor of the smallest enclosing node a
// tree-sitter-{in,out,next,prev} command replaces the selection with.
type treeDirection uint8

const (
	treeIn treeDirection = iota
	treeOut
	treeNext
	treePrev
)

func neighbor(n syntax.Node, dir treeDirection) syntax.Node {
	var target syntax.Node
	switch dir {
	case treeIn:
		target = n.FirstChild()
	case treeOut:
		target = n.Parent()
	case treeNext:
		target = n.NextSibling()
	case treePrev:
		target = n.PrevSibling()
	}
	if target == nil {
		return n
	}
	return target
}

// cmdTreeSitterMove implements spec §4.8's tree-sitter-{in,out,next,prev}
// navigation: for each selection, find the smallest tree node containing
// its byte range, move to the requested neighbor (staying put if none
// exists), and replace the selection with that node's range.
func (e *Engine) cmdTreeSitterMove(dir treeDirection) error {
	v := e.ActiveViewPtr()
	buf := e.BufferFor(v)
	tree := buf.Tree()

	for i := range v.Selections {
		s := &v.Selections[i]
		startByte := buf.CharToByte(s.Start)
		endByteExclusive := buf.CharToByte(s.End + 1)

		node := syntax.FindSmallest(tree, startByte, endByteExclusive)
		if node == nil {
			continue
		}
		target := neighbor(node, dir)

		newStart := buf.ByteToChar(target.Start())
		newEnd := buf.ByteToChar(target.End()) - 1
		if newEnd < newStart {
			newEnd = newStart
		}
		s.Start = newStart
		s.End = newEnd
		s.Dir = selection.Forward
	}
	v.MergeOverlappingSelections()
	return nil
}
